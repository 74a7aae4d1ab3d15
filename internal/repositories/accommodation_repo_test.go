package repositories

import (
	"testing"

	intconfig "staybook/internal/config"
	"staybook/internal/domain"
	"staybook/internal/domain/models"
	"staybook/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
)

func accommodationColumnsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "location", "region", "city_id", "city", "type",
		"x_coordinate", "y_coordinate", "homepage", "description",
		"check_in_time", "check_out_time", "cancellation_policy", "info",
	})
}

func TestAccommodationListPassesRegionFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery("WHERE a.region").WithArgs("gangwon").
		WillReturnRows(accommodationColumnsRows().
			AddRow(1, "Sokcho Stay", "Sokcho", "gangwon", 0, "", "hotel", 0, 0, "", "", "", "", "", ""))

	out, err := AccommodationRepo{DB: db}.List("gangwon")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out) != 1 || out[0].Region != "gangwon" {
		t.Fatalf("unexpected result: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccommodationGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery("FROM accommodations a").WithArgs(int64(404)).
		WillReturnRows(accommodationColumnsRows())

	_, err = AccommodationRepo{DB: db}.GetByID(404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if err.Error() != "Accommodation not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestUpsertDailyAvailabilityUsesOnDuplicateKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectExec("ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))

	date, _ := utils.ParseDate("2026-03-01")
	err = PackageRepo{DB: db}.UpsertDailyAvailability(models.DailyAvailability{
		PackageID:   3,
		Date:        date,
		RetailPrice: 150000,
		CostPrice:   120000,
		Status:      models.AvailabilityOpen,
	})
	if err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
