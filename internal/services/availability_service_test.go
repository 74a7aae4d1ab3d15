package services

import (
	"testing"

	intconfig "staybook/internal/config"
	"staybook/internal/domain"
	"staybook/internal/repositories"
	"staybook/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestParseStayWindowRejectsLoneParam(t *testing.T) {
	_, err := ParseStayWindow("2026-03-01", "")
	if err == nil || err.Error() != "Both 'check_in' and 'check_out' must be provided together" {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseStayWindow("", "2026-03-02"); err == nil {
		t.Fatalf("expected error for lone check_out")
	}
}

func TestParseStayWindowRejectsBadFormat(t *testing.T) {
	_, err := ParseStayWindow("03/01/2026", "03/02/2026")
	if err == nil || err.Error() != "Invalid date format. Use 'YYYY-MM-DD'" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseStayWindowRejectsInvertedRange(t *testing.T) {
	_, err := ParseStayWindow("2026-03-05", "2026-03-01")
	if err == nil || err.Error() != "'check_in' must be earlier than 'check_out'" {
		t.Fatalf("unexpected error: %v", err)
	}
	// Same-day stays are zero nights and rejected too.
	if _, err := ParseStayWindow("2026-03-01", "2026-03-01"); err == nil {
		t.Fatalf("expected error for zero-night window")
	}
}

func TestParseStayWindowDefaultsToOneNight(t *testing.T) {
	window, err := ParseStayWindow("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !window.CheckIn.Equal(utils.Today()) {
		t.Fatalf("default check_in should be today, got %v", window.CheckIn)
	}
	if window.Nights() != 1 {
		t.Fatalf("default window should be one night, got %d", window.Nights())
	}
}

func TestParseGuests(t *testing.T) {
	if guests, err := ParseGuests(""); err != nil || guests != 1 {
		t.Fatalf("empty guests should default to 1, got %d err=%v", guests, err)
	}
	if _, err := ParseGuests("0"); err == nil {
		t.Fatalf("expected error for zero guests")
	}
	if _, err := ParseGuests("two"); err == nil {
		t.Fatalf("expected error for non-numeric guests")
	}
}

func accommodationRow(id int64, name string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "location", "region", "city_id", "city", "type",
		"x_coordinate", "y_coordinate", "homepage", "description",
		"check_in_time", "check_out_time", "cancellation_policy", "info",
	}).AddRow(id, name, "Jung-gu", "seoul", 0, "", "hotel", 0, 0, "", "", "15:00", "11:00", "", "")
}

func TestSearchResolvesPricesPerNight(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM accommodations a").WithArgs(int64(7)).
		WillReturnRows(accommodationRow(7, "Seoul Stay"))
	mock.ExpectQuery("FROM amenities am").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "icon"}))

	mock.ExpectQuery("HAVING COUNT\\(DISTINCT da.date\\)").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "room_type_id", "name", "description", "base_price", "is_active", "rt_name",
		}).AddRow(3, 2, "Breakfast Package", "", 100000, true, "Deluxe Double"))

	// 2026-03-01 (Sunday) has a full override, 2026-03-02 (Monday) falls
	// back to the weekday base.
	mock.ExpectQuery("FROM package_daily_availabilities").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "package_id", "date", "retail_price", "cost_price", "status",
		}).
			AddRow(11, 3, mustDate(t, "2026-03-01"), 150000, 120000, "open").
			AddRow(12, 3, mustDate(t, "2026-03-02"), 0, 0, "open"))
	mock.ExpectQuery("FROM package_weekday_base_prices").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "package_id", "weekday", "retail_price", "cost_price",
		}).AddRow(21, 3, 1, 90000, 70000))

	svc := AvailabilityService{
		AccommodationRepo: repositories.AccommodationRepo{DB: db},
		PackageRepo:       repositories.PackageRepo{DB: db},
	}

	window, err := ParseStayWindow("2026-03-01", "2026-03-03")
	if err != nil {
		t.Fatalf("window parse error: %v", err)
	}
	results, err := svc.Search(7, window, 2)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 combo, got %d", len(results))
	}

	combo := results[0]
	if combo.PackageName != "Breakfast Package" || combo.RoomTypeName != "Deluxe Double" {
		t.Fatalf("combo names wrong: %+v", combo)
	}
	if len(combo.DailyPrices) != 2 {
		t.Fatalf("expected 2 nightly entries, got %d", len(combo.DailyPrices))
	}
	if combo.DailyPrices[0].Price == nil || *combo.DailyPrices[0].Price != 150000 {
		t.Fatalf("override night price wrong: %+v", combo.DailyPrices[0])
	}
	if combo.DailyPrices[1].Price == nil || *combo.DailyPrices[1].Price != 90000 {
		t.Fatalf("weekday fallback price wrong: %+v", combo.DailyPrices[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchUnknownAccommodation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery("FROM accommodations a").WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := AvailabilityService{
		AccommodationRepo: repositories.AccommodationRepo{DB: db},
		PackageRepo:       repositories.PackageRepo{DB: db},
	}

	window, _ := ParseStayWindow("2026-03-01", "2026-03-02")
	_, err = svc.Search(404, window, 1)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if err.Error() != "Accommodation not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func mustDate(t *testing.T, s string) any {
	t.Helper()
	d, err := utils.ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}
