package repositories

import (
	"testing"

	intconfig "staybook/internal/config"
	"staybook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestWishlistCreateDuplicateIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectExec("INSERT INTO wishlists").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '5' for key 'uq_wishlists_user'"})

	_, err = WishlistRepo{DB: db}.Create(5, "trip")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err.Error() != "You already have a wishlist" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWishlistGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery("FROM wishlists w").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id", "username"}))

	_, err = WishlistRepo{DB: db}.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
