package services

import (
	"testing"
	"time"

	intconfig "staybook/internal/config"
	"staybook/internal/domain"
	"staybook/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newBookingMock(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db
	mock.MatchExpectationsInOrder(false)

	svc := BookingService{
		BookingRepo:  repositories.BookingRepo{DB: db},
		PackageRepo:  repositories.PackageRepo{DB: db},
		RoomTypeRepo: repositories.RoomTypeRepo{DB: db},
		UserRepo:     repositories.UserRepo{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func expectBookingRow(mock sqlmock.Sqlmock, id, userID, guestID int64, status string) {
	now := time.Now()
	mock.ExpectQuery("FROM bookings b").WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "guest_id", "package_id", "check_in", "check_out",
			"guests", "status", "created_date", "updated_date",
			"package_name", "room_type_name", "accommodation_name",
		}).AddRow(id, userID, guestID, 3, now, now.AddDate(0, 0, 2), 2, status, now, now,
			"Breakfast Package", "Deluxe Double", "Seoul Stay"))
	mock.ExpectQuery("FROM booking_line_items li").WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_id", "daily_availability_id", "date", "retail_price", "cost_price",
		}))
}

func TestCreateBookingRequiresDates(t *testing.T) {
	svc := BookingService{}
	_, err := svc.Create(domain.Caller{UserID: 5}, CreateBookingInput{PackageID: 1, Guests: 2})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateBookingRejectsUserAndGuestTogether(t *testing.T) {
	svc := BookingService{}
	_, err := svc.Create(domain.Caller{UserID: 5}, CreateBookingInput{
		PackageID:   1,
		CheckInRaw:  "2026-03-01",
		CheckOutRaw: "2026-03-02",
		Guests:      2,
		Guest:       &GuestPayload{Name: "Kim", PhoneNumber: "01012345678"},
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateBookingAnonymousNeedsGuestInfo(t *testing.T) {
	svc := BookingService{}
	_, err := svc.Create(domain.Caller{}, CreateBookingInput{
		PackageID:   1,
		CheckInRaw:  "2026-03-01",
		CheckOutRaw: "2026-03-02",
		Guests:      2,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = svc.Create(domain.Caller{}, CreateBookingInput{
		PackageID:   1,
		CheckInRaw:  "2026-03-01",
		CheckOutRaw: "2026-03-02",
		Guests:      2,
		Guest:       &GuestPayload{Name: "Kim", PhoneNumber: "010-1234"},
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected phone validation error, got %v", err)
	}
}

func TestGetBookingOwnerOnly(t *testing.T) {
	svc, mock, done := newBookingMock(t)
	defer done()

	expectBookingRow(mock, 9, 5, 0, "pending")
	if _, err := svc.Get(domain.Caller{UserID: 5}, 9, ""); err != nil {
		t.Fatalf("owner should read own booking: %v", err)
	}

	expectBookingRow(mock, 9, 5, 0, "pending")
	_, err := svc.Get(domain.Caller{UserID: 6}, 9, "")
	if !domain.IsPermission(err) {
		t.Fatalf("expected permission error for stranger, got %v", err)
	}
	if err.Error() != "You do not have permission to view this booking" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	expectBookingRow(mock, 9, 5, 0, "pending")
	if _, err := svc.Get(domain.Caller{UserID: 99, IsStaff: true}, 9, ""); err != nil {
		t.Fatalf("staff should read any booking: %v", err)
	}
}

func TestGetBookingGuestPhoneCheck(t *testing.T) {
	svc, mock, done := newBookingMock(t)
	defer done()

	expectBookingRow(mock, 12, 0, 4, "pending")
	mock.ExpectQuery("FROM guests").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone_number", "email"}).
			AddRow(4, "Kim", "01012345678", ""))
	if _, err := svc.Get(domain.Caller{}, 12, "01012345678"); err != nil {
		t.Fatalf("matching phone should grant access: %v", err)
	}

	expectBookingRow(mock, 12, 0, 4, "pending")
	mock.ExpectQuery("FROM guests").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone_number", "email"}).
			AddRow(4, "Kim", "01012345678", ""))
	_, err := svc.Get(domain.Caller{}, 12, "01099999999")
	if !domain.IsPermission(err) || err.Error() != "Invalid guest credentials" {
		t.Fatalf("expected guest credential error, got %v", err)
	}
}

func TestRequestCancellationGuards(t *testing.T) {
	svc, mock, done := newBookingMock(t)
	defer done()

	expectBookingRow(mock, 20, 5, 0, "cancel_requested")
	_, err := svc.RequestCancellation(domain.Caller{UserID: 5}, 20, "")
	if !domain.IsConflict(err) || err.Error() != "Cancellation already requested" {
		t.Fatalf("expected repeat-request conflict, got %v", err)
	}

	expectBookingRow(mock, 21, 5, 0, "cancelled")
	_, err = svc.RequestCancellation(domain.Caller{UserID: 5}, 21, "")
	if !domain.IsValidation(err) || err.Error() != "Booking can no longer be cancelled" {
		t.Fatalf("expected terminal-state error, got %v", err)
	}
}

func TestRequestCancellationUpdatesStatus(t *testing.T) {
	svc, mock, done := newBookingMock(t)
	defer done()

	expectBookingRow(mock, 22, 5, 0, "pending")
	mock.ExpectExec("UPDATE bookings SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))

	booking, err := svc.RequestCancellation(domain.Caller{UserID: 5}, 22, "")
	if err != nil {
		t.Fatalf("cancel request failed: %v", err)
	}
	if booking.Status != "cancel_requested" {
		t.Fatalf("status not updated, got %q", booking.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStaffTransitionRejectsWrongState(t *testing.T) {
	svc, mock, done := newBookingMock(t)
	defer done()

	expectBookingRow(mock, 30, 5, 0, "approved")
	if err := svc.Approve(30, ""); !domain.IsValidation(err) {
		t.Fatalf("approving a non-pending booking must fail, got %v", err)
	}
}
