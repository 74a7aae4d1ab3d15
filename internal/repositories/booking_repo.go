package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "staybook/internal/config"
	"staybook/internal/domain"
	"staybook/internal/domain/models"
	"staybook/internal/utils"
)

type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// CreateGuest stores a non-registered customer's contact info.
func (r BookingRepo) CreateGuest(g models.Guest) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO guests (name, phone_number, email) VALUES (?, ?, ?)`,
		strings.TrimSpace(g.Name), strings.TrimSpace(g.PhoneNumber), strings.TrimSpace(g.Email))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepo) GetGuest(id int64) (models.Guest, error) {
	var g models.Guest
	err := r.db().QueryRow(`
		SELECT id, name, phone_number, COALESCE(email, '') FROM guests WHERE id = ?`, id).
		Scan(&g.ID, &g.Name, &g.PhoneNumber, &g.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Guest{}, domain.NotFoundError{Resource: "Guest"}
		}
		return models.Guest{}, err
	}
	return g, nil
}

// Create writes the booking and its nightly line items in one transaction.
func (r BookingRepo) Create(b models.Booking, lineItems []models.BookingLineItem) (int64, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO bookings
			(user_id, guest_id, package_id, check_in, check_out, guests, status, created_date, updated_date)
		VALUES (NULLIF(?, 0), NULLIF(?, 0), ?, ?, ?, ?, ?, NOW(), NOW())`,
		b.UserID, b.GuestID, b.PackageID,
		utils.FormatDate(b.CheckIn), utils.FormatDate(b.CheckOut),
		b.Guests, b.Status)
	if err != nil {
		return 0, err
	}
	bookingID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, li := range lineItems {
		if _, err := tx.Exec(`
			INSERT INTO booking_line_items (booking_id, daily_availability_id, retail_price, cost_price)
			VALUES (?, ?, ?, ?)`,
			bookingID, li.DailyAvailabilityID, li.RetailPrice, li.CostPrice); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return bookingID, nil
}

const bookingColumns = `b.id, COALESCE(b.user_id, 0), COALESCE(b.guest_id, 0), b.package_id,
		b.check_in, b.check_out, b.guests, b.status, b.created_date, b.updated_date,
		p.name, rt.name, a.name`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.GuestID, &b.PackageID,
		&b.CheckIn, &b.CheckOut, &b.Guests, &b.Status, &b.CreatedDate, &b.UpdatedDate,
		&b.PackageName, &b.RoomTypeName, &b.AccommodationName,
	)
	return b, err
}

// GetByID fetches a booking with package/room-type/accommodation names.
func (r BookingRepo) GetByID(id int64) (models.Booking, error) {
	row := r.db().QueryRow(`
		SELECT `+bookingColumns+`
		FROM bookings b
		JOIN packages p ON p.id = b.package_id
		JOIN room_types rt ON rt.id = p.room_type_id
		JOIN accommodations a ON a.id = rt.accommodation_id
		WHERE b.id = ?`, id)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "Booking", Msg: "Booking not found"}
		}
		return models.Booking{}, err
	}

	items, err := r.ListLineItems(id)
	if err != nil {
		return models.Booking{}, err
	}
	b.LineItems = items
	return b, nil
}

// ListLineItems returns the nightly snapshots of a booking, joined with the
// availability row's date.
func (r BookingRepo) ListLineItems(bookingID int64) ([]models.BookingLineItem, error) {
	rows, err := r.db().Query(`
		SELECT li.id, li.booking_id, li.daily_availability_id, da.date, li.retail_price, li.cost_price
		FROM booking_line_items li
		JOIN package_daily_availabilities da ON da.id = li.daily_availability_id
		WHERE li.booking_id = ?
		ORDER BY da.date`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingLineItem{}
	for rows.Next() {
		var li models.BookingLineItem
		if err := rows.Scan(&li.ID, &li.BookingID, &li.DailyAvailabilityID, &li.Date, &li.RetailPrice, &li.CostPrice); err != nil {
			return nil, err
		}
		out = append(out, li)
	}
	return out, rows.Err()
}

// List returns bookings for staff screens, optionally filtered by status.
func (r BookingRepo) List(status string) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN packages p ON p.id = b.package_id
		JOIN room_types rt ON rt.id = p.room_type_id
		JOIN accommodations a ON a.id = rt.accommodation_id`
	args := []any{}
	if status != "" {
		query += ` WHERE b.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY b.id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateStatus moves a booking to the given status.
func (r BookingRepo) UpdateStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE bookings SET status=?, updated_date=NOW() WHERE id=?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM bookings WHERE id=?`, id).Scan(&exists); err == nil && exists == 0 {
			return domain.NotFoundError{Resource: "Booking", Msg: "Booking not found"}
		}
	}
	return nil
}

// SetStaffNote upserts the staff-only note of a booking.
func (r BookingRepo) SetStaffNote(bookingID int64, note string) error {
	_, err := r.db().Exec(`
		INSERT INTO booking_admin_infos (booking_id, staff_note)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE staff_note = VALUES(staff_note)`,
		bookingID, note)
	return err
}
