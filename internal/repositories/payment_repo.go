package repositories

import (
	"database/sql"
	"errors"

	intconfig "staybook/internal/config"
	"staybook/internal/domain"
	"staybook/internal/domain/models"
)

type PaymentRepo struct {
	DB *sql.DB
}

func (r PaymentRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PaymentRepo) Create(p models.Payment) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO payments (booking_id, amount, method, status, created_date, updated_date)
		VALUES (?, ?, ?, ?, NOW(), NOW())`,
		p.BookingID, p.Amount, p.Method, p.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PaymentRepo) GetByID(id int64) (models.Payment, error) {
	var p models.Payment
	err := r.db().QueryRow(`
		SELECT id, booking_id, amount, method, status, created_date, updated_date
		FROM payments WHERE id = ?`, id).
		Scan(&p.ID, &p.BookingID, &p.Amount, &p.Method, &p.Status, &p.CreatedDate, &p.UpdatedDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Payment{}, domain.NotFoundError{Resource: "Payment", Msg: "Payment not found"}
		}
		return models.Payment{}, err
	}
	return p, nil
}

// ListByBooking returns all payment rows of a booking (split payments).
func (r PaymentRepo) ListByBooking(bookingID int64) ([]models.Payment, error) {
	rows, err := r.db().Query(`
		SELECT id, booking_id, amount, method, status, created_date, updated_date
		FROM payments
		WHERE booking_id = ?
		ORDER BY id`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Amount, &p.Method, &p.Status, &p.CreatedDate, &p.UpdatedDate); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PaymentRepo) UpdateStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE payments SET status=?, updated_date=NOW() WHERE id=?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}

// UpsertAdminInfo sets the staff-only settlement record of a payment.
func (r PaymentRepo) UpsertAdminInfo(info models.PaymentAdminInfo) error {
	_, err := r.db().Exec(`
		INSERT INTO payment_admin_infos (payment_id, settlement_status, staff_note)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE
			settlement_status = VALUES(settlement_status),
			staff_note = VALUES(staff_note)`,
		info.PaymentID, info.SettlementStatus, info.StaffNote)
	return err
}

func (r PaymentRepo) GetAdminInfo(paymentID int64) (models.PaymentAdminInfo, error) {
	var info models.PaymentAdminInfo
	err := r.db().QueryRow(`
		SELECT id, payment_id, settlement_status, COALESCE(staff_note, '')
		FROM payment_admin_infos WHERE payment_id = ?`, paymentID).
		Scan(&info.ID, &info.PaymentID, &info.SettlementStatus, &info.StaffNote)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PaymentAdminInfo{PaymentID: paymentID, SettlementStatus: models.SettlementNone}, nil
		}
		return models.PaymentAdminInfo{}, err
	}
	return info, nil
}
