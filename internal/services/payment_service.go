package services

import (
	"fmt"

	"staybook/internal/domain"
	"staybook/internal/domain/models"
	"staybook/internal/repositories"
	"staybook/internal/utils"
)

// PaymentService records payments against bookings. Multiple payments per
// booking support splitting across methods; no invariant forces the sum to
// match the booking total.
type PaymentService struct {
	PaymentRepo repositories.PaymentRepo
	BookingSvc  BookingService
	RequestID   string
}

// CreatePaymentInput carries a single payment of a possibly split total.
type CreatePaymentInput struct {
	BookingID  int64
	Amount     int64
	Method     string
	GuestPhone string
}

func (s PaymentService) Create(caller domain.Caller, in CreatePaymentInput) (models.Payment, error) {
	if in.Amount <= 0 {
		return models.Payment{}, domain.ValidationError{Field: "amount", Msg: "Amount must be positive"}
	}
	if !models.IsValidPaymentMethod(in.Method) {
		return models.Payment{}, domain.ValidationError{Field: "method", Msg: "Unknown payment method"}
	}

	// Same access rule as booking detail.
	if _, err := s.BookingSvc.Get(caller, in.BookingID, in.GuestPhone); err != nil {
		return models.Payment{}, err
	}

	payment := models.Payment{
		BookingID: in.BookingID,
		Amount:    in.Amount,
		Method:    in.Method,
		Status:    models.PaymentPending,
	}
	id, err := s.PaymentRepo.Create(payment)
	if err != nil {
		return models.Payment{}, err
	}

	utils.LogEvent(s.RequestID, "payment", "create",
		fmt.Sprintf("payment_id=%d booking_id=%d method=%s", id, in.BookingID, in.Method))
	return s.PaymentRepo.GetByID(id)
}

func (s PaymentService) ListForBooking(caller domain.Caller, bookingID int64, guestPhone string) ([]models.Payment, error) {
	if _, err := s.BookingSvc.Get(caller, bookingID, guestPhone); err != nil {
		return nil, err
	}
	return s.PaymentRepo.ListByBooking(bookingID)
}

// UpdateStatus is staff-only (enforced at the route) and moves a payment
// through its processing lifecycle.
func (s PaymentService) UpdateStatus(paymentID int64, status string) (models.Payment, error) {
	if !models.IsValidPaymentStatus(status) {
		return models.Payment{}, domain.ValidationError{Field: "status", Msg: "Unknown payment status"}
	}
	if _, err := s.PaymentRepo.GetByID(paymentID); err != nil {
		return models.Payment{}, err
	}
	if err := s.PaymentRepo.UpdateStatus(paymentID, status); err != nil {
		return models.Payment{}, err
	}

	utils.LogEvent(s.RequestID, "payment", "status",
		fmt.Sprintf("payment_id=%d status=%s", paymentID, status))
	return s.PaymentRepo.GetByID(paymentID)
}

// UpdateSettlement is staff-only (enforced at the route) and tracks
// settlement with the accommodation partner.
func (s PaymentService) UpdateSettlement(paymentID int64, settlementStatus, staffNote string) (models.PaymentAdminInfo, error) {
	switch settlementStatus {
	case models.SettlementNone, models.SettlementPartial, models.SettlementDone:
	default:
		return models.PaymentAdminInfo{}, domain.ValidationError{Field: "settlement_status", Msg: "Unknown settlement status"}
	}

	if _, err := s.PaymentRepo.GetByID(paymentID); err != nil {
		return models.PaymentAdminInfo{}, err
	}

	info := models.PaymentAdminInfo{
		PaymentID:        paymentID,
		SettlementStatus: settlementStatus,
		StaffNote:        staffNote,
	}
	if err := s.PaymentRepo.UpsertAdminInfo(info); err != nil {
		return models.PaymentAdminInfo{}, err
	}

	utils.LogEvent(s.RequestID, "payment", "settlement",
		fmt.Sprintf("payment_id=%d status=%s", paymentID, settlementStatus))
	return s.PaymentRepo.GetAdminInfo(paymentID)
}
