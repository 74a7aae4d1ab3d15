package models

import "time"

// Payment methods available to customers.
const (
	PayCard         = "card"
	PayBankTransfer = "bank_transfer"
	PayMobile       = "mobile"
	PayPoints       = "points"
)

var validPaymentMethods = map[string]bool{
	PayCard:         true,
	PayBankTransfer: true,
	PayMobile:       true,
	PayPoints:       true,
}

func IsValidPaymentMethod(method string) bool { return validPaymentMethods[method] }

// Payment processing status.
const (
	PaymentPending         = "pending"
	PaymentCompleted       = "completed"
	PaymentRefundRequested = "refund_requested"
	PaymentRefunded        = "refunded"
	PaymentCancelRequested = "cancel_requested"
	PaymentCancelled       = "cancelled"
)

var validPaymentStatuses = map[string]bool{
	PaymentPending:         true,
	PaymentCompleted:       true,
	PaymentRefundRequested: true,
	PaymentRefunded:        true,
	PaymentCancelRequested: true,
	PaymentCancelled:       true,
}

func IsValidPaymentStatus(status string) bool { return validPaymentStatuses[status] }

// Settlement status with the accommodation partner (staff-only view).
const (
	SettlementNone    = "not_settled"
	SettlementPartial = "partially_settled"
	SettlementDone    = "settled"
)

// Payment records for a booking. Multiple rows per booking support split
// payments (e.g. card + points).
type Payment struct {
	ID          int64     `json:"id"`
	BookingID   int64     `json:"booking_id"`
	Amount      int64     `json:"amount"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`
}

// PaymentAdminInfo is staff-only settlement tracking per payment.
type PaymentAdminInfo struct {
	ID               int64  `json:"id"`
	PaymentID        int64  `json:"payment_id"`
	SettlementStatus string `json:"settlement_status"`
	StaffNote        string `json:"staff_note,omitempty"`
}
