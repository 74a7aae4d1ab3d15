package models

import "time"

// Booking status lifecycle: pending -> approved | denied by staff,
// pending/approved -> cancel_requested by the customer -> cancelled by staff.
const (
	BookingPending         = "pending"
	BookingApproved        = "approved"
	BookingDenied          = "denied"
	BookingCancelRequested = "cancel_requested"
	BookingCancelled       = "cancelled"
)

var validBookingStatuses = map[string]bool{
	BookingPending:         true,
	BookingApproved:        true,
	BookingDenied:          true,
	BookingCancelRequested: true,
	BookingCancelled:       true,
}

func IsValidBookingStatus(status string) bool { return validBookingStatuses[status] }

type Booking struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id,omitempty"`
	GuestID     int64     `json:"guest_id,omitempty"`
	PackageID   int64     `json:"package_id"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Guests      int       `json:"guests"`
	Status      string    `json:"status"`
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`

	PackageName       string `json:"package_name,omitempty"`
	RoomTypeName      string `json:"room_type_name,omitempty"`
	AccommodationName string `json:"accommodation_name,omitempty"`

	LineItems []BookingLineItem `json:"line_items,omitempty"`
}

// BookingLineItem snapshots the price actually charged for one booked night,
// decoupled from later price changes on the availability row.
type BookingLineItem struct {
	ID                  int64     `json:"id"`
	BookingID           int64     `json:"booking_id"`
	DailyAvailabilityID int64     `json:"daily_availability_id"`
	Date                time.Time `json:"date"`
	RetailPrice         int64     `json:"retail_price"`
	CostPrice           int64     `json:"cost_price"`
}

// TotalRetail sums the nightly retail prices.
func (b Booking) TotalRetail() int64 {
	var total int64
	for _, li := range b.LineItems {
		total += li.RetailPrice
	}
	return total
}
