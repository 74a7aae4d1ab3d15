package services

import (
	"fmt"
	"strings"

	"staybook/internal/domain"
	"staybook/internal/domain/models"
	"staybook/internal/repositories"
	"staybook/internal/utils"
)

// BookingService creates bookings with nightly price snapshots and enforces
// the owner-or-guest access rule.
type BookingService struct {
	BookingRepo  repositories.BookingRepo
	PackageRepo  repositories.PackageRepo
	RoomTypeRepo repositories.RoomTypeRepo
	UserRepo     repositories.UserRepo
	Mailer       *MailService
	RequestID    string
}

// GuestPayload carries contact info for a non-registered customer.
type GuestPayload struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// CreateBookingInput is a validated-on-entry booking request.
type CreateBookingInput struct {
	PackageID   int64
	CheckInRaw  string
	CheckOutRaw string
	Guests      int
	Guest       *GuestPayload
}

// Create validates the request, snapshots the effective price for each
// night, and writes the booking plus line items in one transaction. Exactly
// one of {authenticated caller, guest payload} must identify the customer.
func (s BookingService) Create(caller domain.Caller, in CreateBookingInput) (models.Booking, error) {
	window, err := ParseStayWindow(in.CheckInRaw, in.CheckOutRaw)
	if err != nil {
		return models.Booking{}, err
	}
	if in.CheckInRaw == "" {
		return models.Booking{}, domain.ValidationError{Msg: "Both 'check_in' and 'check_out' must be provided together"}
	}
	if in.Guests < 1 {
		return models.Booking{}, domain.ValidationError{Msg: "'guests' must be a positive integer"}
	}

	if caller.Authenticated() && in.Guest != nil {
		return models.Booking{}, domain.ValidationError{Msg: "A booking belongs to either a user or a guest, not both"}
	}
	if !caller.Authenticated() {
		if in.Guest == nil {
			return models.Booking{}, domain.ValidationError{Msg: "Guest contact info is required for guest bookings"}
		}
		if strings.TrimSpace(in.Guest.Name) == "" {
			return models.Booking{}, domain.ValidationError{Field: "name", Msg: "Guest name is required"}
		}
		if !utils.IsValidPhoneNumber(in.Guest.PhoneNumber) {
			return models.Booking{}, domain.ValidationError{Field: "phone_number", Msg: "Phone number should be in digits"}
		}
	}

	pkg, err := s.PackageRepo.GetByID(in.PackageID)
	if err != nil {
		return models.Booking{}, err
	}
	if !pkg.IsActive {
		return models.Booking{}, domain.ValidationError{Msg: "Package is not open for booking"}
	}

	roomType, err := s.RoomTypeRepo.GetByID(pkg.RoomTypeID)
	if err != nil {
		return models.Booking{}, err
	}
	if in.Guests < roomType.BaseOccupancy || in.Guests > roomType.MaxOccupancy {
		return models.Booking{}, domain.ValidationError{
			Msg: fmt.Sprintf("This room type takes %d to %d guests", roomType.BaseOccupancy, roomType.MaxOccupancy),
		}
	}

	lineItems, err := s.buildLineItems(pkg.ID, window)
	if err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		UserID:    caller.UserID,
		PackageID: pkg.ID,
		CheckIn:   window.CheckIn,
		CheckOut:  window.CheckOut,
		Guests:    in.Guests,
		Status:    models.BookingPending,
	}
	if in.Guest != nil {
		guestID, err := s.BookingRepo.CreateGuest(models.Guest{
			Name:        in.Guest.Name,
			PhoneNumber: in.Guest.PhoneNumber,
			Email:       in.Guest.Email,
		})
		if err != nil {
			return models.Booking{}, err
		}
		booking.GuestID = guestID
	}

	bookingID, err := s.BookingRepo.Create(booking, lineItems)
	if err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d package_id=%d nights=%d", bookingID, pkg.ID, window.Nights()))

	created, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return models.Booking{}, err
	}

	if s.Mailer != nil {
		if email := s.customerEmail(created, in.Guest); email != "" {
			s.Mailer.SendBookingConfirmation(s.RequestID, email, created)
		}
	}
	return created, nil
}

// buildLineItems requires an OPEN daily row with a resolvable price for
// every night of the window.
func (s BookingService) buildLineItems(packageID int64, window StayWindow) ([]models.BookingLineItem, error) {
	days, err := s.PackageRepo.DailyAvailabilities(packageID, window.CheckIn, window.CheckOut)
	if err != nil {
		return nil, err
	}

	open := map[string]models.DailyAvailability{}
	for _, day := range days {
		if day.Status == models.AvailabilityOpen {
			open[utils.FormatDate(day.Date)] = day
		}
	}

	weekdayBases, err := s.PackageRepo.WeekdayBasePrices(packageID)
	if err != nil {
		return nil, err
	}

	lineItems := []models.BookingLineItem{}
	for _, date := range utils.DatesBetween(window.CheckIn, window.CheckOut) {
		key := utils.FormatDate(date)
		day, ok := open[key]
		if !ok {
			return nil, domain.ValidationError{Msg: fmt.Sprintf("Package is not available on %s", key)}
		}
		retail, cost, ok := models.EffectivePrice(day, weekdayBases)
		if !ok {
			return nil, domain.ValidationError{Msg: fmt.Sprintf("No price available for %s", key)}
		}
		lineItems = append(lineItems, models.BookingLineItem{
			DailyAvailabilityID: day.ID,
			Date:                day.Date,
			RetailPrice:         retail,
			CostPrice:           cost,
		})
	}
	return lineItems, nil
}

// Get applies the access rule: the owning user (or staff) when
// authenticated, otherwise the booking id plus a matching guest phone.
func (s BookingService) Get(caller domain.Caller, id int64, guestPhone string) (models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := s.authorize(caller, booking, guestPhone); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

func (s BookingService) authorize(caller domain.Caller, booking models.Booking, guestPhone string) error {
	if caller.Authenticated() {
		if caller.IsStaff || caller.UserID == booking.UserID {
			return nil
		}
		return domain.PermissionError{Msg: "You do not have permission to view this booking"}
	}

	if booking.GuestID == 0 {
		return domain.PermissionError{Msg: "You do not have permission to view this booking"}
	}
	guest, err := s.BookingRepo.GetGuest(booking.GuestID)
	if err != nil {
		return domain.PermissionError{Msg: "Invalid guest credentials", Err: err}
	}
	if guestPhone == "" || guestPhone != guest.PhoneNumber {
		return domain.PermissionError{Msg: "Invalid guest credentials"}
	}
	return nil
}

// RequestCancellation is idempotent-guarded: repeating the request fails
// instead of silently succeeding.
func (s BookingService) RequestCancellation(caller domain.Caller, id int64, guestPhone string) (models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := s.authorize(caller, booking, guestPhone); err != nil {
		return models.Booking{}, err
	}

	switch booking.Status {
	case models.BookingCancelRequested:
		return models.Booking{}, domain.ConflictError{Resource: "booking", Msg: "Cancellation already requested"}
	case models.BookingCancelled, models.BookingDenied:
		return models.Booking{}, domain.ValidationError{Msg: "Booking can no longer be cancelled"}
	}

	if err := s.BookingRepo.UpdateStatus(id, models.BookingCancelRequested); err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "cancel_request", fmt.Sprintf("booking_id=%d", id))
	booking.Status = models.BookingCancelRequested
	return booking, nil
}

// Staff transitions.

func (s BookingService) Approve(id int64, staffNote string) error {
	return s.transition(id, models.BookingPending, models.BookingApproved, staffNote)
}

func (s BookingService) Deny(id int64, staffNote string) error {
	return s.transition(id, models.BookingPending, models.BookingDenied, staffNote)
}

func (s BookingService) Cancel(id int64, staffNote string) error {
	return s.transition(id, models.BookingCancelRequested, models.BookingCancelled, staffNote)
}

func (s BookingService) transition(id int64, from, to, staffNote string) error {
	booking, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return err
	}
	if booking.Status != from {
		return domain.ValidationError{Msg: fmt.Sprintf("Booking is %s, expected %s", booking.Status, from)}
	}
	if err := s.BookingRepo.UpdateStatus(id, to); err != nil {
		return err
	}
	if strings.TrimSpace(staffNote) != "" {
		if err := s.BookingRepo.SetStaffNote(id, staffNote); err != nil {
			return err
		}
	}
	utils.LogEvent(s.RequestID, "booking", "status_"+to, fmt.Sprintf("booking_id=%d", id))
	return nil
}

func (s BookingService) customerEmail(booking models.Booking, guest *GuestPayload) string {
	if guest != nil {
		return strings.TrimSpace(guest.Email)
	}
	if booking.UserID != 0 {
		if u, err := s.UserRepo.GetByID(booking.UserID); err == nil {
			return u.Email
		}
	}
	return ""
}
