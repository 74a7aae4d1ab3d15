package services

import (
	"fmt"
	"strconv"
	"time"

	"staybook/internal/domain"
	"staybook/internal/domain/models"
	"staybook/internal/repositories"
	"staybook/internal/utils"
)

// AvailabilityService answers "which room-type/package combinations can be
// booked for this window" with a resolved price per night.
type AvailabilityService struct {
	AccommodationRepo repositories.AccommodationRepo
	PackageRepo       repositories.PackageRepo
	RequestID         string
}

// StayWindow is a validated [CheckIn, CheckOut) date range.
type StayWindow struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (w StayWindow) Nights() int { return utils.Nights(w.CheckIn, w.CheckOut) }

// ParseStayWindow validates the raw check_in/check_out query params.
// Supplying neither defaults to a one-night stay starting today.
func ParseStayWindow(checkInRaw, checkOutRaw string) (StayWindow, error) {
	if (checkInRaw == "") != (checkOutRaw == "") {
		return StayWindow{}, domain.ValidationError{Msg: "Both 'check_in' and 'check_out' must be provided together"}
	}

	if checkInRaw == "" {
		today := utils.Today()
		return StayWindow{CheckIn: today, CheckOut: today.AddDate(0, 0, 1)}, nil
	}

	checkIn, err := utils.ParseDate(checkInRaw)
	if err != nil {
		return StayWindow{}, domain.ValidationError{Msg: "Invalid date format. Use 'YYYY-MM-DD'", Err: err}
	}
	checkOut, err := utils.ParseDate(checkOutRaw)
	if err != nil {
		return StayWindow{}, domain.ValidationError{Msg: "Invalid date format. Use 'YYYY-MM-DD'", Err: err}
	}
	if !checkIn.Before(checkOut) {
		return StayWindow{}, domain.ValidationError{Msg: "'check_in' must be earlier than 'check_out'"}
	}
	return StayWindow{CheckIn: checkIn, CheckOut: checkOut}, nil
}

// ParseGuests validates the guests query param, defaulting to 1.
func ParseGuests(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	guests, err := strconv.Atoi(raw)
	if err != nil || guests < 1 {
		return 0, domain.ValidationError{Msg: "'guests' must be a positive integer"}
	}
	return guests, nil
}

// DailyPriceEntry is one night of an availability result. Price is nil when
// neither a per-date override nor a weekday base price resolves.
type DailyPriceEntry struct {
	Date   string `json:"date"`
	Price  *int64 `json:"price"`
	Status string `json:"status"`
}

// RoomPackage is one bookable room-type/package combination.
type RoomPackage struct {
	PackageID    int64             `json:"package_id"`
	PackageName  string            `json:"package_name"`
	RoomTypeName string            `json:"room_type_name"`
	Description  string            `json:"description,omitempty"`
	IsActive     bool              `json:"is_active"`
	DailyPrices  []DailyPriceEntry `json:"daily_prices,omitempty"`
}

// Search returns the combinations bookable for every night of the window.
// A package qualifies only when each date in [check_in, check_out) has an
// OPEN daily availability row.
func (s AvailabilityService) Search(accommodationID int64, window StayWindow, guests int) ([]RoomPackage, error) {
	if _, err := s.AccommodationRepo.GetByID(accommodationID); err != nil {
		return nil, err
	}

	combos, err := s.PackageRepo.FindBookableCombos(accommodationID, guests, window.CheckIn, window.CheckOut, window.Nights())
	if err != nil {
		return nil, err
	}

	utils.LogEvent(s.RequestID, "availability", "search",
		fmt.Sprintf("accommodation_id=%d guests=%d nights=%d matches=%d",
			accommodationID, guests, window.Nights(), len(combos)))

	out := make([]RoomPackage, 0, len(combos))
	for _, combo := range combos {
		entries, err := s.resolveDailyPrices(combo.Package.ID, window)
		if err != nil {
			return nil, err
		}
		out = append(out, RoomPackage{
			PackageID:    combo.Package.ID,
			PackageName:  combo.Package.Name,
			RoomTypeName: combo.RoomTypeName,
			Description:  combo.Package.Description,
			IsActive:     combo.Package.IsActive,
			DailyPrices:  entries,
		})
	}
	return out, nil
}

// ListCombos returns every room-type/package combination of an
// accommodation regardless of date or occupancy.
func (s AvailabilityService) ListCombos(accommodationID int64) ([]RoomPackage, error) {
	if _, err := s.AccommodationRepo.GetByID(accommodationID); err != nil {
		return nil, err
	}

	combos, err := s.PackageRepo.ListCombosByAccommodation(accommodationID)
	if err != nil {
		return nil, err
	}

	out := make([]RoomPackage, 0, len(combos))
	for _, combo := range combos {
		out = append(out, RoomPackage{
			PackageID:    combo.Package.ID,
			PackageName:  combo.Package.Name,
			RoomTypeName: combo.RoomTypeName,
			Description:  combo.Package.Description,
			IsActive:     combo.Package.IsActive,
		})
	}
	return out, nil
}

// resolveDailyPrices maps the package's daily rows in the window to entries
// with the effective price (override, then weekday base, then none).
func (s AvailabilityService) resolveDailyPrices(packageID int64, window StayWindow) ([]DailyPriceEntry, error) {
	days, err := s.PackageRepo.DailyAvailabilities(packageID, window.CheckIn, window.CheckOut)
	if err != nil {
		return nil, err
	}
	weekdayBases, err := s.PackageRepo.WeekdayBasePrices(packageID)
	if err != nil {
		return nil, err
	}

	out := make([]DailyPriceEntry, 0, len(days))
	for _, day := range days {
		entry := DailyPriceEntry{Date: utils.FormatDate(day.Date), Status: day.Status}
		if retail, _, ok := models.EffectivePrice(day, weekdayBases); ok {
			price := retail
			entry.Price = &price
		}
		out = append(out, entry)
	}
	return out, nil
}
