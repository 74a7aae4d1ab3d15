package models

import "time"

// Availability status of a package on a specific date.
const (
	AvailabilityOpen   = "open"
	AvailabilityClosed = "close"
)

type Package struct {
	ID          int64  `json:"id"`
	RoomTypeID  int64  `json:"room_type_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BasePrice   int64  `json:"base_price"`
	IsActive    bool   `json:"is_active"`

	DailyPrices []DailyAvailability `json:"daily_prices,omitempty"`
}

// WeekdayBasePrice is the fallback price for a package keyed by day of week,
// 0=Sunday..6=Saturday. Unique per (package, weekday).
type WeekdayBasePrice struct {
	ID          int64 `json:"id"`
	PackageID   int64 `json:"package_id"`
	Weekday     int   `json:"weekday"`
	RetailPrice int64 `json:"retail_price"`
	CostPrice   int64 `json:"cost_price"`
}

// DailyAvailability is the per-date bookability and price override for a
// package. Unique per (package, date). A zero retail/cost pair means no
// override is set for the date.
type DailyAvailability struct {
	ID          int64     `json:"id"`
	PackageID   int64     `json:"package_id"`
	Date        time.Time `json:"date"`
	RetailPrice int64     `json:"retail_price"`
	CostPrice   int64     `json:"cost_price"`
	Status      string    `json:"status"`
}

// EffectivePrice resolves the price actually charged for one night:
// per-date override first, then the weekday base price for the date's
// weekday, otherwise no price is resolvable. weekdayBases is keyed by
// weekday (0=Sunday..6=Saturday).
func EffectivePrice(day DailyAvailability, weekdayBases map[int]WeekdayBasePrice) (retail, cost int64, ok bool) {
	if day.RetailPrice > 0 && day.CostPrice > 0 {
		return day.RetailPrice, day.CostPrice, true
	}
	base, found := weekdayBases[int(day.Date.Weekday())]
	if !found {
		return 0, 0, false
	}
	return base.RetailPrice, base.CostPrice, true
}
