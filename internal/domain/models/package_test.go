package models

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", s, time.Local)
	return t
}

func TestEffectivePriceOverrideWins(t *testing.T) {
	// 2026-03-01 is a Sunday (weekday 0).
	d := DailyAvailability{Date: day("2026-03-01"), RetailPrice: 150000, CostPrice: 120000, Status: AvailabilityOpen}
	bases := map[int]WeekdayBasePrice{0: {Weekday: 0, RetailPrice: 100000, CostPrice: 80000}}

	retail, cost, ok := EffectivePrice(d, bases)
	if !ok {
		t.Fatalf("expected a resolvable price")
	}
	if retail != 150000 || cost != 120000 {
		t.Fatalf("override must win, got retail=%d cost=%d", retail, cost)
	}
}

func TestEffectivePriceWeekdayFallback(t *testing.T) {
	d := DailyAvailability{Date: day("2026-03-01"), Status: AvailabilityOpen}
	bases := map[int]WeekdayBasePrice{0: {Weekday: 0, RetailPrice: 100000, CostPrice: 80000}}

	retail, cost, ok := EffectivePrice(d, bases)
	if !ok {
		t.Fatalf("expected the weekday base to apply")
	}
	if retail != 100000 || cost != 80000 {
		t.Fatalf("weekday base not used, got retail=%d cost=%d", retail, cost)
	}
}

func TestEffectivePricePartialOverrideIgnored(t *testing.T) {
	// Only one of the pair set: not a complete override, fall back.
	d := DailyAvailability{Date: day("2026-03-01"), RetailPrice: 150000, Status: AvailabilityOpen}
	bases := map[int]WeekdayBasePrice{0: {Weekday: 0, RetailPrice: 100000, CostPrice: 80000}}

	retail, _, ok := EffectivePrice(d, bases)
	if !ok || retail != 100000 {
		t.Fatalf("incomplete override should fall back to weekday base, got retail=%d ok=%v", retail, ok)
	}
}

func TestEffectivePriceUnresolvable(t *testing.T) {
	// 2026-03-02 is a Monday (weekday 1); only Sunday has a base price.
	d := DailyAvailability{Date: day("2026-03-02"), Status: AvailabilityOpen}
	bases := map[int]WeekdayBasePrice{0: {Weekday: 0, RetailPrice: 100000, CostPrice: 80000}}

	if _, _, ok := EffectivePrice(d, bases); ok {
		t.Fatalf("expected no resolvable price without override or matching weekday base")
	}
}
