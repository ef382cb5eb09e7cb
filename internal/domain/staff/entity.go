package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

// Staff is referenced, never owned, by the wage engine. Admin screens manage
// the records; the engine reads them.
type Staff struct {
	ID                        string
	Name                      string
	Email                     *string
	PayRate                   decimal.Decimal // legacy flat hourly rate, lowest-precedence fallback
	DefaultRate               *decimal.Decimal
	AppliesPublicHolidayRules bool
	IsActive                  bool
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// RateType is one of the eight rate buckets used to resolve a base hourly
// rate: a specific weekday or the default fallback.
type RateType string

const (
	RateTypeDefault RateType = "default"
	RateTypeMon     RateType = "mon"
	RateTypeTue     RateType = "tue"
	RateTypeWed     RateType = "wed"
	RateTypeThu     RateType = "thu"
	RateTypeFri     RateType = "fri"
	RateTypeSat     RateType = "sat"
	RateTypeSun     RateType = "sun"
)

var weekdayRateTypes = [7]RateType{
	RateTypeSun, RateTypeMon, RateTypeTue, RateTypeWed, RateTypeThu, RateTypeFri, RateTypeSat,
}

// RateTypeForDate maps a calendar date's weekday to its rate bucket.
func RateTypeForDate(date time.Time) RateType {
	return weekdayRateTypes[int(date.Weekday())]
}

// ValidRateTypes lists every accepted rate_type value, default first.
func ValidRateTypes() []string {
	types := []string{string(RateTypeDefault)}
	for _, rt := range weekdayRateTypes {
		types = append(types, string(rt))
	}
	return types
}

// StaffRate is one effective-dated row of a staff member's rate history.
// Rows for the same (staff, rate_type) should form non-overlapping ranges;
// the resolver applies a deterministic tie-break when they don't.
type StaffRate struct {
	ID            string
	StaffID       string
	RateType      RateType
	Rate          decimal.Decimal
	EffectiveDate time.Time
	EndDate       time.Time
	IsCurrent     bool
	CreatedAt     time.Time
}

// Covers reports whether the rate row's effective range includes date.
// Boundaries are inclusive on both ends, matching the source queries
// (effective_date <= d AND end_date >= d).
func (r StaffRate) Covers(date time.Time) bool {
	d := civilDate(date)
	return civilDate(r.EffectiveDate) <= d && d <= civilDate(r.EndDate)
}

// PaymentInstruction is a staff-specific rule adding a per-hour adjustment to
// a bounded number of weekly hours, applied in priority order (lower first).
type PaymentInstruction struct {
	ID                string
	StaffID           string
	Label             string
	AdjustmentPerHour decimal.Decimal  // signed; may drive the effective rate negative
	WeeklyHoursCap    *decimal.Decimal // nil = unlimited
	PaymentMethod     *string          // payment channel, e.g. "Booking" or "Cash"
	Priority          int
	Active            bool
	EffectiveDate     time.Time
	EndDate           time.Time
	IsCurrent         bool
	CreatedAt         time.Time
}

// Covers reports whether the instruction's effective range includes date.
func (i PaymentInstruction) Covers(date time.Time) bool {
	d := civilDate(date)
	return civilDate(i.EffectiveDate) <= d && d <= civilDate(i.EndDate)
}

// civilDate collapses an instant to its calendar day in its own location,
// as a sortable yyyymmdd key. Range columns are DATE values scanned back as
// UTC midnights while report dates are midnights in the report timezone, so
// the two sides must never be compared as instants.
func civilDate(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
