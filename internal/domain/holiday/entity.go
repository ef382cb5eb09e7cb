package holiday

import (
	"time"

	"github.com/shopspring/decimal"
)

// PublicHoliday carries either a percentage multiplier or a flat additive
// markup on the base hourly rate. When both are set, percentage wins.
type PublicHoliday struct {
	ID               string
	Name             string
	HolidayDate      time.Time
	Year             int
	MarkupPercentage decimal.Decimal // e.g. 150 means time-and-a-half
	MarkupAmount     decimal.Decimal
	IsActive         bool
	CreatedBy        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AdjustRate applies the holiday markup to a base hourly rate.
func (h PublicHoliday) AdjustRate(base decimal.Decimal) decimal.Decimal {
	if h.MarkupPercentage.IsPositive() {
		return base.Mul(h.MarkupPercentage).Div(decimal.NewFromInt(100))
	}
	if h.MarkupAmount.IsPositive() {
		return base.Add(h.MarkupAmount)
	}
	return base
}
