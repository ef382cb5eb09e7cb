package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift is a raw roster entry. StaffID is nullable: unassigned shifts stay on
// the roster but are excluded from payroll.
type Shift struct {
	ID               string
	StaffID          *string
	StartTime        time.Time
	EndTime          time.Time
	NonBillableHours decimal.Decimal
	Notes            *string
	SectionID        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
