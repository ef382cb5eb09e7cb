package wage

import (
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/holiday"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/staff"
	"github.com/shopspring/decimal"
)

// Payment channels recognised on instruction payment methods. Hours with no
// instruction capacity left default to the cash channel.
const (
	ChannelBooking = "Booking"
	ChannelCash    = "Cash"
)

// NormalizedShift is the engine's view of a raw shift: duration from absolute
// timestamps, billable hours clamped at zero, attributed entirely to the
// calendar date of its start even when it crosses midnight.
type NormalizedShift struct {
	ShiftID          string
	StaffID          string
	Date             time.Time // midnight, report timezone
	StartTime        time.Time
	EndTime          time.Time
	RawHours         decimal.Decimal
	NonBillableHours decimal.Decimal
	BillableHours    decimal.Decimal
}

// ReportRow is one allocated shift in a flat report. Derived and ephemeral;
// persisted only inside a payment snapshot.
type ReportRow struct {
	ShiftID          string          `json:"shift_id"`
	StaffID          string          `json:"staff_id"`
	StaffName        string          `json:"staff_name"`
	Date             time.Time       `json:"date"`
	StartTime        time.Time       `json:"start_time"`
	EndTime          time.Time       `json:"end_time"`
	BillableHours    decimal.Decimal `json:"billable_hours"`
	NonBillableHours decimal.Decimal `json:"non_billable_hours"`
	BaseRate         decimal.Decimal `json:"base_rate"`
	// EffectiveRate is the rate of the first instruction slice that applied,
	// or the base rate when none did.
	EffectiveRate  decimal.Decimal `json:"effective_rate"`
	Amount         decimal.Decimal `json:"amount"`
	BookingHours   decimal.Decimal `json:"booking_hours"`
	BookingAmount  decimal.Decimal `json:"booking_amount"`
	CashHours      decimal.Decimal `json:"cash_hours"`
	CashAmount     decimal.Decimal `json:"cash_amount"`
	HolidayApplied bool            `json:"holiday_applied"`
	Notes          *string         `json:"notes,omitempty"`
}

// DayCell is one cell of the weekly grid.
type DayCell struct {
	Hours  decimal.Decimal `json:"hours"`
	Amount decimal.Decimal `json:"amount"`
}

// StaffWeekRow is one row of the staff-by-day matrix. Cells run Monday
// through Sunday.
type StaffWeekRow struct {
	StaffID     string          `json:"staff_id"`
	StaffName   string          `json:"staff_name"`
	Cells       [7]DayCell      `json:"cells"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// StaffSummary aggregates one staff member's week with the payment channel
// split used by the payment report.
type StaffSummary struct {
	StaffID      string          `json:"staff_id"`
	StaffName    string          `json:"staff_name"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	TotalWages   decimal.Decimal `json:"total_wages"`
	BookingHours decimal.Decimal `json:"booking_hours"`
	BookingWages decimal.Decimal `json:"booking_wages"`
	CashHours    decimal.Decimal `json:"cash_hours"`
	CashWages    decimal.Decimal `json:"cash_wages"`
}

// BookingRate is the average hourly rate actually paid through the booking
// channel, zero when no booking hours accrued.
func (s StaffSummary) BookingRate() decimal.Decimal {
	if s.BookingHours.IsZero() {
		return decimal.Zero
	}
	return s.BookingWages.Div(s.BookingHours)
}

// CashRate is the average hourly rate actually paid through the cash channel.
func (s StaffSummary) CashRate() decimal.Decimal {
	if s.CashHours.IsZero() {
		return decimal.Zero
	}
	return s.CashWages.Div(s.CashHours)
}

// WeekReport is the result of one full allocation run: a flat row per shift,
// the staff-by-day grid, per-staff summaries and grand totals. Always a live
// recomputation from current rate and instruction data.
type WeekReport struct {
	WeekStart   time.Time       `json:"week_start"`
	WeekEnd     time.Time       `json:"week_end"`
	Rows        []ReportRow     `json:"rows"`
	Grid        []StaffWeekRow  `json:"grid"`
	Summaries   []StaffSummary  `json:"summaries"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SummaryFor returns the summary for a staff member, if the week has one.
func (r WeekReport) SummaryFor(staffID string) (StaffSummary, bool) {
	for _, s := range r.Summaries {
		if s.StaffID == staffID {
			return s, true
		}
	}
	return StaffSummary{}, false
}

// PaymentData is the opaque structured payload sealed into a snapshot: the
// computation's full inputs and per-shift results at pay time.
type PaymentData struct {
	Staff        PaymentStaff               `json:"staff"`
	Summary      PaymentSummary             `json:"summary"`
	Shifts       []ReportRow                `json:"shifts"`
	Rates        []staff.StaffRate          `json:"rates"`
	Instructions []staff.PaymentInstruction `json:"instructions"`
	Holidays     []holiday.PublicHoliday    `json:"holidays"`
}

type PaymentStaff struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

type PaymentSummary struct {
	TotalHours      decimal.Decimal `json:"total_hours"`
	TotalWages      decimal.Decimal `json:"total_wages"`
	BookingHours    decimal.Decimal `json:"booking_hours"`
	BookingWages    decimal.Decimal `json:"booking_wages"`
	CashHours       decimal.Decimal `json:"cash_hours"`
	CashWages       decimal.Decimal `json:"cash_wages"`
	ReportGenerated time.Time       `json:"report_generated"`
	WeekStart       time.Time       `json:"week_start"`
	WeekEnd         time.Time       `json:"week_end"`
}

// WagePayment is an immutable record of one finalized weekly pay run per
// staff member. Written once at pay time; later edits to rates, holidays or
// instructions never touch it.
type WagePayment struct {
	ID           string
	StaffID      string
	WeekStart    time.Time
	WeekEnd      time.Time
	TotalHours   decimal.Decimal
	TotalWages   decimal.Decimal
	BookingHours decimal.Decimal
	BookingWages decimal.Decimal
	CashHours    decimal.Decimal
	CashWages    decimal.Decimal
	PaymentData  PaymentData
	CreatedBy    string
	PaidAt       time.Time
	CreatedAt    time.Time

	// Joined fields
	StaffName  *string
	StaffEmail *string
}
