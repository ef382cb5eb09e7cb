package wage

import (
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// REPORT REQUESTS
// ========================================

type WeekRequest struct {
	Week string `json:"week"` // YYYY-MM-DD, any day of the wanted week
}

func (r *WeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Week); !ok {
		errs = append(errs, validator.ValidationError{Field: "week", Message: "week must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.Start)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "start must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.End)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "end must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "end must not precede start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidRequest struct {
	StaffID   string `json:"staff_id"`
	WeekStart string `json:"week_start"` // YYYY-MM-DD
	CreatedBy string `json:"created_by"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "staff_id is required"})
	}
	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "week_start", Message: "week_start must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.CreatedBy) {
		errs = append(errs, validator.ValidationError{Field: "created_by", Message: "created_by is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// REPORT RESPONSES
// ========================================
// Amounts and hours are rounded to 2 decimal places here, at the presentation
// boundary, never inside the engine.

type FlatReportRowResponse struct {
	ShiftID          string          `json:"shift_id"`
	Date             string          `json:"date"`
	StaffName        string          `json:"staff_name"`
	StartTime        string          `json:"start_time"`
	EndTime          string          `json:"end_time"`
	BillableHours    decimal.Decimal `json:"billable_hours"`
	NonBillableHours decimal.Decimal `json:"non_billable_hours"`
	BaseRate         decimal.Decimal `json:"base_rate"`
	Amount           decimal.Decimal `json:"amount"`
}

type FlatReportResponse struct {
	Start       string                  `json:"start"`
	End         string                  `json:"end"`
	Currency    string                  `json:"currency"`
	Rows        []FlatReportRowResponse `json:"rows"`
	TotalHours  decimal.Decimal         `json:"total_hours"`
	TotalAmount decimal.Decimal         `json:"total_amount"`
}

type GridCellResponse struct {
	Hours  decimal.Decimal `json:"hours"`
	Amount decimal.Decimal `json:"amount"`
}

type GridRowResponse struct {
	StaffID     string             `json:"staff_id"`
	StaffName   string             `json:"staff_name"`
	Cells       []GridCellResponse `json:"cells"`
	TotalHours  decimal.Decimal    `json:"total_hours"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
}

type WeeklyGridResponse struct {
	WeekStart   string            `json:"week_start"`
	WeekEnd     string            `json:"week_end"`
	Currency    string            `json:"currency"`
	Days        []string          `json:"days"`
	Rows        []GridRowResponse `json:"rows"`
	TotalHours  decimal.Decimal   `json:"total_hours"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
}

type PaymentReportRowResponse struct {
	StaffID      string          `json:"staff_id"`
	StaffName    string          `json:"staff_name"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	TotalWages   decimal.Decimal `json:"total_wages"`
	BookingHours decimal.Decimal `json:"booking_hours"`
	BookingRate  decimal.Decimal `json:"booking_rate"`
	BookingWages decimal.Decimal `json:"booking_wages"`
	CashHours    decimal.Decimal `json:"cash_hours"`
	CashRate     decimal.Decimal `json:"cash_rate"`
	CashWages    decimal.Decimal `json:"cash_wages"`
	Paid         bool            `json:"paid"`
}

type PaymentReportResponse struct {
	WeekStart    string                     `json:"week_start"`
	WeekEnd      string                     `json:"week_end"`
	Currency     string                     `json:"currency"`
	Rows         []PaymentReportRowResponse `json:"rows"`
	TotalHours   decimal.Decimal            `json:"total_hours"`
	TotalWages   decimal.Decimal            `json:"total_wages"`
	BookingHours decimal.Decimal            `json:"booking_hours"`
	BookingWages decimal.Decimal            `json:"booking_wages"`
	CashHours    decimal.Decimal            `json:"cash_hours"`
	CashWages    decimal.Decimal            `json:"cash_wages"`
}

type PaidPaymentResponse struct {
	ID           string          `json:"id"`
	StaffID      string          `json:"staff_id"`
	StaffName    string          `json:"staff_name"`
	StaffEmail   *string         `json:"staff_email"`
	WeekStart    string          `json:"week_start"`
	WeekEnd      string          `json:"week_end"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	TotalWages   decimal.Decimal `json:"total_wages"`
	BookingHours decimal.Decimal `json:"booking_hours"`
	BookingWages decimal.Decimal `json:"booking_wages"`
	CashHours    decimal.Decimal `json:"cash_hours"`
	CashWages    decimal.Decimal `json:"cash_wages"`
	PaidAt       string          `json:"paid_at"`
	PaymentData  *PaymentData    `json:"payment_data,omitempty"`
}
