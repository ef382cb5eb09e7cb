package staff

import (
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// STAFF
// ========================================

type CreateStaffRequest struct {
	Name                      string           `json:"name"`
	Email                     *string          `json:"email"`
	PayRate                   *decimal.Decimal `json:"pay_rate"`
	DefaultRate               *decimal.Decimal `json:"default_rate"`
	AppliesPublicHolidayRules *bool            `json:"applies_public_holiday_rules"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.PayRate != nil && r.PayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "pay_rate", Message: "pay_rate must not be negative"})
	}
	if r.DefaultRate != nil && r.DefaultRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "default_rate", Message: "default_rate must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStaffRequest struct {
	ID                        string           `json:"-"`
	Name                      *string          `json:"name"`
	Email                     *string          `json:"email"`
	PayRate                   *decimal.Decimal `json:"pay_rate"`
	DefaultRate               *decimal.Decimal `json:"default_rate"`
	AppliesPublicHolidayRules *bool            `json:"applies_public_holiday_rules"`
	IsActive                  *bool            `json:"is_active"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "staff id is required"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StaffResponse struct {
	ID                        string           `json:"id"`
	Name                      string           `json:"name"`
	Email                     *string          `json:"email"`
	PayRate                   decimal.Decimal  `json:"pay_rate"`
	DefaultRate               *decimal.Decimal `json:"default_rate"`
	AppliesPublicHolidayRules bool             `json:"applies_public_holiday_rules"`
	IsActive                  bool             `json:"is_active"`
}

// ========================================
// STAFF RATES
// ========================================

type CreateRateRequest struct {
	StaffID       string          `json:"-"`
	RateType      string          `json:"rate_type"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate string          `json:"effective_date"`
	EndDate       *string         `json:"end_date"`
}

func (r *CreateRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "staff id is required"})
	}
	if !validator.IsInSlice(r.RateType, ValidRateTypes()) {
		errs = append(errs, validator.ValidationError{Field: "rate_type", Message: "rate_type must be default or mon..sun"})
	}
	if r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "rate must not be negative"})
	}
	effective, okEffective := validator.IsValidDate(r.EffectiveDate)
	if !okEffective {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "effective_date must be YYYY-MM-DD"})
	}
	if r.EndDate != nil {
		end, ok := validator.IsValidDate(*r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		} else if okEffective && end.Before(effective) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not precede effective_date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RateResponse struct {
	ID            string          `json:"id"`
	StaffID       string          `json:"staff_id"`
	RateType      string          `json:"rate_type"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate string          `json:"effective_date"`
	EndDate       string          `json:"end_date"`
	IsCurrent     bool            `json:"is_current"`
}

// ========================================
// PAYMENT INSTRUCTIONS
// ========================================

type CreateInstructionRequest struct {
	StaffID           string           `json:"-"`
	Label             string           `json:"label"`
	AdjustmentPerHour decimal.Decimal  `json:"adjustment_per_hour"`
	WeeklyHoursCap    *decimal.Decimal `json:"weekly_hours_cap"`
	PaymentMethod     *string          `json:"payment_method"`
	Priority          int              `json:"priority"`
	EffectiveDate     string           `json:"effective_date"`
	EndDate           *string          `json:"end_date"`
}

func (r *CreateInstructionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "staff id is required"})
	}
	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{Field: "label", Message: "label is required"})
	}
	// A zero cap means the instruction never applies; require nil (unlimited)
	// or a positive number of hours.
	if r.WeeklyHoursCap != nil && !r.WeeklyHoursCap.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "weekly_hours_cap", Message: "weekly_hours_cap must be positive or omitted"})
	}
	if r.Priority < 0 {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "priority must not be negative"})
	}
	effective, okEffective := validator.IsValidDate(r.EffectiveDate)
	if !okEffective {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "effective_date must be YYYY-MM-DD"})
	}
	if r.EndDate != nil {
		end, ok := validator.IsValidDate(*r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		} else if okEffective && end.Before(effective) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not precede effective_date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateInstructionRequest struct {
	ID                string           `json:"-"`
	Label             *string          `json:"label"`
	AdjustmentPerHour *decimal.Decimal `json:"adjustment_per_hour"`
	WeeklyHoursCap    *decimal.Decimal `json:"weekly_hours_cap"`
	PaymentMethod     *string          `json:"payment_method"`
	Priority          *int             `json:"priority"`
	Active            *bool            `json:"active"`
}

func (r *UpdateInstructionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "instruction id is required"})
	}
	if r.Label != nil && validator.IsEmpty(*r.Label) {
		errs = append(errs, validator.ValidationError{Field: "label", Message: "label must not be empty"})
	}
	if r.WeeklyHoursCap != nil && !r.WeeklyHoursCap.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "weekly_hours_cap", Message: "weekly_hours_cap must be positive or omitted"})
	}
	if r.Priority != nil && *r.Priority < 0 {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "priority must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InstructionResponse struct {
	ID                string           `json:"id"`
	StaffID           string           `json:"staff_id"`
	Label             string           `json:"label"`
	AdjustmentPerHour decimal.Decimal  `json:"adjustment_per_hour"`
	WeeklyHoursCap    *decimal.Decimal `json:"weekly_hours_cap"`
	PaymentMethod     *string          `json:"payment_method"`
	Priority          int              `json:"priority"`
	Active            bool             `json:"active"`
	EffectiveDate     string           `json:"effective_date"`
	EndDate           string           `json:"end_date"`
	IsCurrent         bool             `json:"is_current"`
}
