package shift

import (
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateShiftRequest struct {
	StaffID          *string          `json:"staff_id"`
	StartTime        string           `json:"start_time"`
	EndTime          string           `json:"end_time"`
	NonBillableHours *decimal.Decimal `json:"non_billable_hours"`
	Notes            *string          `json:"notes"`
	SectionID        *string          `json:"section_id"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDateTime(r.StartTime)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be an ISO8601 timestamp"})
	}
	end, okEnd := validator.IsValidDateTime(r.EndTime)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be an ISO8601 timestamp"})
	}
	if okStart && okEnd && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be after start_time"})
	}
	if r.NonBillableHours != nil && r.NonBillableHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "non_billable_hours", Message: "non_billable_hours must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID               string           `json:"-"`
	StaffID          *string          `json:"staff_id"`
	StartTime        *string          `json:"start_time"`
	EndTime          *string          `json:"end_time"`
	NonBillableHours *decimal.Decimal `json:"non_billable_hours"`
	Notes            *string          `json:"notes"`
	SectionID        *string          `json:"section_id"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "shift id is required"})
	}
	if r.StartTime != nil {
		if _, ok := validator.IsValidDateTime(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be an ISO8601 timestamp"})
		}
	}
	if r.EndTime != nil {
		if _, ok := validator.IsValidDateTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be an ISO8601 timestamp"})
		}
	}
	if r.NonBillableHours != nil && r.NonBillableHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "non_billable_hours", Message: "non_billable_hours must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID               string          `json:"id"`
	StaffID          *string         `json:"staff_id"`
	StartTime        string          `json:"start_time"`
	EndTime          string          `json:"end_time"`
	NonBillableHours decimal.Decimal `json:"non_billable_hours"`
	Notes            *string         `json:"notes"`
	SectionID        *string         `json:"section_id"`
}
