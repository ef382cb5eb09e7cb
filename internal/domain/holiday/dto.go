package holiday

import (
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateHolidayRequest struct {
	Name             string           `json:"name"`
	HolidayDate      string           `json:"holiday_date"`
	MarkupPercentage *decimal.Decimal `json:"markup_percentage"`
	MarkupAmount     *decimal.Decimal `json:"markup_amount"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if _, ok := validator.IsValidDate(r.HolidayDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "holiday_date", Message: "holiday_date must be YYYY-MM-DD"})
	}
	if r.MarkupPercentage != nil && r.MarkupPercentage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "markup_percentage", Message: "markup_percentage must not be negative"})
	}
	if r.MarkupAmount != nil && r.MarkupAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "markup_amount", Message: "markup_amount must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	ID               string           `json:"-"`
	Name             *string          `json:"name"`
	HolidayDate      *string          `json:"holiday_date"`
	MarkupPercentage *decimal.Decimal `json:"markup_percentage"`
	MarkupAmount     *decimal.Decimal `json:"markup_amount"`
	IsActive         *bool            `json:"is_active"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "holiday id is required"})
	}
	if r.HolidayDate != nil {
		if _, ok := validator.IsValidDate(*r.HolidayDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "holiday_date", Message: "holiday_date must be YYYY-MM-DD"})
		}
	}
	if r.MarkupPercentage != nil && r.MarkupPercentage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "markup_percentage", Message: "markup_percentage must not be negative"})
	}
	if r.MarkupAmount != nil && r.MarkupAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "markup_amount", Message: "markup_amount must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CloneYearRequest struct {
	SourceYear int `json:"source_year"`
	TargetYear int `json:"target_year"`
}

func (r *CloneYearRequest) Validate() error {
	var errs validator.ValidationErrors

	currentYear := time.Now().Year()
	if r.SourceYear < 2000 || r.SourceYear > currentYear+10 {
		errs = append(errs, validator.ValidationError{Field: "source_year", Message: "source_year is out of range"})
	}
	if r.TargetYear < 2000 || r.TargetYear > currentYear+10 {
		errs = append(errs, validator.ValidationError{Field: "target_year", Message: "target_year is out of range"})
	}
	if r.SourceYear == r.TargetYear {
		errs = append(errs, validator.ValidationError{Field: "target_year", Message: "target_year must differ from source_year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	HolidayDate      string          `json:"holiday_date"`
	Year             int             `json:"year"`
	MarkupPercentage decimal.Decimal `json:"markup_percentage"`
	MarkupAmount     decimal.Decimal `json:"markup_amount"`
	IsActive         bool            `json:"is_active"`
}
