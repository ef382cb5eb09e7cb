package response

import (
	"errors"
	"net/http"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/holiday"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/shift"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/staff"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/wage"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrStaffNameExists):
		Conflict(w, "A staff member with that name already exists")
	case errors.Is(err, staff.ErrRateNotFound):
		NotFound(w, "Staff rate not found")
	case errors.Is(err, staff.ErrInstructionNotFound):
		NotFound(w, "Payment instruction not found")
	case errors.Is(err, staff.ErrInvalidRateType):
		BadRequest(w, "Invalid rate type", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Public holiday not found")
	case errors.Is(err, holiday.ErrHolidayDateExists):
		Conflict(w, "An active holiday already exists for that date")
	case errors.Is(err, holiday.ErrTargetYearHasData):
		Conflict(w, "Target year already has active holidays")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// Wage domain errors
	case errors.Is(err, wage.ErrPaymentNotFound):
		NotFound(w, "Wage payment not found")
	case errors.Is(err, wage.ErrWeekAlreadyPaid):
		Conflict(w, "This week has already been marked as paid for the staff member")
	case errors.Is(err, wage.ErrNothingToPay):
		BadRequest(w, "No billable hours in the requested week", nil)
	case errors.Is(err, wage.ErrInvalidWeek):
		BadRequest(w, "week_start must be a Monday", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
