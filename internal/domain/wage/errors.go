package wage

import "errors"

var (
	ErrPaymentNotFound = errors.New("wage payment not found")
	ErrWeekAlreadyPaid = errors.New("this staff week has already been marked as paid")
	ErrNothingToPay    = errors.New("no billable hours in the selected week")
	ErrInvalidWeek     = errors.New("week start must be a Monday")
)
