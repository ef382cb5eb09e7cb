package holiday

import "errors"

var (
	ErrHolidayNotFound   = errors.New("public holiday not found")
	ErrHolidayDateExists = errors.New("an active holiday already exists for that date")
	ErrTargetYearHasData = errors.New("target year already has active holidays")
)
