package staff

import "errors"

var (
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrStaffNameExists     = errors.New("staff member name already exists")
	ErrRateNotFound        = errors.New("staff rate not found")
	ErrInstructionNotFound = errors.New("payment instruction not found")
	ErrInvalidRateType     = errors.New("invalid rate type")
)
