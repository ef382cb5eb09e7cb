package staff

import (
	"context"
	"time"
)

// StaffRepository defines data access for staff records.
type StaffRepository interface {
	Create(ctx context.Context, s Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	List(ctx context.Context, activeOnly bool) ([]Staff, error)
	Update(ctx context.Context, req UpdateStaffRequest) error
	Delete(ctx context.Context, id string) error
}

// StaffRateRepository defines data access for effective-dated rate rows.
type StaffRateRepository interface {
	Create(ctx context.Context, rate StaffRate) (StaffRate, error)
	ListByStaff(ctx context.Context, staffID string) ([]StaffRate, error)
	// ListForStaffSet returns every rate row for the given staff ids. The
	// resolver filters by date and bucket itself; fetching the full set keeps
	// snapshot payloads complete.
	ListForStaffSet(ctx context.Context, staffIDs []string) ([]StaffRate, error)
	// CloseCurrent ends the current row for (staff, rate_type) the day before
	// newEffective and clears its is_current flag.
	CloseCurrent(ctx context.Context, staffID string, rateType RateType, newEffective time.Time) error
	Delete(ctx context.Context, id string) error
}

// PaymentInstructionRepository defines data access for supplementary payment
// rules.
type PaymentInstructionRepository interface {
	Create(ctx context.Context, ins PaymentInstruction) (PaymentInstruction, error)
	GetByID(ctx context.Context, id string) (PaymentInstruction, error)
	ListByStaff(ctx context.Context, staffID string, activeOnly bool) ([]PaymentInstruction, error)
	// ListCurrentForStaffSet returns the active, current instructions for the
	// given staff ids ordered by priority ascending.
	ListCurrentForStaffSet(ctx context.Context, staffIDs []string) ([]PaymentInstruction, error)
	Update(ctx context.Context, req UpdateInstructionRequest) error
	Delete(ctx context.Context, id string) error
}
