package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access for roster shifts. The wage engine only
// reads; the scheduling surface owns the writes.
type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	// ListForRange returns shifts whose start_time falls inside [start, end],
	// ordered by start_time ascending.
	ListForRange(ctx context.Context, start, end time.Time) ([]Shift, error)
	ListForStaffRange(ctx context.Context, staffID string, start, end time.Time) ([]Shift, error)
	Update(ctx context.Context, req UpdateShiftRequest) error
	Delete(ctx context.Context, id string) error
}
