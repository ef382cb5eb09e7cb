package wage

import (
	"context"
	"time"
)

// WagePaymentRepository is the snapshot store. Create is write-once: a second
// insert for the same (staff, week) must fail with ErrWeekAlreadyPaid, backed
// by a unique constraint. There is no update or delete.
type WagePaymentRepository interface {
	Create(ctx context.Context, p WagePayment) (WagePayment, error)
	GetByID(ctx context.Context, id string) (WagePayment, error)
	Exists(ctx context.Context, staffID string, weekStart time.Time) (bool, error)
	// ListForRange returns snapshots whose week overlaps [start, end], newest
	// paid first, with staff name/email joined.
	ListForRange(ctx context.Context, start, end time.Time) ([]WagePayment, error)
	// PaidStaffIDs returns the staff already snapshotted for the given week.
	PaidStaffIDs(ctx context.Context, weekStart, weekEnd time.Time) (map[string]bool, error)
}
