package wage

import "context"

// ReportService produces the three live presentations of the same per-shift
// computation. Every call refetches inputs and recomputes; results may change
// retroactively when underlying rates are edited.
type ReportService interface {
	// FlatReport is the transaction-style report: one row per shift in the
	// range, sorted by date then staff name. It keeps the legacy behaviour of
	// the financial report screen and does not apply holiday markup.
	FlatReport(ctx context.Context, req RangeRequest) (FlatReportResponse, error)
	// WeeklyGrid is the staff-by-day matrix for the Monday-start week
	// containing req.Week. Holiday markup applies.
	WeeklyGrid(ctx context.Context, req WeekRequest) (WeeklyGridResponse, error)
	// PaymentReport is the per-staff channel summary for a week, with paid
	// flags from the snapshot store. Holiday markup applies.
	PaymentReport(ctx context.Context, req WeekRequest) (PaymentReportResponse, error)
}

// PaymentService finalizes staff weeks into immutable snapshots.
type PaymentService interface {
	// MarkAsPaid recomputes the live week for one staff member and seals the
	// result. At-most-once per staff week; a repeat attempt fails with
	// ErrWeekAlreadyPaid and leaves the stored snapshot untouched.
	MarkAsPaid(ctx context.Context, req MarkPaidRequest) (PaidPaymentResponse, error)
	ListPaid(ctx context.Context, req RangeRequest) ([]PaidPaymentResponse, error)
	GetPaid(ctx context.Context, id string) (PaidPaymentResponse, error)
}
