package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access for active public holidays.
// Deletes are soft: rows are deactivated, never removed.
type HolidayRepository interface {
	Create(ctx context.Context, h PublicHoliday) (PublicHoliday, error)
	GetByID(ctx context.Context, id string) (PublicHoliday, error)
	ListForYear(ctx context.Context, year int) ([]PublicHoliday, error)
	ListForRange(ctx context.Context, start, end time.Time) ([]PublicHoliday, error)
	Update(ctx context.Context, req UpdateHolidayRequest) error
	Deactivate(ctx context.Context, id string) error
	AvailableYears(ctx context.Context) ([]int, error)
}
