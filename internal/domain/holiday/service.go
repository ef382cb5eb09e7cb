package holiday

import "context"

// HolidayService manages the public holiday calendar used for wage markups.
type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Get(ctx context.Context, id string) (HolidayResponse, error)
	ListForYear(ctx context.Context, year int) ([]HolidayResponse, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	// CloneYear copies the source year's active holidays into an empty target
	// year, shifting dates by whole years.
	CloneYear(ctx context.Context, req CloneYearRequest) ([]HolidayResponse, error)
	AvailableYears(ctx context.Context) ([]int, error)
}
