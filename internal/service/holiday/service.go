package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/holiday"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type HolidayServiceImpl struct {
	db   *database.DB
	repo holiday.HolidayRepository
	loc  *time.Location
}

func NewHolidayService(db *database.DB, repo holiday.HolidayRepository, loc *time.Location) holiday.HolidayService {
	if loc == nil {
		loc = time.UTC
	}
	return &HolidayServiceImpl{db: db, repo: repo, loc: loc}
}

func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.HolidayDate, s.loc)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("invalid holiday_date: %w", err)
	}

	h := holiday.PublicHoliday{
		Name:             req.Name,
		HolidayDate:      date,
		Year:             date.Year(),
		MarkupPercentage: decimal.Zero,
		MarkupAmount:     decimal.Zero,
		IsActive:         true,
	}
	if req.MarkupPercentage != nil {
		h.MarkupPercentage = *req.MarkupPercentage
	}
	if req.MarkupAmount != nil {
		h.MarkupAmount = *req.MarkupAmount
	}

	created, err := s.repo.Create(ctx, h)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return mapToHolidayResponse(created), nil
}

func (s *HolidayServiceImpl) Get(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return mapToHolidayResponse(h), nil
}

func (s *HolidayServiceImpl) ListForYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	holidays, err := s.repo.ListForYear(ctx, year)
	if err != nil {
		return nil, err
	}

	result := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, mapToHolidayResponse(h))
	}
	return result, nil
}

func (s *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	if err := s.repo.Update(ctx, req); err != nil {
		return holiday.HolidayResponse{}, err
	}
	return s.Get(ctx, req.ID)
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}

// CloneYear copies every active holiday from the source year into the target
// year, shifting dates by whole years. It refuses to clone into a year that
// already has active holidays so an accidental double-clone cannot duplicate
// markup rules.
func (s *HolidayServiceImpl) CloneYear(ctx context.Context, req holiday.CloneYearRequest) ([]holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListForYear(ctx, req.TargetYear)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, holiday.ErrTargetYearHasData
	}

	source, err := s.repo.ListForYear(ctx, req.SourceYear)
	if err != nil {
		return nil, err
	}

	yearShift := req.TargetYear - req.SourceYear
	result := make([]holiday.HolidayResponse, 0, len(source))
	err = database.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, src := range source {
			clone := holiday.PublicHoliday{
				Name:             src.Name,
				HolidayDate:      src.HolidayDate.AddDate(yearShift, 0, 0),
				Year:             req.TargetYear,
				MarkupPercentage: src.MarkupPercentage,
				MarkupAmount:     src.MarkupAmount,
				IsActive:         true,
			}
			created, err := s.repo.Create(txCtx, clone)
			if err != nil {
				return err
			}
			result = append(result, mapToHolidayResponse(created))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *HolidayServiceImpl) AvailableYears(ctx context.Context) ([]int, error) {
	return s.repo.AvailableYears(ctx)
}

func mapToHolidayResponse(h holiday.PublicHoliday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:               h.ID,
		Name:             h.Name,
		HolidayDate:      h.HolidayDate.Format("2006-01-02"),
		Year:             h.Year,
		MarkupPercentage: h.MarkupPercentage,
		MarkupAmount:     h.MarkupAmount,
		IsActive:         h.IsActive,
	}
}
