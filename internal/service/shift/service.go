package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/shift"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/staff"
	"github.com/shopspring/decimal"
)

type ShiftServiceImpl struct {
	shiftRepo shift.ShiftRepository
	staffRepo staff.StaffRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository, staffRepo staff.StaffRepository) shift.ShiftService {
	return &ShiftServiceImpl{shiftRepo: shiftRepo, staffRepo: staffRepo}
}

func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.StaffID != nil {
		if _, err := s.staffRepo.GetByID(ctx, *req.StaffID); err != nil {
			return shift.ShiftResponse{}, err
		}
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("invalid start_time: %w", err)
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("invalid end_time: %w", err)
	}

	entry := shift.Shift{
		StaffID:          req.StaffID,
		StartTime:        start,
		EndTime:          end,
		NonBillableHours: decimal.Zero,
		Notes:            req.Notes,
		SectionID:        req.SectionID,
	}
	if req.NonBillableHours != nil {
		entry.NonBillableHours = *req.NonBillableHours
	}

	created, err := s.shiftRepo.Create(ctx, entry)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return mapToShiftResponse(created), nil
}

func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	entry, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return mapToShiftResponse(entry), nil
}

func (s *ShiftServiceImpl) ListForRange(ctx context.Context, start, end time.Time) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.ListForRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]shift.ShiftResponse, 0, len(shifts))
	for _, entry := range shifts {
		result = append(result, mapToShiftResponse(entry))
	}
	return result, nil
}

func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	current, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	// The ordering rule spans both fields, so check it against the merged
	// values rather than each field alone.
	start, end := current.StartTime, current.EndTime
	if req.StartTime != nil {
		start, err = time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			return shift.ShiftResponse{}, fmt.Errorf("invalid start_time: %w", err)
		}
	}
	if req.EndTime != nil {
		end, err = time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			return shift.ShiftResponse{}, fmt.Errorf("invalid end_time: %w", err)
		}
	}
	if !end.After(start) {
		return shift.ShiftResponse{}, fmt.Errorf("end_time must be after start_time")
	}

	if req.StaffID != nil && *req.StaffID != "" {
		if _, err := s.staffRepo.GetByID(ctx, *req.StaffID); err != nil {
			return shift.ShiftResponse{}, err
		}
	}

	if err := s.shiftRepo.Update(ctx, req); err != nil {
		return shift.ShiftResponse{}, err
	}
	return s.Get(ctx, req.ID)
}

func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}

func mapToShiftResponse(entry shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:               entry.ID,
		StaffID:          entry.StaffID,
		StartTime:        entry.StartTime.Format(time.RFC3339),
		EndTime:          entry.EndTime.Format(time.RFC3339),
		NonBillableHours: entry.NonBillableHours,
		Notes:            entry.Notes,
		SectionID:        entry.SectionID,
	}
}
