package staff

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/staff"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/database"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// endOfTime closes open-ended rate and instruction rows. Mirrors the
// far-future end_date the admin screens write for "current" rows.
var endOfTime = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

type StaffServiceImpl struct {
	db        *database.DB
	staffRepo staff.StaffRepository
	rateRepo  staff.StaffRateRepository
	insRepo   staff.PaymentInstructionRepository
	loc       *time.Location
	channels  []string
}

func NewStaffService(
	db *database.DB,
	staffRepo staff.StaffRepository,
	rateRepo staff.StaffRateRepository,
	insRepo staff.PaymentInstructionRepository,
	loc *time.Location,
	channels []string,
) staff.StaffService {
	if loc == nil {
		loc = time.UTC
	}
	return &StaffServiceImpl{
		db:        db,
		staffRepo: staffRepo,
		rateRepo:  rateRepo,
		insRepo:   insRepo,
		loc:       loc,
		channels:  channels,
	}
}

// validatePaymentMethod rejects channels outside the configured set. A
// method the allocator does not recognise would silently drop its hours
// from the booking/cash split.
func (s *StaffServiceImpl) validatePaymentMethod(method *string) error {
	if method == nil || validator.IsInSlice(*method, s.channels) {
		return nil
	}
	return validator.ValidationErrors{{
		Field:   "payment_method",
		Message: fmt.Sprintf("payment_method must be one of: %s", strings.Join(s.channels, ", ")),
	}}
}

// ========== STAFF ==========

func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	member := staff.Staff{
		Name:     req.Name,
		Email:    req.Email,
		PayRate:  decimal.Zero,
		IsActive: true,
	}
	if req.PayRate != nil {
		member.PayRate = *req.PayRate
	}
	member.DefaultRate = req.DefaultRate
	if req.AppliesPublicHolidayRules != nil {
		member.AppliesPublicHolidayRules = *req.AppliesPublicHolidayRules
	}

	created, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return mapToStaffResponse(created), nil
}

func (s *StaffServiceImpl) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return mapToStaffResponse(member), nil
}

func (s *StaffServiceImpl) List(ctx context.Context, activeOnly bool) ([]staff.StaffResponse, error) {
	members, err := s.staffRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]staff.StaffResponse, 0, len(members))
	for _, m := range members {
		result = append(result, mapToStaffResponse(m))
	}
	return result, nil
}

func (s *StaffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	if err := s.staffRepo.Update(ctx, req); err != nil {
		return staff.StaffResponse{}, err
	}
	return s.Get(ctx, req.ID)
}

func (s *StaffServiceImpl) Delete(ctx context.Context, id string) error {
	return s.staffRepo.Delete(ctx, id)
}

// ========== RATES ==========

// CreateRate records a new effective-dated rate. The previous current row for
// the same bucket is closed the day before the new row takes effect, keeping
// ranges non-overlapping; both writes happen in one transaction.
func (s *StaffServiceImpl) CreateRate(ctx context.Context, req staff.CreateRateRequest) (staff.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.RateResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return staff.RateResponse{}, err
	}

	effective, err := time.ParseInLocation("2006-01-02", req.EffectiveDate, s.loc)
	if err != nil {
		return staff.RateResponse{}, fmt.Errorf("invalid effective_date: %w", err)
	}
	endDate := endOfTime
	isCurrent := true
	if req.EndDate != nil {
		endDate, err = time.ParseInLocation("2006-01-02", *req.EndDate, s.loc)
		if err != nil {
			return staff.RateResponse{}, fmt.Errorf("invalid end_date: %w", err)
		}
		isCurrent = false
	}

	rate := staff.StaffRate{
		StaffID:       req.StaffID,
		RateType:      staff.RateType(req.RateType),
		Rate:          req.Rate,
		EffectiveDate: effective,
		EndDate:       endDate,
		IsCurrent:     isCurrent,
	}

	var created staff.StaffRate
	err = database.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if isCurrent {
			if err := s.rateRepo.CloseCurrent(txCtx, req.StaffID, rate.RateType, effective); err != nil {
				return err
			}
		}
		created, err = s.rateRepo.Create(txCtx, rate)
		return err
	})
	if err != nil {
		return staff.RateResponse{}, err
	}

	return mapToRateResponse(created), nil
}

func (s *StaffServiceImpl) ListRates(ctx context.Context, staffID string) ([]staff.RateResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}

	rates, err := s.rateRepo.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	result := make([]staff.RateResponse, 0, len(rates))
	for _, r := range rates {
		result = append(result, mapToRateResponse(r))
	}
	return result, nil
}

func (s *StaffServiceImpl) DeleteRate(ctx context.Context, id string) error {
	return s.rateRepo.Delete(ctx, id)
}

// ========== PAYMENT INSTRUCTIONS ==========

func (s *StaffServiceImpl) CreateInstruction(ctx context.Context, req staff.CreateInstructionRequest) (staff.InstructionResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.InstructionResponse{}, err
	}
	if err := s.validatePaymentMethod(req.PaymentMethod); err != nil {
		return staff.InstructionResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return staff.InstructionResponse{}, err
	}

	effective, err := time.ParseInLocation("2006-01-02", req.EffectiveDate, s.loc)
	if err != nil {
		return staff.InstructionResponse{}, fmt.Errorf("invalid effective_date: %w", err)
	}
	endDate := endOfTime
	isCurrent := true
	if req.EndDate != nil {
		endDate, err = time.ParseInLocation("2006-01-02", *req.EndDate, s.loc)
		if err != nil {
			return staff.InstructionResponse{}, fmt.Errorf("invalid end_date: %w", err)
		}
		isCurrent = false
	}

	ins := staff.PaymentInstruction{
		StaffID:           req.StaffID,
		Label:             req.Label,
		AdjustmentPerHour: req.AdjustmentPerHour,
		WeeklyHoursCap:    req.WeeklyHoursCap,
		PaymentMethod:     req.PaymentMethod,
		Priority:          req.Priority,
		Active:            true,
		EffectiveDate:     effective,
		EndDate:           endDate,
		IsCurrent:         isCurrent,
	}

	created, err := s.insRepo.Create(ctx, ins)
	if err != nil {
		return staff.InstructionResponse{}, err
	}
	return mapToInstructionResponse(created), nil
}

func (s *StaffServiceImpl) ListInstructions(ctx context.Context, staffID string, activeOnly bool) ([]staff.InstructionResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}

	instructions, err := s.insRepo.ListByStaff(ctx, staffID, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]staff.InstructionResponse, 0, len(instructions))
	for _, ins := range instructions {
		result = append(result, mapToInstructionResponse(ins))
	}
	return result, nil
}

func (s *StaffServiceImpl) UpdateInstruction(ctx context.Context, req staff.UpdateInstructionRequest) (staff.InstructionResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.InstructionResponse{}, err
	}
	if err := s.validatePaymentMethod(req.PaymentMethod); err != nil {
		return staff.InstructionResponse{}, err
	}

	if err := s.insRepo.Update(ctx, req); err != nil {
		return staff.InstructionResponse{}, err
	}

	updated, err := s.insRepo.GetByID(ctx, req.ID)
	if err != nil {
		return staff.InstructionResponse{}, err
	}
	return mapToInstructionResponse(updated), nil
}

func (s *StaffServiceImpl) DeleteInstruction(ctx context.Context, id string) error {
	return s.insRepo.Delete(ctx, id)
}

// ========== HELPERS ==========

func mapToStaffResponse(m staff.Staff) staff.StaffResponse {
	return staff.StaffResponse{
		ID:                        m.ID,
		Name:                      m.Name,
		Email:                     m.Email,
		PayRate:                   m.PayRate,
		DefaultRate:               m.DefaultRate,
		AppliesPublicHolidayRules: m.AppliesPublicHolidayRules,
		IsActive:                  m.IsActive,
	}
}

func mapToRateResponse(r staff.StaffRate) staff.RateResponse {
	return staff.RateResponse{
		ID:            r.ID,
		StaffID:       r.StaffID,
		RateType:      string(r.RateType),
		Rate:          r.Rate,
		EffectiveDate: r.EffectiveDate.Format("2006-01-02"),
		EndDate:       r.EndDate.Format("2006-01-02"),
		IsCurrent:     r.IsCurrent,
	}
}

func mapToInstructionResponse(i staff.PaymentInstruction) staff.InstructionResponse {
	return staff.InstructionResponse{
		ID:                i.ID,
		StaffID:           i.StaffID,
		Label:             i.Label,
		AdjustmentPerHour: i.AdjustmentPerHour,
		WeeklyHoursCap:    i.WeeklyHoursCap,
		PaymentMethod:     i.PaymentMethod,
		Priority:          i.Priority,
		Active:            i.Active,
		EffectiveDate:     i.EffectiveDate.Format("2006-01-02"),
		EndDate:           i.EndDate.Format("2006-01-02"),
		IsCurrent:         i.IsCurrent,
	}
}
