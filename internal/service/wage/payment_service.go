package wage

import (
	"context"
	"fmt"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/holiday"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/shift"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/staff"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/wage"
)

type PaymentServiceImpl struct {
	engine      *Engine
	staffRepo   staff.StaffRepository
	rateRepo    staff.StaffRateRepository
	insRepo     staff.PaymentInstructionRepository
	holidayRepo holiday.HolidayRepository
	shiftRepo   shift.ShiftRepository
	paymentRepo wage.WagePaymentRepository
}

func NewPaymentService(
	engine *Engine,
	staffRepo staff.StaffRepository,
	rateRepo staff.StaffRateRepository,
	insRepo staff.PaymentInstructionRepository,
	holidayRepo holiday.HolidayRepository,
	shiftRepo shift.ShiftRepository,
	paymentRepo wage.WagePaymentRepository,
) wage.PaymentService {
	return &PaymentServiceImpl{
		engine:      engine,
		staffRepo:   staffRepo,
		rateRepo:    rateRepo,
		insRepo:     insRepo,
		holidayRepo: holidayRepo,
		shiftRepo:   shiftRepo,
		paymentRepo: paymentRepo,
	}
}

// MarkAsPaid seals the live computation for one staff week into a snapshot.
// The snapshot captures the report rows verbatim along with the rates,
// instructions and holidays in force, so later edits to any of them never
// change what was recorded as paid.
func (s *PaymentServiceImpl) MarkAsPaid(ctx context.Context, req wage.MarkPaidRequest) (wage.PaidPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.PaidPaymentResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return wage.PaidPaymentResponse{}, err
	}

	anchor, err := time.ParseInLocation(dateLayout, req.WeekStart, s.engine.loc)
	if err != nil {
		return wage.PaidPaymentResponse{}, fmt.Errorf("invalid week_start %q: %w", req.WeekStart, err)
	}
	weekStart := s.engine.MondayOf(anchor)
	if !weekStart.Equal(anchor) {
		return wage.PaidPaymentResponse{}, wage.ErrInvalidWeek
	}
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond)

	// Cheap pre-check; the unique constraint on the snapshot table is the
	// real guarantee against a double "mark as paid".
	exists, err := s.paymentRepo.Exists(ctx, member.ID, weekStart)
	if err != nil {
		return wage.PaidPaymentResponse{}, fmt.Errorf("failed to check existing payment: %w", err)
	}
	if exists {
		return wage.PaidPaymentResponse{}, wage.ErrWeekAlreadyPaid
	}

	rates, err := s.rateRepo.ListByStaff(ctx, member.ID)
	if err != nil {
		return wage.PaidPaymentResponse{}, fmt.Errorf("failed to load staff rates: %w", err)
	}
	instructions, err := s.insRepo.ListCurrentForStaffSet(ctx, []string{member.ID})
	if err != nil {
		return wage.PaidPaymentResponse{}, fmt.Errorf("failed to load payment instructions: %w", err)
	}
	holidays, err := s.holidayRepo.ListForRange(ctx, weekStart, weekEnd)
	if err != nil {
		return wage.PaidPaymentResponse{}, fmt.Errorf("failed to load public holidays: %w", err)
	}
	shifts, err := s.shiftRepo.ListForStaffRange(ctx, member.ID, weekStart, weekEnd)
	if err != nil {
		return wage.PaidPaymentResponse{}, fmt.Errorf("failed to load shifts: %w", err)
	}

	report := s.engine.ComputeWeek(WeekInput{
		WeekStart:         weekStart,
		Staff:             []staff.Staff{member},
		Rates:             rates,
		Instructions:      instructions,
		Holidays:          holidays,
		Shifts:            shifts,
		ApplyHolidayRates: true,
	})

	summary, ok := report.SummaryFor(member.ID)
	if !ok || !summary.TotalHours.IsPositive() {
		return wage.PaidPaymentResponse{}, wage.ErrNothingToPay
	}

	payment := wage.WagePayment{
		StaffID:      member.ID,
		WeekStart:    weekStart,
		WeekEnd:      weekStart.AddDate(0, 0, 6),
		TotalHours:   summary.TotalHours.Round(2),
		TotalWages:   summary.TotalWages.Round(2),
		BookingHours: summary.BookingHours.Round(2),
		BookingWages: summary.BookingWages.Round(2),
		CashHours:    summary.CashHours.Round(2),
		CashWages:    summary.CashWages.Round(2),
		PaymentData: wage.PaymentData{
			Staff: wage.PaymentStaff{
				ID:    member.ID,
				Name:  member.Name,
				Email: member.Email,
			},
			Summary: wage.PaymentSummary{
				TotalHours:      summary.TotalHours.Round(2),
				TotalWages:      summary.TotalWages.Round(2),
				BookingHours:    summary.BookingHours.Round(2),
				BookingWages:    summary.BookingWages.Round(2),
				CashHours:       summary.CashHours.Round(2),
				CashWages:       summary.CashWages.Round(2),
				ReportGenerated: time.Now(),
				WeekStart:       weekStart,
				WeekEnd:         weekEnd,
			},
			Shifts:       report.Rows,
			Rates:        rates,
			Instructions: instructions,
			Holidays:     holidays,
		},
		CreatedBy: req.CreatedBy,
	}

	created, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		return wage.PaidPaymentResponse{}, err
	}
	created.StaffName = &member.Name
	created.StaffEmail = member.Email

	return mapToPaidResponse(created, true), nil
}

func (s *PaymentServiceImpl) ListPaid(ctx context.Context, req wage.RangeRequest) ([]wage.PaidPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(dateLayout, req.Start, s.engine.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid start %q: %w", req.Start, err)
	}
	end, err := time.ParseInLocation(dateLayout, req.End, s.engine.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid end %q: %w", req.End, err)
	}

	payments, err := s.paymentRepo.ListForRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]wage.PaidPaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, mapToPaidResponse(p, false))
	}
	return result, nil
}

func (s *PaymentServiceImpl) GetPaid(ctx context.Context, id string) (wage.PaidPaymentResponse, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return wage.PaidPaymentResponse{}, err
	}
	return mapToPaidResponse(payment, true), nil
}

func mapToPaidResponse(p wage.WagePayment, includeData bool) wage.PaidPaymentResponse {
	staffName := ""
	if p.StaffName != nil {
		staffName = *p.StaffName
	}

	resp := wage.PaidPaymentResponse{
		ID:           p.ID,
		StaffID:      p.StaffID,
		StaffName:    staffName,
		StaffEmail:   p.StaffEmail,
		WeekStart:    p.WeekStart.Format(dateLayout),
		WeekEnd:      p.WeekEnd.Format(dateLayout),
		TotalHours:   p.TotalHours,
		TotalWages:   p.TotalWages,
		BookingHours: p.BookingHours,
		BookingWages: p.BookingWages,
		CashHours:    p.CashHours,
		CashWages:    p.CashWages,
		PaidAt:       p.PaidAt.Format(time.RFC3339),
	}
	if includeData {
		data := p.PaymentData
		resp.PaymentData = &data
	}
	return resp
}
