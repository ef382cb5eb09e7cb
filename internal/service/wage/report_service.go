package wage

import (
	"context"
	"fmt"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/holiday"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/shift"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/staff"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/wage"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type ReportServiceImpl struct {
	engine      *Engine
	currency    string
	staffRepo   staff.StaffRepository
	rateRepo    staff.StaffRateRepository
	insRepo     staff.PaymentInstructionRepository
	holidayRepo holiday.HolidayRepository
	shiftRepo   shift.ShiftRepository
	paymentRepo wage.WagePaymentRepository
}

func NewReportService(
	engine *Engine,
	currency string,
	staffRepo staff.StaffRepository,
	rateRepo staff.StaffRateRepository,
	insRepo staff.PaymentInstructionRepository,
	holidayRepo holiday.HolidayRepository,
	shiftRepo shift.ShiftRepository,
	paymentRepo wage.WagePaymentRepository,
) wage.ReportService {
	return &ReportServiceImpl{
		engine:      engine,
		currency:    currency,
		staffRepo:   staffRepo,
		rateRepo:    rateRepo,
		insRepo:     insRepo,
		holidayRepo: holidayRepo,
		shiftRepo:   shiftRepo,
		paymentRepo: paymentRepo,
	}
}

// fetchWeekInput loads every input one allocation run needs. The fetch is the
// only asynchronous step; the computation itself never blocks.
func (s *ReportServiceImpl) fetchWeekInput(ctx context.Context, weekStart time.Time, applyHolidays bool) (WeekInput, error) {
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond)

	staffList, err := s.staffRepo.List(ctx, true)
	if err != nil {
		return WeekInput{}, fmt.Errorf("failed to load staff: %w", err)
	}

	staffIDs := make([]string, 0, len(staffList))
	for _, m := range staffList {
		staffIDs = append(staffIDs, m.ID)
	}

	rates, err := s.rateRepo.ListForStaffSet(ctx, staffIDs)
	if err != nil {
		return WeekInput{}, fmt.Errorf("failed to load staff rates: %w", err)
	}

	instructions, err := s.insRepo.ListCurrentForStaffSet(ctx, staffIDs)
	if err != nil {
		return WeekInput{}, fmt.Errorf("failed to load payment instructions: %w", err)
	}

	var holidays []holiday.PublicHoliday
	if applyHolidays {
		holidays, err = s.holidayRepo.ListForRange(ctx, weekStart, weekEnd)
		if err != nil {
			return WeekInput{}, fmt.Errorf("failed to load public holidays: %w", err)
		}
	}

	shifts, err := s.shiftRepo.ListForRange(ctx, weekStart, weekEnd)
	if err != nil {
		return WeekInput{}, fmt.Errorf("failed to load shifts: %w", err)
	}

	return WeekInput{
		WeekStart:         weekStart,
		Staff:             staffList,
		Rates:             rates,
		Instructions:      instructions,
		Holidays:          holidays,
		Shifts:            shifts,
		ApplyHolidayRates: applyHolidays,
	}, nil
}

// FlatReport recomputes the transaction-style report for an arbitrary date
// range. Weekly instruction caps reset at each Monday boundary, so the range
// is computed week by week and the rows concatenated. Holiday markup is not
// applied on this surface (kept behaviour of the financial report screen).
func (s *ReportServiceImpl) FlatReport(ctx context.Context, req wage.RangeRequest) (wage.FlatReportResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.FlatReportResponse{}, err
	}

	start, err := s.parseDate(req.Start)
	if err != nil {
		return wage.FlatReportResponse{}, err
	}
	end, err := s.parseDate(req.End)
	if err != nil {
		return wage.FlatReportResponse{}, err
	}

	resp := wage.FlatReportResponse{
		Start:       req.Start,
		End:         req.End,
		Currency:    s.currency,
		TotalHours:  decimal.Zero,
		TotalAmount: decimal.Zero,
	}

	for weekStart := s.engine.MondayOf(start); !weekStart.After(end); weekStart = weekStart.AddDate(0, 0, 7) {
		input, err := s.fetchWeekInput(ctx, weekStart, false)
		if err != nil {
			return wage.FlatReportResponse{}, err
		}
		report := s.engine.ComputeWeek(input)

		for _, row := range report.Rows {
			if row.Date.Before(start) || row.Date.After(end.AddDate(0, 0, 1).Add(-time.Nanosecond)) {
				continue
			}
			resp.Rows = append(resp.Rows, wage.FlatReportRowResponse{
				ShiftID:          row.ShiftID,
				Date:             row.Date.Format(dateLayout),
				StaffName:        row.StaffName,
				StartTime:        row.StartTime.Format(time.RFC3339),
				EndTime:          row.EndTime.Format(time.RFC3339),
				BillableHours:    row.BillableHours.Round(2),
				NonBillableHours: row.NonBillableHours.Round(2),
				BaseRate:         row.BaseRate.Round(2),
				Amount:           row.Amount.Round(2),
			})
			resp.TotalHours = resp.TotalHours.Add(row.BillableHours)
			resp.TotalAmount = resp.TotalAmount.Add(row.Amount)
		}
	}

	resp.TotalHours = resp.TotalHours.Round(2)
	resp.TotalAmount = resp.TotalAmount.Round(2)
	return resp, nil
}

// WeeklyGrid recomputes the staff-by-day matrix for the Monday-start week
// containing req.Week.
func (s *ReportServiceImpl) WeeklyGrid(ctx context.Context, req wage.WeekRequest) (wage.WeeklyGridResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.WeeklyGridResponse{}, err
	}

	anchor, err := s.parseDate(req.Week)
	if err != nil {
		return wage.WeeklyGridResponse{}, err
	}
	weekStart := s.engine.MondayOf(anchor)

	input, err := s.fetchWeekInput(ctx, weekStart, true)
	if err != nil {
		return wage.WeeklyGridResponse{}, err
	}
	report := s.engine.ComputeWeek(input)

	resp := wage.WeeklyGridResponse{
		WeekStart:   report.WeekStart.Format(dateLayout),
		WeekEnd:     report.WeekStart.AddDate(0, 0, 6).Format(dateLayout),
		Currency:    s.currency,
		TotalHours:  report.TotalHours.Round(2),
		TotalAmount: report.TotalAmount.Round(2),
	}
	for i := 0; i < 7; i++ {
		resp.Days = append(resp.Days, report.WeekStart.AddDate(0, 0, i).Format(dateLayout))
	}

	for _, row := range report.Grid {
		gridRow := wage.GridRowResponse{
			StaffID:     row.StaffID,
			StaffName:   row.StaffName,
			TotalHours:  row.TotalHours.Round(2),
			TotalAmount: row.TotalAmount.Round(2),
		}
		for _, cell := range row.Cells {
			gridRow.Cells = append(gridRow.Cells, wage.GridCellResponse{
				Hours:  cell.Hours.Round(2),
				Amount: cell.Amount.Round(2),
			})
		}
		resp.Rows = append(resp.Rows, gridRow)
	}

	return resp, nil
}

// PaymentReport recomputes the per-staff channel summary for a week and
// flags the staff already snapshotted as paid.
func (s *ReportServiceImpl) PaymentReport(ctx context.Context, req wage.WeekRequest) (wage.PaymentReportResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.PaymentReportResponse{}, err
	}

	anchor, err := s.parseDate(req.Week)
	if err != nil {
		return wage.PaymentReportResponse{}, err
	}
	weekStart := s.engine.MondayOf(anchor)
	weekEnd := weekStart.AddDate(0, 0, 6)

	input, err := s.fetchWeekInput(ctx, weekStart, true)
	if err != nil {
		return wage.PaymentReportResponse{}, err
	}
	report := s.engine.ComputeWeek(input)

	paid, err := s.paymentRepo.PaidStaffIDs(ctx, weekStart, weekEnd)
	if err != nil {
		return wage.PaymentReportResponse{}, fmt.Errorf("failed to load paid staff: %w", err)
	}

	resp := wage.PaymentReportResponse{
		WeekStart:    weekStart.Format(dateLayout),
		WeekEnd:      weekEnd.Format(dateLayout),
		Currency:     s.currency,
		TotalHours:   decimal.Zero,
		TotalWages:   decimal.Zero,
		BookingHours: decimal.Zero,
		BookingWages: decimal.Zero,
		CashHours:    decimal.Zero,
		CashWages:    decimal.Zero,
	}

	for _, summary := range report.Summaries {
		resp.Rows = append(resp.Rows, wage.PaymentReportRowResponse{
			StaffID:      summary.StaffID,
			StaffName:    summary.StaffName,
			TotalHours:   summary.TotalHours.Round(2),
			TotalWages:   summary.TotalWages.Round(2),
			BookingHours: summary.BookingHours.Round(2),
			BookingRate:  summary.BookingRate().Round(2),
			BookingWages: summary.BookingWages.Round(2),
			CashHours:    summary.CashHours.Round(2),
			CashRate:     summary.CashRate().Round(2),
			CashWages:    summary.CashWages.Round(2),
			Paid:         paid[summary.StaffID],
		})
		resp.TotalHours = resp.TotalHours.Add(summary.TotalHours)
		resp.TotalWages = resp.TotalWages.Add(summary.TotalWages)
		resp.BookingHours = resp.BookingHours.Add(summary.BookingHours)
		resp.BookingWages = resp.BookingWages.Add(summary.BookingWages)
		resp.CashHours = resp.CashHours.Add(summary.CashHours)
		resp.CashWages = resp.CashWages.Add(summary.CashWages)
	}

	resp.TotalHours = resp.TotalHours.Round(2)
	resp.TotalWages = resp.TotalWages.Round(2)
	resp.BookingHours = resp.BookingHours.Round(2)
	resp.BookingWages = resp.BookingWages.Round(2)
	resp.CashHours = resp.CashHours.Round(2)
	resp.CashWages = resp.CashWages.Round(2)
	return resp, nil
}

func (s *ReportServiceImpl) parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, s.engine.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}
