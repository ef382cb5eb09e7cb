package wage

import (
	"sort"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/holiday"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/shift"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/staff"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/wage"
	"github.com/shopspring/decimal"
)

var secondsPerHour = decimal.NewFromInt(3600)

// Engine is the shared wage computation every report surface runs through.
// It is pure and synchronous: all inputs are fetched up front, no I/O happens
// here, and two runs over the same inputs produce identical output.
type Engine struct {
	loc *time.Location
}

func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{loc: loc}
}

// MondayOf returns midnight of the Monday of the week containing date, in the
// engine's report timezone.
func (e *Engine) MondayOf(date time.Time) time.Time {
	d := date.In(e.loc)
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, e.loc)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// ResolveBaseRate produces the effective base hourly rate for a staff member
// on a calendar date.
//
// Lookup order: the day-of-week rate row whose effective range covers the
// date, then the default rate row, then the staff record's default_rate, then
// the legacy flat pay_rate. Missing rate data degrades to zero rather than
// failing; a $0.00 line is itself diagnostic.
//
// When rows for the same bucket overlap, the most recently effective row wins
// (is_current, then newest created_at break remaining ties). Storage order is
// never trusted.
//
// Holiday markup applies only when the staff member opted in: a positive
// markup_percentage multiplies the rate (150 means time-and-a-half),
// otherwise a positive markup_amount is added.
func (e *Engine) ResolveBaseRate(s staff.Staff, rates []staff.StaffRate, holidays []holiday.PublicHoliday, date time.Time) decimal.Decimal {
	rate, found := e.lookupRate(s.ID, rates, staff.RateTypeForDate(date.In(e.loc)), date)
	if !found {
		rate, found = e.lookupRate(s.ID, rates, staff.RateTypeDefault, date)
	}
	if !found {
		if s.DefaultRate != nil {
			rate = *s.DefaultRate
		} else {
			rate = s.PayRate
		}
	}

	if s.AppliesPublicHolidayRules {
		if h, ok := e.holidayOn(holidays, date); ok {
			rate = h.AdjustRate(rate)
		}
	}

	return rate
}

func (e *Engine) lookupRate(staffID string, rates []staff.StaffRate, rateType staff.RateType, date time.Time) (decimal.Decimal, bool) {
	d := date.In(e.loc)

	var candidates []staff.StaffRate
	for _, r := range rates {
		if r.StaffID == staffID && r.RateType == rateType && r.Covers(d) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return decimal.Zero, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if !a.EffectiveDate.Equal(b.EffectiveDate) {
			return a.EffectiveDate.After(b.EffectiveDate)
		}
		if a.IsCurrent != b.IsCurrent {
			return a.IsCurrent
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return candidates[0].Rate, true
}

func (e *Engine) holidayOn(holidays []holiday.PublicHoliday, date time.Time) (holiday.PublicHoliday, bool) {
	y, m, d := date.In(e.loc).Date()
	for _, h := range holidays {
		if !h.IsActive {
			continue
		}
		hy, hm, hd := h.HolidayDate.Date()
		if hy == y && hm == m && hd == d {
			return h, true
		}
	}
	return holiday.PublicHoliday{}, false
}

// NormalizeShift turns a raw roster shift into billable hours.
//
// Duration comes from the absolute timestamps, so overnight shifts need no
// special casing. Billable hours clamp at zero; payroll never produces a
// negative line. The shift is attributed entirely to the calendar date of its
// start, even when it crosses midnight.
func (e *Engine) NormalizeShift(sh shift.Shift) wage.NormalizedShift {
	start := sh.StartTime.In(e.loc)

	seconds := int64(sh.EndTime.Sub(sh.StartTime) / time.Second)
	raw := decimal.NewFromInt(seconds).Div(secondsPerHour)
	if raw.IsNegative() {
		raw = decimal.Zero
	}

	billable := raw.Sub(sh.NonBillableHours)
	if billable.IsNegative() {
		billable = decimal.Zero
	}

	staffID := ""
	if sh.StaffID != nil {
		staffID = *sh.StaffID
	}

	return wage.NormalizedShift{
		ShiftID:          sh.ID,
		StaffID:          staffID,
		Date:             time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, e.loc),
		StartTime:        sh.StartTime,
		EndTime:          sh.EndTime,
		RawHours:         raw,
		NonBillableHours: sh.NonBillableHours,
		BillableHours:    billable,
	}
}

// InstructionCaps is one staff member's remaining weekly instruction
// capacity. It is shared mutable state across the shifts of a week, which is
// why ComputeWeek processes shifts in ascending start order. A nil remaining
// entry means the instruction is uncapped.
type InstructionCaps struct {
	list      []staff.PaymentInstruction
	remaining []*decimal.Decimal
}

// NewInstructionCaps builds fresh cap state from a staff member's instruction
// list, ordered by priority ascending.
func NewInstructionCaps(instructions []staff.PaymentInstruction) *InstructionCaps {
	list := make([]staff.PaymentInstruction, len(instructions))
	copy(list, instructions)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Priority < list[j].Priority
	})

	remaining := make([]*decimal.Decimal, len(list))
	for i, ins := range list {
		if ins.WeeklyHoursCap != nil {
			left := *ins.WeeklyHoursCap
			remaining[i] = &left
		}
	}

	return &InstructionCaps{list: list, remaining: remaining}
}

// Allocation is the payable outcome of one shift.
type Allocation struct {
	Amount        decimal.Decimal
	EffectiveRate decimal.Decimal
	BookingHours  decimal.Decimal
	BookingAmount decimal.Decimal
	CashHours     decimal.Decimal
	CashAmount    decimal.Decimal
}

// Allocate splits a shift's billable hours across the staff member's payment
// instructions and the plain base rate, consuming weekly caps as it goes.
//
// Instructions apply in priority order. Each takes min(remaining hours,
// remaining cap) at base rate plus its per-hour adjustment; an exhausted cap
// is skipped. Hours left once every instruction is spent are paid at the
// plain base rate and land in the cash channel. A negative effective rate is
// allowed arithmetically; no clamping happens here.
func (e *Engine) Allocate(billable, baseRate decimal.Decimal, caps *InstructionCaps) Allocation {
	alloc := Allocation{
		Amount:        decimal.Zero,
		EffectiveRate: baseRate,
		BookingHours:  decimal.Zero,
		BookingAmount: decimal.Zero,
		CashHours:     decimal.Zero,
		CashAmount:    decimal.Zero,
	}

	remaining := billable
	effectiveRateSet := false

	if caps != nil {
		for idx := range caps.list {
			if !remaining.IsPositive() {
				break
			}

			capLeft := caps.remaining[idx]
			if capLeft != nil && !capLeft.IsPositive() {
				continue
			}

			take := remaining
			if capLeft != nil && capLeft.LessThan(take) {
				take = *capLeft
			}

			ins := caps.list[idx]
			rate := baseRate.Add(ins.AdjustmentPerHour)
			lineAmount := take.Mul(rate)
			alloc.Amount = alloc.Amount.Add(lineAmount)

			if !effectiveRateSet && take.IsPositive() {
				alloc.EffectiveRate = rate
				effectiveRateSet = true
			}

			if ins.PaymentMethod != nil {
				switch *ins.PaymentMethod {
				case wage.ChannelBooking:
					alloc.BookingHours = alloc.BookingHours.Add(take)
					alloc.BookingAmount = alloc.BookingAmount.Add(lineAmount)
				case wage.ChannelCash:
					alloc.CashHours = alloc.CashHours.Add(take)
					alloc.CashAmount = alloc.CashAmount.Add(lineAmount)
				}
			}

			if capLeft != nil {
				newCap := capLeft.Sub(take)
				caps.remaining[idx] = &newCap
			}
			remaining = remaining.Sub(take)
		}
	}

	if remaining.IsPositive() {
		lineAmount := remaining.Mul(baseRate)
		alloc.Amount = alloc.Amount.Add(lineAmount)
		alloc.CashHours = alloc.CashHours.Add(remaining)
		alloc.CashAmount = alloc.CashAmount.Add(lineAmount)
	}

	return alloc
}

// WeekInput is everything one allocation run needs, fetched up front.
type WeekInput struct {
	WeekStart    time.Time // any time inside the wanted week
	Staff        []staff.Staff
	Rates        []staff.StaffRate
	Instructions []staff.PaymentInstruction
	Holidays     []holiday.PublicHoliday
	Shifts       []shift.Shift
	// ApplyHolidayRates toggles holiday markup. The financial report screen
	// historically omits it while the wages grid and payment snapshots apply
	// it; the divergence is kept explicit here instead of silently resolved.
	ApplyHolidayRates bool
}

// ComputeWeek runs the full allocation for a Monday-start week and returns
// the flat rows, the staff-by-day grid and per-staff summaries.
//
// Shifts are processed in ascending start order because weekly instruction
// caps are order-sensitive shared state. Unassigned shifts and shifts for
// unknown staff are skipped. Each run allocates fresh cap state, so
// concurrent computations never share anything mutable.
func (e *Engine) ComputeWeek(in WeekInput) wage.WeekReport {
	weekStart := e.MondayOf(in.WeekStart)
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond)

	report := wage.WeekReport{
		WeekStart:   weekStart,
		WeekEnd:     weekEnd,
		TotalHours:  decimal.Zero,
		TotalAmount: decimal.Zero,
	}

	staffByID := make(map[string]staff.Staff, len(in.Staff))
	for _, s := range in.Staff {
		staffByID[s.ID] = s
	}

	capsByStaff := e.buildWeekCaps(in.Staff, in.Instructions, weekStart)

	gridByStaff := make(map[string]*wage.StaffWeekRow, len(in.Staff))
	summaryByStaff := make(map[string]*wage.StaffSummary, len(in.Staff))
	for _, s := range in.Staff {
		row := &wage.StaffWeekRow{StaffID: s.ID, StaffName: s.Name, TotalHours: decimal.Zero, TotalAmount: decimal.Zero}
		for i := range row.Cells {
			row.Cells[i] = wage.DayCell{Hours: decimal.Zero, Amount: decimal.Zero}
		}
		gridByStaff[s.ID] = row
		summaryByStaff[s.ID] = &wage.StaffSummary{
			StaffID: s.ID, StaffName: s.Name,
			TotalHours: decimal.Zero, TotalWages: decimal.Zero,
			BookingHours: decimal.Zero, BookingWages: decimal.Zero,
			CashHours: decimal.Zero, CashWages: decimal.Zero,
		}
	}

	sorted := make([]shift.Shift, len(in.Shifts))
	copy(sorted, in.Shifts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	for _, sh := range sorted {
		if sh.StaffID == nil {
			continue
		}
		member, ok := staffByID[*sh.StaffID]
		if !ok {
			continue
		}

		normalized := e.NormalizeShift(sh)
		if normalized.Date.Before(weekStart) || normalized.Date.After(weekEnd) {
			continue
		}

		holidays := in.Holidays
		if !in.ApplyHolidayRates {
			holidays = nil
		}
		baseRate := e.ResolveBaseRate(member, in.Rates, holidays, normalized.Date)
		alloc := e.Allocate(normalized.BillableHours, baseRate, capsByStaff[member.ID])

		holidayApplied := false
		if in.ApplyHolidayRates && member.AppliesPublicHolidayRules {
			_, holidayApplied = e.holidayOn(in.Holidays, normalized.Date)
		}

		report.Rows = append(report.Rows, wage.ReportRow{
			ShiftID:          sh.ID,
			StaffID:          member.ID,
			StaffName:        member.Name,
			Date:             normalized.Date,
			StartTime:        sh.StartTime,
			EndTime:          sh.EndTime,
			BillableHours:    normalized.BillableHours,
			NonBillableHours: normalized.NonBillableHours,
			BaseRate:         baseRate,
			EffectiveRate:    alloc.EffectiveRate,
			Amount:           alloc.Amount,
			BookingHours:     alloc.BookingHours,
			BookingAmount:    alloc.BookingAmount,
			CashHours:        alloc.CashHours,
			CashAmount:       alloc.CashAmount,
			HolidayApplied:   holidayApplied,
			Notes:            sh.Notes,
		})

		// Calendar day offset; duration arithmetic would drift on DST days.
		dayIndex := 0
		for d := weekStart; d.Before(normalized.Date) && dayIndex < 7; d = d.AddDate(0, 0, 1) {
			dayIndex++
		}
		if dayIndex < 7 {
			grid := gridByStaff[member.ID]
			grid.Cells[dayIndex].Hours = grid.Cells[dayIndex].Hours.Add(normalized.BillableHours)
			grid.Cells[dayIndex].Amount = grid.Cells[dayIndex].Amount.Add(alloc.Amount)
			grid.TotalHours = grid.TotalHours.Add(normalized.BillableHours)
			grid.TotalAmount = grid.TotalAmount.Add(alloc.Amount)
		}

		summary := summaryByStaff[member.ID]
		summary.TotalHours = summary.TotalHours.Add(normalized.BillableHours)
		summary.TotalWages = summary.TotalWages.Add(alloc.Amount)
		summary.BookingHours = summary.BookingHours.Add(alloc.BookingHours)
		summary.BookingWages = summary.BookingWages.Add(alloc.BookingAmount)
		summary.CashHours = summary.CashHours.Add(alloc.CashHours)
		summary.CashWages = summary.CashWages.Add(alloc.CashAmount)

		report.TotalHours = report.TotalHours.Add(normalized.BillableHours)
		report.TotalAmount = report.TotalAmount.Add(alloc.Amount)
	}

	sort.SliceStable(report.Rows, func(i, j int) bool {
		a, b := report.Rows[i], report.Rows[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.StaffName != b.StaffName {
			return a.StaffName < b.StaffName
		}
		return a.StartTime.Before(b.StartTime)
	})

	for _, s := range in.Staff {
		report.Grid = append(report.Grid, *gridByStaff[s.ID])
	}
	sort.SliceStable(report.Grid, func(i, j int) bool {
		return report.Grid[i].StaffName < report.Grid[j].StaffName
	})

	for _, s := range in.Staff {
		summary := summaryByStaff[s.ID]
		if summary.TotalHours.IsPositive() {
			report.Summaries = append(report.Summaries, *summary)
		}
	}
	sort.SliceStable(report.Summaries, func(i, j int) bool {
		return report.Summaries[i].StaffName < report.Summaries[j].StaffName
	})

	return report
}

// buildWeekCaps prepares per-staff cap state from the instructions in force
// for the week: active, current and effective-dated to cover the week start.
func (e *Engine) buildWeekCaps(staffList []staff.Staff, instructions []staff.PaymentInstruction, weekStart time.Time) map[string]*InstructionCaps {
	byStaff := make(map[string][]staff.PaymentInstruction)
	for _, ins := range instructions {
		if !ins.Active || !ins.IsCurrent || !ins.Covers(weekStart) {
			continue
		}
		byStaff[ins.StaffID] = append(byStaff[ins.StaffID], ins)
	}

	caps := make(map[string]*InstructionCaps, len(staffList))
	for _, s := range staffList {
		caps[s.ID] = NewInstructionCaps(byStaff[s.ID])
	}
	return caps
}
