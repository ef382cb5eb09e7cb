package wage

import (
	"testing"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/holiday"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/shift"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/staff"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/wage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FIXTURE HELPERS =====

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("bad decimal literal: " + s)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("bad date literal: " + s)
	}
	return t
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("bad timestamp literal: " + s)
	}
	return t
}

var farFuture = day("9999-12-31")

func testStaff(id, name, payRate string) staff.Staff {
	return staff.Staff{
		ID:       id,
		Name:     name,
		PayRate:  dec(payRate),
		IsActive: true,
	}
}

func testRate(staffID string, rt staff.RateType, rate, effective string) staff.StaffRate {
	return staff.StaffRate{
		ID:            staffID + "-" + string(rt) + "-" + effective,
		StaffID:       staffID,
		RateType:      rt,
		Rate:          dec(rate),
		EffectiveDate: day(effective),
		EndDate:       farFuture,
		IsCurrent:     true,
	}
}

func testInstruction(staffID, label string, adjustment string, cap *decimal.Decimal, method *string, priority int) staff.PaymentInstruction {
	return staff.PaymentInstruction{
		ID:                staffID + "-" + label,
		StaffID:           staffID,
		Label:             label,
		AdjustmentPerHour: dec(adjustment),
		WeeklyHoursCap:    cap,
		PaymentMethod:     method,
		Priority:          priority,
		Active:            true,
		EffectiveDate:     day("2020-01-01"),
		EndDate:           farFuture,
		IsCurrent:         true,
	}
}

func testShift(id, staffID string, start, end string, nonBillable string) shift.Shift {
	var sid *string
	if staffID != "" {
		sid = &staffID
	}
	return shift.Shift{
		ID:               id,
		StaffID:          sid,
		StartTime:        at(start),
		EndTime:          at(end),
		NonBillableHours: dec(nonBillable),
	}
}

// ===== WEEK BOUNDARY =====

func TestEngine_MondayOf(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	// 2025-06-09 is a Monday.
	monday := day("2025-06-09")
	assert.True(t, e.MondayOf(day("2025-06-09")).Equal(monday), "Monday maps to itself")
	assert.True(t, e.MondayOf(day("2025-06-11")).Equal(monday), "Wednesday maps back")
	assert.True(t, e.MondayOf(day("2025-06-15")).Equal(monday), "Sunday maps back to the same week's Monday")
	assert.True(t, e.MondayOf(day("2025-06-16")).Equal(day("2025-06-16")), "next Monday starts a new week")
}

// ===== RATE RESOLUTION =====

func TestEngine_ResolveBaseRate_DayBucketBeatsDefault(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)
	s := testStaff("s1", "Alice", "15")
	rates := []staff.StaffRate{
		testRate("s1", staff.RateTypeDefault, "20", "2025-01-01"),
		testRate("s1", staff.RateTypeSat, "28", "2025-01-01"),
	}

	// 2025-06-14 is a Saturday, 2025-06-11 a Wednesday.
	assert.True(t, dec("28").Equal(e.ResolveBaseRate(s, rates, nil, day("2025-06-14"))))
	assert.True(t, dec("20").Equal(e.ResolveBaseRate(s, rates, nil, day("2025-06-11"))))
}

func TestEngine_ResolveBaseRate_FallbackChain(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	// No rate rows, staff default_rate set.
	withDefault := testStaff("s1", "Alice", "15")
	withDefault.DefaultRate = decPtr("18")
	assert.True(t, dec("18").Equal(e.ResolveBaseRate(withDefault, nil, nil, day("2025-06-11"))))

	// No rate rows, no default_rate: legacy pay_rate.
	legacyOnly := testStaff("s2", "Bob", "15")
	assert.True(t, dec("15").Equal(e.ResolveBaseRate(legacyOnly, nil, nil, day("2025-06-11"))))

	// Nothing at all resolves to zero, not an error.
	bare := staff.Staff{ID: "s3", Name: "Cara", IsActive: true}
	assert.True(t, e.ResolveBaseRate(bare, nil, nil, day("2025-06-11")).IsZero())
}

func TestEngine_ResolveBaseRate_DefaultRowCoversEveryWeekday(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)
	s := testStaff("s1", "Alice", "15")
	rates := []staff.StaffRate{testRate("s1", staff.RateTypeDefault, "21", "2025-01-01")}

	for i := 0; i < 7; i++ {
		date := day("2025-06-09").AddDate(0, 0, i)
		assert.True(t, dec("21").Equal(e.ResolveBaseRate(s, rates, nil, date)), "day offset %d", i)
	}
}

func TestEngine_ResolveBaseRate_ExpiredRowIgnored(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)
	s := testStaff("s1", "Alice", "15")

	expired := testRate("s1", staff.RateTypeDefault, "30", "2024-01-01")
	expired.EndDate = day("2024-12-31")
	expired.IsCurrent = false
	rates := []staff.StaffRate{
		expired,
		testRate("s1", staff.RateTypeDefault, "22", "2025-01-01"),
	}

	assert.True(t, dec("22").Equal(e.ResolveBaseRate(s, rates, nil, day("2025-06-11"))))
	// The expired row still wins inside its own range.
	assert.True(t, dec("30").Equal(e.ResolveBaseRate(s, rates, nil, day("2024-06-11"))))
}

func TestEngine_ResolveBaseRate_OverlapMostRecentEffectiveWins(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)
	s := testStaff("s1", "Alice", "15")

	older := testRate("s1", staff.RateTypeDefault, "19", "2024-01-01")
	newer := testRate("s1", staff.RateTypeDefault, "23", "2025-03-01")

	// Both ranges cover the date regardless of slice order.
	assert.True(t, dec("23").Equal(e.ResolveBaseRate(s, []staff.StaffRate{older, newer}, nil, day("2025-06-11"))))
	assert.True(t, dec("23").Equal(e.ResolveBaseRate(s, []staff.StaffRate{newer, older}, nil, day("2025-06-11"))))
}

// ===== HOLIDAY MARKUP =====

func TestEngine_ResolveBaseRate_HolidayPercentage(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)
	s := testStaff("s1", "Alice", "20")
	s.AppliesPublicHolidayRules = true

	holidays := []holiday.PublicHoliday{{
		ID: "h1", Name: "King's Birthday", HolidayDate: day("2025-06-09"),
		MarkupPercentage: dec("150"), IsActive: true,
	}}

	assert.True(t, dec("30").Equal(e.ResolveBaseRate(s, nil, holidays, day("2025-06-09"))), "20 at 150%% is 30")
	assert.True(t, dec("20").Equal(e.ResolveBaseRate(s, nil, holidays, day("2025-06-10"))), "only the holiday date is marked up")
}

func TestEngine_ResolveBaseRate_HolidayFlatAmount(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)
	s := testStaff("s1", "Alice", "20")
	s.AppliesPublicHolidayRules = true

	holidays := []holiday.PublicHoliday{{
		ID: "h1", Name: "Anzac Day", HolidayDate: day("2025-04-25"),
		MarkupAmount: dec("5"), IsActive: true,
	}}

	assert.True(t, dec("25").Equal(e.ResolveBaseRate(s, nil, holidays, day("2025-04-25"))))
}

func TestEngine_ResolveBaseRate_HolidayPercentageWinsOverAmount(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)
	s := testStaff("s1", "Alice", "20")
	s.AppliesPublicHolidayRules = true

	holidays := []holiday.PublicHoliday{{
		ID: "h1", Name: "Christmas Day", HolidayDate: day("2025-12-25"),
		MarkupPercentage: dec("200"), MarkupAmount: dec("5"), IsActive: true,
	}}

	assert.True(t, dec("40").Equal(e.ResolveBaseRate(s, nil, holidays, day("2025-12-25"))))
}

func TestEngine_ResolveBaseRate_HolidayOptOut(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)
	s := testStaff("s1", "Alice", "20")
	// AppliesPublicHolidayRules stays false.

	holidays := []holiday.PublicHoliday{{
		ID: "h1", Name: "Christmas Day", HolidayDate: day("2025-12-25"),
		MarkupPercentage: dec("150"), IsActive: true,
	}}

	assert.True(t, dec("20").Equal(e.ResolveBaseRate(s, nil, holidays, day("2025-12-25"))))
}

func TestEngine_ResolveBaseRate_InactiveHolidayIgnored(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)
	s := testStaff("s1", "Alice", "20")
	s.AppliesPublicHolidayRules = true

	holidays := []holiday.PublicHoliday{{
		ID: "h1", Name: "Removed Day", HolidayDate: day("2025-06-09"),
		MarkupPercentage: dec("150"), IsActive: false,
	}}

	assert.True(t, dec("20").Equal(e.ResolveBaseRate(s, nil, holidays, day("2025-06-09"))))
}

// ===== SHIFT NORMALIZATION =====

func TestEngine_NormalizeShift_Billable(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	sh := testShift("sh1", "s1", "2025-06-09T09:00:00Z", "2025-06-09T17:30:00Z", "0.5")
	n := e.NormalizeShift(sh)

	assert.True(t, dec("8.5").Equal(n.RawHours))
	assert.True(t, dec("8").Equal(n.BillableHours))
	assert.True(t, n.Date.Equal(day("2025-06-09")))
}

func TestEngine_NormalizeShift_NonBillableClampsToZero(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	sh := testShift("sh1", "s1", "2025-06-09T09:00:00Z", "2025-06-09T17:00:00Z", "9")
	n := e.NormalizeShift(sh)

	assert.True(t, dec("8").Equal(n.RawHours))
	assert.True(t, n.BillableHours.IsZero(), "billable hours never go negative")
}

func TestEngine_NormalizeShift_OvernightAttributedToStartDate(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	sh := testShift("sh1", "s1", "2025-06-13T22:00:00Z", "2025-06-14T02:00:00Z", "0")
	n := e.NormalizeShift(sh)

	assert.True(t, dec("4").Equal(n.BillableHours))
	assert.True(t, n.Date.Equal(day("2025-06-13")), "the whole shift belongs to the start date")
}

// ===== ALLOCATION =====

func TestEngine_Allocate_CapExhaustionAcrossShifts(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	caps := NewInstructionCaps([]staff.PaymentInstruction{
		testInstruction("s1", "loading", "2", decPtr("10"), nil, 1),
	})

	// First shift: 6h all inside the cap at 20+2.
	first := e.Allocate(dec("6"), dec("20"), caps)
	assert.True(t, dec("132").Equal(first.Amount))
	assert.True(t, dec("22").Equal(first.EffectiveRate))

	// Second shift: 4h left in the cap at 22, remaining 2h at the plain 20.
	second := e.Allocate(dec("6"), dec("20"), caps)
	assert.True(t, dec("128").Equal(second.Amount))
	assert.True(t, dec("22").Equal(second.EffectiveRate), "the first applied slice sets the effective rate")

	assert.True(t, dec("260").Equal(first.Amount.Add(second.Amount)), "12h week totals 260")

	// Cap is spent; a third shift is paid entirely at base.
	third := e.Allocate(dec("3"), dec("20"), caps)
	assert.True(t, dec("60").Equal(third.Amount))
	assert.True(t, dec("20").Equal(third.EffectiveRate))
}

func TestEngine_Allocate_PriorityOrder(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	// Declared out of priority order on purpose.
	caps := NewInstructionCaps([]staff.PaymentInstruction{
		testInstruction("s1", "secondary", "1", decPtr("10"), nil, 2),
		testInstruction("s1", "primary", "5", decPtr("3"), nil, 1),
	})

	// 5h: 3h at 20+5, then 2h at 20+1.
	alloc := e.Allocate(dec("5"), dec("20"), caps)
	assert.True(t, dec("117").Equal(alloc.Amount))
	assert.True(t, dec("25").Equal(alloc.EffectiveRate))
}

func TestEngine_Allocate_ChannelSplit(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	caps := NewInstructionCaps([]staff.PaymentInstruction{
		testInstruction("s1", "booked", "0", decPtr("4"), strPtr(wage.ChannelBooking), 1),
	})

	// 6h: 4h through the booking channel, 2h leftover lands in cash.
	alloc := e.Allocate(dec("6"), dec("20"), caps)
	assert.True(t, dec("4").Equal(alloc.BookingHours))
	assert.True(t, dec("80").Equal(alloc.BookingAmount))
	assert.True(t, dec("2").Equal(alloc.CashHours))
	assert.True(t, dec("40").Equal(alloc.CashAmount))
	assert.True(t, dec("120").Equal(alloc.Amount))
}

func TestEngine_Allocate_UncappedInstructionTakesEverything(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	caps := NewInstructionCaps([]staff.PaymentInstruction{
		testInstruction("s1", "flat-loading", "3", nil, strPtr(wage.ChannelCash), 1),
	})

	alloc := e.Allocate(dec("40"), dec("20"), caps)
	assert.True(t, dec("920").Equal(alloc.Amount))
	assert.True(t, dec("40").Equal(alloc.CashHours))
	assert.True(t, alloc.BookingHours.IsZero())
}

func TestEngine_Allocate_NegativeAdjustmentNotClamped(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	caps := NewInstructionCaps([]staff.PaymentInstruction{
		testInstruction("s1", "deduction", "-25", decPtr("2"), nil, 1),
	})

	// 2h at 20-25 = -10, then 1h at 20.
	alloc := e.Allocate(dec("3"), dec("20"), caps)
	assert.True(t, dec("10").Equal(alloc.Amount))
	assert.True(t, dec("-5").Equal(alloc.EffectiveRate))
}

func TestEngine_Allocate_NoInstructions(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	alloc := e.Allocate(dec("8"), dec("20"), NewInstructionCaps(nil))
	assert.True(t, dec("160").Equal(alloc.Amount))
	assert.True(t, dec("8").Equal(alloc.CashHours), "uninstructed hours default to cash")
	assert.True(t, dec("20").Equal(alloc.EffectiveRate))
}

// ===== WEEK COMPUTATION =====

func capWeekInput() WeekInput {
	return WeekInput{
		WeekStart: day("2025-06-09"),
		Staff:     []staff.Staff{testStaff("s1", "Alice", "20")},
		Instructions: []staff.PaymentInstruction{
			testInstruction("s1", "loading", "2", decPtr("10"), nil, 1),
		},
		Shifts: []shift.Shift{
			testShift("sh1", "s1", "2025-06-09T09:00:00Z", "2025-06-09T15:00:00Z", "0"),
			testShift("sh2", "s1", "2025-06-10T09:00:00Z", "2025-06-10T15:00:00Z", "0"),
		},
	}
}

func TestEngine_ComputeWeek_CapDeterminism(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	report := e.ComputeWeek(capWeekInput())

	require.Len(t, report.Rows, 2)
	assert.True(t, dec("132").Equal(report.Rows[0].Amount))
	assert.True(t, dec("128").Equal(report.Rows[1].Amount))
	assert.True(t, dec("260").Equal(report.TotalAmount))
	assert.True(t, dec("12").Equal(report.TotalHours))
}

func TestEngine_ComputeWeek_ShiftOrderInInputDoesNotMatter(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	in := capWeekInput()
	in.Shifts[0], in.Shifts[1] = in.Shifts[1], in.Shifts[0]
	report := e.ComputeWeek(in)

	// Rows come back in start order and the earlier shift still consumes the
	// cap first.
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "sh1", report.Rows[0].ShiftID)
	assert.True(t, dec("132").Equal(report.Rows[0].Amount))
	assert.True(t, dec("260").Equal(report.TotalAmount))
}

func TestEngine_ComputeWeek_Idempotent(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	in := capWeekInput()
	first := e.ComputeWeek(in)
	second := e.ComputeWeek(in)

	assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
	assert.True(t, first.TotalHours.Equal(second.TotalHours))
	require.Equal(t, len(first.Rows), len(second.Rows))
	for i := range first.Rows {
		assert.True(t, first.Rows[i].Amount.Equal(second.Rows[i].Amount))
	}
}

func TestEngine_ComputeWeek_SkipsUnassignedAndUnknownStaff(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	in := WeekInput{
		WeekStart: day("2025-06-09"),
		Staff:     []staff.Staff{testStaff("s1", "Alice", "20")},
		Shifts: []shift.Shift{
			testShift("sh1", "s1", "2025-06-09T09:00:00Z", "2025-06-09T13:00:00Z", "0"),
			testShift("sh2", "", "2025-06-09T09:00:00Z", "2025-06-09T13:00:00Z", "0"),
			testShift("sh3", "ghost", "2025-06-09T09:00:00Z", "2025-06-09T13:00:00Z", "0"),
		},
	}
	report := e.ComputeWeek(in)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, "sh1", report.Rows[0].ShiftID)
	assert.True(t, dec("4").Equal(report.TotalHours))
}

func TestEngine_ComputeWeek_ShiftOutsideWeekExcluded(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	in := WeekInput{
		WeekStart: day("2025-06-09"),
		Staff:     []staff.Staff{testStaff("s1", "Alice", "20")},
		Shifts: []shift.Shift{
			testShift("sh1", "s1", "2025-06-08T09:00:00Z", "2025-06-08T13:00:00Z", "0"),
			testShift("sh2", "s1", "2025-06-16T09:00:00Z", "2025-06-16T13:00:00Z", "0"),
			testShift("sh3", "s1", "2025-06-15T09:00:00Z", "2025-06-15T13:00:00Z", "0"),
		},
	}
	report := e.ComputeWeek(in)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, "sh3", report.Rows[0].ShiftID, "only the Sunday inside the week survives")
}

func TestEngine_ComputeWeek_GridPlacement(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	in := WeekInput{
		WeekStart: day("2025-06-09"),
		Staff: []staff.Staff{
			testStaff("s1", "Alice", "20"),
			testStaff("s2", "Bob", "25"),
		},
		Shifts: []shift.Shift{
			// Wednesday for Alice, Sunday for Bob.
			testShift("sh1", "s1", "2025-06-11T09:00:00Z", "2025-06-11T13:00:00Z", "0"),
			testShift("sh2", "s2", "2025-06-15T09:00:00Z", "2025-06-15T11:00:00Z", "0"),
		},
	}
	report := e.ComputeWeek(in)

	require.Len(t, report.Grid, 2)
	alice, bob := report.Grid[0], report.Grid[1]
	assert.Equal(t, "Alice", alice.StaffName)

	assert.True(t, dec("4").Equal(alice.Cells[2].Hours), "Wednesday is cell index 2")
	assert.True(t, dec("80").Equal(alice.Cells[2].Amount))
	assert.True(t, alice.Cells[0].Hours.IsZero())

	assert.True(t, dec("2").Equal(bob.Cells[6].Hours), "Sunday is cell index 6")
	assert.True(t, dec("50").Equal(bob.Cells[6].Amount))
}

func TestEngine_ComputeWeek_SummariesOnlyForWorkedStaff(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	in := WeekInput{
		WeekStart: day("2025-06-09"),
		Staff: []staff.Staff{
			testStaff("s1", "Alice", "20"),
			testStaff("s2", "Bob", "25"),
		},
		Shifts: []shift.Shift{
			testShift("sh1", "s1", "2025-06-09T09:00:00Z", "2025-06-09T13:00:00Z", "0"),
		},
	}
	report := e.ComputeWeek(in)

	// Bob keeps a grid row but gets no summary.
	require.Len(t, report.Grid, 2)
	require.Len(t, report.Summaries, 1)
	assert.Equal(t, "Alice", report.Summaries[0].StaffName)
}

func TestEngine_ComputeWeek_HolidayToggle(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	s := testStaff("s1", "Alice", "20")
	s.AppliesPublicHolidayRules = true
	in := WeekInput{
		WeekStart: day("2025-06-09"),
		Staff:     []staff.Staff{s},
		Holidays: []holiday.PublicHoliday{{
			ID: "h1", Name: "King's Birthday", HolidayDate: day("2025-06-09"),
			MarkupPercentage: dec("150"), IsActive: true,
		}},
		Shifts: []shift.Shift{
			testShift("sh1", "s1", "2025-06-09T09:00:00Z", "2025-06-09T13:00:00Z", "0"),
		},
	}

	plain := e.ComputeWeek(in)
	require.Len(t, plain.Rows, 1)
	assert.True(t, dec("80").Equal(plain.TotalAmount))
	assert.False(t, plain.Rows[0].HolidayApplied)

	in.ApplyHolidayRates = true
	marked := e.ComputeWeek(in)
	require.Len(t, marked.Rows, 1)
	assert.True(t, dec("120").Equal(marked.TotalAmount), "4h at 30 with the markup on")
	assert.True(t, marked.Rows[0].HolidayApplied)
}

func TestEngine_ComputeWeek_RespectsInstructionEffectiveRange(t *testing.T) {
	t.Parallel()
	e := NewEngine(time.UTC)

	future := testInstruction("s1", "later", "10", nil, nil, 1)
	future.EffectiveDate = day("2026-01-01")

	in := WeekInput{
		WeekStart:    day("2025-06-09"),
		Staff:        []staff.Staff{testStaff("s1", "Alice", "20")},
		Instructions: []staff.PaymentInstruction{future},
		Shifts: []shift.Shift{
			testShift("sh1", "s1", "2025-06-09T09:00:00Z", "2025-06-09T13:00:00Z", "0"),
		},
	}
	report := e.ComputeWeek(in)

	assert.True(t, dec("80").Equal(report.TotalAmount), "an instruction not yet in force is ignored")
}

func TestEngine_ResolveBaseRate_DateColumnsScanAsUTCMidnight(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("Australia/Melbourne")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	e := NewEngine(loc)
	s := testStaff("s1", "Alice", "20")

	// The driver hands DATE columns back as UTC midnights, while report
	// dates are midnights in the report timezone.
	rate := testRate("s1", staff.RateTypeDefault, "30", "2025-06-09")
	rate.EndDate = day("2025-06-15")
	rates := []staff.StaffRate{rate}

	first := time.Date(2025, 6, 9, 0, 0, 0, 0, loc)
	last := time.Date(2025, 6, 15, 0, 0, 0, 0, loc)
	before := time.Date(2025, 6, 8, 0, 0, 0, 0, loc)
	after := time.Date(2025, 6, 16, 0, 0, 0, 0, loc)

	assert.True(t, dec("30").Equal(e.ResolveBaseRate(s, rates, nil, first)),
		"rate effective 2025-06-09 must apply on 2025-06-09")
	assert.True(t, dec("30").Equal(e.ResolveBaseRate(s, rates, nil, last)),
		"end_date is inclusive")
	assert.True(t, dec("20").Equal(e.ResolveBaseRate(s, rates, nil, before)))
	assert.True(t, dec("20").Equal(e.ResolveBaseRate(s, rates, nil, after)))
}

func TestEngine_ComputeWeek_InstructionEffectiveOnWeekMondayApplies(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("Australia/Melbourne")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	e := NewEngine(loc)

	ins := testInstruction("s1", "loading", "2", decPtr("10"), nil, 1)
	ins.EffectiveDate = day("2025-06-09") // UTC midnight, as scanned from the DATE column

	monday := time.Date(2025, 6, 9, 9, 0, 0, 0, loc)
	in := WeekInput{
		WeekStart:    time.Date(2025, 6, 9, 0, 0, 0, 0, loc),
		Staff:        []staff.Staff{testStaff("s1", "Alice", "20")},
		Instructions: []staff.PaymentInstruction{ins},
		Shifts: []shift.Shift{
			{ID: "sh1", StaffID: strPtr("s1"), StartTime: monday, EndTime: monday.Add(6 * time.Hour), NonBillableHours: decimal.Zero},
		},
	}
	report := e.ComputeWeek(in)

	require.Len(t, report.Rows, 1)
	assert.True(t, dec("132").Equal(report.Rows[0].Amount),
		"an instruction effective on the week's Monday covers that week")
}

func TestEngine_ComputeWeek_DSTWeekKeepsCalendarDays(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("Australia/Melbourne")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	e := NewEngine(loc)

	// DST ends 2025-04-06 in Melbourne; that Sunday has 25 hours.
	weekStart := time.Date(2025, 3, 31, 0, 0, 0, 0, loc)
	sunday := time.Date(2025, 4, 6, 9, 0, 0, 0, loc)

	in := WeekInput{
		WeekStart: weekStart,
		Staff:     []staff.Staff{testStaff("s1", "Alice", "20")},
		Shifts: []shift.Shift{
			{ID: "sh1", StaffID: strPtr("s1"), StartTime: sunday, EndTime: sunday.Add(4 * time.Hour), NonBillableHours: decimal.Zero},
		},
	}
	report := e.ComputeWeek(in)

	require.Len(t, report.Rows, 1)
	require.Len(t, report.Grid, 1)
	assert.True(t, dec("4").Equal(report.Grid[0].Cells[6].Hours), "the shift lands on Sunday despite the 25-hour day")
}
