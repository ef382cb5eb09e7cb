package wage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/holiday"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/shift"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/staff"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/wage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY REPOSITORIES =====
// The payment service is exercised against in-memory stores so the sealing
// semantics can be tested without a database. The write-once rule lives in
// stubPaymentRepo.Create, mirroring the unique constraint on the real table.

type stubStaffRepo struct {
	members map[string]staff.Staff
}

func (r *stubStaffRepo) Create(_ context.Context, s staff.Staff) (staff.Staff, error) {
	r.members[s.ID] = s
	return s, nil
}

func (r *stubStaffRepo) GetByID(_ context.Context, id string) (staff.Staff, error) {
	m, ok := r.members[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return m, nil
}

func (r *stubStaffRepo) List(_ context.Context, activeOnly bool) ([]staff.Staff, error) {
	var out []staff.Staff
	for _, m := range r.members {
		if activeOnly && !m.IsActive {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *stubStaffRepo) Update(_ context.Context, _ staff.UpdateStaffRequest) error { return nil }
func (r *stubStaffRepo) Delete(_ context.Context, _ string) error                   { return nil }

type stubRateRepo struct {
	rates []staff.StaffRate
}

func (r *stubRateRepo) Create(_ context.Context, rate staff.StaffRate) (staff.StaffRate, error) {
	r.rates = append(r.rates, rate)
	return rate, nil
}

func (r *stubRateRepo) ListByStaff(_ context.Context, staffID string) ([]staff.StaffRate, error) {
	var out []staff.StaffRate
	for _, rate := range r.rates {
		if rate.StaffID == staffID {
			out = append(out, rate)
		}
	}
	return out, nil
}

func (r *stubRateRepo) ListForStaffSet(_ context.Context, staffIDs []string) ([]staff.StaffRate, error) {
	wanted := make(map[string]bool, len(staffIDs))
	for _, id := range staffIDs {
		wanted[id] = true
	}
	var out []staff.StaffRate
	for _, rate := range r.rates {
		if wanted[rate.StaffID] {
			out = append(out, rate)
		}
	}
	return out, nil
}

func (r *stubRateRepo) CloseCurrent(_ context.Context, _ string, _ staff.RateType, _ time.Time) error {
	return nil
}
func (r *stubRateRepo) Delete(_ context.Context, _ string) error { return nil }

type stubInstructionRepo struct {
	instructions []staff.PaymentInstruction
}

func (r *stubInstructionRepo) Create(_ context.Context, ins staff.PaymentInstruction) (staff.PaymentInstruction, error) {
	r.instructions = append(r.instructions, ins)
	return ins, nil
}

func (r *stubInstructionRepo) GetByID(_ context.Context, id string) (staff.PaymentInstruction, error) {
	for _, ins := range r.instructions {
		if ins.ID == id {
			return ins, nil
		}
	}
	return staff.PaymentInstruction{}, staff.ErrInstructionNotFound
}

func (r *stubInstructionRepo) ListByStaff(_ context.Context, staffID string, activeOnly bool) ([]staff.PaymentInstruction, error) {
	var out []staff.PaymentInstruction
	for _, ins := range r.instructions {
		if ins.StaffID != staffID {
			continue
		}
		if activeOnly && !ins.Active {
			continue
		}
		out = append(out, ins)
	}
	return out, nil
}

func (r *stubInstructionRepo) ListCurrentForStaffSet(_ context.Context, staffIDs []string) ([]staff.PaymentInstruction, error) {
	wanted := make(map[string]bool, len(staffIDs))
	for _, id := range staffIDs {
		wanted[id] = true
	}
	var out []staff.PaymentInstruction
	for _, ins := range r.instructions {
		if wanted[ins.StaffID] && ins.Active && ins.IsCurrent {
			out = append(out, ins)
		}
	}
	return out, nil
}

func (r *stubInstructionRepo) Update(_ context.Context, _ staff.UpdateInstructionRequest) error {
	return nil
}
func (r *stubInstructionRepo) Delete(_ context.Context, _ string) error { return nil }

type stubHolidayRepo struct {
	holidays []holiday.PublicHoliday
}

func (r *stubHolidayRepo) Create(_ context.Context, h holiday.PublicHoliday) (holiday.PublicHoliday, error) {
	r.holidays = append(r.holidays, h)
	return h, nil
}

func (r *stubHolidayRepo) GetByID(_ context.Context, id string) (holiday.PublicHoliday, error) {
	for _, h := range r.holidays {
		if h.ID == id {
			return h, nil
		}
	}
	return holiday.PublicHoliday{}, holiday.ErrHolidayNotFound
}

func (r *stubHolidayRepo) ListForYear(_ context.Context, year int) ([]holiday.PublicHoliday, error) {
	var out []holiday.PublicHoliday
	for _, h := range r.holidays {
		if h.Year == year && h.IsActive {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *stubHolidayRepo) ListForRange(_ context.Context, start, end time.Time) ([]holiday.PublicHoliday, error) {
	var out []holiday.PublicHoliday
	for _, h := range r.holidays {
		if h.IsActive && !h.HolidayDate.Before(start) && !h.HolidayDate.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *stubHolidayRepo) Update(_ context.Context, _ holiday.UpdateHolidayRequest) error { return nil }
func (r *stubHolidayRepo) Deactivate(_ context.Context, _ string) error                   { return nil }
func (r *stubHolidayRepo) AvailableYears(_ context.Context) ([]int, error)                { return nil, nil }

type stubShiftRepo struct {
	shifts []shift.Shift
}

func (r *stubShiftRepo) Create(_ context.Context, s shift.Shift) (shift.Shift, error) {
	r.shifts = append(r.shifts, s)
	return s, nil
}

func (r *stubShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	for _, s := range r.shifts {
		if s.ID == id {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (r *stubShiftRepo) ListForRange(_ context.Context, start, end time.Time) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range r.shifts {
		if !s.StartTime.Before(start) && !s.StartTime.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubShiftRepo) ListForStaffRange(_ context.Context, staffID string, start, end time.Time) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range r.shifts {
		if s.StaffID == nil || *s.StaffID != staffID {
			continue
		}
		if !s.StartTime.Before(start) && !s.StartTime.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubShiftRepo) Update(_ context.Context, _ shift.UpdateShiftRequest) error { return nil }
func (r *stubShiftRepo) Delete(_ context.Context, _ string) error                   { return nil }

type stubPaymentRepo struct {
	payments map[string]wage.WagePayment // keyed by staffID + weekStart
	byID     map[string]wage.WagePayment
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{
		payments: make(map[string]wage.WagePayment),
		byID:     make(map[string]wage.WagePayment),
	}
}

func paymentKey(staffID string, weekStart time.Time) string {
	return staffID + "@" + weekStart.Format("2006-01-02")
}

func (r *stubPaymentRepo) Create(_ context.Context, p wage.WagePayment) (wage.WagePayment, error) {
	key := paymentKey(p.StaffID, p.WeekStart)
	if _, exists := r.payments[key]; exists {
		return wage.WagePayment{}, wage.ErrWeekAlreadyPaid
	}
	p.ID = fmt.Sprintf("pay-%d", len(r.byID)+1)
	p.PaidAt = time.Now()
	p.CreatedAt = p.PaidAt
	r.payments[key] = p
	r.byID[p.ID] = p
	return p, nil
}

func (r *stubPaymentRepo) GetByID(_ context.Context, id string) (wage.WagePayment, error) {
	p, ok := r.byID[id]
	if !ok {
		return wage.WagePayment{}, wage.ErrPaymentNotFound
	}
	return p, nil
}

func (r *stubPaymentRepo) Exists(_ context.Context, staffID string, weekStart time.Time) (bool, error) {
	_, ok := r.payments[paymentKey(staffID, weekStart)]
	return ok, nil
}

func (r *stubPaymentRepo) ListForRange(_ context.Context, start, end time.Time) ([]wage.WagePayment, error) {
	var out []wage.WagePayment
	for _, p := range r.byID {
		if !p.WeekEnd.Before(start) && !p.WeekStart.After(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) PaidStaffIDs(_ context.Context, weekStart, _ time.Time) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, p := range r.byID {
		if p.WeekStart.Equal(weekStart) {
			out[p.StaffID] = true
		}
	}
	return out, nil
}

// ===== FIXTURES =====

type paymentFixture struct {
	service     wage.PaymentService
	staffRepo   *stubStaffRepo
	rateRepo    *stubRateRepo
	insRepo     *stubInstructionRepo
	holidayRepo *stubHolidayRepo
	shiftRepo   *stubShiftRepo
	paymentRepo *stubPaymentRepo
	engine      *Engine
}

func newPaymentFixture() *paymentFixture {
	f := &paymentFixture{
		staffRepo:   &stubStaffRepo{members: make(map[string]staff.Staff)},
		rateRepo:    &stubRateRepo{},
		insRepo:     &stubInstructionRepo{},
		holidayRepo: &stubHolidayRepo{},
		shiftRepo:   &stubShiftRepo{},
		paymentRepo: newStubPaymentRepo(),
		engine:      NewEngine(time.UTC),
	}
	f.service = NewPaymentService(
		f.engine, f.staffRepo, f.rateRepo, f.insRepo,
		f.holidayRepo, f.shiftRepo, f.paymentRepo,
	)
	return f
}

// seedCapWeek loads the fixture with one staff member, a capped instruction
// and two 6h shifts in the week of 2025-06-09. The expected week total is 260.
func (f *paymentFixture) seedCapWeek() {
	f.staffRepo.members["s1"] = testStaff("s1", "Alice", "20")
	f.insRepo.instructions = append(f.insRepo.instructions,
		testInstruction("s1", "loading", "2", decPtr("10"), nil, 1),
	)
	f.shiftRepo.shifts = append(f.shiftRepo.shifts,
		testShift("sh1", "s1", "2025-06-09T09:00:00Z", "2025-06-09T15:00:00Z", "0"),
		testShift("sh2", "s1", "2025-06-10T09:00:00Z", "2025-06-10T15:00:00Z", "0"),
	)
}

// ===== MARK AS PAID =====

func TestPaymentService_MarkAsPaid_SealsSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPaymentFixture()
	f.seedCapWeek()

	paid, err := f.service.MarkAsPaid(ctx, wage.MarkPaidRequest{
		StaffID: "s1", WeekStart: "2025-06-09", CreatedBy: "owner@example.com",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, paid.ID)
	assert.Equal(t, "Alice", paid.StaffName)
	assert.Equal(t, "2025-06-09", paid.WeekStart)
	assert.Equal(t, "2025-06-15", paid.WeekEnd)
	assert.True(t, dec("12").Equal(paid.TotalHours))
	assert.True(t, dec("260").Equal(paid.TotalWages))

	require.NotNil(t, paid.PaymentData)
	assert.Len(t, paid.PaymentData.Shifts, 2)
	assert.Len(t, paid.PaymentData.Instructions, 1)
	assert.Equal(t, "Alice", paid.PaymentData.Staff.Name)
}

func TestPaymentService_MarkAsPaid_SnapshotSurvivesRateEdits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPaymentFixture()
	f.seedCapWeek()

	paid, err := f.service.MarkAsPaid(ctx, wage.MarkPaidRequest{
		StaffID: "s1", WeekStart: "2025-06-09", CreatedBy: "owner@example.com",
	})
	require.NoError(t, err)
	require.True(t, dec("260").Equal(paid.TotalWages))

	// A pay rise lands after the week was sealed.
	f.rateRepo.rates = append(f.rateRepo.rates,
		testRate("s1", staff.RateTypeDefault, "30", "2025-01-01"),
	)

	// A live recompute now pays the same shifts differently.
	rates, err := f.rateRepo.ListByStaff(ctx, "s1")
	require.NoError(t, err)
	live := f.engine.ComputeWeek(WeekInput{
		WeekStart:    day("2025-06-09"),
		Staff:        []staff.Staff{f.staffRepo.members["s1"]},
		Rates:        rates,
		Instructions: f.insRepo.instructions,
		Shifts:       f.shiftRepo.shifts,
	})
	assert.False(t, live.TotalAmount.Equal(dec("260")), "the live computation moved")

	// The stored snapshot did not.
	stored, err := f.service.GetPaid(ctx, paid.ID)
	require.NoError(t, err)
	assert.True(t, dec("260").Equal(stored.TotalWages))
	assert.True(t, dec("12").Equal(stored.TotalHours))
}

func TestPaymentService_MarkAsPaid_WeekAlreadyPaid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPaymentFixture()
	f.seedCapWeek()

	req := wage.MarkPaidRequest{StaffID: "s1", WeekStart: "2025-06-09", CreatedBy: "owner@example.com"}

	_, err := f.service.MarkAsPaid(ctx, req)
	require.NoError(t, err)

	_, err = f.service.MarkAsPaid(ctx, req)
	assert.ErrorIs(t, err, wage.ErrWeekAlreadyPaid)
}

func TestPaymentService_MarkAsPaid_NothingToPay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPaymentFixture()
	f.staffRepo.members["s1"] = testStaff("s1", "Alice", "20")

	_, err := f.service.MarkAsPaid(ctx, wage.MarkPaidRequest{
		StaffID: "s1", WeekStart: "2025-06-09", CreatedBy: "owner@example.com",
	})
	assert.ErrorIs(t, err, wage.ErrNothingToPay)
}

func TestPaymentService_MarkAsPaid_RejectsMidWeekStart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPaymentFixture()
	f.seedCapWeek()

	// 2025-06-11 is a Wednesday.
	_, err := f.service.MarkAsPaid(ctx, wage.MarkPaidRequest{
		StaffID: "s1", WeekStart: "2025-06-11", CreatedBy: "owner@example.com",
	})
	assert.ErrorIs(t, err, wage.ErrInvalidWeek)
}

func TestPaymentService_MarkAsPaid_UnknownStaff(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPaymentFixture()

	_, err := f.service.MarkAsPaid(ctx, wage.MarkPaidRequest{
		StaffID: "ghost", WeekStart: "2025-06-09", CreatedBy: "owner@example.com",
	})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestPaymentService_MarkAsPaid_ValidatesRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPaymentFixture()

	_, err := f.service.MarkAsPaid(ctx, wage.MarkPaidRequest{
		StaffID: "s1", WeekStart: "2025-06-09",
	})
	assert.Error(t, err, "created_by is required")
}

func TestPaymentService_MarkAsPaid_AppliesHolidayMarkup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPaymentFixture()

	member := testStaff("s1", "Alice", "20")
	member.AppliesPublicHolidayRules = true
	f.staffRepo.members["s1"] = member
	f.holidayRepo.holidays = append(f.holidayRepo.holidays, holiday.PublicHoliday{
		ID: "h1", Name: "King's Birthday", HolidayDate: day("2025-06-09"),
		Year: 2025, MarkupPercentage: dec("150"), IsActive: true,
	})
	f.shiftRepo.shifts = append(f.shiftRepo.shifts,
		testShift("sh1", "s1", "2025-06-09T09:00:00Z", "2025-06-09T13:00:00Z", "0"),
	)

	paid, err := f.service.MarkAsPaid(ctx, wage.MarkPaidRequest{
		StaffID: "s1", WeekStart: "2025-06-09", CreatedBy: "owner@example.com",
	})

	require.NoError(t, err)
	assert.True(t, dec("120").Equal(paid.TotalWages), "4h at the marked-up 30")
	require.NotNil(t, paid.PaymentData)
	require.Len(t, paid.PaymentData.Shifts, 1)
	assert.True(t, paid.PaymentData.Shifts[0].HolidayApplied)
	assert.Len(t, paid.PaymentData.Holidays, 1, "the holiday in force is sealed with the snapshot")
}

// ===== LIST / GET =====

func TestPaymentService_ListPaid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPaymentFixture()
	f.seedCapWeek()

	_, err := f.service.MarkAsPaid(ctx, wage.MarkPaidRequest{
		StaffID: "s1", WeekStart: "2025-06-09", CreatedBy: "owner@example.com",
	})
	require.NoError(t, err)

	listed, err := f.service.ListPaid(ctx, wage.RangeRequest{Start: "2025-06-01", End: "2025-06-30"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, dec("260").Equal(listed[0].TotalWages))
	assert.Nil(t, listed[0].PaymentData, "the list view omits the full payload")

	outside, err := f.service.ListPaid(ctx, wage.RangeRequest{Start: "2025-07-01", End: "2025-07-31"})
	require.NoError(t, err)
	assert.Empty(t, outside)
}

func TestPaymentService_GetPaid_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPaymentFixture()

	_, err := f.service.GetPaid(ctx, "missing")
	assert.ErrorIs(t, err, wage.ErrPaymentNotFound)
}
