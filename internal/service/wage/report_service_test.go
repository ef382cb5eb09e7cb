package wage

import (
	"context"
	"testing"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/staff"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/wage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	service     wage.ReportService
	staffRepo   *stubStaffRepo
	rateRepo    *stubRateRepo
	insRepo     *stubInstructionRepo
	holidayRepo *stubHolidayRepo
	shiftRepo   *stubShiftRepo
	paymentRepo *stubPaymentRepo
}

func newReportFixture(currency string) *reportFixture {
	f := &reportFixture{
		staffRepo:   &stubStaffRepo{members: make(map[string]staff.Staff)},
		rateRepo:    &stubRateRepo{},
		insRepo:     &stubInstructionRepo{},
		holidayRepo: &stubHolidayRepo{},
		shiftRepo:   &stubShiftRepo{},
		paymentRepo: newStubPaymentRepo(),
	}
	f.service = NewReportService(
		NewEngine(time.UTC), currency, f.staffRepo, f.rateRepo, f.insRepo,
		f.holidayRepo, f.shiftRepo, f.paymentRepo,
	)
	return f
}

func (f *reportFixture) seedCapWeek() {
	f.staffRepo.members["s1"] = testStaff("s1", "Alice", "20")
	f.insRepo.instructions = append(f.insRepo.instructions,
		testInstruction("s1", "loading", "2", decPtr("10"), nil, 1),
	)
	f.shiftRepo.shifts = append(f.shiftRepo.shifts,
		testShift("sh1", "s1", "2025-06-09T09:00:00Z", "2025-06-09T15:00:00Z", "0"),
		testShift("sh2", "s1", "2025-06-10T09:00:00Z", "2025-06-10T15:00:00Z", "0"),
	)
}

func TestReportService_FlatReport_CarriesConfiguredCurrency(t *testing.T) {
	t.Parallel()
	f := newReportFixture("AU$")
	f.seedCapWeek()
	ctx := context.Background()

	resp, err := f.service.FlatReport(ctx, wage.RangeRequest{Start: "2025-06-09", End: "2025-06-15"})

	require.NoError(t, err)
	assert.Equal(t, "AU$", resp.Currency)
	require.Len(t, resp.Rows, 2)
	assert.True(t, dec("260").Equal(resp.TotalAmount))
}

func TestReportService_WeeklyGrid_CarriesConfiguredCurrency(t *testing.T) {
	t.Parallel()
	f := newReportFixture("$")
	f.seedCapWeek()
	ctx := context.Background()

	resp, err := f.service.WeeklyGrid(ctx, wage.WeekRequest{Week: "2025-06-09"})

	require.NoError(t, err)
	assert.Equal(t, "$", resp.Currency)
	assert.Equal(t, "2025-06-09", resp.WeekStart)
}

func TestReportService_PaymentReport_CarriesConfiguredCurrency(t *testing.T) {
	t.Parallel()
	f := newReportFixture("$")
	f.seedCapWeek()
	ctx := context.Background()

	resp, err := f.service.PaymentReport(ctx, wage.WeekRequest{Week: "2025-06-09"})

	require.NoError(t, err)
	assert.Equal(t, "$", resp.Currency)
	require.Len(t, resp.Rows, 1)
	assert.True(t, dec("260").Equal(resp.TotalWages))
}
