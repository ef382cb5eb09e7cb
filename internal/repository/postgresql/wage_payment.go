package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/wage"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type wagePaymentRepositoryImpl struct {
	db *database.DB
}

func NewWagePaymentRepository(db *database.DB) wage.WagePaymentRepository {
	return &wagePaymentRepositoryImpl{db: db}
}

// Create implements wage.WagePaymentRepository. The unique constraint on
// (staff_id, week_start, week_end) makes the insert at-most-once per staff
// week; a violation surfaces as ErrWeekAlreadyPaid. The full computation
// payload is stored as JSONB next to the summary columns.
func (r *wagePaymentRepositoryImpl) Create(ctx context.Context, p wage.WagePayment) (wage.WagePayment, error) {
	q := database.GetQuerier(ctx, r.db)

	payload, err := json.Marshal(p.PaymentData)
	if err != nil {
		return wage.WagePayment{}, fmt.Errorf("failed to encode payment data: %w", err)
	}

	query := `
		INSERT INTO wage_payments
			(id, staff_id, week_start, week_end, total_hours, total_wages,
			 booking_hours, booking_wages, cash_hours, cash_wages,
			 payment_data, created_by, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING id, paid_at, created_at
	`

	created := p
	created.ID = uuid.New().String()
	err = q.QueryRow(ctx, query,
		created.ID, p.StaffID, p.WeekStart, p.WeekEnd, p.TotalHours, p.TotalWages,
		p.BookingHours, p.BookingWages, p.CashHours, p.CashWages,
		payload, p.CreatedBy,
	).Scan(&created.ID, &created.PaidAt, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return wage.WagePayment{}, wage.ErrWeekAlreadyPaid
		}
		return wage.WagePayment{}, fmt.Errorf("failed to create wage payment: %w", err)
	}
	return created, nil
}

// GetByID implements wage.WagePaymentRepository.
func (r *wagePaymentRepositoryImpl) GetByID(ctx context.Context, id string) (wage.WagePayment, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT wp.id, wp.staff_id, wp.week_start, wp.week_end,
		       wp.total_hours, wp.total_wages,
		       wp.booking_hours, wp.booking_wages, wp.cash_hours, wp.cash_wages,
		       wp.payment_data, wp.created_by, wp.paid_at, wp.created_at,
		       s.name, s.email
		FROM wage_payments wp
		JOIN staff s ON s.id = wp.staff_id
		WHERE wp.id = $1
	`

	found, err := scanWagePayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return wage.WagePayment{}, wage.ErrPaymentNotFound
		}
		return wage.WagePayment{}, fmt.Errorf("failed to get wage payment %s: %w", id, err)
	}
	return found, nil
}

// Exists implements wage.WagePaymentRepository.
func (r *wagePaymentRepositoryImpl) Exists(ctx context.Context, staffID string, weekStart time.Time) (bool, error) {
	q := database.GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM wage_payments WHERE staff_id = $1 AND week_start = $2)`,
		staffID, weekStart,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check wage payment existence: %w", err)
	}
	return exists, nil
}

// ListForRange implements wage.WagePaymentRepository.
func (r *wagePaymentRepositoryImpl) ListForRange(ctx context.Context, start, end time.Time) ([]wage.WagePayment, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT wp.id, wp.staff_id, wp.week_start, wp.week_end,
		       wp.total_hours, wp.total_wages,
		       wp.booking_hours, wp.booking_wages, wp.cash_hours, wp.cash_wages,
		       wp.payment_data, wp.created_by, wp.paid_at, wp.created_at,
		       s.name, s.email
		FROM wage_payments wp
		JOIN staff s ON s.id = wp.staff_id
		WHERE wp.week_end >= $1 AND wp.week_start <= $2
		ORDER BY wp.paid_at DESC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list wage payments: %w", err)
	}
	defer rows.Close()

	var result []wage.WagePayment
	for rows.Next() {
		p, err := scanWagePayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wage payment row: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// PaidStaffIDs implements wage.WagePaymentRepository.
func (r *wagePaymentRepositoryImpl) PaidStaffIDs(ctx context.Context, weekStart, weekEnd time.Time) (map[string]bool, error) {
	q := database.GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT staff_id FROM wage_payments WHERE week_start = $1 AND week_end = $2`,
		weekStart, weekEnd,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list paid staff: %w", err)
	}
	defer rows.Close()

	paid := make(map[string]bool)
	for rows.Next() {
		var staffID string
		if err := rows.Scan(&staffID); err != nil {
			return nil, fmt.Errorf("failed to scan paid staff id: %w", err)
		}
		paid[staffID] = true
	}
	return paid, rows.Err()
}

func scanWagePayment(row pgx.Row) (wage.WagePayment, error) {
	var p wage.WagePayment
	var payload []byte
	err := row.Scan(
		&p.ID, &p.StaffID, &p.WeekStart, &p.WeekEnd,
		&p.TotalHours, &p.TotalWages,
		&p.BookingHours, &p.BookingWages, &p.CashHours, &p.CashWages,
		&payload, &p.CreatedBy, &p.PaidAt, &p.CreatedAt,
		&p.StaffName, &p.StaffEmail,
	)
	if err != nil {
		return wage.WagePayment{}, err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &p.PaymentData); err != nil {
			return wage.WagePayment{}, fmt.Errorf("failed to decode payment data: %w", err)
		}
	}
	return p, nil
}
