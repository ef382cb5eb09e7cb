package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/staff"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type staffRateRepositoryImpl struct {
	db *database.DB
}

func NewStaffRateRepository(db *database.DB) staff.StaffRateRepository {
	return &staffRateRepositoryImpl{db: db}
}

const staffRateColumns = `id, staff_id, rate_type, rate, effective_date, end_date, is_current, created_at`

func scanStaffRate(row pgx.Row) (staff.StaffRate, error) {
	var r staff.StaffRate
	err := row.Scan(
		&r.ID, &r.StaffID, &r.RateType, &r.Rate,
		&r.EffectiveDate, &r.EndDate, &r.IsCurrent, &r.CreatedAt,
	)
	return r, err
}

// Create implements staff.StaffRateRepository.
func (r *staffRateRepositoryImpl) Create(ctx context.Context, rate staff.StaffRate) (staff.StaffRate, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff_rates (id, staff_id, rate_type, rate, effective_date, end_date, is_current)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
		RETURNING ` + staffRateColumns

	created, err := scanStaffRate(q.QueryRow(ctx, query,
		rate.StaffID, rate.RateType, rate.Rate, rate.EffectiveDate, rate.EndDate, rate.IsCurrent,
	))
	if err != nil {
		return staff.StaffRate{}, fmt.Errorf("failed to create staff rate: %w", err)
	}
	return created, nil
}

// ListByStaff implements staff.StaffRateRepository.
func (r *staffRateRepositoryImpl) ListByStaff(ctx context.Context, staffID string) ([]staff.StaffRate, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffRateColumns + `
		FROM staff_rates
		WHERE staff_id = $1
		ORDER BY rate_type ASC, effective_date DESC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates for staff %s: %w", staffID, err)
	}
	defer rows.Close()

	return collectStaffRates(rows)
}

// ListForStaffSet implements staff.StaffRateRepository.
func (r *staffRateRepositoryImpl) ListForStaffSet(ctx context.Context, staffIDs []string) ([]staff.StaffRate, error) {
	if len(staffIDs) == 0 {
		return nil, nil
	}
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffRateColumns + `
		FROM staff_rates
		WHERE staff_id = ANY($1)
		ORDER BY staff_id ASC, rate_type ASC, effective_date DESC
	`

	rows, err := q.Query(ctx, query, staffIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates for staff set: %w", err)
	}
	defer rows.Close()

	return collectStaffRates(rows)
}

// CloseCurrent implements staff.StaffRateRepository. Matching zero rows is not
// an error: the first rate in a bucket has no predecessor to close.
func (r *staffRateRepositoryImpl) CloseCurrent(ctx context.Context, staffID string, rateType staff.RateType, newEffective time.Time) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE staff_rates
		SET is_current = FALSE, end_date = $3::date - INTERVAL '1 day'
		WHERE staff_id = $1 AND rate_type = $2 AND is_current = TRUE
	`

	if _, err := q.Exec(ctx, query, staffID, rateType, newEffective); err != nil {
		return fmt.Errorf("failed to close current rate for staff %s: %w", staffID, err)
	}
	return nil
}

// Delete implements staff.StaffRateRepository.
func (r *staffRateRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM staff_rates WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.ErrRateNotFound
		}
		return fmt.Errorf("failed to delete staff rate %s: %w", id, err)
	}
	return nil
}

func collectStaffRates(rows pgx.Rows) ([]staff.StaffRate, error) {
	var result []staff.StaffRate
	for rows.Next() {
		rate, err := scanStaffRate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff rate row: %w", err)
		}
		result = append(result, rate)
	}
	return result, rows.Err()
}
