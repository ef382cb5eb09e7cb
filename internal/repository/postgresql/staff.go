package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/staff"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

const staffColumns = `id, name, email, pay_rate, default_rate, applies_public_holiday_rules, is_active, created_at, updated_at`

func scanStaff(row pgx.Row) (staff.Staff, error) {
	var s staff.Staff
	err := row.Scan(
		&s.ID, &s.Name, &s.Email, &s.PayRate, &s.DefaultRate,
		&s.AppliesPublicHolidayRules, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements staff.StaffRepository.
func (r *staffRepositoryImpl) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff (id, name, email, pay_rate, default_rate, applies_public_holiday_rules, is_active)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
		RETURNING ` + staffColumns

	created, err := scanStaff(q.QueryRow(ctx, query,
		s.Name, s.Email, s.PayRate, s.DefaultRate, s.AppliesPublicHolidayRules, s.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return staff.Staff{}, staff.ErrStaffNameExists
		}
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}
	return created, nil
}

// GetByID implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

	found, err := scanStaff(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff %s: %w", id, err)
	}
	return found, nil
}

// List implements staff.StaffRepository.
func (r *staffRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]staff.Staff, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var result []staff.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Update implements staff.StaffRepository.
func (r *staffRepositoryImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.PayRate != nil {
		updates["pay_rate"] = *req.PayRate
	}
	if req.DefaultRate != nil {
		updates["default_rate"] = *req.DefaultRate
	}
	if req.AppliesPublicHolidayRules != nil {
		updates["applies_public_holiday_rules"] = *req.AppliesPublicHolidayRules
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for staff update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE staff SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d RETURNING id", i)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return staff.ErrStaffNotFound
		}
		if isUniqueViolation(err) {
			return staff.ErrStaffNameExists
		}
		return fmt.Errorf("failed to update staff %s: %w", req.ID, err)
	}
	return nil
}

// Delete implements staff.StaffRepository. Staff are deactivated, not removed:
// historical shifts and payment snapshots keep referencing them.
func (r *staffRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	var deactivatedID string
	err := q.QueryRow(ctx,
		`UPDATE staff SET is_active = FALSE, updated_at = NOW() WHERE id = $1 RETURNING id`, id,
	).Scan(&deactivatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.ErrStaffNotFound
		}
		return fmt.Errorf("failed to deactivate staff %s: %w", id, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
