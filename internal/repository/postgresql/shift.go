package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/shift"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, staff_id, start_time, end_time, non_billable_hours, notes, section_id, created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.StaffID, &s.StartTime, &s.EndTime,
		&s.NonBillableHours, &s.Notes, &s.SectionID, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, staff_id, start_time, end_time, non_billable_hours, notes, section_id)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
		RETURNING ` + shiftColumns

	created, err := scanShift(q.QueryRow(ctx, query,
		s.StaffID, s.StartTime, s.EndTime, s.NonBillableHours, s.Notes, s.SectionID,
	))
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	found, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift %s: %w", id, err)
	}
	return found, nil
}

// ListForRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListForRange(ctx context.Context, start, end time.Time) ([]shift.Shift, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE start_time >= $1 AND start_time <= $2
		ORDER BY start_time ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts in range: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// ListForStaffRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListForStaffRange(ctx context.Context, staffID string, start, end time.Time) ([]shift.Shift, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE staff_id = $1 AND start_time >= $2 AND start_time <= $3
		ORDER BY start_time ASC
	`

	rows, err := q.Query(ctx, query, staffID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts for staff %s: %w", staffID, err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// Update implements shift.ShiftRepository. An empty staff_id unassigns the
// shift; it stays on the roster but drops out of payroll.
func (r *shiftRepositoryImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.StaffID != nil {
		if *req.StaffID == "" {
			updates["staff_id"] = nil
		} else {
			updates["staff_id"] = *req.StaffID
		}
	}
	if req.StartTime != nil {
		start, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			return fmt.Errorf("invalid start_time: %w", err)
		}
		updates["start_time"] = start
	}
	if req.EndTime != nil {
		end, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			return fmt.Errorf("invalid end_time: %w", err)
		}
		updates["end_time"] = end
	}
	if req.NonBillableHours != nil {
		updates["non_billable_hours"] = *req.NonBillableHours
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.SectionID != nil {
		updates["section_id"] = *req.SectionID
	}
	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for shift update")
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

	sql := "UPDATE shifts SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", i)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update shift %s: %w", req.ID, err)
	}
	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM shifts WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift %s: %w", id, err)
	}
	return nil
}

func collectShifts(rows pgx.Rows) ([]shift.Shift, error) {
	var result []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
