package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/staff"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type paymentInstructionRepositoryImpl struct {
	db *database.DB
}

func NewPaymentInstructionRepository(db *database.DB) staff.PaymentInstructionRepository {
	return &paymentInstructionRepositoryImpl{db: db}
}

const instructionColumns = `id, staff_id, label, adjustment_per_hour, weekly_hours_cap, payment_method, priority, active, effective_date, end_date, is_current, created_at`

func scanInstruction(row pgx.Row) (staff.PaymentInstruction, error) {
	var i staff.PaymentInstruction
	err := row.Scan(
		&i.ID, &i.StaffID, &i.Label, &i.AdjustmentPerHour, &i.WeeklyHoursCap,
		&i.PaymentMethod, &i.Priority, &i.Active,
		&i.EffectiveDate, &i.EndDate, &i.IsCurrent, &i.CreatedAt,
	)
	return i, err
}

// Create implements staff.PaymentInstructionRepository.
func (r *paymentInstructionRepositoryImpl) Create(ctx context.Context, ins staff.PaymentInstruction) (staff.PaymentInstruction, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff_payment_instructions
			(id, staff_id, label, adjustment_per_hour, weekly_hours_cap, payment_method, priority, active, effective_date, end_date, is_current)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + instructionColumns

	created, err := scanInstruction(q.QueryRow(ctx, query,
		ins.StaffID, ins.Label, ins.AdjustmentPerHour, ins.WeeklyHoursCap, ins.PaymentMethod,
		ins.Priority, ins.Active, ins.EffectiveDate, ins.EndDate, ins.IsCurrent,
	))
	if err != nil {
		return staff.PaymentInstruction{}, fmt.Errorf("failed to create payment instruction: %w", err)
	}
	return created, nil
}

// GetByID implements staff.PaymentInstructionRepository.
func (r *paymentInstructionRepositoryImpl) GetByID(ctx context.Context, id string) (staff.PaymentInstruction, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + instructionColumns + ` FROM staff_payment_instructions WHERE id = $1`

	found, err := scanInstruction(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.PaymentInstruction{}, staff.ErrInstructionNotFound
		}
		return staff.PaymentInstruction{}, fmt.Errorf("failed to get payment instruction %s: %w", id, err)
	}
	return found, nil
}

// ListByStaff implements staff.PaymentInstructionRepository.
func (r *paymentInstructionRepositoryImpl) ListByStaff(ctx context.Context, staffID string, activeOnly bool) ([]staff.PaymentInstruction, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + instructionColumns + `
		FROM staff_payment_instructions
		WHERE staff_id = $1
	`
	if activeOnly {
		query += ` AND active = TRUE`
	}
	query += ` ORDER BY priority ASC, created_at DESC`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment instructions for staff %s: %w", staffID, err)
	}
	defer rows.Close()

	return collectInstructions(rows)
}

// ListCurrentForStaffSet implements staff.PaymentInstructionRepository.
func (r *paymentInstructionRepositoryImpl) ListCurrentForStaffSet(ctx context.Context, staffIDs []string) ([]staff.PaymentInstruction, error) {
	if len(staffIDs) == 0 {
		return nil, nil
	}
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + instructionColumns + `
		FROM staff_payment_instructions
		WHERE staff_id = ANY($1) AND active = TRUE AND is_current = TRUE
		ORDER BY staff_id ASC, priority ASC
	`

	rows, err := q.Query(ctx, query, staffIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list current payment instructions: %w", err)
	}
	defer rows.Close()

	return collectInstructions(rows)
}

// Update implements staff.PaymentInstructionRepository.
func (r *paymentInstructionRepositoryImpl) Update(ctx context.Context, req staff.UpdateInstructionRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.Label != nil {
		updates["label"] = *req.Label
	}
	if req.AdjustmentPerHour != nil {
		updates["adjustment_per_hour"] = *req.AdjustmentPerHour
	}
	if req.WeeklyHoursCap != nil {
		updates["weekly_hours_cap"] = *req.WeeklyHoursCap
	}
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for payment instruction update")
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

	sql := "UPDATE staff_payment_instructions SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", i)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return staff.ErrInstructionNotFound
		}
		return fmt.Errorf("failed to update payment instruction %s: %w", req.ID, err)
	}
	return nil
}

// Delete implements staff.PaymentInstructionRepository.
func (r *paymentInstructionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM staff_payment_instructions WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.ErrInstructionNotFound
		}
		return fmt.Errorf("failed to delete payment instruction %s: %w", id, err)
	}
	return nil
}

func collectInstructions(rows pgx.Rows) ([]staff.PaymentInstruction, error) {
	var result []staff.PaymentInstruction
	for rows.Next() {
		ins, err := scanInstruction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment instruction row: %w", err)
		}
		result = append(result, ins)
	}
	return result, rows.Err()
}
