package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/holiday"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

const holidayColumns = `id, name, holiday_date, year, markup_percentage, markup_amount, is_active, created_by, created_at, updated_at`

func scanHoliday(row pgx.Row) (holiday.PublicHoliday, error) {
	var h holiday.PublicHoliday
	err := row.Scan(
		&h.ID, &h.Name, &h.HolidayDate, &h.Year, &h.MarkupPercentage, &h.MarkupAmount,
		&h.IsActive, &h.CreatedBy, &h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

// Create implements holiday.HolidayRepository. A partial unique index on
// (holiday_date) where is_active guards against two active rows for one date.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.PublicHoliday) (holiday.PublicHoliday, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO public_holidays (id, name, holiday_date, year, markup_percentage, markup_amount, is_active, created_by)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + holidayColumns

	created, err := scanHoliday(q.QueryRow(ctx, query,
		h.Name, h.HolidayDate, h.Year, h.MarkupPercentage, h.MarkupAmount, h.IsActive, h.CreatedBy,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return holiday.PublicHoliday{}, holiday.ErrHolidayDateExists
		}
		return holiday.PublicHoliday{}, fmt.Errorf("failed to create public holiday: %w", err)
	}
	return created, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.PublicHoliday, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayColumns + ` FROM public_holidays WHERE id = $1`

	found, err := scanHoliday(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.PublicHoliday{}, holiday.ErrHolidayNotFound
		}
		return holiday.PublicHoliday{}, fmt.Errorf("failed to get public holiday %s: %w", id, err)
	}
	return found, nil
}

// ListForYear implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListForYear(ctx context.Context, year int) ([]holiday.PublicHoliday, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM public_holidays
		WHERE year = $1 AND is_active = TRUE
		ORDER BY holiday_date ASC
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays for %d: %w", year, err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

// ListForRange implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListForRange(ctx context.Context, start, end time.Time) ([]holiday.PublicHoliday, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM public_holidays
		WHERE holiday_date >= $1 AND holiday_date <= $2 AND is_active = TRUE
		ORDER BY holiday_date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays in range: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.HolidayDate != nil {
		date, err := time.Parse("2006-01-02", *req.HolidayDate)
		if err != nil {
			return fmt.Errorf("invalid holiday_date: %w", err)
		}
		updates["holiday_date"] = date
		updates["year"] = date.Year()
	}
	if req.MarkupPercentage != nil {
		updates["markup_percentage"] = *req.MarkupPercentage
	}
	if req.MarkupAmount != nil {
		updates["markup_amount"] = *req.MarkupAmount
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for public holiday update")
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

	sql := "UPDATE public_holidays SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", i)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return holiday.ErrHolidayNotFound
		}
		if isUniqueViolation(err) {
			return holiday.ErrHolidayDateExists
		}
		return fmt.Errorf("failed to update public holiday %s: %w", req.ID, err)
	}
	return nil
}

// Deactivate implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	var deactivatedID string
	err := q.QueryRow(ctx,
		`UPDATE public_holidays SET is_active = FALSE, updated_at = NOW() WHERE id = $1 RETURNING id`, id,
	).Scan(&deactivatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to deactivate public holiday %s: %w", id, err)
	}
	return nil
}

// AvailableYears implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) AvailableYears(ctx context.Context) ([]int, error) {
	q := database.GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT DISTINCT year FROM public_holidays WHERE is_active = TRUE ORDER BY year DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("failed to scan holiday year: %w", err)
		}
		years = append(years, year)
	}
	return years, rows.Err()
}

func collectHolidays(rows pgx.Rows) ([]holiday.PublicHoliday, error) {
	var result []holiday.PublicHoliday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan public holiday row: %w", err)
		}
		result = append(result, h)
	}
	return result, rows.Err()
}
