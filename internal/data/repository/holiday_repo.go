package repository

import (
	"context"
	"fmt"
	"time"

	"campsite-booking/internal/data/entity"
	"campsite-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HolidayRepository interface {
	FindBetween(ctx context.Context, from, to time.Time) ([]entity.Holiday, error)
	Create(ctx context.Context, holiday *entity.Holiday) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type holidayRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHolidayRepository(db database.PgxIface, log *zap.Logger) HolidayRepository {
	return &holidayRepository{
		db:  db,
		log: log.With(zap.String("repository", "holiday")),
	}
}

func (r *holidayRepository) FindBetween(ctx context.Context, from, to time.Time) ([]entity.Holiday, error) {
	query := `
		SELECT id, name, holiday_date
		FROM holidays
		WHERE holiday_date >= $1 AND holiday_date < $2
		ORDER BY holiday_date
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to find holidays", zap.Error(err))
		return nil, fmt.Errorf("find holidays between %s and %s: %w",
			from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var holidays []entity.Holiday
	for rows.Next() {
		var h entity.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date); err != nil {
			r.log.Error("Failed to scan holiday row", zap.Error(err))
			return nil, fmt.Errorf("scan holiday row: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, nil
}

func (r *holidayRepository) Create(ctx context.Context, holiday *entity.Holiday) error {
	query := `INSERT INTO holidays (id, name, holiday_date) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, holiday.ID, holiday.Name, holiday.Date)
	if err != nil {
		r.log.Error("Failed to create holiday",
			zap.Error(err),
			zap.String("name", holiday.Name),
		)
		return fmt.Errorf("create holiday %s: %w", holiday.Name, err)
	}

	return nil
}

func (r *holidayRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM holidays WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete holiday",
			zap.Error(err),
			zap.String("holiday_id", id.String()),
		)
		return fmt.Errorf("delete holiday %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("holiday %s not found", id.String())
	}

	return nil
}
