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

type BlockedDateRepository interface {
	Create(ctx context.Context, blocked *entity.BlockedDate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindBySiteAndRange(ctx context.Context, siteID uuid.UUID, from, to time.Time) ([]entity.BlockedDate, error)
	ExistsInRange(ctx context.Context, siteID uuid.UUID, from, to time.Time) (bool, error)
}

type blockedDateRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlockedDateRepository(db database.PgxIface, log *zap.Logger) BlockedDateRepository {
	return &blockedDateRepository{
		db:  db,
		log: log.With(zap.String("repository", "blocked_date")),
	}
}

func (r *blockedDateRepository) Create(ctx context.Context, blocked *entity.BlockedDate) error {
	query := `
		INSERT INTO blocked_dates (id, site_id, blocked_date, memo, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (site_id, blocked_date) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		blocked.ID,
		blocked.SiteID,
		blocked.Date,
		blocked.Memo,
		blocked.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create blocked date",
			zap.Error(err),
			zap.String("site_id", blocked.SiteID.String()),
			zap.Time("date", blocked.Date),
		)
		return fmt.Errorf("create blocked date for site %s: %w", blocked.SiteID.String(), err)
	}

	return nil
}

func (r *blockedDateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM blocked_dates WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete blocked date",
			zap.Error(err),
			zap.String("blocked_date_id", id.String()),
		)
		return fmt.Errorf("delete blocked date %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blocked date %s not found", id.String())
	}

	return nil
}

func (r *blockedDateRepository) FindBySiteAndRange(ctx context.Context, siteID uuid.UUID, from, to time.Time) ([]entity.BlockedDate, error) {
	query := `
		SELECT id, site_id, blocked_date, memo, created_at
		FROM blocked_dates
		WHERE site_id = $1 AND blocked_date >= $2 AND blocked_date < $3
		ORDER BY blocked_date
	`

	rows, err := r.db.Query(ctx, query, siteID, from, to)
	if err != nil {
		r.log.Error("Failed to find blocked dates",
			zap.Error(err),
			zap.String("site_id", siteID.String()),
		)
		return nil, fmt.Errorf("find blocked dates for site %s: %w", siteID.String(), err)
	}
	defer rows.Close()

	var blocked []entity.BlockedDate
	for rows.Next() {
		var b entity.BlockedDate
		if err := rows.Scan(&b.ID, &b.SiteID, &b.Date, &b.Memo, &b.CreatedAt); err != nil {
			r.log.Error("Failed to scan blocked date row", zap.Error(err))
			return nil, fmt.Errorf("scan blocked date row: %w", err)
		}
		blocked = append(blocked, b)
	}

	return blocked, nil
}

func (r *blockedDateRepository) ExistsInRange(ctx context.Context, siteID uuid.UUID, from, to time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM blocked_dates
			WHERE site_id = $1 AND blocked_date >= $2 AND blocked_date < $3
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, siteID, from, to).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check blocked dates",
			zap.Error(err),
			zap.String("site_id", siteID.String()),
		)
		return false, fmt.Errorf("check blocked dates for site %s: %w", siteID.String(), err)
	}

	return exists, nil
}
