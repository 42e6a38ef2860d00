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

type WaitlistRepository interface {
	// Register inserts the entry; a duplicate (user, date, site) key is
	// absorbed by ON CONFLICT so registration stays idempotent.
	Register(ctx context.Context, entry *entity.WaitlistEntry) error
	Deregister(ctx context.Context, userID string, targetDate time.Time, siteID *uuid.UUID) error
	FindByUser(ctx context.Context, userID string) ([]entity.WaitlistEntry, error)
	// FindSubscribers returns entries matching a freed slot: the exact
	// site plus the "any site" entries for the date.
	FindSubscribers(ctx context.Context, targetDate time.Time, siteID uuid.UUID) ([]entity.WaitlistEntry, error)
}

type waitlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWaitlistRepository(db database.PgxIface, log *zap.Logger) WaitlistRepository {
	return &waitlistRepository{
		db:  db,
		log: log.With(zap.String("repository", "waitlist")),
	}
}

func (r *waitlistRepository) Register(ctx context.Context, entry *entity.WaitlistEntry) error {
	query := `
		INSERT INTO waitlist_entries (id, user_id, target_date, site_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, target_date, site_key) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.TargetDate,
		entry.SiteID,
		entry.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to register waitlist entry",
			zap.Error(err),
			zap.String("user_id", entry.UserID),
			zap.Time("target_date", entry.TargetDate),
		)
		return fmt.Errorf("register waitlist entry for user %s: %w", entry.UserID, err)
	}

	return nil
}

func (r *waitlistRepository) Deregister(ctx context.Context, userID string, targetDate time.Time, siteID *uuid.UUID) error {
	var err error
	if siteID == nil {
		query := `DELETE FROM waitlist_entries WHERE user_id = $1 AND target_date = $2 AND site_id IS NULL`
		_, err = r.db.Exec(ctx, query, userID, targetDate)
	} else {
		query := `DELETE FROM waitlist_entries WHERE user_id = $1 AND target_date = $2 AND site_id = $3`
		_, err = r.db.Exec(ctx, query, userID, targetDate, *siteID)
	}

	if err != nil {
		r.log.Error("Failed to deregister waitlist entry",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Time("target_date", targetDate),
		)
		return fmt.Errorf("deregister waitlist entry for user %s: %w", userID, err)
	}

	return nil
}

func (r *waitlistRepository) FindByUser(ctx context.Context, userID string) ([]entity.WaitlistEntry, error) {
	query := `
		SELECT id, user_id, target_date, site_id, created_at
		FROM waitlist_entries
		WHERE user_id = $1
		ORDER BY target_date
	`

	return r.findMany(ctx, query, userID)
}

func (r *waitlistRepository) FindSubscribers(ctx context.Context, targetDate time.Time, siteID uuid.UUID) ([]entity.WaitlistEntry, error) {
	query := `
		SELECT id, user_id, target_date, site_id, created_at
		FROM waitlist_entries
		WHERE target_date = $1 AND (site_id = $2 OR site_id IS NULL)
		ORDER BY created_at
	`

	return r.findMany(ctx, query, targetDate, siteID)
}

func (r *waitlistRepository) findMany(ctx context.Context, query string, args ...any) ([]entity.WaitlistEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query waitlist entries", zap.Error(err))
		return nil, fmt.Errorf("query waitlist entries: %w", err)
	}
	defer rows.Close()

	var entries []entity.WaitlistEntry
	for rows.Next() {
		var e entity.WaitlistEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.TargetDate, &e.SiteID, &e.CreatedAt); err != nil {
			r.log.Error("Failed to scan waitlist row", zap.Error(err))
			return nil, fmt.Errorf("scan waitlist row: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}
