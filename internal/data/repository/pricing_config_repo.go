package repository

import (
	"context"
	"fmt"

	"campsite-booking/internal/data/entity"
	"campsite-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PricingConfigRepository interface {
	// Get returns the singleton rate card. Callers must re-read at quote
	// time; nothing here is cached.
	Get(ctx context.Context) (*entity.PricingConfig, error)
	Update(ctx context.Context, cfg *entity.PricingConfig) error

	ListSeasons(ctx context.Context) ([]entity.Season, error)
	CreateSeason(ctx context.Context, season *entity.Season) error
	DeleteSeason(ctx context.Context, id uuid.UUID) error
}

type pricingConfigRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPricingConfigRepository(db database.PgxIface, log *zap.Logger) PricingConfigRepository {
	return &pricingConfigRepository{
		db:  db,
		log: log.With(zap.String("repository", "pricing_config")),
	}
}

func (r *pricingConfigRepository) Get(ctx context.Context) (*entity.PricingConfig, error) {
	query := `
		SELECT id, weekday_rate, weekend_rate, peak_weekday_rate, peak_weekend_rate,
		       extra_family_surcharge, visitor_surcharge, long_stay_discount, created_at, updated_at
		FROM pricing_config
		LIMIT 1
	`

	var cfg entity.PricingConfig
	err := r.db.QueryRow(ctx, query).Scan(
		&cfg.ID,
		&cfg.WeekdayRate,
		&cfg.WeekendRate,
		&cfg.PeakWeekdayRate,
		&cfg.PeakWeekendRate,
		&cfg.ExtraFamilySurcharge,
		&cfg.VisitorSurcharge,
		&cfg.LongStayDiscount,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to load pricing config", zap.Error(err))
		return nil, fmt.Errorf("load pricing config: %w", err)
	}

	return &cfg, nil
}

func (r *pricingConfigRepository) Update(ctx context.Context, cfg *entity.PricingConfig) error {
	query := `
		UPDATE pricing_config
		SET weekday_rate = $2, weekend_rate = $3, peak_weekday_rate = $4, peak_weekend_rate = $5,
		    extra_family_surcharge = $6, visitor_surcharge = $7, long_stay_discount = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		cfg.ID,
		cfg.WeekdayRate,
		cfg.WeekendRate,
		cfg.PeakWeekdayRate,
		cfg.PeakWeekendRate,
		cfg.ExtraFamilySurcharge,
		cfg.VisitorSurcharge,
		cfg.LongStayDiscount,
		cfg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update pricing config", zap.Error(err))
		return fmt.Errorf("update pricing config: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("pricing config %s not found", cfg.ID.String())
	}

	return nil
}

func (r *pricingConfigRepository) ListSeasons(ctx context.Context) ([]entity.Season, error) {
	query := `
		SELECT id, name, start_month, start_day, end_month, end_day
		FROM seasons
		ORDER BY start_month, start_day
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list seasons", zap.Error(err))
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	defer rows.Close()

	var seasons []entity.Season
	for rows.Next() {
		var s entity.Season
		err := rows.Scan(&s.ID, &s.Name, &s.StartMonth, &s.StartDay, &s.EndMonth, &s.EndDay)
		if err != nil {
			r.log.Error("Failed to scan season row", zap.Error(err))
			return nil, fmt.Errorf("scan season row: %w", err)
		}
		seasons = append(seasons, s)
	}

	return seasons, nil
}

func (r *pricingConfigRepository) CreateSeason(ctx context.Context, season *entity.Season) error {
	query := `
		INSERT INTO seasons (id, name, start_month, start_day, end_month, end_day)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		season.ID,
		season.Name,
		season.StartMonth,
		season.StartDay,
		season.EndMonth,
		season.EndDay,
	)

	if err != nil {
		r.log.Error("Failed to create season",
			zap.Error(err),
			zap.String("name", season.Name),
		)
		return fmt.Errorf("create season %s: %w", season.Name, err)
	}

	return nil
}

func (r *pricingConfigRepository) DeleteSeason(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM seasons WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete season",
			zap.Error(err),
			zap.String("season_id", id.String()),
		)
		return fmt.Errorf("delete season %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("season %s not found", id.String())
	}

	return nil
}
