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

type SiteRepository interface {
	Create(ctx context.Context, site *entity.Site) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Site, error)
	FindAllActive(ctx context.Context) ([]*entity.Site, error)
	FindAll(ctx context.Context) ([]*entity.Site, error)
	Update(ctx context.Context, site *entity.Site) error
}

type siteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSiteRepository(db database.PgxIface, log *zap.Logger) SiteRepository {
	return &siteRepository{
		db:  db,
		log: log.With(zap.String("repository", "site")),
	}
}

const siteColumns = `id, name, site_type, weekday_price, weekend_price, max_occupancy, features, is_active, created_at, updated_at`

func scanSite(row pgx.Row) (*entity.Site, error) {
	var site entity.Site
	err := row.Scan(
		&site.ID,
		&site.Name,
		&site.SiteType,
		&site.WeekdayPrice,
		&site.WeekendPrice,
		&site.MaxOccupancy,
		&site.Features,
		&site.IsActive,
		&site.CreatedAt,
		&site.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *siteRepository) Create(ctx context.Context, site *entity.Site) error {
	query := `
		INSERT INTO sites (id, name, site_type, weekday_price, weekend_price, max_occupancy, features, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		site.ID,
		site.Name,
		site.SiteType,
		site.WeekdayPrice,
		site.WeekendPrice,
		site.MaxOccupancy,
		site.Features,
		site.IsActive,
		site.CreatedAt,
		site.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create site",
			zap.Error(err),
			zap.String("name", site.Name),
		)
		return fmt.Errorf("create site %s: %w", site.Name, err)
	}

	return nil
}

func (r *siteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites WHERE id = $1`

	site, err := scanSite(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find site by ID",
			zap.Error(err),
			zap.String("site_id", id.String()),
		)
		return nil, fmt.Errorf("find site by ID %s: %w", id.String(), err)
	}

	return site, nil
}

func (r *siteRepository) FindAllActive(ctx context.Context) ([]*entity.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites WHERE is_active ORDER BY name`
	return r.findMany(ctx, query)
}

func (r *siteRepository) FindAll(ctx context.Context) ([]*entity.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites ORDER BY name`
	return r.findMany(ctx, query)
}

func (r *siteRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Site, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list sites", zap.Error(err))
		return nil, fmt.Errorf("list sites: %w", err)
	}
	defer rows.Close()

	var sites []*entity.Site
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			r.log.Error("Failed to scan site row", zap.Error(err))
			return nil, fmt.Errorf("scan site row: %w", err)
		}
		sites = append(sites, site)
	}

	return sites, nil
}

func (r *siteRepository) Update(ctx context.Context, site *entity.Site) error {
	query := `
		UPDATE sites
		SET name = $2, site_type = $3, weekday_price = $4, weekend_price = $5,
		    max_occupancy = $6, features = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		site.ID,
		site.Name,
		site.SiteType,
		site.WeekdayPrice,
		site.WeekendPrice,
		site.MaxOccupancy,
		site.Features,
		site.IsActive,
		site.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update site",
			zap.Error(err),
			zap.String("site_id", site.ID.String()),
		)
		return fmt.Errorf("update site %s: %w", site.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("site %s not found", site.ID.String())
	}

	return nil
}
