package repository

import (
	"context"
	"fmt"

	"campsite-booking/internal/data/entity"
	"campsite-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OpenDayRuleRepository interface {
	FindActive(ctx context.Context) (*entity.OpenDayRule, error)
	// Create inserts the rule and deactivates the previous active rule in
	// the same transaction, so exactly one rule is active at any moment.
	Create(ctx context.Context, rule *entity.OpenDayRule) error
}

type openDayRuleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOpenDayRuleRepository(db database.PgxIface, log *zap.Logger) OpenDayRuleRepository {
	return &openDayRuleRepository{
		db:  db,
		log: log.With(zap.String("repository", "open_day_rule")),
	}
}

func (r *openDayRuleRepository) FindActive(ctx context.Context) (*entity.OpenDayRule, error) {
	query := `
		SELECT id, rule_type, open_at, close_at, months_to_add, target_day, is_active, created_at, updated_at
		FROM open_day_rules
		WHERE is_active
		ORDER BY created_at DESC
		LIMIT 1
	`

	var rule entity.OpenDayRule
	err := r.db.QueryRow(ctx, query).Scan(
		&rule.ID,
		&rule.RuleType,
		&rule.OpenAt,
		&rule.CloseAt,
		&rule.MonthsToAdd,
		&rule.TargetDay,
		&rule.IsActive,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find active open day rule", zap.Error(err))
		return nil, fmt.Errorf("find active open day rule: %w", err)
	}

	return &rule, nil
}

func (r *openDayRuleRepository) Create(ctx context.Context, rule *entity.OpenDayRule) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin open day rule transaction", zap.Error(err))
		return fmt.Errorf("begin open day rule transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE open_day_rules SET is_active = FALSE, updated_at = NOW() WHERE is_active`); err != nil {
		r.log.Error("Failed to deactivate previous open day rule", zap.Error(err))
		return fmt.Errorf("deactivate previous open day rule: %w", err)
	}

	query := `
		INSERT INTO open_day_rules (id, rule_type, open_at, close_at, months_to_add, target_day, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $8)
	`

	_, err = tx.Exec(ctx, query,
		rule.ID,
		rule.RuleType,
		rule.OpenAt,
		rule.CloseAt,
		rule.MonthsToAdd,
		rule.TargetDay,
		rule.CreatedAt,
		rule.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create open day rule", zap.Error(err))
		return fmt.Errorf("create open day rule: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit open day rule transaction", zap.Error(err))
		return fmt.Errorf("commit open day rule transaction: %w", err)
	}

	rule.IsActive = true
	return nil
}
