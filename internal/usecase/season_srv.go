package usecase

import (
	"context"
	"fmt"
	"time"

	"campsite-booking/internal/data/repository"
	"campsite-booking/internal/dto/response"
	"campsite-booking/internal/rules"
	"campsite-booking/pkg/utils"

	"go.uber.org/zap"
)

type SeasonService interface {
	// GetWindow resolves the booking window against the wall clock. Monthly
	// rules are recomputed on every call, never cached.
	GetWindow(ctx context.Context) (*response.WindowResponse, error)
	GetPricingConfig(ctx context.Context) (*response.PricingConfigResponse, error)
}

type seasonService struct {
	repo   *repository.Repository
	config *utils.Config
	now    func() time.Time
	log    *zap.Logger
}

func NewSeasonService(repo *repository.Repository, config *utils.Config, now func() time.Time, log *zap.Logger) SeasonService {
	return &seasonService{
		repo:   repo,
		config: config,
		now:    now,
		log:    log.With(zap.String("service", "season")),
	}
}

func (s *seasonService) GetWindow(ctx context.Context) (*response.WindowResponse, error) {
	rule, err := s.repo.OpenDayRule.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get booking window: %w", err)
	}

	// No configured rule means bookings stay closed until an administrator
	// creates one.
	if rule == nil {
		return &response.WindowResponse{State: rules.WindowClosed}, nil
	}

	now := s.now().In(s.config.Location())
	state, openAt, closeAt := rules.WindowStateAt(rule, now)

	return &response.WindowResponse{
		State:   state,
		OpenAt:  openAt,
		CloseAt: closeAt,
	}, nil
}

func (s *seasonService) GetPricingConfig(ctx context.Context) (*response.PricingConfigResponse, error) {
	cfg, err := s.repo.PricingConfig.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get pricing config: %w", err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("pricing config: %w", ErrNotFound)
	}

	seasons, err := s.repo.PricingConfig.ListSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	resp := response.PricingConfigToResponse(cfg, seasons)
	return &resp, nil
}
