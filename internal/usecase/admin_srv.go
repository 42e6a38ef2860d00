package usecase

import (
	"context"
	"fmt"
	"time"

	"campsite-booking/internal/data/entity"
	"campsite-booking/internal/data/repository"
	"campsite-booking/internal/dto/request"
	"campsite-booking/internal/dto/response"
	"campsite-booking/internal/rules"
	"campsite-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminService owns the rule and catalog surface: everything here changes
// what the public read paths will answer from the next request on.
type AdminService interface {
	UpdatePricingConfig(ctx context.Context, req *request.UpdatePricingConfigRequest) (*response.PricingConfigResponse, error)
	CreateSeason(ctx context.Context, req *request.CreateSeasonRequest) (*response.SeasonResponse, error)
	DeleteSeason(ctx context.Context, seasonID string) error

	CreateHoliday(ctx context.Context, req *request.CreateHolidayRequest) error
	DeleteHoliday(ctx context.Context, holidayID string) error

	CreateOpenDayRule(ctx context.Context, req *request.CreateOpenDayRuleRequest) error
	GetActiveOpenDayRule(ctx context.Context) (*response.OpenDayRuleResponse, error)

	CreateBlockedDate(ctx context.Context, req *request.CreateBlockedDateRequest) error
	DeleteBlockedDate(ctx context.Context, blockedDateID string) error
	ListBlockedDates(ctx context.Context, siteID, from, to string) ([]response.BlockedDateResponse, error)

	CreateSite(ctx context.Context, req *request.CreateSiteRequest) (*response.SiteResponse, error)
	UpdateSite(ctx context.Context, siteID string, req *request.CreateSiteRequest) (*response.SiteResponse, error)
	GetAllSites(ctx context.Context) ([]response.SiteResponse, error)
}

type adminService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAdminService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AdminService {
	return &adminService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) UpdatePricingConfig(ctx context.Context, req *request.UpdatePricingConfigRequest) (*response.PricingConfigResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), ErrValidation)
	}

	cfg, err := s.repo.PricingConfig.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get pricing config: %w", err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("pricing config: %w", ErrNotFound)
	}

	cfg.WeekdayRate = req.WeekdayRate
	cfg.WeekendRate = req.WeekendRate
	cfg.PeakWeekdayRate = req.PeakWeekdayRate
	cfg.PeakWeekendRate = req.PeakWeekendRate
	cfg.ExtraFamilySurcharge = req.ExtraFamilySurcharge
	cfg.VisitorSurcharge = req.VisitorSurcharge
	cfg.LongStayDiscount = req.LongStayDiscount

	if err := s.repo.PricingConfig.Update(ctx, cfg); err != nil {
		return nil, err
	}

	s.log.Info("Pricing config updated",
		zap.Int64("weekday_rate", cfg.WeekdayRate),
		zap.Int64("weekend_rate", cfg.WeekendRate),
	)

	seasons, err := s.repo.PricingConfig.ListSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	resp := response.PricingConfigToResponse(cfg, seasons)
	return &resp, nil
}

func (s *adminService) CreateSeason(ctx context.Context, req *request.CreateSeasonRequest) (*response.SeasonResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), ErrValidation)
	}

	season := &entity.Season{
		ID:         uuid.New(),
		Name:       req.Name,
		StartMonth: req.StartMonth,
		StartDay:   req.StartDay,
		EndMonth:   req.EndMonth,
		EndDay:     req.EndDay,
	}

	if err := s.repo.PricingConfig.CreateSeason(ctx, season); err != nil {
		return nil, err
	}

	s.log.Info("Season created", zap.String("name", season.Name))

	resp := response.SeasonToResponse(*season)
	return &resp, nil
}

func (s *adminService) DeleteSeason(ctx context.Context, seasonID string) error {
	id, err := uuid.Parse(seasonID)
	if err != nil {
		return fmt.Errorf("invalid season ID format %s: %w", seasonID, ErrValidation)
	}
	return s.repo.PricingConfig.DeleteSeason(ctx, id)
}

func (s *adminService) CreateHoliday(ctx context.Context, req *request.CreateHolidayRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), ErrValidation)
	}

	date, err := utils.ParseDate(req.Date, s.config.Location())
	if err != nil {
		return fmt.Errorf("invalid holiday date %s: %w", req.Date, ErrValidation)
	}

	holiday := &entity.Holiday{
		ID:   uuid.New(),
		Name: req.Name,
		Date: date,
	}

	if err := s.repo.Holiday.Create(ctx, holiday); err != nil {
		return err
	}

	s.log.Info("Holiday created", zap.String("name", req.Name), zap.String("date", req.Date))
	return nil
}

func (s *adminService) DeleteHoliday(ctx context.Context, holidayID string) error {
	id, err := uuid.Parse(holidayID)
	if err != nil {
		return fmt.Errorf("invalid holiday ID format %s: %w", holidayID, ErrValidation)
	}
	return s.repo.Holiday.Delete(ctx, id)
}

func (s *adminService) CreateOpenDayRule(ctx context.Context, req *request.CreateOpenDayRuleRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), ErrValidation)
	}

	now := time.Now()
	rule := &entity.OpenDayRule{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RuleType: entity.OpenDayRuleType(req.RuleType),
		IsActive: true,
	}

	switch rule.RuleType {
	case entity.OpenDayRuleFixed:
		openAt, err := time.Parse(time.RFC3339, req.OpenAt)
		if err != nil {
			return fmt.Errorf("invalid open_at %s: %w", req.OpenAt, ErrValidation)
		}
		closeAt, err := time.Parse(time.RFC3339, req.CloseAt)
		if err != nil {
			return fmt.Errorf("invalid close_at %s: %w", req.CloseAt, ErrValidation)
		}
		if !openAt.Before(closeAt) {
			return fmt.Errorf("open_at must be before close_at: %w", ErrValidation)
		}
		rule.OpenAt = &openAt
		rule.CloseAt = &closeAt
	case entity.OpenDayRuleMonthly:
		rule.MonthsToAdd = req.MonthsToAdd
		rule.TargetDay = req.TargetDay
	}

	if err := s.repo.OpenDayRule.Create(ctx, rule); err != nil {
		return err
	}

	s.log.Info("Open-day rule created",
		zap.String("rule_type", req.RuleType),
		zap.Int("months_to_add", req.MonthsToAdd),
		zap.Int("target_day", req.TargetDay),
	)
	return nil
}

func (s *adminService) GetActiveOpenDayRule(ctx context.Context) (*response.OpenDayRuleResponse, error) {
	rule, err := s.repo.OpenDayRule.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active open-day rule: %w", err)
	}
	if rule == nil {
		return nil, fmt.Errorf("open-day rule: %w", ErrNotFound)
	}

	window := response.WindowResponse{}
	window.State, window.OpenAt, window.CloseAt = rules.WindowStateAt(rule, time.Now().In(s.config.Location()))

	resp := response.OpenDayRuleToResponse(rule, window)
	return &resp, nil
}

func (s *adminService) ListBlockedDates(ctx context.Context, siteID, from, to string) ([]response.BlockedDateResponse, error) {
	id, err := uuid.Parse(siteID)
	if err != nil {
		return nil, fmt.Errorf("invalid site ID format %s: %w", siteID, ErrValidation)
	}

	loc := s.config.Location()
	fromDate, err := utils.ParseDate(from, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid from date %s: %w", from, ErrValidation)
	}
	toDate, err := utils.ParseDate(to, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid to date %s: %w", to, ErrValidation)
	}

	blocked, err := s.repo.BlockedDate.FindBySiteAndRange(ctx, id, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("list blocked dates: %w", err)
	}

	responses := make([]response.BlockedDateResponse, len(blocked))
	for i, b := range blocked {
		responses[i] = response.BlockedDateToResponse(b)
	}
	return responses, nil
}

func (s *adminService) CreateBlockedDate(ctx context.Context, req *request.CreateBlockedDateRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), ErrValidation)
	}

	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		return fmt.Errorf("invalid site ID format %s: %w", req.SiteID, ErrValidation)
	}
	date, err := utils.ParseDate(req.Date, s.config.Location())
	if err != nil {
		return fmt.Errorf("invalid blocked date %s: %w", req.Date, ErrValidation)
	}

	site, err := s.repo.Site.FindByID(ctx, siteID)
	if err != nil {
		return fmt.Errorf("get site %s: %w", req.SiteID, err)
	}
	if site == nil {
		return fmt.Errorf("site %s: %w", req.SiteID, ErrNotFound)
	}

	blocked := &entity.BlockedDate{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		SiteID: siteID,
		Date:   date,
		Memo:   req.Memo,
	}

	if err := s.repo.BlockedDate.Create(ctx, blocked); err != nil {
		return err
	}

	s.log.Info("Blocked date created",
		zap.String("site_id", req.SiteID),
		zap.String("date", req.Date),
	)
	return nil
}

func (s *adminService) DeleteBlockedDate(ctx context.Context, blockedDateID string) error {
	id, err := uuid.Parse(blockedDateID)
	if err != nil {
		return fmt.Errorf("invalid blocked date ID format %s: %w", blockedDateID, ErrValidation)
	}
	return s.repo.BlockedDate.Delete(ctx, id)
}

func (s *adminService) CreateSite(ctx context.Context, req *request.CreateSiteRequest) (*response.SiteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), ErrValidation)
	}

	now := time.Now()
	site := &entity.Site{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		SiteType:     req.SiteType,
		WeekdayPrice: req.WeekdayPrice,
		WeekendPrice: req.WeekendPrice,
		MaxOccupancy: req.MaxOccupancy,
		Features:     req.Features,
		IsActive:     req.IsActive,
	}

	if err := s.repo.Site.Create(ctx, site); err != nil {
		return nil, err
	}

	s.log.Info("Site created",
		zap.String("site_id", site.ID.String()),
		zap.String("name", site.Name),
	)

	resp := response.SiteToResponse(site)
	return &resp, nil
}

func (s *adminService) UpdateSite(ctx context.Context, siteID string, req *request.CreateSiteRequest) (*response.SiteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), ErrValidation)
	}

	id, err := uuid.Parse(siteID)
	if err != nil {
		return nil, fmt.Errorf("invalid site ID format %s: %w", siteID, ErrValidation)
	}

	site, err := s.repo.Site.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get site %s: %w", siteID, err)
	}
	if site == nil {
		return nil, fmt.Errorf("site %s: %w", siteID, ErrNotFound)
	}

	site.Name = req.Name
	site.SiteType = req.SiteType
	site.WeekdayPrice = req.WeekdayPrice
	site.WeekendPrice = req.WeekendPrice
	site.MaxOccupancy = req.MaxOccupancy
	site.Features = req.Features
	site.IsActive = req.IsActive
	site.UpdatedAt = time.Now()

	if err := s.repo.Site.Update(ctx, site); err != nil {
		return nil, err
	}

	s.log.Info("Site updated", zap.String("site_id", siteID))

	resp := response.SiteToResponse(site)
	return &resp, nil
}

func (s *adminService) GetAllSites(ctx context.Context) ([]response.SiteResponse, error) {
	sites, err := s.repo.Site.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all sites: %w", err)
	}

	responses := make([]response.SiteResponse, len(sites))
	for i, site := range sites {
		responses[i] = response.SiteToResponse(site)
	}
	return responses, nil
}
