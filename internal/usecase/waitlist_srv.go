package usecase

import (
	"context"
	"fmt"
	"time"

	"campsite-booking/internal/data/entity"
	"campsite-booking/internal/data/repository"
	"campsite-booking/internal/dto/request"
	"campsite-booking/internal/dto/response"
	"campsite-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WaitlistService interface {
	// Register is idempotent: registering the same (date, site) twice
	// returns the same success without a second row.
	Register(ctx context.Context, userID string, req *request.WaitlistRequest) (*response.WaitlistEntryResponse, error)
	Deregister(ctx context.Context, userID string, req *request.WaitlistRequest) error
	GetUserEntries(ctx context.Context, userID string) ([]response.WaitlistEntryResponse, error)

	// GetSubscribers lists the entries watching a slot: the exact site plus
	// the "any site" entries for the date. Admin-only.
	GetSubscribers(ctx context.Context, targetDate, siteID string) ([]response.WaitlistEntryResponse, error)
}

type waitlistService struct {
	waitlist repository.WaitlistRepository
	config   *utils.Config
	now      func() time.Time
	log      *zap.Logger
}

func NewWaitlistService(waitlist repository.WaitlistRepository, config *utils.Config, now func() time.Time, log *zap.Logger) WaitlistService {
	return &waitlistService{
		waitlist: waitlist,
		config:   config,
		now:      now,
		log:      log.With(zap.String("service", "waitlist")),
	}
}

func (s *waitlistService) Register(ctx context.Context, userID string, req *request.WaitlistRequest) (*response.WaitlistEntryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Waitlist register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), ErrValidation)
	}

	targetDate, siteID, err := s.parseTarget(req)
	if err != nil {
		return nil, err
	}

	entry := &entity.WaitlistEntry{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		UserID:     userID,
		TargetDate: targetDate,
		SiteID:     siteID,
	}

	if err := s.waitlist.Register(ctx, entry); err != nil {
		return nil, err
	}

	s.log.Info("Waitlist entry registered",
		zap.String("user_id", userID),
		zap.String("target_date", req.TargetDate),
		zap.String("site_id", req.SiteID),
	)

	resp := response.WaitlistEntryToResponse(*entry)
	return &resp, nil
}

func (s *waitlistService) Deregister(ctx context.Context, userID string, req *request.WaitlistRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), ErrValidation)
	}

	targetDate, siteID, err := s.parseTarget(req)
	if err != nil {
		return err
	}

	if err := s.waitlist.Deregister(ctx, userID, targetDate, siteID); err != nil {
		return err
	}

	s.log.Info("Waitlist entry removed",
		zap.String("user_id", userID),
		zap.String("target_date", req.TargetDate),
	)
	return nil
}

func (s *waitlistService) GetUserEntries(ctx context.Context, userID string) ([]response.WaitlistEntryResponse, error) {
	entries, err := s.waitlist.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get waitlist entries: %w", err)
	}

	responses := make([]response.WaitlistEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = response.WaitlistEntryToResponse(entry)
	}
	return responses, nil
}

func (s *waitlistService) GetSubscribers(ctx context.Context, targetDate, siteID string) ([]response.WaitlistEntryResponse, error) {
	date, err := utils.ParseDate(targetDate, s.config.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid target date %s: %w", targetDate, ErrValidation)
	}
	id, err := uuid.Parse(siteID)
	if err != nil {
		return nil, fmt.Errorf("invalid site ID format %s: %w", siteID, ErrValidation)
	}

	entries, err := s.waitlist.FindSubscribers(ctx, date, id)
	if err != nil {
		return nil, fmt.Errorf("get waitlist subscribers: %w", err)
	}

	responses := make([]response.WaitlistEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = response.WaitlistEntryToResponse(entry)
	}
	return responses, nil
}

func (s *waitlistService) parseTarget(req *request.WaitlistRequest) (time.Time, *uuid.UUID, error) {
	targetDate, err := utils.ParseDate(req.TargetDate, s.config.Location())
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid target date %s: %w", req.TargetDate, ErrValidation)
	}

	var siteID *uuid.UUID
	if req.SiteID != "" {
		id, err := uuid.Parse(req.SiteID)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("invalid site ID format %s: %w", req.SiteID, ErrValidation)
		}
		siteID = &id
	}

	return targetDate, siteID, nil
}
