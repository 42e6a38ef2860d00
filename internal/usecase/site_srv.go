package usecase

import (
	"context"
	"fmt"

	"campsite-booking/internal/data/repository"
	"campsite-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SiteService interface {
	GetActiveSites(ctx context.Context) ([]response.SiteResponse, error)
	GetSite(ctx context.Context, siteID string) (*response.SiteResponse, error)
}

type siteService struct {
	sites repository.SiteRepository
	log   *zap.Logger
}

func NewSiteService(sites repository.SiteRepository, log *zap.Logger) SiteService {
	return &siteService{
		sites: sites,
		log:   log.With(zap.String("service", "site")),
	}
}

func (s *siteService) GetActiveSites(ctx context.Context) ([]response.SiteResponse, error) {
	sites, err := s.sites.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to get active sites", zap.Error(err))
		return nil, fmt.Errorf("get active sites: %w", err)
	}

	responses := make([]response.SiteResponse, len(sites))
	for i, site := range sites {
		responses[i] = response.SiteToResponse(site)
	}
	return responses, nil
}

func (s *siteService) GetSite(ctx context.Context, siteID string) (*response.SiteResponse, error) {
	id, err := uuid.Parse(siteID)
	if err != nil {
		return nil, fmt.Errorf("invalid site ID format %s: %w", siteID, ErrValidation)
	}

	site, err := s.sites.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get site %s: %w", siteID, err)
	}
	if site == nil {
		return nil, fmt.Errorf("site %s: %w", siteID, ErrNotFound)
	}

	resp := response.SiteToResponse(site)
	return &resp, nil
}
