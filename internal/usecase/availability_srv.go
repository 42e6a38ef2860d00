package usecase

import (
	"context"
	"fmt"
	"time"

	"campsite-booking/internal/data/entity"
	"campsite-booking/internal/data/repository"
	"campsite-booking/internal/dto/response"
	"campsite-booking/internal/rules"
	"campsite-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	// CheckAvailability reports, per active site, whether [checkIn, checkOut)
	// can be booked right now. Advisory only: the commit path re-checks
	// everything atomically, so a "yes" here can still lose the race.
	CheckAvailability(ctx context.Context, checkIn, checkOut, siteID string) (*response.AvailabilityResponse, error)
}

type availabilityService struct {
	repo   *repository.Repository
	config *utils.Config
	now    func() time.Time
	log    *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, config *utils.Config, now func() time.Time, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo:   repo,
		config: config,
		now:    now,
		log:    log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) CheckAvailability(ctx context.Context, checkIn, checkOut, siteID string) (*response.AvailabilityResponse, error) {
	loc := s.config.Location()

	from, err := utils.ParseDate(checkIn, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date %s: %w", checkIn, ErrValidation)
	}
	to, err := utils.ParseDate(checkOut, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date %s: %w", checkOut, ErrValidation)
	}
	if !from.Before(to) {
		return nil, fmt.Errorf("check-out must be after check-in: %w", ErrValidation)
	}

	now := s.now().In(loc)

	var closeAt time.Time
	window := response.WindowResponse{State: rules.WindowClosed}
	rule, err := s.repo.OpenDayRule.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if rule != nil {
		window.State, window.OpenAt, window.CloseAt = rules.WindowStateAt(rule, now)
		closeAt = window.CloseAt
	}

	sites, err := s.candidateSites(ctx, siteID)
	if err != nil {
		return nil, err
	}

	// Read past check-out so the end-cap exception can see the Saturday
	// night even on one-night lookups.
	ledgerEnd := to
	if capEnd := rules.DateOnly(from).AddDate(0, 0, 2); capEnd.After(ledgerEnd) {
		ledgerEnd = capEnd
	}
	occupying, err := s.repo.Reservation.FindOccupyingByRange(ctx, from, ledgerEnd)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	bySite := make(map[uuid.UUID][]*entity.Reservation)
	for _, res := range occupying {
		bySite[res.SiteID] = append(bySite[res.SiteID], res)
	}

	nextDayBlocked := rules.NextDayBlocked(from, closeAt)

	resp := &response.AvailabilityResponse{
		CheckIn:  from.Format("2006-01-02"),
		CheckOut: to.Format("2006-01-02"),
		Window:   window,
		Sites:    make([]response.SiteAvailability, 0, len(sites)),
	}

	anyEndCap := false
	for _, site := range sites {
		ledger := bySite[site.ID]

		booked := false
		for _, res := range ledger {
			if rules.Overlaps(res.CheckIn, res.CheckOut, from, to) {
				booked = true
				break
			}
		}

		blocked, err := s.repo.BlockedDate.ExistsInRange(ctx, site.ID, from, to)
		if err != nil {
			return nil, fmt.Errorf("check availability: %w", err)
		}

		endCap := rules.EndCapAvailability(ledger, from)
		if endCap {
			anyEndCap = true
		}

		verdict := rules.CheckStayRule(rules.StayRuleInput{
			CheckIn:               &from,
			CheckOut:              &to,
			Now:                   now,
			ImminentDays:          s.config.Booking.ImminentDays,
			HasEndCapAvailability: endCap,
			IsNextDayBlocked:      nextDayBlocked,
		})

		entry := response.SiteAvailability{
			Site:      response.SiteToResponse(site),
			Available: !booked && !blocked && !verdict.IsBlocked,
		}
		switch {
		case booked:
			entry.Reason = "booked"
		case blocked:
			entry.Reason = "blocked"
		case verdict.IsBlocked:
			entry.Reason = "min_stay"
		}
		resp.Sites = append(resp.Sites, entry)
	}

	resp.StayRule = rules.CheckStayRule(rules.StayRuleInput{
		CheckIn:               &from,
		CheckOut:              &to,
		Now:                   now,
		ImminentDays:          s.config.Booking.ImminentDays,
		HasEndCapAvailability: anyEndCap,
		IsNextDayBlocked:      nextDayBlocked,
	})

	return resp, nil
}

func (s *availabilityService) candidateSites(ctx context.Context, siteID string) ([]*entity.Site, error) {
	if siteID == "" {
		sites, err := s.repo.Site.FindAllActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("check availability: %w", err)
		}
		return sites, nil
	}

	id, err := uuid.Parse(siteID)
	if err != nil {
		return nil, fmt.Errorf("invalid site ID format %s: %w", siteID, ErrValidation)
	}
	site, err := s.repo.Site.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if site == nil || !site.IsActive {
		return nil, fmt.Errorf("site %s: %w", siteID, ErrNotFound)
	}
	return []*entity.Site{site}, nil
}
