package usecase

import (
	"context"
	"time"

	"campsite-booking/internal/data/repository"
	"campsite-booking/internal/events"
	"campsite-booking/pkg/utils"

	"go.uber.org/zap"
)

// EventPublisher is the slice of the AMQP publisher the services need. A nil
// publisher disables eventing without touching any call site.
type EventPublisher interface {
	PublishSlotOpened(ctx context.Context, event events.SlotOpenedEvent) error
	PublishReservationConfirmed(ctx context.Context, event events.ReservationConfirmedEvent) error
}

type Service struct {
	Season       SeasonService
	Site         SiteService
	Availability AvailabilityService
	Booking      BookingService
	Waitlist     WaitlistService
	Admin        AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, publisher EventPublisher, log *zap.Logger) *Service {
	now := time.Now
	return &Service{
		Season:       NewSeasonService(repo, config, now, log),
		Site:         NewSiteService(repo.Site, log),
		Availability: NewAvailabilityService(repo, config, now, log),
		Booking:      NewBookingService(repo, config, publisher, now, log),
		Waitlist:     NewWaitlistService(repo.Waitlist, config, now, log),
		Admin:        NewAdminService(repo, config, log),
	}
}
