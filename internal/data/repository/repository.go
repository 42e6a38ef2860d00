package repository

import (
	"campsite-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Site          SiteRepository
	PricingConfig PricingConfigRepository
	Holiday       HolidayRepository
	OpenDayRule   OpenDayRuleRepository
	Reservation   ReservationRepository
	BlockedDate   BlockedDateRepository
	Waitlist      WaitlistRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Site:          NewSiteRepository(db, log),
		PricingConfig: NewPricingConfigRepository(db, log),
		Holiday:       NewHolidayRepository(db, log),
		OpenDayRule:   NewOpenDayRuleRepository(db, log),
		Reservation:   NewReservationRepository(db, log),
		BlockedDate:   NewBlockedDateRepository(db, log),
		Waitlist:      NewWaitlistRepository(db, log),
	}
}
