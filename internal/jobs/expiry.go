// Package jobs holds the background loops that run beside the HTTP server.
package jobs

import (
	"context"
	"time"

	"campsite-booking/internal/usecase"

	"go.uber.org/zap"
)

// ExpirySweeper cancels pending reservations whose payment deadline has
// passed. The sweep itself is idempotent, so an overlapping or repeated run
// is harmless.
type ExpirySweeper struct {
	booking  usecase.BookingService
	interval time.Duration
	log      *zap.Logger
}

func NewExpirySweeper(booking usecase.BookingService, interval time.Duration, log *zap.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		booking:  booking,
		interval: interval,
		log:      log.With(zap.String("job", "expiry_sweeper")),
	}
}

// Run blocks until ctx is cancelled. One sweep fires immediately on start so
// a restart doesn't leave stale pendings waiting a full interval.
func (s *ExpirySweeper) Run(ctx context.Context) {
	s.log.Info("Expiry sweeper started", zap.Duration("interval", s.interval))

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Expiry sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	count, err := s.booking.ExpirePending(ctx)
	if err != nil {
		s.log.Error("Expiry sweep failed", zap.Error(err))
		return
	}
	if count > 0 {
		s.log.Info("Expired pending reservations", zap.Int("count", count))
	}
}
