package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"campsite-booking/internal/data/entity"
	"campsite-booking/internal/data/repository"
	"campsite-booking/internal/dto/request"

	"github.com/google/uuid"
)

type bookingEnv struct {
	repo         *repository.Repository
	reservations *stubReservationRepo
	ruleRepo     *stubRuleRepo
	blocked      *stubBlockedRepo
	publisher    *stubPublisher
	site         *entity.Site
}

func newBookingEnv() *bookingEnv {
	site := &entity.Site{
		Base:         entity.Base{ID: uuid.New()},
		Name:         "A-1",
		SiteType:     "deck",
		MaxOccupancy: 6,
		IsActive:     true,
	}

	env := &bookingEnv{
		reservations: newStubReservationRepo(),
		ruleRepo: &stubRuleRepo{rule: &entity.OpenDayRule{
			Base:        entity.Base{ID: uuid.New()},
			RuleType:    entity.OpenDayRuleMonthly,
			MonthsToAdd: 1,
			TargetDay:   entity.TargetDayEndOfMonth,
			IsActive:    true,
		}},
		blocked:   &stubBlockedRepo{},
		publisher: &stubPublisher{},
		site:      site,
	}

	env.repo = &repository.Repository{
		Site: newStubSiteRepo(site),
		PricingConfig: &stubPricingRepo{cfg: &entity.PricingConfig{
			WeekdayRate:          40000,
			WeekendRate:          60000,
			PeakWeekdayRate:      70000,
			PeakWeekendRate:      90000,
			ExtraFamilySurcharge: 10000,
			VisitorSurcharge:     10000,
			LongStayDiscount:     5000,
		}},
		Holiday:     &stubHolidayRepo{},
		OpenDayRule: env.ruleRepo,
		Reservation: env.reservations,
		BlockedDate: env.blocked,
		Waitlist:    &stubWaitlistRepo{},
	}
	return env
}

func (env *bookingEnv) service(now time.Time) BookingService {
	return NewBookingService(env.repo, testConfig(), env.publisher, fixedClock(now), testLogger())
}

func (env *bookingEnv) createRequest(checkIn, checkOut string) *request.CreateReservationRequest {
	return &request.CreateReservationRequest{
		SiteID:      env.site.ID.String(),
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		FamilyCount: 1,
		GuestName:   "Kim",
		GuestPhone:  "010-0000-0000",
	}
}

// 2026-08-31 is a Monday. With the monthly rule (one month ahead, end of
// month) the window at that instant is open and closes after 2026-09-30.
var monday = time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)

func TestCreateReservationWindowGating(t *testing.T) {
	t.Run("pre-open fixed rule", func(t *testing.T) {
		env := newBookingEnv()
		openAt := monday.Add(24 * time.Hour)
		closeAt := monday.Add(30 * 24 * time.Hour)
		env.ruleRepo.rule = &entity.OpenDayRule{
			Base:     entity.Base{ID: uuid.New()},
			RuleType: entity.OpenDayRuleFixed,
			OpenAt:   &openAt,
			CloseAt:  &closeAt,
			IsActive: true,
		}

		_, err := env.service(monday).CreateReservation(context.Background(), "user-1",
			env.createRequest("2026-09-10", "2026-09-12"))
		if !errors.Is(err, ErrPreOpen) {
			t.Fatalf("expected ErrPreOpen, got %v", err)
		}
	})

	t.Run("no active rule", func(t *testing.T) {
		env := newBookingEnv()
		env.ruleRepo.rule = nil

		_, err := env.service(monday).CreateReservation(context.Background(), "user-1",
			env.createRequest("2026-09-10", "2026-09-12"))
		if !errors.Is(err, ErrSeasonClosed) {
			t.Fatalf("expected ErrSeasonClosed, got %v", err)
		}
	})

	t.Run("dates past window close", func(t *testing.T) {
		env := newBookingEnv()

		_, err := env.service(monday).CreateReservation(context.Background(), "user-1",
			env.createRequest("2026-10-05", "2026-10-07"))
		if !errors.Is(err, ErrSeasonClosed) {
			t.Fatalf("expected ErrSeasonClosed, got %v", err)
		}
	})

	t.Run("last night on window close day is bookable", func(t *testing.T) {
		env := newBookingEnv()

		_, err := env.service(monday).CreateReservation(context.Background(), "user-1",
			env.createRequest("2026-09-29", "2026-10-01"))
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})

	t.Run("check-in in the past", func(t *testing.T) {
		env := newBookingEnv()

		_, err := env.service(monday).CreateReservation(context.Background(), "user-1",
			env.createRequest("2026-08-20", "2026-08-22"))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestCreateReservationStayRule(t *testing.T) {
	// 2026-09-18 is a Friday three weeks ahead of the fixed clock.
	t.Run("friday one-night is blocked", func(t *testing.T) {
		env := newBookingEnv()

		_, err := env.service(monday).CreateReservation(context.Background(), "user-1",
			env.createRequest("2026-09-18", "2026-09-19"))
		if !errors.Is(err, ErrRuleViolation) {
			t.Fatalf("expected ErrRuleViolation, got %v", err)
		}
	})

	t.Run("friday one-night passes with end cap", func(t *testing.T) {
		env := newBookingEnv()
		env.reservations.rows[uuid.New()] = func() *entity.Reservation {
			res := &entity.Reservation{
				Base:     entity.Base{ID: uuid.New()},
				SiteID:   env.site.ID,
				UserID:   "user-2",
				CheckIn:  date(2026, time.September, 19),
				CheckOut: date(2026, time.September, 20),
				Status:   entity.ReservationStatusConfirmed,
			}
			return res
		}()

		_, err := env.service(monday).CreateReservation(context.Background(), "user-1",
			env.createRequest("2026-09-18", "2026-09-19"))
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})

	t.Run("friday one-night passes when imminent", func(t *testing.T) {
		env := newBookingEnv()
		// 2026-09-04 is a Friday two days after the clock.
		now := time.Date(2026, time.September, 2, 10, 0, 0, 0, time.UTC)

		_, err := env.service(now).CreateReservation(context.Background(), "user-1",
			env.createRequest("2026-09-04", "2026-09-05"))
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})

	t.Run("two-night friday stay passes", func(t *testing.T) {
		env := newBookingEnv()

		_, err := env.service(monday).CreateReservation(context.Background(), "user-1",
			env.createRequest("2026-09-18", "2026-09-20"))
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})
}

func TestCreateReservationBlockedDate(t *testing.T) {
	env := newBookingEnv()
	env.blocked.blocked = append(env.blocked.blocked, entity.BlockedDate{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		SiteID:     env.site.ID,
		Date:       date(2026, time.September, 11),
	})

	_, err := env.service(monday).CreateReservation(context.Background(), "user-1",
		env.createRequest("2026-09-10", "2026-09-12"))
	if !errors.Is(err, ErrSiteBlocked) {
		t.Fatalf("expected ErrSiteBlocked, got %v", err)
	}
}

func TestCreateReservationOverlap(t *testing.T) {
	env := newBookingEnv()
	existing := &entity.Reservation{
		Base:     entity.Base{ID: uuid.New()},
		SiteID:   env.site.ID,
		UserID:   "user-2",
		CheckIn:  date(2026, time.September, 11),
		CheckOut: date(2026, time.September, 13),
		Status:   entity.ReservationStatusConfirmed,
	}
	env.reservations.rows[existing.ID] = existing

	_, err := env.service(monday).CreateReservation(context.Background(), "user-1",
		env.createRequest("2026-09-10", "2026-09-12"))
	if !errors.Is(err, repository.ErrAlreadyBooked) {
		t.Fatalf("expected ErrAlreadyBooked, got %v", err)
	}
}

func TestCreateReservationPricing(t *testing.T) {
	env := newBookingEnv()
	req := env.createRequest("2026-09-18", "2026-09-20")
	req.FamilyCount = 2
	req.VisitorCount = 1

	resp, err := env.service(monday).CreateReservation(context.Background(), "user-1", req)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	// Fri + Sat weekend nights: 2*60000, one extra family 2*10000, one
	// visitor 10000, long-stay discount 2*5000.
	want := int64(120000 + 20000 + 10000 - 10000)
	if resp.TotalPrice != want {
		t.Errorf("total price = %d, want %d", resp.TotalPrice, want)
	}
	if resp.Status != entity.ReservationStatusPending {
		t.Errorf("status = %s, want pending", resp.Status)
	}
	if resp.Code == "" {
		t.Error("expected a reservation code")
	}
}

func TestCreateReservationConcurrent(t *testing.T) {
	env := newBookingEnv()
	svc := env.service(monday)

	const attempts = 8
	results := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.CreateReservation(context.Background(), "user-1",
				env.createRequest("2026-09-10", "2026-09-12"))
			results[i] = err
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, repository.ErrAlreadyBooked):
		case errors.Is(err, repository.ErrConcurrentRequest):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one success, got %d", succeeded)
	}
}

func TestCancelRefundTiers(t *testing.T) {
	cancelReq := &request.CancelReservationRequest{
		RefundBank:    "KB",
		RefundAccount: "110-1234",
		RefundHolder:  "Kim",
	}

	tests := []struct {
		name       string
		daysAhead  int
		wantRate   int
		wantAmount int64
		wantStatus entity.ReservationStatus
	}{
		{"seven days out", 7, 100, 100000, entity.ReservationStatusRefundPending},
		{"six days out", 6, 90, 90000, entity.ReservationStatusRefundPending},
		{"five days out", 5, 90, 90000, entity.ReservationStatusRefundPending},
		{"three days out", 3, 50, 50000, entity.ReservationStatusRefundPending},
		{"two days out", 2, 20, 20000, entity.ReservationStatusRefundPending},
		{"one day out", 1, 20, 20000, entity.ReservationStatusRefundPending},
		{"same day", 0, 0, 0, entity.ReservationStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newBookingEnv()
			res := &entity.Reservation{
				Base:       entity.Base{ID: uuid.New()},
				Code:       "CAMP-TEST",
				SiteID:     env.site.ID,
				UserID:     "user-1",
				CheckIn:    monday.AddDate(0, 0, tt.daysAhead),
				CheckOut:   monday.AddDate(0, 0, tt.daysAhead+2),
				TotalPrice: 100000,
				Status:     entity.ReservationStatusConfirmed,
			}
			env.reservations.rows[res.ID] = res

			resp, err := env.service(monday).Cancel(context.Background(), "user-1", res.ID.String(), cancelReq)
			if err != nil {
				t.Fatalf("cancel: %v", err)
			}

			if resp.RefundRate != tt.wantRate {
				t.Errorf("refund rate = %d, want %d", resp.RefundRate, tt.wantRate)
			}
			if resp.RefundAmount != tt.wantAmount {
				t.Errorf("refund amount = %d, want %d", resp.RefundAmount, tt.wantAmount)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", resp.Status, tt.wantStatus)
			}

			if len(env.publisher.slotOpened) != 1 {
				t.Fatalf("expected one slot-opened event, got %d", len(env.publisher.slotOpened))
			}
			if env.publisher.slotOpened[0].Reason != "cancelled" {
				t.Errorf("event reason = %s, want cancelled", env.publisher.slotOpened[0].Reason)
			}
		})
	}
}

func TestCancelGuards(t *testing.T) {
	env := newBookingEnv()
	res := &entity.Reservation{
		Base:       entity.Base{ID: uuid.New()},
		SiteID:     env.site.ID,
		UserID:     "user-1",
		CheckIn:    monday.AddDate(0, 0, 10),
		CheckOut:   monday.AddDate(0, 0, 12),
		TotalPrice: 100000,
		Status:     entity.ReservationStatusRefunded,
	}
	env.reservations.rows[res.ID] = res

	cancelReq := &request.CancelReservationRequest{
		RefundBank:    "KB",
		RefundAccount: "110-1234",
		RefundHolder:  "Kim",
	}

	if _, err := env.service(monday).Cancel(context.Background(), "user-1", res.ID.String(), cancelReq); !errors.Is(err, repository.ErrStateConflict) {
		t.Errorf("cancel refunded reservation: expected ErrStateConflict, got %v", err)
	}

	res.Status = entity.ReservationStatusConfirmed
	if _, err := env.service(monday).Cancel(context.Background(), "user-2", res.ID.String(), cancelReq); !errors.Is(err, ErrForbidden) {
		t.Errorf("cancel foreign reservation: expected ErrForbidden, got %v", err)
	}

	// The repo guard checks the stored row, not the entity the service
	// already stamped with the refund status. A pending reservation must
	// still cancel cleanly.
	res.Status = entity.ReservationStatusPending
	resp, err := env.service(monday).Cancel(context.Background(), "user-1", res.ID.String(), cancelReq)
	if err != nil {
		t.Fatalf("cancel pending reservation: %v", err)
	}
	if resp.Status != entity.ReservationStatusRefundPending {
		t.Errorf("status = %s, want refund_pending", resp.Status)
	}
}

func TestConfirm(t *testing.T) {
	env := newBookingEnv()
	res := &entity.Reservation{
		Base:       entity.Base{ID: uuid.New()},
		Code:       "CAMP-TEST",
		SiteID:     env.site.ID,
		UserID:     "user-1",
		CheckIn:    monday.AddDate(0, 0, 10),
		CheckOut:   monday.AddDate(0, 0, 12),
		TotalPrice: 100000,
		Status:     entity.ReservationStatusPending,
	}
	env.reservations.rows[res.ID] = res
	svc := env.service(monday)

	if err := svc.Confirm(context.Background(), res.ID.String()); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if res.Status != entity.ReservationStatusConfirmed {
		t.Errorf("status = %s, want confirmed", res.Status)
	}
	if len(env.publisher.confirmed) != 1 {
		t.Fatalf("expected one confirmation event, got %d", len(env.publisher.confirmed))
	}

	if err := svc.Confirm(context.Background(), res.ID.String()); !errors.Is(err, repository.ErrStateConflict) {
		t.Errorf("second confirm: expected ErrStateConflict, got %v", err)
	}
}

func TestExpirePending(t *testing.T) {
	env := newBookingEnv()
	old := monday.Add(-8 * time.Hour)
	for i := 0; i < 2; i++ {
		res := &entity.Reservation{
			Base:     entity.Base{ID: uuid.New(), CreatedAt: old},
			SiteID:   env.site.ID,
			UserID:   "user-1",
			CheckIn:  monday.AddDate(0, 0, 10+3*i),
			CheckOut: monday.AddDate(0, 0, 12+3*i),
			Status:   entity.ReservationStatusPending,
		}
		env.reservations.rows[res.ID] = res
	}
	fresh := &entity.Reservation{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: monday.Add(-time.Hour)},
		SiteID:   env.site.ID,
		UserID:   "user-1",
		CheckIn:  monday.AddDate(0, 0, 20),
		CheckOut: monday.AddDate(0, 0, 22),
		Status:   entity.ReservationStatusPending,
	}
	env.reservations.rows[fresh.ID] = fresh

	svc := env.service(monday)

	count, err := svc.ExpirePending(context.Background())
	if err != nil {
		t.Fatalf("expire pending: %v", err)
	}
	if count != 2 {
		t.Errorf("expired = %d, want 2", count)
	}
	if len(env.publisher.slotOpened) != 2 {
		t.Errorf("expected 2 slot-opened events, got %d", len(env.publisher.slotOpened))
	}
	if fresh.Status != entity.ReservationStatusPending {
		t.Errorf("fresh reservation swept: status = %s", fresh.Status)
	}

	// Second sweep finds nothing.
	count, err = svc.ExpirePending(context.Background())
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if count != 0 {
		t.Errorf("second sweep expired = %d, want 0", count)
	}
}
