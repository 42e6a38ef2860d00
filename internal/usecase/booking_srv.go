package usecase

import (
	"context"
	"fmt"
	"time"

	"campsite-booking/internal/data/entity"
	"campsite-booking/internal/data/repository"
	"campsite-booking/internal/dto/request"
	"campsite-booking/internal/dto/response"
	"campsite-booking/internal/events"
	"campsite-booking/internal/rules"
	"campsite-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Quote prices a candidate stay without committing anything. Pure read:
	// identical requests against the same config produce identical quotes.
	Quote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error)

	// CreateReservation runs the full gate sequence (window, blocked dates,
	// stay rule, price) and then the atomic check-and-insert. Returns
	// repository.ErrAlreadyBooked or repository.ErrConcurrentRequest when
	// the dates are lost to another request.
	CreateReservation(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	GetUserReservations(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	GetReservation(ctx context.Context, userID, reservationID string) (*response.ReservationResponse, error)

	// PreviewRefund shows what a cancellation made right now would pay out.
	PreviewRefund(ctx context.Context, userID, reservationID string) (*response.RefundPreviewResponse, error)
	// Cancel applies the refund tier at the moment of the call and frees
	// the dates. A zero refund cancels outright; anything else parks the
	// reservation in refund_pending until the wire transfer is sent.
	Cancel(ctx context.Context, userID, reservationID string, req *request.CancelReservationRequest) (*response.ReservationResponse, error)

	// Admin transitions. Each is guarded: the row must still be in the
	// expected state or the call fails with repository.ErrStateConflict.
	ListReservations(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	GetReservationByCode(ctx context.Context, code string) (*response.ReservationResponse, error)
	Confirm(ctx context.Context, reservationID string) error
	CompleteRefund(ctx context.Context, reservationID string) error
	Complete(ctx context.Context, reservationID string) error
	MarkNoShow(ctx context.Context, reservationID string) error

	// ExpirePending cancels pending reservations older than the payment
	// deadline and returns how many were swept.
	ExpirePending(ctx context.Context) (int, error)
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	events EventPublisher
	now    func() time.Time
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, publisher EventPublisher, now func() time.Time, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		events: publisher,
		now:    now,
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Quote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Quote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), ErrValidation)
	}

	site, checkIn, checkOut, err := s.parseStay(ctx, req.SiteID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	quote, err := s.price(ctx, site, checkIn, checkOut, req.FamilyCount, req.VisitorCount)
	if err != nil {
		return nil, err
	}

	return &response.QuoteResponse{
		SiteID:   site.ID.String(),
		CheckIn:  checkIn.Format("2006-01-02"),
		CheckOut: checkOut.Format("2006-01-02"),
		Quote:    quote,
	}, nil
}

func (s *bookingService) CreateReservation(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), ErrValidation)
	}

	site, checkIn, checkOut, err := s.parseStay(ctx, req.SiteID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	loc := s.config.Location()
	now := s.now().In(loc)

	closeAt, err := s.checkWindow(ctx, now, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	blocked, err := s.repo.BlockedDate.ExistsInRange(ctx, site.ID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	if blocked {
		return nil, ErrSiteBlocked
	}

	if err := s.checkStayRule(ctx, site.ID, now, checkIn, checkOut, closeAt); err != nil {
		return nil, err
	}

	quote, err := s.price(ctx, site, checkIn, checkOut, req.FamilyCount, req.VisitorCount)
	if err != nil {
		return nil, err
	}

	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:         utils.GenerateReservationCode(),
		SiteID:       site.ID,
		UserID:       userID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		FamilyCount:  req.FamilyCount,
		VisitorCount: req.VisitorCount,
		VehicleCount: req.VehicleCount,
		TotalPrice:   quote.TotalPrice,
		GuestName:    req.GuestName,
		GuestPhone:   req.GuestPhone,
		RequestNote:  req.RequestNote,
		Status:       entity.ReservationStatusPending,
	}

	if err := s.repo.Reservation.CreateIfAvailable(ctx, reservation); err != nil {
		return nil, err
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("code", reservation.Code),
		zap.String("site_id", site.ID.String()),
		zap.String("user_id", userID),
		zap.Int64("total_price", reservation.TotalPrice),
	)

	resp := response.ReservationToResponse(reservation, site.Name)
	return &resp, nil
}

func (s *bookingService) GetUserReservations(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	reservations, err := s.repo.Reservation.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user reservations",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user reservations: %w", err)
	}

	total, err := s.repo.Reservation.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count user reservations: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, reservations), req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetReservation(ctx context.Context, userID, reservationID string) (*response.ReservationResponse, error) {
	reservation, err := s.findOwned(ctx, userID, reservationID)
	if err != nil {
		return nil, err
	}

	resp := response.ReservationToResponse(reservation, s.siteName(ctx, reservation.SiteID))
	return &resp, nil
}

func (s *bookingService) PreviewRefund(ctx context.Context, userID, reservationID string) (*response.RefundPreviewResponse, error) {
	reservation, err := s.findOwned(ctx, userID, reservationID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.config.Location())
	rate := rules.RefundRate(reservation.CheckIn, now)

	return &response.RefundPreviewResponse{
		RefundRate:   rate,
		RefundAmount: rules.RefundAmount(reservation.TotalPrice, rate),
	}, nil
}

func (s *bookingService) Cancel(ctx context.Context, userID, reservationID string, req *request.CancelReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Cancel reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), ErrValidation)
	}

	reservation, err := s.findOwned(ctx, userID, reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.Status != entity.ReservationStatusPending && reservation.Status != entity.ReservationStatusConfirmed {
		return nil, repository.ErrStateConflict
	}

	now := s.now().In(s.config.Location())
	rate := rules.RefundRate(reservation.CheckIn, now)

	reservation.RefundBank = req.RefundBank
	reservation.RefundAccount = req.RefundAccount
	reservation.RefundHolder = req.RefundHolder
	reservation.RefundRate = rate
	reservation.RefundAmount = rules.RefundAmount(reservation.TotalPrice, rate)
	reservation.CancelReason = req.CancelReason

	// Nothing to pay out means nothing to track: skip refund_pending.
	if reservation.RefundAmount > 0 {
		reservation.Status = entity.ReservationStatusRefundPending
	} else {
		reservation.Status = entity.ReservationStatusCancelled
	}

	if err := s.repo.Reservation.RequestRefund(ctx, reservation); err != nil {
		return nil, err
	}

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("code", reservation.Code),
		zap.Int("refund_rate", rate),
		zap.Int64("refund_amount", reservation.RefundAmount),
	)

	s.publishSlotOpened(ctx, reservation, "cancelled")

	resp := response.ReservationToResponse(reservation, s.siteName(ctx, reservation.SiteID))
	return &resp, nil
}

func (s *bookingService) ListReservations(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	filter := entity.ReservationStatus(status)

	reservations, err := s.repo.Reservation.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	total, err := s.repo.Reservation.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, reservations), req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetReservationByCode(ctx context.Context, code string) (*response.ReservationResponse, error) {
	reservation, err := s.repo.Reservation.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get reservation by code %s: %w", code, err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", code, ErrNotFound)
	}

	resp := response.ReservationToResponse(reservation, s.siteName(ctx, reservation.SiteID))
	return &resp, nil
}

func (s *bookingService) Confirm(ctx context.Context, reservationID string) error {
	reservation, err := s.findByID(ctx, reservationID)
	if err != nil {
		return err
	}

	if err := s.repo.Reservation.UpdateStatusIf(ctx, reservation.ID,
		entity.ReservationStatusPending, entity.ReservationStatusConfirmed); err != nil {
		return err
	}

	s.log.Info("Reservation confirmed",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("code", reservation.Code),
	)

	if s.events != nil {
		now := s.now()
		err := s.events.PublishReservationConfirmed(ctx, events.ReservationConfirmedEvent{
			ReservationID: reservation.ID.String(),
			Code:          reservation.Code,
			UserID:        reservation.UserID,
			SiteID:        reservation.SiteID.String(),
			CheckIn:       reservation.CheckIn.Format("2006-01-02"),
			CheckOut:      reservation.CheckOut.Format("2006-01-02"),
			TotalPrice:    reservation.TotalPrice,
			ConfirmedAt:   now.UTC().Format(time.RFC3339),
		})
		if err != nil {
			s.log.Warn("Failed to publish confirmation event", zap.Error(err))
		}
	}

	return nil
}

func (s *bookingService) CompleteRefund(ctx context.Context, reservationID string) error {
	return s.transition(ctx, reservationID,
		entity.ReservationStatusRefundPending, entity.ReservationStatusRefunded)
}

func (s *bookingService) Complete(ctx context.Context, reservationID string) error {
	return s.transition(ctx, reservationID,
		entity.ReservationStatusConfirmed, entity.ReservationStatusCompleted)
}

func (s *bookingService) MarkNoShow(ctx context.Context, reservationID string) error {
	return s.transition(ctx, reservationID,
		entity.ReservationStatusConfirmed, entity.ReservationStatusNoShow)
}

func (s *bookingService) ExpirePending(ctx context.Context) (int, error) {
	deadline := s.now().Add(-time.Duration(s.config.Booking.PendingExpiryHours) * time.Hour)

	expired, err := s.repo.Reservation.ExpirePending(ctx, deadline)
	if err != nil {
		return 0, err
	}

	for _, reservation := range expired {
		s.log.Info("Pending reservation expired",
			zap.String("reservation_id", reservation.ID.String()),
			zap.String("code", reservation.Code),
		)
		s.publishSlotOpened(ctx, reservation, "expired")
	}

	return len(expired), nil
}

// ==================== HELPER METHODS ====================

// parseStay resolves the site and date range shared by quoting and booking.
func (s *bookingService) parseStay(ctx context.Context, siteID, checkIn, checkOut string) (*entity.Site, time.Time, time.Time, error) {
	var zero time.Time

	id, err := uuid.Parse(siteID)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("invalid site ID format %s: %w", siteID, ErrValidation)
	}

	loc := s.config.Location()
	from, err := utils.ParseDate(checkIn, loc)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("invalid check-in date %s: %w", checkIn, ErrValidation)
	}
	to, err := utils.ParseDate(checkOut, loc)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("invalid check-out date %s: %w", checkOut, ErrValidation)
	}
	if !from.Before(to) {
		return nil, zero, zero, fmt.Errorf("check-out must be after check-in: %w", ErrValidation)
	}

	site, err := s.repo.Site.FindByID(ctx, id)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("get site %s: %w", siteID, err)
	}
	if site == nil || !site.IsActive {
		return nil, zero, zero, fmt.Errorf("site %s: %w", siteID, ErrNotFound)
	}

	return site, from, to, nil
}

// checkWindow gates the booking against the resolved window and returns
// closeAt for the stay-rule check. All requested nights must fall before the
// window close.
func (s *bookingService) checkWindow(ctx context.Context, now, checkIn, checkOut time.Time) (time.Time, error) {
	rule, err := s.repo.OpenDayRule.FindActive(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("create reservation: %w", err)
	}
	if rule == nil {
		return time.Time{}, ErrSeasonClosed
	}

	state, _, closeAt := rules.WindowStateAt(rule, now)
	switch state {
	case rules.WindowPreOpen:
		return time.Time{}, ErrPreOpen
	case rules.WindowClosed:
		return time.Time{}, ErrSeasonClosed
	}

	if rules.DateOnly(checkIn).Before(rules.DateOnly(now)) {
		return time.Time{}, fmt.Errorf("check-in is in the past: %w", ErrValidation)
	}

	lastNight := rules.DateOnly(checkOut).AddDate(0, 0, -1)
	if !closeAt.IsZero() && !lastNight.Before(closeAt) {
		return time.Time{}, ErrSeasonClosed
	}

	return closeAt, nil
}

// checkStayRule re-derives both exceptions from the site's ledger at commit
// time, so the verdict can never disagree with the calendar read path.
func (s *bookingService) checkStayRule(ctx context.Context, siteID uuid.UUID, now, checkIn, checkOut, closeAt time.Time) error {
	ledgerEnd := checkOut
	if capEnd := rules.DateOnly(checkIn).AddDate(0, 0, 2); capEnd.After(ledgerEnd) {
		ledgerEnd = capEnd
	}
	ledger, err := s.repo.Reservation.FindOccupyingBySite(ctx, siteID, checkIn, ledgerEnd)
	if err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}

	verdict := rules.CheckStayRule(rules.StayRuleInput{
		CheckIn:               &checkIn,
		CheckOut:              &checkOut,
		Now:                   now,
		ImminentDays:          s.config.Booking.ImminentDays,
		HasEndCapAvailability: rules.EndCapAvailability(ledger, checkIn),
		IsNextDayBlocked:      rules.NextDayBlocked(checkIn, closeAt),
	})
	if verdict.IsBlocked {
		return ErrRuleViolation
	}
	return nil
}

func (s *bookingService) price(ctx context.Context, site *entity.Site, checkIn, checkOut time.Time, familyCount, visitorCount int) (rules.Quote, error) {
	cfg, err := s.repo.PricingConfig.Get(ctx)
	if err != nil {
		return rules.Quote{}, fmt.Errorf("get pricing config: %w", err)
	}
	if cfg == nil {
		return rules.Quote{}, fmt.Errorf("pricing config: %w", ErrNotFound)
	}

	seasons, err := s.repo.PricingConfig.ListSeasons(ctx)
	if err != nil {
		return rules.Quote{}, fmt.Errorf("list seasons: %w", err)
	}

	holidays, err := s.repo.Holiday.FindBetween(ctx, checkIn, checkOut)
	if err != nil {
		return rules.Quote{}, fmt.Errorf("find holidays: %w", err)
	}

	card := rules.RateCardFor(site, cfg)
	return rules.CalculateQuote(card, cfg, seasons, rules.HolidaySet(holidays), checkIn, checkOut, familyCount, visitorCount), nil
}

func (s *bookingService) findByID(ctx context.Context, reservationID string) (*entity.Reservation, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, ErrValidation)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation %s: %w", reservationID, err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
	}
	return reservation, nil
}

func (s *bookingService) findOwned(ctx context.Context, userID, reservationID string) (*entity.Reservation, error) {
	reservation, err := s.findByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.UserID != userID {
		return nil, ErrForbidden
	}
	return reservation, nil
}

func (s *bookingService) transition(ctx context.Context, reservationID string, expected, next entity.ReservationStatus) error {
	reservation, err := s.findByID(ctx, reservationID)
	if err != nil {
		return err
	}

	if err := s.repo.Reservation.UpdateStatusIf(ctx, reservation.ID, expected, next); err != nil {
		return err
	}

	s.log.Info("Reservation transitioned",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("code", reservation.Code),
		zap.String("from", string(expected)),
		zap.String("to", string(next)),
	)
	return nil
}

func (s *bookingService) publishSlotOpened(ctx context.Context, reservation *entity.Reservation, reason string) {
	if s.events == nil {
		return
	}

	err := s.events.PublishSlotOpened(ctx, events.SlotOpenedEvent{
		ReservationID: reservation.ID.String(),
		SiteID:        reservation.SiteID.String(),
		CheckIn:       reservation.CheckIn.Format("2006-01-02"),
		CheckOut:      reservation.CheckOut.Format("2006-01-02"),
		Reason:        reason,
		OccurredAt:    s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		s.log.Warn("Failed to publish slot-opened event", zap.Error(err))
	}
}

func (s *bookingService) siteName(ctx context.Context, siteID uuid.UUID) string {
	site, err := s.repo.Site.FindByID(ctx, siteID)
	if err != nil {
		s.log.Warn("Failed to load site name",
			zap.String("site_id", siteID.String()),
			zap.Error(err),
		)
		return ""
	}
	if site == nil {
		return ""
	}
	return site.Name
}

func (s *bookingService) toResponses(ctx context.Context, reservations []*entity.Reservation) []response.ReservationResponse {
	names := make(map[uuid.UUID]string)
	responses := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		name, ok := names[reservation.SiteID]
		if !ok {
			name = s.siteName(ctx, reservation.SiteID)
			names[reservation.SiteID] = name
		}
		responses[i] = response.ReservationToResponse(reservation, name)
	}
	return responses
}
