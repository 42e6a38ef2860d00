package usecase

import (
	"context"
	"sync"
	"time"

	"campsite-booking/internal/data/entity"
	"campsite-booking/internal/data/repository"
	"campsite-booking/internal/events"
	"campsite-booking/internal/rules"
	"campsite-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository stubs. The reservation stub serializes
// CreateIfAvailable behind a mutex, mirroring what the database function
// does with its advisory lock.

type stubSiteRepo struct {
	sites map[uuid.UUID]*entity.Site
}

func newStubSiteRepo(sites ...*entity.Site) *stubSiteRepo {
	repo := &stubSiteRepo{sites: make(map[uuid.UUID]*entity.Site)}
	for _, site := range sites {
		repo.sites[site.ID] = site
	}
	return repo
}

func (r *stubSiteRepo) Create(_ context.Context, site *entity.Site) error {
	r.sites[site.ID] = site
	return nil
}

func (r *stubSiteRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Site, error) {
	return r.sites[id], nil
}

func (r *stubSiteRepo) FindAllActive(_ context.Context) ([]*entity.Site, error) {
	var active []*entity.Site
	for _, site := range r.sites {
		if site.IsActive {
			active = append(active, site)
		}
	}
	return active, nil
}

func (r *stubSiteRepo) FindAll(_ context.Context) ([]*entity.Site, error) {
	var all []*entity.Site
	for _, site := range r.sites {
		all = append(all, site)
	}
	return all, nil
}

func (r *stubSiteRepo) Update(_ context.Context, site *entity.Site) error {
	r.sites[site.ID] = site
	return nil
}

type stubPricingRepo struct {
	cfg     *entity.PricingConfig
	seasons []entity.Season
}

func (r *stubPricingRepo) Get(_ context.Context) (*entity.PricingConfig, error) {
	return r.cfg, nil
}

func (r *stubPricingRepo) Update(_ context.Context, cfg *entity.PricingConfig) error {
	r.cfg = cfg
	return nil
}

func (r *stubPricingRepo) ListSeasons(_ context.Context) ([]entity.Season, error) {
	return r.seasons, nil
}

func (r *stubPricingRepo) CreateSeason(_ context.Context, season *entity.Season) error {
	r.seasons = append(r.seasons, *season)
	return nil
}

func (r *stubPricingRepo) DeleteSeason(_ context.Context, id uuid.UUID) error {
	for i, season := range r.seasons {
		if season.ID == id {
			r.seasons = append(r.seasons[:i], r.seasons[i+1:]...)
			break
		}
	}
	return nil
}

type stubHolidayRepo struct {
	holidays []entity.Holiday
}

func (r *stubHolidayRepo) FindBetween(_ context.Context, from, to time.Time) ([]entity.Holiday, error) {
	var out []entity.Holiday
	for _, h := range r.holidays {
		if !h.Date.Before(from) && h.Date.Before(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *stubHolidayRepo) Create(_ context.Context, holiday *entity.Holiday) error {
	r.holidays = append(r.holidays, *holiday)
	return nil
}

func (r *stubHolidayRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, h := range r.holidays {
		if h.ID == id {
			r.holidays = append(r.holidays[:i], r.holidays[i+1:]...)
			break
		}
	}
	return nil
}

type stubRuleRepo struct {
	rule *entity.OpenDayRule
}

func (r *stubRuleRepo) FindActive(_ context.Context) (*entity.OpenDayRule, error) {
	return r.rule, nil
}

func (r *stubRuleRepo) Create(_ context.Context, rule *entity.OpenDayRule) error {
	r.rule = rule
	return nil
}

type stubReservationRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.Reservation
}

func newStubReservationRepo(rows ...*entity.Reservation) *stubReservationRepo {
	repo := &stubReservationRepo{rows: make(map[uuid.UUID]*entity.Reservation)}
	for _, row := range rows {
		repo.rows[row.ID] = row
	}
	return repo
}

func (r *stubReservationRepo) CreateIfAvailable(_ context.Context, reservation *entity.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.SiteID == reservation.SiteID && row.Status.Occupying() &&
			rules.Overlaps(row.CheckIn, row.CheckOut, reservation.CheckIn, reservation.CheckOut) {
			return repository.ErrAlreadyBooked
		}
	}
	r.rows[reservation.ID] = reservation
	return nil
}

// Reads return copies, like rows scanned off the wire. Services mutate the
// entities they fetch before writing them back, and that must never reach
// the stored row until the write method runs.
func (r *stubReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *row
	return &clone, nil
}

func (r *stubReservationRepo) FindByCode(_ context.Context, code string) (*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Code == code {
			clone := *row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubReservationRepo) FindByUserID(_ context.Context, userID string, limit, offset int) ([]*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Reservation
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubReservationRepo) CountByUserID(_ context.Context, userID string) (int64, error) {
	rows, _ := r.FindByUserID(context.Background(), userID, 0, 0)
	return int64(len(rows)), nil
}

func (r *stubReservationRepo) FindAll(_ context.Context, status entity.ReservationStatus, limit, offset int) ([]*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Reservation
	for _, row := range r.rows {
		if status == "" || row.Status == status {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubReservationRepo) Count(_ context.Context, status entity.ReservationStatus) (int64, error) {
	rows, _ := r.FindAll(context.Background(), status, 0, 0)
	return int64(len(rows)), nil
}

func (r *stubReservationRepo) FindOccupyingBySite(_ context.Context, siteID uuid.UUID, from, to time.Time) ([]*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Reservation
	for _, row := range r.rows {
		if row.SiteID == siteID && row.Status.Occupying() && rules.Overlaps(row.CheckIn, row.CheckOut, from, to) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubReservationRepo) FindOccupyingByRange(_ context.Context, from, to time.Time) ([]*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Reservation
	for _, row := range r.rows {
		if row.Status.Occupying() && rules.Overlaps(row.CheckIn, row.CheckOut, from, to) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubReservationRepo) UpdateStatusIf(_ context.Context, id uuid.UUID, expected, next entity.ReservationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.Status != expected {
		return repository.ErrStateConflict
	}
	row.Status = next
	return nil
}

func (r *stubReservationRepo) RequestRefund(_ context.Context, reservation *entity.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[reservation.ID]
	if !ok {
		return repository.ErrStateConflict
	}
	if row.Status != entity.ReservationStatusPending && row.Status != entity.ReservationStatusConfirmed {
		return repository.ErrStateConflict
	}
	*row = *reservation
	return nil
}

func (r *stubReservationRepo) ExpirePending(_ context.Context, deadline time.Time) ([]*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var expired []*entity.Reservation
	for _, row := range r.rows {
		if row.Status == entity.ReservationStatusPending && row.CreatedAt.Before(deadline) {
			row.Status = entity.ReservationStatusCancelled
			row.CancelReason = "payment deadline passed"
			expired = append(expired, row)
		}
	}
	return expired, nil
}

type stubBlockedRepo struct {
	blocked []entity.BlockedDate
}

func (r *stubBlockedRepo) Create(_ context.Context, blocked *entity.BlockedDate) error {
	r.blocked = append(r.blocked, *blocked)
	return nil
}

func (r *stubBlockedRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, b := range r.blocked {
		if b.ID == id {
			r.blocked = append(r.blocked[:i], r.blocked[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubBlockedRepo) FindBySiteAndRange(_ context.Context, siteID uuid.UUID, from, to time.Time) ([]entity.BlockedDate, error) {
	var out []entity.BlockedDate
	for _, b := range r.blocked {
		if b.SiteID == siteID && !b.Date.Before(from) && b.Date.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBlockedRepo) ExistsInRange(ctx context.Context, siteID uuid.UUID, from, to time.Time) (bool, error) {
	out, _ := r.FindBySiteAndRange(ctx, siteID, from, to)
	return len(out) > 0, nil
}

type stubWaitlistRepo struct {
	entries []entity.WaitlistEntry
}

func waitlistKeyMatch(entry entity.WaitlistEntry, userID string, targetDate time.Time, siteID *uuid.UUID) bool {
	if entry.UserID != userID || !entry.TargetDate.Equal(targetDate) {
		return false
	}
	if entry.SiteID == nil || siteID == nil {
		return entry.SiteID == nil && siteID == nil
	}
	return *entry.SiteID == *siteID
}

func (r *stubWaitlistRepo) Register(_ context.Context, entry *entity.WaitlistEntry) error {
	for _, existing := range r.entries {
		if waitlistKeyMatch(existing, entry.UserID, entry.TargetDate, entry.SiteID) {
			return nil
		}
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubWaitlistRepo) Deregister(_ context.Context, userID string, targetDate time.Time, siteID *uuid.UUID) error {
	for i, entry := range r.entries {
		if waitlistKeyMatch(entry, userID, targetDate, siteID) {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubWaitlistRepo) FindByUser(_ context.Context, userID string) ([]entity.WaitlistEntry, error) {
	var out []entity.WaitlistEntry
	for _, entry := range r.entries {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *stubWaitlistRepo) FindSubscribers(_ context.Context, targetDate time.Time, siteID uuid.UUID) ([]entity.WaitlistEntry, error) {
	var out []entity.WaitlistEntry
	for _, entry := range r.entries {
		if !entry.TargetDate.Equal(targetDate) {
			continue
		}
		if entry.SiteID == nil || *entry.SiteID == siteID {
			out = append(out, entry)
		}
	}
	return out, nil
}

type stubPublisher struct {
	mu         sync.Mutex
	slotOpened []events.SlotOpenedEvent
	confirmed  []events.ReservationConfirmedEvent
}

func (p *stubPublisher) PublishSlotOpened(_ context.Context, event events.SlotOpenedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slotOpened = append(p.slotOpened, event)
	return nil
}

func (p *stubPublisher) PublishReservationConfirmed(_ context.Context, event events.ReservationConfirmedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.confirmed = append(p.confirmed, event)
	return nil
}

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{TimeZone: "UTC"},
		Booking: utils.BookingConfig{
			ImminentDays:       3,
			PendingExpiryHours: 6,
		},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
