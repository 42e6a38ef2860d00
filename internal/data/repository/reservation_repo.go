package repository

import (
	"context"
	"fmt"
	"time"

	"campsite-booking/internal/data/entity"
	"campsite-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	// CreateIfAvailable runs the server-side atomic check-and-insert. The
	// overlap check and the insert execute as one unit inside the
	// create_reservation_if_available function, so two concurrent requests
	// for the same site/date range can never both succeed. Returns
	// ErrAlreadyBooked or ErrConcurrentRequest as expected outcomes.
	CreateIfAvailable(ctx context.Context, reservation *entity.Reservation) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByCode(ctx context.Context, code string) (*entity.Reservation, error)
	FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Reservation, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	FindAll(ctx context.Context, status entity.ReservationStatus, limit, offset int) ([]*entity.Reservation, error)
	Count(ctx context.Context, status entity.ReservationStatus) (int64, error)

	// FindOccupyingBySite returns the occupying ledger rows touching
	// [from, to) on one site; the availability checker and end-cap helper
	// read through this.
	FindOccupyingBySite(ctx context.Context, siteID uuid.UUID, from, to time.Time) ([]*entity.Reservation, error)
	FindOccupyingByRange(ctx context.Context, from, to time.Time) ([]*entity.Reservation, error)

	// UpdateStatusIf performs a guarded transition; ErrStateConflict when
	// the reservation is no longer in the expected state.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, expected, next entity.ReservationStatus) error

	// RequestRefund moves a pending or confirmed reservation to
	// refund_pending, recording the computed refund and bank details.
	RequestRefund(ctx context.Context, reservation *entity.Reservation) error

	// ExpirePending cancels pending reservations created before the
	// deadline and returns the expired rows. Idempotent: terminal rows
	// never match the guard.
	ExpirePending(ctx context.Context, deadline time.Time) ([]*entity.Reservation, error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, code, site_id, user_id, check_in, check_out, family_count, visitor_count, vehicle_count,
	total_price, guest_name, guest_phone, request_note, status,
	refund_bank, refund_account, refund_holder, refund_rate, refund_amount, cancel_reason,
	created_at, updated_at`

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var res entity.Reservation
	err := row.Scan(
		&res.ID,
		&res.Code,
		&res.SiteID,
		&res.UserID,
		&res.CheckIn,
		&res.CheckOut,
		&res.FamilyCount,
		&res.VisitorCount,
		&res.VehicleCount,
		&res.TotalPrice,
		&res.GuestName,
		&res.GuestPhone,
		&res.RequestNote,
		&res.Status,
		&res.RefundBank,
		&res.RefundAccount,
		&res.RefundHolder,
		&res.RefundRate,
		&res.RefundAmount,
		&res.CancelReason,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) CreateIfAvailable(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		SELECT status FROM create_reservation_if_available(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
	`

	var status string
	err := r.db.QueryRow(ctx, query,
		reservation.ID,
		reservation.Code,
		reservation.SiteID,
		reservation.UserID,
		reservation.CheckIn,
		reservation.CheckOut,
		reservation.FamilyCount,
		reservation.VisitorCount,
		reservation.VehicleCount,
		reservation.TotalPrice,
		reservation.GuestName,
		reservation.GuestPhone,
		reservation.RequestNote,
	).Scan(&status)

	if err != nil {
		r.log.Error("Failed to run atomic reservation insert",
			zap.Error(err),
			zap.String("site_id", reservation.SiteID.String()),
			zap.String("code", reservation.Code),
		)
		return fmt.Errorf("create reservation %s: %w", reservation.Code, err)
	}

	switch status {
	case "ok":
		return nil
	case "overlap":
		return ErrAlreadyBooked
	case "locked":
		return ErrConcurrentRequest
	default:
		return fmt.Errorf("create reservation %s: unexpected status %q", reservation.Code, status)
	}
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return res, nil
}

func (r *reservationRepository) FindByCode(ctx context.Context, code string) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE code = $1`

	res, err := scanReservation(r.db.QueryRow(ctx, query, code))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find reservation by code %s: %w", code, err)
	}

	return res, nil
}

func (r *reservationRepository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.findMany(ctx, query, userID, limit, offset)
}

func (r *reservationRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations by user ID",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return 0, fmt.Errorf("count reservations by user ID %s: %w", userID, err)
	}

	return count, nil
}

func (r *reservationRepository) FindAll(ctx context.Context, status entity.ReservationStatus, limit, offset int) ([]*entity.Reservation, error) {
	if status == "" {
		query := `
			SELECT ` + reservationColumns + `
			FROM reservations
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2
		`
		return r.findMany(ctx, query, limit, offset)
	}

	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.findMany(ctx, query, status, limit, offset)
}

func (r *reservationRepository) Count(ctx context.Context, status entity.ReservationStatus) (int64, error) {
	var count int64
	var err error
	if status == "" {
		err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&count)
	} else {
		err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations WHERE status = $1`, status).Scan(&count)
	}
	if err != nil {
		r.log.Error("Failed to count reservations", zap.Error(err))
		return 0, fmt.Errorf("count reservations: %w", err)
	}
	return count, nil
}

func (r *reservationRepository) FindOccupyingBySite(ctx context.Context, siteID uuid.UUID, from, to time.Time) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE site_id = $1
		  AND status IN ('pending', 'confirmed', 'completed', 'no_show')
		  AND check_in < $3 AND check_out > $2
		ORDER BY check_in
	`

	return r.findMany(ctx, query, siteID, from, to)
}

func (r *reservationRepository) FindOccupyingByRange(ctx context.Context, from, to time.Time) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE status IN ('pending', 'confirmed', 'completed', 'no_show')
		  AND check_in < $2 AND check_out > $1
		ORDER BY site_id, check_in
	`

	return r.findMany(ctx, query, from, to)
}

func (r *reservationRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query reservations", zap.Error(err))
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, nil
}

func (r *reservationRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, expected, next entity.ReservationStatus) error {
	query := `UPDATE reservations SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, id, expected, next)
	if err != nil {
		r.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
			zap.String("next", string(next)),
		)
		return fmt.Errorf("update reservation %s status to %s: %w", id.String(), string(next), err)
	}

	if result.RowsAffected() == 0 {
		return ErrStateConflict
	}

	return nil
}

func (r *reservationRepository) RequestRefund(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET status = $2, refund_bank = $3, refund_account = $4, refund_holder = $5,
		    refund_rate = $6, refund_amount = $7, cancel_reason = $8, updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', 'confirmed')
	`

	result, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.Status,
		reservation.RefundBank,
		reservation.RefundAccount,
		reservation.RefundHolder,
		reservation.RefundRate,
		reservation.RefundAmount,
		reservation.CancelReason,
	)

	if err != nil {
		r.log.Error("Failed to request refund",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
		return fmt.Errorf("request refund for reservation %s: %w", reservation.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrStateConflict
	}

	return nil
}

func (r *reservationRepository) ExpirePending(ctx context.Context, deadline time.Time) ([]*entity.Reservation, error) {
	query := `
		UPDATE reservations
		SET status = 'cancelled', cancel_reason = 'payment deadline passed', updated_at = NOW()
		WHERE status = 'pending' AND created_at < $1
		RETURNING ` + reservationColumns + `
	`

	rows, err := r.db.Query(ctx, query, deadline)
	if err != nil {
		r.log.Error("Failed to expire pending reservations", zap.Error(err))
		return nil, fmt.Errorf("expire pending reservations: %w", err)
	}
	defer rows.Close()

	var expired []*entity.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan expired reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan expired reservation row: %w", err)
		}
		expired = append(expired, res)
	}

	return expired, nil
}
