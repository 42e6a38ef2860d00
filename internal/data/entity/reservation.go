package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending       ReservationStatus = "pending"
	ReservationStatusConfirmed     ReservationStatus = "confirmed"
	ReservationStatusCompleted     ReservationStatus = "completed"
	ReservationStatusCancelled     ReservationStatus = "cancelled"
	ReservationStatusRefundPending ReservationStatus = "refund_pending"
	ReservationStatusRefunded      ReservationStatus = "refunded"
	ReservationStatusNoShow        ReservationStatus = "no_show"
)

// IsTerminal reports whether no further transition is allowed.
func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case ReservationStatusCancelled, ReservationStatusRefunded,
		ReservationStatusCompleted, ReservationStatusNoShow:
		return true
	}
	return false
}

// Occupying reports whether the reservation still holds its dates. Only
// occupying reservations count for the overlap invariant.
func (s ReservationStatus) Occupying() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCompleted, ReservationStatusNoShow:
		return true
	}
	return false
}

// Reservation is one row of the booking ledger. CheckOut is exclusive:
// nights = CheckOut - CheckIn in days. Rows are never hard-deleted; the
// lifecycle is driven entirely by Status.
type Reservation struct {
	Base
	Code         string            `db:"code"`
	SiteID       uuid.UUID         `db:"site_id"`
	UserID       string            `db:"user_id"`
	CheckIn      time.Time         `db:"check_in"`
	CheckOut     time.Time         `db:"check_out"`
	FamilyCount  int               `db:"family_count"`
	VisitorCount int               `db:"visitor_count"`
	VehicleCount int               `db:"vehicle_count"`
	TotalPrice   int64             `db:"total_price"`
	GuestName    string            `db:"guest_name"`
	GuestPhone   string            `db:"guest_phone"`
	RequestNote  string            `db:"request_note"`
	Status       ReservationStatus `db:"status"`

	// Populated once a cancellation is requested.
	RefundBank    string `db:"refund_bank"`
	RefundAccount string `db:"refund_account"`
	RefundHolder  string `db:"refund_holder"`
	RefundRate    int    `db:"refund_rate"`
	RefundAmount  int64  `db:"refund_amount"`
	CancelReason  string `db:"cancel_reason"`
}

// Nights returns the stay length in nights.
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}
