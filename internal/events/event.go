// Package events defines the messages the engine publishes when a
// reservation transitions. Delivery to guests is owned by the external
// notification dispatcher; the engine only makes transitions observable.
package events

const (
	QueueSlotOpened           = "reservation.slot_opened"
	QueueReservationConfirmed = "reservation.confirmed"
)

// SlotOpenedEvent is published when a cancellation or expiry frees a
// site/date range. The waitlist dispatcher consumes it and looks up the
// subscribers for the slot.
type SlotOpenedEvent struct {
	ReservationID string `json:"reservation_id"`
	SiteID        string `json:"site_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Reason        string `json:"reason"`
	OccurredAt    string `json:"occurred_at"`
}

// ReservationConfirmedEvent is published on admin confirmation. The loyalty
// wallet consumer grants XP/token rewards from it.
type ReservationConfirmedEvent struct {
	ReservationID string `json:"reservation_id"`
	Code          string `json:"code"`
	UserID        string `json:"user_id"`
	SiteID        string `json:"site_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	TotalPrice    int64  `json:"total_price"`
	ConfirmedAt   string `json:"confirmed_at"`
}
