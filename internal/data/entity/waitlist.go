package entity

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistEntry records a user's interest in a full date. SiteID nil means
// "any site". Unique per (user, date, site); the registrar treats duplicate
// inserts as already-registered.
type WaitlistEntry struct {
	BaseSimple
	UserID     string     `db:"user_id"`
	TargetDate time.Time  `db:"target_date"`
	SiteID     *uuid.UUID `db:"site_id"`
}
