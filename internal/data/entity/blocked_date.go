package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlockedDate is an administrative override making a site unavailable on a
// date regardless of any rule or pricing outcome.
type BlockedDate struct {
	BaseSimple
	SiteID uuid.UUID `db:"site_id"`
	Date   time.Time `db:"blocked_date"`
	Memo   string    `db:"memo"`
}
