package entity

import (
	"github.com/google/uuid"
)

// PricingConfig is the global rate card. Single row, admin-edited, always
// re-read at quote time so a quote reflects the current config. All amounts
// are integer currency units.
type PricingConfig struct {
	Base
	WeekdayRate          int64 `db:"weekday_rate"`
	WeekendRate          int64 `db:"weekend_rate"`
	PeakWeekdayRate      int64 `db:"peak_weekday_rate"`
	PeakWeekendRate      int64 `db:"peak_weekend_rate"`
	ExtraFamilySurcharge int64 `db:"extra_family_surcharge"` // per extra family, per night
	VisitorSurcharge     int64 `db:"visitor_surcharge"`      // per head, one-time
	LongStayDiscount     int64 `db:"long_stay_discount"`     // per night, flat
}

// Season is a named peak window recurring yearly, inclusive on both ends.
// A window may wrap the year end (e.g. Dec 20 - Jan 5).
type Season struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	StartMonth int       `db:"start_month"`
	StartDay   int       `db:"start_day"`
	EndMonth   int       `db:"end_month"`
	EndDay     int       `db:"end_day"`
}
