package entity

// Site is a catalog entry for one campsite pitch. Edited only by an
// administrator; the booking flow never mutates it.
type Site struct {
	Base
	Name         string   `db:"name"`
	SiteType     string   `db:"site_type"`
	WeekdayPrice int64    `db:"weekday_price"`
	WeekendPrice int64    `db:"weekend_price"`
	MaxOccupancy int      `db:"max_occupancy"`
	Features     []string `db:"features"`
	IsActive     bool     `db:"is_active"`
}
