package rules

import (
	"time"

	"campsite-booking/internal/data/entity"
)

const dateLayout = "2006-01-02"

// DateOnly truncates an instant to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Nights returns the stay length of [checkIn, checkOut) in nights.
func Nights(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
}

// DaysUntil returns whole days from now's date to the target date. Negative
// when the target is in the past.
func DaysUntil(target, now time.Time) int {
	return int(DateOnly(target).Sub(DateOnly(now)).Hours() / 24)
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// HolidaySet indexes public holidays by date for nightly classification.
func HolidaySet(holidays []entity.Holiday) map[string]bool {
	set := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		set[DateOnly(h.Date).Format(dateLayout)] = true
	}
	return set
}

// IsWeekendNight classifies a night. Friday, Saturday and Sunday nights and
// public holidays all charge the weekend rate.
func IsWeekendNight(date time.Time, holidays map[string]bool) bool {
	switch date.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	}
	return holidays[DateOnly(date).Format(dateLayout)]
}

// InSeason reports whether the date falls inside any peak window. Windows
// are month/day pairs, inclusive on both ends, and may wrap the year end.
func InSeason(date time.Time, seasons []entity.Season) bool {
	md := int(date.Month())*100 + date.Day()
	for _, s := range seasons {
		start := s.StartMonth*100 + s.StartDay
		end := s.EndMonth*100 + s.EndDay
		if start <= end {
			if md >= start && md <= end {
				return true
			}
		} else {
			// Wraps the year end, e.g. Dec 20 - Jan 5.
			if md >= start || md <= end {
				return true
			}
		}
	}
	return false
}
