package rules

import (
	"time"

	"campsite-booking/internal/data/entity"
)

// StayRuleInput is a candidate stay to check against the weekend
// minimum-stay rule. CheckIn/CheckOut may be nil while the user is still
// picking dates; an incomplete range is never blocked.
type StayRuleInput struct {
	CheckIn  *time.Time
	CheckOut *time.Time
	Now      time.Time

	// ImminentDays waives the rule for last-minute bookings.
	ImminentDays int

	HasEndCapAvailability bool
	IsNextDayBlocked      bool
}

// StayRuleResult echoes the exception inputs so callers can render why a
// range was or was not blocked.
type StayRuleResult struct {
	IsBlocked             bool `json:"is_blocked"`
	HasEndCapAvailability bool `json:"has_end_cap_availability"`
	IsNextDayBlocked      bool `json:"is_next_day_blocked"`
}

// CheckStayRule applies the weekend minimum-stay rule: a Friday check-in
// with a one-night stay is blocked unless the booking is imminent (within
// ImminentDays of now) or fills the end cap of an existing stay. Neither
// exception applies when the night after check-in lies past the season
// close, since the stay could not be extended anyway. Any other check-in
// day, or any stay of two or more nights, passes.
func CheckStayRule(in StayRuleInput) StayRuleResult {
	result := StayRuleResult{
		HasEndCapAvailability: in.HasEndCapAvailability,
		IsNextDayBlocked:      in.IsNextDayBlocked,
	}

	if in.CheckIn == nil || in.CheckOut == nil {
		return result
	}

	checkIn := DateOnly(*in.CheckIn)
	if checkIn.Weekday() != time.Friday || Nights(checkIn, *in.CheckOut) != 1 {
		return result
	}

	if !in.IsNextDayBlocked {
		if in.HasEndCapAvailability {
			return result
		}
		days := DaysUntil(checkIn, in.Now)
		if days >= 0 && days <= in.ImminentDays {
			return result
		}
	}

	result.IsBlocked = true
	return result
}

// EndCapAvailability decides the end-cap exception from the site's ledger:
// true when the Saturday night after the given Friday is already taken by an
// occupying reservation while the Friday night itself is free. Both the
// calendar read path and the commit path call this, so the two can never
// disagree.
func EndCapAvailability(reservations []*entity.Reservation, friday time.Time) bool {
	fridayNightStart := DateOnly(friday)
	fridayNightEnd := fridayNightStart.AddDate(0, 0, 1)
	saturdayNightEnd := fridayNightStart.AddDate(0, 0, 2)

	saturdayTaken := false
	for _, r := range reservations {
		if !r.Status.Occupying() {
			continue
		}
		if Overlaps(r.CheckIn, r.CheckOut, fridayNightStart, fridayNightEnd) {
			return false
		}
		if Overlaps(r.CheckIn, r.CheckOut, fridayNightEnd, saturdayNightEnd) {
			saturdayTaken = true
		}
	}
	return saturdayTaken
}

// NextDayBlocked reports whether the night after check-in starts past the
// season close, i.e. the stay could not be extended by one night.
func NextDayBlocked(checkIn, closeAt time.Time) bool {
	if closeAt.IsZero() {
		return false
	}
	return !DateOnly(checkIn).AddDate(0, 0, 1).Before(closeAt)
}
