package rules

import (
	"time"

	"campsite-booking/internal/data/entity"
)

type WindowState string

const (
	WindowPreOpen WindowState = "PRE_OPEN"
	WindowOpen    WindowState = "OPEN"
	WindowClosed  WindowState = "CLOSED"
)

// ResolveWindow computes the [openAt, closeAt) bounds of the active booking
// window. Fixed rules return their stored bounds verbatim. Monthly rules are
// derived from now on every call, never cached: openAt is the 1st of the
// current month at 09:00 local, closeAt is the target day of the month
// monthsToAdd ahead (last calendar day when targetDay is end-of-month).
func ResolveWindow(rule *entity.OpenDayRule, now time.Time) (openAt, closeAt time.Time) {
	if rule.RuleType == entity.OpenDayRuleFixed {
		if rule.OpenAt != nil {
			openAt = *rule.OpenAt
		}
		if rule.CloseAt != nil {
			closeAt = *rule.CloseAt
		}
		return openAt, closeAt
	}

	loc := now.Location()
	openAt = time.Date(now.Year(), now.Month(), 1, 9, 0, 0, 0, loc)

	targetMonth := time.Date(now.Year(), now.Month()+time.Month(rule.MonthsToAdd), 1, 0, 0, 0, 0, loc)
	lastDay := time.Date(targetMonth.Year(), targetMonth.Month()+1, 0, 0, 0, 0, 0, loc).Day()

	day := rule.TargetDay
	if day == entity.TargetDayEndOfMonth || day > lastDay {
		day = lastDay
	}

	// Close at the end of the target day so the whole day stays bookable.
	closeAt = time.Date(targetMonth.Year(), targetMonth.Month(), day+1, 0, 0, 0, 0, loc)
	return openAt, closeAt
}

// WindowStateAt classifies now against the resolved window.
func WindowStateAt(rule *entity.OpenDayRule, now time.Time) (WindowState, time.Time, time.Time) {
	openAt, closeAt := ResolveWindow(rule, now)
	switch {
	case now.Before(openAt):
		return WindowPreOpen, openAt, closeAt
	case now.After(closeAt):
		return WindowClosed, openAt, closeAt
	default:
		return WindowOpen, openAt, closeAt
	}
}
