package entity

import (
	"time"
)

type OpenDayRuleType string

const (
	OpenDayRuleFixed   OpenDayRuleType = "fixed"
	OpenDayRuleMonthly OpenDayRuleType = "monthly"
)

// TargetDayEndOfMonth means the close day is the last calendar day of the
// target month, whatever that is.
const TargetDayEndOfMonth = 0

// OpenDayRule describes the active booking window. A fixed rule stores its
// bounds verbatim; a monthly rule is re-derived from "now" on every read so
// the visible window advances as real time passes.
type OpenDayRule struct {
	Base
	RuleType    OpenDayRuleType `db:"rule_type"`
	OpenAt      *time.Time      `db:"open_at"`
	CloseAt     *time.Time      `db:"close_at"`
	MonthsToAdd int             `db:"months_to_add"`
	TargetDay   int             `db:"target_day"`
	IsActive    bool            `db:"is_active"`
}
