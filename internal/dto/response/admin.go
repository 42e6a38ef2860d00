package response

import (
	"time"

	"campsite-booking/internal/data/entity"
)

// OpenDayRuleResponse is the raw active rule plus its resolved window, so an
// administrator can see both what is configured and what guests see now.
type OpenDayRuleResponse struct {
	ID          string         `json:"id"`
	RuleType    string         `json:"rule_type"`
	OpenAt      *time.Time     `json:"open_at,omitempty"`
	CloseAt     *time.Time     `json:"close_at,omitempty"`
	MonthsToAdd int            `json:"months_to_add"`
	TargetDay   int            `json:"target_day"`
	Window      WindowResponse `json:"window"`
}

func OpenDayRuleToResponse(rule *entity.OpenDayRule, window WindowResponse) OpenDayRuleResponse {
	return OpenDayRuleResponse{
		ID:          rule.ID.String(),
		RuleType:    string(rule.RuleType),
		OpenAt:      rule.OpenAt,
		CloseAt:     rule.CloseAt,
		MonthsToAdd: rule.MonthsToAdd,
		TargetDay:   rule.TargetDay,
		Window:      window,
	}
}

type BlockedDateResponse struct {
	ID     string `json:"id"`
	SiteID string `json:"site_id"`
	Date   string `json:"date"`
	Memo   string `json:"memo,omitempty"`
}

func BlockedDateToResponse(b entity.BlockedDate) BlockedDateResponse {
	return BlockedDateResponse{
		ID:     b.ID.String(),
		SiteID: b.SiteID.String(),
		Date:   b.Date.Format("2006-01-02"),
		Memo:   b.Memo,
	}
}
