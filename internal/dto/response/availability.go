package response

import (
	"campsite-booking/internal/rules"
)

// SiteAvailability is one site's verdict for the requested range.
type SiteAvailability struct {
	Site      SiteResponse `json:"site"`
	Available bool         `json:"available"`
	// Why the site is unavailable: "booked", "blocked" or "min_stay".
	// Empty when available.
	Reason string `json:"reason,omitempty"`
}

type AvailabilityResponse struct {
	CheckIn  string               `json:"check_in"`
	CheckOut string               `json:"check_out"`
	Window   WindowResponse       `json:"window"`
	StayRule rules.StayRuleResult `json:"stay_rule"`
	Sites    []SiteAvailability   `json:"sites"`
}
