package rules

import (
	"time"

	"campsite-booking/internal/data/entity"
)

// RateCard is the nightly rate table a quote prices against. Off-peak rates
// come from the site's catalog entry, peak rates from the global config.
type RateCard struct {
	Weekday     int64
	Weekend     int64
	PeakWeekday int64
	PeakWeekend int64
}

// RateCardFor merges site prices with the current pricing config. A site
// with no price of its own falls back to the config base rates.
func RateCardFor(site *entity.Site, cfg *entity.PricingConfig) RateCard {
	card := RateCard{
		Weekday:     cfg.WeekdayRate,
		Weekend:     cfg.WeekendRate,
		PeakWeekday: cfg.PeakWeekdayRate,
		PeakWeekend: cfg.PeakWeekendRate,
	}
	if site != nil {
		if site.WeekdayPrice > 0 {
			card.Weekday = site.WeekdayPrice
		}
		if site.WeekendPrice > 0 {
			card.Weekend = site.WeekendPrice
		}
	}
	return card
}

// Quote is the priced breakdown of one candidate stay.
type Quote struct {
	Nights              int   `json:"nights"`
	BasePrice           int64 `json:"base_price"`
	ExtraFamily         int64 `json:"extra_family"`
	Visitor             int64 `json:"visitor"`
	PkgDiscount         int64 `json:"pkg_discount"`
	ConsecutiveDiscount int64 `json:"consecutive_discount"`
	TotalPrice          int64 `json:"total_price"`
}

// CalculateQuote prices the stay [checkIn, checkOut). Pure function of its
// inputs: identical arguments always produce an identical quote.
//
// Per night the base rate is one of weekday/weekend/peakWeekday/peakWeekend.
// Extra families beyond the first pay the surcharge every night; visitors pay
// a one-time per-head surcharge. Stays of 2+ nights that include a weekend
// night earn the flat per-night long-stay discount. The total never goes
// below zero.
func CalculateQuote(card RateCard, cfg *entity.PricingConfig, seasons []entity.Season,
	holidays map[string]bool, checkIn, checkOut time.Time, familyCount, visitorCount int) Quote {

	nights := Nights(checkIn, checkOut)
	quote := Quote{Nights: nights}
	if nights <= 0 {
		return quote
	}

	weekendNights := 0
	for night := DateOnly(checkIn); night.Before(DateOnly(checkOut)); night = night.AddDate(0, 0, 1) {
		weekend := IsWeekendNight(night, holidays)
		peak := InSeason(night, seasons)
		if weekend {
			weekendNights++
		}

		switch {
		case peak && weekend:
			quote.BasePrice += card.PeakWeekend
		case peak:
			quote.BasePrice += card.PeakWeekday
		case weekend:
			quote.BasePrice += card.Weekend
		default:
			quote.BasePrice += card.Weekday
		}
	}

	if familyCount > 1 {
		quote.ExtraFamily = int64(familyCount-1) * cfg.ExtraFamilySurcharge * int64(nights)
	}
	if visitorCount > 0 {
		quote.Visitor = int64(visitorCount) * cfg.VisitorSurcharge
	}

	// Weekend long-stay incentive: flat per-night deduction, not a percentage.
	if nights >= 2 && weekendNights > 0 {
		quote.ConsecutiveDiscount = cfg.LongStayDiscount * int64(nights)
	}

	// PkgDiscount stays zero until a multi-night package promotion is
	// configured; the field is kept so the breakdown shape is stable.

	quote.TotalPrice = quote.BasePrice + quote.ExtraFamily + quote.Visitor -
		quote.ConsecutiveDiscount - quote.PkgDiscount
	if quote.TotalPrice < 0 {
		quote.TotalPrice = 0
	}

	return quote
}
