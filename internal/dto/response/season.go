package response

import (
	"time"

	"campsite-booking/internal/data/entity"
	"campsite-booking/internal/rules"
)

// WindowResponse is the resolved booking window at the moment of the call.
type WindowResponse struct {
	State   rules.WindowState `json:"state"`
	OpenAt  time.Time         `json:"open_at"`
	CloseAt time.Time         `json:"close_at"`
}

type SeasonResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	StartMonth int    `json:"start_month"`
	StartDay   int    `json:"start_day"`
	EndMonth   int    `json:"end_month"`
	EndDay     int    `json:"end_day"`
}

func SeasonToResponse(s entity.Season) SeasonResponse {
	return SeasonResponse{
		ID:         s.ID.String(),
		Name:       s.Name,
		StartMonth: s.StartMonth,
		StartDay:   s.StartDay,
		EndMonth:   s.EndMonth,
		EndDay:     s.EndDay,
	}
}

type PricingConfigResponse struct {
	WeekdayRate          int64            `json:"weekday_rate"`
	WeekendRate          int64            `json:"weekend_rate"`
	PeakWeekdayRate      int64            `json:"peak_weekday_rate"`
	PeakWeekendRate      int64            `json:"peak_weekend_rate"`
	ExtraFamilySurcharge int64            `json:"extra_family_surcharge"`
	VisitorSurcharge     int64            `json:"visitor_surcharge"`
	LongStayDiscount     int64            `json:"long_stay_discount"`
	Seasons              []SeasonResponse `json:"seasons"`
}

func PricingConfigToResponse(cfg *entity.PricingConfig, seasons []entity.Season) PricingConfigResponse {
	resp := PricingConfigResponse{
		WeekdayRate:          cfg.WeekdayRate,
		WeekendRate:          cfg.WeekendRate,
		PeakWeekdayRate:      cfg.PeakWeekdayRate,
		PeakWeekendRate:      cfg.PeakWeekendRate,
		ExtraFamilySurcharge: cfg.ExtraFamilySurcharge,
		VisitorSurcharge:     cfg.VisitorSurcharge,
		LongStayDiscount:     cfg.LongStayDiscount,
		Seasons:              make([]SeasonResponse, 0, len(seasons)),
	}
	for _, s := range seasons {
		resp.Seasons = append(resp.Seasons, SeasonToResponse(s))
	}
	return resp
}
