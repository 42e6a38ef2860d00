package response

import (
	"campsite-booking/internal/data/entity"
)

type SiteResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	SiteType     string   `json:"site_type"`
	WeekdayPrice int64    `json:"weekday_price"`
	WeekendPrice int64    `json:"weekend_price"`
	MaxOccupancy int      `json:"max_occupancy"`
	Features     []string `json:"features"`
	IsActive     bool     `json:"is_active"`
}

func SiteToResponse(site *entity.Site) SiteResponse {
	return SiteResponse{
		ID:           site.ID.String(),
		Name:         site.Name,
		SiteType:     site.SiteType,
		WeekdayPrice: site.WeekdayPrice,
		WeekendPrice: site.WeekendPrice,
		MaxOccupancy: site.MaxOccupancy,
		Features:     site.Features,
		IsActive:     site.IsActive,
	}
}
