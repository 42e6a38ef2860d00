package response

import (
	"time"

	"campsite-booking/internal/data/entity"
)

type WaitlistEntryResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	TargetDate string    `json:"target_date"`
	SiteID     string    `json:"site_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func WaitlistEntryToResponse(e entity.WaitlistEntry) WaitlistEntryResponse {
	resp := WaitlistEntryResponse{
		ID:         e.ID.String(),
		UserID:     e.UserID,
		TargetDate: e.TargetDate.Format("2006-01-02"),
		CreatedAt:  e.CreatedAt,
	}
	if e.SiteID != nil {
		resp.SiteID = e.SiteID.String()
	}
	return resp
}
