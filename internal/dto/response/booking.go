package response

import (
	"time"

	"campsite-booking/internal/data/entity"
	"campsite-booking/internal/rules"
)

type QuoteResponse struct {
	SiteID   string `json:"site_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	rules.Quote
}

type ReservationResponse struct {
	ID           string                   `json:"id"`
	Code         string                   `json:"code"`
	SiteID       string                   `json:"site_id"`
	SiteName     string                   `json:"site_name,omitempty"`
	UserID       string                   `json:"user_id"`
	CheckIn      string                   `json:"check_in"`
	CheckOut     string                   `json:"check_out"`
	Nights       int                      `json:"nights"`
	FamilyCount  int                      `json:"family_count"`
	VisitorCount int                      `json:"visitor_count"`
	VehicleCount int                      `json:"vehicle_count"`
	TotalPrice   int64                    `json:"total_price"`
	GuestName    string                   `json:"guest_name"`
	GuestPhone   string                   `json:"guest_phone"`
	RequestNote  string                   `json:"request_note,omitempty"`
	Status       entity.ReservationStatus `json:"status"`
	RefundRate   int                      `json:"refund_rate,omitempty"`
	RefundAmount int64                    `json:"refund_amount,omitempty"`
	CancelReason string                   `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
}

func ReservationToResponse(res *entity.Reservation, siteName string) ReservationResponse {
	return ReservationResponse{
		ID:           res.ID.String(),
		Code:         res.Code,
		SiteID:       res.SiteID.String(),
		SiteName:     siteName,
		UserID:       res.UserID,
		CheckIn:      res.CheckIn.Format("2006-01-02"),
		CheckOut:     res.CheckOut.Format("2006-01-02"),
		Nights:       res.Nights(),
		FamilyCount:  res.FamilyCount,
		VisitorCount: res.VisitorCount,
		VehicleCount: res.VehicleCount,
		TotalPrice:   res.TotalPrice,
		GuestName:    res.GuestName,
		GuestPhone:   res.GuestPhone,
		RequestNote:  res.RequestNote,
		Status:       res.Status,
		RefundRate:   res.RefundRate,
		RefundAmount: res.RefundAmount,
		CancelReason: res.CancelReason,
		CreatedAt:    res.CreatedAt,
	}
}

// RefundPreviewResponse shows what a cancellation would pay out right now.
type RefundPreviewResponse struct {
	RefundRate   int   `json:"refund_rate"`
	RefundAmount int64 `json:"refund_amount"`
}
