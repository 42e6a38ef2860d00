package request

type WaitlistRequest struct {
	TargetDate string `json:"target_date" validate:"required,datetime=2006-01-02"`
	// Empty means "any site".
	SiteID string `json:"site_id" validate:"omitempty,uuid4"`
}
