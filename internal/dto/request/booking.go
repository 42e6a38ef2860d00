package request

// QuoteRequest asks for a price breakdown without committing anything.
type QuoteRequest struct {
	SiteID       string `json:"site_id" validate:"required,uuid4"`
	CheckIn      string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut     string `json:"check_out" validate:"required,datetime=2006-01-02"`
	FamilyCount  int    `json:"family_count" validate:"required,min=1"`
	VisitorCount int    `json:"visitor_count" validate:"min=0"`
}

type CreateReservationRequest struct {
	SiteID       string `json:"site_id" validate:"required,uuid4"`
	CheckIn      string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut     string `json:"check_out" validate:"required,datetime=2006-01-02"`
	FamilyCount  int    `json:"family_count" validate:"required,min=1"`
	VisitorCount int    `json:"visitor_count" validate:"min=0"`
	VehicleCount int    `json:"vehicle_count" validate:"min=0"`
	GuestName    string `json:"guest_name" validate:"required,max=100"`
	GuestPhone   string `json:"guest_phone" validate:"required,max=30"`
	RequestNote  string `json:"request_note" validate:"max=500"`
}

// CancelReservationRequest carries the bank details the manual wire refund
// is sent to.
type CancelReservationRequest struct {
	RefundBank    string `json:"refund_bank" validate:"required,max=50"`
	RefundAccount string `json:"refund_account" validate:"required,max=50"`
	RefundHolder  string `json:"refund_holder" validate:"required,max=50"`
	CancelReason  string `json:"cancel_reason" validate:"max=500"`
}
