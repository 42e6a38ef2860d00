package request

type UpdatePricingConfigRequest struct {
	WeekdayRate          int64 `json:"weekday_rate" validate:"min=0"`
	WeekendRate          int64 `json:"weekend_rate" validate:"min=0"`
	PeakWeekdayRate      int64 `json:"peak_weekday_rate" validate:"min=0"`
	PeakWeekendRate      int64 `json:"peak_weekend_rate" validate:"min=0"`
	ExtraFamilySurcharge int64 `json:"extra_family_surcharge" validate:"min=0"`
	VisitorSurcharge     int64 `json:"visitor_surcharge" validate:"min=0"`
	LongStayDiscount     int64 `json:"long_stay_discount" validate:"min=0"`
}

type CreateSeasonRequest struct {
	Name       string `json:"name" validate:"required,max=50"`
	StartMonth int    `json:"start_month" validate:"required,min=1,max=12"`
	StartDay   int    `json:"start_day" validate:"required,min=1,max=31"`
	EndMonth   int    `json:"end_month" validate:"required,min=1,max=12"`
	EndDay     int    `json:"end_day" validate:"required,min=1,max=31"`
}

type CreateHolidayRequest struct {
	Name string `json:"name" validate:"required,max=50"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type CreateOpenDayRuleRequest struct {
	RuleType string `json:"rule_type" validate:"required,oneof=fixed monthly"`
	// Fixed rules: RFC 3339 instants, openAt strictly before closeAt.
	OpenAt  string `json:"open_at" validate:"omitempty"`
	CloseAt string `json:"close_at" validate:"omitempty"`
	// Monthly rules: window close lands monthsToAdd months ahead on
	// targetDay (0 = last day of that month).
	MonthsToAdd int `json:"months_to_add" validate:"min=0,max=12"`
	TargetDay   int `json:"target_day" validate:"min=0,max=31"`
}

type CreateBlockedDateRequest struct {
	SiteID string `json:"site_id" validate:"required,uuid4"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Memo   string `json:"memo" validate:"max=200"`
}

type CreateSiteRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	SiteType     string   `json:"site_type" validate:"max=50"`
	WeekdayPrice int64    `json:"weekday_price" validate:"min=0"`
	WeekendPrice int64    `json:"weekend_price" validate:"min=0"`
	MaxOccupancy int      `json:"max_occupancy" validate:"required,min=1"`
	Features     []string `json:"features"`
	IsActive     bool     `json:"is_active"`
}
