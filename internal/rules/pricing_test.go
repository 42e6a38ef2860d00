package rules

import (
	"testing"
	"time"

	"campsite-booking/internal/data/entity"
)

var testConfig = &entity.PricingConfig{
	WeekdayRate:          40000,
	WeekendRate:          60000,
	PeakWeekdayRate:      70000,
	PeakWeekendRate:      100000,
	ExtraFamilySurcharge: 10000,
	VisitorSurcharge:     5000,
	LongStayDiscount:     0,
}

var testCard = RateCard{
	Weekday:     50000,
	Weekend:     80000,
	PeakWeekday: 70000,
	PeakWeekend: 100000,
}

// 2026-09-04 is a Friday.
var friday = time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

func TestCalculateQuoteWeekendStay(t *testing.T) {
	// Fri-Sun, two weekend nights, one family, no visitors.
	quote := CalculateQuote(testCard, testConfig, nil, nil, friday, friday.AddDate(0, 0, 2), 1, 0)

	if quote.Nights != 2 {
		t.Fatalf("nights = %d, want 2", quote.Nights)
	}
	if quote.BasePrice != 160000 {
		t.Errorf("basePrice = %d, want 160000", quote.BasePrice)
	}
	if quote.ExtraFamily != 0 || quote.Visitor != 0 {
		t.Errorf("unexpected surcharges: extraFamily=%d visitor=%d", quote.ExtraFamily, quote.Visitor)
	}
	if quote.TotalPrice != 160000 {
		t.Errorf("totalPrice = %d, want 160000", quote.TotalPrice)
	}
}

func TestCalculateQuoteSurcharges(t *testing.T) {
	// Mon-Thu: three weekday nights, two families, four visitors.
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	quote := CalculateQuote(testCard, testConfig, nil, nil, monday, monday.AddDate(0, 0, 3), 2, 4)

	if quote.BasePrice != 150000 {
		t.Errorf("basePrice = %d, want 150000", quote.BasePrice)
	}
	// One extra family, every night.
	if quote.ExtraFamily != 30000 {
		t.Errorf("extraFamily = %d, want 30000", quote.ExtraFamily)
	}
	// Visitors pay once, not per night.
	if quote.Visitor != 20000 {
		t.Errorf("visitor = %d, want 20000", quote.Visitor)
	}
	// No weekend night, so no long-stay discount even at 3 nights.
	if quote.ConsecutiveDiscount != 0 {
		t.Errorf("consecutiveDiscount = %d, want 0", quote.ConsecutiveDiscount)
	}
	if quote.TotalPrice != 200000 {
		t.Errorf("totalPrice = %d, want 200000", quote.TotalPrice)
	}
}

func TestCalculateQuoteLongStayDiscount(t *testing.T) {
	cfg := *testConfig
	cfg.LongStayDiscount = 5000

	// Fri-Sun includes weekend nights, qualifies at 2 nights.
	quote := CalculateQuote(testCard, &cfg, nil, nil, friday, friday.AddDate(0, 0, 2), 1, 0)
	if quote.ConsecutiveDiscount != 10000 {
		t.Errorf("consecutiveDiscount = %d, want 10000", quote.ConsecutiveDiscount)
	}
	if quote.TotalPrice != 150000 {
		t.Errorf("totalPrice = %d, want 150000", quote.TotalPrice)
	}

	// Friday only: one night never qualifies.
	oneNight := CalculateQuote(testCard, &cfg, nil, nil, friday, friday.AddDate(0, 0, 1), 1, 0)
	if oneNight.ConsecutiveDiscount != 0 {
		t.Errorf("one-night consecutiveDiscount = %d, want 0", oneNight.ConsecutiveDiscount)
	}
}

func TestCalculateQuotePeakSeason(t *testing.T) {
	seasons := []entity.Season{
		{Name: "summer", StartMonth: 7, StartDay: 15, EndMonth: 8, EndDay: 31},
	}

	// 2026-08-17 is a Monday inside the window: peak weekday rate.
	peakMonday := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	quote := CalculateQuote(testCard, testConfig, seasons, nil, peakMonday, peakMonday.AddDate(0, 0, 1), 1, 0)
	if quote.BasePrice != 70000 {
		t.Errorf("peak weekday basePrice = %d, want 70000", quote.BasePrice)
	}

	// 2026-08-21 is a Friday inside the window: peak weekend rate.
	peakFriday := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)
	quote = CalculateQuote(testCard, testConfig, seasons, nil, peakFriday, peakFriday.AddDate(0, 0, 1), 1, 0)
	if quote.BasePrice != 100000 {
		t.Errorf("peak weekend basePrice = %d, want 100000", quote.BasePrice)
	}
}

func TestCalculateQuoteYearWrapSeason(t *testing.T) {
	seasons := []entity.Season{
		{Name: "winter", StartMonth: 12, StartDay: 20, EndMonth: 1, EndDay: 5},
	}

	inside := time.Date(2026, 12, 28, 0, 0, 0, 0, time.UTC) // Monday
	if !InSeason(inside, seasons) {
		t.Error("Dec 28 should fall inside the wrapped window")
	}
	alsoInside := time.Date(2027, 1, 4, 0, 0, 0, 0, time.UTC) // Monday
	if !InSeason(alsoInside, seasons) {
		t.Error("Jan 4 should fall inside the wrapped window")
	}
	outside := time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC)
	if InSeason(outside, seasons) {
		t.Error("Nov 30 should fall outside the wrapped window")
	}
}

func TestCalculateQuoteHolidayPricesAsWeekend(t *testing.T) {
	// A Wednesday flagged as public holiday charges the weekend rate.
	wednesday := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
	holidays := HolidaySet([]entity.Holiday{{Name: "holiday", Date: wednesday}})

	quote := CalculateQuote(testCard, testConfig, nil, holidays, wednesday, wednesday.AddDate(0, 0, 1), 1, 0)
	if quote.BasePrice != 80000 {
		t.Errorf("holiday basePrice = %d, want 80000", quote.BasePrice)
	}
}

func TestCalculateQuoteFloorsAtZero(t *testing.T) {
	cfg := *testConfig
	cfg.LongStayDiscount = 500000

	quote := CalculateQuote(testCard, &cfg, nil, nil, friday, friday.AddDate(0, 0, 2), 1, 0)
	if quote.TotalPrice != 0 {
		t.Errorf("totalPrice = %d, want 0", quote.TotalPrice)
	}
}

func TestCalculateQuoteIdempotent(t *testing.T) {
	first := CalculateQuote(testCard, testConfig, nil, nil, friday, friday.AddDate(0, 0, 2), 2, 3)
	second := CalculateQuote(testCard, testConfig, nil, nil, friday, friday.AddDate(0, 0, 2), 2, 3)
	if first != second {
		t.Errorf("identical inputs produced different quotes: %+v vs %+v", first, second)
	}
}

func TestRateCardFor(t *testing.T) {
	site := &entity.Site{WeekdayPrice: 50000, WeekendPrice: 80000}
	card := RateCardFor(site, testConfig)
	if card.Weekday != 50000 || card.Weekend != 80000 {
		t.Errorf("site rates not applied: %+v", card)
	}
	if card.PeakWeekday != 70000 || card.PeakWeekend != 100000 {
		t.Errorf("peak rates must come from config: %+v", card)
	}

	// Site without its own prices falls back to config base rates.
	card = RateCardFor(&entity.Site{}, testConfig)
	if card.Weekday != 40000 || card.Weekend != 60000 {
		t.Errorf("config fallback not applied: %+v", card)
	}
}
