package rules

import (
	"time"
)

// RefundRate returns the refund percentage owed for a cancellation made at
// now against the given check-in date. Tiers count whole days before
// check-in, boundary day inclusive:
//
//	>= 7 days  100%
//	5-6 days    90%
//	3-4 days    50%
//	1-2 days    20%
//	same day or past 0%
func RefundRate(checkIn, now time.Time) int {
	days := DaysUntil(checkIn, now)
	switch {
	case days >= 7:
		return 100
	case days >= 5:
		return 90
	case days >= 3:
		return 50
	case days >= 1:
		return 20
	default:
		return 0
	}
}

// RefundAmount applies a rate to the paid total, rounding down to whole
// currency units.
func RefundAmount(totalPrice int64, rate int) int64 {
	if rate <= 0 || totalPrice <= 0 {
		return 0
	}
	if rate > 100 {
		rate = 100
	}
	return totalPrice * int64(rate) / 100
}
