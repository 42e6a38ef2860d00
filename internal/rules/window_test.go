package rules

import (
	"testing"
	"time"

	"campsite-booking/internal/data/entity"
)

func fixedRule(openAt, closeAt time.Time) *entity.OpenDayRule {
	return &entity.OpenDayRule{
		RuleType: entity.OpenDayRuleFixed,
		OpenAt:   &openAt,
		CloseAt:  &closeAt,
		IsActive: true,
	}
}

func monthlyRule(monthsToAdd, targetDay int) *entity.OpenDayRule {
	return &entity.OpenDayRule{
		RuleType:    entity.OpenDayRuleMonthly,
		MonthsToAdd: monthsToAdd,
		TargetDay:   targetDay,
		IsActive:    true,
	}
}

func TestResolveWindowFixed(t *testing.T) {
	openAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	closeAt := time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)

	gotOpen, gotClose := ResolveWindow(fixedRule(openAt, closeAt), time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))
	if !gotOpen.Equal(openAt) || !gotClose.Equal(closeAt) {
		t.Fatalf("fixed rule bounds changed: got [%v, %v)", gotOpen, gotClose)
	}
}

func TestResolveWindowMonthly(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		rule      *entity.OpenDayRule
		wantOpen  time.Time
		wantClose time.Time
	}{
		{
			name:      "fixed target day one month ahead",
			now:       time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
			rule:      monthlyRule(1, 15),
			wantOpen:  time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
			wantClose: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "end of month target",
			now:       time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
			rule:      monthlyRule(1, entity.TargetDayEndOfMonth),
			wantOpen:  time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
			wantClose: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "target day clamped to short month",
			now:       time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			rule:      monthlyRule(1, 31),
			wantOpen:  time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
			wantClose: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "year rollover",
			now:       time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
			rule:      monthlyRule(2, 10),
			wantOpen:  time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC),
			wantClose: time.Date(2027, 1, 11, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOpen, gotClose := ResolveWindow(tt.rule, tt.now)
			if !gotOpen.Equal(tt.wantOpen) {
				t.Errorf("openAt = %v, want %v", gotOpen, tt.wantOpen)
			}
			if !gotClose.Equal(tt.wantClose) {
				t.Errorf("closeAt = %v, want %v", gotClose, tt.wantClose)
			}
		})
	}
}

func TestResolveWindowMonthlyAdvancesWithNow(t *testing.T) {
	rule := monthlyRule(1, 15)

	_, closeAug := ResolveWindow(rule, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	_, closeSep := ResolveWindow(rule, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	if !closeSep.After(closeAug) {
		t.Fatalf("window did not advance across month boundary: %v then %v", closeAug, closeSep)
	}
}

func TestWindowStateAt(t *testing.T) {
	openAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	closeAt := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	rule := fixedRule(openAt, closeAt)

	tests := []struct {
		name string
		now  time.Time
		want WindowState
	}{
		{"before open", time.Date(2026, 7, 31, 23, 0, 0, 0, time.UTC), WindowPreOpen},
		{"at open", openAt, WindowOpen},
		{"mid window", time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC), WindowOpen},
		{"at close", closeAt, WindowOpen},
		{"after close", closeAt.Add(time.Second), WindowClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _ := WindowStateAt(rule, tt.now)
			if got != tt.want {
				t.Errorf("state = %s, want %s", got, tt.want)
			}
		})
	}
}
