package schedule

import "testing"

func TestParseView(t *testing.T) {
	cases := []struct {
		key   string
		want  View
		sheet string
	}{
		{"schedule_today", ViewToday, "CurrentSchedule"},
		{"schedule_tomorrow", ViewTomorrow, "TomorrowSchedule"},
		{"schedule_week", ViewWeek, "CurrentWeek"},
	}
	for _, tc := range cases {
		v, err := ParseView(tc.key)
		if err != nil {
			t.Fatalf("ParseView(%q): %v", tc.key, err)
		}
		if v != tc.want {
			t.Errorf("ParseView(%q) = %v, want %v", tc.key, v, tc.want)
		}
		if v.SheetName() != tc.sheet {
			t.Errorf("%v.SheetName() = %q, want %q", v, v.SheetName(), tc.sheet)
		}
		if !v.Valid() {
			t.Errorf("%v.Valid() = false", v)
		}
	}

	if _, err := ParseView("schedule_yesterday"); err == nil {
		t.Error("ParseView(schedule_yesterday): expected error")
	}
}

func TestViewPeriod(t *testing.T) {
	if got := ViewToday.Period(); got != "сегодня" {
		t.Errorf("ViewToday.Period() = %q", got)
	}
	if got := ViewTomorrow.Period(); got != "завтра" {
		t.Errorf("ViewTomorrow.Period() = %q", got)
	}
	if got := ViewWeek.Period(); got != "текущую неделю" {
		t.Errorf("ViewWeek.Period() = %q", got)
	}
}
