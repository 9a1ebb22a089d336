package schedule

import (
	"strings"
	"testing"
)

func TestFormatDayBlockBoundary(t *testing.T) {
	got := FormatDay([]string{"c1", "c2", "c3", "c4", "c5", "c6"})
	want := "*c1*\n*c2*\n*c3*\n*c4*\n*c5*\n\n*c6*\n"
	if got != want {
		t.Errorf("FormatDay = %q, want %q", got, want)
	}
	if strings.Count(got, "\n\n") != 1 {
		t.Errorf("expected exactly one blank line, got %q", got)
	}
}

func TestFormatDayShort(t *testing.T) {
	got := FormatDay([]string{"9:00 Math", "10:00 Physics"})
	want := "*9:00 Math*\n*10:00 Physics*\n"
	if got != want {
		t.Errorf("FormatDay = %q, want %q", got, want)
	}
}

func TestFormatDayEmpty(t *testing.T) {
	if got := FormatDay(nil); got != "" {
		t.Errorf("FormatDay(nil) = %q, want empty", got)
	}
}

func TestFormatWeekDayGrouping(t *testing.T) {
	got := FormatWeek([]string{"📅Понедельник", "slot1", "📅Вторник", "slot2"})
	want := "*📅Понедельник*\n*slot1*\n\n*📅Вторник*\n*slot2*\n"
	if got != want {
		t.Errorf("FormatWeek = %q, want %q", got, want)
	}
}

func TestFormatWeekGapSlot(t *testing.T) {
	got := FormatWeek([]string{"📅Понедельник", "9:00 Math", "⏳ перерыв", "10:00 Physics"})
	want := "*📅Понедельник*\n*9:00 Math*\n\n*⏳ перерыв*\n*10:00 Physics*\n"
	if got != want {
		t.Errorf("FormatWeek = %q, want %q", got, want)
	}
}

func TestFormatWeekTrailingHeader(t *testing.T) {
	got := FormatWeek([]string{"📅Суббота"})
	want := "*📅Суббота*\n\n"
	if got != want {
		t.Errorf("FormatWeek = %q, want %q", got, want)
	}
}

func TestFormatWeekEmpty(t *testing.T) {
	if got := FormatWeek(nil); got != "\n" {
		t.Errorf("FormatWeek(nil) = %q, want single blank line", got)
	}
}

func TestEscaping(t *testing.T) {
	wantLine := "*a\\_b\\*c*"

	if got := FormatDay([]string{"a_b*c"}); got != wantLine+"\n" {
		t.Errorf("FormatDay escaping = %q, want %q", got, wantLine+"\n")
	}
	if got := FormatWeek([]string{"a_b*c"}); got != wantLine+"\n" {
		t.Errorf("FormatWeek escaping = %q, want %q", got, wantLine+"\n")
	}
}

func TestFormatDispatch(t *testing.T) {
	cells := []string{"📅Среда", "x"}
	if got, want := Format(ViewWeek, cells), FormatWeek(cells); got != want {
		t.Errorf("Format(ViewWeek) = %q, want %q", got, want)
	}
	if got, want := Format(ViewToday, cells), FormatDay(cells); got != want {
		t.Errorf("Format(ViewToday) = %q, want %q", got, want)
	}
}
