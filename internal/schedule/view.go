package schedule

import "fmt"

// View selects one of the three predefined schedule periods.
type View int

const (
	ViewToday View = iota
	ViewTomorrow
	ViewWeek
)

// ParseView maps a menu callback key to a View.
func ParseView(key string) (View, error) {
	switch key {
	case "schedule_today":
		return ViewToday, nil
	case "schedule_tomorrow":
		return ViewTomorrow, nil
	case "schedule_week":
		return ViewWeek, nil
	}
	return 0, fmt.Errorf("schedule: unknown view key %q", key)
}

// String returns the stable machine name of the view.
func (v View) String() string {
	switch v {
	case ViewToday:
		return "today"
	case ViewTomorrow:
		return "tomorrow"
	case ViewWeek:
		return "week"
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// SheetName returns the source sheet holding this view's data.
func (v View) SheetName() string {
	switch v {
	case ViewToday:
		return "CurrentSchedule"
	case ViewTomorrow:
		return "TomorrowSchedule"
	case ViewWeek:
		return "CurrentWeek"
	}
	return ""
}

// Period returns the human-readable period used in reply texts.
func (v View) Period() string {
	switch v {
	case ViewToday:
		return "сегодня"
	case ViewTomorrow:
		return "завтра"
	case ViewWeek:
		return "текущую неделю"
	}
	return ""
}

// Valid reports whether the view is one of the three known periods.
func (v View) Valid() bool {
	return v == ViewToday || v == ViewTomorrow || v == ViewWeek
}
