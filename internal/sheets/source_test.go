package sheets

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Nik4Low/KGTUbot/internal/schedule"
)

type fakeQuerier struct {
	rows      [][]string
	err       error
	lastSheet string
	lastRange string
}

func (f *fakeQuerier) QueryRange(_ context.Context, sheetName, rangeSpec string) ([][]string, error) {
	f.lastSheet = sheetName
	f.lastRange = rangeSpec
	return f.rows, f.err
}

func TestFetchExtractsColumn(t *testing.T) {
	q := &fakeQuerier{rows: [][]string{
		{"A12", "B07"},
		{"9:00 Math", "9:00 History"},
		{"", "10:00 Art"},
		{"10:00 Physics"},
		{"   ", "11:00 PE"},
	}}
	src := NewSource(q, "A1:Q157")

	got, err := src.Fetch(context.Background(), "A12", schedule.ViewToday)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	want := []string{"9:00 Math", "10:00 Physics"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fetch = %v, want %v", got, want)
	}
	if q.lastSheet != "CurrentSchedule" {
		t.Errorf("queried sheet %q, want CurrentSchedule", q.lastSheet)
	}
	if q.lastRange != "A1:Q157" {
		t.Errorf("queried range %q, want A1:Q157", q.lastRange)
	}
}

func TestFetchHeaderMatchIsExact(t *testing.T) {
	q := &fakeQuerier{rows: [][]string{
		{"A-12"},
		{"9:00 Math"},
	}}
	src := NewSource(q, "A1:Q157")

	// Header cells hold display forms; "A12" must not match "A-12".
	if _, err := src.Fetch(context.Background(), "A12", schedule.ViewToday); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("Fetch = %v, want ErrScheduleNotFound", err)
	}
}

func TestFetchUnknownGroup(t *testing.T) {
	q := &fakeQuerier{rows: [][]string{{"A12"}, {"x"}}}
	src := NewSource(q, "A1:Q157")

	if _, err := src.Fetch(context.Background(), "Z99", schedule.ViewWeek); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("Fetch = %v, want ErrScheduleNotFound", err)
	}
	if q.lastSheet != "CurrentWeek" {
		t.Errorf("queried sheet %q, want CurrentWeek", q.lastSheet)
	}
}

func TestFetchEmptySheet(t *testing.T) {
	src := NewSource(&fakeQuerier{}, "A1:Q157")
	if _, err := src.Fetch(context.Background(), "A12", schedule.ViewToday); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("Fetch = %v, want ErrScheduleNotFound", err)
	}
}

func TestFetchQueryError(t *testing.T) {
	boom := errors.New("quota exceeded")
	src := NewSource(&fakeQuerier{err: boom}, "A1:Q157")

	_, err := src.Fetch(context.Background(), "A12", schedule.ViewTomorrow)
	if !errors.Is(err, boom) {
		t.Errorf("Fetch = %v, want wrapped %v", err, boom)
	}
	if errors.Is(err, ErrScheduleNotFound) {
		t.Error("transient query error must not be ErrScheduleNotFound")
	}
}
