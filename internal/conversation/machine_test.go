package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Nik4Low/KGTUbot/internal/groups"
	"github.com/Nik4Low/KGTUbot/internal/schedule"
	"github.com/Nik4Low/KGTUbot/internal/sheets"
)

type fakeSource struct {
	cells     []string
	err       error
	lastGroup string
	lastView  schedule.View
}

func (f *fakeSource) Fetch(_ context.Context, group string, view schedule.View) ([]string, error) {
	f.lastGroup = group
	f.lastView = view
	return f.cells, f.err
}

func newTestMachine(src Source) *Machine {
	return NewMachine(groups.NewRegistry([]string{"A12", "B07"}), src)
}

func TestNewUserStartsAwaitingGroup(t *testing.T) {
	m := newTestMachine(&fakeSource{})

	if _, ok := m.State(1); ok {
		t.Fatal("unknown user should have no state yet")
	}

	reply := m.Text(context.Background(), 1, "nonsense")
	if reply.Text != textGroupInvalid {
		t.Errorf("reply = %q, want group-invalid prompt", reply.Text)
	}

	st, _ := m.State(1)
	if st.Phase != PhaseAwaitingGroup {
		t.Errorf("phase = %v, want PhaseAwaitingGroup", st.Phase)
	}
	if st.Group != "" {
		t.Errorf("group = %q, want unset", st.Group)
	}
}

func TestStartGreetsThenShowsMenu(t *testing.T) {
	m := newTestMachine(&fakeSource{})

	reply := m.Start(1, "Иван")
	if !strings.Contains(reply.Text, "Иван") {
		t.Errorf("greeting should address the user by name: %q", reply.Text)
	}
	if reply.ShowMenu {
		t.Error("greeting must not carry the menu")
	}

	m.Text(context.Background(), 1, "a-12")

	reply = m.Start(1, "Иван")
	if reply.Text != textGroupFound {
		t.Errorf("reply = %q, want menu prompt", reply.Text)
	}
	if !reply.ShowMenu {
		t.Error("ready user start should carry the menu")
	}
}

func TestGroupEntryStoresDisplayForm(t *testing.T) {
	m := newTestMachine(&fakeSource{})

	reply := m.Text(context.Background(), 1, " a - 12 ")
	if reply.Text != textGroupSaved {
		t.Fatalf("reply = %q, want group-saved", reply.Text)
	}
	if !reply.ShowMenu {
		t.Error("group-saved reply should carry the menu")
	}

	st, _ := m.State(1)
	if st.Phase != PhaseReady || st.Group != "A12" {
		t.Errorf("state = %+v, want Ready/A12", st)
	}
}

func TestReadyUserFreeTextPointsAtMenu(t *testing.T) {
	m := newTestMachine(&fakeSource{})
	m.Text(context.Background(), 1, "A12")

	reply := m.Text(context.Background(), 1, "когда пары?")
	if reply.Text != textNotUnderstood {
		t.Errorf("reply = %q, want not-understood", reply.Text)
	}
	st, _ := m.State(1)
	if st.Phase != PhaseReady || st.Group != "A12" {
		t.Errorf("state changed: %+v", st)
	}
}

func TestChangeGroupRetainsOldUntilReplaced(t *testing.T) {
	m := newTestMachine(&fakeSource{})
	ctx := context.Background()
	m.Text(ctx, 1, "A12")

	reply := m.ChangeGroup(1)
	if reply.Text != textChangePrompt {
		t.Fatalf("reply = %q, want change prompt", reply.Text)
	}

	st, _ := m.State(1)
	if st.Phase != PhaseAwaitingGroup || st.Group != "A12" {
		t.Fatalf("state = %+v, want AwaitingGroup with retained A12", st)
	}

	// Invalid entry keeps the old group.
	m.Text(ctx, 1, "Z99")
	st, _ = m.State(1)
	if st.Phase != PhaseAwaitingGroup || st.Group != "A12" {
		t.Errorf("state = %+v, want AwaitingGroup with retained A12", st)
	}

	// Valid entry replaces it.
	m.Text(ctx, 1, "B07")
	st, _ = m.State(1)
	if st.Phase != PhaseReady || st.Group != "B07" {
		t.Errorf("state = %+v, want Ready/B07", st)
	}
}

func TestStatesAreIsolatedPerUser(t *testing.T) {
	m := newTestMachine(&fakeSource{})
	ctx := context.Background()

	m.Text(ctx, 1, "A12")
	m.ChangeGroup(2)

	reply := m.Text(ctx, 1, "что-то")
	if reply.Text != textNotUnderstood {
		t.Errorf("user 1 should still be ready, got %q", reply.Text)
	}

	reply = m.Text(ctx, 2, "B07")
	if reply.Text != textGroupSaved {
		t.Errorf("user 2 should be entering a group, got %q", reply.Text)
	}
}

func TestMenuWithoutGroupPrompts(t *testing.T) {
	m := newTestMachine(&fakeSource{})

	reply := m.Menu(context.Background(), 1, schedule.ViewToday)
	if reply.Text != textGroupMissing {
		t.Errorf("reply = %q, want group-missing prompt", reply.Text)
	}
	st, _ := m.State(1)
	if st.Phase != PhaseAwaitingGroup {
		t.Errorf("phase = %v, want PhaseAwaitingGroup", st.Phase)
	}
}

func TestMenuServesSchedule(t *testing.T) {
	src := &fakeSource{cells: []string{"9:00 Math", "10:00 Physics"}}
	m := newTestMachine(src)
	ctx := context.Background()
	m.Text(ctx, 1, "A12")

	reply := m.Menu(ctx, 1, schedule.ViewToday)
	if !reply.Markdown || !reply.ShowMenu {
		t.Errorf("schedule reply should be markdown with menu: %+v", reply)
	}
	if src.lastGroup != "A12" || src.lastView != schedule.ViewToday {
		t.Errorf("queried %q/%v, want A12/today", src.lastGroup, src.lastView)
	}
	for _, want := range []string{"группы A12", "*9:00 Math*", "*10:00 Physics*"} {
		if !strings.Contains(reply.Text, want) {
			t.Errorf("reply missing %q: %q", want, reply.Text)
		}
	}
	if strings.Contains(reply.Text, "не найдено") {
		t.Errorf("reply should not carry not-found wording: %q", reply.Text)
	}
}

func TestMenuNotFoundAndTransientLookAlike(t *testing.T) {
	ctx := context.Background()

	for name, srcErr := range map[string]error{
		"not_found": sheets.ErrScheduleNotFound,
		"transient": errors.New("quota exceeded"),
	} {
		m := newTestMachine(&fakeSource{err: srcErr})
		m.Text(ctx, 1, "A12")

		reply := m.Menu(ctx, 1, schedule.ViewWeek)
		if !strings.Contains(reply.Text, "не найдено") {
			t.Errorf("%s: reply = %q, want not-found wording", name, reply.Text)
		}
		if reply.Markdown {
			t.Errorf("%s: not-found reply must not use markdown", name)
		}
		if !reply.ShowMenu {
			t.Errorf("%s: not-found reply should still carry the menu", name)
		}

		st, _ := m.State(1)
		if st.Phase != PhaseReady || st.Group != "A12" {
			t.Errorf("%s: state changed: %+v", name, st)
		}
	}
}

func TestMenuDuringGroupChangeServesRetainedGroup(t *testing.T) {
	src := &fakeSource{cells: []string{"x"}}
	m := newTestMachine(src)
	ctx := context.Background()
	m.Text(ctx, 1, "A12")
	m.ChangeGroup(1)

	reply := m.Menu(ctx, 1, schedule.ViewTomorrow)
	if src.lastGroup != "A12" {
		t.Errorf("queried group %q, want retained A12", src.lastGroup)
	}
	if !strings.Contains(reply.Text, "завтра") {
		t.Errorf("reply = %q, want tomorrow period", reply.Text)
	}
}
