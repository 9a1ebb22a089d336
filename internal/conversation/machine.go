// Package conversation implements the per-user dialog state machine:
// group-identifier entry, group changes and schedule menu requests.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Nik4Low/KGTUbot/core/logger"
	"github.com/Nik4Low/KGTUbot/internal/schedule"
	"github.com/Nik4Low/KGTUbot/internal/sheets"
)

// Registry resolves user-entered text to a canonical group display form.
type Registry interface {
	Resolve(text string) (string, bool)
}

// Source fetches a group's raw schedule cells for a view.
type Source interface {
	Fetch(ctx context.Context, group string, view schedule.View) ([]string, error)
}

// Reply is what the transport should send back to the user.
type Reply struct {
	Text     string
	ShowMenu bool
	Markdown bool
}

// Machine routes incoming text and menu selections through per-user state.
type Machine struct {
	store    *Store
	registry Registry
	source   Source
}

// NewMachine wires the state machine to its collaborators.
func NewMachine(registry Registry, source Source) *Machine {
	return &Machine{
		store:    NewStore(),
		registry: registry,
		source:   source,
	}
}

// State exposes the current state of a user for inspection.
func (m *Machine) State(userID int64) (UserState, bool) {
	return m.store.Get(userID)
}

// Start handles the start command. New users get the greeting and enter
// group entry; users with a stored group get the menu prompt.
func (m *Machine) Start(userID int64, firstName string) Reply {
	st, ok := m.store.Get(userID)
	if !ok || st.Phase != PhaseReady {
		m.store.SetAwaiting(userID)
		return Reply{Text: fmt.Sprintf(greetingFmt, firstName)}
	}
	return Reply{Text: textGroupFound, ShowMenu: true}
}

// ChangeGroup switches the user to group entry. The stored group is kept
// until a valid replacement arrives.
func (m *Machine) ChangeGroup(userID int64) Reply {
	m.store.SetAwaiting(userID)
	return Reply{Text: textChangePrompt}
}

// Text handles non-command text. While awaiting a group it is matched
// against the registry; otherwise the user is pointed at the menu.
func (m *Machine) Text(ctx context.Context, userID int64, text string) Reply {
	st, _ := m.store.Get(userID)
	if st.Phase == PhaseReady {
		return Reply{Text: textNotUnderstood}
	}

	group, ok := m.registry.Resolve(text)
	if !ok {
		logger.Debug(ctx, "service.schedule", "group.reject",
			slog.String("group", logger.SanitizeLimit(text, 64)),
		)
		return Reply{Text: textGroupInvalid}
	}

	m.store.SetGroup(userID, group)
	logger.Info(ctx, "service.schedule", "group.set",
		slog.String("group", group),
	)
	return Reply{Text: textGroupSaved, ShowMenu: true}
}

// Menu handles a today/tomorrow/week selection. Users without a stored
// group are sent back to group entry. Data source failures surface to the
// user the same way as an absent schedule.
func (m *Machine) Menu(ctx context.Context, userID int64, view schedule.View) Reply {
	st, _ := m.store.Get(userID)
	if st.Group == "" {
		m.store.SetAwaiting(userID)
		return Reply{Text: textGroupMissing}
	}

	cells, err := m.source.Fetch(ctx, st.Group, view)
	if err != nil {
		if !errors.Is(err, sheets.ErrScheduleNotFound) {
			logger.Error(ctx, "service.schedule", "schedule.fetch",
				slog.String("status", "fail"),
				slog.String("group", st.Group),
				slog.String("view", view.String()),
				slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
			)
		}
		return Reply{
			Text:     fmt.Sprintf(scheduleMissingFmt, st.Group, view.Period()),
			ShowMenu: true,
		}
	}

	logger.Info(ctx, "service.schedule", "schedule.served",
		slog.String("group", st.Group),
		slog.String("view", view.String()),
		slog.Int("cells", len(cells)),
	)
	return Reply{
		Text:     fmt.Sprintf(scheduleHeaderFmt, st.Group, view.Period(), schedule.Format(view, cells)),
		ShowMenu: true,
		Markdown: true,
	}
}
