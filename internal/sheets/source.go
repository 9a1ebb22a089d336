package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Nik4Low/KGTUbot/core/logger"
	"github.com/Nik4Low/KGTUbot/internal/schedule"
)

// ErrScheduleNotFound is returned when the queried sheet has no column
// for the requested group.
var ErrScheduleNotFound = errors.New("sheets: schedule not found")

// Source extracts a group's schedule column from the spreadsheet.
type Source struct {
	querier   RangeQuerier
	rangeSpec string
}

// NewSource wires a schedule source over the given querier.
// rangeSpec is the rectangular bound queried per sheet; row 1 holds
// group codes in display form.
func NewSource(querier RangeQuerier, rangeSpec string) *Source {
	return &Source{querier: querier, rangeSpec: rangeSpec}
}

// Fetch returns the non-empty cells of the group's column for the given view,
// preserving row order. The group must be the registry's display form since
// header cells are matched exactly.
func (s *Source) Fetch(ctx context.Context, group string, view schedule.View) ([]string, error) {
	sheetName := view.SheetName()
	if sheetName == "" {
		return nil, fmt.Errorf("sheets: no sheet for view %s", view)
	}

	rows, err := s.querier.QueryRange(ctx, sheetName, s.rangeSpec)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrScheduleNotFound
	}

	header := rows[0]
	col := -1
	for i, cell := range header {
		if cell == group {
			col = i
			break
		}
	}
	if col == -1 {
		logger.Debug(ctx, "sheets", "sheets.column.miss",
			slog.String("group", group),
			slog.String("sheet", sheetName),
		)
		return nil, ErrScheduleNotFound
	}

	cells := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		cell := row[col]
		if strings.TrimSpace(cell) == "" {
			continue
		}
		cells = append(cells, cell)
	}

	logger.Debug(ctx, "sheets", "sheets.column.hit",
		slog.String("group", group),
		slog.String("sheet", sheetName),
		slog.Int("cells", len(cells)),
	)
	return cells, nil
}
