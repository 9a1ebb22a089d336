// Package schedule renders raw schedule columns as Markdown text.
package schedule

import "strings"

// dayMarkers are matched exactly against week-view cells to detect day boundaries.
var dayMarkers = map[string]struct{}{
	"📅Понедельник": {},
	"📅Вторник":     {},
	"📅Среда":       {},
	"📅Четверг":     {},
	"📅Пятница":     {},
	"📅Суббота":     {},
	"📅Воскресенье":  {},
}

// gapGlyph marks a break slot inside a day block.
const gapGlyph = "⏳"

// escapeMD escapes Markdown emphasis characters inside cell text so
// the surrounding bold markers stay balanced.
func escapeMD(s string) string {
	s = strings.ReplaceAll(s, "_", "\\_")
	s = strings.ReplaceAll(s, "*", "\\*")
	return s
}

func emphasize(cell string) string {
	return "*" + escapeMD(cell) + "*"
}

// FormatDay renders a single-period schedule. Each cell goes on its own
// line; a blank line is inserted after every 5th cell to separate slot blocks.
func FormatDay(cells []string) string {
	var b strings.Builder
	for i, cell := range cells {
		b.WriteString(emphasize(cell))
		b.WriteByte('\n')
		if (i+1)%5 == 0 && i > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FormatWeek renders a week schedule where day-marker cells delimit day
// blocks. A blank line separates each day block from the next header, and
// a break slot gets a blank line above it. A sequence ending on a header
// gets one trailing blank line; empty input yields a single blank line.
func FormatWeek(cells []string) string {
	var b strings.Builder
	isNewDay := true

	for _, cell := range cells {
		if _, ok := dayMarkers[cell]; ok {
			if !isNewDay {
				b.WriteByte('\n')
			}
			b.WriteString(emphasize(cell))
			b.WriteByte('\n')
			isNewDay = true
			continue
		}
		if strings.Contains(cell, gapGlyph) {
			b.WriteByte('\n')
		}
		b.WriteString(emphasize(cell))
		b.WriteByte('\n')
		isNewDay = false
	}

	if isNewDay {
		b.WriteByte('\n')
	}
	return b.String()
}

// Format dispatches to the mode matching the view.
func Format(v View, cells []string) string {
	if v == ViewWeek {
		return FormatWeek(cells)
	}
	return FormatDay(cells)
}
