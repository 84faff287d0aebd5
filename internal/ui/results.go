package ui

import (
	"fmt"

	"github.com/fttower/orbit/internal/search"
)

// ResultsPanel renders the ranked score list down the right edge of
// the map and tracks which entry the user has cycled to.
type ResultsPanel struct {
	entries  []search.ScoreEntry
	selected int
	visible  bool
	width    int
	maxRows  int
}

// NewResultsPanel creates a panel with the given column width
func NewResultsPanel(width, maxRows int) *ResultsPanel {
	return &ResultsPanel{selected: -1, width: width, maxRows: maxRows}
}

// SetEntries replaces the ranked list. Selection resets because the
// previous selection belonged to a different query evaluation.
func (p *ResultsPanel) SetEntries(entries []search.ScoreEntry) {
	p.entries = entries
	p.selected = -1
	p.visible = len(entries) > 0
}

// Visible reports whether the panel is shown
func (p *ResultsPanel) Visible() bool {
	return p.visible
}

// Count returns the number of ranked entries
func (p *ResultsPanel) Count() int {
	return len(p.entries)
}

// CycleNext advances the selection and returns the selected entry.
// Wraps around at the end.
func (p *ResultsPanel) CycleNext() (search.ScoreEntry, bool) {
	if len(p.entries) == 0 {
		return search.ScoreEntry{}, false
	}
	p.selected = (p.selected + 1) % len(p.entries)
	return p.entries[p.selected], true
}

// Selected returns the currently selected entry, if any
func (p *ResultsPanel) Selected() (search.ScoreEntry, bool) {
	if p.selected < 0 || p.selected >= len(p.entries) {
		return search.ScoreEntry{}, false
	}
	return p.entries[p.selected], true
}

// Render draws the panel inside the map area
func (p *ResultsPanel) Render(screen *Screen, area Rect) {
	if !p.visible || len(p.entries) == 0 {
		return
	}

	w := p.width
	if w > area.W/2 {
		w = area.W / 2
	}
	x := area.X + area.W - w

	rows := len(p.entries)
	if rows > p.maxRows {
		rows = p.maxRows
	}
	if rows > area.H-1 {
		rows = area.H - 1
	}

	screen.DrawStringLimited(x, area.Y, fmt.Sprintf(" Results (%d) ", len(p.entries)), w, screen.HeaderStyle())
	for i := 0; i < rows; i++ {
		e := p.entries[i]
		style := screen.ResultTitleStyle()
		if i == p.selected {
			style = screen.ResultSelectedStyle()
		}
		line := fmt.Sprintf("%2d. %s", i+1, e.Title)
		screen.DrawStringLimited(x, area.Y+1+i, PadStringToWidth(TruncateToWidthWithEllipsis(line, w-8), w-8), w, style)

		score := fmt.Sprintf("%d×%d", e.TotalScore, e.MatchCount)
		screen.DrawStringLimited(x+w-StringWidth(score), area.Y+1+i, score, w, screen.ResultScoreStyle())
	}
}
