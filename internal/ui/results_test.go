package ui

import (
	"testing"

	"github.com/fttower/orbit/internal/search"
)

func TestResultsPanelCycleWraps(t *testing.T) {
	p := NewResultsPanel(30, 10)
	p.SetEntries([]search.ScoreEntry{
		{Path: "a.md", Title: "A"},
		{Path: "b.md", Title: "B"},
	})

	if _, ok := p.Selected(); ok {
		t.Error("fresh entries should have no selection")
	}

	first, ok := p.CycleNext()
	if !ok || first.Path != "a.md" {
		t.Errorf("first cycle = %+v, want a.md", first)
	}
	second, _ := p.CycleNext()
	if second.Path != "b.md" {
		t.Errorf("second cycle = %+v, want b.md", second)
	}
	wrapped, _ := p.CycleNext()
	if wrapped.Path != "a.md" {
		t.Errorf("wrap = %+v, want a.md again", wrapped)
	}
}

func TestResultsPanelSetEntriesResetsSelection(t *testing.T) {
	p := NewResultsPanel(30, 10)
	p.SetEntries([]search.ScoreEntry{{Path: "a.md"}})
	p.CycleNext()

	p.SetEntries([]search.ScoreEntry{{Path: "b.md"}})
	if _, ok := p.Selected(); ok {
		t.Error("selection should reset with fresh entries")
	}
	if !p.Visible() {
		t.Error("panel with entries should be visible")
	}

	p.SetEntries(nil)
	if p.Visible() {
		t.Error("panel with no entries should hide")
	}
	if _, ok := p.CycleNext(); ok {
		t.Error("cycling an empty panel should report no entry")
	}
}
