package ui

import (
	"github.com/fttower/orbit/internal/history"
)

// History is the recall buffer behind the tag bar and the command
// line. cursor is -1 when not navigating; otherwise it indexes the
// entry currently shown.
type History struct {
	entries []string
	cursor  int
	max     int
	pending string // input the user had typed before navigating

	manager  *history.Manager
	filename string
}

// NewHistory creates an in-memory history capped at max entries.
func NewHistory(max int) *History {
	return &History{cursor: -1, max: max}
}

// NewHistoryWithManager loads persisted entries from filename and
// saves back on every Add. The returned History is usable even when
// loading fails.
func NewHistoryWithManager(max int, manager *history.Manager, filename string) (*History, error) {
	h := NewHistory(max)
	h.manager = manager
	h.filename = filename

	entries, err := manager.Load(filename)
	if err != nil {
		return h, err
	}
	if len(entries) > max {
		entries = entries[len(entries)-max:]
	}
	h.entries = entries
	return h, nil
}

// Add records an entry. Blank entries and immediate repeats are
// ignored. Persistence is best effort.
func (h *History) Add(entry string) {
	if entry == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return
	}

	h.entries = append(h.entries, entry)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	h.Reset()

	if h.manager != nil && h.filename != "" {
		h.manager.Save(h.filename, h.entries)
	}
}

// Previous steps back through history, landing on the newest entry
// when navigation starts.
func (h *History) Previous() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor < 0:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps forward. Stepping past the newest entry restores the
// input saved with SetTemporary and leaves navigation.
func (h *History) Next() (string, bool) {
	if h.cursor < 0 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		pending := h.pending
		h.pending = ""
		return pending, true
	}
	return h.entries[h.cursor], true
}

// Reset leaves navigation mode.
func (h *History) Reset() {
	h.cursor = -1
	h.pending = ""
}

// SetTemporary saves the in-progress input so Next can restore it.
func (h *History) SetTemporary(input string) {
	h.pending = input
}

// IsNavigating reports whether the cursor is inside history.
func (h *History) IsNavigating() bool {
	return h.cursor >= 0
}

// GetAll returns a copy of the stored entries, oldest first.
func (h *History) GetAll() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
