package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/fttower/orbit/internal/history"
)

// TagBar manages the search tag input. Committed tags live in the
// aggregator; the bar owns the pending text, keyboard focus, and the
// tag history.
type TagBar struct {
	pending   string
	cursorPos int
	active    bool
	history   *History

	// OnCommit is called when the user commits the pending text as a tag
	OnCommit func(tag string) bool
	// OnRemoveLast is called when backspace is pressed on empty input
	OnRemoveLast func() bool
	// Tags supplies the committed tags for rendering
	Tags func() []string
	// Suggest supplies completions for the pending text, may be nil
	Suggest func(partial string, limit int) []string
}

// NewTagBar creates a tag bar without history persistence
func NewTagBar() *TagBar {
	return &TagBar{history: NewHistory(50)}
}

// NewTagBarWithHistory creates a tag bar with persisted tag history
func NewTagBarWithHistory(manager *history.Manager) *TagBar {
	h, err := NewHistoryWithManager(50, manager, "tags.toml")
	if err != nil {
		// If history loading fails, continue with empty history
		h = NewHistory(50)
	}
	return &TagBar{history: h}
}

// Start gives the tag bar keyboard focus
func (t *TagBar) Start() {
	t.active = true
	t.pending = ""
	t.cursorPos = 0
	t.history.Reset()
}

// Stop releases keyboard focus
func (t *TagBar) Stop() {
	t.active = false
	t.history.Reset()
}

// IsActive returns whether the tag bar has keyboard focus
func (t *TagBar) IsActive() bool {
	return t.active
}

// HandleKey processes a key press while the tag bar has focus
func (t *TagBar) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		t.Stop()
	case tcell.KeyEnter:
		tag := strings.TrimSpace(t.pending)
		if tag == "" {
			t.Stop()
			return
		}
		if t.OnCommit != nil && t.OnCommit(tag) {
			t.history.Add(tag)
		}
		t.pending = ""
		t.cursorPos = 0
	case tcell.KeyTab:
		// Complete the pending text from the first suggestion.
		if t.Suggest != nil && t.pending != "" {
			if suggestions := t.Suggest(t.pending, 1); len(suggestions) > 0 {
				t.pending = suggestions[0]
				t.cursorPos = len([]rune(t.pending))
			}
		}
	case tcell.KeyUp:
		if !t.history.IsNavigating() {
			t.history.SetTemporary(t.pending)
		}
		if prev, ok := t.history.Previous(); ok {
			t.pending = prev
			t.cursorPos = len([]rune(t.pending))
		}
	case tcell.KeyDown:
		if next, ok := t.history.Next(); ok {
			t.pending = next
			t.cursorPos = len([]rune(t.pending))
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if t.cursorPos > 0 {
			runes := []rune(t.pending)
			runes = append(runes[:t.cursorPos-1], runes[t.cursorPos:]...)
			t.pending = string(runes)
			t.cursorPos--
		} else if t.pending == "" && t.OnRemoveLast != nil {
			// Backspace on empty input drops the last committed tag.
			t.OnRemoveLast()
		}
	case tcell.KeyLeft:
		if t.cursorPos > 0 {
			t.cursorPos--
		}
	case tcell.KeyRight:
		if t.cursorPos < len([]rune(t.pending)) {
			t.cursorPos++
		}
	case tcell.KeyCtrlU:
		t.pending = ""
		t.cursorPos = 0
	default:
		if r := ev.Rune(); r > 0 {
			runes := []rune(t.pending)
			runes = append(runes[:t.cursorPos], append([]rune{r}, runes[t.cursorPos:]...)...)
			t.pending = string(runes)
			t.cursorPos++
		}
	}
}

// Render draws the tag bar on the given row: committed tags in
// brackets, then the pending text with a cursor, then a result count.
func (t *TagBar) Render(screen *Screen, y int, resultCount int) {
	labelStyle := screen.TagLabelStyle()
	textStyle := screen.TagTextStyle()
	cursorStyle := screen.TagCursorStyle()
	width := screen.GetWidth()

	x := 0
	screen.DrawString(x, y, "Tags: ", labelStyle)
	x += 6

	if t.Tags != nil {
		for _, tag := range t.Tags() {
			chip := "[" + tag + "] "
			screen.DrawStringLimited(x, y, chip, width-x, labelStyle)
			x += StringWidth(chip)
		}
	}

	runes := []rune(t.pending)
	for i, r := range runes {
		style := textStyle
		if t.active && i == t.cursorPos {
			style = cursorStyle
		}
		if x < width {
			screen.SetCell(x, y, r, style)
			x += RuneWidth(r)
		}
	}
	if t.active && t.cursorPos >= len(runes) && x < width {
		screen.SetCell(x, y, ' ', cursorStyle)
		x++
	}

	if resultCount > 0 {
		count := fmt.Sprintf(" %d results", resultCount)
		countX := width - StringWidth(count)
		if countX > x {
			screen.DrawString(countX, y, count, screen.TagResultCountStyle())
		}
	}
}
