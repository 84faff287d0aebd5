package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/fttower/orbit/internal/history"
)

// CommandMode is the `:command` input line. Input is held as runes so
// cursor movement and deletion stay correct for multi-byte text.
type CommandMode struct {
	active  bool
	input   []rune
	cursor  int
	history *History
}

// NewCommandMode creates a command line without history persistence.
func NewCommandMode() *CommandMode {
	return &CommandMode{history: NewHistory(50)}
}

// NewCommandModeWithHistory persists entered commands through manager.
func NewCommandModeWithHistory(manager *history.Manager) (*CommandMode, error) {
	h, err := NewHistoryWithManager(50, manager, "command.toml")
	if err != nil {
		h = NewHistory(50)
	}
	return &CommandMode{history: h}, nil
}

// Start enters command mode with an empty line.
func (c *CommandMode) Start() {
	c.active = true
	c.input = c.input[:0]
	c.cursor = 0
	c.history.Reset()
}

// Stop leaves command mode.
func (c *CommandMode) Stop() {
	c.active = false
}

// IsActive reports whether command mode is active.
func (c *CommandMode) IsActive() bool {
	return c.active
}

// GetInput returns the current command input.
func (c *CommandMode) GetInput() string {
	return strings.TrimSpace(string(c.input))
}

func (c *CommandMode) setInput(s string) {
	c.input = []rune(s)
	c.cursor = len(c.input)
}

// deleteWordBackwards removes trailing blanks and then the word before
// the cursor.
func (c *CommandMode) deleteWordBackwards() {
	pos := c.cursor
	for pos > 0 && (c.input[pos-1] == ' ' || c.input[pos-1] == '\t') {
		pos--
	}
	for pos > 0 && c.input[pos-1] != ' ' && c.input[pos-1] != '\t' {
		pos--
	}
	c.input = append(c.input[:pos], c.input[c.cursor:]...)
	c.cursor = pos
}

// HandleKey processes a key press. done reports that command mode
// exited; command holds the entered line on Enter.
func (c *CommandMode) HandleKey(ev *tcell.EventKey) (command string, done bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		c.Stop()
		return "", true
	case tcell.KeyEnter:
		cmd := c.GetInput()
		c.history.Add(cmd)
		c.Stop()
		return cmd, true
	case tcell.KeyUp:
		if !c.history.IsNavigating() {
			c.history.SetTemporary(string(c.input))
		}
		if prev, ok := c.history.Previous(); ok {
			c.setInput(prev)
		}
	case tcell.KeyDown:
		if next, ok := c.history.Next(); ok {
			c.setInput(next)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if c.cursor > 0 {
			c.input = append(c.input[:c.cursor-1], c.input[c.cursor:]...)
			c.cursor--
		} else if len(c.input) == 0 {
			// Backspace on an empty line leaves command mode
			c.Stop()
			return "", true
		}
	case tcell.KeyDelete:
		if c.cursor < len(c.input) {
			c.input = append(c.input[:c.cursor], c.input[c.cursor+1:]...)
		}
	case tcell.KeyLeft:
		if c.cursor > 0 {
			c.cursor--
		}
	case tcell.KeyRight:
		if c.cursor < len(c.input) {
			c.cursor++
		}
	case tcell.KeyHome:
		c.cursor = 0
	case tcell.KeyEnd:
		c.cursor = len(c.input)
	case tcell.KeyCtrlW:
		c.deleteWordBackwards()
	case tcell.KeyCtrlU:
		c.input = append(c.input[:0], c.input[c.cursor:]...)
		c.cursor = 0
	case tcell.KeyCtrlK:
		c.input = c.input[:c.cursor]
	default:
		if r := ev.Rune(); r > 0 {
			c.input = append(c.input, 0)
			copy(c.input[c.cursor+1:], c.input[c.cursor:])
			c.input[c.cursor] = r
			c.cursor++
		}
	}

	return "", false
}

// Render draws the command line at row y.
func (c *CommandMode) Render(screen *Screen, y int) {
	if !c.active {
		return
	}

	textStyle := screen.CommandTextStyle()
	cursorStyle := screen.CommandCursorStyle()
	width := screen.GetWidth()

	screen.DrawString(0, y, ":", screen.CommandPromptStyle())

	x := 1
	for i, r := range c.input {
		if x >= width {
			break
		}
		style := textStyle
		if i == c.cursor {
			style = cursorStyle
		}
		screen.SetCell(x, y, r, style)
		x += RuneWidth(r)
	}

	if c.cursor >= len(c.input) && x < width {
		screen.SetCell(x, y, ' ', cursorStyle)
		x++
	}

	for ; x < width; x++ {
		screen.SetCell(x, y, ' ', textStyle)
	}
}
