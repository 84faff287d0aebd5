package app

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/fttower/orbit/internal/ui"
)

const (
	panStepX  = 4.0
	panStepY  = 2.0
	zoomStep  = 1.1
	wheelStep = 1.1
)

// handleRawEvent routes input to whichever component has focus
func (a *App) handleRawEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Show()
		return
	case *tcell.EventMouse:
		a.handleMouse(ev)
		return
	case *tcell.EventKey:
		// Overlays swallow keys while visible
		if a.detail.IsVisible() {
			a.handleDetailKey(ev)
			return
		}
		if a.help.IsVisible() {
			if ev.Key() == tcell.KeyEscape || ev.Rune() == '?' || ev.Rune() == 'q' {
				a.help.Toggle()
			}
			return
		}
		if a.command.IsActive() {
			cmd, done := a.command.HandleKey(ev)
			if done {
				a.handleCommand(cmd)
			}
			return
		}
		if a.tagBar.IsActive() {
			a.tagBar.HandleKey(ev)
			return
		}
		a.handleKeypress(ev)
	}
}

// handleDetailKey scrolls or closes the detail overlay
func (a *App) handleDetailKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyEnter, ev.Rune() == 'q':
		a.detail.Hide()
	case ev.Rune() == 'j', ev.Key() == tcell.KeyDown:
		a.detail.ScrollDown()
	case ev.Rune() == 'k', ev.Key() == tcell.KeyUp:
		a.detail.ScrollUp()
	}
}

// handleKeypress handles a single keypress in map mode
func (a *App) handleKeypress(ev *tcell.EventKey) {
	if a.debugMode {
		a.SetStatus(formatKeyDebug(ev))
	}

	switch ev.Key() {
	case tcell.KeyDown:
		a.pan(0, -panStepY)
		return
	case tcell.KeyUp:
		a.pan(0, panStepY)
		return
	case tcell.KeyLeft:
		a.pan(panStepX, 0)
		return
	case tcell.KeyRight:
		a.pan(-panStepX, 0)
		return
	case tcell.KeyTab:
		a.cycleResult()
		return
	case tcell.KeyEnter:
		if path := a.hl.Current(); path != "" {
			a.openDetail(path)
		}
		return
	}

	switch ev.Rune() {
	case 'j':
		a.pan(0, -panStepY)
	case 'k':
		a.pan(0, panStepY)
	case 'h':
		a.pan(panStepX, 0)
	case 'l':
		a.pan(-panStepX, 0)
	case '+', '=':
		a.zoomAtCenter(zoomStep)
	case '-', '_':
		a.zoomAtCenter(1 / zoomStep)
	case '0':
		a.animateOverview()
	case '/':
		a.tagBar.Start()
	case 'x':
		a.agg.Clear()
		a.syncResults()
		a.SetStatus("Tags cleared")
	case 'p':
		a.togglePin()
	case 'c':
		a.open.Clear()
		a.relayout()
		a.animateOverview()
		a.SetStatus("Collapsed")
	case 'r':
		a.reindex()
	case '?':
		a.help.Toggle()
	case ':':
		a.command.Start()
	case 'q':
		a.quit = true
	}
}

// handleMouse processes wheel zoom, drag pan, and click toggles
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	area := a.mapArea()

	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		a.view.StopAnimation()
		a.view.ZoomAt(float64(x-area.X), float64(y-area.Y), wheelStep)
	case ev.Buttons()&tcell.WheelDown != 0:
		a.view.StopAnimation()
		a.view.ZoomAt(float64(x-area.X), float64(y-area.Y), 1/wheelStep)
	case ev.Buttons()&tcell.Button1 != 0:
		if !a.dragging {
			a.dragging = true
			a.dragMoved = false
		} else if x != a.lastX || y != a.lastY {
			a.view.StopAnimation()
			a.view.Pan(float64(x-a.lastX), float64(y-a.lastY))
			a.dragMoved = true
		}
		a.lastX, a.lastY = x, y
	default:
		if a.dragging {
			a.dragging = false
			if !a.dragMoved && area.Contains(x, y) {
				a.handleClick(area, x, y)
			}
		}
	}
}

// handleClick toggles a folder or opens the detail of a file
func (a *App) handleClick(area ui.Rect, x, y int) {
	path, ok := a.mapView.NodeAt(area, x, y)
	if !ok {
		return
	}
	node := a.idx.Tree.FindByPath(path)
	if node == nil {
		log.Printf("clicked node not in tree: %q", path)
		return
	}
	if node.IsFolder() {
		a.open.Toggle(path)
		a.relayout()
		return
	}
	a.openDetail(path)
}

// openDetail looks up a file in the index and shows the overlay
func (a *App) openDetail(path string) {
	file, err := a.idx.Detail(path)
	if err != nil {
		log.Printf("detail lookup: %v", err)
		a.SetStatus("No detail for " + path)
		return
	}
	a.detail.Show(file)
}

// cycleResult advances the ranked-result selection and pins the camera
// on the selected file so top changes stop moving it.
func (a *App) cycleResult() {
	entry, ok := a.results.CycleNext()
	if !ok {
		return
	}
	a.hl.HighlightPath(entry.Path)
	a.hl.SetPinned(true)
}

// togglePin flips the manual camera pin
func (a *App) togglePin() {
	if !a.hl.Active() {
		return
	}
	a.hl.SetPinned(!a.hl.Pinned())
	if a.hl.Pinned() {
		a.SetStatus("Pinned")
	} else {
		a.SetStatus("Unpinned")
		// Snap back to the current top result if it moved while pinned
		if top := a.agg.TopPath(); top != "" && top != a.hl.Current() {
			a.hl.HighlightPath(top)
		}
	}
}

// pan moves the viewport by screen cells and cancels any animation
func (a *App) pan(dx, dy float64) {
	a.view.StopAnimation()
	a.view.Pan(dx, dy)
}

// zoomAtCenter zooms keeping the map-area center fixed
func (a *App) zoomAtCenter(factor float64) {
	a.view.StopAnimation()
	w, h := a.mapSize()
	a.view.ZoomAt(w/2, h/2, factor)
}

func formatKeyDebug(ev *tcell.EventKey) string {
	return fmt.Sprintf("Key: %v | Rune: %q | Modifiers: %v", ev.Key(), ev.Rune(), ev.Modifiers())
}
