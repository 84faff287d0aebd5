package app

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/fttower/orbit/internal/config"
	"github.com/fttower/orbit/internal/highlight"
	"github.com/fttower/orbit/internal/history"
	"github.com/fttower/orbit/internal/index"
	"github.com/fttower/orbit/internal/layout"
	"github.com/fttower/orbit/internal/model"
	"github.com/fttower/orbit/internal/sched"
	"github.com/fttower/orbit/internal/search"
	"github.com/fttower/orbit/internal/ui"
	"github.com/fttower/orbit/internal/viewport"
)

// App is the main application controller
type App struct {
	cfg    *config.Config
	screen *ui.Screen

	idx      *index.Index
	root     string // content root used for reindexing
	open     *model.OpenSet
	view     *viewport.Viewport
	queue    *sched.Queue
	searcher *search.Searcher
	agg      *search.Aggregator
	hl       *highlight.Highlighter

	mapView *ui.MapView
	tagBar  *ui.TagBar
	results *ui.ResultsPanel
	detail  *ui.DetailView
	help    *ui.HelpScreen
	command *ui.CommandMode
	log     *ui.MessageLogger

	layoutOpts layout.Options
	stats      index.Stats

	watcher *index.Watcher
	changes chan struct{}

	statusMsg  string
	statusTime time.Time
	quit       bool
	debugMode  bool

	// mouse drag state
	dragging  bool
	dragMoved bool
	lastX     int
	lastY     int
}

// camera adapts the viewport to the highlighter's framing interface
type camera struct {
	view *viewport.Viewport
}

func (c *camera) AnimateTo(tx, ty, scale float64, duration time.Duration) {
	c.view.AnimateTo(tx, ty, scale, duration, time.Now())
}

// NewApp creates a new App instance
func NewApp(cfg *config.Config, idx *index.Index, contentRoot string) (*App, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	screen.EnableMouse()

	a := &App{
		cfg:    cfg,
		screen: screen,
		idx:    idx,
		root:   contentRoot,
		open:   model.NewOpenSet(),
		queue:  sched.NewQueue(time.Now),
		help:   ui.NewHelpScreen(),
		detail: ui.NewDetailView(),
		log:    ui.NewMessageLogger(100),
		layoutOpts: layout.Options{
			MinSpacing:  cfg.MinSpacing,
			LevelHeight: cfg.LevelHeight,
			Margin:      cfg.Margin,
			MinCanvasW:  layout.DefaultOptions().MinCanvasW,
			MinCanvasH:  layout.DefaultOptions().MinCanvasH,
		},
		statusMsg:  "Ready",
		statusTime: time.Now(),
		changes:    make(chan struct{}, 1),
	}

	a.view = viewport.New(viewport.Limits{MinScale: cfg.MinScale, MaxScale: cfg.MaxScale})

	a.searcher = search.NewSearcher(idx, cfg.MaxResults)
	a.agg = search.NewAggregator(a.searcher)
	a.results = ui.NewResultsPanel(36, 15)

	a.hl = highlight.New(a.open, a.relayout, a.queue, &camera{view: a.view}, a.mapSize, highlight.Options{
		StepDelay:    time.Duration(cfg.StepDelayMs) * time.Millisecond,
		AnimDuration: time.Duration(cfg.AnimationMs) * time.Millisecond,
		Padding:      highlight.DefaultOptions().Padding,
	})

	a.mapView = ui.NewMapView(a.view, a.open, a.hl)

	manager, err := history.NewManager()
	if err != nil {
		log.Printf("history manager unavailable: %v", err)
		a.tagBar = ui.NewTagBar()
	} else {
		a.tagBar = ui.NewTagBarWithHistory(manager)
	}
	a.tagBar.Tags = a.agg.Tags
	a.tagBar.Suggest = a.searcher.SuggestTags
	a.tagBar.OnCommit = func(tag string) bool {
		ok := a.agg.AddTag(tag)
		a.syncResults()
		return ok
	}
	a.tagBar.OnRemoveLast = func() bool {
		ok := a.agg.RemoveLastTag()
		a.syncResults()
		return ok
	}

	a.agg.Pinned = a.hl.Pinned
	a.agg.OnTopChange = func(path string) {
		a.hl.HighlightPath(path)
	}
	a.agg.OnEmpty = func() {
		a.hl.Clear()
		a.animateOverview()
	}

	if manager != nil {
		if cmd, err := ui.NewCommandModeWithHistory(manager); err == nil {
			a.command = cmd
		}
	}
	if a.command == nil {
		a.command = ui.NewCommandMode()
	}

	a.stats = idx.Stats()
	a.relayout()
	a.applyOverview()

	return a, nil
}

// EnableWatch starts a filesystem watcher that triggers reindexing when
// the content root changes. Events are funneled into the main loop.
func (a *App) EnableWatch() error {
	a.watcher = index.NewWatcher(a.root, index.DefaultDebounce, func() {
		select {
		case a.changes <- struct{}{}:
		default:
		}
	}, func(err error) {
		log.Printf("watcher error: %v", err)
	})
	return a.watcher.Start()
}

// Run starts the main event loop. All state mutation happens on this
// goroutine; input and watcher events are funneled in via channels.
func (a *App) Run() error {
	defer a.Close()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			event := a.screen.PollEvent()
			eventChan <- event
			if event == nil {
				break
			}
		}
	}()

	ticker := time.NewTicker(50 * time.Millisecond) // ~20 FPS
	defer ticker.Stop()

	for !a.quit {
		select {
		case ev := <-eventChan:
			if ev != nil {
				a.handleRawEvent(ev)
			}
		case <-a.changes:
			a.reindex()
		case <-ticker.C:
			a.queue.RunDue()
			a.view.Tick(time.Now())
			a.render()
		}
	}

	return nil
}

// Close shuts down the watcher and the terminal screen
func (a *App) Close() error {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.screen != nil {
		return a.screen.Close()
	}
	return nil
}

// Quit signals the app to quit
func (a *App) Quit() {
	a.quit = true
}

// SetDebugMode enables or disables debug mode
func (a *App) SetDebugMode(debug bool) {
	a.debugMode = debug
}

// SetStatus sets the status message
func (a *App) SetStatus(msg string) {
	a.statusMsg = msg
	a.statusTime = time.Now()
	a.log.AddMessage(msg)
}

// relayout recomputes node positions from the tree and the open set
// and hands the result to the map view.
func (a *App) relayout() *layout.Result {
	res := layout.Compute(a.idx.Tree, a.open, a.layoutOpts)
	a.mapView.SetLayout(res)
	return res
}

// mapSize returns the drawable map area in cells
func (a *App) mapSize() (float64, float64) {
	area := a.mapArea()
	return float64(area.W), float64(area.H)
}

// mapArea is the screen region between the header and the status rows
func (a *App) mapArea() ui.Rect {
	w, h := a.screen.Size()
	bottom := 1 // status line
	if a.tagBar.IsActive() || len(a.agg.Tags()) > 0 {
		bottom++
	}
	if a.command.IsActive() {
		bottom++
	}
	return ui.Rect{X: 0, Y: 1, W: w, H: h - 1 - bottom}
}

// applyOverview snaps the viewport so the whole map fits on screen
func (a *App) applyOverview() {
	w, h := a.mapSize()
	tx, ty, scale := highlight.OverviewTransform(a.mapView.Layout(), w, h)
	a.view.SetTransform(tx, ty, scale)
}

// animateOverview eases the viewport back to the full-map framing
func (a *App) animateOverview() {
	w, h := a.mapSize()
	tx, ty, scale := highlight.OverviewTransform(a.mapView.Layout(), w, h)
	a.view.AnimateTo(tx, ty, scale, time.Duration(a.cfg.AnimationMs)*time.Millisecond, time.Now())
}

// syncResults pushes the aggregator's ranked list into the side panel
func (a *App) syncResults() {
	a.results.SetEntries(a.agg.Entries())
}

// reindex rebuilds the file index from the content root and refreshes
// every component that holds index state.
func (a *App) reindex() {
	builder := index.NewBuilder(a.root, a.cfg.RepoURL)
	idx, err := builder.Build()
	if err != nil {
		log.Printf("reindex failed: %v", err)
		a.SetStatus("Reindex failed: " + err.Error())
		return
	}
	if err := idx.Save(a.cfg.IndexPath); err != nil {
		log.Printf("index save failed: %v", err)
	}

	a.idx = idx
	a.searcher.SetIndex(idx)
	a.stats = idx.Stats()
	a.relayout()

	// A highlight aimed at a path that no longer exists is dropped
	if cur := a.hl.Current(); cur != "" && idx.Tree.FindByPath(cur) == nil {
		a.hl.Clear()
	}

	// Re-run the active query against the fresh index
	if tags := a.agg.Tags(); len(tags) > 0 {
		a.agg.SetTags(tags)
		a.syncResults()
	}

	a.SetStatus(fmt.Sprintf("Indexed %d files", len(idx.Files)))
}
