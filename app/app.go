package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/time-waster/config"
	"github.com/soocke/time-waster/debug"
	"github.com/soocke/time-waster/domain/window"
	"github.com/soocke/time-waster/ui/presenter"
	"github.com/soocke/time-waster/ui/theme"
)

const closeMessage = "Nicely wasted. Your progress has been saved, you can keep wasting next time."

type app struct {
	title   string
	config  *config.Config
	logger  *slog.Logger
	c       *AppContainer
	afterID string
	closing bool
	cancel  context.CancelFunc
}

// NewApp creates the tracker window. The waste data file is loaded here.
func NewApp(title string, cfg *config.Config, logger *slog.Logger) *app {
	a := &app{title: title, config: cfg, logger: logger}

	sched := presenter.SchedulerFunc(func(d time.Duration, f func()) { TclAfter(d, f) })
	a.c = BuildContainer(cfg, logger, sched, a.hasFocus)
	a.c.Loop.Schedule = a.scheduleUpdate

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.Width, cfg.Height))
	return a
}

// Start builds the widgets, binds focus events and enters the Tk event loop.
func (a *app) Start() {
	theme.SetDark(a.config.DarkMode)
	a.c.RootView.Build(a.title, a.c.Control.Toggle)

	// Focus events on the toplevel also fire for focus moving between its
	// widgets; the focus watcher debounces and re-checks.
	Bind(App, "<FocusIn>", Command(a.c.Focus.OnFocusGained))
	Bind(App, "<FocusOut>", Command(a.c.Focus.OnFocusLost))
	Bind(App, "<Activate>", Command(a.c.Focus.OnFocusGained))
	Bind(App, "<Deactivate>", Command(a.c.Focus.OnFocusLost))

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	if a.config.Debug {
		debug.StartStatsLogger(ctx, a.config.StatsInterval, a.logger, a.c.Stats)
	}

	a.logger.Info("tracker ready", "data", a.c.Store.Path(), "total_seconds", a.c.Tracker.TotalSeconds())

	// First paint, then the tick chain re-arms itself.
	a.update()

	App.Wait()
}

func (a *app) update() {
	a.c.Loop.Tick()
	a.c.PublishStats()
}

func (a *app) scheduleUpdate() {
	if a.closing {
		return
	}
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(a.config.Tick, a.update)
}

// hasFocus reports whether the tracker window still holds input focus.
// The OS foreground window is authoritative where it can be queried.
func (a *app) hasFocus() bool {
	if ok, err := window.IsForeground(a.title, nil); err == nil {
		return ok
	}
	var focused string
	func() {
		defer func() { _ = recover() }()
		focused = Focus(Displayof(App))
	}()
	return focused != ""
}

func (a *app) exitHandler() {
	if a.closing {
		return
	}
	a.closing = true
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if err := a.c.Control.Close(); err != nil {
		a.logger.Error("final save failed", "error", err)
	}
	a.logger.Info("tracker closed", "total_seconds", a.c.Tracker.TotalSeconds())
	MessageBox(Title(a.title), Msg(closeMessage), Icon("info"))
	if a.cancel != nil {
		a.cancel()
	}
	Destroy(App)
}
