package app

import (
	"log/slog"
	"time"

	"github.com/soocke/time-waster/assets"
	"github.com/soocke/time-waster/config"
	"github.com/soocke/time-waster/debug"
	"github.com/soocke/time-waster/domain/waste"
	"github.com/soocke/time-waster/ui/model"
	"github.com/soocke/time-waster/ui/presenter"
	"github.com/soocke/time-waster/ui/view"
)

// AppContainer assembles the tracker, models, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Store    *waste.Store
	Tracker  *waste.Tracker
	Session  *model.SessionModel
	Quotes   *model.QuoteModel
	RootView *view.RootView
	UI       view.UI
	Stats    *debug.StatsBox

	// Presenters
	SessionPresenter *presenter.SessionPresenter
	QuotePresenter   *presenter.QuotePresenter
	StatusPresenter  *presenter.StatusPresenter
	Control          *presenter.ControlPresenter
	Focus            *presenter.FocusWatcher
	Loop             *presenter.Loop
}

// BuildContainer constructs all components. Side-effects limited to loading
// (and on first run creating) the waste data file.
func BuildContainer(cfg *config.Config, logger *slog.Logger, sched presenter.Scheduler, hasFocus func() bool) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger, Stats: &debug.StatsBox{}}
	c.Store = waste.NewStore(cfg.DataPath, logger)
	c.Tracker = waste.NewTracker(c.Store, logger, time.Now)
	c.Session = model.NewSessionModel(c.Tracker)
	c.Quotes = model.NewQuoteModel(assets.Quotes(), nil)

	// View; widgets are built later by the app once Tk styling is applied.
	c.RootView = view.NewRootView(cfg.Width, logger)
	c.UI = c.RootView

	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.UI)
	c.QuotePresenter = presenter.NewQuotePresenter(c.Quotes, c.Tracker, c.UI)
	c.StatusPresenter = presenter.NewStatusPresenter(c.Session, c.UI)
	c.Tracker.AddListener(c.StatusPresenter.OnState)
	if logger != nil {
		c.Tracker.AddListener(func(prev, next waste.TimerState) {
			logger.Debug("timer transition", "from", prev.String(), "to", next.String())
		})
	}

	// Schedule is set by the app; it owns the Tk after-chain.
	c.Loop = presenter.NewLoop(c.SessionPresenter, c.QuotePresenter, c.StatusPresenter, nil)
	c.Control = presenter.NewControlPresenter(c.Tracker, c.Quotes, c.Loop.Refresh)

	c.Focus = presenter.NewFocusWatcher(c.Tracker, c.Quotes, logger, sched, hasFocus)
	c.Focus.Debounce = cfg.FocusDebounce
	c.Focus.DistractedLock = cfg.DistractedLock
	c.Focus.WelcomeLock = cfg.WelcomeLock
	c.Focus.AutoPause = cfg.AutoPause
	c.Focus.OnChange = c.Loop.Refresh
	return c
}

// PublishStats hands the current snapshot to the debug stats logger.
func (c *AppContainer) PublishStats() {
	snap := c.Session.Values()
	c.Stats.Publish(debug.TrackerStats{
		Running:        snap.Running,
		SessionSeconds: snap.SessionSeconds,
		TotalSeconds:   snap.TotalSeconds,
		Tier:           snap.Tier.Name,
	})
}
