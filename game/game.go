package game

import (
	"context"
	"errors"
	"minimapicons/config"
	"minimapicons/entity"
	"minimapicons/icons"
	"minimapicons/input"
	"minimapicons/logger"
	"minimapicons/menu"
	"minimapicons/settings"
	"minimapicons/ui"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

var gameLog zerolog.Logger = logger.Module("game")

type Options struct {
	Hotkey      input.KeyCombo
	WindowTitle string
	Atlas       *ui.Atlas
}

type Game struct {
	ctx     context.Context
	source  entity.Source
	store   *settings.Store
	builder *icons.Builder
	ui      *ui.Context
	menu    *menu.Menu
	tracker *windowTracker

	hotkey   input.KeyCombo
	toggle   input.Toggle
	menuOpen bool
	menuH    float32

	mutex     sync.RWMutex
	player    entity.Entity
	entities  []entity.Entity
	fresh     bool
	scanning  bool
	scanErr   string
	scanTook  time.Duration
	lastScan  time.Time
	connected bool

	width, height int
	logLevel      zerolog.Level
}

func NewGame(ctx context.Context, source entity.Source, store *settings.Store, builder *icons.Builder, opts Options) *Game {
	g := &Game{
		ctx:      ctx,
		source:   source,
		store:    store,
		builder:  builder,
		ui:       ui.NewContext(opts.Atlas),
		menu:     menu.New(store),
		tracker:  newWindowTracker(opts.WindowTitle),
		hotkey:   opts.Hotkey,
		entities: make([]entity.Entity, 0, 256),
		width:    config.SCREEN_WIDTH,
		height:   config.SCREEN_HEIGHT,
		logLevel: zerolog.NoLevel,
	}
	g.applyLogLevel(store.Settings())
	return g
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		g.menu.Close()
		return ebiten.Termination
	default:
	}

	if g.menuOpen {
		g.ui.Capture()
	}
	if g.toggle.Pressed(input.IsComboDown(g.hotkey)) {
		g.setMenuOpen(!g.menuOpen)
	}

	s := g.store.Settings()
	g.applyLogLevel(s)
	g.tracker.track()

	g.scheduleScan()

	g.mutex.Lock()
	fresh := g.fresh
	entities := g.entities
	g.fresh = false
	g.mutex.Unlock()

	if fresh {
		g.builder.Sync(entities, s)
	}
	g.builder.Tick(s)
	return nil
}

// scheduleScan starts a background snapshot every SCAN_INTERVAL unless one
// is still running.
func (g *Game) scheduleScan() {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.scanning || time.Since(g.lastScan) < config.SCAN_INTERVAL {
		return
	}
	g.lastScan = time.Now()
	g.scanning = true

	go func() {
		start := time.Now()
		snap, err := g.source.Snapshot(g.ctx)

		var filtered []entity.Entity
		if err == nil {
			filtered = entity.Filter(snap.Entities, snap.Player, config.SCAN_RANGE)
		}

		g.mutex.Lock()
		defer g.mutex.Unlock()
		g.scanning = false
		g.scanTook = time.Since(start)

		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			if msg := err.Error(); msg != g.scanErr {
				gameLog.Warn().Err(err).Msg("entity scan failed")
				g.scanErr = msg
			}
			g.connected = false
			return
		}
		if g.scanErr != "" {
			gameLog.Info().Msg("entity scan recovered")
			g.scanErr = ""
		}

		g.connected = true
		g.player = snap.Player
		g.entities = filtered
		g.fresh = true
	}()
}

func (g *Game) setMenuOpen(open bool) {
	if open == g.menuOpen {
		return
	}
	g.menuOpen = open
	ebiten.SetWindowMousePassthrough(!open)
	if !open {
		g.menu.Close()
	}
	gameLog.Debug().Bool("open", open).Msg("menu toggled")
}

// MenuOpen reports whether the settings menu is showing.
func (g *Game) MenuOpen() bool {
	return g.menuOpen
}

// OnSettingsReloaded is called by the settings watcher. The next Update
// re-syncs every icon against the reloaded settings.
func (g *Game) OnSettingsReloaded(s *settings.IconsBuilderSettings) {
	g.mutex.Lock()
	g.fresh = true
	g.mutex.Unlock()
	gameLog.Debug().Int("customIcons", len(s.CustomIcons.Content)).Msg("settings reloaded")
}

func (g *Game) applyLogLevel(s *settings.IconsBuilderSettings) {
	level := zerolog.InfoLevel
	if s.LogDebugInformation.Value {
		level = zerolog.DebugLevel
	}
	if level != g.logLevel {
		zerolog.SetGlobalLevel(level)
		g.logLevel = level
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
