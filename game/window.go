package game

import (
	"errors"
	"minimapicons/process"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const windowPollInterval = time.Second

// windowTracker keeps the overlay window on top of the game's client area.
type windowTracker struct {
	title    string
	last     process.Rect
	lastPoll time.Time
	missing  bool
}

func newWindowTracker(title string) *windowTracker {
	return &windowTracker{title: title}
}

func (w *windowTracker) track() {
	if w.title == "" || time.Since(w.lastPoll) < windowPollInterval {
		return
	}
	w.lastPoll = time.Now()

	rect, err := process.WindowRect(w.title)
	if err != nil {
		if !w.missing {
			ev := gameLog.Warn()
			if errors.Is(err, process.ErrWindowNotFound) {
				ev = gameLog.Debug()
			}
			ev.Err(err).Str("title", w.title).Msg("game window not available")
			w.missing = true
		}
		return
	}
	w.missing = false

	if rect == w.last || rect.Empty() {
		return
	}
	w.last = rect
	ebiten.SetWindowPosition(rect.X, rect.Y)
	ebiten.SetWindowSize(rect.W, rect.H)
	gameLog.Debug().
		Int("x", rect.X).Int("y", rect.Y).
		Int("w", rect.W).Int("h", rect.H).
		Msg("overlay moved to game window")
}
