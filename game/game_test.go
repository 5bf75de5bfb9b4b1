package game

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"minimapicons/entity"
	"minimapicons/icons"
	"minimapicons/settings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (f *failingSource) Snapshot(ctx context.Context) (entity.Snapshot, error) {
	return entity.Snapshot{}, errors.New("area instance not available")
}

func (f *failingSource) Close() error {
	return nil
}

func newTestGame(t *testing.T, ctx context.Context, src entity.Source) (*Game, *icons.Builder) {
	t.Helper()
	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, store.Load())
	store.Settings().RunEveryXTicks.Set(1)

	b := icons.NewBuilder(nil)
	return NewGame(ctx, src, store, b, Options{}), b
}

func TestUpdateFeedsBuilder(t *testing.T) {
	src, err := entity.NewReplaySource(filepath.Join("..", "entity", "testdata", "area.yaml"))
	require.NoError(t, err)

	g, b := newTestGame(t, context.Background(), src)

	assert.Eventually(t, func() bool {
		return g.Update() == nil && b.Len() > 0
	}, 2*time.Second, 10*time.Millisecond)

	g.mutex.RLock()
	defer g.mutex.RUnlock()
	assert.True(t, g.connected)
	assert.Empty(t, g.scanErr)
	assert.Equal(t, "Exile", g.player.RenderName)
}

func TestUpdateRecordsScanErrors(t *testing.T) {
	src := &failingSource{}
	g, b := newTestGame(t, context.Background(), src)

	assert.Eventually(t, func() bool {
		if g.Update() != nil {
			return false
		}
		g.mutex.RLock()
		defer g.mutex.RUnlock()
		return g.scanErr != ""
	}, 2*time.Second, 10*time.Millisecond)

	assert.Zero(t, b.Len())
	g.mutex.RLock()
	assert.False(t, g.connected)
	g.mutex.RUnlock()
}

func TestUpdateStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g, _ := newTestGame(t, ctx, &failingSource{})

	cancel()
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
}

func TestLayoutFollowsWindow(t *testing.T) {
	g, _ := newTestGame(t, context.Background(), &failingSource{})

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	w, h = g.Layout(0, 0)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
}
