package menu

import (
	"os"
	"path/filepath"
	"testing"

	"minimapicons/settings"
	"minimapicons/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenu(t *testing.T) (*Menu, *settings.Store) {
	t.Helper()
	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, store.Load())
	return New(store), store
}

func render(m *Menu, c *ui.Context, in ui.Input) {
	c.Feed(in)
	c.Begin(nil, 10, 10, 500)
	m.Render(c)
	c.End()
}

func TestMenuRenderIdle(t *testing.T) {
	m, store := newMenu(t)
	c := ui.NewContext(nil)

	before, err := settings.Encode(store.Settings())
	require.NoError(t, err)

	render(m, c, ui.Input{})
	render(m, c, ui.Input{MouseX: 2000, MouseY: 2000, Clicked: true})

	after, err := settings.Encode(store.Settings())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
	assert.False(t, m.Dirty())
}

func TestMenuTracksCustomIcons(t *testing.T) {
	m, store := newMenu(t)
	c := ui.NewContext(nil)

	s := store.Settings()
	s.CustomIcons.Add()
	s.CustomIcons.Add().MetadataRegex.Value = "("
	render(m, c, ui.Input{})
	assert.Len(t, m.customs, 2)

	s.CustomIcons.Remove(0)
	render(m, c, ui.Input{})
	assert.Len(t, m.customs, 1)
}

func TestMenuSave(t *testing.T) {
	m, store := newMenu(t)

	store.Settings().MonsterIcons.RareMonsterSize = 33
	m.mark(true)
	require.True(t, m.Dirty())

	m.Close()
	assert.False(t, m.Dirty())
	assert.Equal(t, "saved", m.status)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"RareMonsterSize": 33`)
}

func TestMenuCloseKeepsDirtyOnSaveError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	store := settings.NewStore(filepath.Join(blocker, "settings.json"))
	m := New(store)
	m.mark(true)

	m.Close()
	assert.True(t, m.Dirty())
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "save failed")
}

func TestMonsterPickerRendersEveryRarity(t *testing.T) {
	c := ui.NewContext(nil)
	var p MonsterPicker
	m := settings.NewMonsterIconSettings()

	c.Begin(nil, 0, 0, 500)
	changed := p.Render(c, m)
	c.End()

	assert.False(t, changed)
	assert.Len(t, monsterRows, 4)
	for _, row := range monsterRows {
		_, err := m.ForRarity(row.rarity)
		assert.NoError(t, err, row.label)
	}
}
