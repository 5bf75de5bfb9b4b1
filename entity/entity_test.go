package entity

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRarityText(t *testing.T) {
	for _, r := range []Rarity{White, Magic, Rare, Unique, Rarity(9)} {
		b, err := r.MarshalText()
		require.NoError(t, err)

		var back Rarity
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, r, back)
	}

	var r Rarity
	assert.Error(t, r.UnmarshalText([]byte("legendary")))
	assert.False(t, Rarity(4).Valid())
	assert.True(t, Unique.Valid())
}

func TestEntityRarityDefaultsToWhite(t *testing.T) {
	e := Entity{}
	assert.Equal(t, White, e.Rarity())

	e.MagicProperties = &MagicProperties{Rarity: Unique}
	assert.Equal(t, Unique, e.Rarity())
}

func TestHasModMatchesWholeID(t *testing.T) {
	e := Entity{MagicProperties: &MagicProperties{Mods: []string{"MonsterConvertsOnDeath_"}}}
	assert.True(t, e.HasMod("MonsterConvertsOnDeath_"))
	assert.False(t, e.HasMod("MonsterConvertsOnDeath"))

	e.MagicProperties = nil
	assert.False(t, e.HasMod("MonsterConvertsOnDeath_"))
}

func TestDump(t *testing.T) {
	var missing *MagicProperties
	assert.Contains(t, missing.Dump(), "missing")

	mp := &MagicProperties{Rarity: Magic, Mods: []string{"A", "B"}}
	assert.Equal(t, "ObjectMagicProperties{Rarity: Magic, Mods: [A, B]}", mp.Dump())
}

func TestFilter(t *testing.T) {
	player := Entity{Address: 1}
	entities := []Entity{
		{Address: 1},
		{Address: 2, Pos: Vec3{X: 30}},
		{Address: 3, Pos: Vec3{X: 10}},
		{Address: 4, Pos: Vec3{X: 5000}},
	}

	got := Filter(entities, player, 1000)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(3), got[0].Address)
	assert.InDelta(t, 10, got[0].Distance, 1e-4)
	assert.Equal(t, uint64(2), got[1].Address)
}

func TestUpdateKeepsAddress(t *testing.T) {
	e := &Entity{Address: 7, IsAlive: true}
	e.Update(Entity{Address: 99, IsAlive: false, Path: "x"})
	assert.Equal(t, uint64(7), e.Address)
	assert.False(t, e.IsAlive)
	assert.Equal(t, "x", e.Path)
}

func TestReplaySource(t *testing.T) {
	src, err := NewReplaySource(filepath.Join("testdata", "area.yaml"))
	require.NoError(t, err)
	defer src.Close()

	snap, err := src.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(1000), snap.Player.Address)
	require.Len(t, snap.Entities, 2)

	zombie := snap.Entities[0]
	assert.Equal(t, uint64(1), zombie.Address)
	assert.Equal(t, KindMonster, zombie.Kind)
	assert.Equal(t, Rare, zombie.Rarity())
	assert.True(t, zombie.HasMod("MonsterNemesisVampiric"))

	npc := snap.Entities[1]
	require.NotNil(t, npc.MinimapIcon)
	assert.Equal(t, "NPC", npc.MinimapIcon.Name)
	assert.False(t, npc.HasMagicProperties())

	snap.Entities[0].Path = "mutated"
	again, err := src.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Metadata/Monsters/Zombies/ZombieBasic", again.Entities[0].Path)
}

func TestReplaySourceCancelled(t *testing.T) {
	src := &ReplaySource{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Snapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
