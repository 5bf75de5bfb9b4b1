package icons

import (
	"testing"

	"minimapicons/entity"
	"minimapicons/settings"
	"minimapicons/sprites"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func area() []entity.Entity {
	return []entity.Entity{
		{Address: 1, Kind: entity.KindMonster, Path: "Metadata/Monsters/Rat", IsHostile: true, IsAlive: true,
			MagicProperties: &entity.MagicProperties{Rarity: entity.Unique}},
		{Address: 2, Kind: entity.KindMonster, Path: "Metadata/Monsters/Rat", IsHostile: true, IsAlive: true},
		{Address: 3, Kind: entity.KindNPC, Path: "Metadata/NPC/Town/Smith", IsAlive: true},
		{Address: 4, Kind: entity.KindPlayer, Path: "Metadata/Characters/Ranger", RenderName: "Someone", IsAlive: true},
		{Address: 5, Kind: entity.KindOther, Path: "Metadata/Terrain/Waypoint", IsAlive: true,
			MinimapIcon: &entity.MinimapIconComponent{Name: "Waypoint"}},
		{Address: 6, Kind: entity.KindOther, Path: "Metadata/Effects/Dust", IsAlive: true},
	}
}

func TestBuilderSync(t *testing.T) {
	s := settings.Default()
	b := NewBuilder(nil)

	b.Sync(area(), s)
	assert.Equal(t, 6, b.Len())

	visible := b.Visible()
	require.Len(t, visible, 5)
	assert.Equal(t, PriorityCritical, visible[len(visible)-1].Priority)
	for i := 1; i < len(visible); i++ {
		assert.LessOrEqual(t, visible[i-1].Priority, visible[i].Priority)
	}

	b.Sync(area()[:2], s)
	assert.Equal(t, 2, b.Len())
	assert.Len(t, b.Visible(), 2)
}

func TestBuilderSyncKeepsIcon(t *testing.T) {
	s := settings.Default()
	b := NewBuilder(nil)
	ents := area()[:1]

	b.Sync(ents, s)
	first := b.Visible()[0]

	ents[0].IsAlive = false
	b.Sync(ents, s)
	assert.Empty(t, b.Visible())

	ents[0].IsAlive = true
	b.Sync(ents, s)
	require.Len(t, b.Visible(), 1)
	assert.Same(t, first, b.Visible()[0])
}

func TestBuilderTick(t *testing.T) {
	s := settings.Default()
	s.RunEveryXTicks.Set(3)
	b := NewBuilder(nil)
	b.Sync(area()[:1], s)

	s.MonsterIcons.UniqueMonsterSize = 40
	b.Tick(s)
	b.Tick(s)
	assert.Equal(t, float32(21), b.Visible()[0].MainTexture.Size)

	b.Tick(s)
	assert.Equal(t, float32(40), b.Visible()[0].MainTexture.Size)
}

func TestBuilderCustomIcon(t *testing.T) {
	s := settings.Default()
	custom := s.CustomIcons.Add()
	custom.MetadataRegex.Value = "Smith$"
	custom.Icon = sprites.Stash
	custom.Size.Set(30)

	b := NewBuilder(nil)
	b.Sync(area()[2:3], s)

	visible := b.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, sprites.UVForIcon(sprites.Stash), visible[0].MainTexture.UV)
	assert.Equal(t, float32(30), visible[0].MainTexture.Size)

	// editing the rule rebuilds on the next update cycle
	custom.MetadataRegex.Value = "^$"
	s.RunEveryXTicks.Set(1)
	b.Tick(s)
	visible = b.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, sprites.UVForIcon(sprites.NPC), visible[0].MainTexture.UV)
}

func TestBuilderDropsBrokenRarity(t *testing.T) {
	s := settings.Default()
	s.RunEveryXTicks.Set(1)
	b := NewBuilder(nil)

	ents := area()[:1]
	ents[0].MagicProperties.Rarity = entity.Rarity(9)
	b.Sync(ents, s)
	assert.Equal(t, 1, b.Len())
	assert.Empty(t, b.Visible())

	ents[0].MagicProperties = &entity.MagicProperties{Rarity: entity.Magic}
	b.Sync(ents, s)
	b.Tick(s)
	assert.Len(t, b.Visible(), 1)
}

func TestPlayerIcon(t *testing.T) {
	s := settings.Default()
	e := area()[3]
	p := NewPlayerIcon(&e, s)
	assert.Equal(t, "Someone", p.Text)
	assert.Equal(t, float32(12), p.MainTexture.Size)
	assert.True(t, p.Visible())

	s.HidePlayers.Value = true
	assert.False(t, p.Visible())
}

func TestModIconsOverride(t *testing.T) {
	icons := DefaultModIcons()
	require.NotEmpty(t, icons)

	mod, ok := icons.First([]string{"nope", "MonsterNemesisEchoist", "MonsterNemesisVampiric"})
	assert.True(t, ok)
	assert.Equal(t, "MonsterNemesisEchoist", mod)

	_, err := ParseModIcons([]byte("icons:\n  - {mod: X, cell: {x: 9, y: 1}}\n"))
	assert.Error(t, err)
	_, err = ParseModIcons([]byte("icons:\n  - {cell: {x: 1, y: 1}}\n"))
	assert.Error(t, err)
}

func TestIngameIconSizeByKind(t *testing.T) {
	s := settings.Default()
	s.RunEveryXTicks.Set(1)
	s.SizeShrineIcon.Set(22)
	s.SizeHeistChestIcon.Set(35)

	ents := []entity.Entity{
		{Address: 1, Kind: entity.KindOther, Path: "Metadata/Shrines/Shrine", IsAlive: true,
			MinimapIcon: &entity.MinimapIconComponent{Name: "Shrine"}},
		{Address: 2, Kind: entity.KindOther, Path: "Metadata/Chests/LeagueHeist/HeistChest", IsAlive: true,
			MinimapIcon: &entity.MinimapIconComponent{Name: "HeistChest"}},
		{Address: 3, Kind: entity.KindOther, Path: "Metadata/Terrain/Waypoint", IsAlive: true,
			MinimapIcon: &entity.MinimapIconComponent{Name: "Waypoint"}},
		{Address: 4, Kind: entity.KindOther, Path: "Metadata/QuestObjects/Lever", IsAlive: true,
			MinimapIcon: &entity.MinimapIconComponent{Name: "QuestObject"}},
	}

	b := NewBuilder(nil)
	b.Sync(ents, s)

	sizes := make(map[uint64]float32)
	for _, icon := range b.Visible() {
		sizes[icon.Entity.Address] = icon.MainTexture.Size
	}
	assert.Equal(t, map[uint64]float32{1: 22, 2: 35, 3: 16, 4: 10}, sizes)

	s.SizeShrineIcon.Set(12)
	b.Tick(s)
	for _, icon := range b.Visible() {
		if icon.Entity.Address == 1 {
			assert.Equal(t, float32(12), icon.MainTexture.Size)
		}
	}
}

func TestSmallChestFollowsToggle(t *testing.T) {
	s := settings.Default()
	s.SizeSmallChestIcon.Set(7)
	ents := []entity.Entity{
		{Address: 1, Kind: entity.KindOther, Path: "Metadata/Chests/Barrels/Barrel1"},
	}

	b := NewBuilder(nil)
	b.Sync(ents, s)
	assert.Equal(t, 1, b.Len())
	assert.Empty(t, b.Visible())

	s.ShowSmallChest.Value = true
	visible := b.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, float32(7), visible[0].MainTexture.Size)
	assert.Equal(t, PriorityLow, visible[0].Priority)
}

func TestDeliriumText(t *testing.T) {
	s := settings.Default()
	e := entity.Entity{Address: 1, Kind: entity.KindOther, Path: "Metadata/Terrain/Leagues/Delirium/Mirror", IsAlive: true,
		MinimapIcon: &entity.MinimapIconComponent{Name: "Delirium"}}

	icon := NewIngameIcon(&e, s)
	assert.Empty(t, icon.Text)
	assert.Equal(t, float32(10), icon.MainTexture.Size)

	s.DeliriumText.Value = true
	require.NoError(t, icon.Update(&e, s, nil))
	assert.Equal(t, "Delirium", icon.Text)
}
