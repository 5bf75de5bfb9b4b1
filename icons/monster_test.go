package icons

import (
	"errors"
	"testing"

	"minimapicons/config"
	"minimapicons/entity"
	"minimapicons/settings"
	"minimapicons/sprites"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monster(r entity.Rarity, mods ...string) *entity.Entity {
	return &entity.Entity{
		Address:         0x1000,
		Kind:            entity.KindMonster,
		Path:            "Metadata/Monsters/Skeletons/SkeletonArcher",
		RenderName:      "Bone Archer",
		IsHostile:       true,
		IsAlive:         true,
		MagicProperties: &entity.MagicProperties{Rarity: r, Mods: mods},
	}
}

func newMonster(t *testing.T, e *entity.Entity, s *settings.IconsBuilderSettings) *MonsterIcon {
	t.Helper()
	m, err := NewMonsterIcon(e, s, DefaultModIcons())
	require.NoError(t, err)
	return m
}

func TestMonsterIconRarityAppearance(t *testing.T) {
	s := settings.Default()

	cases := []struct {
		rarity   entity.Rarity
		icon     sprites.MapIconsIndex
		tint     settings.Color
		size     float32
		priority Priority
	}{
		{entity.White, sprites.LootFilterSmallWhiteCircle, settings.ColorRed, 10, PriorityLow},
		{entity.Magic, sprites.LootFilterMediumWhiteCircle, settings.ColorBlue, 13, PriorityMedium},
		{entity.Rare, sprites.LootFilterLargeWhiteCircle, settings.ColorYellow, 16, PriorityHigh},
		{entity.Unique, sprites.LootFilterLargeWhiteStar, settings.ColorOrange, 21, PriorityCritical},
	}

	for _, tc := range cases {
		t.Run(tc.rarity.String(), func(t *testing.T) {
			m := newMonster(t, monster(tc.rarity), s)
			assert.Equal(t, config.ICONS_ATLAS, m.MainTexture.File)
			assert.Equal(t, sprites.UVForIcon(tc.icon), m.MainTexture.UV)
			assert.Equal(t, tc.tint.NRGBA(), m.MainTexture.Color)
			assert.Equal(t, tc.size, m.MainTexture.Size)
			assert.Equal(t, tc.priority, m.Priority)
			assert.True(t, m.Visible())
		})
	}
}

func TestMonsterIconFollowsSettings(t *testing.T) {
	s := settings.Default()
	e := monster(entity.Rare)
	m := newMonster(t, e, s)

	s.MonsterIcons.RareMonsterSize = 30
	s.MonsterIcons.RareMonsterIcon = sprites.Shrine
	s.MonsterIcons.RareMonsterTint = settings.ColorWhite
	require.NoError(t, m.Update(e, s, DefaultModIcons()))

	assert.Equal(t, float32(30), m.MainTexture.Size)
	assert.Equal(t, sprites.UVForIcon(sprites.Shrine), m.MainTexture.UV)
	assert.Equal(t, settings.ColorWhite.NRGBA(), m.MainTexture.Color)
}

func TestMonsterIconUniqueName(t *testing.T) {
	s := settings.Default()
	e := monster(entity.Unique)
	e.RenderName = "Xesht, We That Are One"

	m := newMonster(t, e, s)
	assert.Equal(t, "Xesht", m.Text)

	s.MonsterIcons.ShowUniqueNames = false
	require.NoError(t, m.Update(e, s, nil))
	assert.Empty(t, m.Text)

	e.RenderName = "Nameless"
	s.MonsterIcons.ShowUniqueNames = true
	require.NoError(t, m.Update(e, s, nil))
	assert.Equal(t, "Nameless", m.Text)
}

func TestMonsterIconFriendly(t *testing.T) {
	s := settings.Default()
	e := monster(entity.Rare)
	e.IsHostile = false

	m := newMonster(t, e, s)
	assert.Equal(t, sprites.UVForIcon(sprites.LootFilterSmallGreenCircle), m.MainTexture.UV)
	assert.Equal(t, PriorityLow, m.Priority)
	assert.Equal(t, float32(16), m.MainTexture.Size)
	assert.True(t, m.Visible())

	s.HideMinions.Value = true
	require.NoError(t, m.Update(e, s, nil))
	assert.False(t, m.Visible())
}

func TestMonsterIconUniqueSpirit(t *testing.T) {
	s := settings.Default()
	e := monster(entity.Unique)
	e.Path = "Metadata/Monsters/Spirit/BossSpirit"

	m := newMonster(t, e, s)
	assert.Equal(t, sprites.UVForIcon(sprites.LootFilterLargeGreenHexagon), m.MainTexture.UV)
	assert.Equal(t, float32(21), m.MainTexture.Size)
	assert.Empty(t, m.Text)

	// only uniques get the spirit marker
	e.MagicProperties.Rarity = entity.Rare
	require.NoError(t, m.Update(e, s, nil))
	assert.Equal(t, sprites.UVForIcon(sprites.LootFilterLargeWhiteCircle), m.MainTexture.UV)
}

func TestMonsterIconModIcon(t *testing.T) {
	s := settings.Default()
	modIcons := ModIcons{
		"MonsterA": {X: 2, Y: 1},
		"MonsterB": {X: 3, Y: 4},
	}
	e := monster(entity.Magic, "Unrelated", "MonsterB", "MonsterA")

	m, err := NewMonsterIcon(e, s, modIcons)
	require.NoError(t, err)
	assert.Equal(t, config.SPRITES_ATLAS, m.MainTexture.File)
	assert.Equal(t, sprites.UVForCell(sprites.Vector2i{X: 3, Y: 4}, sprites.ModSpriteGrid), m.MainTexture.UV)
	assert.Equal(t, float32(13), m.MainTexture.Size)
	assert.Equal(t, colorWhite, m.MainTexture.Color)
	assert.Equal(t, PriorityVeryHigh, m.Priority)

	// losing the mod falls back to the rarity icon
	e.MagicProperties.Mods = []string{"Unrelated"}
	require.NoError(t, m.Update(e, s, modIcons))
	assert.Equal(t, config.ICONS_ATLAS, m.MainTexture.File)
	assert.Equal(t, PriorityMedium, m.Priority)
}

func TestMonsterIconHidden(t *testing.T) {
	s := settings.Default()
	e := monster(entity.White)
	e.IsHidden = true

	m := newMonster(t, e, s)
	assert.True(t, m.Visible(), "hidden monsters show unless the option is on")

	s.HideBurriedMonsters.Value = true
	require.NoError(t, m.Update(e, s, nil))
	assert.False(t, m.Visible())

	e.IsHidden = false
	assert.True(t, m.Visible(), "Show reads the live entity")
}

func TestMonsterIconConvertsOnDeath(t *testing.T) {
	s := settings.Default()
	s.HideBurriedMonsters.Value = true
	e := monster(entity.Rare, "MonsterConvertsOnDeath_")
	e.IsHidden = true

	m := newMonster(t, e, s)
	assert.True(t, m.Visible(), "converting monsters ignore the hidden filter")

	e.IsHostile = false
	assert.False(t, m.Visible())
}

func TestMonsterIconDead(t *testing.T) {
	s := settings.Default()
	e := monster(entity.Rare)
	m := newMonster(t, e, s)
	require.True(t, m.Visible())

	e.IsAlive = false
	assert.False(t, m.Visible())
}

func TestMonsterIconIngameIcon(t *testing.T) {
	s := settings.Default()
	e := monster(entity.Rare)
	e.MinimapIcon = &entity.MinimapIconComponent{Name: "Shrine"}

	m := newMonster(t, e, s)
	require.True(t, m.HasIngameIcon)
	assert.Equal(t, sprites.UVForIcon(sprites.Shrine), m.MainTexture.UV)
	assert.Equal(t, float32(16), m.MainTexture.Size, "size still follows rarity")
	assert.Equal(t, colorWhite, m.MainTexture.Color)
}

func TestMonsterIconIngameNpcIconIsClassified(t *testing.T) {
	s := settings.Default()
	e := monster(entity.Magic)
	e.MinimapIcon = &entity.MinimapIconComponent{Name: "NPC"}

	m := newMonster(t, e, s)
	require.True(t, m.HasIngameIcon)
	assert.Equal(t, sprites.UVForIcon(sprites.LootFilterMediumWhiteCircle), m.MainTexture.UV)
	assert.Equal(t, settings.ColorBlue.NRGBA(), m.MainTexture.Color)
}

func TestMonsterIconUnknownIngameIconIgnored(t *testing.T) {
	s := settings.Default()
	e := monster(entity.White)
	e.MinimapIcon = &entity.MinimapIconComponent{Name: "NotAnAtlasIcon"}

	m := newMonster(t, e, s)
	assert.False(t, m.HasIngameIcon)
	assert.Equal(t, sprites.UVForIcon(sprites.LootFilterSmallWhiteCircle), m.MainTexture.UV)
}

func TestMonsterIconUnknownRarity(t *testing.T) {
	s := settings.Default()
	e := monster(entity.Rarity(7))

	_, err := NewMonsterIcon(e, s, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownRarity))
	assert.Contains(t, err.Error(), "Rarity(7)")
	assert.Contains(t, err.Error(), e.Path)
	assert.Contains(t, err.Error(), "ObjectMagicProperties{")
}

func TestMonsterIconWithoutMagicProperties(t *testing.T) {
	s := settings.Default()
	e := monster(entity.White)
	e.MagicProperties = nil

	m := newMonster(t, e, s)
	assert.Equal(t, entity.White, m.Rarity)
	assert.Equal(t, sprites.UVForIcon(sprites.LootFilterSmallWhiteCircle), m.MainTexture.UV)
}

func TestMonsterIconTextureIndex(t *testing.T) {
	s := settings.Default()
	e := monster(entity.Rare, "MonsterNemesisVampiric")

	m := newMonster(t, e, s)
	assert.Equal(t, sprites.MapIconsIndex(-1), m.MainTexture.Icon)

	e.MagicProperties.Mods = nil
	require.NoError(t, m.Update(e, s, DefaultModIcons()))
	assert.Equal(t, sprites.LootFilterLargeWhiteCircle, m.MainTexture.Icon)
}
