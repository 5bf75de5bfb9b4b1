package icons

import (
	"minimapicons/entity"
	"minimapicons/settings"
	"minimapicons/sprites"
	"strings"
)

const chestsPath = "Metadata/Chests/"

// IngameIcon mirrors whatever icon the game assigns to a non-actor entity.
type IngameIcon struct {
	BaseIcon
}

func NewIngameIcon(e *entity.Entity, s *settings.IconsBuilderSettings) *IngameIcon {
	g := &IngameIcon{BaseIcon: NewBaseIcon(e, s)}
	g.Update(e, s, nil)
	return g
}

func (g *IngameIcon) Update(e *entity.Entity, s *settings.IconsBuilderSettings, _ ModIcons) error {
	g.Entity = e
	g.Text = ""
	if !g.HasIngameIcon {
		return nil
	}

	g.MainTexture.Size = float32(ingameIconSize(g.MainTexture.Icon, s))
	if g.MainTexture.Icon == sprites.Delirium && s.DeliriumText.Value {
		g.Text = e.RenderName
		if g.Text == "" {
			g.Text = "Delirium"
		}
	}
	return nil
}

// ingameIconSize picks the size setting for an in-game icon by its kind.
func ingameIconSize(icon sprites.MapIconsIndex, s *settings.IconsBuilderSettings) int {
	switch icon {
	case sprites.Shrine:
		return s.SizeShrineIcon.Value
	case sprites.Chest, sprites.StrongBox:
		return s.SizeChestIcon.Value
	case sprites.Breach:
		return s.SizeBreachChestIcon.Value
	case sprites.HeistChest:
		return s.SizeHeistChestIcon.Value
	case sprites.Expedition:
		return s.ExpeditionChestIconSize.Value
	case sprites.SanctumRelic:
		return s.SanctumChestIconSize.Value
	case sprites.QuestObject, sprites.QuestItem, sprites.Essence, sprites.Ritual,
		sprites.Delirium, sprites.Abyss, sprites.Harvest, sprites.Incursion,
		sprites.Legion, sprites.Blight, sprites.Sulphite, sprites.Metamorph,
		sprites.Ultimatum, sprites.Mirror:
		return s.SizeMiscIcon.Value
	default:
		return s.SizeDefaultIcon.Value
	}
}

// ChestIcon marks small chests, which the game leaves off the minimap.
type ChestIcon struct {
	BaseIcon
}

// isSmallChest reports a chest without an in-game minimap icon.
func isSmallChest(e *entity.Entity) bool {
	return e.Kind == entity.KindOther && !e.HasMinimapIcon() && strings.Contains(e.Path, chestsPath)
}

func NewChestIcon(e *entity.Entity, s *settings.IconsBuilderSettings) *ChestIcon {
	c := &ChestIcon{BaseIcon: NewBaseIcon(e, s)}
	c.Update(e, s, nil)
	return c
}

func (c *ChestIcon) Update(e *entity.Entity, s *settings.IconsBuilderSettings, _ ModIcons) error {
	c.Entity = e
	c.MainTexture = iconsTexture(sprites.LootFilter(sprites.LootSmall, sprites.LootBrown, sprites.LootSquare))
	c.MainTexture.Size = float32(s.SizeSmallChestIcon.Value)
	c.Priority = PriorityLow
	c.Show = func() bool {
		return s.ShowSmallChest.Value
	}
	return nil
}
