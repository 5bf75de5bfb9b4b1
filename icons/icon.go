package icons

import (
	"minimapicons/entity"
	"minimapicons/settings"
	"minimapicons/sprites"
)

// Icon is anything the minimap draws for an entity.
type Icon interface {
	Base() *BaseIcon
	Update(e *entity.Entity, s *settings.IconsBuilderSettings, modIcons ModIcons) error
}

// BaseIcon is the state shared by every icon kind.
type BaseIcon struct {
	Entity        *entity.Entity
	Rarity        entity.Rarity
	HasIngameIcon bool
	MainTexture   HudTexture
	Priority      Priority
	Text          string

	// Show is evaluated at draw time against the live entity.
	Show func() bool
}

func NewBaseIcon(e *entity.Entity, s *settings.IconsBuilderSettings) BaseIcon {
	b := BaseIcon{
		Entity:   e,
		Rarity:   e.Rarity(),
		Priority: rarityPriority(e.Rarity()),
		Show: func() bool {
			return e.IsAlive
		},
	}

	if e.MinimapIcon != nil && e.MinimapIcon.Name != "" {
		if idx, err := sprites.ParseMapIconsIndex(e.MinimapIcon.Name); err == nil {
			b.HasIngameIcon = true
			b.MainTexture = iconsTexture(idx)
			b.MainTexture.Size = float32(s.SizeDefaultIcon.Value)
		}
	}

	return b
}

func (b *BaseIcon) Base() *BaseIcon {
	return b
}

// Visible reports whether the icon should be drawn this frame.
func (b *BaseIcon) Visible() bool {
	return b.Show != nil && b.Show() && !b.MainTexture.UV.Empty()
}

func rarityPriority(r entity.Rarity) Priority {
	switch r {
	case entity.Magic:
		return PriorityMedium
	case entity.Rare:
		return PriorityHigh
	case entity.Unique:
		return PriorityCritical
	default:
		return PriorityLow
	}
}
