package icons

import (
	"minimapicons/entity"
	"minimapicons/settings"
	"minimapicons/sprites"
)

// NpcIcon marks friendly town and quest characters.
type NpcIcon struct {
	BaseIcon
}

func NewNpcIcon(e *entity.Entity, s *settings.IconsBuilderSettings) *NpcIcon {
	n := &NpcIcon{BaseIcon: NewBaseIcon(e, s)}
	n.Update(e, s, nil)
	return n
}

func (n *NpcIcon) Update(e *entity.Entity, s *settings.IconsBuilderSettings, _ ModIcons) error {
	n.Entity = e
	if !n.HasIngameIcon {
		n.MainTexture = iconsTexture(sprites.NPC)
	}
	n.MainTexture.Size = float32(s.SizeNpcIcon.Value)
	n.Priority = PriorityMedium
	n.Show = func() bool {
		return e.IsAlive
	}
	return nil
}

// PlayerIcon marks other players in the area.
type PlayerIcon struct {
	BaseIcon
}

func NewPlayerIcon(e *entity.Entity, s *settings.IconsBuilderSettings) *PlayerIcon {
	p := &PlayerIcon{BaseIcon: NewBaseIcon(e, s)}
	p.Update(e, s, nil)
	return p
}

func (p *PlayerIcon) Update(e *entity.Entity, s *settings.IconsBuilderSettings, _ ModIcons) error {
	p.Entity = e
	p.MainTexture = iconsTexture(sprites.Player)
	p.MainTexture.Size = float32(s.SizePlayerIcon.Value)
	p.Priority = PriorityHigh
	p.Text = e.RenderName
	p.Show = func() bool {
		return !s.HidePlayers.Value && e.IsAlive
	}
	return nil
}

// CustomIcon draws a user-configured marker for entities matched by path.
type CustomIcon struct {
	BaseIcon
	custom *settings.CustomIconSettings
}

func NewCustomIcon(e *entity.Entity, s *settings.IconsBuilderSettings, custom *settings.CustomIconSettings) *CustomIcon {
	c := &CustomIcon{BaseIcon: NewBaseIcon(e, s), custom: custom}
	c.Update(e, s, nil)
	return c
}

func (c *CustomIcon) Update(e *entity.Entity, s *settings.IconsBuilderSettings, _ ModIcons) error {
	c.Entity = e
	c.MainTexture = iconsTexture(c.custom.Icon)
	c.MainTexture.Size = c.custom.Size.Value
	c.MainTexture.Color = c.custom.Tint.Value.NRGBA()
	c.Priority = PriorityHigh
	c.Show = func() bool {
		return e.IsAlive
	}
	return nil
}

// Matches reports whether the custom rule still selects the entity.
func (c *CustomIcon) Matches(e *entity.Entity) bool {
	return c.custom.Matches(e.Path)
}

// MatchCustom returns the first custom rule selecting path.
func MatchCustom(s *settings.IconsBuilderSettings, path string) *settings.CustomIconSettings {
	for _, c := range s.CustomIcons.Content {
		if c != nil && c.Matches(path) {
			return c
		}
	}
	return nil
}
