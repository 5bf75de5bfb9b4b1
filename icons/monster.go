package icons

import (
	"errors"
	"fmt"
	"minimapicons/config"
	"minimapicons/entity"
	"minimapicons/settings"
	"minimapicons/sprites"
	"strings"
)

var ErrUnknownRarity = errors.New("unknown monster rarity")

const (
	spiritPath        = "Metadata/Monsters/Spirit/"
	convertsOnDeath   = "MonsterConvertsOnDeath_"
	ingameNpcIconName = "NPC"
)

type MonsterIcon struct {
	BaseIcon
}

func NewMonsterIcon(e *entity.Entity, s *settings.IconsBuilderSettings, modIcons ModIcons) (*MonsterIcon, error) {
	m := &MonsterIcon{BaseIcon: NewBaseIcon(e, s)}
	if err := m.Update(e, s, modIcons); err != nil {
		return nil, err
	}
	return m, nil
}

// Update classifies the monster by hostility, mods and rarity.
func (m *MonsterIcon) Update(e *entity.Entity, s *settings.IconsBuilderSettings, modIcons ModIcons) error {
	m.Entity = e
	m.Rarity = e.Rarity()
	m.Priority = rarityPriority(m.Rarity)
	m.Text = ""

	m.Show = func() bool {
		return e.IsAlive
	}
	if e.IsHidden && s.HideBurriedMonsters.Value {
		m.Show = func() bool {
			return !e.IsHidden && e.IsAlive
		}
	}

	if !m.HasIngameIcon {
		m.MainTexture = NewHudTexture(config.ICONS_ATLAS)
	}

	look, err := s.MonsterIcons.ForRarity(m.Rarity)
	if err != nil {
		return m.rarityError(e)
	}
	m.MainTexture.Size = float32(*look.Size)

	if m.HasIngameIcon && e.MinimapIcon != nil && e.MinimapIcon.Name != ingameNpcIconName {
		return nil
	}

	switch {
	case !e.IsHostile:
		if !m.HasIngameIcon {
			m.MainTexture.SetIcon(sprites.LootFilterSmallGreenCircle)
			m.Priority = PriorityLow
			m.Show = func() bool {
				return !s.HideMinions.Value && e.IsAlive
			}
		}

	case m.Rarity == entity.Unique && strings.Contains(e.Path, spiritPath):
		m.MainTexture.SetIcon(sprites.LootFilterLargeGreenHexagon)

	default:
		modName, hasModIcon := "", false
		if mp := e.MagicProperties; mp != nil && mp.Mods != nil {
			if e.HasMod(convertsOnDeath) {
				m.Show = func() bool {
					return e.IsAlive && e.IsHostile
				}
			}
			modName, hasModIcon = modIcons.First(mp.Mods)
		}

		if hasModIcon {
			m.MainTexture = NewHudTexture(config.SPRITES_ATLAS)
			m.MainTexture.Size = float32(*look.Size)
			m.MainTexture.SetCell(config.SPRITES_ATLAS, modIcons[modName], sprites.ModSpriteGrid)
			m.Priority = PriorityVeryHigh
			return nil
		}

		m.MainTexture.SetIcon(*look.Icon)
		m.MainTexture.Color = look.Tint.NRGBA()
		if m.Rarity == entity.Unique && s.MonsterIcons.ShowUniqueNames {
			m.Text, _, _ = strings.Cut(e.RenderName, ",")
		}
	}

	return nil
}

func (m *MonsterIcon) rarityError(e *entity.Entity) error {
	return fmt.Errorf("%w: MonsterIcon wrong rarity %s for %s. Dump: %s",
		ErrUnknownRarity, m.Rarity, e.Path, e.MagicProperties.Dump())
}
