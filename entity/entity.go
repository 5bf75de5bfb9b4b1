package entity

import (
	"fmt"
	"minimapicons/memory"
	"sort"
	"strings"
)

type Rarity uint8

const (
	White Rarity = iota
	Magic
	Rare
	Unique
)

func (r Rarity) String() string {
	switch r {
	case White:
		return "White"
	case Magic:
		return "Magic"
	case Rare:
		return "Rare"
	case Unique:
		return "Unique"
	default:
		return fmt.Sprintf("Rarity(%d)", uint8(r))
	}
}

func (r Rarity) Valid() bool {
	return r <= Unique
}

func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rarity) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "white", "normal":
		*r = White
	case "magic":
		*r = Magic
	case "rare":
		*r = Rare
	case "unique":
		*r = Unique
	default:
		var raw uint8
		if _, err := fmt.Sscanf(string(b), "Rarity(%d)", &raw); err != nil {
			return fmt.Errorf("unknown rarity %q", b)
		}
		*r = Rarity(raw)
	}
	return nil
}

type Kind uint8

const (
	KindOther Kind = iota
	KindMonster
	KindNPC
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindMonster:
		return "Monster"
	case KindNPC:
		return "NPC"
	case KindPlayer:
		return "Player"
	default:
		return "Other"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "monster":
		*k = KindMonster
	case "npc":
		*k = KindNPC
	case "player":
		*k = KindPlayer
	case "other", "":
		*k = KindOther
	default:
		return fmt.Errorf("unknown entity kind %q", b)
	}
	return nil
}

// MagicProperties is the mod component of a monster.
type MagicProperties struct {
	Rarity Rarity   `yaml:"rarity"`
	Mods   []string `yaml:"mods"`
}

func (m *MagicProperties) Dump() string {
	if m == nil {
		return "ObjectMagicProperties{<missing>}"
	}
	return fmt.Sprintf("ObjectMagicProperties{Rarity: %s, Mods: [%s]}", m.Rarity, strings.Join(m.Mods, ", "))
}

// MinimapIconComponent is the icon the game itself draws for an entity.
type MinimapIconComponent struct {
	Name string `yaml:"name"`
}

type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

type Entity struct {
	Address    uint64  `yaml:"address"`
	ID         uint32  `yaml:"id"`
	Kind       Kind    `yaml:"kind"`
	Path       string  `yaml:"path"`
	RenderName string  `yaml:"render_name"`
	IsHostile  bool    `yaml:"hostile"`
	IsHidden   bool    `yaml:"hidden"`
	IsAlive    bool    `yaml:"alive"`
	Pos        Vec3    `yaml:"pos"`
	Distance   float32 `yaml:"-"`

	MagicProperties *MagicProperties      `yaml:"magic_properties,omitempty"`
	MinimapIcon     *MinimapIconComponent `yaml:"minimap_icon,omitempty"`
}

// Rarity falls back to White when the entity carries no mod component.
func (e *Entity) Rarity() Rarity {
	if e.MagicProperties == nil {
		return White
	}
	return e.MagicProperties.Rarity
}

func (e *Entity) HasMagicProperties() bool {
	return e.MagicProperties != nil
}

func (e *Entity) HasMinimapIcon() bool {
	return e.MinimapIcon != nil
}

// HasMod matches a full mod id.
func (e *Entity) HasMod(name string) bool {
	if e.MagicProperties == nil {
		return false
	}
	for _, m := range e.MagicProperties.Mods {
		if m == name {
			return true
		}
	}
	return false
}

// Update copies live state from fresh into e, keeping e's identity.
func (e *Entity) Update(fresh Entity) {
	addr := e.Address
	*e = fresh
	e.Address = addr
}

// Filter drops the local player and anything beyond maxDistance, nearest first.
func Filter(entities []Entity, player Entity, maxDistance float32) []Entity {
	filtered := make([]Entity, 0, len(entities))

	for _, e := range entities {
		if e.Address == player.Address {
			continue
		}

		e.Distance = memory.CalculateDistance(player.Pos.X, player.Pos.Y, player.Pos.Z, e.Pos.X, e.Pos.Y, e.Pos.Z)
		if maxDistance > 0 && e.Distance > maxDistance {
			continue
		}

		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Distance < filtered[j].Distance
	})

	return filtered
}
