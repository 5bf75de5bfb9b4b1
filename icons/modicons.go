package icons

import (
	_ "embed"
	"fmt"
	"minimapicons/sprites"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed modicons.yaml
var defaultModIcons []byte

// ModIcons maps a monster mod id to its cell on sprites.png.
type ModIcons map[string]sprites.Vector2i

type modIconsFile struct {
	Icons []struct {
		Mod  string           `yaml:"mod"`
		Cell sprites.Vector2i `yaml:"cell"`
	} `yaml:"icons"`
}

func ParseModIcons(data []byte) (ModIcons, error) {
	var f modIconsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	out := make(ModIcons, len(f.Icons))
	for _, entry := range f.Icons {
		if entry.Mod == "" {
			return nil, fmt.Errorf("mod icon entry without mod id")
		}
		if sprites.UVForCell(entry.Cell, sprites.ModSpriteGrid).Empty() {
			return nil, fmt.Errorf("mod %s: cell %d,%d outside %dx%d sprite grid",
				entry.Mod, entry.Cell.X, entry.Cell.Y, sprites.ModSpriteGrid.X, sprites.ModSpriteGrid.Y)
		}
		out[entry.Mod] = entry.Cell
	}
	return out, nil
}

func DefaultModIcons() ModIcons {
	m, err := ParseModIcons(defaultModIcons)
	if err != nil {
		panic(fmt.Sprintf("embedded mod icons: %v", err))
	}
	return m
}

// LoadModIcons returns the built-in table with entries from overridePath layered on top.
func LoadModIcons(overridePath string) (ModIcons, error) {
	icons := DefaultModIcons()
	if overridePath == "" {
		return icons, nil
	}

	data, err := os.ReadFile(overridePath)
	if err != nil {
		return nil, fmt.Errorf("read mod icons %s: %w", overridePath, err)
	}
	extra, err := ParseModIcons(data)
	if err != nil {
		return nil, fmt.Errorf("parse mod icons %s: %w", overridePath, err)
	}
	for mod, cell := range extra {
		icons[mod] = cell
	}

	iconLog.Info().
		Str("path", overridePath).
		Int("overrides", len(extra)).
		Int("total", len(icons)).
		Msg("mod icons loaded")
	return icons, nil
}

// First returns the first of mods that has an icon, in list order.
func (m ModIcons) First(mods []string) (string, bool) {
	for _, mod := range mods {
		if _, ok := m[mod]; ok {
			return mod, true
		}
	}
	return "", false
}
