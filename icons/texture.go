package icons

import (
	"image/color"
	"minimapicons/config"
	"minimapicons/sprites"
)

type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityVeryHigh
	PriorityCritical
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityVeryHigh:
		return "VeryHigh"
	case PriorityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// HudTexture is the part of an atlas an icon draws with.
type HudTexture struct {
	File  string
	UV    sprites.UV
	Size  float32
	Color color.NRGBA

	// Icon is the Icons.png entry behind UV, or -1 for other sheets.
	Icon sprites.MapIconsIndex
}

var colorWhite = color.NRGBA{255, 255, 255, 255}

func NewHudTexture(file string) HudTexture {
	return HudTexture{File: file, Color: colorWhite, Icon: -1}
}

// SetIcon points the texture at an Icons.png entry.
func (t *HudTexture) SetIcon(index sprites.MapIconsIndex) {
	t.File = config.ICONS_ATLAS
	t.UV = sprites.UVForIcon(index)
	t.Icon = index
}

// SetCell points the texture at a cell of a sprite sheet split into grid.
func (t *HudTexture) SetCell(file string, cell, grid sprites.Vector2i) {
	t.File = file
	t.UV = sprites.UVForCell(cell, grid)
	t.Icon = -1
}

func iconsTexture(index sprites.MapIconsIndex) HudTexture {
	t := NewHudTexture(config.ICONS_ATLAS)
	t.SetIcon(index)
	return t
}
