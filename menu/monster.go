package menu

import (
	"image/color"
	"minimapicons/entity"
	"minimapicons/settings"
	"minimapicons/ui"
)

var (
	colorHeader = color.NRGBA{255, 204, 51, 255}
	colorUnique = color.NRGBA{255, 153, 0, 255}
)

type monsterRow struct {
	rarity  entity.Rarity
	id      string
	label   string
	color   color.NRGBA
	tooltip string
}

var monsterRows = [...]monsterRow{
	{entity.White, "white", "Normal Monsters", color.NRGBA{230, 230, 230, 255}, "Customize appearance for white/normal monsters"},
	{entity.Magic, "magic", "Magic Monsters", color.NRGBA{102, 102, 255, 255}, "Customize appearance for blue/magic monsters"},
	{entity.Rare, "rare", "Rare Monsters", color.NRGBA{255, 255, 0, 255}, "Customize appearance for yellow/rare monsters"},
	{entity.Unique, "unique", "Unique Monsters", colorUnique, "Customize appearance for orange/unique monsters"},
}

// MonsterPicker edits the per-rarity monster icon appearance. All rows
// share one icon filter.
type MonsterPicker struct {
	filter string
	shown  [len(monsterRows)]bool
}

// Render draws the picker and reports whether any setting changed.
func (p *MonsterPicker) Render(c *ui.Context, m *settings.MonsterIconSettings) bool {
	changed := false

	c.TextColored(colorHeader, "Monster Icon Customization")
	c.Separator()
	c.Spacing()

	if c.BeginTable("Monster Icons", 4) {
		c.TableSetupColumn("Monster Type", 120)
		c.TableSetupColumn("Size", 150)
		c.TableSetupColumn("Color", 80)
		c.TableSetupColumn("Icon", 60)
		c.TableHeadersRow()

		for i, row := range monsterRows {
			if p.renderRow(c, m, i, row) {
				changed = true
			}
		}
		c.EndTable()
	}

	c.Spacing()
	c.Separator()
	c.Spacing()

	c.TextColored(colorUnique, "Unique Monster Names")
	if c.Checkbox("Show Unique Monster Names", &m.ShowUniqueNames) {
		changed = true
	}
	c.Tooltip("Toggle visibility of unique monster names on the minimap")
	return changed
}

func (p *MonsterPicker) renderRow(c *ui.Context, m *settings.MonsterIconSettings, i int, row monsterRow) bool {
	look, err := m.ForRarity(row.rarity)
	if err != nil {
		return false
	}

	c.PushID("Icon" + row.label)
	defer c.PopID()

	changed := false
	c.TableNextRow()

	c.TableNextColumn()
	c.TextColored(row.color, row.label)
	c.Tooltip(row.tooltip)

	c.TableNextColumn()
	c.SetNextItemWidth(140)
	if c.SliderInt("##"+row.id+"Size", look.Size, 1, 60) {
		changed = true
	}
	c.Tooltip("Icon size (1-60 pixels)")

	c.TableNextColumn()
	tint := look.Tint.NRGBA()
	if c.ColorEdit("##"+row.id+"Color", &tint) {
		*look.Tint = settings.Color(tint)
		changed = true
	}
	c.Tooltip("Icon color and transparency")

	c.TableNextColumn()
	if c.IconButton("##icon"+row.id, float32(*look.Size), *look.Icon, tint) {
		p.shown[i] = true
	}
	if p.shown[i] {
		before := *look.Icon
		if c.IconPickerWindow("##"+row.id, look.Icon, tint, &p.filter) {
			p.shown[i] = false
		}
		if *look.Icon != before {
			changed = true
		}
	}
	return changed
}

// CustomPicker is the icon chooser of one custom icon entry.
type CustomPicker struct {
	filter string
	shown  bool
}

func (p *CustomPicker) Render(c *ui.Context, s *settings.CustomIconSettings) bool {
	tint := s.Tint.Value.NRGBA()
	if c.IconButton("##icon", 15, s.Icon, tint) {
		p.shown = true
	}
	if !p.shown {
		return false
	}

	before := s.Icon
	if c.IconPickerWindow(s.MetadataRegex.Value, &s.Icon, tint, &p.filter) {
		p.shown = false
	}
	return s.Icon != before
}
