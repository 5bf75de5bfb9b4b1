package menu

import (
	"fmt"
	"image/color"
	"minimapicons/logger"
	"minimapicons/settings"
	"minimapicons/ui"

	"github.com/rs/zerolog"
)

var menuLog zerolog.Logger = logger.Module("menu")

var (
	colorError = color.NRGBA{255, 80, 80, 255}
	colorOK    = color.NRGBA{120, 220, 120, 255}
)

// Menu is the settings window of the overlay.
type Menu struct {
	store    *settings.Store
	monsters MonsterPicker
	customs  []*CustomPicker

	dirty     bool
	status    string
	statusErr bool
}

func New(store *settings.Store) *Menu {
	return &Menu{store: store}
}

// Dirty reports unsaved edits.
func (m *Menu) Dirty() bool {
	return m.dirty
}

// Render draws the whole menu into c.
func (m *Menu) Render(c *ui.Context) {
	s := m.store.Settings()

	c.TextColored(colorHeader, "Minimap Icons")
	c.Separator()

	m.mark(rangeInt(c, "Run every X ticks", &s.RunEveryXTicks))
	m.mark(c.Checkbox("Debug information about entities", &s.LogDebugInformation.Value))
	m.mark(c.Checkbox("Hide players", &s.HidePlayers.Value))
	m.mark(c.Checkbox("Hide minions", &s.HideMinions.Value))
	m.mark(c.Checkbox("Hide burried monsters", &s.HideBurriedMonsters.Value))
	m.mark(rangeInt(c, "Default size", &s.SizeDefaultIcon))
	m.mark(rangeInt(c, "Size NPC icon", &s.SizeNpcIcon))
	m.mark(rangeInt(c, "Size player icon", &s.SizePlayerIcon))
	m.mark(c.Checkbox("Delirium text", &s.DeliriumText.Value))
	m.mark(rangeInt(c, "Size breach chest icon", &s.SizeBreachChestIcon))
	m.mark(rangeInt(c, "Size Heist chest icon", &s.SizeHeistChestIcon))
	m.mark(rangeInt(c, "Expedition chest icon size", &s.ExpeditionChestIconSize))
	m.mark(rangeInt(c, "Sanctum chest icon size", &s.SanctumChestIconSize))
	m.mark(rangeInt(c, "Size chests icon", &s.SizeChestIcon))
	m.mark(c.Checkbox("Show small chests", &s.ShowSmallChest.Value))
	m.mark(rangeInt(c, "Size small chests icon", &s.SizeSmallChestIcon))
	m.mark(rangeInt(c, "Size misc icon", &s.SizeMiscIcon))
	m.mark(rangeInt(c, "Size shrine icon", &s.SizeShrineIcon))

	if c.Button("Reset icons") {
		s.ResetIcons.Press()
		m.mark(true)
		menuLog.Info().Msg("monster icons reset to defaults")
	}

	c.Spacing()
	c.Separator()
	m.renderCustomIcons(c, s)

	c.Spacing()
	c.Separator()
	m.mark(m.monsters.Render(c, s.MonsterIcons))

	c.Spacing()
	c.Separator()
	if c.Button("Save") {
		_ = m.Save() // shown in the status line
	}
	if m.status != "" {
		c.SameLine()
		clr := colorOK
		if m.statusErr {
			clr = colorError
		}
		c.TextColored(clr, m.status)
	}
}

func (m *Menu) renderCustomIcons(c *ui.Context, s *settings.IconsBuilderSettings) {
	c.TextColored(colorHeader, "Custom Icons")

	for len(m.customs) < len(s.CustomIcons.Content) {
		m.customs = append(m.customs, &CustomPicker{})
	}
	m.customs = m.customs[:len(s.CustomIcons.Content)]

	remove := -1
	if len(s.CustomIcons.Content) > 0 && c.BeginTable("Custom Icons", 5) {
		c.TableSetupColumn("Metadata regex", 210)
		c.TableSetupColumn("Color", 60)
		c.TableSetupColumn("Size", 110)
		c.TableSetupColumn("Icon", 40)
		c.TableSetupColumn("", 70)
		c.TableHeadersRow()

		for i, cs := range s.CustomIcons.Content {
			c.PushID(fmt.Sprintf("custom%d", i))
			c.TableNextRow()

			c.TableNextColumn()
			c.SetNextItemWidth(200)
			m.mark(c.InputText("##regex", &cs.MetadataRegex.Value, 256))
			if _, err := cs.Regexp(); err != nil {
				c.TextColored(colorError, "invalid regex")
				c.Tooltip(err.Error())
			}

			c.TableNextColumn()
			tint := cs.Tint.Value.NRGBA()
			if c.ColorEdit("##tint", &tint) {
				cs.Tint.Value = settings.Color(tint)
				m.mark(true)
			}

			c.TableNextColumn()
			c.SetNextItemWidth(100)
			size := cs.Size.Value
			if c.SliderFloat("##size", &size, cs.Size.Min, cs.Size.Max) {
				cs.Size.Set(size)
				m.mark(true)
			}

			c.TableNextColumn()
			m.mark(m.customs[i].Render(c, cs))

			c.TableNextColumn()
			if c.Button("Remove") {
				remove = i
			}
			c.PopID()
		}
		c.EndTable()
	}

	if remove >= 0 {
		s.CustomIcons.Remove(remove)
		m.customs = append(m.customs[:remove], m.customs[remove+1:]...)
		m.mark(true)
	}
	if c.Button("Add custom icon") {
		s.CustomIcons.Add()
		m.mark(true)
	}
}

func rangeInt(c *ui.Context, label string, n *settings.RangeNode[int]) bool {
	c.SetNextItemWidth(250)
	v := n.Value
	if !c.SliderInt(label, &v, n.Min, n.Max) {
		return false
	}
	n.Set(v)
	return true
}

func (m *Menu) mark(changed bool) {
	if changed {
		m.dirty = true
		m.status = "unsaved changes"
		m.statusErr = false
	}
}

// Save writes the settings file.
func (m *Menu) Save() error {
	if err := m.store.Save(); err != nil {
		m.status = "save failed: " + err.Error()
		m.statusErr = true
		menuLog.Error().Err(err).Str("path", m.store.Path()).Msg("failed to save settings")
		return err
	}
	m.dirty = false
	m.status = "saved"
	m.statusErr = false
	return nil
}

// Close saves pending edits; called when the menu is hidden.
func (m *Menu) Close() {
	if !m.dirty {
		return
	}
	if err := m.Save(); err != nil {
		menuLog.Warn().Msg("menu closed with unsaved changes")
	}
}
