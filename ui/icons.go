package ui

import (
	"fmt"
	"image/color"
	"minimapicons/sprites"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	pickerCell    = 28
	pickerWidth   = 420
	pickerHeight  = 380
	pickerMaxSize = 64
)

// IconButton draws icon at size x size and reports a click.
func (c *Context) IconButton(label string, size float32, icon sprites.MapIconsIndex, tint color.NRGBA) bool {
	if size > pickerMaxSize {
		size = pickerMaxSize
	}
	if size < 1 {
		size = 1
	}
	r := c.place(size+framePad*2, size+framePad*2)
	hover := c.hovered(r)
	atlas := c.Atlas
	c.paint(func(dst *ebiten.Image) {
		if hover {
			fillRect(dst, r, colorFrameHover)
		}
		atlas.DrawIcon(dst, icon, r.X+r.W/2, r.Y+r.H/2, size, tint)
	})
	if hover {
		c.SetTooltip(icon.String())
	}
	return c.clicked(r)
}

// IconPickerWindow shows every icon matching *filter in a scrollable grid.
// Clicking one stores it in *icon. Returns true once the window should
// close, either because an icon was picked or it was dismissed.
func (c *Context) IconPickerWindow(label string, icon *sprites.MapIconsIndex, tint color.NRGBA, filter *string) bool {
	id := c.ID(label)
	win := c.BeginWindow(fmt.Sprintf("Choose icon %s (%s)", displayLabel(label), icon), pickerWidth, pickerHeight)
	c.PushID(label)

	c.SetNextItemWidth(pickerWidth - 80)
	if c.InputText("Filter##filter", filter, 64) {
		c.scroll[id] = 0
	}

	icons := sprites.FilterMapIcons(*filter)
	c.TextDisabled(fmt.Sprintf("%d icons", len(icons)))

	_, top := c.Cursor()
	gridH := win.Rect.Y + win.Rect.H - top - framePad*2
	cols := int((win.Rect.W - framePad*4) / pickerCell)
	rows := int(gridH / pickerCell)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	grid := Rect{c.originX, top, float32(cols * pickerCell), float32(rows * pickerCell)}
	first := c.pickerScroll(id, grid, len(icons), cols, rows)

	picked := false
	end := min(len(icons), first+cols*rows)
	for i := first; i < end; i++ {
		idx := icons[i]
		n := i - first
		cell := Rect{grid.X + float32(n%cols)*pickerCell, grid.Y + float32(n/cols)*pickerCell, pickerCell, pickerCell}
		hover := c.hovered(cell)
		selected := idx == *icon
		atlas := c.Atlas
		c.paint(func(dst *ebiten.Image) {
			if selected {
				fillRect(dst, cell, colorAccent)
			} else if hover {
				fillRect(dst, cell, colorFrameHover)
			}
			atlas.DrawIcon(dst, idx, cell.X+cell.W/2, cell.Y+cell.H/2, pickerCell-6, tint)
		})
		if hover {
			c.SetTooltip(idx.String())
		}
		if c.clicked(cell) {
			*icon = idx
			picked = true
		}
	}
	c.place(grid.W, grid.H)

	c.PopID()
	c.EndWindow(win)
	return picked || win.Closed()
}

// pickerScroll applies the wheel to the grid scroll position and returns
// the index of the first visible icon.
func (c *Context) pickerScroll(id string, grid Rect, total, cols, rows int) int {
	row := c.scroll[id]
	if c.in.WheelY != 0 && grid.Contains(c.in.MouseX, c.in.MouseY) {
		if c.in.WheelY > 0 {
			row--
		} else {
			row++
		}
	}

	maxRow := (total+cols-1)/cols - rows
	if row > maxRow {
		row = maxRow
	}
	if row < 0 {
		row = 0
	}
	c.scroll[id] = row
	return row * cols
}
