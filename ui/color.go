package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	checkerLight = color.NRGBA{200, 200, 200, 255}
	checkerDark  = color.NRGBA{120, 120, 120, 255}
)

func drawSwatch(dst *ebiten.Image, r Rect, clr color.NRGBA) {
	const cell = 5
	for y := float32(0); y < r.H; y += cell {
		for x := float32(0); x < r.W; x += cell {
			c := checkerLight
			if (int(x/cell)+int(y/cell))%2 == 1 {
				c = checkerDark
			}
			fillRect(dst, Rect{r.X + x, r.Y + y, min(cell, r.W-x), min(cell, r.H-y)}, c)
		}
	}
	fillRect(dst, r, clr)
	strokeRect(dst, r, colorBorder)
}

// ColorEdit shows a swatch of *clr; clicking it opens a popup with one
// slider per RGBA channel. Returns true when *clr changed.
func (c *Context) ColorEdit(label string, clr *color.NRGBA) bool {
	id := c.ID(label)
	r := c.place(c.itemWidth(frameHeight*2), frameHeight)

	if c.clicked(r) {
		c.popups[id] = !c.popups[id]
	}

	value, hover := *clr, c.hovered(r)
	c.paint(func(dst *ebiten.Image) {
		drawSwatch(dst, r, value)
		if hover {
			strokeRect(dst, Rect{r.X - 1, r.Y - 1, r.W + 2, r.H + 2}, colorText)
		}
	})

	if !c.popups[id] {
		return false
	}

	win := c.BeginWindow(fmt.Sprintf("Color %s", displayLabel(label)), 220, 170)
	c.PushID(id)
	changed := false
	channels := []struct {
		name string
		v    *uint8
	}{
		{"R", &clr.R}, {"G", &clr.G}, {"B", &clr.B}, {"A", &clr.A},
	}
	for _, ch := range channels {
		v := int(*ch.v)
		c.SetNextItemWidth(win.Rect.W - framePad*4)
		if c.SliderInt(ch.name, &v, 0, 255) {
			*ch.v = uint8(v)
			changed = true
		}
	}
	preview := *clr
	pr := c.place(win.Rect.W-framePad*4, frameHeight)
	c.paint(func(dst *ebiten.Image) {
		drawSwatch(dst, pr, preview)
	})
	c.TextDisabled(fmt.Sprintf("#%02X%02X%02X%02X", clr.A, clr.R, clr.G, clr.B))
	c.PopID()
	c.EndWindow(win)

	if win.Closed() {
		c.popups[id] = false
	}
	return changed
}
