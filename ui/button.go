package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type Button struct {
	X, Y, W, H float32
	Label      string
	Hovered    bool
}

func (b *Button) Rect() Rect {
	return Rect{b.X, b.Y, b.W, b.H}
}

func (b *Button) Contains(x, y int) bool {
	return b.Rect().Contains(x, y)
}

func (b *Button) Draw(screen *ebiten.Image, bgColor, hoverColor color.Color) {
	c := bgColor
	if b.Hovered {
		c = hoverColor
	}
	fillRect(screen, b.Rect(), c)
	strokeRect(screen, b.Rect(), colorBorder)
	textX := int(b.X+b.W/2) - int(TextWidth(b.Label)/2)
	textY := int(b.Y+b.H/2) - lineHeight/2
	DrawText(screen, b.Label, textX, textY, colorText)
}

// Button draws a labelled button and reports whether it was clicked.
func (c *Context) Button(label string) bool {
	text := displayLabel(label)
	r := c.place(c.itemWidth(TextWidth(text)+framePad*4), frameHeight)
	b := &Button{X: r.X, Y: r.Y, W: r.W, H: r.H, Label: text, Hovered: c.hovered(r)}
	c.paint(func(dst *ebiten.Image) {
		b.Draw(dst, colorFrame, colorFrameHover)
	})
	return c.clicked(r)
}

// Checkbox toggles *v when clicked and reports the change.
func (c *Context) Checkbox(label string, v *bool) bool {
	text := displayLabel(label)
	box := float32(frameHeight)
	r := c.place(box+itemSpacing+TextWidth(text), box)

	changed := false
	if c.clicked(r) {
		*v = !*v
		changed = true
	}

	checked, hover := *v, c.hovered(r)
	c.paint(func(dst *ebiten.Image) {
		bg := colorFrame
		if hover {
			bg = colorFrameHover
		}
		boxRect := Rect{r.X, r.Y, box, box}
		fillRect(dst, boxRect, bg)
		strokeRect(dst, boxRect, colorBorder)
		if checked {
			fillRect(dst, Rect{r.X + 4, r.Y + 4, box - 8, box - 8}, colorAccent)
		}
		DrawText(dst, text, int(r.X+box+itemSpacing), int(r.Y)+framePad, colorText)
	})
	return changed
}

func (c *Context) Text(s string) {
	c.TextColored(colorText, s)
}

func (c *Context) TextDisabled(s string) {
	c.TextColored(colorTextDim, s)
}

func (c *Context) TextColored(clr color.Color, s string) {
	lines := splitLines(s)
	var w float32
	for _, l := range lines {
		if tw := TextWidth(l); tw > w {
			w = tw
		}
	}
	r := c.place(w, float32(len(lines)*lineHeight))
	c.paint(func(dst *ebiten.Image) {
		for i, l := range lines {
			DrawText(dst, l, int(r.X), int(r.Y)+i*lineHeight, clr)
		}
	})
}

// Separator draws a horizontal rule across the layout column.
func (c *Context) Separator() {
	w := c.width
	if c.table != nil {
		w = c.table.width()
	}
	r := c.place(w, 1)
	c.paint(func(dst *ebiten.Image) {
		fillRect(dst, r, colorBorder)
	})
}

func (c *Context) Spacing() {
	c.place(0, itemSpacing)
}
