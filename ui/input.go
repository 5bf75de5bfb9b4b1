package ui

import (
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputText edits *s while focused. Returns true when *s changed.
func (c *Context) InputText(label string, s *string, maxLen int) bool {
	id := c.ID(label)
	text := displayLabel(label)

	w := c.itemWidth(200)
	r := c.place(w, frameHeight)
	if text != "" {
		c.SameLine()
		c.Text(text)
	}

	if c.clicked(r) {
		c.focus = id
		c.focusHit = true
	}

	focused := c.focus == id
	changed := false
	if focused {
		for _, ch := range c.in.Chars {
			if !unicode.IsPrint(ch) || utf8.RuneCountInString(*s) >= maxLen {
				continue
			}
			*s += string(ch)
			changed = true
		}
		if c.in.Backspace && *s != "" {
			_, size := utf8.DecodeLastRuneInString(*s)
			*s = (*s)[:len(*s)-size]
			changed = true
		}
		if c.in.Enter || c.in.Escape {
			c.focus = ""
		}
	}

	value, hover := *s, c.hovered(r)
	visible := int((r.W - framePad*2) / charWidth)
	c.paint(func(dst *ebiten.Image) {
		bg := colorFrame
		if hover || focused {
			bg = colorFrameHover
		}
		fillRect(dst, r, bg)
		border := colorBorder
		if focused {
			border = colorAccent
		}
		strokeRect(dst, r, border)

		shown := []rune(value)
		if focused {
			shown = append(shown, '_')
		}
		if len(shown) > visible && visible > 0 {
			shown = shown[len(shown)-visible:]
		}
		DrawText(dst, string(shown), int(r.X)+framePad, int(r.Y)+framePad, colorText)
	})
	return changed
}
