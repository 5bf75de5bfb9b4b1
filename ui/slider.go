package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Slider struct {
	X, Y, W, H float32
	Value      float32
	Dragging   bool
	Label      string
	Color      color.Color
}

func (s *Slider) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= s.X && fx <= s.X+s.W && fy >= s.Y-5 && fy <= s.Y+s.H+5
}

// SetValueFromX moves the handle under x, keeping Value in [0, 1].
func (s *Slider) SetValueFromX(x int) {
	newVal := (float32(x) - s.X) / s.W
	if newVal < 0 {
		newVal = 0
	}
	if newVal > 1 {
		newVal = 1
	}
	s.Value = newVal
}

func (s *Slider) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, s.X, s.Y, s.W, s.H, colorFrame, false)
	vector.DrawFilledRect(screen, s.X, s.Y, s.W*s.Value, s.H, s.Color, false)
	vector.StrokeRect(screen, s.X, s.Y, s.W, s.H, 1, color.NRGBA{80, 80, 80, 255}, false)
	handleX := s.X + s.W*s.Value
	handle := color.NRGBA{200, 200, 200, 255}
	if s.Dragging {
		handle = color.NRGBA{255, 255, 255, 255}
	}
	vector.DrawFilledRect(screen, handleX-3, s.Y, 6, s.H, handle, false)
	textX := int(s.X+s.W/2) - int(TextWidth(s.Label)/2)
	DrawTextShadow(screen, s.Label, textX, int(s.Y)+framePad, colorText)
}

// SliderInt edits *v in [min, max] by dragging. Returns true when *v changed.
func (c *Context) SliderInt(label string, v *int, min, max int) bool {
	id := c.ID(label)
	text := displayLabel(label)
	r := c.place(c.itemWidth(150), frameHeight)

	if c.clicked(r) {
		c.active = id
	}

	s := &Slider{X: r.X, Y: r.Y, W: r.W, H: r.H, Color: colorAccent}
	changed := false
	if c.active == id && c.in.Down && max > min {
		s.Dragging = true
		s.SetValueFromX(c.in.MouseX)
		nv := min + int(s.Value*float32(max-min)+0.5)
		if nv != *v {
			*v = nv
			changed = true
		}
	}
	if *v < min {
		*v = min
	}
	if *v > max {
		*v = max
	}

	if max > min {
		s.Value = float32(*v-min) / float32(max-min)
	}
	s.Label = strconv.Itoa(*v)
	if text != "" {
		s.Label = fmt.Sprintf("%s: %d", text, *v)
	}
	c.paint(s.Draw)
	return changed
}

// SliderFloat is SliderInt for float settings, in whole steps.
func (c *Context) SliderFloat(label string, v *float32, min, max float32) bool {
	iv := int(*v + 0.5)
	if !c.SliderInt(label, &iv, int(min), int(max)) {
		return false
	}
	*v = float32(iv)
	return true
}
