package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const titleHeight = frameHeight + 2

var colorTitle = color.NRGBA{36, 60, 100, 255}

type layoutState struct {
	originX, width   float32
	cursorX, cursorY float32
	lineH, lastX     float32
	sameLine         bool
	lastItem         Rect
	overlay          bool
	table            *table
}

// Window is an open floating window; close it with EndWindow.
type Window struct {
	Rect   Rect
	saved  layoutState
	closed bool
}

// Closed reports whether the title bar close box was clicked.
func (w *Window) Closed() bool {
	return w.closed
}

// BeginWindow opens a floating window drawn above the rest of the frame.
// Widgets until EndWindow are placed inside it.
func (c *Context) BeginWindow(title string, width, height float32) *Window {
	offset := float32(c.windows) * 24
	c.windows++

	win := &Window{
		Rect: Rect{c.originX + c.rootWidth() + 16 + offset, 40 + offset, width, height},
		saved: layoutState{
			originX: c.originX, width: c.width,
			cursorX: c.cursorX, cursorY: c.cursorY,
			lineH: c.lineH, lastX: c.lastX,
			sameLine: c.sameLine, lastItem: c.lastItem,
			overlay: c.overlay, table: c.table,
		},
	}
	c.nextBlockers = append(c.nextBlockers, win.Rect)
	c.overlay = true
	c.table = nil

	r := win.Rect
	label := displayLabel(title)
	c.paint(func(dst *ebiten.Image) {
		fillRect(dst, r, colorWindow)
		fillRect(dst, Rect{r.X, r.Y, r.W, titleHeight}, colorTitle)
		strokeRect(dst, r, colorBorder)
		DrawText(dst, TruncStr(label, int((r.W-40)/charWidth)), int(r.X)+framePad*2, int(r.Y)+framePad+1, colorText)
	})

	closeBox := Rect{r.X + r.W - titleHeight, r.Y, titleHeight, titleHeight}
	closeHover := c.hovered(closeBox)
	c.paint(func(dst *ebiten.Image) {
		if closeHover {
			fillRect(dst, closeBox, colorFrameHover)
		}
		DrawText(dst, "x", int(closeBox.X+closeBox.W/2)-charWidth/2, int(closeBox.Y)+framePad+1, colorText)
	})
	if c.clicked(closeBox) || c.in.Escape {
		win.closed = true
	}

	c.originX = r.X + framePad*2
	c.width = r.W - framePad*4
	c.cursorX = c.originX
	c.cursorY = r.Y + titleHeight + framePad*2
	c.lineH = 0
	c.sameLine = false
	return win
}

func (c *Context) EndWindow(w *Window) {
	s := w.saved
	c.originX, c.width = s.originX, s.width
	c.cursorX, c.cursorY = s.cursorX, s.cursorY
	c.lineH, c.lastX = s.lineH, s.lastX
	c.sameLine, c.lastItem = s.sameLine, s.lastItem
	c.overlay = s.overlay
	c.table = s.table
}

func (c *Context) rootWidth() float32 {
	if c.rootW > 0 {
		return c.rootW
	}
	return c.width
}
