package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const cellPad = 4

var (
	colorHeader   = color.NRGBA{48, 48, 56, 255}
	colorTableRow = color.NRGBA{255, 255, 255, 10}
)

type column struct {
	label string
	width float32
}

type table struct {
	id        string
	x, y      float32
	cols      []column
	col       int
	row       int
	rowY      float32
	rowBottom float32
	rowLines  []float32

	savedX, savedY, savedW float32
}

func (t *table) width() float32 {
	var w float32
	for _, c := range t.cols {
		w += c.width
	}
	return w
}

func (t *table) columnX(i int) float32 {
	x := t.x
	for _, c := range t.cols[:i] {
		x += c.width
	}
	return x
}

func (t *table) extend(bottom float32) {
	if bottom+cellPad > t.rowBottom {
		t.rowBottom = bottom + cellPad
	}
}

// BeginTable starts a bordered table. Columns are declared with
// TableSetupColumn before the first row.
func (c *Context) BeginTable(id string, columns int) bool {
	if c.table != nil || columns <= 0 {
		return false
	}
	x, y := c.Cursor()
	c.sameLine = false
	c.table = &table{
		id:     c.ID(id),
		x:      x,
		y:      y,
		cols:   make([]column, 0, columns),
		col:    -1,
		row:    -1,
		rowY:   y,
		savedX: c.cursorX,
		savedY: y,
		savedW: c.width,
	}
	c.table.rowBottom = y
	return true
}

func (c *Context) TableSetupColumn(label string, width float32) {
	if c.table == nil {
		return
	}
	c.table.cols = append(c.table.cols, column{label: label, width: width})
}

// TableHeadersRow draws the column labels as the first row.
func (c *Context) TableHeadersRow() {
	t := c.table
	if t == nil {
		return
	}
	c.TableNextRow()
	r := Rect{t.x, t.rowY, t.width(), frameHeight}
	c.paint(func(dst *ebiten.Image) {
		fillRect(dst, r, colorHeader)
	})
	for range t.cols {
		c.TableNextColumn()
		c.Text(t.cols[t.col].label)
	}
}

func (c *Context) TableNextRow() {
	t := c.table
	if t == nil {
		return
	}
	if t.row >= 0 {
		t.rowLines = append(t.rowLines, t.rowBottom)
		t.rowY = t.rowBottom
	}
	t.row++
	t.col = -1
	if t.row%2 == 0 && t.row > 0 {
		r := Rect{t.x, t.rowY, t.width(), frameHeight + cellPad*2}
		c.paint(func(dst *ebiten.Image) {
			fillRect(dst, r, colorTableRow)
		})
	}
}

// TableNextColumn moves to the next cell, wrapping onto a new row.
func (c *Context) TableNextColumn() bool {
	t := c.table
	if t == nil || len(t.cols) == 0 {
		return false
	}
	if t.row < 0 || t.col+1 >= len(t.cols) {
		c.TableNextRow()
	}
	t.col++

	c.cursorX = t.columnX(t.col) + cellPad
	c.cursorY = t.rowY + cellPad
	c.width = t.cols[t.col].width - cellPad*2
	c.lineH = 0
	c.sameLine = false
	return true
}

func (c *Context) EndTable() {
	t := c.table
	if t == nil {
		return
	}
	c.table = nil

	bottom := t.rowBottom
	right := t.x + t.width()
	xs := make([]float32, 0, len(t.cols))
	for i := 1; i < len(t.cols); i++ {
		xs = append(xs, t.columnX(i))
	}
	lines := t.rowLines
	c.paint(func(dst *ebiten.Image) {
		strokeRect(dst, Rect{t.x, t.y, right - t.x, bottom - t.y}, colorBorder)
		for _, x := range xs {
			fillRect(dst, Rect{x, t.y, 1, bottom - t.y}, colorBorder)
		}
		for _, y := range lines {
			fillRect(dst, Rect{t.x, y, right - t.x, 1}, colorBorder)
		}
	})

	c.cursorX = t.savedX
	c.cursorY = bottom + itemSpacing
	c.width = t.savedW
	c.lineH = bottom - t.savedY
	c.sameLine = false
	c.lastX = right
	c.lastItem = Rect{t.x, t.y, right - t.x, bottom - t.y}
}
