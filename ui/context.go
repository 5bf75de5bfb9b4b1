package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is what the widgets see of the mouse and keyboard in one frame.
type Input struct {
	MouseX, MouseY int
	Clicked        bool
	Down           bool
	WheelY         float64
	Chars          []rune
	Backspace      bool
	Enter          bool
	Escape         bool
}

// Rect is a widget area in screen pixels.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= r.X && fx <= r.X+r.W && fy >= r.Y && fy <= r.Y+r.H
}

var (
	colorText       = color.NRGBA{230, 230, 230, 255}
	colorTextDim    = color.NRGBA{150, 150, 150, 255}
	colorFrame      = color.NRGBA{40, 40, 40, 255}
	colorFrameHover = color.NRGBA{60, 60, 70, 255}
	colorBorder     = color.NRGBA{100, 100, 100, 255}
	colorAccent     = color.NRGBA{66, 150, 250, 255}
	colorWindow     = color.NRGBA{20, 20, 24, 240}
	colorTooltip    = color.NRGBA{30, 30, 30, 245}
)

const (
	itemSpacing = 4
	framePad    = 3
	frameHeight = lineHeight + framePad*2
)

// Context lays out and runs widgets for one frame at a time. Input is
// captured during ebiten's Update and consumed by the widgets in Draw.
type Context struct {
	Atlas *Atlas

	pending Input
	in      Input

	screen *ebiten.Image

	originX  float32
	width    float32
	rootW    float32
	cursorX  float32
	cursorY  float32
	lineH    float32
	sameLine bool
	lastX    float32
	lastItem Rect

	nextWidth float32

	ids      []string
	active   string
	focus    string
	focusHit bool

	overlay      bool
	deferred     []func(*ebiten.Image)
	blockers     []Rect
	nextBlockers []Rect
	windows      int

	tooltip string
	table   *table

	popups map[string]bool
	scroll map[string]int
}

func NewContext(atlas *Atlas) *Context {
	return &Context{
		Atlas:  atlas,
		popups: make(map[string]bool),
		scroll: make(map[string]int),
	}
}

// Capture reads ebiten's input state. Call it from Update.
func (c *Context) Capture() {
	x, y := ebiten.CursorPosition()
	c.pending.MouseX, c.pending.MouseY = x, y
	c.pending.Down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c.pending.Clicked = true
	}
	_, wy := ebiten.Wheel()
	c.pending.WheelY += wy
	c.pending.Chars = ebiten.AppendInputChars(c.pending.Chars)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		c.pending.Backspace = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		c.pending.Enter = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		c.pending.Escape = true
	}
}

// Feed queues input as if it had been captured.
func (c *Context) Feed(in Input) {
	c.pending.MouseX, c.pending.MouseY = in.MouseX, in.MouseY
	c.pending.Down = in.Down
	c.pending.Clicked = c.pending.Clicked || in.Clicked
	c.pending.WheelY += in.WheelY
	c.pending.Chars = append(c.pending.Chars, in.Chars...)
	c.pending.Backspace = c.pending.Backspace || in.Backspace
	c.pending.Enter = c.pending.Enter || in.Enter
	c.pending.Escape = c.pending.Escape || in.Escape
}

// Begin starts a frame drawing into screen, laying widgets out from x, y
// in a column width pixels wide. screen may be nil to run widget logic only.
func (c *Context) Begin(screen *ebiten.Image, x, y, width float32) {
	c.in = c.pending
	c.pending = Input{MouseX: c.in.MouseX, MouseY: c.in.MouseY, Down: c.in.Down}
	c.in.Chars = append([]rune(nil), c.in.Chars...)

	c.screen = screen
	c.originX, c.width = x, width
	c.rootW = width
	c.cursorX, c.cursorY = x, y
	c.lineH = 0
	c.sameLine = false
	c.nextWidth = 0
	c.ids = c.ids[:0]
	c.overlay = false
	c.deferred = c.deferred[:0]
	c.blockers, c.nextBlockers = c.nextBlockers, c.blockers[:0]
	c.windows = 0
	c.tooltip = ""
	c.table = nil

	if !c.in.Down {
		c.active = ""
	}
}

// End draws deferred windows and the tooltip.
func (c *Context) End() {
	for _, fn := range c.deferred {
		c.paint(fn)
	}
	c.deferred = c.deferred[:0]

	if c.tooltip != "" {
		c.drawTooltip(c.tooltip)
	}

	if c.in.Clicked && c.focus != "" && !c.focusHit {
		c.focus = ""
	}
	c.focusHit = false
}

// Input returns the input of the current frame.
func (c *Context) Input() Input {
	return c.in
}

// WantsMouse reports whether the cursor is over something the UI drew
// last frame, so clicks should not fall through.
func (c *Context) WantsMouse(bounds Rect) bool {
	if bounds.Contains(c.pending.MouseX, c.pending.MouseY) {
		return true
	}
	for _, r := range c.nextBlockers {
		if r.Contains(c.pending.MouseX, c.pending.MouseY) {
			return true
		}
	}
	return false
}

func (c *Context) PushID(id string) {
	c.ids = append(c.ids, id)
}

func (c *Context) PopID() {
	if len(c.ids) > 0 {
		c.ids = c.ids[:len(c.ids)-1]
	}
}

// ID scopes label by the ID stack.
func (c *Context) ID(label string) string {
	if len(c.ids) == 0 {
		return label
	}
	return strings.Join(c.ids, "/") + "/" + label
}

// displayLabel strips the "##id" suffix used to disambiguate widgets.
func displayLabel(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}

// SameLine keeps the next widget on the current line.
func (c *Context) SameLine() {
	c.sameLine = true
}

// SetNextItemWidth sets the width of the next sized widget.
func (c *Context) SetNextItemWidth(w float32) {
	c.nextWidth = w
}

func (c *Context) itemWidth(def float32) float32 {
	w := def
	if c.nextWidth > 0 {
		w = c.nextWidth
		c.nextWidth = 0
	}
	return w
}

// Cursor returns where the next widget will be placed.
func (c *Context) Cursor() (float32, float32) {
	if c.sameLine {
		return c.lastX + itemSpacing*2, c.cursorY - c.lineH - itemSpacing
	}
	return c.cursorX, c.cursorY
}

// place reserves w x h at the cursor and advances the layout.
func (c *Context) place(w, h float32) Rect {
	x, y := c.Cursor()
	if c.sameLine {
		c.sameLine = false
		if h > c.lineH {
			c.cursorY += h - c.lineH
			c.lineH = h
		}
	} else {
		c.cursorY = y + h + itemSpacing
		c.lineH = h
	}
	c.lastX = x + w
	c.lastItem = Rect{x, y, w, h}

	if c.table != nil {
		c.table.extend(y + h)
	}
	return c.lastItem
}

func (c *Context) blocked() bool {
	if c.overlay {
		return false
	}
	for _, r := range c.blockers {
		if r.Contains(c.in.MouseX, c.in.MouseY) {
			return true
		}
	}
	return false
}

func (c *Context) hovered(r Rect) bool {
	return r.Contains(c.in.MouseX, c.in.MouseY) && !c.blocked()
}

func (c *Context) clicked(r Rect) bool {
	return c.in.Clicked && c.hovered(r)
}

// IsItemHovered reports whether the cursor is over the last widget.
func (c *Context) IsItemHovered() bool {
	return c.hovered(c.lastItem)
}

// SetTooltip shows s next to the cursor at the end of the frame.
func (c *Context) SetTooltip(s string) {
	c.tooltip = s
}

// Tooltip is the common "hover the last item, show s" pair.
func (c *Context) Tooltip(s string) {
	if c.IsItemHovered() {
		c.SetTooltip(s)
	}
}

// paint runs fn now, or at End when inside a window.
func (c *Context) paint(fn func(*ebiten.Image)) {
	if c.screen == nil {
		return
	}
	if c.overlay {
		c.deferred = append(c.deferred, fn)
		return
	}
	fn(c.screen)
}

func (c *Context) drawTooltip(s string) {
	lines := splitLines(s)
	var w float32
	for _, l := range lines {
		if tw := TextWidth(l); tw > w {
			w = tw
		}
	}
	x := float32(c.in.MouseX) + 14
	y := float32(c.in.MouseY) + 14
	h := float32(len(lines)*lineHeight) + framePad*2
	c.paint(func(dst *ebiten.Image) {
		fillRect(dst, Rect{x, y, w + framePad*2, h}, colorTooltip)
		strokeRect(dst, Rect{x, y, w + framePad*2, h}, colorBorder)
		for i, l := range lines {
			DrawText(dst, l, int(x)+framePad, int(y)+framePad+i*lineHeight, colorText)
		}
	})
}
