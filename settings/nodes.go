package settings

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ToggleNode is an on/off setting.
type ToggleNode struct {
	Value bool
}

func NewToggleNode(v bool) ToggleNode {
	return ToggleNode{Value: v}
}

func (n ToggleNode) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(n.Value)
}

func (n *ToggleNode) UnmarshalJSON(b []byte) error {
	return jsonAPI.Unmarshal(b, &n.Value)
}

type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// RangeNode is a number clamped to [Min, Max]. Only Value is persisted.
type RangeNode[T Number] struct {
	Value T
	Min   T
	Max   T
}

func NewRangeNode[T Number](value, min, max T) RangeNode[T] {
	n := RangeNode[T]{Min: min, Max: max}
	n.Set(value)
	return n
}

func (n *RangeNode[T]) Set(v T) {
	if v < n.Min {
		v = n.Min
	}
	if v > n.Max {
		v = n.Max
	}
	n.Value = v
}

func (n RangeNode[T]) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(n.Value)
}

// UnmarshalJSON keeps the bounds already present on n and clamps into them.
func (n *RangeNode[T]) UnmarshalJSON(b []byte) error {
	var v T
	if err := jsonAPI.Unmarshal(b, &v); err != nil {
		return err
	}
	if n.Min == 0 && n.Max == 0 {
		n.Value = v
		return nil
	}
	n.Set(v)
	return nil
}

// Color is persisted as #AARRGGBB.
type Color color.NRGBA

func ARGB(a, r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(b)), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("bad color %q", b)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("bad color %q: %w", b, err)
	}
	if len(s) == 6 {
		v |= 0xFF000000
	}
	*c = ARGB(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
	return nil
}

// Named colours used for defaults.
var (
	ColorWhite  = ARGB(255, 255, 255, 255)
	ColorRed    = ARGB(255, 255, 0, 0)
	ColorBlue   = ARGB(255, 0, 0, 255)
	ColorYellow = ARGB(255, 255, 255, 0)
	ColorOrange = ARGB(255, 255, 165, 0)
)

type ColorNode struct {
	Value Color
}

func NewColorNode(c Color) ColorNode {
	return ColorNode{Value: c}
}

func (n ColorNode) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(n.Value)
}

func (n *ColorNode) UnmarshalJSON(b []byte) error {
	return jsonAPI.Unmarshal(b, &n.Value)
}

type TextNode struct {
	Value string
}

func NewTextNode(s string) TextNode {
	return TextNode{Value: s}
}

func (n TextNode) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(n.Value)
}

func (n *TextNode) UnmarshalJSON(b []byte) error {
	return jsonAPI.Unmarshal(b, &n.Value)
}

// ButtonNode fires OnPressed handlers when pressed. Never persisted.
type ButtonNode struct {
	handlers []func()
}

func (n *ButtonNode) OnPressed(fn func()) {
	n.handlers = append(n.handlers, fn)
}

func (n *ButtonNode) Press() {
	for _, fn := range n.handlers {
		fn()
	}
}

// ContentNode is a user-editable list of T.
type ContentNode[T any] struct {
	Content     []T
	ItemFactory func() T
}

func (n *ContentNode[T]) Add() T {
	var item T
	if n.ItemFactory != nil {
		item = n.ItemFactory()
	}
	n.Content = append(n.Content, item)
	return item
}

func (n *ContentNode[T]) Remove(i int) {
	if i < 0 || i >= len(n.Content) {
		return
	}
	n.Content = append(n.Content[:i], n.Content[i+1:]...)
}

func (n ContentNode[T]) MarshalJSON() ([]byte, error) {
	if n.Content == nil {
		return []byte("[]"), nil
	}
	return jsonAPI.Marshal(n.Content)
}

// UnmarshalJSON builds each element from ItemFactory so unset fields keep their defaults.
func (n *ContentNode[T]) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := jsonAPI.Unmarshal(b, &raw); err != nil {
		return err
	}

	content := make([]T, 0, len(raw))
	for _, msg := range raw {
		var item T
		if n.ItemFactory != nil {
			item = n.ItemFactory()
		}
		if err := jsonAPI.Unmarshal(msg, &item); err != nil {
			return err
		}
		content = append(content, item)
	}
	n.Content = content
	return nil
}
