package ui

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	charWidth  = 7
	lineHeight = 13
	textAscent = 10
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func DrawCircle(screen *ebiten.Image, cx, cy, radius float32, clr color.Color) {
	segments := 48
	for i := 0; i < segments; i++ {
		angle1 := float64(i) * 2 * math.Pi / float64(segments)
		angle2 := float64(i+1) * 2 * math.Pi / float64(segments)
		x1 := cx + radius*float32(math.Cos(angle1))
		y1 := cy + radius*float32(math.Sin(angle1))
		x2 := cx + radius*float32(math.Cos(angle2))
		y2 := cy + radius*float32(math.Sin(angle2))
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, clr, false)
	}
}

// DrawText prints s with its top-left corner at x, y.
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, x, y+textAscent, clr)
}

// DrawTextShadow prints s with a one pixel dark outline, for text over the game.
func DrawTextShadow(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	shadow := color.NRGBA{0, 0, 0, 200}
	DrawText(screen, s, x+1, y+1, shadow)
	DrawText(screen, s, x-1, y-1, shadow)
	DrawText(screen, s, x, y, clr)
}

func TextWidth(s string) float32 {
	return float32(len([]rune(s)) * charWidth)
}

func TruncStr(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen < 2 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-1]) + "."
}

type point struct {
	X, Y float32
}

func fillPolygon(screen *ebiten.Image, pts []point, clr color.Color) {
	if len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.EvenOdd
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

// regularPolygon returns n points on a circle, the first one at angle rot.
func regularPolygon(cx, cy, radius float32, n int, rot float64) []point {
	pts := make([]point, n)
	for i := range pts {
		a := rot + float64(i)*2*math.Pi/float64(n)
		pts[i] = point{cx + radius*float32(math.Cos(a)), cy + radius*float32(math.Sin(a))}
	}
	return pts
}

func starPoints(cx, cy, outer, inner float32, spikes int) []point {
	pts := make([]point, 0, spikes*2)
	for i := 0; i < spikes*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/float64(spikes)
		pts = append(pts, point{cx + r*float32(math.Cos(a)), cy + r*float32(math.Sin(a))})
	}
	return pts
}

// MulColor multiplies two colours channel by channel.
func MulColor(a, b color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(uint16(a.R) * uint16(b.R) / 255),
		G: uint8(uint16(a.G) * uint16(b.G) / 255),
		B: uint8(uint16(a.B) * uint16(b.B) / 255),
		A: uint8(uint16(a.A) * uint16(b.A) / 255),
	}
}

func fillRect(screen *ebiten.Image, r Rect, clr color.Color) {
	vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, clr, false)
}

func strokeRect(screen *ebiten.Image, r Rect, clr color.Color) {
	vector.StrokeRect(screen, r.X, r.Y, r.W, r.H, 1, clr, false)
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
