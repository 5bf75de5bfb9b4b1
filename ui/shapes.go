package ui

import (
	"image/color"
	"math"

	"minimapicons/sprites"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawShape draws a loot filter shape of the given diameter centred on cx, cy.
func DrawShape(screen *ebiten.Image, shape sprites.LootShape, cx, cy, size float32, clr color.NRGBA) {
	r := size / 2
	switch shape {
	case sprites.LootCircle:
		vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
	case sprites.LootDiamond:
		fillPolygon(screen, regularPolygon(cx, cy, r, 4, -math.Pi/2), clr)
	case sprites.LootHexagon:
		fillPolygon(screen, regularPolygon(cx, cy, r, 6, 0), clr)
	case sprites.LootSquare:
		s := r * 0.8
		vector.DrawFilledRect(screen, cx-s, cy-s, s*2, s*2, clr, false)
	case sprites.LootStar:
		fillPolygon(screen, starPoints(cx, cy, r, r*0.45, 5), clr)
	case sprites.LootTriangle:
		fillPolygon(screen, regularPolygon(cx, cy, r, 3, -math.Pi/2), clr)
	case sprites.LootCross:
		w := r * 0.6
		vector.DrawFilledRect(screen, cx-w/2, cy-r, w, r*2, clr, false)
		vector.DrawFilledRect(screen, cx-r, cy-w/2, r*2, w, clr, false)
	case sprites.LootMoon:
		fillPolygon(screen, moonPoints(cx, cy, r), clr)
	case sprites.LootRaindrop:
		vector.DrawFilledCircle(screen, cx, cy+r*0.3, r*0.7, clr, true)
		fillPolygon(screen, []point{{cx, cy - r}, {cx + r*0.66, cy + r*0.1}, {cx - r*0.66, cy + r*0.1}}, clr)
	case sprites.LootKite:
		fillPolygon(screen, []point{{cx, cy - r}, {cx + r*0.7, cy - r*0.2}, {cx, cy + r}, {cx - r*0.7, cy - r*0.2}}, clr)
	case sprites.LootPentagon:
		fillPolygon(screen, regularPolygon(cx, cy, r, 5, -math.Pi/2), clr)
	case sprites.LootUpsideDownHouse:
		fillPolygon(screen, []point{{cx - r*0.8, cy - r*0.8}, {cx + r*0.8, cy - r*0.8}, {cx + r*0.8, cy + r*0.1}, {cx, cy + r}, {cx - r*0.8, cy + r*0.1}}, clr)
	default:
		vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
	}
}

func moonPoints(cx, cy, r float32) []point {
	const steps = 16
	pts := make([]point, 0, steps*2+2)
	for i := 0; i <= steps; i++ {
		a := math.Pi/2 + float64(i)*math.Pi/steps
		pts = append(pts, point{cx + r*float32(math.Cos(a)), cy + r*float32(math.Sin(a))})
	}
	for i := steps; i >= 0; i-- {
		a := math.Pi/2 + float64(i)*math.Pi/steps
		pts = append(pts, point{cx + r*0.45*float32(math.Cos(a)), cy + r*float32(math.Sin(a))})
	}
	return pts
}

// DrawIconFallback stands in for an atlas icon: loot filter icons become
// their shape, named icons a tinted disc with the first letter of the name.
func DrawIconFallback(screen *ebiten.Image, idx sprites.MapIconsIndex, cx, cy, size float32, tint color.NRGBA) {
	if lootSize, lootColor, shape, ok := idx.LootFilterParts(); ok {
		DrawShape(screen, shape, cx, cy, size*lootSize.Scale(), MulColor(lootColor.NRGBA(), tint))
		return
	}

	vector.DrawFilledCircle(screen, cx, cy, size/2, tint, true)
	vector.StrokeCircle(screen, cx, cy, size/2, 1, color.NRGBA{0, 0, 0, 200}, true)
	if size >= lineHeight {
		letter := TruncStr(idx.String(), 1)
		DrawText(screen, letter, int(cx)-charWidth/2, int(cy)-lineHeight/2, color.NRGBA{0, 0, 0, 255})
	}
}
