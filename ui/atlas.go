package ui

import (
	"errors"
	"image/color"
	"io/fs"
	"minimapicons/config"
	"minimapicons/sprites"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Atlas holds the texture sheets icons are cut from. Missing sheets are
// replaced by drawn shapes.
type Atlas struct {
	images map[string]*ebiten.Image
}

func LoadAtlas(dir string) (*Atlas, error) {
	a := &Atlas{images: make(map[string]*ebiten.Image)}
	if dir == "" {
		return a, nil
	}

	var errs []error
	for _, file := range []string{config.ICONS_ATLAS, config.SPRITES_ATLAS} {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, file))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				uiLog.Warn().Str("file", file).Str("dir", dir).Msg("atlas not found, using shapes")
				continue
			}
			errs = append(errs, err)
			continue
		}
		a.images[file] = img
		uiLog.Info().
			Str("file", file).
			Int("width", img.Bounds().Dx()).
			Int("height", img.Bounds().Dy()).
			Msg("atlas loaded")
	}
	return a, errors.Join(errs...)
}

func (a *Atlas) Has(file string) bool {
	if a == nil {
		return false
	}
	_, ok := a.images[file]
	return ok
}

// DrawTexture draws the uv region of file scaled to size and centred on cx, cy.
func (a *Atlas) DrawTexture(screen *ebiten.Image, file string, uv sprites.UV, cx, cy, size float32, tint color.NRGBA) bool {
	if !a.Has(file) || uv.Empty() || size <= 0 {
		return false
	}

	img := a.images[file]
	rect := uv.Rect(img.Bounds().Dx(), img.Bounds().Dy())
	if rect.Empty() {
		return false
	}
	sub := img.SubImage(rect).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size)/float64(rect.Dx()), float64(size)/float64(rect.Dy()))
	op.GeoM.Translate(float64(cx-size/2), float64(cy-size/2))
	op.ColorScale.ScaleWithColor(tint)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sub, op)
	return true
}

// DrawIcon draws an Icons.png icon, or its fallback shape.
func (a *Atlas) DrawIcon(screen *ebiten.Image, idx sprites.MapIconsIndex, cx, cy, size float32, tint color.NRGBA) {
	if a.DrawTexture(screen, config.ICONS_ATLAS, sprites.UVForIcon(idx), cx, cy, size, tint) {
		return
	}
	DrawIconFallback(screen, idx, cx, cy, size, tint)
}
