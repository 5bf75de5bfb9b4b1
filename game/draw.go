package game

import (
	"fmt"
	"image/color"
	"minimapicons/config"
	"minimapicons/entity"
	"minimapicons/icons"
	"minimapicons/sprites"
	"minimapicons/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorPanel  = color.NRGBA{20, 25, 30, 230}
	colorBorder = color.NRGBA{50, 58, 70, 255}
	colorRing   = color.NRGBA{60, 70, 85, 140}
	colorText   = color.NRGBA{220, 220, 220, 255}
	colorTextBg = color.NRGBA{0, 0, 0, 140}
	colorGreen  = color.NRGBA{50, 200, 80, 255}
	colorRed    = color.NRGBA{255, 60, 60, 255}
)

const (
	menuX     = 20
	menuY     = 20
	menuWidth = 540
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Clear()

	g.mutex.RLock()
	player := g.player
	connected := g.connected
	scanErr := g.scanErr
	scanTook := g.scanTook
	g.mutex.RUnlock()

	centerX := float32(g.width) / 2
	centerY := float32(g.height) / 2
	s := g.store.Settings()

	visible := g.builder.Visible()
	if connected {
		g.drawRadar(screen, player, visible, centerX, centerY)
	}

	if s.LogDebugInformation.Value {
		status := fmt.Sprintf("entities: %d  icons: %d  scan: %s", g.builder.Len(), len(visible), scanTook.Round(100_000))
		clr := color.Color(colorText)
		if !connected {
			status = "not connected"
			if scanErr != "" {
				status += ": " + scanErr
			}
			clr = colorRed
		}
		drawLabel(screen, status, 10, float32(g.height)-24, clr)
	}

	if g.menuOpen {
		g.drawMenu(screen)
	}
}

// drawRadar places every visible icon relative to the player, clipped to
// the radar circle.
func (g *Game) drawRadar(screen *ebiten.Image, player entity.Entity, visible []*icons.BaseIcon, centerX, centerY float32) {
	radius := float32(config.RADAR_RADIUS)
	if g.menuOpen {
		ui.DrawCircle(screen, centerX, centerY, radius, colorRing)
		ui.DrawCircle(screen, centerX, centerY, radius*0.5, colorRing)
	}

	scale := radius / float32(config.RADAR_RANGE)
	for _, icon := range visible {
		e := icon.Entity
		dx := e.Pos.X - player.Pos.X
		dy := e.Pos.Y - player.Pos.Y
		radarX := centerX + dx*scale
		radarY := centerY - dy*scale

		distFromCenter := (radarX-centerX)*(radarX-centerX) + (radarY-centerY)*(radarY-centerY)
		if distFromCenter > radius*radius {
			continue
		}

		g.drawTexture(screen, icon.MainTexture, radarX, radarY)

		if icon.Text != "" {
			label := ui.TruncStr(icon.Text, 24)
			w := ui.TextWidth(label)
			drawLabel(screen, label, radarX-w/2, radarY+icon.MainTexture.Size/2+2, colorText)
		}
	}

	vector.DrawFilledCircle(screen, centerX, centerY, 3, colorGreen, true)
}

func (g *Game) drawTexture(screen *ebiten.Image, tex icons.HudTexture, x, y float32) {
	atlas := g.ui.Atlas
	if atlas.DrawTexture(screen, tex.File, tex.UV, x, y, tex.Size, tex.Color) {
		return
	}
	if tex.Icon.Valid() {
		ui.DrawIconFallback(screen, tex.Icon, x, y, tex.Size, tex.Color)
		return
	}
	ui.DrawShape(screen, sprites.LootDiamond, x, y, tex.Size, tex.Color)
	vector.StrokeLine(screen, x-tex.Size/4, y, x+tex.Size/4, y, 1, color.Black, false)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	h := g.menuH
	if h <= 0 {
		h = float32(g.height) - menuY*2
	}
	vector.DrawFilledRect(screen, menuX-8, menuY-8, menuWidth+16, h+16, colorPanel, false)
	vector.StrokeRect(screen, menuX-8, menuY-8, menuWidth+16, h+16, 1, colorBorder, false)

	g.ui.Begin(screen, menuX, menuY, menuWidth)
	g.menu.Render(g.ui)
	_, bottom := g.ui.Cursor()
	g.ui.End()
	g.menuH = bottom - menuY
}

func drawLabel(screen *ebiten.Image, s string, x, y float32, clr color.Color) {
	w := ui.TextWidth(s)
	vector.DrawFilledRect(screen, x-2, y-1, w+4, 15, colorTextBg, false)
	ui.DrawText(screen, s, int(x), int(y), clr)
}
