package gfx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/nuwa-jump/internal/core"
	"github.com/vovakirdan/nuwa-jump/internal/games/skyjump"
	"github.com/vovakirdan/nuwa-jump/internal/platform/gfx/layout"
)

const lineHeight = 18

// Draw paints the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()

	if snap.Phase == skyjump.PhaseHome {
		w.drawHome(screen, snap)
		return
	}

	w.drawBackground(screen, snap.Distance)
	for _, p := range snap.Platforms {
		drawSprite(screen, w.sprites.Platform, p, layout.Stoneware, false)
	}
	for _, s := range snap.Stones {
		drawSprite(screen, w.sprites.Stones[s.Stone], s.Box, layout.StoneColors[s.Stone], false)
	}
	if snap.LegLive {
		drawSprite(screen, w.sprites.Leg, snap.Leg, layout.Olive, false)
	}
	for _, m := range snap.Meteors {
		drawSprite(screen, w.sprites.Meteor, m, layout.Ember, false)
	}
	drawSprite(screen, w.sprites.Player, snap.Player, layout.Pink, snap.Facing == skyjump.FacingLeft)

	w.drawHUD(screen, snap)

	switch {
	case snap.Phase == skyjump.PhaseWon:
		vector.FillRect(screen, 0, 0, float32(w.width), float32(w.height), color.NRGBA{255, 255, 255, 150}, false)
		w.drawCentered(screen, "SKY PATCHED", float64(w.height)/2-20, 2, layout.Black)
	case snap.Phase == skyjump.PhaseGameOver:
		w.drawCentered(screen, "GAME OVER", float64(w.height)/2, 2, layout.GameOverRed)
		w.drawCentered(screen, "Space to Retry", float64(w.height)/2+40, 1, layout.White)
	case snap.Paused:
		w.pause.Draw(screen)
	}

	if w.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, w.height-16)
	}
}

// drawBackground tiles the sky image with parallax, or fills a flat sky.
func (w *Window) drawBackground(screen *ebiten.Image, distance float64) {
	bg := w.sprites.Background
	if bg == nil {
		screen.Fill(layout.Sky)
		return
	}

	fw, fh := float64(w.width), float64(w.height)
	sx := fw / float64(bg.Bounds().Dx())
	sy := fh / float64(bg.Bounds().Dy())
	for _, pos := range layout.BackgroundTiles(distance, fw, fh) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(pos[0], pos[1])
		screen.DrawImage(bg, op)
	}
}

// drawSprite stretches img over box, or fills box with fallback.
func drawSprite(screen, img *ebiten.Image, box core.RectF, fallback color.Color, flip bool) {
	if img == nil {
		vector.FillRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), fallback, false)
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(box.W/float64(b.Dx()), box.H/float64(b.Dy()))
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(box.W, 0)
	}
	op.GeoM.Translate(box.X, box.Y)
	screen.DrawImage(img, op)
}

// drawHUD paints the stone slots, the leg slot and the climb.
func (w *Window) drawHUD(screen *ebiten.Image, snap skyjump.Snapshot) {
	for i := range skyjump.NumStones {
		r := layout.StoneSlot(i)
		if snap.Collected.Has(skyjump.Stone(i)) {
			fillRect(screen, r, layout.StoneColors[i])
			strokeRect(screen, r, layout.White)
		} else {
			strokeRect(screen, r, layout.GreyOutline)
		}
	}

	leg := layout.LegSlot()
	label, labelColor := "?", color.Color(layout.GreyOutline)
	if snap.HasLeg {
		fillRect(screen, leg, layout.Olive)
		strokeRect(screen, leg, layout.White)
		label, labelColor = "LEG", layout.White
	} else {
		strokeRect(screen, leg, layout.GreyOutline)
	}
	lw, lh := text.Measure(label, w.face, 0)
	w.drawText(screen, label, leg.CenterX()-lw/2, leg.CenterY()-lh/2, 1, labelColor)

	climb := fmt.Sprintf("%d", int(snap.Distance))
	if snap.Mode == skyjump.ModeStory {
		climb = fmt.Sprintf("%d/%d", int(snap.Distance), int(snap.WinDistance))
	} else if snap.Best > 0 {
		climb = fmt.Sprintf("%d  best %d", int(snap.Distance), int(snap.Best))
	}
	cw, _ := text.Measure(climb, w.face, 0)
	w.drawText(screen, climb, float64(w.width)-cw-layout.HUDX, layout.HUDY+6, 1, layout.White)
}

// drawHome paints the title panel and the lore.
func (w *Window) drawHome(screen *ebiten.Image, snap skyjump.Snapshot) {
	screen.Fill(layout.Black)
	if bg := w.sprites.Background; bg != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(w.width)/float64(bg.Bounds().Dx()), float64(w.height)/float64(bg.Bounds().Dy()))
		screen.DrawImage(bg, op)
	}

	fw, fh := float64(w.width), float64(w.height)
	panel := layout.HomePanel(fw, fh)
	vector.FillRect(screen, float32(panel.X), float32(panel.Y), float32(panel.W), float32(panel.H), color.NRGBA{0, 0, 0, 220}, false)

	w.drawCentered(screen, w.game.Title(), 60, 2, layout.Gold)

	x, y, width := layout.LoreOrigin(fw)
	measure := func(s string) float64 {
		lw, _ := text.Measure(s, w.face, 0)
		return lw
	}
	for i, line := range skyjump.WrapText(skyjump.Lore, width, measure) {
		w.drawText(screen, line, x, y+float64(i*lineHeight), 1, layout.White)
	}

	if snap.Best > 0 {
		w.drawCentered(screen, fmt.Sprintf("Best climb: %d", int(snap.Best)), panel.Bottom()-30, 1, layout.GreyOutline)
	}
}

// drawText draws s with its top-left corner at (x, y), magnified by scale.
func (w *Window) drawText(screen *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = lineHeight
	text.Draw(screen, s, w.face, op)
}

// drawCentered draws s horizontally centered at height y.
func (w *Window) drawCentered(screen *ebiten.Image, s string, y, scale float64, c color.Color) {
	tw, _ := text.Measure(s, w.face, 0)
	w.drawText(screen, s, layout.CenterX(float64(w.width), tw*scale), y, scale, c)
}

func fillRect(screen *ebiten.Image, r core.RectF, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r core.RectF, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, c, false)
}
