// Package layout holds the window frontend's geometry, palette and asset
// manifest. It has no graphics backend so it can be tested anywhere.
package layout

import (
	"image/color"
	"math"

	"github.com/vovakirdan/nuwa-jump/internal/core"
)

// HUD geometry in logical pixels.
const (
	HUDX       = 10
	HUDY       = 10
	SlotSize   = 24
	SlotPad    = 6
	LegSlotW   = 40
	LegSlotGap = 15
)

// Background parallax factors per pixel climbed.
const (
	ParallaxX = 0.2
	ParallaxY = 0.5
)

// Palette.
var (
	White       = color.RGBA{255, 255, 255, 255}
	Black       = color.RGBA{0, 0, 0, 255}
	Gold        = color.RGBA{255, 215, 0, 255}
	GreyOutline = color.RGBA{100, 100, 100, 255}
	Olive       = color.RGBA{107, 142, 35, 255}
	Sky         = color.RGBA{20, 20, 60, 255}
	Pink        = color.RGBA{255, 105, 180, 255}
	Stoneware   = color.RGBA{139, 119, 101, 255}
	Ember       = color.RGBA{255, 69, 0, 255}
	GameOverRed = color.RGBA{255, 50, 50, 255}

	// StoneColors is indexed by stone ID: blue, white, yellow, red, green.
	StoneColors = [...]color.RGBA{
		{30, 144, 255, 255},
		{255, 255, 255, 255},
		{255, 215, 0, 255},
		{220, 20, 60, 255},
		{50, 205, 50, 255},
	}
)

// StoneSlot returns the HUD box of stone slot i.
func StoneSlot(i int) core.RectF {
	x := HUDX + float64(i*(SlotSize+SlotPad))
	return core.NewRectF(x, HUDY, SlotSize, SlotSize)
}

// LegSlot returns the HUD box of the leg slot, right of the five stones.
func LegSlot() core.RectF {
	x := HUDX + float64(len(StoneColors)*(SlotSize+SlotPad)) + LegSlotGap
	return core.NewRectF(x, HUDY, LegSlotW, SlotSize)
}

// BackgroundTiles returns the top-left corners of the four copies of a
// w×h background that cover the screen after climbing distance.
func BackgroundTiles(distance, w, h float64) [4][2]float64 {
	rx := mod(distance*ParallaxX, w)
	ry := mod(distance*ParallaxY, h)
	return [4][2]float64{
		{rx - w, ry - h},
		{rx, ry - h},
		{rx - w, ry},
		{rx, ry},
	}
}

// mod is a floored modulo: the result has the sign of m.
func mod(v, m float64) float64 {
	if m <= 0 {
		return 0
	}
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}

// HomePanel is the dimmed box behind the title and lore.
func HomePanel(w, h float64) core.RectF {
	return core.NewRectF(20, 40, w-40, h-80)
}

// LoreOrigin is where the lore text starts and how wide it may run.
func LoreOrigin(w float64) (x, y, width float64) {
	return 40, 120, w - 60
}

// CenterX returns the x that centers something textW wide on a w wide
// screen.
func CenterX(w, textW float64) float64 {
	return (w - textW) / 2
}
