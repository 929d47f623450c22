package skyjump

import (
	"fmt"
	"math"

	"github.com/vovakirdan/nuwa-jump/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	StoneChar    = '◆'
	LegChar      = 'Ψ'
	MeteorChar   = '●'
	StarChar     = '·'
	SlotFull     = '■'
	SlotEmpty    = '□'
)

// stoneColors follows HUD order: blue, white, yellow, red, green.
var stoneColors = [NumStones]core.Color{
	core.ColorBrightBlue,
	core.ColorBrightWhite,
	core.ColorBrightYellow,
	core.ColorRed,
	core.ColorBrightGreen,
}

// StoneColor returns the terminal color of a stone.
func StoneColor(s Stone) core.Color {
	if int(s) >= len(stoneColors) {
		return core.ColorDefault
	}
	return stoneColors[s]
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a frame into a cell screen, scaling world pixels
// to fit the whole play area into the terminal.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	if dst.Width() == 0 || dst.Height() == 0 || snap.Width == 0 || snap.Height == 0 {
		return
	}
	if snap.Phase == PhaseHome {
		drawHome(dst, snap)
		return
	}

	sx := float64(dst.Width()) / snap.Width
	sy := float64(dst.Height()) / snap.Height

	drawSky(dst, snap.Distance*sy)

	for _, p := range snap.Platforms {
		dst.DrawRect(p.Scale(sx, sy), PlatformChar, core.ColorGray)
	}
	for _, st := range snap.Stones {
		drawItem(dst, st.Box, sx, sy, StoneChar, StoneColor(st.Stone))
	}
	if snap.LegLive {
		drawItem(dst, snap.Leg, sx, sy, LegChar, core.ColorOlive)
	}
	for _, m := range snap.Meteors {
		drawItem(dst, m, sx, sy, MeteorChar, core.ColorOrange)
	}
	drawPlayer(dst, snap.Player, snap.Facing, sx, sy)

	switch {
	case snap.Phase == PhaseWon:
		drawCenteredMessage(dst, "SKY PATCHED", core.ColorGold,
			fmt.Sprintf("Climbed %d  |  Space to ascend again", int(snap.Distance)))
	case snap.Phase == PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", core.ColorBrightRed,
			fmt.Sprintf("Climbed %d  Best %d  |  Space to Retry", int(snap.Distance), int(snap.Best)))
	default:
		drawHUD(dst, snap)
		if snap.Paused {
			drawCenteredMessage(dst, "PAUSED", core.ColorBrightWhite, "Press P to resume")
		}
	}
}

// drawSky scatters stars that drift down at half the climb speed.
func drawSky(dst *core.Screen, offset float64) {
	w, h := dst.Width(), dst.Height()
	shift := int(math.Floor(offset * 0.5))
	n := w * h / 40
	for i := 0; i < n; i++ {
		x := (i*37 + 11) % w
		y := ((i*23+shift)%h + h) % h
		dst.SetColored(x, y, StarChar, core.ColorGray)
	}
}

// drawItem marks a small entity with one glyph at its scaled center.
func drawItem(dst *core.Screen, box core.RectF, sx, sy float64, ch rune, c core.Color) {
	x := int(math.Floor(box.CenterX() * sx))
	y := int(math.Floor(box.CenterY() * sy))
	dst.SetColored(x, y, ch, c)
}

func drawPlayer(dst *core.Screen, box core.RectF, facing Facing, sx, sy float64) {
	r := box.Scale(sx, sy)
	dst.DrawRect(r, PlayerChar, core.ColorPink)
	if facing == FacingLeft {
		dst.SetColored(r.X, r.Y, '◀', core.ColorPink)
	} else {
		dst.SetColored(r.Right()-1, r.Y, '▶', core.ColorPink)
	}
}

// drawHUD draws the stone slots, the leg slot and the climb on row 0.
func drawHUD(dst *core.Screen, snap Snapshot) {
	x := 1
	for s := Stone(0); s < NumStones; s++ {
		if snap.Collected.Has(s) {
			dst.SetColored(x, 0, SlotFull, StoneColor(s))
		} else {
			dst.SetColored(x, 0, SlotEmpty, core.ColorGray)
		}
		x += 2
	}
	x++
	if snap.HasLeg {
		dst.DrawTextColored(x, 0, "[LEG]", core.ColorOlive)
	} else {
		dst.DrawTextColored(x, 0, "[ ? ]", core.ColorGray)
	}

	climb := fmt.Sprintf(" %d ", int(snap.Distance))
	if snap.Mode == ModeStory {
		climb = fmt.Sprintf(" %d/%d ", int(snap.Distance), int(snap.WinDistance))
	}
	dst.DrawTextColored(dst.Width()-len(climb)-1, 0, climb, core.ColorBrightWhite)
}

// drawHome draws the title panel and the wrapped lore.
func drawHome(dst *core.Screen, snap Snapshot) {
	w, h := dst.Width(), dst.Height()
	drawSky(dst, 0)

	panel := core.NewRect(2, 1, w-4, h-2)
	dst.DrawRect(panel, ' ', core.ColorDefault)
	dst.DrawBox(panel, core.ColorGray)

	title := "Nuwa: Patching the Sky"
	if snap.Mode == ModeEndless {
		title = "Nuwa: Endless Ascent"
	}
	dst.DrawTextCentered(2, title, core.ColorGold)

	y := 4
	for _, line := range WrapText(Lore, float64(w-10), RuneWidth) {
		if y >= h-3 {
			break
		}
		dst.DrawTextColored(5, y, line, core.ColorBrightWhite)
		y++
	}

	footer := "←/→ steer   P pause   Q quit"
	if snap.Best > 0 {
		footer = fmt.Sprintf("%s   Best %d", footer, int(snap.Best))
	}
	dst.DrawTextCentered(h-3, footer, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, c core.Color, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawTextCentered(boxY+1, title, c)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorBrightWhite)
}
