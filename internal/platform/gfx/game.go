// Package gfx runs the game in a window with Ebiten at the world's
// native 480x640 resolution.
package gfx

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/nuwa-jump/internal/config"
	"github.com/vovakirdan/nuwa-jump/internal/core"
	"github.com/vovakirdan/nuwa-jump/internal/games/skyjump"
	"github.com/vovakirdan/nuwa-jump/internal/logging"
	"github.com/vovakirdan/nuwa-jump/internal/storage"
)

// Options wires the window to its collaborators. Every field is optional.
type Options struct {
	Store     *storage.Store
	Logger    *log.Logger
	Watcher   *config.Watcher
	AssetsDir string
	TPS       int
	Seed      int64
}

// Window adapts a skyjump game to ebiten.Game.
type Window struct {
	game    *skyjump.Game
	sprites *Sprites
	face    text.Face
	pause   *ebitenui.UI
	store   *storage.Store
	watcher *config.Watcher
	logger  *log.Logger

	width, height int

	showFPS         bool
	runSaved        bool
	resumeRequested bool
	quitRequested   bool
}

// NewWindow resets game and loads sprites.
func NewWindow(game *skyjump.Game, opts Options) *Window {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}

	w := &Window{
		game:    game,
		store:   opts.Store,
		watcher: opts.Watcher,
		logger:  opts.Logger,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}

	// The logical size is fixed at launch.
	game.Reset(core.RuntimeConfig{TickRate: opts.TPS, Seed: opts.Seed})
	screen := game.Config().Screen
	w.width, w.height = screen.Width, screen.Height

	w.sprites = LoadSprites(opts.AssetsDir, opts.Logger)
	w.pause = newPauseUI(w, w.face)
	w.loadBest()
	return w
}

// Update advances one tick.
func (w *Window) Update() error {
	w.pollConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		w.showFPS = !w.showFPS
	}

	in := w.readInput()
	if w.game.Paused() {
		w.pause.Update()
	}
	if w.resumeRequested {
		w.resumeRequested = false
		if w.game.Paused() {
			in.Set(core.ActionPause)
		}
	}
	if w.quitRequested {
		in.Set(core.ActionQuit)
	}

	state := w.game.Step(in).State
	if state.Quit {
		w.saveRun()
		w.logger.Info("window closed by player")
		return ebiten.Termination
	}

	if state.Finished() {
		if !w.runSaved {
			w.saveRun()
		}
	} else {
		w.runSaved = false
	}
	return nil
}

// readInput samples the keyboard. Directions are level triggered; the
// rest fire once per press.
func (w *Window) readInput() core.InputFrame {
	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.Set(core.ActionConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		in.Set(core.ActionQuit)
	}
	return in
}

// pollConfig applies a reloaded config without blocking the tick.
func (w *Window) pollConfig() {
	if w.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-w.watcher.Updates:
		if ok {
			w.game.SetConfig(cfg)
			w.logger.Info("config reloaded", "applies", "next run")
		}
	case err, ok := <-w.watcher.Errors:
		if ok {
			w.logger.Warn("config reload failed, keeping current settings", "err", err)
		}
	default:
	}
}

// saveRun stores the current run once.
func (w *Window) saveRun() {
	res := w.game.Result()
	if w.runSaved || res.Distance <= 0 {
		return
	}
	w.runSaved = true
	if w.store == nil {
		return
	}

	_, err := w.store.SaveRun(storage.Run{
		Mode:     w.game.ID(),
		Distance: res.Distance,
		Stones:   res.Stones,
		HasLeg:   res.HasLeg,
		Won:      res.Won,
		Ticks:    int64(res.Ticks),
	})
	if err != nil {
		w.logger.Warn("run not saved", "err", err)
		return
	}
	w.loadBest()
}

func (w *Window) loadBest() {
	if w.store == nil {
		return
	}
	best, err := w.store.BestDistance(w.game.ID())
	if err != nil {
		w.logger.Warn("best distance unavailable", "err", err)
		return
	}
	w.game.SetBest(best)
}

// Layout fixes the logical screen to the world size; Ebiten scales it
// to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until the player quits.
func Run(game *skyjump.Game, opts Options) error {
	w := NewWindow(game, opts)

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gfx: %w", err)
	}
	return nil
}
