package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nuwa-jump/internal/config"
	"github.com/vovakirdan/nuwa-jump/internal/core"
	"github.com/vovakirdan/nuwa-jump/internal/games/skyjump"
	"github.com/vovakirdan/nuwa-jump/internal/logging"
	"github.com/vovakirdan/nuwa-jump/internal/registry"
	"github.com/vovakirdan/nuwa-jump/internal/storage"
)

// DefaultScreenshotDir is where Ctrl+S writes text screenshots.
const DefaultScreenshotDir = "~/.nuwa/screenshots"

// Optional game capabilities the model uses when present.
type (
	resultReporter interface{ Result() skyjump.Result }
	reconfigurable interface{ SetConfig(cfg config.Config) }
	bestTracker    interface{ SetBest(best float64) }
)

// Options wires the model to its collaborators. Every field is optional.
type Options struct {
	Store         *storage.Store
	Logger        *log.Logger
	Watcher       *config.Watcher
	HoldWindow    time.Duration
	ScreenshotDir string
}

// configMsg carries a reloaded config from the watcher.
type configMsg struct{ cfg config.Config }

// configErrMsg carries a watcher failure.
type configErrMsg struct{ err error }

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	watcher    *config.Watcher
	shotDir    string
	config     core.RuntimeConfig
	keys       *KeyMapper
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the current finished run is already stored
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = DefaultScreenshotDir
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     opts.Logger,
		watcher:    opts.Watcher,
		shotDir:    opts.ScreenshotDir,
		config:     cfg,
		keys:       NewKeyMapper(),
		hold:       NewHoldTracker(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game, loads the best distance and starts ticking.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loadBest()
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case configMsg:
		if g, ok := m.game.(reconfigurable); ok {
			g.SetConfig(msg.cfg)
			m.logger.Info("config reloaded", "applies", "next run")
		}
		return m, waitForConfig(m.watcher)

	case configErrMsg:
		m.logger.Warn("config reload failed, keeping current settings", "err", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action, now)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the run going; the game rescales its world.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame, now)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.Quit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameState.Finished() {
		if !m.runSaved {
			m.saveRun()
			m.hold.Release()
		}
	} else {
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the current run once. Runs that never left the ground
// are not recorded.
func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	rr, ok := m.game.(resultReporter)
	if !ok {
		return
	}
	res := rr.Result()
	if res.Distance <= 0 {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	id, err := m.store.SaveRun(storage.Run{
		Mode:     m.game.ID(),
		Distance: res.Distance,
		Stones:   res.Stones,
		HasLeg:   res.HasLeg,
		Won:      res.Won,
		Ticks:    int64(res.Ticks),
	})
	if err != nil {
		m.logger.Warn("run not saved", "err", err)
		return
	}
	m.logger.Debug("run saved", "id", id, "distance", res.Distance, "won", res.Won)
	m.loadBest()
}

// loadBest hands the stored best distance to the game.
func (m *Model) loadBest() {
	bt, ok := m.game.(bestTracker)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.BestDistance(m.game.ID())
	if err != nil {
		m.logger.Warn("best distance unavailable", "err", err)
		return
	}
	bt.SetBest(best)
}

// saveScreenshot writes the current frame as plain text and returns the path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir, err := logging.ExpandHome(m.shotDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// waitForConfig blocks on the watcher and turns its next event into a
// message. It returns nil without a watcher so nothing is scheduled.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Updates:
			if !ok {
				return nil
			}
			return configMsg{cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
