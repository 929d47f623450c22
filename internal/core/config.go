package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (TUI rendering only)
	ScreenH  int   // Terminal height in characters (TUI rendering only)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the coarse status the platform needs after each tick.
type GameState struct {
	Score    int  // Whole pixels climbed
	GameOver bool // Run ended by a meteor or a fall
	Won      bool // Run ended by completing the collection
	Paused   bool // Simulation frozen by the player
	Quit     bool // Player asked to leave
}

// Finished reports whether the current run has ended either way.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
