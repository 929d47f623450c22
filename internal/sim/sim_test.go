package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/nuwa-jump/internal/config"
	"github.com/vovakirdan/nuwa-jump/internal/core"
	"github.com/vovakirdan/nuwa-jump/internal/games/skyjump"
)

func botSession() *skyjump.Session {
	return &skyjump.Session{
		Player: skyjump.Player{Box: core.NewRectF(100, 500, 30, 40)}, // feet at 540
		Platforms: []skyjump.Entity{
			skyjump.NewPlatform(300, 450, 60, 10), // rise 90
			skyjump.NewPlatform(50, 420, 60, 10),  // rise 120
			skyjump.NewPlatform(200, 380, 60, 10), // rise 160, out of reach
			skyjump.NewPlatform(90, 600, 60, 10),  // below
		},
	}
}

func TestBotTarget(t *testing.T) {
	bot := NewBot(config.Default())

	tests := []struct {
		name     string
		setup    func(s *skyjump.Session)
		expected core.RectF
	}{
		{
			name:     "lowest platform above",
			setup:    func(*skyjump.Session) {},
			expected: core.NewRectF(300, 450, 60, 10),
		},
		{
			name: "item in reach wins",
			setup: func(s *skyjump.Session) {
				s.Items = append(s.Items, skyjump.NewStone(skyjump.StoneRed, 400, 470, 15, 15))
			},
			expected: core.RectFromCenter(400, 470, 15, 15),
		},
		{
			name: "item out of reach ignored",
			setup: func(s *skyjump.Session) {
				s.Items = append(s.Items, skyjump.NewLeg(400, 300, 20, 40))
			},
			expected: core.NewRectF(300, 450, 60, 10),
		},
		{
			name: "falls back to platform below",
			setup: func(s *skyjump.Session) {
				s.Platforms = s.Platforms[2:]
			},
			expected: core.NewRectF(90, 600, 60, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := botSession()
			tt.setup(s)
			got, ok := bot.Target(s)
			if !ok || got != tt.expected {
				t.Errorf("Target() = %+v,%v, expected %+v", got, ok, tt.expected)
			}
		})
	}
}

func TestBotDecide(t *testing.T) {
	bot := NewBot(config.Default())

	s := botSession()
	if in := bot.Decide(s); !in.Has(core.ActionRight) || in.Has(core.ActionLeft) {
		t.Errorf("Decide() = %v, expected right toward x=330", in.Actions)
	}

	// Shorter to wrap around the left edge.
	s.Player.Box.X = 5
	s.Platforms = []skyjump.Entity{skyjump.NewPlatform(400, 450, 60, 10)}
	if in := bot.Decide(s); !in.Has(core.ActionLeft) {
		t.Errorf("Decide() = %v, expected left through the wrap", in.Actions)
	}

	// Already under the target.
	s.Player.Box.X = 415
	if in := bot.Decide(s); in.Direction() != 0 {
		t.Errorf("Decide() = %v, expected no steering", in.Actions)
	}

	s.Platforms = nil
	if in := bot.Decide(s); len(in.Actions) != 0 {
		t.Errorf("Decide() = %v with nothing to aim at", in.Actions)
	}
}

func TestRunSanity(t *testing.T) {
	opts := Options{Runs: 4, MaxTicks: 3000, Seed: 5, Workers: 2}
	report, err := Run(context.Background(), config.Default(), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if len(report.Results) != 4 {
		t.Fatalf("got %d results, expected 4", len(report.Results))
	}

	for i, r := range report.Results {
		if r.Seed != 5+int64(i) {
			t.Errorf("result %d seed = %d, expected %d", i, r.Seed, 5+i)
		}
		if r.Distance < 0 || r.Stones < 0 || r.Stones > skyjump.NumStones {
			t.Errorf("result %d out of range: %+v", i, r)
		}
		if r.Ticks > 3000 {
			t.Errorf("result %d ran %d ticks, limit 3000", i, r.Ticks)
		}
		if r.Won && (r.Stones != skyjump.NumStones || !r.HasLeg || r.Distance <= 3000) {
			t.Errorf("result %d won without meeting the condition: %+v", i, r)
		}
		if r.TimedOut == (r.GameOver || r.Won) {
			t.Errorf("result %d ended both ways or neither: %+v", i, r)
		}
		if r.Stats.PlatformsGenerated == 0 && r.Distance > 200 {
			t.Errorf("result %d climbed %v without new platforms", i, r.Distance)
		}
	}

	again, err := Run(context.Background(), config.Default(), opts)
	if err != nil {
		t.Fatal(err)
	}
	for i := range report.Results {
		if report.Results[i] != again.Results[i] {
			t.Errorf("run %d not reproducible: %+v vs %+v", i, report.Results[i], again.Results[i])
		}
	}
}

func TestRunEndlessNeverWins(t *testing.T) {
	cfg := config.Default()
	cfg.Win.Distance = 0

	report, err := Run(context.Background(), cfg, Options{Runs: 3, MaxTicks: 2000, Mode: skyjump.ModeEndless})
	if err != nil {
		t.Fatal(err)
	}
	if report.WinRate != 0 {
		t.Errorf("endless win rate = %v, expected 0", report.WinRate)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, config.Default(), Options{Runs: 3})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.Gravity = 0

	_, err := Run(context.Background(), cfg, Options{Runs: 1})
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Run() error = %v, expected config.ErrInvalid", err)
	}
}

func TestSummarize(t *testing.T) {
	results := []RunResult{
		{Distance: 1000, Stones: 2},
		{Distance: 3500, Stones: 5, HasLeg: true, Won: true},
		{Distance: 500, Stones: 2},
		{Distance: 1000, Stones: 3, HasLeg: true},
	}

	r := Summarize(skyjump.ModeStory, results)
	if r.WinRate != 0.25 {
		t.Errorf("WinRate = %v, expected 0.25", r.WinRate)
	}
	if r.LegRate != 0.5 {
		t.Errorf("LegRate = %v, expected 0.5", r.LegRate)
	}
	if r.MeanDistance != 1500 {
		t.Errorf("MeanDistance = %v, expected 1500", r.MeanDistance)
	}
	if r.MeanStones != 3 {
		t.Errorf("MeanStones = %v, expected 3", r.MeanStones)
	}
	if r.BestDistance != 3500 {
		t.Errorf("BestDistance = %v, expected 3500", r.BestDistance)
	}

	if empty := Summarize(skyjump.ModeEndless, nil); empty.WinRate != 0 || empty.MeanDistance != 0 {
		t.Errorf("empty summary = %+v", empty)
	}
}
