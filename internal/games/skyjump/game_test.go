package skyjump

import (
	"testing"

	"github.com/vovakirdan/nuwa-jump/internal/config"
	"github.com/vovakirdan/nuwa-jump/internal/core"
	"github.com/vovakirdan/nuwa-jump/internal/registry"
)

func newTestGame(mode Mode, seed int64) *Game {
	g := NewWithConfig(mode, config.Default(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func allStones() StoneSet {
	var set StoneSet
	for s := Stone(0); s < NumStones; s++ {
		set = set.With(s)
	}
	return set
}

func TestHomeAcceptsOnlyConfirm(t *testing.T) {
	g := newTestGame(ModeStory, 42)
	if g.Phase() != PhaseHome {
		t.Fatalf("phase = %v, expected home", g.Phase())
	}

	for _, in := range []core.InputFrame{
		core.NewInputFrame(),
		core.FrameOf(core.ActionLeft),
		core.FrameOf(core.ActionRight),
		core.FrameOf(core.ActionPause),
	} {
		g.Step(in)
		if g.Phase() != PhaseHome {
			t.Fatalf("phase = %v after %v, expected home", g.Phase(), in.Actions)
		}
	}
	if g.Session().Ticks != 0 {
		t.Errorf("ticks = %d on the home screen, expected 0", g.Session().Ticks)
	}
	if g.Paused() {
		t.Error("pause toggled on the home screen")
	}

	g.Step(core.FrameOf(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %v, expected playing", g.Phase())
	}
}

func TestQuitFromEveryPhase(t *testing.T) {
	setups := map[string]func(g *Game){
		"home":    func(g *Game) {},
		"playing": func(g *Game) { g.Step(core.FrameOf(core.ActionConfirm)) },
		"gameover": func(g *Game) {
			g.Step(core.FrameOf(core.ActionConfirm))
			g.Session().Player.Box.Y = 1000
			g.Step(core.NewInputFrame())
		},
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			g := newTestGame(ModeStory, 1)
			setup(g)
			res := g.Step(core.FrameOf(core.ActionQuit))
			if g.Phase() != PhaseQuit || !res.State.Quit {
				t.Errorf("phase = %v quit = %v, expected quit", g.Phase(), res.State.Quit)
			}
		})
	}
}

func TestPauseFreezesPlay(t *testing.T) {
	g := newTestGame(ModeStory, 5)
	g.Step(core.FrameOf(core.ActionConfirm))
	g.Step(core.NewInputFrame())
	ticks := g.Session().Ticks

	res := g.Step(core.FrameOf(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	for i := 0; i < 5; i++ {
		g.Step(core.FrameOf(core.ActionLeft))
	}
	if g.Session().Ticks != ticks {
		t.Errorf("ticks = %d while paused, expected %d", g.Session().Ticks, ticks)
	}

	g.Step(core.FrameOf(core.ActionPause))
	if g.Paused() {
		t.Error("expected unpaused")
	}
	if g.Session().Ticks != ticks+1 {
		t.Errorf("ticks = %d after resume, expected %d", g.Session().Ticks, ticks+1)
	}
}

func TestGameOverFreezesUntilConfirm(t *testing.T) {
	g := newTestGame(ModeStory, 9)
	g.Step(core.FrameOf(core.ActionConfirm))
	g.Session().Player.Box.Y = 1000
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected gameover", g.Phase())
	}

	s := g.Session()
	ticks := s.Ticks
	platforms := append([]Entity(nil), s.Platforms...)
	for i := 0; i < 10; i++ {
		g.Step(core.FrameOf(core.ActionRight))
	}
	if s.Ticks != ticks {
		t.Errorf("ticks advanced after game over: %d -> %d", ticks, s.Ticks)
	}
	if len(s.Platforms) != len(platforms) {
		t.Fatalf("platform count changed after game over")
	}
	for i := range platforms {
		if s.Platforms[i] != platforms[i] {
			t.Errorf("platform %d changed after game over", i)
		}
	}
}

func TestConfirmRestartsFreshSession(t *testing.T) {
	for _, end := range []string{"gameover", "won"} {
		t.Run(end, func(t *testing.T) {
			g := newTestGame(ModeStory, 11)
			g.Step(core.FrameOf(core.ActionConfirm))

			s := g.Session()
			s.Collected = allStones()
			s.HasLeg = true
			s.Distance = 3500
			s.Items = append(s.Items, NewStone(StoneRed, 10, 10, 15, 15))
			s.Meteors = append(s.Meteors, NewMeteor(400, -300, 30, 30, 5))
			if end == "gameover" {
				s.Player.Box.Y = 1000
			}
			g.Step(core.NewInputFrame())

			expected := PhaseWon
			if end == "gameover" {
				expected = PhaseGameOver
			}
			if g.Phase() != expected {
				t.Fatalf("phase = %v, expected %v", g.Phase(), expected)
			}

			g.Step(core.FrameOf(core.ActionConfirm))
			if g.Phase() != PhasePlaying {
				t.Fatalf("phase = %v, expected playing", g.Phase())
			}
			fresh := g.Session()
			if fresh.Distance != 0 {
				t.Errorf("distance = %v, expected 0", fresh.Distance)
			}
			if fresh.Collected != 0 {
				t.Errorf("collected = %b, expected empty", fresh.Collected)
			}
			if fresh.HasLeg {
				t.Error("leg still held")
			}
			if len(fresh.Items) != 0 || len(fresh.Meteors) != 0 {
				t.Errorf("items = %d meteors = %d, expected none", len(fresh.Items), len(fresh.Meteors))
			}
			if len(fresh.Platforms) != config.Default().Generator.Seed.Count+1 {
				t.Errorf("platforms = %d, expected a freshly seeded set", len(fresh.Platforms))
			}
			if fresh.GameOver || fresh.Won {
				t.Error("fresh session already finished")
			}
		})
	}
}

func TestEndlessNeverWins(t *testing.T) {
	g := newTestGame(ModeEndless, 13)
	g.Step(core.FrameOf(core.ActionConfirm))
	s := g.Session()
	s.Collected = allStones()
	s.HasLeg = true
	s.Distance = 10000

	g.Step(core.NewInputFrame())
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %v, expected playing", g.Phase())
	}
	if g.State().Won {
		t.Error("endless mode reported a win")
	}
}

func TestDistanceNeverDecreases(t *testing.T) {
	g := newTestGame(ModeStory, 2024)
	g.Step(core.FrameOf(core.ActionConfirm))

	prev := 0.0
	for i := 0; i < 3000 && g.Phase() == PhasePlaying; i++ {
		in := core.NewInputFrame()
		switch (i / 40) % 3 {
		case 0:
			in.Set(core.ActionLeft)
		case 1:
			in.Set(core.ActionRight)
		}
		g.Step(in)
		d := g.Session().Distance
		if d < prev {
			t.Fatalf("tick %d: distance dropped from %v to %v", i, prev, d)
		}
		prev = d
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (float64, uint64, int) {
		g := newTestGame(ModeStory, 12345)
		g.Step(core.FrameOf(core.ActionConfirm))
		for i := 0; i < 1500 && g.Phase() == PhasePlaying; i++ {
			in := core.NewInputFrame()
			if i%90 < 30 {
				in.Set(core.ActionRight)
			}
			g.Step(in)
		}
		s := g.Session()
		return s.Distance, s.Ticks, len(s.Platforms)
	}

	d1, t1, p1 := run()
	d2, t2, p2 := run()
	if d1 != d2 || t1 != t2 || p1 != p2 {
		t.Errorf("runs differ: (%v, %d, %d) vs (%v, %d, %d)", d1, t1, p1, d2, t2, p2)
	}
}

func TestSetConfigWaitsForRestart(t *testing.T) {
	g := newTestGame(ModeStory, 3)
	g.Step(core.FrameOf(core.ActionConfirm))

	cfg := config.Default()
	cfg.Win.Distance = 100
	g.SetConfig(cfg)
	if g.Config().Win.Distance != 3000 {
		t.Errorf("config applied mid-run: win distance = %v", g.Config().Win.Distance)
	}

	g.Session().Player.Box.Y = 1000
	g.Step(core.NewInputFrame())
	g.Step(core.FrameOf(core.ActionConfirm))
	if g.Config().Win.Distance != 100 {
		t.Errorf("win distance = %v after restart, expected 100", g.Config().Win.Distance)
	}
}

func TestSetConfigOnHomeAppliesAtOnce(t *testing.T) {
	g := newTestGame(ModeStory, 3)
	cfg := config.Default()
	cfg.Generator.Seed.Count = 3
	g.SetConfig(cfg)
	if len(g.Session().Platforms) != 4 {
		t.Errorf("platforms = %d, expected 4", len(g.Session().Platforms))
	}
}

func TestBestDistanceTracksRuns(t *testing.T) {
	g := newTestGame(ModeStory, 8)
	g.SetBest(1200)
	g.Step(core.FrameOf(core.ActionConfirm))
	g.Session().Distance = 1500
	g.Step(core.NewInputFrame())

	snap := g.Snapshot()
	if snap.Best < 1500 {
		t.Errorf("best = %v, expected at least 1500", snap.Best)
	}
	g.SetBest(100)
	if g.Snapshot().Best < 1500 {
		t.Error("SetBest lowered the best distance")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(ModeStory, 21)
	g.Step(core.FrameOf(core.ActionConfirm))
	s := g.Session()
	s.Items = append(s.Items, NewStone(StoneWhite, 100, 100, 15, 15), NewLeg(200, 100, 20, 40))

	snap := g.Snapshot()
	if snap.Phase != PhasePlaying || snap.Mode != ModeStory {
		t.Errorf("phase = %v mode = %v", snap.Phase, snap.Mode)
	}
	if snap.Width != 480 || snap.Height != 640 || snap.WinDistance != 3000 {
		t.Errorf("dimensions = %vx%v win = %v", snap.Width, snap.Height, snap.WinDistance)
	}
	if len(snap.Platforms) != len(s.Platforms) {
		t.Fatalf("platforms = %d, expected %d", len(snap.Platforms), len(s.Platforms))
	}
	if len(snap.Stones) != 1 || snap.Stones[0].Stone != StoneWhite || !snap.LegLive {
		t.Errorf("stones = %+v leg = %v", snap.Stones, snap.LegLive)
	}

	y := snap.Platforms[0].Y
	s.Platforms[0].Box.Y += 50
	if snap.Platforms[0].Y != y {
		t.Error("snapshot shares platform memory with the session")
	}
}

func TestResultSummarizesRun(t *testing.T) {
	g := newTestGame(ModeEndless, 4)
	g.Step(core.FrameOf(core.ActionConfirm))
	s := g.Session()
	s.Collected = StoneSet(0).With(StoneRed).With(StoneGreen)
	s.HasLeg = true
	s.Distance = 812.5

	r := g.Result()
	if r.Mode != ModeEndless || r.Stones != 2 || !r.HasLeg || r.Distance != 812.5 || r.Won {
		t.Errorf("result = %+v", r)
	}
}

func TestRegistered(t *testing.T) {
	for id, title := range map[string]string{
		"skyjump":         "Nuwa: Patching the Sky",
		"skyjump_endless": "Nuwa: Endless Ascent",
	} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatal(err)
		}
		if g.ID() != id || g.Title() != title {
			t.Errorf("created %q/%q, expected %q/%q", g.ID(), g.Title(), id, title)
		}
	}
}
