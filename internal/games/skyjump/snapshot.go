package skyjump

import "github.com/vovakirdan/nuwa-jump/internal/core"

// StoneView is a live stone as seen by a renderer.
type StoneView struct {
	Box   core.RectF
	Stone Stone
}

// Snapshot is a copy of everything a frontend needs to draw one frame.
// It shares no memory with the session.
type Snapshot struct {
	Phase  Phase
	Mode   Mode
	Paused bool

	Width, Height float64 // Play area in world pixels

	Player    core.RectF
	Facing    Facing
	Platforms []core.RectF
	Stones    []StoneView
	Leg       core.RectF
	LegLive   bool
	Meteors   []core.RectF

	Collected   StoneSet
	HasLeg      bool
	Distance    float64
	Best        float64
	WinDistance float64
	Tick        uint64
}

// snapshot copies the session into a Snapshot.
func snapshot(s *Session) Snapshot {
	snap := Snapshot{
		Player:    s.Player.Box,
		Facing:    s.Player.Facing,
		Platforms: make([]core.RectF, 0, len(s.Platforms)),
		Meteors:   make([]core.RectF, 0, len(s.Meteors)),
		Collected: s.Collected,
		HasLeg:    s.HasLeg,
		Distance:  s.Distance,
		Tick:      s.Ticks,
	}
	for _, p := range s.Platforms {
		snap.Platforms = append(snap.Platforms, p.Box)
	}
	for _, it := range s.Items {
		switch it.Kind {
		case KindStone:
			snap.Stones = append(snap.Stones, StoneView{Box: it.Box, Stone: it.Stone})
		case KindLeg:
			snap.Leg = it.Box
			snap.LegLive = true
		}
	}
	for _, m := range s.Meteors {
		snap.Meteors = append(snap.Meteors, m.Box)
	}
	return snap
}
