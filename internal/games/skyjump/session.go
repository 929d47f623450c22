package skyjump

// Stats counts what happened during a session.
type Stats struct {
	PlatformsGenerated int
	Landings           int
	MeteorsSpawned     int
	MeteorsDodged      int
}

// Session is the whole mutable world of one run. It is owned by the game
// and handed to the generator and engine by pointer; nothing else keeps
// a reference to it between ticks.
type Session struct {
	Player    Player
	Platforms []Entity
	Items     []Entity // Stones and the leg
	Meteors   []Entity

	Distance  float64 // Cumulative scroll, never decreases
	Collected StoneSet
	HasLeg    bool
	GameOver  bool
	Won       bool
	Ticks     uint64
	Stats     Stats
}

// Over reports whether the run has ended either way.
func (s *Session) Over() bool {
	return s.GameOver || s.Won
}

// LiveStones returns the set of stones currently in the world.
func (s *Session) LiveStones() StoneSet {
	var set StoneSet
	for _, it := range s.Items {
		if it.Kind == KindStone {
			set = set.With(it.Stone)
		}
	}
	return set
}

// LegLive reports whether the leg is currently in the world.
func (s *Session) LegLive() bool {
	for _, it := range s.Items {
		if it.Kind == KindLeg {
			return true
		}
	}
	return false
}

// WinReady reports whether every item is held and the climb exceeds
// threshold.
func (s *Session) WinReady(threshold float64) bool {
	return s.Collected.Complete() && s.HasLeg && s.Distance > threshold
}
