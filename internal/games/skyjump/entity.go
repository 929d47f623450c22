package skyjump

import (
	"math/bits"

	"github.com/vovakirdan/nuwa-jump/internal/core"
)

// Kind tags what an Entity is. Update and render logic branch on it.
type Kind uint8

const (
	KindPlatform Kind = iota
	KindStone
	KindLeg
	KindMeteor
)

// String returns a readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindStone:
		return "stone"
	case KindLeg:
		return "leg"
	case KindMeteor:
		return "meteor"
	default:
		return "unknown"
	}
}

// Stone identifies one of the five colored stones.
type Stone uint8

// Stones in HUD order, left to right.
const (
	StoneBlue Stone = iota
	StoneWhite
	StoneYellow
	StoneRed
	StoneGreen
)

// NumStones is the number of distinct stones in a session.
const NumStones = 5

// String returns the stone's color name.
func (s Stone) String() string {
	switch s {
	case StoneBlue:
		return "blue"
	case StoneWhite:
		return "white"
	case StoneYellow:
		return "yellow"
	case StoneRed:
		return "red"
	case StoneGreen:
		return "green"
	default:
		return "unknown"
	}
}

// Entity is any world object besides the player.
// Stone is meaningful for KindStone only, Speed for KindMeteor only.
type Entity struct {
	Kind  Kind
	Box   core.RectF
	Stone Stone
	Speed float64
}

// NewPlatform creates a platform with top-left corner (x, y).
func NewPlatform(x, y, w, h float64) Entity {
	return Entity{Kind: KindPlatform, Box: core.NewRectF(x, y, w, h)}
}

// NewStone creates a stone centered on (cx, cy).
func NewStone(id Stone, cx, cy, w, h float64) Entity {
	return Entity{Kind: KindStone, Box: core.RectFromCenter(cx, cy, w, h), Stone: id}
}

// NewLeg creates the rare item centered on (cx, cy).
func NewLeg(cx, cy, w, h float64) Entity {
	return Entity{Kind: KindLeg, Box: core.RectFromCenter(cx, cy, w, h)}
}

// NewMeteor creates a meteor with top-left corner (x, y) falling at speed.
func NewMeteor(x, y, w, h, speed float64) Entity {
	return Entity{Kind: KindMeteor, Box: core.NewRectF(x, y, w, h), Speed: speed}
}

// StoneSet is a bitmask of stones.
type StoneSet uint8

// Has reports whether s is in the set.
func (set StoneSet) Has(s Stone) bool {
	return set&(1<<s) != 0
}

// With returns the set with s added.
func (set StoneSet) With(s Stone) StoneSet {
	return set | 1<<s
}

// Count returns how many stones are in the set.
func (set StoneSet) Count() int {
	return bits.OnesCount8(uint8(set))
}

// Complete reports whether every stone is in the set.
func (set StoneSet) Complete() bool {
	return set.Count() == NumStones
}

// Missing lists stones not in either set, in HUD order.
func (set StoneSet) Missing(exclude StoneSet) []Stone {
	var out []Stone
	for s := Stone(0); s < NumStones; s++ {
		if !set.Has(s) && !exclude.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// Facing is the horizontal direction the player sprite looks.
type Facing int8

const (
	FacingRight Facing = iota
	FacingLeft
)

// Player is the controlled character.
type Player struct {
	Box    core.RectF
	VY     float64
	Facing Facing
}

// Steer moves the player horizontally by dx with screen wrap: leaving
// past one edge re-enters fully from the other.
func (p *Player) Steer(dx, screenW float64) {
	switch {
	case dx < 0:
		p.Facing = FacingLeft
	case dx > 0:
		p.Facing = FacingRight
	}
	if p.Box.X+dx > screenW {
		p.Box.X = -p.Box.W
	}
	if p.Box.Right()+dx < 0 {
		p.Box.X = screenW
	}
	p.Box.X += dx
}
