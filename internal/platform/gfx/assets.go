package gfx

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/nuwa-jump/internal/games/skyjump"
	"github.com/vovakirdan/nuwa-jump/internal/platform/gfx/layout"
)

// Sprites holds the optional images. A nil image means the entity is
// drawn as a flat rectangle of the same footprint.
type Sprites struct {
	Player     *ebiten.Image
	Platform   *ebiten.Image
	Background *ebiten.Image
	Meteor     *ebiten.Image
	Leg        *ebiten.Image
	Stones     [skyjump.NumStones]*ebiten.Image
}

// LoadSprites reads every sprite from dir. Failures are logged one by one
// and never fatal.
func LoadSprites(dir string, logger *log.Logger) *Sprites {
	images, errs := layout.ReadImages(dir)
	for _, err := range errs {
		logger.Warn("sprite unavailable, drawing shape instead", "err", err)
	}

	get := func(name string) *ebiten.Image {
		img, ok := images[name]
		if !ok {
			return nil
		}
		return ebiten.NewImageFromImage(img)
	}

	s := &Sprites{
		Player:     get(layout.PlayerFile),
		Platform:   get(layout.PlatformFile),
		Background: get(layout.BackgroundFile),
		Meteor:     get(layout.MeteorFile),
		Leg:        get(layout.LegFile),
	}
	for i := range s.Stones {
		s.Stones[i] = get(layout.StoneFile(i))
	}
	if dir != "" {
		logger.Info("sprites loaded", "dir", dir, "found", len(images))
	}
	return s
}
