package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"starshipcatch/assets"
	"starshipcatch/game"
)

// Sprites caches GPU images by sprite ID.
type Sprites struct {
	images map[game.SpriteID]*ebiten.Image
}

// LoadSprites converts every sprite to an ebiten image. A sprite whose
// override fails to decode falls back to its placeholder; a sprite with no
// usable art is skipped and draws nothing.
func LoadSprites(dir string, log *logrus.Entry) *Sprites {
	s := &Sprites{images: make(map[game.SpriteID]*ebiten.Image, len(assets.IDs))}
	for _, id := range assets.IDs {
		img, err := assets.Load(dir, id)
		if err != nil {
			log.WithError(err).WithField("sprite", id).Warn("Using placeholder sprite")
			img, err = assets.Placeholder(id)
			if err != nil {
				log.WithError(err).WithField("sprite", id).Error("Sprite unavailable")
				continue
			}
		}
		s.images[id] = ebiten.NewImageFromImage(img)
	}
	return s
}

// Get returns the image for id, nil if unknown.
func (s *Sprites) Get(id game.SpriteID) *ebiten.Image {
	return s.images[id]
}
