package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"starshipcatch/game"
)

var keyMap = map[ebiten.Key]game.Key{
	ebiten.KeyW:          game.KeyW,
	ebiten.KeyA:          game.KeyA,
	ebiten.KeyD:          game.KeyD,
	ebiten.KeyR:          game.KeyR,
	ebiten.KeyE:          game.KeyE,
	ebiten.KeyC:          game.KeyC,
	ebiten.KeyArrowUp:    game.KeyArrowUp,
	ebiten.KeyArrowLeft:  game.KeyArrowLeft,
	ebiten.KeyArrowRight: game.KeyArrowRight,
	ebiten.KeySpace:      game.KeySpace,
	ebiten.KeyEnter:      game.KeyEnter,
	ebiten.KeyEscape:     game.KeyEscape,
}

// pollKeys mirrors key transitions into the snapshot. Only edges are
// written so a key the mission consumed stays released until pressed again.
func pollKeys(in *game.Input) {
	for ek, k := range keyMap {
		switch {
		case inpututil.IsKeyJustPressed(ek):
			in.Set(k, true)
		case inpututil.IsKeyJustReleased(ek):
			in.Set(k, false)
		}
	}
}
