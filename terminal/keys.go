package terminal

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"starshipcatch/game"
)

// holdWindow is how long a key counts as held after its last event.
// Terminals report presses and autorepeat but never releases.
const holdWindow = 300 * time.Millisecond

var runeKeys = map[rune]game.Key{
	'w': game.KeyW,
	'a': game.KeyA,
	'd': game.KeyD,
	'r': game.KeyR,
	'e': game.KeyE,
	'c': game.KeyC,
	' ': game.KeySpace,
}

// keyFor maps a terminal key to a mission key.
func keyFor(k tcell.Key, r rune) (game.Key, bool) {
	switch k {
	case tcell.KeyUp:
		return game.KeyArrowUp, true
	case tcell.KeyLeft:
		return game.KeyArrowLeft, true
	case tcell.KeyRight:
		return game.KeyArrowRight, true
	case tcell.KeyEnter:
		return game.KeyEnter, true
	case tcell.KeyEscape:
		return game.KeyEscape, true
	case tcell.KeyRune:
		key, ok := runeKeys[unicode.ToLower(r)]
		return key, ok
	}
	return "", false
}

// isQuit reports whether the key ends the session. Escape is taken by
// the mission, so q and Ctrl+C quit.
func isQuit(k tcell.Key, r rune) bool {
	return k == tcell.KeyCtrlC || (k == tcell.KeyRune && (r == 'q' || r == 'Q'))
}

// keyState synthesizes releases for a terminal.
type keyState struct {
	in   *game.Input
	seen map[game.Key]time.Time
	hold time.Duration
}

func newKeyState(in *game.Input) *keyState {
	return &keyState{in: in, seen: make(map[game.Key]time.Time), hold: holdWindow}
}

// press marks k held as of now. Autorepeat keeps refreshing it.
func (ks *keyState) press(k game.Key, now time.Time) {
	ks.in.Set(k, true)
	ks.seen[k] = now
}

// expire releases keys with no event inside the hold window. It never
// presses a key, so a key the mission consumed stays released.
func (ks *keyState) expire(now time.Time) {
	for k, t := range ks.seen {
		if now.Sub(t) > ks.hold {
			ks.in.Set(k, false)
			delete(ks.seen, k)
		}
	}
}
