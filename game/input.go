package game

// Key is a logical key code, named after the browser KeyboardEvent codes.
type Key string

const (
	KeyW          Key = "KeyW"
	KeyA          Key = "KeyA"
	KeyD          Key = "KeyD"
	KeyR          Key = "KeyR"
	KeyE          Key = "KeyE"
	KeyC          Key = "KeyC"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeySpace      Key = "Space"
	KeyEnter      Key = "Enter"
	KeyEscape     Key = "Escape"
)

// Key groups read by the mission
var (
	ThrustKeys      = []Key{KeyW, KeyArrowUp, KeySpace}
	RotateLeftKeys  = []Key{KeyA, KeyArrowLeft}
	RotateRightKeys = []Key{KeyD, KeyArrowRight}
	StartKeys       = []Key{KeyW, KeyArrowUp, KeySpace, KeyEnter}
)

// Input is the snapshot of held keys. The host writes it between frames;
// the core reads it and clears edge-triggered keys with Consume.
// The zero value is ready to use.
type Input struct {
	keys map[Key]bool

	// RotationAmplification scales rotation from analog or pointer input, 0 means 1
	RotationAmplification float64
}

// NewInput creates an empty snapshot.
func NewInput() *Input {
	return &Input{keys: make(map[Key]bool)}
}

// Set records whether k is held.
func (in *Input) Set(k Key, pressed bool) {
	if pressed {
		if in.keys == nil {
			in.keys = make(map[Key]bool)
		}
		in.keys[k] = true
		return
	}
	delete(in.keys, k)
}

// Pressed reports whether any of keys is held.
func (in *Input) Pressed(keys ...Key) bool {
	for _, k := range keys {
		if in.keys[k] {
			return true
		}
	}
	return false
}

// Consume reports whether k is held and clears it, so one press acts once.
func (in *Input) Consume(k Key) bool {
	if !in.keys[k] {
		return false
	}
	delete(in.keys, k)
	return true
}

// Amplification returns the rotation multiplier.
func (in *Input) Amplification() float64 {
	if in.RotationAmplification == 0 {
		return 1
	}
	return in.RotationAmplification
}

// Clear releases every key.
func (in *Input) Clear() {
	clear(in.keys)
	in.RotationAmplification = 0
}
