package game

import (
	"fmt"
	"image/color"
)

// SpriteID names an image the host knows how to draw. The core never loads images.
type SpriteID string

const (
	SpriteNone       SpriteID = ""
	SpriteShip       SpriteID = "ship"
	SpriteShipTop    SpriteID = "ship_top"
	SpriteShipBottom SpriteID = "ship_bottom"
	SpriteSatellite  SpriteID = "satellite"
	SpriteLaunchpad  SpriteID = "launchpad"
	SpriteTower      SpriteID = "tower"
	SpriteChopsticks SpriteID = "chopsticks"
	SpriteGround     SpriteID = "ground"
	SpriteEarth      SpriteID = "earth"
	SpriteArrow      SpriteID = "arrow"
)

// spriteSizes are nominal sprite dimensions in world units.
// Ship sprites lie along X so that rotation 270 points them up.
var spriteSizes = map[SpriteID][2]float64{
	SpriteShip:       {160, 24},
	SpriteShipTop:    {80, 24},
	SpriteShipBottom: {80, 24},
	SpriteSatellite:  {16, 8},
	SpriteLaunchpad:  {120, 40},
	SpriteTower:      {24, 320},
	SpriteChopsticks: {60, 12},
	SpriteGround:     {2048, 64},
	SpriteEarth:      {512, 512},
	SpriteArrow:      {24, 32},
}

// SpriteSize returns the nominal width and height of id, zero if unknown.
func SpriteSize(id SpriteID) (w, h float64) {
	sz := spriteSizes[id]
	return sz[0], sz[1]
}

// TextAlign is the horizontal anchor for Canvas.Text.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
)

// Canvas is the set of draw primitives a host supplies.
// Transforms accumulate until ResetTransform, like a 2D canvas context.
type Canvas interface {
	Translate(x, y float64)
	Rotate(radians float64)
	ResetTransform()

	// DrawSprite draws the sprite centered at the current origin.
	DrawSprite(id SpriteID)
	// DrawSpriteRect draws the sprite stretched into a screen rectangle, ignoring transforms.
	DrawSpriteRect(id SpriteID, x, y, w, h float64)

	FillRect(x, y, w, h float64, clr color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, clr color.Color)
	Text(s string, x, y float64, align TextAlign, clr color.Color)
}

// DrawCall is a single recorded Canvas operation.
type DrawCall struct {
	Op     string
	Sprite SpriteID
	Args   []float64
	Text   string
	Color  color.Color
}

func (d DrawCall) String() string {
	if d.Text != "" {
		return fmt.Sprintf("%s(%q)", d.Op, d.Text)
	}
	if d.Sprite != SpriteNone {
		return fmt.Sprintf("%s(%s)", d.Op, d.Sprite)
	}
	return fmt.Sprintf("%s%v", d.Op, d.Args)
}

// Recorder is a Canvas that remembers every call. Hosts without a screen
// (tests, headless replays) use it.
type Recorder struct {
	Calls []DrawCall
}

func (r *Recorder) add(c DrawCall) { r.Calls = append(r.Calls, c) }

func (r *Recorder) Translate(x, y float64) {
	r.add(DrawCall{Op: "translate", Args: []float64{x, y}})
}

func (r *Recorder) Rotate(radians float64) {
	r.add(DrawCall{Op: "rotate", Args: []float64{radians}})
}

func (r *Recorder) ResetTransform() { r.add(DrawCall{Op: "reset"}) }

func (r *Recorder) DrawSprite(id SpriteID) {
	r.add(DrawCall{Op: "sprite", Sprite: id})
}

func (r *Recorder) DrawSpriteRect(id SpriteID, x, y, w, h float64) {
	r.add(DrawCall{Op: "spriteRect", Sprite: id, Args: []float64{x, y, w, h}})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.add(DrawCall{Op: "fillRect", Args: []float64{x, y, w, h}, Color: clr})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	r.add(DrawCall{Op: "line", Args: []float64{x1, y1, x2, y2, width}, Color: clr})
}

func (r *Recorder) Text(s string, x, y float64, align TextAlign, clr color.Color) {
	r.add(DrawCall{Op: "text", Text: s, Args: []float64{x, y, float64(align)}, Color: clr})
}

// Sprites returns the sprite IDs drawn, in order.
func (r *Recorder) Sprites() []SpriteID {
	var out []SpriteID
	for _, c := range r.Calls {
		if c.Op == "sprite" || c.Op == "spriteRect" {
			out = append(out, c.Sprite)
		}
	}
	return out
}

// Texts returns every string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == "text" {
			out = append(out, c.Text)
		}
	}
	return out
}

// Count returns how many calls used op.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }
