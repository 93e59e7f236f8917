// Package assets provides sprite art: generated placeholders sized to the
// nominal sprite dimensions, optionally overridden by PNG files.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"starshipcatch/game"
)

// IDs lists every sprite the mission draws.
var IDs = []game.SpriteID{
	game.SpriteShip,
	game.SpriteShipTop,
	game.SpriteShipBottom,
	game.SpriteSatellite,
	game.SpriteLaunchpad,
	game.SpriteTower,
	game.SpriteChopsticks,
	game.SpriteGround,
	game.SpriteEarth,
	game.SpriteArrow,
}

var (
	colorHull    = color.RGBA{205, 208, 214, 255}
	colorSteel   = color.RGBA{70, 72, 80, 255}
	colorPanel   = color.RGBA{40, 80, 200, 255}
	colorGrass   = color.RGBA{40, 160, 40, 255}
	colorOutline = color.RGBA{0, 0, 0, 255}
)

// Placeholder draws a stand-in for id at its nominal size. Vehicles, the
// arrow and Earth are rasterized from embedded SVG; scenery is filled
// rectangles. Unknown IDs yield a 1x1 transparent image.
func Placeholder(id game.SpriteID) (*image.RGBA, error) {
	w, h := game.SpriteSize(id)
	width, height := int(w), int(h)
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
	}
	if _, ok := vectorSprites[id]; ok {
		return renderVector(id, width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	switch id {
	case game.SpriteSatellite:
		fill(img, image.Rect(0, 0, width, height), colorPanel)
		fill(img, image.Rect(width/3, 0, width-width/3, height), colorHull)
	case game.SpriteLaunchpad, game.SpriteChopsticks:
		fill(img, img.Bounds(), colorSteel)
		outline(img)
	case game.SpriteTower:
		// Lattice: two rails with a crossbar every 16px
		fill(img, image.Rect(0, 0, 3, height), colorSteel)
		fill(img, image.Rect(width-3, 0, width, height), colorSteel)
		for y := 0; y < height; y += 16 {
			fill(img, image.Rect(0, y, width, y+2), colorSteel)
		}
	case game.SpriteGround:
		fill(img, img.Bounds(), colorGrass)
	}
	return img, nil
}

func fill(img *image.RGBA, r image.Rectangle, clr color.Color) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, clr)
		}
	}
}

func outline(img *image.RGBA) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		img.Set(x, b.Min.Y, colorOutline)
		img.Set(x, b.Max.Y-1, colorOutline)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.Set(b.Min.X, y, colorOutline)
		img.Set(b.Max.X-1, y, colorOutline)
	}
}

// Path returns the PNG file name for id inside dir.
func Path(dir string, id game.SpriteID) string {
	return filepath.Join(dir, string(id)+".png")
}

// SavePlaceholders writes every placeholder to dir as PNG, so artists can
// start from the right dimensions.
func SavePlaceholders(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, id := range IDs {
		img, err := Placeholder(id)
		if err != nil {
			return err
		}
		if err := savePNG(Path(dir, id), img); err != nil {
			return fmt.Errorf("sprite %s: %w", id, err)
		}
	}
	return nil
}

func savePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Load returns the PNG override for id from dir, or the placeholder when
// dir is empty or has no file for it. Corrupt files are an error.
func Load(dir string, id game.SpriteID) (image.Image, error) {
	if dir == "" {
		return placeholderImage(id)
	}
	file, err := os.Open(Path(dir, id))
	if errors.Is(err, fs.ErrNotExist) {
		return placeholderImage(id)
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", id, err)
	}
	return img, nil
}

func placeholderImage(id game.SpriteID) (image.Image, error) {
	img, err := Placeholder(id)
	if err != nil {
		return nil, err
	}
	return img, nil
}
