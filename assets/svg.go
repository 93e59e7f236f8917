package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"starshipcatch/game"
)

//go:embed svg/*.svg
var svgFS embed.FS

// vectorSprites are drawn from embedded SVG sources.
var vectorSprites = map[game.SpriteID]string{
	game.SpriteShip:       "svg/ship.svg",
	game.SpriteShipTop:    "svg/ship_top.svg",
	game.SpriteShipBottom: "svg/ship_bottom.svg",
	game.SpriteEarth:      "svg/earth.svg",
	game.SpriteArrow:      "svg/arrow.svg",
}

// svgToRGBA rasterizes SVG data at width x height.
func svgToRGBA(svgData []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

func renderVector(id game.SpriteID, width, height int) (*image.RGBA, error) {
	data, err := svgFS.ReadFile(vectorSprites[id])
	if err != nil {
		return nil, err
	}
	img, err := svgToRGBA(data, width, height)
	if err != nil {
		return nil, fmt.Errorf("render sprite %s: %w", id, err)
	}
	return img, nil
}
