package sprite

import (
	"fmt"
	"image"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// FromSVG rasterizes the SVG document read from r into a w x h sprite.
//
// The drawing is scaled to fill the sprite. Uncovered pixels are transparent
// and covered ones take the luminance of the SVG fill.
func FromSVG(r io.Reader, w, h int) (*Sprite, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("sprite: invalid svg size %dx%d", w, h)
	}
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("sprite: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return FromImage(img), nil
}
