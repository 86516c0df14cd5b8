package text

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"periph.io/x/devices/v3/ledmatrix/image4bit"
	"periph.io/x/devices/v3/ledmatrix/sprite"
)

// TinyFont renders glyphs from a tinyfont face.
//
// Every glyph is Height pixels tall with its baseline on row Baseline
// (counted from the top), so glyphs of one face always line up.
type TinyFont struct {
	Face     tinyfont.Fonter
	Height   int
	Baseline int
	Color    image4bit.Color
}

// Default returns the 3x5 TomThumb face, a good fit for 8 pixel tall
// matrices.
func Default() *TinyFont {
	return &TinyFont{
		Face:     &tinyfont.TomThumb,
		Height:   6,
		Baseline: 5,
		Color:    image4bit.Max,
	}
}

// Glyph implements Font.
func (f *TinyFont) Glyph(r rune) (*sprite.Sprite, error) {
	_, w := tinyfont.LineWidth(f.Face, string(r))
	c := newGlyphCanvas(int(w), f.Height, f.Color)
	tinyfont.DrawChar(c, f.Face, 0, int16(f.Baseline), r, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	return sprite.FromBitmap(c.bitmap), nil
}

// glyphCanvas is the display tinyfont draws a glyph on.
type glyphCanvas struct {
	bitmap [][]image4bit.Color
	ink    image4bit.Color
}

var _ drivers.Displayer = (*glyphCanvas)(nil)

func newGlyphCanvas(w, h int, ink image4bit.Color) *glyphCanvas {
	return &glyphCanvas{
		bitmap: sprite.Blank(w, h, image4bit.Transparent).Bitmap(),
		ink:    ink,
	}
}

func (c *glyphCanvas) Size() (x, y int16) {
	if len(c.bitmap) == 0 {
		return 0, 0
	}
	return int16(len(c.bitmap)), int16(len(c.bitmap[0]))
}

// SetPixel receives raster coordinates from tinyfont.
func (c *glyphCanvas) SetPixel(x, y int16, col color.RGBA) {
	w, h := c.Size()
	if x < 0 || x >= w || y < 0 || y >= h || col.A == 0 {
		return
	}
	cx, cy := image4bit.ToCartesian(int(x), int(y), int(h))
	c.bitmap[cx][cy] = c.ink
}

func (c *glyphCanvas) Display() error {
	return nil
}
