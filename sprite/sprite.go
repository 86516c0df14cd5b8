// Package sprite implements small 4-bit bitmaps with transparency that can be
// transformed and composited onto an LED matrix framebuffer.
//
// Sprites are parsed from a text format with one line per pixel row (top row
// first) and one character per pixel:
//
//	--f--
//	-fff-
//	fffff
//
// Characters 0-9 and a-f are brightness levels and '-' is transparent.
// Whitespace is ignored and blank lines are skipped.
//
// Coordinates are Cartesian: (0, 0) is the bottom-left pixel.
//
// Transforms (Crop, Rotate, Flip, FlipVertical) mutate the sprite in place and
// return it so calls can be chained. Use Clone to get an independent copy.
// A failed transform records an error reported by Err and turns the remaining
// transforms of the chain into no-ops.
package sprite

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"strings"
	"unicode"

	"periph.io/x/devices/v3/ledmatrix/image4bit"
)

var (
	// ErrRowLength is returned when the rows of a sprite text differ in length.
	ErrRowLength = errors.New("sprite: rows must have equal length")
	// ErrAngle is returned when a rotation is not a multiple of 90 degrees.
	ErrAngle = errors.New("sprite: angle must be a multiple of 90")
	// ErrOrigin is returned when a crop origin is outside the sprite.
	ErrOrigin = errors.New("sprite: crop origin out of range")
	// ErrHeight is returned when adding sprites of different heights.
	ErrHeight = errors.New("sprite: heights must match")
)

// Sprite is a 2D bitmap addressed bitmap[x][y].
type Sprite struct {
	bitmap   [][]image4bit.Color
	original [][]image4bit.Color
	err      error
}

// New parses a sprite from its text representation.
func New(text string) (*Sprite, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads a sprite in text format from r.
func Parse(r io.Reader) (*Sprite, error) {
	var rows [][]image4bit.Color
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		row, err := parseRow(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("sprite: line %d: %w", line, err)
		}
		if len(row) == 0 {
			continue
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d pixels, want %d", ErrRowLength, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	// The first row of text is the top of the sprite.
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	bitmap := newBitmap(w, h)
	for i, row := range rows {
		y := h - 1 - i
		for x, c := range row {
			bitmap[x][y] = c
		}
	}
	return fromBitmap(bitmap), nil
}

func parseRow(s string) ([]image4bit.Color, error) {
	var row []image4bit.Color
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r > unicode.MaxASCII {
			return nil, image4bit.ErrInvalidColor
		}
		c, err := image4bit.ParseColor(string(r))
		if err != nil {
			return nil, err
		}
		row = append(row, c)
	}
	return row, nil
}

// Load reads the sprite file name from fsys.
func Load(fsys fs.FS, name string) (*Sprite, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	s, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// Blank returns a w x h sprite filled with c.
func Blank(w, h int, c image4bit.Color) *Sprite {
	bitmap := newBitmap(w, h)
	for x := range bitmap {
		for y := range bitmap[x] {
			bitmap[x][y] = c
		}
	}
	return fromBitmap(bitmap)
}

// FromImage converts img to a sprite using image4bit.Model. Pixels less than
// half opaque become transparent.
func FromImage(img image.Image) *Sprite {
	b := img.Bounds()
	bitmap := newBitmap(b.Dx(), b.Dy())
	for ry := b.Min.Y; ry < b.Max.Y; ry++ {
		for rx := b.Min.X; rx < b.Max.X; rx++ {
			x, y := image4bit.ToRaster(rx-b.Min.X, ry-b.Min.Y, b.Dy())
			bitmap[x][y] = image4bit.Model.Convert(img.At(rx, ry)).(image4bit.Color)
		}
	}
	return fromBitmap(bitmap)
}

// FromBitmap returns a sprite holding a copy of bitmap, indexed [x][y].
// All columns must have the same length.
func FromBitmap(bitmap [][]image4bit.Color) *Sprite {
	return fromBitmap(copyBitmap(bitmap))
}

func fromBitmap(bitmap [][]image4bit.Color) *Sprite {
	return &Sprite{bitmap: bitmap, original: copyBitmap(bitmap)}
}

func newBitmap(w, h int) [][]image4bit.Color {
	bitmap := make([][]image4bit.Color, w)
	for x := range bitmap {
		bitmap[x] = make([]image4bit.Color, h)
	}
	return bitmap
}

func copyBitmap(src [][]image4bit.Color) [][]image4bit.Color {
	dst := make([][]image4bit.Color, len(src))
	for x := range src {
		dst[x] = append([]image4bit.Color(nil), src[x]...)
	}
	return dst
}

// Width returns the number of columns.
func (s *Sprite) Width() int {
	return len(s.bitmap)
}

// Height returns the number of rows.
func (s *Sprite) Height() int {
	if len(s.bitmap) == 0 {
		return 0
	}
	return len(s.bitmap[0])
}

// Size returns the sprite dimensions.
func (s *Sprite) Size() image.Point {
	return image.Point{X: s.Width(), Y: s.Height()}
}

// Pixel returns the color at (x, y), or Transparent outside the sprite.
func (s *Sprite) Pixel(x, y int) image4bit.Color {
	if x < 0 || x >= s.Width() || y < 0 || y >= s.Height() {
		return image4bit.Transparent
	}
	return s.bitmap[x][y]
}

// Bitmap returns a copy of the current bitmap indexed [x][y].
func (s *Sprite) Bitmap() [][]image4bit.Color {
	return copyBitmap(s.bitmap)
}

// Err returns the error of the first failed transform since construction or
// the last Reset.
func (s *Sprite) Err() error {
	return s.err
}

// Clone returns an independent copy of s, including its original bitmap.
func (s *Sprite) Clone() *Sprite {
	return &Sprite{
		bitmap:   copyBitmap(s.bitmap),
		original: copyBitmap(s.original),
		err:      s.err,
	}
}

// Equal reports whether s and o have the same current bitmap.
func (s *Sprite) Equal(o *Sprite) bool {
	if s.Width() != o.Width() || s.Height() != o.Height() {
		return false
	}
	for x := range s.bitmap {
		for y := range s.bitmap[x] {
			if s.bitmap[x][y] != o.bitmap[x][y] {
				return false
			}
		}
	}
	return true
}

// String returns the sprite in text format, top row first.
func (s *Sprite) String() string {
	var b strings.Builder
	for y := s.Height() - 1; y >= 0; y-- {
		for x := 0; x < s.Width(); x++ {
			b.WriteByte(s.bitmap[x][y].Byte())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
