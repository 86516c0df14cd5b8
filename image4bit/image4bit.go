// Package image4bit provides a 4-bit pixel color and the nibble packed image
// format used by chained 8x8 LED matrices.
//
// Pixels are packed two per byte. Low nibble represents the first pixel of a
// pair, high nibble the second one.
package image4bit

import (
	"errors"
	"image"
	"image/color"
)

// Color is a 4-bit pixel brightness (0-15) or Transparent.
type Color int8

const (
	// Transparent marks pixels that are skipped when compositing.
	Transparent Color = -1
	// Off is an unlit pixel.
	Off Color = 0
	// Max is the brightest pixel.
	Max Color = 15
)

// ErrInvalidColor is returned when a value cannot be converted to a Color.
var ErrInvalidColor = errors.New("image4bit: invalid color")

// ToColor converts an integer pixel value to a Color.
//
// Valid values are 0 to 15 and -1 (Transparent).
func ToColor(v int) (Color, error) {
	if v < int(Transparent) || v > int(Max) {
		return Off, ErrInvalidColor
	}
	return Color(v), nil
}

// ParseColor converts a single character to a Color.
//
// Accepted characters are 0-9, a-f, A-F and '-' for Transparent.
func ParseColor(s string) (Color, error) {
	if len(s) != 1 {
		return Off, ErrInvalidColor
	}
	return colorFromByte(s[0])
}

func colorFromByte(b byte) (Color, error) {
	switch {
	case b == '-':
		return Transparent, nil
	case b >= '0' && b <= '9':
		return Color(b - '0'), nil
	case b >= 'a' && b <= 'f':
		return Color(b-'a') + 10, nil
	case b >= 'A' && b <= 'F':
		return Color(b-'A') + 10, nil
	}
	return Off, ErrInvalidColor
}

// Valid reports whether c is a pixel value or Transparent.
func (c Color) Valid() bool {
	return c >= Transparent && c <= Max
}

// Byte returns the character used for c in sprite text.
func (c Color) Byte() byte {
	if c == Transparent {
		return '-'
	}
	return "0123456789abcdef"[c&0x0F]
}

// RGBA converts the Color to standard RGBA.
// The 4-bit value (0-15) is scaled to 16-bit (0-65535). Transparent is fully
// transparent black.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c == Transparent {
		return 0, 0, 0, 0
	}
	// 0xF * 0x1111 = 0xFFFF, 0x5 * 0x1111 = 0x5555, etc.
	y := uint32(c&0x0F) * 0x1111
	return y, y, y, 0xFFFF
}

// toColor converts any color.Color to Color.
func toColor(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, a := c.RGBA()
	if a < 0x8000 {
		return Transparent
	}
	// Colors are alpha premultiplied, undo it before computing luminance.
	r, g, b = r*0xFFFF/a, g*0xFFFF/a, b*0xFFFF/a
	// Standard grayscale conversion: 0.299R + 0.587G + 0.114B
	y := (299*r + 587*g + 114*b + 500) / 1000
	// Convert 16-bit (0-65535) to 4-bit (0-15)
	return Color(y >> 12)
}

// Model converts colors to Color.
var Model = color.ModelFunc(toColor)

// Packed is a 4-bit image where pixels are stored two per byte along rows:
// low nibble = even x, high nibble = odd x.
//
// Rows are stored in increasing y order. Packed has no notion of Transparent;
// such pixels are stored as Off.
type Packed struct {
	Pix    []byte          // Pixel data (2 pixels per byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewPacked creates a new Packed image with the specified bounds.
// The width must be even (since 2 pixels per byte).
func NewPacked(r image.Rectangle) *Packed {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Packed{Rect: r}
	}
	if w%2 != 0 {
		panic("image4bit: width must be even")
	}
	stride := w / 2
	return &Packed{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Packed) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Packed) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Packed) At(x, y int) color.Color {
	return p.ColorAt(x, y)
}

// ColorAt returns the Color of the pixel at (x, y).
func (p *Packed) ColorAt(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, shift := p.pixOffset(x, y)
	return Color((p.Pix[offset] >> shift) & 0x0F)
}

// Set sets the color of the pixel at (x, y).
func (p *Packed) Set(x, y int, c color.Color) {
	p.SetColor(x, y, Model.Convert(c).(Color))
}

// SetColor sets the Color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Packed) SetColor(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	if c == Transparent {
		c = Off
	}
	offset, shift := p.pixOffset(x, y)
	p.Pix[offset] = (p.Pix[offset] &^ (0x0F << shift)) | ((byte(c) & 0x0F) << shift)
}

// pixOffset returns the byte offset and bit shift for the pixel at (x, y).
// Low nibble (shift 0) = even x, high nibble (shift 4) = odd x.
func (p *Packed) pixOffset(x, y int) (offset int, shift uint) {
	offset = (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)/2
	shift = uint(4 * ((x - p.Rect.Min.X) & 1))
	return
}
