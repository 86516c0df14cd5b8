package sprite

import (
	"fmt"
	"image"

	"periph.io/x/devices/v3/ledmatrix/image4bit"
)

// Crop restricts the sprite to the rectangle starting at origin with the
// given size. A size component <= 0, or one reaching past the edge, extends
// the crop to the far edge of the sprite.
//
// Coordinates are relative to the current, already transformed bitmap.
func (s *Sprite) Crop(origin, size image.Point) *Sprite {
	if s.err != nil {
		return s
	}
	w, h := s.Width(), s.Height()
	if origin.X < 0 || origin.X >= w || origin.Y < 0 || origin.Y >= h {
		s.err = fmt.Errorf("%w: %v not in %dx%d", ErrOrigin, origin, w, h)
		return s
	}
	endX, endY := w, h
	if size.X > 0 && origin.X+size.X < w {
		endX = origin.X + size.X
	}
	if size.Y > 0 && origin.Y+size.Y < h {
		endY = origin.Y + size.Y
	}
	bitmap := newBitmap(endX-origin.X, endY-origin.Y)
	for x := range bitmap {
		copy(bitmap[x], s.bitmap[origin.X+x][origin.Y:endY])
	}
	s.bitmap = bitmap
	return s
}

// Rotate rotates the sprite clockwise by angle degrees. Negative angles
// rotate counterclockwise. Width and height swap for 90 and 270 degrees.
func (s *Sprite) Rotate(angle int) *Sprite {
	if s.err != nil {
		return s
	}
	if angle%90 != 0 {
		s.err = fmt.Errorf("%w: %d", ErrAngle, angle)
		return s
	}
	w, h := s.Width(), s.Height()
	var bitmap [][]image4bit.Color
	switch (angle%360 + 360) % 360 {
	case 0:
		return s
	case 90:
		bitmap = newBitmap(h, w)
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				bitmap[y][w-1-x] = s.bitmap[x][y]
			}
		}
	case 180:
		bitmap = newBitmap(w, h)
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				bitmap[w-1-x][h-1-y] = s.bitmap[x][y]
			}
		}
	case 270:
		bitmap = newBitmap(h, w)
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				bitmap[h-1-y][x] = s.bitmap[x][y]
			}
		}
	}
	s.bitmap = bitmap
	return s
}

// Flip mirrors the sprite horizontally.
func (s *Sprite) Flip() *Sprite {
	if s.err != nil {
		return s
	}
	for i, j := 0, len(s.bitmap)-1; i < j; i, j = i+1, j-1 {
		s.bitmap[i], s.bitmap[j] = s.bitmap[j], s.bitmap[i]
	}
	return s
}

// FlipVertical mirrors the sprite vertically.
func (s *Sprite) FlipVertical() *Sprite {
	if s.err != nil {
		return s
	}
	for _, col := range s.bitmap {
		for i, j := 0, len(col)-1; i < j; i, j = i+1, j-1 {
			col[i], col[j] = col[j], col[i]
		}
	}
	return s
}

// Reset restores the bitmap the sprite was created with and clears Err.
func (s *Sprite) Reset() *Sprite {
	s.bitmap = copyBitmap(s.original)
	s.err = nil
	return s
}

// Add returns a new sprite with o appended to the right of s. Both sprites
// must have the same height; an empty sprite can be added to anything. The
// result's original bitmap is the concatenation, s and o are left unchanged.
func (s *Sprite) Add(o *Sprite) (*Sprite, error) {
	if s.err != nil {
		return nil, s.err
	}
	if o.err != nil {
		return nil, o.err
	}
	if s.Width() > 0 && o.Width() > 0 && s.Height() != o.Height() {
		return nil, fmt.Errorf("%w: %d and %d", ErrHeight, s.Height(), o.Height())
	}
	bitmap := make([][]image4bit.Color, 0, s.Width()+o.Width())
	bitmap = append(bitmap, copyBitmap(s.bitmap)...)
	bitmap = append(bitmap, copyBitmap(o.bitmap)...)
	return fromBitmap(bitmap), nil
}
