package ledmatrix

import (
	"image"

	"periph.io/x/devices/v3/ledmatrix/image4bit"
)

// Drawable is a bitmap that can be drawn on a FrameBuffer, such as a
// sprite.Sprite or a text.Text.
type Drawable interface {
	Size() image.Point
	// Pixel returns the color at (x, y), with (0, 0) the bottom-left pixel.
	Pixel(x, y int) image4bit.Color
}

// Erase sets every pixel to c. Erasing with Transparent does nothing.
func (f *FrameBuffer) Erase(c image4bit.Color) {
	if c == image4bit.Transparent || !c.Valid() {
		return
	}
	for x := range f.fb {
		for y := range f.fb[x] {
			f.fb[x][y] = c
		}
	}
}

// Point sets the pixel at (x, y) to c.
//
// Points outside the framebuffer are ignored, as are Transparent and invalid
// colors.
func (f *FrameBuffer) Point(x, y int, c image4bit.Color) {
	if !f.in(x, y) || c == image4bit.Transparent || !c.Valid() {
		return
	}
	f.fb[x][y] = c
}

// PointAt is Point taking an image.Point.
func (f *FrameBuffer) PointAt(p image.Point, c image4bit.Color) {
	f.Point(p.X, p.Y, c)
}

// Line draws a line from a to b inclusive using Bresenham's algorithm.
//
// Drawing stops once the line leaves the framebuffer after having been in it.
func (f *FrameBuffer) Line(a, b image.Point, c image4bit.Color) {
	dx, sx := abs(b.X-a.X), sign(b.X-a.X)
	dy, sy := abs(b.Y-a.Y), sign(b.Y-a.Y)
	err := dx - dy
	x, y := a.X, a.Y
	entered := false
	for {
		if f.in(x, y) {
			entered = true
			f.Point(x, y, c)
		} else if entered {
			return
		}
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Rect draws the outline of the rectangle with its lower-left corner at
// origin. The edges cover exactly size.X columns and size.Y rows.
func (f *FrameBuffer) Rect(origin, size image.Point, c image4bit.Color) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	x0, y0 := origin.X, origin.Y
	x1, y1 := x0+size.X-1, y0+size.Y-1
	f.Line(image.Pt(x0, y0), image.Pt(x1, y0), c)
	f.Line(image.Pt(x1, y0), image.Pt(x1, y1), c)
	f.Line(image.Pt(x1, y1), image.Pt(x0, y1), c)
	f.Line(image.Pt(x0, y1), image.Pt(x0, y0), c)
}

// FillRect draws a filled rectangle with its lower-left corner at origin.
func (f *FrameBuffer) FillRect(origin, size image.Point, c image4bit.Color) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	for i := 0; i < size.X; i++ {
		x := origin.X + i
		f.Line(image.Pt(x, origin.Y), image.Pt(x, origin.Y+size.Y-1), c)
	}
}

// DrawSprite draws d with its lower-left corner at origin. Transparent pixels
// are skipped and the parts outside the framebuffer are clipped.
func (f *FrameBuffer) DrawSprite(d Drawable, origin image.Point) {
	size := d.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			f.Point(origin.X+x, origin.Y+y, d.Pixel(x, y))
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
