package ledmatrix

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Size is the width and height of a physical matrix in pixels.
const Size = 8

var (
	// ErrLayout is returned for an invalid matrix layout.
	ErrLayout = errors.New("ledmatrix: invalid matrix layout")
	// ErrNoMatrices is returned when no matrix is found on the chain.
	ErrNoMatrices = errors.New("ledmatrix: no matrices")
	// ErrTooManyMatrices is returned when more matrices are detected than
	// there are default layouts for.
	ErrTooManyMatrices = errors.New("ledmatrix: too many matrices for a default layout, provide one")
)

// Matrix places one physical 8x8 matrix in the framebuffer.
type Matrix struct {
	// X and Y locate the lower-left corner of the matrix, after rotation.
	X, Y int
	// Rotation is the clockwise rotation in degrees: 0, 90, 180 or 270.
	Rotation int
}

// Layout lists the matrices of a chain. The first entry is the matrix
// nearest to the host.
type Layout []Matrix

// defaultLayouts is indexed by matrix count. Chains of 4, 6, 7 and 8 matrices
// fold back over themselves on a second row, upside down.
var defaultLayouts = [...]Layout{
	1: {{0, 0, 0}},
	2: {{0, 0, 0}, {8, 0, 0}},
	3: {{0, 0, 0}, {8, 0, 0}, {16, 0, 0}},
	4: {{0, 0, 0}, {8, 0, 0}, {8, 8, 180}, {0, 8, 180}},
	5: {{0, 0, 0}, {8, 0, 0}, {16, 0, 0}, {24, 0, 0}, {32, 0, 0}},
	6: {{0, 0, 0}, {8, 0, 0}, {16, 0, 0}, {16, 8, 180}, {8, 8, 180}, {0, 8, 180}},
	7: {{0, 0, 0}, {8, 0, 0}, {16, 0, 0}, {24, 0, 0}, {24, 8, 180}, {16, 8, 180}, {8, 8, 180}},
	8: {{0, 0, 0}, {8, 0, 0}, {16, 0, 0}, {24, 0, 0}, {24, 8, 180}, {16, 8, 180}, {8, 8, 180}, {0, 8, 180}},
}

// MaxDefaultMatrices is the largest chain DefaultLayout knows about.
const MaxDefaultMatrices = len(defaultLayouts) - 1

// DefaultLayout returns the layout used for a detected chain of n matrices.
func DefaultLayout(n int) (Layout, error) {
	if n <= 0 {
		return nil, ErrNoMatrices
	}
	if n > MaxDefaultMatrices {
		return nil, fmt.Errorf("%w: %d", ErrTooManyMatrices, n)
	}
	return append(Layout(nil), defaultLayouts[n]...), nil
}

// ParseLayout parses a layout written as "x,y,rotation" entries separated by
// semicolons, e.g. "0,0,0;8,0,90". The rotation may be omitted.
func ParseLayout(s string) (Layout, error) {
	var l Layout
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.Split(entry, ",")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("%w: %q", ErrLayout, entry)
		}
		var v [3]int
		for i, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrLayout, entry, err)
			}
			v[i] = n
		}
		l = append(l, Matrix{X: v[0], Y: v[1], Rotation: v[2]})
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks that the layout is usable.
func (l Layout) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("%w: empty", ErrLayout)
	}
	for i, m := range l {
		if m.X < 0 || m.Y < 0 {
			return fmt.Errorf("%w: matrix %d has negative offset (%d, %d)", ErrLayout, i, m.X, m.Y)
		}
		switch m.Rotation {
		case 0, 90, 180, 270:
		default:
			return fmt.Errorf("%w: matrix %d has rotation %d", ErrLayout, i, m.Rotation)
		}
	}
	return nil
}

// Bounds returns the size of the framebuffer spanning all matrices.
func (l Layout) Bounds() image.Point {
	var p image.Point
	for _, m := range l {
		p.X = max(p.X, m.X+Size)
		p.Y = max(p.Y, m.Y+Size)
	}
	return p
}

// String returns the layout in the format accepted by ParseLayout.
func (l Layout) String() string {
	parts := make([]string, len(l))
	for i, m := range l {
		parts[i] = fmt.Sprintf("%d,%d,%d", m.X, m.Y, m.Rotation)
	}
	return strings.Join(parts, ";")
}

// locate returns the framebuffer position of the matrix-local pixel (px, py).
// Local coordinates have their origin at the bottom-left corner of the
// unrotated matrix.
func (m Matrix) locate(px, py int) (int, int) {
	switch m.Rotation {
	case 90:
		px, py = py, Size-1-px
	case 180:
		px, py = Size-1-px, Size-1-py
	case 270:
		px, py = Size-1-py, px
	}
	return m.X + px, m.Y + py
}
