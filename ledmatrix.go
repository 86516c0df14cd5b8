package ledmatrix

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"periph.io/x/devices/v3/ledmatrix/image4bit"
)

const (
	// MaxMatrices is the longest chain supported.
	MaxMatrices = 64
	// ShiftRegisterLength is the number of bytes held by each matrix.
	ShiftRegisterLength = Size * Size / 2
	// DefaultFreq is the SPI clock used when Opts.Freq is zero.
	DefaultFreq = 500 * physic.KiloHertz
)

// ErrNoConn is returned by Show when the framebuffer has no transport.
var ErrNoConn = errors.New("ledmatrix: no connection")

// Opts is the configuration for a chain of matrices.
type Opts struct {
	// Layout places each matrix of the chain. When nil the chain length is
	// detected and the matching DefaultLayout is used.
	Layout Layout

	// Freq is the SPI clock (default: DefaultFreq). Only used by NewSPI.
	Freq physic.Frequency
}

// FrameBuffer is the pixel canvas spanning all matrices of a chain.
//
// A FrameBuffer is meant to be driven by a single goroutine.
type FrameBuffer struct {
	c      conn.Conn
	layout Layout

	// fb is addressed fb[x][y].
	fb [][]image4bit.Color
}

var _ display.Drawer = (*FrameBuffer)(nil)

// NewSPI connects to the chain on p and returns its framebuffer.
//
// The SPI port is configured for Mode0, 8-bit transfers. opts can be nil to
// detect the chain and use defaults.
func NewSPI(p spi.Port, opts *Opts) (*FrameBuffer, error) {
	if opts == nil {
		opts = &Opts{}
	}
	f := opts.Freq
	if f == 0 {
		f = DefaultFreq
	}
	c, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ledmatrix: %w", err)
	}
	return New(c, opts)
}

// New returns the framebuffer for the chain connected through c.
//
// c must be full duplex when the layout is detected. c may be nil with an
// explicit layout, in which case the framebuffer can be drawn and serialized
// with Frame but not shown.
func New(c conn.Conn, opts *Opts) (*FrameBuffer, error) {
	if opts == nil {
		opts = &Opts{}
	}
	layout := opts.Layout
	if layout == nil {
		if c == nil {
			return nil, ErrNoConn
		}
		n, err := Detect(c)
		if err != nil {
			return nil, err
		}
		if layout, err = DefaultLayout(n); err != nil {
			return nil, err
		}
	} else {
		if err := layout.Validate(); err != nil {
			return nil, err
		}
		layout = append(Layout(nil), layout...)
	}

	size := layout.Bounds()
	fb := make([][]image4bit.Color, size.X)
	for x := range fb {
		fb[x] = make([]image4bit.Color, size.Y)
	}
	return &FrameBuffer{c: c, layout: layout, fb: fb}, nil
}

// Width returns the framebuffer width in pixels.
func (f *FrameBuffer) Width() int {
	return len(f.fb)
}

// Height returns the framebuffer height in pixels.
func (f *FrameBuffer) Height() int {
	if len(f.fb) == 0 {
		return 0
	}
	return len(f.fb[0])
}

// Layout returns a copy of the matrix layout.
func (f *FrameBuffer) Layout() Layout {
	return append(Layout(nil), f.layout...)
}

// At returns the color at (x, y), or Off outside the framebuffer.
func (f *FrameBuffer) At(x, y int) image4bit.Color {
	if !f.in(x, y) {
		return image4bit.Off
	}
	return f.fb[x][y]
}

func (f *FrameBuffer) in(x, y int) bool {
	return x >= 0 && x < f.Width() && y >= 0 && y < f.Height()
}

// Frame serializes the framebuffer into the bytes shifted through the chain.
//
// Matrices are emitted in reverse layout order, since the first bytes sent
// end up in the matrix farthest from the host. Each matrix contributes
// ShiftRegisterLength bytes: its pixels row by row from the bottom, two per
// byte with the first pixel in the low nibble.
func (f *FrameBuffer) Frame() []byte {
	out := make([]byte, 0, len(f.layout)*ShiftRegisterLength)
	block := image4bit.NewPacked(image.Rect(0, 0, Size, Size))
	for i := len(f.layout) - 1; i >= 0; i-- {
		m := f.layout[i]
		for py := 0; py < Size; py++ {
			for px := 0; px < Size; px++ {
				block.SetColor(px, py, f.At(m.locate(px, py)))
			}
		}
		out = append(out, block.Pix...)
	}
	return out
}

// Load is the inverse of Frame: it replaces the framebuffer content with the
// pixels held by a serialized frame.
func (f *FrameBuffer) Load(frame []byte) error {
	if len(frame) != len(f.layout)*ShiftRegisterLength {
		return fmt.Errorf("ledmatrix: frame is %d bytes, want %d", len(frame), len(f.layout)*ShiftRegisterLength)
	}
	block := &image4bit.Packed{Stride: Size / 2, Rect: image.Rect(0, 0, Size, Size)}
	for i := range f.layout {
		m := f.layout[len(f.layout)-1-i]
		block.Pix = frame[i*ShiftRegisterLength : (i+1)*ShiftRegisterLength]
		for py := 0; py < Size; py++ {
			for px := 0; px < Size; px++ {
				x, y := m.locate(px, py)
				f.fb[x][y] = block.ColorAt(px, py)
			}
		}
	}
	return nil
}

// Show sends the framebuffer to the matrices.
//
// The framebuffer is left unchanged, so calling Show twice sends the same
// bytes.
func (f *FrameBuffer) Show() error {
	if f.c == nil {
		return ErrNoConn
	}
	return f.c.Tx(f.Frame(), nil)
}

// ColorModel implements display.Drawer.
func (f *FrameBuffer) ColorModel() color.Model {
	return image4bit.Model
}

// Bounds implements display.Drawer.
func (f *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width(), f.Height())
}

// Draw implements display.Drawer.
//
// Contrary to the drawing methods, dst, src and sp use image (raster)
// coordinates. Transparent source pixels leave the framebuffer unchanged.
// The result is shown immediately.
func (f *FrameBuffer) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	dst = dst.Intersect(f.Bounds())
	if !dst.Empty() {
		draw.Draw(rasterView{f}, dst, src, sp, draw.Over)
	}
	return f.Show()
}

// Halt blanks all matrices.
func (f *FrameBuffer) Halt() error {
	f.Erase(image4bit.Off)
	return f.Show()
}

// String returns a string representation of the framebuffer.
func (f *FrameBuffer) String() string {
	return fmt.Sprintf("ledmatrix.FrameBuffer{%dx%d, %d matrices}", f.Width(), f.Height(), len(f.layout))
}

// rasterView exposes the framebuffer as a draw.Image in raster coordinates.
type rasterView struct {
	f *FrameBuffer
}

func (r rasterView) ColorModel() color.Model {
	return image4bit.Model
}

func (r rasterView) Bounds() image.Rectangle {
	return r.f.Bounds()
}

func (r rasterView) At(x, y int) color.Color {
	return r.f.At(image4bit.ToCartesian(x, y, r.f.Height()))
}

func (r rasterView) Set(x, y int, c color.Color) {
	cx, cy := image4bit.ToCartesian(x, y, r.f.Height())
	r.f.Point(cx, cy, image4bit.Model.Convert(c).(image4bit.Color))
}
