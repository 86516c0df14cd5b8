// Package ledmatrix drives chains of 8×8 4-bit LED matrices via SPI.
//
// Each matrix is a 32 byte shift register holding 64 pixels with 16
// brightness levels. Matrices are daisy-chained: bytes written by the host
// enter the first matrix and bytes leaving the last matrix come back on MISO.
// This package composes the matrices of a chain into a single framebuffer
// and implements the display.Drawer interface from periph.io.
//
// # Coordinates
//
// The framebuffer uses Cartesian coordinates: (0, 0) is the bottom-left
// pixel, x grows to the right and y grows upward. Drawing outside the
// framebuffer is silently clipped.
//
// # Hardware Connection
//
//	Matrix Pin  → System Pin
//	GND         → GND
//	VCC         → 5V
//	SCK         → SPI Clock (SCLK)
//	DIN         → SPI Data (MOSI)
//	DOUT        → SPI Data (MISO), only needed for detection
//	CS          → SPI Chip Select
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ledmatrix"
//		"periph.io/x/devices/v3/ledmatrix/image4bit"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		p, _ := spireg.Open("")
//		defer p.Close()
//
//		// A nil layout detects the length of the chain.
//		fb, _ := ledmatrix.NewSPI(p, nil)
//		defer fb.Halt()
//
//		fb.Rect(image.Pt(0, 0), image.Pt(fb.Width(), fb.Height()), image4bit.Max)
//		fb.Line(image.Pt(0, 0), image.Pt(fb.Width()-1, fb.Height()-1), 8)
//		fb.Show()
//	}
//
// # Layouts
//
// A Layout places every matrix of the chain, in chain order, at a pixel
// offset and with a rotation of 0, 90, 180 or 270 degrees. When no layout is
// given the chain is detected and DefaultLayout is used; chains of one to
// three or five matrices form a single row, longer chains fold back on a
// second row so that cables stay short:
//
//	// Two matrices stacked vertically, the upper one mounted upside down.
//	l, _ := ledmatrix.ParseLayout("0,0,0;0,8,180")
//	fb, _ := ledmatrix.NewSPI(p, &ledmatrix.Opts{Layout: l})
//
// # Detection
//
// Detect sends a random marker followed by zeros and looks for the marker in
// the bytes echoed back by the chain. The position of the echo gives the
// number of matrices, up to MaxMatrices.
//
// # Colors
//
// Pixels are image4bit.Color values: image4bit.Off (0) to image4bit.Max
// (15). image4bit.Transparent is never stored; drawing it leaves pixels
// unchanged, which lets sprites overlay each other.
//
// # Sprites and Text
//
// The sprite package loads and transforms small bitmaps; the text package
// renders messages with sprite fonts or tinyfont faces. Both produce values
// that can be drawn with DrawSprite:
//
//	t, _ := text.New("Hi!", text.Default(), 1)
//	fb.DrawSprite(t, image.Pt(0, 1))
//	fb.Show()
//
// # Testing
//
// The ledmatrixtest package emulates a chain in memory. It implements
// spi.Port so the whole stack, detection included, runs without hardware.
package ledmatrix
