// Package text composes strings into sprites using a glyph font.
//
// A Text is an ordinary sprite: it can be rotated, flipped, cropped and drawn
// on a framebuffer like any other.
//
//	t, err := text.New("Hi!", text.Default(), 1)
//	if err != nil {
//		// handle error
//	}
//	fb.DrawSprite(t, image.Pt(0, 1))
package text

import (
	"errors"
	"fmt"

	"periph.io/x/devices/v3/ledmatrix/image4bit"
	"periph.io/x/devices/v3/ledmatrix/sprite"
)

// ErrSpacing is returned for negative character spacing.
var ErrSpacing = errors.New("text: spacing must not be negative")

// Text is a sprite rendering a message.
type Text struct {
	*sprite.Sprite

	// Message is the rendered string.
	Message string
}

// New renders message with font, separating characters with spacing
// transparent columns.
//
// All glyphs of the message must have the same height. An empty message
// yields an empty sprite.
func New(message string, font Font, spacing int) (*Text, error) {
	if spacing < 0 {
		return nil, ErrSpacing
	}
	out := sprite.Blank(0, 0, image4bit.Transparent)
	first := true
	for _, r := range message {
		glyph, err := font.Glyph(r)
		if err != nil {
			return nil, err
		}
		if !first && spacing > 0 {
			h := glyph.Height()
			if h == 0 {
				h = out.Height()
			}
			if out, err = out.Add(sprite.Blank(spacing, h, image4bit.Transparent)); err != nil {
				return nil, fmt.Errorf("text: %q: %w", r, err)
			}
		}
		if out, err = out.Add(glyph); err != nil {
			return nil, fmt.Errorf("text: %q: %w", r, err)
		}
		first = false
	}
	return &Text{Sprite: out, Message: message}, nil
}
