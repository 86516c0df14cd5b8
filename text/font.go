package text

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"sync"
	"unicode"

	"periph.io/x/devices/v3/ledmatrix/sprite"
)

// Font returns the glyph sprite for a rune.
//
// Implementations return a fresh sprite on every call, callers are free to
// transform it.
type Font interface {
	Glyph(r rune) (*sprite.Sprite, error)
}

// DirFont is a font stored as a directory of sprite files:
//
//	numbers/<digit>.spr
//	upper/<letter>.spr
//	lower/<letter>.spr
//	space.spr
//	misc/<decimal code point>.spr
//	unknown.spr
//
// Runes without a glyph file use unknown.spr.
type DirFont struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[string]*sprite.Sprite
}

// LoadFont opens the font called name in fsys and checks that it has an
// unknown glyph.
func LoadFont(fsys fs.FS, name string) (*DirFont, error) {
	sub, err := fs.Sub(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("text: font %q: %w", name, err)
	}
	f := &DirFont{fsys: sub, cache: map[string]*sprite.Sprite{}}
	if _, err := f.load(unknownGlyph); err != nil {
		return nil, fmt.Errorf("text: font %q: %w", name, err)
	}
	return f, nil
}

const unknownGlyph = "unknown.spr"

// glyphPath returns the file holding the glyph of r.
func glyphPath(r rune) string {
	switch {
	case r < unicode.MaxASCII && unicode.IsDigit(r):
		return path.Join("numbers", string(r)+".spr")
	case r < unicode.MaxASCII && unicode.IsUpper(r):
		return path.Join("upper", string(r)+".spr")
	case r < unicode.MaxASCII && unicode.IsLower(r):
		return path.Join("lower", string(r)+".spr")
	case unicode.IsSpace(r):
		return "space.spr"
	}
	return path.Join("misc", strconv.Itoa(int(r))+".spr")
}

// Glyph implements Font.
func (f *DirFont) Glyph(r rune) (*sprite.Sprite, error) {
	s, err := f.load(glyphPath(r))
	if errors.Is(err, fs.ErrNotExist) {
		s, err = f.load(unknownGlyph)
	}
	if err != nil {
		return nil, fmt.Errorf("text: glyph %q: %w", r, err)
	}
	return s, nil
}

func (f *DirFont) load(name string) (*sprite.Sprite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.cache[name]; ok {
		return s.Clone(), nil
	}
	s, err := sprite.Load(f.fsys, name)
	if err != nil {
		return nil, err
	}
	f.cache[name] = s
	return s.Clone(), nil
}
