package text

import (
	"errors"
	"testing"
	"testing/fstest"

	"periph.io/x/devices/v3/ledmatrix/image4bit"
	"periph.io/x/devices/v3/ledmatrix/sprite"
)

func testFonts() fstest.MapFS {
	return fstest.MapFS{
		"small/numbers/1.spr": {Data: []byte("f\nf\nf\n")},
		"small/upper/A.spr":   {Data: []byte("-f-\nfff\nf-f\n")},
		"small/upper/B.spr":   {Data: []byte("ff\nff\n")},
		"small/lower/a.spr":   {Data: []byte("--\nff\nff\n")},
		"small/space.spr":     {Data: []byte("--\n--\n--\n")},
		"small/misc/33.spr":   {Data: []byte("f\n-\nf\n")},
		"small/unknown.spr":   {Data: []byte("fff\nf-f\nfff\n")},
		"broken/upper/A.spr":  {Data: []byte("f\n")},
	}
}

func loadSmall(t *testing.T) *DirFont {
	t.Helper()
	f, err := LoadFont(testFonts(), "small")
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}
	return f
}

func TestGlyphPath(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{'7', "numbers/7.spr"},
		{'Q', "upper/Q.spr"},
		{'q', "lower/q.spr"},
		{' ', "space.spr"},
		{'\t', "space.spr"},
		{'!', "misc/33.spr"},
		{'é', "misc/233.spr"},
	}
	for _, tt := range tests {
		if got := glyphPath(tt.r); got != tt.want {
			t.Errorf("glyphPath(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestLoadFontWithoutUnknownGlyph(t *testing.T) {
	if _, err := LoadFont(testFonts(), "broken"); err == nil {
		t.Error("LoadFont() should fail without unknown.spr")
	}
}

func TestDirFontGlyph(t *testing.T) {
	f := loadSmall(t)
	tests := []struct {
		r    rune
		want string
	}{
		{'1', "f\nf\nf\n"},
		{'A', "-f-\nfff\nf-f\n"},
		{'!', "f\n-\nf\n"},
		{'Z', "fff\nf-f\nfff\n"},
		{'~', "fff\nf-f\nfff\n"},
	}
	for _, tt := range tests {
		g, err := f.Glyph(tt.r)
		if err != nil {
			t.Fatalf("Glyph(%q) error = %v", tt.r, err)
		}
		if got := g.String(); got != tt.want {
			t.Errorf("Glyph(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestDirFontGlyphIsACopy(t *testing.T) {
	f := loadSmall(t)
	g, _ := f.Glyph('A')
	g.FlipVertical()
	again, _ := f.Glyph('A')
	if got := again.String(); got != "-f-\nfff\nf-f\n" {
		t.Errorf("cached glyph was modified: %q", got)
	}
}

func TestNew(t *testing.T) {
	f := loadSmall(t)
	tests := []struct {
		name    string
		message string
		spacing int
		want    string
	}{
		{"single", "A", 1, "-f-\nfff\nf-f\n"},
		{"spaced", "A1", 1, "-f--f\nfff-f\nf-f-f\n"},
		{"no spacing", "A1", 0, "-f-f\nffff\nf-ff\n"},
		{"wide spacing", "1 1", 2, "f------f\nf------f\nf------f\n"},
		{"lower and misc", "a!", 1, "---f\nff--\nff-f\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt, err := New(tt.message, f, tt.spacing)
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.message, err)
			}
			if got := txt.String(); got != tt.want {
				t.Errorf("New(%q) = %q, want %q", tt.message, got, tt.want)
			}
			if txt.Message != tt.message {
				t.Errorf("Message = %q, want %q", txt.Message, tt.message)
			}
		})
	}
}

func TestNewEmpty(t *testing.T) {
	txt, err := New("", loadSmall(t), 1)
	if err != nil {
		t.Fatalf("New(\"\") error = %v", err)
	}
	if txt.Width() != 0 || txt.Height() != 0 {
		t.Errorf("size = %v, want 0x0", txt.Size())
	}
}

func TestNewHeightMismatch(t *testing.T) {
	if _, err := New("AB", loadSmall(t), 1); !errors.Is(err, sprite.ErrHeight) {
		t.Errorf("New(\"AB\") error = %v, want ErrHeight", err)
	}
	if _, err := New("AB", loadSmall(t), 0); !errors.Is(err, sprite.ErrHeight) {
		t.Errorf("New(\"AB\") without spacing error = %v, want ErrHeight", err)
	}
}

func TestNewNegativeSpacing(t *testing.T) {
	if _, err := New("A", loadSmall(t), -1); !errors.Is(err, ErrSpacing) {
		t.Errorf("New() error = %v, want ErrSpacing", err)
	}
}

func TestTextIsASprite(t *testing.T) {
	txt, err := New("A1", loadSmall(t), 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := txt.Rotate(180).Reset().String(); got != "-f--f\nfff-f\nf-f-f\n" {
		t.Errorf("Rotate(180).Reset() = %q", got)
	}
}

func TestTinyFont(t *testing.T) {
	f := Default()
	g, err := f.Glyph('H')
	if err != nil {
		t.Fatalf("Glyph('H') error = %v", err)
	}
	if g.Height() != 6 {
		t.Errorf("Height() = %d, want 6", g.Height())
	}
	if g.Width() == 0 {
		t.Fatal("Width() = 0")
	}
	lit := 0
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			switch g.Pixel(x, y) {
			case image4bit.Max:
				lit++
			case image4bit.Transparent:
			default:
				t.Errorf("Pixel(%d, %d) = %d, want ink or transparent", x, y, g.Pixel(x, y))
			}
		}
	}
	if lit == 0 {
		t.Error("glyph has no lit pixels")
	}

	i, _ := f.Glyph('i')
	txt, err := New("Hi", f, 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if want := g.Width() + 1 + i.Width(); txt.Width() != want {
		t.Errorf("Width() = %d, want %d", txt.Width(), want)
	}
}
