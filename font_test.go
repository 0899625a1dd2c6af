package marquee

import "testing"

func TestDefaultFontCoversAlphabet(t *testing.T) {
	for r := 'A'; r <= 'Z'; r++ {
		g, ok := DefaultFont.Glyph(r)
		if !ok {
			t.Errorf("DefaultFont missing %q", r)
			continue
		}
		if g.Height() != DefaultFont.Height() {
			t.Errorf("glyph %q height = %d, want %d", r, g.Height(), DefaultFont.Height())
		}
		if g.Width() < 3 {
			t.Errorf("glyph %q width = %d, want >= 3", r, g.Width())
		}
	}
	if DefaultFont.Height() != 5 {
		t.Errorf("DefaultFont.Height() = %d, want 5", DefaultFont.Height())
	}
}

func TestCompactFontCoversDigits(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		if _, ok := CompactFont.Glyph(r); !ok {
			t.Errorf("CompactFont missing %q", r)
		}
	}
	if _, ok := CompactFont.Glyph('A'); ok {
		t.Error("CompactFont should not carry letters")
	}
}

func TestFontLookupFallsBackToSpace(t *testing.T) {
	space, _ := DefaultFont.Glyph(' ')
	got := DefaultFont.Lookup('~')
	if got.Width() != space.Width() || got.Height() != space.Height() {
		t.Errorf("Lookup('~') size = %dx%d, want space %dx%d",
			got.Width(), got.Height(), space.Width(), space.Height())
	}
	for r := 0; r < got.Height(); r++ {
		for c := 0; c < got.Width(); c++ {
			if got.Filled(r, c) {
				t.Fatalf("fallback glyph has a lit pixel at (%d, %d)", r, c)
			}
		}
	}
}

func TestGlyphFilled(t *testing.T) {
	a, _ := DefaultFont.Glyph('A')
	// .##...
	want := []bool{false, true, true, false, false, false}
	for c, w := range want {
		if a.Filled(0, c) != w {
			t.Errorf("A.Filled(0, %d) = %v, want %v", c, a.Filled(0, c), w)
		}
	}
}

func TestFontByName(t *testing.T) {
	tests := []struct {
		name   string
		want   *Font
		wantOK bool
	}{
		{"", DefaultFont, true},
		{"default", DefaultFont, true},
		{"Default", DefaultFont, true},
		{"compact", CompactFont, true},
		{" 7segment ", CompactFont, true},
		{"gothic", DefaultFont, false},
	}
	for _, tt := range tests {
		got, ok := FontByName(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FontByName(%q) = (%s, %v), want (%s, %v)",
				tt.name, got.Name(), ok, tt.want.Name(), tt.wantOK)
		}
	}
}

func TestNewFontPanicsWithoutSpace(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for font without a space glyph")
		}
	}()
	newFont("broken", map[rune][]string{'A': {"#", "#"}})
}

func TestNewFontPanicsOnRaggedGlyph(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-rectangular glyph")
		}
	}()
	newFont("broken", map[rune][]string{
		' ': {"..", ".."},
		'A': {"#.", "#"},
	})
}

func TestNewFontPanicsOnHeightMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for glyph with the wrong row count")
		}
	}()
	newFont("broken", map[rune][]string{
		' ': {"..", ".."},
		'A': {"#.", "#.", "#."},
	})
}
