package marquee

import (
	"fmt"
	"strings"
)

// Glyph is the bitmap of one character. Rows are stored in source form:
// '#' marks a lit pixel, anything else is background.
type Glyph struct {
	rows []string
}

// Width returns the glyph width in pixels, including trailing spacing.
func (g Glyph) Width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// Height returns the number of rows.
func (g Glyph) Height() int {
	return len(g.rows)
}

// Filled reports whether the pixel at (row, col) is lit.
func (g Glyph) Filled(row, col int) bool {
	return g.rows[row][col] == '#'
}

// Font is an immutable mapping from rune to glyph. All glyphs share one
// height; widths vary per glyph. Every font carries a space glyph, which
// substitutes for runes the font lacks.
type Font struct {
	name   string
	height int
	glyphs map[rune]Glyph
}

// newFont builds a font from a static table. It panics on malformed tables
// since those are programming errors caught at package init.
func newFont(name string, table map[rune][]string) *Font {
	space, ok := table[' ']
	if !ok {
		panic(fmt.Sprintf("marquee: font %q has no space glyph", name))
	}
	f := &Font{
		name:   name,
		height: len(space),
		glyphs: make(map[rune]Glyph, len(table)),
	}
	for r, rows := range table {
		if len(rows) != f.height {
			panic(fmt.Sprintf("marquee: font %q glyph %q has %d rows, want %d", name, r, len(rows), f.height))
		}
		for _, row := range rows {
			if len(row) != len(rows[0]) {
				panic(fmt.Sprintf("marquee: font %q glyph %q is not rectangular", name, r))
			}
		}
		f.glyphs[r] = Glyph{rows: rows}
	}
	return f
}

// Name returns the font's registry name.
func (f *Font) Name() string {
	return f.name
}

// Height returns the native glyph height shared by all glyphs.
func (f *Font) Height() int {
	return f.height
}

// Glyph returns the glyph for r and whether the font defines it.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// Lookup returns the glyph for r, or the space glyph when r is missing.
func (f *Font) Lookup(r rune) Glyph {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.glyphs[' ']
}

// Font names accepted by FontByName.
const (
	FontDefault = "default"
	FontCompact = "compact"
)

// FontByName returns the named built-in font. Matching is case-insensitive
// and "7segment" is accepted as an alias of compact. Unknown names fall
// back to DefaultFont and report false.
func FontByName(name string) (*Font, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FontDefault:
		return DefaultFont, true
	case FontCompact, "7segment":
		return CompactFont, true
	default:
		return DefaultFont, false
	}
}

// DefaultFont is a 5-row alphabetic font. Glyphs carry their own trailing
// blank columns so concatenated text stays separated.
var DefaultFont = newFont(FontDefault, map[rune][]string{
	' ': {"......", "......", "......", "......", "......"},
	'A': {".##...", "#..#..", "####..", "#..#..", "#..#.."},
	'B': {"###...", "#..#..", "###...", "#..#..", "###..."},
	'C': {".###..", "#.....", "#.....", "#.....", ".###.."},
	'D': {"###...", "#..#..", "#..#..", "#..#..", "###..."},
	'E': {"####..", "#.....", "###...", "#.....", "####.."},
	'F': {"####..", "#.....", "###...", "#.....", "#....."},
	'G': {".###..", "#.....", "#.##..", "#..#..", ".###.."},
	'H': {"#..#..", "#..#..", "####..", "#..#..", "#..#.."},
	'I': {"###..", ".#...", ".#...", ".#...", "###.."},
	'J': {"..##..", "...#..", "...#..", "#..#..", ".##..."},
	'K': {"#..#..", "#.#...", "##....", "#.#...", "#..#.."},
	'L': {"#.....", "#.....", "#.....", "#.....", "####.."},
	'M': {"#...#..", "##.##..", "#.#.#..", "#...#..", "#...#.."},
	'N': {"#..#..", "##.#..", "#.##..", "#..#..", "#..#.."},
	'O': {".##...", "#..#..", "#..#..", "#..#..", ".##..."},
	'P': {"###...", "#..#..", "###...", "#.....", "#....."},
	'Q': {".##...", "#..#..", "#..#..", "#.#...", ".#.#.."},
	'R': {"###...", "#..#..", "###...", "#.#...", "#..#.."},
	'S': {".###..", "#.....", ".##...", "...#..", "###..."},
	'T': {"#####..", "..#....", "..#....", "..#....", "..#...."},
	'U': {"#..#..", "#..#..", "#..#..", "#..#..", ".##..."},
	'V': {"#...#..", "#...#..", ".#.#...", ".#.#...", "..#...."},
	'W': {"#...#..", "#...#..", "#.#.#..", "##.##..", "#...#.."},
	'X': {"#..#..", ".##...", "......", ".##...", "#..#.."},
	'Y': {"#...#..", ".#.#...", "..#....", "..#....", "..#...."},
	'Z': {"####..", "...#..", "..#...", ".#....", "####.."},
	'0': {".##...", "#..#..", "#..#..", "#..#..", ".##..."},
	'1': {".#...", "##...", ".#...", ".#...", "###.."},
	'2': {"###...", "...#..", ".##...", "#.....", "####.."},
	'3': {"###...", "...#..", ".##...", "...#..", "###..."},
	'4': {"#..#..", "#..#..", "####..", "...#..", "...#.."},
	'5': {"####..", "#.....", "###...", "...#..", "###..."},
	'6': {".##...", "#.....", "###...", "#..#..", ".##..."},
	'7': {"####..", "...#..", "..#...", ".#....", ".#...."},
	'8': {".##...", "#..#..", ".##...", "#..#..", ".##..."},
	'9': {".##...", "#..#..", ".###..", "...#..", ".##..."},
	'.': {"...", "...", "...", "...", "#.."},
	'!': {"#..", "#..", "#..", "...", "#.."},
	'-': {".....", ".....", "###..", ".....", "....."},
})

// CompactFont is a minimal segment-style numeral font.
var CompactFont = newFont(FontCompact, map[rune][]string{
	' ': {"....", "....", "....", "....", "...."},
	'0': {"###.", "#.#.", "#.#.", "#.#.", "###."},
	'1': {"..#.", "..#.", "..#.", "..#.", "..#."},
	'2': {"###.", "..#.", "###.", "#...", "###."},
	'3': {"###.", "..#.", "###.", "..#.", "###."},
	'4': {"#.#.", "#.#.", "###.", "..#.", "..#."},
	'5': {"###.", "#...", "###.", "..#.", "###."},
	'6': {"###.", "#...", "###.", "#.#.", "###."},
	'7': {"###.", "..#.", "..#.", "..#.", "..#."},
	'8': {"###.", "#.#.", "###.", "#.#.", "###."},
	'9': {"###.", "#.#.", "###.", "..#.", "###."},
	'-': {"....", "....", "###.", "....", "...."},
	':': {"..", "#.", "..", "#.", ".."},
})
