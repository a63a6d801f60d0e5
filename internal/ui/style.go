package ui

import (
	"os"
	"strings"
)

// RenderStyle is the glyph set used to draw the board and menus. The
// Unicode flag also selects unicode text labels, such as arrow key hints.
type RenderStyle struct {
	Unicode bool

	BorderHorizontal  rune
	BorderVertical    rune
	CornerTopLeft     rune
	CornerTopRight    rune
	CornerBottomLeft  rune
	CornerBottomRight rune
	Paddle            rune
	Ball              rune
}

// ASCIIStyle is the plain fallback glyph set for any terminal
func ASCIIStyle() RenderStyle {
	return RenderStyle{
		BorderHorizontal:  '-',
		BorderVertical:    '|',
		CornerTopLeft:     '+',
		CornerTopRight:    '+',
		CornerBottomLeft:  '+',
		CornerBottomRight: '+',
		Paddle:            '|',
		Ball:              'o',
	}
}

// UnicodeStyle draws with box-drawing and block glyphs
func UnicodeStyle() RenderStyle {
	return RenderStyle{
		Unicode:           true,
		BorderHorizontal:  '─',
		BorderVertical:    '│',
		CornerTopLeft:     '┌',
		CornerTopRight:    '┐',
		CornerBottomLeft:  '└',
		CornerBottomRight: '┘',
		Paddle:            '█',
		Ball:              '●',
	}
}

// AutoStyle picks the glyph set for the current terminal. Unicode is
// used when the locale advertises UTF-8, unless forceASCII is set or
// the PONG_FORCE_ASCII environment variable is present, for fonts that
// render block glyphs poorly.
func AutoStyle(forceASCII bool) RenderStyle {
	if forceASCII {
		return ASCIIStyle()
	}
	if _, ok := os.LookupEnv("PONG_FORCE_ASCII"); ok {
		return ASCIIStyle()
	}
	if localeSupportsUnicode() {
		return UnicodeStyle()
	}
	return ASCIIStyle()
}

// localeSupportsUnicode checks LANG and LC_ALL for a UTF-8 charset
func localeSupportsUnicode() bool {
	for _, name := range []string{"LANG", "LC_ALL"} {
		v := os.Getenv(name)
		if strings.Contains(v, "UTF-8") || strings.Contains(v, "utf8") {
			return true
		}
	}
	return false
}
