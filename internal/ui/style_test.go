package ui

import (
	"os"
	"testing"
)

func TestAutoStyle(t *testing.T) {
	tests := []struct {
		name        string
		lang        string
		lcAll       string
		forceEnv    bool
		forceFlag   bool
		wantUnicode bool
	}{
		{"utf8 locale picks unicode", "en_US.UTF-8", "", false, false, true},
		{"lowercase utf8 tag", "C.utf8", "", false, false, true},
		{"lc_all alone is enough", "", "en_GB.UTF-8", false, false, true},
		{"plain locale falls back to ascii", "C", "", false, false, false},
		{"empty locale falls back to ascii", "", "", false, false, false},
		{"env override beats the locale", "en_US.UTF-8", "", true, false, false},
		{"flag override beats the locale", "en_US.UTF-8", "", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LANG", tt.lang)
			t.Setenv("LC_ALL", tt.lcAll)
			// t.Setenv registers the restore; unset so LookupEnv misses
			t.Setenv("PONG_FORCE_ASCII", "")
			if tt.forceEnv {
				os.Setenv("PONG_FORCE_ASCII", "1")
			} else {
				os.Unsetenv("PONG_FORCE_ASCII")
			}

			style := AutoStyle(tt.forceFlag)
			if style.Unicode != tt.wantUnicode {
				t.Errorf("expected Unicode=%v, got %v", tt.wantUnicode, style.Unicode)
			}
		})
	}
}

func TestASCIIStyle(t *testing.T) {
	style := ASCIIStyle()

	if style.Unicode {
		t.Error("ASCII style must not set the Unicode flag")
	}
	if style.Ball != 'o' || style.Paddle != '|' {
		t.Errorf("unexpected ASCII glyphs: ball %q, paddle %q", style.Ball, style.Paddle)
	}

	// Every glyph must be plain ASCII
	for _, r := range []rune{
		style.BorderHorizontal, style.BorderVertical,
		style.CornerTopLeft, style.CornerTopRight,
		style.CornerBottomLeft, style.CornerBottomRight,
		style.Paddle, style.Ball,
	} {
		if r > 127 {
			t.Errorf("glyph %q is not ASCII", r)
		}
	}
}

func TestUnicodeStyle(t *testing.T) {
	style := UnicodeStyle()

	if !style.Unicode {
		t.Error("unicode style must set the Unicode flag")
	}
	if style.Ball != '●' || style.Paddle != '█' {
		t.Errorf("unexpected unicode glyphs: ball %q, paddle %q", style.Ball, style.Paddle)
	}
}
