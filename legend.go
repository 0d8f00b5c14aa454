// Package tabstaff models four-string bass tablature as notes, slices,
// measures and songs. The tab package parses tab text into this model and the
// staff package engraves the model back out as aligned staff text.
package tabstaff

import (
	"fmt"
	"unicode"
)

// NoTiming is the duration symbol of a slice whose timing was never supplied.
// It maps to a zero length and is rendered with the symbol itself as glyph.
const NoTiming = '•'

type (
	// Duration is one entry of the timing legend: the fraction of a whole
	// measure the symbol stands for, plus the glyphs used when engraving a
	// played note or a rest of that duration.
	Duration struct {
		Length    float64
		NoteGlyph rune
		RestGlyph rune
	}

	// Legend holds the symbol tables governing one run: the tie and dot
	// symbols, the duration symbols, and the extra glyphs permitted inside
	// string data (hammer-ons, bends and such). A Legend is built once from
	// configuration and treated as immutable afterwards.
	Legend struct {
		Tie       rune
		Dot       rune
		Durations map[rune]Duration
		Extra     string
	}
)

// Duration entries for the eight timing symbols, whole note down to 128th.
// The glyphs are the Unicode musical note and rest symbols.
var durationTable = [8]Duration{
	{1, '\U0001D15D', '\U0001D13B'},
	{0.5, '\U0001D15E', '\U0001D13C'},
	{0.25, '\U0001D15F', '\U0001D13D'},
	{0.125, '\U0001D160', '\U0001D13E'},
	{0.0625, '\U0001D161', '\U0001D13F'},
	{0.03125, '\U0001D162', '\U0001D140'},
	{0.015625, '\U0001D163', '\U0001D141'},
	{0.0078125, '\U0001D164', '\U0001D142'},
}

// NewLegend builds a Legend from the ten-character timing symbol list (tie,
// dot, then whole note through 128th in decreasing length order) and the
// extra playing glyphs. The symbol list must consist of ten unique
// characters; playing glyphs may not be spaces or digits.
func NewLegend(timingSymbols, playingLegend string) (Legend, error) {
	syms := []rune(timingSymbols)
	if len(syms) != 10 {
		return Legend{}, &ConfigError{Option: "timingsymbols", Reason: fmt.Sprintf("must be exactly 10 characters, got %v", len(syms))}
	}
	seen := make(map[rune]bool, len(syms))
	for _, r := range syms {
		if seen[r] {
			return Legend{}, &ConfigError{Option: "timingsymbols", Reason: fmt.Sprintf("symbol %q appears more than once", string(r))}
		}
		seen[r] = true
	}
	for _, r := range playingLegend {
		if unicode.IsSpace(r) || unicode.IsDigit(r) {
			return Legend{}, &ConfigError{Option: "playinglegend", Reason: fmt.Sprintf("illegal glyph %q; cannot be whitespace or a digit", string(r))}
		}
	}
	durations := map[rune]Duration{NoTiming: {0, NoTiming, NoTiming}}
	for i, d := range durationTable {
		durations[syms[i+2]] = d
	}
	return Legend{Tie: syms[0], Dot: syms[1], Durations: durations, Extra: playingLegend}, nil
}

// IsDurationSymbol reports whether r maps to a real (non-zero) duration.
func (l Legend) IsDurationSymbol(r rune) bool {
	d, ok := l.Durations[r]
	return ok && d.Length > 0
}

// IsTimingChar reports whether r may appear on a duration line.
func (l Legend) IsTimingChar(r rune) bool {
	return unicode.IsSpace(r) || r == l.Tie || r == l.Dot || l.IsDurationSymbol(r)
}

// IsPlayingChar reports whether r may appear inside the bar-delimited segment
// of a string-data line.
func (l Legend) IsPlayingChar(r rune) bool {
	if r >= '0' && r <= '9' || r == '-' || r == '|' {
		return true
	}
	for _, e := range l.Extra {
		if r == e {
			return true
		}
	}
	return false
}
