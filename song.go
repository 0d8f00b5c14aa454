package tabstaff

import "fmt"

// Placement locates a piece of extra (non-musical) text relative to a measure
// index.
type Placement int

const (
	// FollowingLine is text on its own line after the measure's system.
	FollowingLine Placement = iota
	// StartOfLine is text found before string data, on the same line.
	StartOfLine
	// EndOfLine is text found after string data, on the same line.
	EndOfLine
)

// ExtraTextDelimiter separates same-line extra text fragments collected from
// the four string lines of one system.
const ExtraTextDelimiter = ";"

// Floating point slack allowed when checking measure lengths against a whole
// bar, so that chains of dotted durations do not trip the check.
const lengthTolerance = 1e-9

// Song is an ordered list of measures plus the side channel of extra text
// found interleaved with the tab data. The legend tables are attached at
// construction and immutable for the remainder of a run.
type Song struct {
	Legend   Legend
	GapSize  int
	Measures []*Measure

	// extra[i] holds the text around the i'th measure boundary: entry 0 the
	// text following measure i on its own line, entry 1 the same-line text
	// before measure i, entry 2 the same-line text after it. The slice never
	// grows past NumMeasures()+1 entries for a well-formed song.
	extra [][3]string
}

// NewSong returns an empty song carrying the given legend and gap size.
func NewSong(legend Legend, gapSize int) *Song {
	return &Song{Legend: legend, GapSize: gapSize}
}

// AddMeasure appends a completed measure. Its length must fit one bar.
func (s *Song) AddMeasure(m *Measure) error {
	if m.Length > 1+lengthTolerance || m.Length < -lengthTolerance {
		return &FormatError{Summary: "invalid measure length",
			Detail: fmt.Sprintf("%v is not a valid measure length; %v measures were built successfully", m.Length, len(s.Measures))}
	}
	s.Measures = append(s.Measures, m)
	return nil
}

// NumMeasures returns the number of measures in the song.
func (s *Song) NumMeasures() int {
	return len(s.Measures)
}

// PlaceExtraText records a line of non-musical text at a measure index for
// the given placement. Text recorded for a FollowingLine placement that
// already holds text starts a new line.
func (s *Song) PlaceExtraText(measure int, place Placement, text string) {
	for measure >= len(s.extra) {
		s.extra = append(s.extra, [3]string{})
	}
	if place == FollowingLine && s.extra[measure][FollowingLine] != "" {
		s.extra[measure][FollowingLine] += "\n"
	}
	s.extra[measure][place] += text
}

// ExtraTextAt returns the extra text recorded at a measure index for the
// given placement, or the empty string when none was recorded.
func (s *Song) ExtraTextAt(measure int, place Placement) string {
	if measure < 0 || measure >= len(s.extra) {
		return ""
	}
	return s.extra[measure][place]
}

// HasExtraTextAt reports whether non-empty extra text was recorded at a
// measure index for the given placement.
func (s *Song) HasExtraTextAt(measure int, place Placement) bool {
	return s.ExtraTextAt(measure, place) != ""
}

// ExtraTextEntries returns the number of measure indices holding extra text
// entries.
func (s *Song) ExtraTextEntries() int {
	return len(s.extra)
}
