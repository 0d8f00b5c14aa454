package staff

import (
	"fmt"
	"strings"

	"github.com/tabstaff/tabstaff"
)

const (
	sharpGlyph = '♯'
	dotGlyph   = '·'
	tieGlyph   = '_'

	// Rests sit on the middle staff line regardless of the notes around them.
	restRow = ClefBottom - 4
)

// RenderSlice engraves one slice into a fresh buffer. The width is fixed
// first (three base columns, one more per sharp, one per dot), then ledger
// lines, note glyphs and tie marks are written into the rows.
func RenderSlice(s *tabstaff.Slice, legend tabstaff.Legend) *Buffer {
	b := NewColumn()
	b.Union(NewColumn())
	b.Union(NewColumn())
	if s.HasSharp() {
		b.Union(NewColumn())
	}
	for d := 0; d < s.Dots; d++ {
		b.Union(NewColumn())
	}
	fillLedgerLines(b, s)
	loadNotes(b, s, legend)
	attachTies(b, s)
	return b
}

// fillLedgerLines draws ledger lines every other row between the extreme
// note rows and the clef span. Notes inside the span draw nothing.
func fillLedgerLines(b *Buffer, s *tabstaff.Slice) {
	ledger := make([]rune, b.width)
	for i := range ledger {
		ledger[i] = '-'
	}
	maxPos, minPos := s.MaxPos(), s.MinPos()
	if minPos < 0 {
		minPos = Height
	}
	i := Height - 1 - maxPos
	if i%2 != 0 {
		i++
	}
	for ; i < ClefTop; i += 2 {
		b.setRow(i, ledger)
	}
	j := Height - 1 - minPos
	if j%2 != 0 {
		j--
	}
	for ; j > ClefBottom; j -= 2 {
		b.setRow(j, ledger)
	}
}

func loadNotes(b *Buffer, s *tabstaff.Slice, legend tabstaff.Legend) {
	dur := legend.Durations[s.Symbol]
	if s.IsRest() {
		row := []rune{'-', dur.RestGlyph}
		for d := 0; d < s.Dots; d++ {
			row = append(row, dotGlyph)
		}
		row = append(row, '-')
		b.setRow(restRow, row)
		return
	}
	for _, n := range s.Notes {
		// leading pad is a dash when the note sits on a staff line (even
		// position) and a space when it sits in a space
		pad := ' '
		if n.AbsPos()%2 == 0 {
			pad = '-'
		}
		row := make([]rune, 0, b.width)
		row = append(row, pad, dur.NoteGlyph)
		if n.IsSharp() {
			row = append(row, sharpGlyph)
		}
		for d := 0; d < s.Dots; d++ {
			row = append(row, dotGlyph)
		}
		for len(row) < b.width {
			row = append(row, pad)
		}
		b.setRow(Height-1-n.AbsPos(), row)
	}
}

// attachTies overwrites the trailing pad of a tie-beginning slice and the
// leading pad of a tie-ending slice on every note row.
func attachTies(b *Buffer, s *tabstaff.Slice) {
	for _, n := range s.Notes {
		i := Height - 1 - n.AbsPos()
		if s.TieBegins {
			b.rows[i][b.width-1] = tieGlyph
		}
		if s.TieEnds {
			b.rows[i][0] = tieGlyph
		}
	}
}

// RenderMeasure engraves the slices of a measure left to right, inserting
// gapSize empty staff columns between adjacent slices. No gap follows a
// slice that begins a tie, so tied notes touch across the gap.
func RenderMeasure(m *tabstaff.Measure, gapSize int, legend tabstaff.Legend) *Buffer {
	b := New()
	for i, s := range m.Slices {
		b.Union(RenderSlice(s, legend))
		if !s.TieBegins && i+1 < len(m.Slices) {
			for g := 0; g < gapSize; g++ {
				b.Union(NewColumn())
			}
		}
	}
	return b
}

// RenderSong lays the whole song out as flat text. Measures are separated by
// bar lines, the song opens and closes with double bars, and extra text is
// spliced into the output at its recorded placements, flushing the pending
// buffer at each splice point. Rendering the same song twice yields
// byte-identical output.
func RenderSong(song *tabstaff.Song) (string, error) {
	if song.ExtraTextEntries() > song.NumMeasures()+1 {
		return "", &tabstaff.FormatError{Summary: "extra text loading failure",
			Detail: fmt.Sprintf("the extra text index holds %v entries, it must not exceed %v", song.ExtraTextEntries(), song.NumMeasures()+1)}
	}
	var out strings.Builder
	buf := New()
	if song.HasExtraTextAt(0, tabstaff.FollowingLine) {
		out.WriteString(song.ExtraTextAt(0, tabstaff.FollowingLine))
		out.WriteByte('\n')
	}
	if song.NumMeasures() == 0 {
		// nothing but the opening and closing double bars
		for k := 0; k < 4; k++ {
			buf.Union(NewColumnOf('|'))
		}
	}
	for i := 0; i < song.NumMeasures(); i++ {
		if song.HasExtraTextAt(i+1, tabstaff.StartOfLine) {
			out.WriteString(song.ExtraTextAt(i+1, tabstaff.StartOfLine))
			out.WriteByte('\n')
		}
		if i == 0 {
			buf.Union(NewColumnOf('|'))
			buf.Union(NewColumnOf('|'))
		}
		buf.Union(RenderMeasure(song.Measures[i], song.GapSize, song.Legend))
		buf.Union(NewColumnOf('|'))
		if i == song.NumMeasures()-1 {
			buf.Union(NewColumnOf('|'))
		}
		if song.HasExtraTextAt(i+1, tabstaff.EndOfLine) || song.HasExtraTextAt(i+1, tabstaff.FollowingLine) {
			out.WriteString(buf.String())
			out.WriteByte('\n')
			if song.HasExtraTextAt(i+1, tabstaff.EndOfLine) {
				out.WriteString(song.ExtraTextAt(i+1, tabstaff.EndOfLine))
				out.WriteByte('\n')
			}
			if song.HasExtraTextAt(i+1, tabstaff.FollowingLine) {
				out.WriteString(song.ExtraTextAt(i+1, tabstaff.FollowingLine))
				out.WriteByte('\n')
			}
			// resume from a fresh bar column so later measures stay attached
			// to a bar line
			buf = NewColumnOf('|')
		}
	}
	if buf.Width() > 1 {
		out.WriteString(buf.String())
	}
	return out.String(), nil
}
