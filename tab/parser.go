package tab

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/tabstaff/tabstaff"
)

// Options carries the per-run settings the parser needs. Zero values match
// the strictest mode: no duration lines and no tolerance for extra text.
type Options struct {
	Legend         tabstaff.Legend
	TimingSupplied bool // a duration line sits above every four string lines
	HasExtraText   bool // unrecognized lines are extra text, not errors
	KeepExtraText  bool // carry extra text through to the rendered staff
	TabWidth       int  // tab stop width used by Normalize
	GapSize        int  // staff columns between adjacent slices
}

// Parse consumes the normalized input lines in order and builds a Song.
func Parse(lines []string, opts Options) (*tabstaff.Song, error) {
	p := &parser{
		opts: opts,
		cls:  NewClassifier(opts.Legend),
		song: tabstaff.NewSong(opts.Legend, opts.GapSize),
		last: tabstaff.NewSlice(),
	}
	group := 4
	if opts.TimingSupplied {
		group = 5
	}
	for i, raw := range lines {
		p.lineNo = i + 1
		line := Normalize(raw, opts.TabWidth)
		if line == "" {
			// blank lines between systems keep their place in the output
			if p.recognized%group == 0 {
				p.song.PlaceExtraText(p.song.NumMeasures(), tabstaff.FollowingLine, " ")
			}
			continue
		}
		if err := p.feed(line); err != nil {
			return nil, err
		}
	}
	if p.recognized%group != 0 {
		return nil, &tabstaff.FormatError{Summary: "incomplete final system",
			Detail: fmt.Sprintf("%v lines were read as tab data, which is not a multiple of %v", p.recognized, group)}
	}
	return p.song, nil
}

type parser struct {
	opts Options
	cls  *Classifier
	song *tabstaff.Song
	last *tabstaff.Slice // most recent slice, target for ties

	lineNo     int // 1-based physical line currently being read
	recognized int // lines accepted as duration or string data so far

	duration     []rune
	durationLine int
	strings      [4][]rune
	stringLine [4]int // physical line numbers of the collected string lines
	startText  string // same-line text to the left of the current system
	endText    string // same-line text to the right of the current system
}

// feed routes one non-blank line to the slot the current system expects.
func (p *parser) feed(line string) error {
	if p.opts.TimingSupplied && p.recognized%5 == 0 {
		if p.opts.HasExtraText && !p.cls.IsDurationLine(line) {
			if p.opts.KeepExtraText {
				p.song.PlaceExtraText(p.song.NumMeasures(), tabstaff.FollowingLine, line)
			}
			return nil
		}
		p.duration = []rune(line)
		p.durationLine = p.lineNo
		p.recognized++
		return nil
	}

	idx := p.recognized % 4
	if p.opts.TimingSupplied {
		idx = p.recognized%5 - 1
	}
	want := tabstaff.StringNames[idx]
	data, ok, err := p.cls.SplitStringLine(line, want, p.lineNo)
	if err != nil {
		return err
	}
	if !ok {
		if !p.opts.HasExtraText {
			return &tabstaff.FormatError{Summary: "unrecognized line",
				Detail: "no string data found where a " + string(want) + " string line was expected", Line: p.lineNo}
		}
		if p.opts.KeepExtraText {
			if !p.opts.TimingSupplied && idx == 0 {
				// not inside a system yet, the text stands on its own line
				p.song.PlaceExtraText(p.song.NumMeasures(), tabstaff.FollowingLine, line)
			} else {
				p.song.PlaceExtraText(p.song.NumMeasures()+1, tabstaff.StartOfLine, line)
			}
		}
		return nil
	}
	if !p.opts.HasExtraText && (hasText(data.Pre) || hasText(data.Post)) {
		return &tabstaff.FormatError{Summary: "unexpected text",
			Detail: "text around the string data is not allowed without hasextratext", Line: p.lineNo}
	}
	if p.opts.KeepExtraText {
		p.startText = joinFragments(p.startText, data.Pre)
		p.endText = joinFragments(p.endText, data.Post)
	}
	p.strings[idx] = []rune(data.Segment)
	p.stringLine[idx] = p.lineNo
	if idx == 0 {
		p.alignDuration(data.Offset)
	}
	p.recognized++
	if idx == 3 {
		return p.finishSystem()
	}
	return nil
}

func hasText(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// joinFragments folds a new fragment of same-line extra text into the
// accumulated text for the current system.
func joinFragments(acc, fragment string) string {
	fragment = trimSpace(fragment)
	if fragment == "" {
		return acc
	}
	if acc != "" {
		acc += tabstaff.ExtraTextDelimiter + " "
	}
	return acc + fragment
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && s[start] == ' ' {
		start++
	}
	for end > start && s[end-1] == ' ' {
		end--
	}
	return s[start:end]
}

// alignDuration drops the duration cells that sit left of the G segment and
// pads the remainder with spaces to the segment's length. The lengths are
// checked once the whole system is in.
func (p *parser) alignDuration(offset int) {
	if !p.opts.TimingSupplied {
		return
	}
	if offset >= len(p.duration) {
		p.duration = p.duration[:0]
	} else {
		p.duration = p.duration[offset:]
	}
	for len(p.duration) < len(p.strings[0]) {
		p.duration = append(p.duration, ' ')
	}
}

// finishSystem validates the collected system, flushes its surrounding
// extra text and scans its columns into measures.
func (p *parser) finishSystem() error {
	g, d, a, e := p.strings[0], p.strings[1], p.strings[2], p.strings[3]
	if len(d) != len(g) || len(a) != len(g) || len(e) != len(g) ||
		(p.opts.TimingSupplied && len(p.duration) != len(g)) {
		return &tabstaff.FormatError{Summary: "system lines not aligned",
			Detail: fmt.Sprintf("string segments of lengths %v, %v, %v and %v must all match (duration line: %v)",
				len(g), len(d), len(a), len(e), len(p.duration)), Line: p.lineNo}
	}
	if p.startText != "" {
		if p.song.HasExtraTextAt(p.song.NumMeasures()+1, tabstaff.StartOfLine) {
			p.startText = "\n" + p.startText
		}
		p.song.PlaceExtraText(p.song.NumMeasures()+1, tabstaff.StartOfLine, p.startText)
	}
	p.startText = ""
	if err := p.parseSystem(); err != nil {
		return err
	}
	if p.endText != "" {
		p.song.PlaceExtraText(p.song.NumMeasures(), tabstaff.EndOfLine, p.endText)
	}
	p.endText = ""
	p.duration = nil
	p.strings = [4][]rune{}
	return nil
}

// kinds of things one aligned column can turn out to be
type columnKind int

const (
	columnFiller columnKind = iota // dashes or playing glyphs, nothing to keep
	columnBar                      // a measure line across all four strings
	columnNotes                    // a slice holding at least one note
	columnRest                     // a timed slice with no notes
)

type column struct {
	kind    columnKind
	slice   *tabstaff.Slice
	advance int  // columns consumed, always at least 1
	tied    bool // the tie symbol immediately precedes the duration symbol
}

// parseSystem walks the aligned columns of the current system, growing the
// song measure by measure. A trailing measure without a closing bar is
// dropped, matching the convention that every measure is bar-terminated.
func (p *parser) parseSystem() error {
	measure := &tabstaff.Measure{}
	for i := 0; i < len(p.strings[0]); {
		col, err := p.scanColumn(i)
		if err != nil {
			return err
		}
		switch col.kind {
		case columnBar:
			if !measure.IsEmpty() {
				if err := p.song.AddMeasure(measure); err != nil {
					return atLineCol(err, p.stringLine[0], i+1)
				}
				measure = &tabstaff.Measure{}
			}
		case columnNotes:
			if col.tied {
				if err := p.last.Tie(col.slice); err != nil {
					return atLineCol(err, p.stringLine[0], i+1)
				}
			}
			measure.AddSlice(col.slice)
			p.last = col.slice
		case columnRest:
			measure.AddSlice(col.slice)
			p.last = col.slice
		}
		i += col.advance
	}
	return nil
}

// scanColumn reads one aligned column, together with any dot columns and
// the second digit of a two-digit fret, and decides what it holds.
func (p *parser) scanColumn(i int) (column, error) {
	leg := p.opts.Legend
	col := column{advance: 1}
	slice := tabstaff.NewSlice()
	timed := false
	dots := 0
	if len(p.duration) > 0 && leg.IsDurationSymbol(p.duration[i]) {
		timed = true
		if err := slice.SetLength(p.duration[i], leg); err != nil {
			return col, atLineCol(err, p.durationLine, i+1)
		}
		for j := i + 1; j < len(p.duration) && p.duration[j] == leg.Dot; j++ {
			if err := slice.ApplyDot(); err != nil {
				return col, atLineCol(err, p.durationLine, j+1)
			}
			dots++
		}
		col.tied = i > 0 && p.duration[i-1] == leg.Tie
	}
	twoDigit := false
	if timed || len(p.duration) == 0 {
		for k := range p.strings {
			skip, err := p.parseFret(k, i, slice)
			if err != nil {
				return col, err
			}
			if skip {
				twoDigit = true
			}
		}
	}
	// dot columns take precedence over the two-digit skip: a dotted column
	// cannot also start a two-digit fret on the very next column
	switch {
	case dots > 0:
		col.advance = 1 + dots
	case twoDigit:
		col.advance = 2
	}
	col.slice = slice
	switch {
	case !slice.IsEmpty():
		col.kind = columnNotes
	case slice.IsRest():
		col.kind = columnRest
	default:
		bars := 0
		for k := range p.strings {
			if p.strings[k][i] == '|' {
				bars++
			}
		}
		if bars > 0 && bars < 4 {
			return col, &tabstaff.FormatError{Summary: "misaligned measure line",
				Detail: "a measure line must cross all four strings in the same column",
				Line: p.stringLine[0], Col: i + 1}
		}
		if bars == 4 {
			col.kind = columnBar
		} else {
			col.kind = columnFiller
		}
	}
	return col, nil
}

// parseFret reads a fret number for string k at column i, if one starts
// there. skip is true when the fret spans two digit columns.
func (p *parser) parseFret(k, i int, slice *tabstaff.Slice) (bool, error) {
	str := p.strings[k]
	if !unicode.IsDigit(str[i]) {
		return false, nil
	}
	fret := int(str[i] - '0')
	skip := false
	if i+1 < len(str) && unicode.IsDigit(str[i+1]) {
		fret = fret*10 + int(str[i+1]-'0')
		skip = true
	}
	if err := slice.AddNote(tabstaff.StringNames[k], fret); err != nil {
		return false, atLineCol(err, p.stringLine[k], i+1)
	}
	return skip, nil
}

// atLineCol fills in position context on a FormatError that lacks it.
func atLineCol(err error, line, col int) error {
	var fe *tabstaff.FormatError
	if errors.As(err, &fe) {
		if fe.Line == 0 {
			fe.Line = line
		}
		if fe.Col == 0 {
			fe.Col = col
		}
	}
	return err
}
