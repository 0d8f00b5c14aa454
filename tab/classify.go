// Package tab parses plain-text bass tablature into the tabstaff music
// model. Input lines are classified one by one (duration line, string-data
// line or extra text), collected into systems of four string lines with an
// optional duration line on top, and each completed system is walked column
// by column to build slices and measures.
package tab

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tabstaff/tabstaff"
)

// Normalize strips trailing whitespace from a raw input line and expands
// tabs at the given width, honouring tab stops, so that the columns of a
// system line up no matter how the file was edited.
func Normalize(line string, tabWidth int) string {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	if tabWidth <= 0 || !strings.ContainsRune(line, '\t') {
		return strings.ReplaceAll(line, "\t", "")
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

// StringData is the outcome of classifying a line as string data: the
// bar-delimited segment plus whatever text surrounded it.
type StringData struct {
	Pre     string // text found before the segment, string label stripped
	Segment string // the |...| run, bars included
	Post    string // text found after the segment
	Offset  int    // column of the segment start in the normalized line
}

// Classifier decides what role a normalized input line plays. It is built
// once per run from the legend, since the permitted string-data characters
// depend on the configured playing glyphs.
type Classifier struct {
	legend  tabstaff.Legend
	segment *regexp.Regexp
}

// NewClassifier compiles the string-data pattern for the given legend.
func NewClassifier(legend tabstaff.Legend) *Classifier {
	// anything without a bar, then the first bar-delimited run of playing
	// characters, then the rest of the line
	expr := `^([^|]*)(\|[0-9\-|` + charClass(legend.Extra) + `]+\|)(.*)$`
	return &Classifier{legend: legend, segment: regexp.MustCompile(expr)}
}

// charClass escapes s for literal use inside a regexp character class.
func charClass(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', ']', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsDurationLine reports whether every character of the line may appear on a
// duration line: whitespace, the tie or dot symbol, or a duration symbol.
// The caller is expected to weed out all-whitespace lines first.
func (c *Classifier) IsDurationLine(line string) bool {
	for _, r := range line {
		if !c.legend.IsTimingChar(r) {
			return false
		}
	}
	return true
}

// SplitStringLine extracts the first bar-delimited segment from the line. A
// single letter standing alone or right after whitespace at the end of the
// leading text is the redundant string label: it must match want and is
// stripped from Pre. ok is false when the line holds no segment at all.
func (c *Classifier) SplitStringLine(line string, want tabstaff.StringName, lineNo int) (StringData, bool, error) {
	m := c.segment.FindStringSubmatch(line)
	if m == nil {
		return StringData{}, false, nil
	}
	pre, err := stripStringLabel(m[1], want, lineNo)
	if err != nil {
		return StringData{}, false, err
	}
	return StringData{Pre: pre, Segment: m[2], Post: m[3], Offset: len([]rune(m[1]))}, true, nil
}

func stripStringLabel(text string, want tabstaff.StringName, lineNo int) (string, error) {
	rs := []rune(text)
	if len(rs) == 0 {
		return text, nil
	}
	last := rs[len(rs)-1]
	if !unicode.IsLetter(last) {
		return text, nil
	}
	if len(rs) > 1 && !unicode.IsSpace(rs[len(rs)-2]) {
		// the letter is part of a longer word of extra text
		return text, nil
	}
	if unicode.ToUpper(last) != rune(want) {
		return "", &tabstaff.FormatError{Summary: "invalid string name",
			Detail: "unexpected string name " + string(last) + ", expected " + string(want), Line: lineNo}
	}
	return string(rs[:len(rs)-1]), nil
}
