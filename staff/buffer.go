// Package staff engraves a tabstaff.Song as aligned multi-row text. The
// central type is Buffer, a fixed-height rune grid that grows only by
// unioning further column groups onto its right edge.
package staff

import "strings"

const (
	// Height is the number of rows in a buffer, i.e. the number of staff
	// positions a bass can reach including ledger lines.
	Height = 33

	// ClefTop and ClefBottom bound the visible five-line staff inside the
	// buffer; the staff lines sit on the even rows 22, 24, 26, 28 and 30.
	// Rows outside the span carry only ledger lines and note decorations.
	ClefTop    = 22
	ClefBottom = 30
)

// Buffer is a fixed-height character grid composed horizontally. Row 0 is the
// top of the staff.
type Buffer struct {
	rows  [Height][]rune
	width int
}

// New returns an empty zero-width buffer for accumulating columns.
func New() *Buffer {
	return &Buffer{}
}

// NewColumn returns a one-column buffer holding an empty staff slice: a dash
// on the line rows of the clef span, spaces everywhere else.
func NewColumn() *Buffer {
	b := &Buffer{width: 1}
	for i := 0; i < Height; i++ {
		if i >= ClefTop && i <= ClefBottom && i%2 == 0 {
			b.rows[i] = []rune{'-'}
		} else {
			b.rows[i] = []rune{' '}
		}
	}
	return b
}

// NewColumnOf returns a one-column buffer with r on every row of the clef
// span and spaces outside it. It is used for bar lines.
func NewColumnOf(r rune) *Buffer {
	b := &Buffer{width: 1}
	for i := 0; i < Height; i++ {
		if i >= ClefTop && i <= ClefBottom {
			b.rows[i] = []rune{r}
		} else {
			b.rows[i] = []rune{' '}
		}
	}
	return b
}

// Union concatenates other onto the right edge of b, row by row. This is the
// sole way a buffer grows.
func (b *Buffer) Union(other *Buffer) {
	for i := 0; i < Height; i++ {
		b.rows[i] = append(b.rows[i], other.rows[i]...)
	}
	b.width += other.width
}

// Width returns the number of columns in the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// setRow replaces row i with a copy of row, which must match the buffer
// width.
func (b *Buffer) setRow(i int, row []rune) {
	cp := make([]rune, len(row))
	copy(cp, row)
	b.rows[i] = cp
}

func (b *Buffer) rowEmpty(i int) bool {
	return strings.TrimSpace(string(b.rows[i])) == ""
}

// String flattens the buffer, trimming empty rows above and below the
// furthest-used rows. Trimming stops at the clef bounds so the staff lines
// themselves always survive. No trailing newline is added.
func (b *Buffer) String() string {
	top := 0
	for top < ClefTop && b.rowEmpty(top) {
		top++
	}
	bottom := Height - 1
	for bottom > ClefBottom && b.rowEmpty(bottom) {
		bottom--
	}
	var out strings.Builder
	for i := top; i <= bottom; i++ {
		if i > top {
			out.WriteByte('\n')
		}
		out.WriteString(string(b.rows[i]))
	}
	return out.String()
}
