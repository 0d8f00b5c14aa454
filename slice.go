package tabstaff

import "fmt"

// Slice is a group of notes sounding together for one duration unit. Notes
// are kept in insertion order, which is string order G, D, A, E. A slice is
// built up by the parser while scanning one column group and is frozen once
// appended to a measure.
type Slice struct {
	Notes     []Note
	Symbol    rune
	Length    float64
	Dots      int
	TieBegins bool
	TieEnds   bool

	nextDot float64
}

// NewSlice returns an empty, untimed slice.
func NewSlice() *Slice {
	return &Slice{Symbol: NoTiming}
}

// AddNote appends the note played on the given string at the given fret.
func (s *Slice) AddNote(name StringName, fret int) error {
	n, err := NewNote(name, fret)
	if err != nil {
		return err
	}
	s.Notes = append(s.Notes, n)
	return nil
}

// SetLength sets the slice duration from a legend symbol.
func (s *Slice) SetLength(symbol rune, legend Legend) error {
	d, ok := legend.Durations[symbol]
	if !ok || d.Length == 0 {
		return &FormatError{Summary: "symbol not recognized", Detail: fmt.Sprintf("%q is not a valid duration symbol", string(symbol))}
	}
	s.Symbol = symbol
	s.Length = d.Length
	s.nextDot = d.Length / 2
	return nil
}

// ApplyDot extends the duration by half of the previous increment. The slice
// must already have a duration for a dot to apply.
func (s *Slice) ApplyDot() error {
	if s.Symbol == NoTiming {
		return &FormatError{Summary: "dot without duration", Detail: "a dot can only follow a duration symbol"}
	}
	s.Dots++
	s.Length += s.nextDot
	s.nextDot /= 2
	return nil
}

// IsEmpty reports whether the slice holds no notes.
func (s *Slice) IsEmpty() bool {
	return len(s.Notes) == 0
}

// IsRest reports whether the slice has a duration but no notes.
func (s *Slice) IsRest() bool {
	return s.IsEmpty() && s.Length != 0
}

// HasSharp reports whether any note in the slice is a sharp.
func (s *Slice) HasSharp() bool {
	for _, n := range s.Notes {
		if n.IsSharp() {
			return true
		}
	}
	return false
}

// MaxPos returns the largest unsigned staff position in the slice, or -1 when
// the slice is empty.
func (s *Slice) MaxPos() int {
	max := -1
	for _, n := range s.Notes {
		if p := n.AbsPos(); p > max {
			max = p
		}
	}
	return max
}

// MinPos returns the smallest unsigned staff position in the slice, or -1
// when the slice is empty.
func (s *Slice) MinPos() int {
	min := -1
	for _, n := range s.Notes {
		if p := n.AbsPos(); min < 0 || p < min {
			min = p
		}
	}
	return min
}

// Tie links this slice to the slice sounding right after it. The two slices
// must hold pairwise equal notes in the same order.
func (s *Slice) Tie(next *Slice) error {
	if len(s.Notes) != len(next.Notes) {
		return &FormatError{Summary: "tie operands differ", Detail: fmt.Sprintf("cannot tie slices holding %v and %v notes", len(s.Notes), len(next.Notes))}
	}
	for i := range s.Notes {
		if !s.Notes[i].Equal(next.Notes[i]) {
			return &FormatError{Summary: "tie operands differ", Detail: fmt.Sprintf("%v-string fret %v and %v-string fret %v are different notes",
				string(s.Notes[i].String), s.Notes[i].Fret, string(next.Notes[i].String), next.Notes[i].Fret)}
		}
	}
	s.TieBegins = true
	next.TieEnds = true
	return nil
}
