package tabstaff

import (
	"math"
	"testing"
)

func testLegend(t *testing.T) Legend {
	t.Helper()
	l, err := NewLegend("+.WHQESTFO", "")
	if err != nil {
		t.Fatalf("NewLegend: %v", err)
	}
	return l
}

func TestSliceSetLength(t *testing.T) {
	legend := testLegend(t)
	tests := []struct {
		symbol rune
		length float64
	}{
		{'W', 1}, {'H', 0.5}, {'Q', 0.25}, {'E', 0.125},
		{'S', 0.0625}, {'T', 0.03125}, {'F', 0.015625}, {'O', 0.0078125},
	}
	for _, test := range tests {
		s := NewSlice()
		if err := s.SetLength(test.symbol, legend); err != nil {
			t.Fatalf("SetLength(%q): %v", string(test.symbol), err)
		}
		if s.Length != test.length {
			t.Errorf("SetLength(%q): length = %v, expected %v", string(test.symbol), s.Length, test.length)
		}
	}
	s := NewSlice()
	if err := s.SetLength('X', legend); err == nil {
		t.Errorf("expected error for unknown duration symbol")
	}
}

func TestSliceDots(t *testing.T) {
	legend := testLegend(t)
	s := NewSlice()
	if err := s.ApplyDot(); err == nil {
		t.Errorf("expected error for dot on an untimed slice")
	}
	if err := s.SetLength('Q', legend); err != nil {
		t.Fatalf("SetLength: %v", err)
	}
	if err := s.ApplyDot(); err != nil {
		t.Fatalf("ApplyDot: %v", err)
	}
	if math.Abs(s.Length-0.375) > 1e-12 {
		t.Errorf("dotted quarter length = %v, expected 0.375", s.Length)
	}
	if err := s.ApplyDot(); err != nil {
		t.Fatalf("ApplyDot: %v", err)
	}
	if math.Abs(s.Length-0.4375) > 1e-12 {
		t.Errorf("double dotted quarter length = %v, expected 0.4375", s.Length)
	}
	if s.Dots != 2 {
		t.Errorf("dots = %v, expected 2", s.Dots)
	}
}

func TestSliceRest(t *testing.T) {
	legend := testLegend(t)
	s := NewSlice()
	if s.IsRest() {
		t.Errorf("an untimed empty slice is not a rest")
	}
	if err := s.SetLength('H', legend); err != nil {
		t.Fatalf("SetLength: %v", err)
	}
	if !s.IsRest() {
		t.Errorf("a timed empty slice is a rest")
	}
	if err := s.AddNote(StringG, 0); err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if s.IsRest() || s.IsEmpty() {
		t.Errorf("a slice with notes is neither a rest nor empty")
	}
}

func TestSlicePositions(t *testing.T) {
	s := NewSlice()
	if s.MaxPos() != -1 || s.MinPos() != -1 {
		t.Errorf("empty slice positions = %v, %v, expected -1, -1", s.MaxPos(), s.MinPos())
	}
	s.AddNote(StringE, 0) // pos 0
	s.AddNote(StringG, 2) // pos 10
	s.AddNote(StringG, 1) // sharp, abs pos 9
	if s.MaxPos() != 10 {
		t.Errorf("MaxPos = %v, expected 10", s.MaxPos())
	}
	if s.MinPos() != 0 {
		t.Errorf("MinPos = %v, expected 0", s.MinPos())
	}
	if !s.HasSharp() {
		t.Errorf("expected HasSharp after adding G string fret 1")
	}
}

func TestSliceTie(t *testing.T) {
	a, b := NewSlice(), NewSlice()
	a.AddNote(StringA, 2)
	b.AddNote(StringA, 2)
	if err := a.Tie(b); err != nil {
		t.Fatalf("Tie: %v", err)
	}
	if !a.TieBegins || !b.TieEnds {
		t.Errorf("tie flags not set: begins=%v ends=%v", a.TieBegins, b.TieEnds)
	}

	c := NewSlice()
	c.AddNote(StringA, 3)
	if err := b.Tie(c); err == nil {
		t.Errorf("expected error tying different notes")
	}
	d := NewSlice()
	if err := c.Tie(d); err == nil {
		t.Errorf("expected error tying slices of different sizes")
	}

	// the same sound on a different string still ties
	e, f := NewSlice(), NewSlice()
	e.AddNote(StringE, 5)
	f.AddNote(StringA, 0)
	if err := e.Tie(f); err != nil {
		t.Errorf("Tie across strings: %v", err)
	}
}
