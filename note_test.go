package tabstaff

import "testing"

func TestNewNoteStaffPositions(t *testing.T) {
	tests := []struct {
		name  StringName
		fret  int
		pos   int
		sharp bool
	}{
		{StringE, 0, 0, false},  // open E, bottom of the range
		{StringE, 1, 1, false},  // F, one position up
		{StringE, 9, -5, true},  // C sharp
		{StringA, 0, 3, false},  // open A
		{StringD, 0, 6, false},  // open D
		{StringG, 0, 9, false},  // open G
		{StringG, 1, -9, true},  // G sharp
		{StringG, 2, 10, false}, // A above open G
		{StringG, 12, 16, false}, // G one octave up
		{StringG, 36, 30, false}, // highest fret
	}
	for _, test := range tests {
		n, err := NewNote(test.name, test.fret)
		if err != nil {
			t.Fatalf("NewNote(%v, %v): %v", string(test.name), test.fret, err)
		}
		if n.StaffPos != test.pos {
			t.Errorf("NewNote(%v, %v).StaffPos = %v, expected %v", string(test.name), test.fret, n.StaffPos, test.pos)
		}
		if n.IsSharp() != test.sharp {
			t.Errorf("NewNote(%v, %v).IsSharp() = %v, expected %v", string(test.name), test.fret, n.IsSharp(), test.sharp)
		}
	}
}

func TestNewNoteRejectsBadInput(t *testing.T) {
	if _, err := NewNote(StringG, MaxFret+1); err == nil {
		t.Errorf("expected error for fret beyond %v", MaxFret)
	}
	if _, err := NewNote(StringG, -1); err == nil {
		t.Errorf("expected error for negative fret")
	}
	if _, err := NewNote(StringName('X'), 0); err == nil {
		t.Errorf("expected error for unknown string name")
	}
}

func TestNotePitch(t *testing.T) {
	tests := []struct {
		name  StringName
		fret  int
		pitch int
	}{
		{StringE, 0, 28}, // midi E1
		{StringA, 0, 33},
		{StringD, 0, 38},
		{StringG, 0, 43},
		{StringG, 12, 55},
	}
	for _, test := range tests {
		n, err := NewNote(test.name, test.fret)
		if err != nil {
			t.Fatalf("NewNote(%v, %v): %v", string(test.name), test.fret, err)
		}
		if n.Pitch() != test.pitch {
			t.Errorf("NewNote(%v, %v).Pitch() = %v, expected %v", string(test.name), test.fret, n.Pitch(), test.pitch)
		}
	}
}

func TestNoteEqualBySound(t *testing.T) {
	a, _ := NewNote(StringE, 5) // A on the E string
	b, _ := NewNote(StringA, 0) // open A
	if !a.Equal(b) {
		t.Errorf("notes at the same staff position should be equal")
	}
	c, _ := NewNote(StringA, 2)
	if a.Equal(c) {
		t.Errorf("notes at different staff positions should not be equal")
	}
}
