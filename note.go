package tabstaff

import "fmt"

// StringName identifies one of the four strings of a standard-tuned bass.
type StringName rune

const (
	StringG StringName = 'G'
	StringD StringName = 'D'
	StringA StringName = 'A'
	StringE StringName = 'E'
)

// StringNames lists the strings in the order their lines appear in a system,
// highest first.
var StringNames = [4]StringName{StringG, StringD, StringA, StringE}

// MaxFret is the highest fret a note may use.
const MaxFret = 36

// Chromatic step names from the open E string upwards; two-character names
// are the sharps. diatonicCounts gives the staff-position increment of each
// chromatic step, so that twelve half steps always advance seven positions.
var (
	chromaticOrder = [12]string{"E", "F", "F#", "G", "G#", "A", "A#", "B", "C", "C#", "D", "D#"}
	diatonicCounts = [12]int{0, 1, 1, 2, 2, 3, 3, 4, 5, 5, 6, 6}
)

// Note is a single played pitch in both its tab representation (string and
// fret) and its staff representation. StaffPos counts staff positions up from
// the lowest open string; a negative value marks the note as a sharp.
type Note struct {
	String   StringName
	Fret     int
	StaffPos int
}

func stringOffset(s StringName) (int, bool) {
	switch s {
	case StringE:
		return 0, true
	case StringA:
		return 5, true
	case StringD:
		return 10, true
	case StringG:
		return 15, true
	}
	return 0, false
}

// NewNote converts a string-fret pair into its staff representation.
func NewNote(s StringName, fret int) (Note, error) {
	if fret < 0 || fret > MaxFret {
		return Note{}, &FormatError{Summary: "invalid fret value", Detail: fmt.Sprintf("fret cannot be %v, it must be an integer in the range [0, %v]", fret, MaxFret)}
	}
	offset, ok := stringOffset(s)
	if !ok {
		return Note{}, &FormatError{Summary: "invalid string name", Detail: fmt.Sprintf("%q is not a valid string id", string(s))}
	}
	halfsteps := fret + offset
	pos := halfsteps/12*7 + diatonicCounts[halfsteps%12]
	if len(chromaticOrder[halfsteps%12]) == 2 {
		pos = -pos
	}
	return Note{String: s, Fret: fret, StaffPos: pos}, nil
}

// IsSharp reports whether the note is a sharp.
func (n Note) IsSharp() bool {
	return n.StaffPos < 0
}

// AbsPos returns the unsigned staff position, which is the note's row
// distance from the lowest open string regardless of accidentals.
func (n Note) AbsPos() int {
	if n.StaffPos < 0 {
		return -n.StaffPos
	}
	return n.StaffPos
}

// Pitch returns the note's MIDI key number; the open E string is E1 (28).
func (n Note) Pitch() int {
	offset, _ := stringOffset(n.String)
	return 28 + offset + n.Fret
}

// Equal reports whether two notes occupy the same staff position.
func (n Note) Equal(o Note) bool {
	return n.StaffPos == o.StaffPos
}
