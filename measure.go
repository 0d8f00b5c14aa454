package tabstaff

// Measure is an ordered group of slices whose total duration fits one bar.
// Length is the running sum of slice lengths; untimed slices contribute zero,
// so a measure built without timing information has length zero.
type Measure struct {
	Slices []*Slice
	Length float64
}

// AddSlice appends a slice and accounts for its duration.
func (m *Measure) AddSlice(s *Slice) {
	m.Slices = append(m.Slices, s)
	m.Length += s.Length
}

// IsEmpty reports whether the measure holds no slices.
func (m *Measure) IsEmpty() bool {
	return len(m.Slices) == 0
}
