// Package midi exports a parsed song as a Standard MIDI File so the
// transcription can be proof-listened.
package midi

import (
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/tabstaff/tabstaff"
)

const (
	ticksPerQuarter = 960
	wholeTicks      = 4 * ticksPerQuarter
	channel         = 0
	velocity        = 100
	tempoBPM        = 120
)

// Export writes the song as a single-track SMF stream. Untimed slices get a
// quarter note's duration, runs of tied slices merge into one sustained
// note, and rests advance time without sounding.
func Export(song *tabstaff.Song, w io.Writer) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(tempoBPM))

	slices := flatten(song)
	rest := uint32(0) // silent ticks accumulated since the last event
	for i := 0; i < len(slices); {
		first := slices[i]
		ticks := sliceTicks(first)
		j := i + 1
		for j < len(slices) && slices[j-1].TieBegins && slices[j].TieEnds {
			ticks += sliceTicks(slices[j])
			j++
		}
		if first.IsEmpty() {
			rest += ticks
			i = j
			continue
		}
		for k, n := range first.Notes {
			delta := uint32(0)
			if k == 0 {
				delta = rest
			}
			tr.Add(delta, midi.NoteOn(channel, uint8(n.Pitch()), velocity))
		}
		for k, n := range first.Notes {
			delta := uint32(0)
			if k == 0 {
				delta = ticks
			}
			tr.Add(delta, midi.NoteOff(channel, uint8(n.Pitch())))
		}
		rest = 0
		i = j
	}
	tr.Close(0)
	s.Add(tr)
	_, err := s.WriteTo(w)
	return err
}

func flatten(song *tabstaff.Song) []*tabstaff.Slice {
	var out []*tabstaff.Slice
	for _, m := range song.Measures {
		out = append(out, m.Slices...)
	}
	return out
}

func sliceTicks(s *tabstaff.Slice) uint32 {
	if s.Length == 0 {
		return ticksPerQuarter
	}
	return uint32(s.Length*wholeTicks + 0.5)
}
