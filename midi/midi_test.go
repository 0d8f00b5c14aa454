package midi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/tabstaff/tabstaff"
)

func testSong(t *testing.T) *tabstaff.Song {
	t.Helper()
	legend, err := tabstaff.NewLegend("+.WHQESTFO", "")
	require.NoError(t, err)
	return tabstaff.NewSong(legend, 3)
}

func addMeasure(t *testing.T, song *tabstaff.Song, slices ...*tabstaff.Slice) {
	t.Helper()
	m := &tabstaff.Measure{}
	for _, s := range slices {
		m.AddSlice(s)
	}
	require.NoError(t, song.AddMeasure(m))
}

// readNotes parses the exported bytes back and collects note on/off events
// with their absolute tick times.
func readNotes(t *testing.T, data []byte) (ons, offs []uint8, onTicks, offTicks []uint32) {
	t.Helper()
	s, err := smf.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, s.Tracks, 1)
	var abs uint32
	for _, ev := range s.Tracks[0] {
		abs += ev.Delta
		var ch, key, vel uint8
		if ev.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
			ons = append(ons, key)
			onTicks = append(onTicks, abs)
		} else if ev.Message.GetNoteOff(&ch, &key, &vel) || ev.Message.GetNoteOn(&ch, &key, &vel) {
			offs = append(offs, key)
			offTicks = append(offTicks, abs)
		}
	}
	return ons, offs, onTicks, offTicks
}

func TestExportHeader(t *testing.T) {
	song := testSong(t)
	var buf bytes.Buffer
	require.NoError(t, Export(song, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("MThd")))
}

func TestExportNotes(t *testing.T) {
	song := testSong(t)
	open := tabstaff.NewSlice()
	require.NoError(t, open.AddNote(tabstaff.StringE, 0))
	second := tabstaff.NewSlice()
	require.NoError(t, second.AddNote(tabstaff.StringA, 2))
	addMeasure(t, song, open, second)

	var buf bytes.Buffer
	require.NoError(t, Export(song, &buf))
	ons, _, onTicks, _ := readNotes(t, buf.Bytes())
	require.Equal(t, []uint8{28, 35}, ons)
	// untimed slices default to a quarter note apart
	assert.Equal(t, []uint32{0, 960}, onTicks)
}

func TestExportChordSoundsTogether(t *testing.T) {
	song := testSong(t)
	chord := tabstaff.NewSlice()
	require.NoError(t, chord.AddNote(tabstaff.StringG, 2))
	require.NoError(t, chord.AddNote(tabstaff.StringD, 2))
	addMeasure(t, song, chord)

	var buf bytes.Buffer
	require.NoError(t, Export(song, &buf))
	ons, _, onTicks, _ := readNotes(t, buf.Bytes())
	require.Len(t, ons, 2)
	assert.Equal(t, onTicks[0], onTicks[1])
}

func TestExportTiedNotesMerge(t *testing.T) {
	legend, err := tabstaff.NewLegend("+.WHQESTFO", "")
	require.NoError(t, err)
	song := tabstaff.NewSong(legend, 3)
	a := tabstaff.NewSlice()
	require.NoError(t, a.AddNote(tabstaff.StringG, 0))
	require.NoError(t, a.SetLength('Q', legend))
	b := tabstaff.NewSlice()
	require.NoError(t, b.AddNote(tabstaff.StringG, 0))
	require.NoError(t, b.SetLength('Q', legend))
	require.NoError(t, a.Tie(b))
	addMeasure(t, song, a, b)

	var buf bytes.Buffer
	require.NoError(t, Export(song, &buf))
	ons, offs, _, offTicks := readNotes(t, buf.Bytes())
	require.Len(t, ons, 1, "tied slices should merge into one note")
	require.Len(t, offs, 1)
	// two tied quarters sustain for a half note
	assert.Equal(t, uint32(1920), offTicks[0])
}

func TestExportRestsAdvanceTime(t *testing.T) {
	legend, err := tabstaff.NewLegend("+.WHQESTFO", "")
	require.NoError(t, err)
	song := tabstaff.NewSong(legend, 3)
	rest := tabstaff.NewSlice()
	require.NoError(t, rest.SetLength('H', legend))
	note := tabstaff.NewSlice()
	require.NoError(t, note.AddNote(tabstaff.StringD, 0))
	require.NoError(t, note.SetLength('Q', legend))
	addMeasure(t, song, rest, note)

	var buf bytes.Buffer
	require.NoError(t, Export(song, &buf))
	ons, _, onTicks, _ := readNotes(t, buf.Bytes())
	require.Len(t, ons, 1)
	assert.Equal(t, uint32(1920), onTicks[0], "a half rest should delay the note by half a whole")
}
