package sample

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rdevries/modechord/model"
	"github.com/stretchr/testify/assert"
)

func TestPitchOf(t *testing.T) {
	cases := []struct {
		note  model.Note
		pitch uint8
	}{
		{"C", 60},
		{"C#", 61},
		{"Db", 61},
		{"F#", 66},
		{"Bb", 70},
		{"B", 71},
	}
	for _, c := range cases {
		t.Run(c.note, func(t *testing.T) {
			p, ok := PitchOf(c.note)
			assert.True(t, ok)
			assert.Equal(t, c.pitch, p)
		})
	}

	_, ok := PitchOf("")
	assert.False(t, ok)
}

func TestPitchesSkipsPaddingSlots(t *testing.T) {
	pitches, err := Pitches(model.Notes{"C", "E", "G", "", "", "", ""})
	assert.NoError(t, err)
	assert.Equal(t, []uint8{60, 64, 67}, pitches)
}

func TestCreateBuildsSingleTrack(t *testing.T) {
	assert := assert.New(t)
	s, err := Create(model.Notes{"C", "Eb", "G", "", "", "", ""})
	assert.NoError(err)
	assert.Len(s.Tracks, 1)
	// tempo + 3 block ons + 3 block offs + 3 arpeggio on/off pairs + EOT
	assert.Len(s.Tracks[0], 14)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "C#_Major_7th.mid", Filename("C#_Major 7th"))
}

func TestWriteCatalog(t *testing.T) {
	assert := assert.New(t)
	dir := filepath.Join(t.TempDir(), "samples")
	catalog := model.Catalog{
		"C_Minor":  {"C", "Eb", "G", "", "", "", ""},
		"F_Major":  {"F", "A", "C", "", "", "", ""},
		"Bb_Major": {"Bb", "D", "F", "", "", "", ""},
	}
	assert.NoError(WriteCatalog(catalog, dir))

	for _, name := range []string{"C_Minor.mid", "F_Major.mid", "Bb_Major.mid"} {
		info, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(err)
		assert.Greater(info.Size(), int64(0))
	}
}
