package chord

import (
	"testing"

	"github.com/rdevries/modechord/model"
	"github.com/rdevries/modechord/scale"
	"github.com/rdevries/modechord/theory"
	"github.com/rdevries/modechord/util"
	"github.com/stretchr/testify/assert"
)

func TestDorianCTriadOnRoot(t *testing.T) {
	assert := assert.New(t)
	catalog, err := Enumerate("C", model.Dorian, []int{3})
	assert.NoError(err)
	assert.Equal(model.Notes{"C", "Eb", "G", "", "", "", ""}, catalog["C_Minor"])
}

func TestLydianCTriads(t *testing.T) {
	assert := assert.New(t)
	catalog, err := Enumerate("C", model.Lydian, []int{3})
	assert.NoError(err)
	assert.Equal(model.Notes{"C", "E", "G", "", "", "", ""}, catalog["C_Major"])
	// the raised 4th puts a diminished stack on the 4th degree
	assert.Equal(model.Notes{"F#", "A", "C", "", "", "", ""}, catalog["F#_Diminished"])
}

func TestIonianCSeventhDisambiguation(t *testing.T) {
	assert := assert.New(t)
	catalog, err := Enumerate("C", model.Ionian, []int{4})
	assert.NoError(err)
	// all three share the all-zero signature on the root; the final degree
	// keeps them apart
	assert.Equal(model.Notes{"C", "E", "G", "B", "", "", ""}, catalog["C_Major 7th"])
	assert.Equal(model.Notes{"C", "E", "G", "A", "", "", ""}, catalog["C_6th"])
	assert.Equal(model.Notes{"C", "E", "G", "D", "", "", ""}, catalog["C_Added 9th"])
}

func TestIonianCSixAddNine(t *testing.T) {
	assert := assert.New(t)
	catalog, err := Enumerate("C", model.Ionian, []int{5})
	assert.NoError(err)
	assert.Equal(model.Notes{"C", "E", "G", "A", "D", "", ""}, catalog["C_6th added 9"])
	assert.Equal(model.Notes{"C", "E", "G", "B", "D", "", ""}, catalog["C_Major 9th"])
}

func TestMixolydianDominantStacks(t *testing.T) {
	assert := assert.New(t)
	catalog, err := Enumerate("C", model.Mixolydian, []int{4, 5, 6, 7})
	assert.NoError(err)
	assert.Equal(model.Notes{"C", "E", "G", "Bb", "", "", ""}, catalog["C_Dominant 7th"])
	assert.Equal(model.Notes{"C", "E", "G", "Bb", "D", "", ""}, catalog["C_9th"])
	assert.Equal(model.Notes{"C", "E", "G", "Bb", "D", "F", ""}, catalog["C_11th"])
	assert.Equal(model.Notes{"C", "E", "G", "Bb", "D", "F", "A"}, catalog["C_13th"])
}

func TestLocrianBFullStacks(t *testing.T) {
	assert := assert.New(t)
	catalog, err := Enumerate("B", model.Locrian, []int{7})
	assert.NoError(err)
	assert.Len(catalog, 7)
	for key, notes := range catalog {
		assert.Len(notes, model.ChordSlots)
		assert.NotContains(notes, "", "entry %v is not a full stack", key)
	}
	// the lydian-rooted degree carries the sharp 11
	assert.Equal(model.Notes{"F", "A", "C", "E", "G", "B", "D"}, catalog["F_Major 13th sharp 11"])
}

func TestEnumerateIsIdempotent(t *testing.T) {
	assert := assert.New(t)
	first, err := Enumerate("Eb", model.Aeolian, []int{3, 4, 5})
	assert.NoError(err)
	second, err := Enumerate("Eb", model.Aeolian, []int{3, 4, 5})
	assert.NoError(err)
	assert.Equal(first, second)
}

func TestChordTonesStayInScale(t *testing.T) {
	for _, mode := range model.AllModes {
		t.Run(mode, func(t *testing.T) {
			assert := assert.New(t)
			modeScale, _, err := scale.Resolve("C", mode)
			assert.NoError(err)
			catalog, err := Enumerate("C", mode, []int{3, 4, 5, 6, 7})
			assert.NoError(err)
			for key, notes := range catalog {
				for _, n := range util.FilterBlank(notes) {
					assert.Contains(modeScale, n, "entry %v has out-of-scale tone %v", key, n)
				}
			}
		})
	}
}

func TestUnknownQualityIsReportedNotDropped(t *testing.T) {
	assert := assert.New(t)
	catalog, err := Enumerate("C", model.Phrygian, []int{7})
	assert.NoError(err)
	// the 13-stack on a phrygian root has no named quality
	assert.Contains(catalog, "C_"+theory.UnknownQuality)
}

func TestEnumerateRejectsUnknownSize(t *testing.T) {
	_, err := Enumerate("C", model.Ionian, []int{3, 8})
	assert.ErrorIs(t, err, ErrUnrecognizedChordSize)
}

func TestEnumeratePropagatesInvalidKey(t *testing.T) {
	_, err := Enumerate("D#", model.Dorian, []int{3})
	assert.ErrorIs(t, err, scale.ErrInvalidKey)
}

func TestParseSizes(t *testing.T) {
	assert := assert.New(t)
	sizes, err := ParseSizes("3-4-5")
	assert.NoError(err)
	assert.Equal([]int{3, 4, 5}, sizes)

	_, err = ParseSizes("3-x")
	assert.Error(err)
}

func TestCreateKey(t *testing.T) {
	assert.Equal(t, "Eb_Minor 7th", CreateKey("Eb", "Minor 7th"))
}
