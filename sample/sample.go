package sample

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rdevries/modechord/constants"
	"github.com/rdevries/modechord/model"
	"github.com/rdevries/modechord/theory"
	"github.com/rdevries/modechord/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// PitchOf maps a pitch-class symbol to its MIDI key in the default octave,
// accepting either spelling.
func PitchOf(n model.Note) (uint8, bool) {
	i := util.IndexOf(theory.ChromaticSharps, n)
	if i < 0 {
		i = util.IndexOf(theory.ChromaticFlats, n)
	}
	if i < 0 {
		return 0, false
	}
	return uint8(constants.BasePitch + i), true
}

// Pitches converts a 7-slot chord record to MIDI keys, skipping the blank
// padding slots.
func Pitches(notes model.Notes) ([]uint8, error) {
	var res []uint8
	for _, n := range util.FilterBlank(notes) {
		p, ok := PitchOf(n)
		if !ok {
			return nil, fmt.Errorf("no pitch for note %v", n)
		}
		res = append(res, p)
	}
	return res, nil
}

// Create renders one catalog entry as a single-track SMF: the chord struck as
// a block for two beats, then each tone arpeggiated for one beat.
func Create(notes model.Notes) (*smf.SMF, error) {
	pitches, err := Pitches(notes)
	if err != nil {
		return nil, err
	}

	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(constants.TicksPerBeat)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(constants.Tempo))
	for _, p := range pitches {
		tr.Add(0, midi.NoteOn(constants.Channel, p, constants.Velocity))
	}
	for i, p := range pitches {
		var delta uint32
		if i == 0 {
			delta = 2 * constants.TicksPerBeat
		}
		tr.Add(delta, midi.NoteOff(constants.Channel, p))
	}
	for _, p := range pitches {
		tr.Add(0, midi.NoteOn(constants.Channel, p, constants.Velocity))
		tr.Add(constants.TicksPerBeat, midi.NoteOff(constants.Channel, p))
	}
	tr.Close(0)
	res.Tracks = append(res.Tracks, tr)

	return &res, nil
}

// Filename converts a catalog key to the .mid filename for its sample.
func Filename(catalogKey string) string {
	return strings.ReplaceAll(catalogKey, " ", "_") + ".mid"
}

// WriteCatalog writes one .mid file per catalog entry under dir.
func WriteCatalog(catalog model.Catalog, dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return fmt.Errorf("could not create sample dir: %w", err)
	}
	keys := util.SortedKeys(catalog)
	for i, key := range keys {
		fmt.Printf("Writing %v of %v samples: %v\n", i+1, len(keys), key)
		s, err := Create(catalog[key])
		if err != nil {
			return err
		}
		f, err := os.Create(filepath.Join(dir, Filename(key)))
		if err != nil {
			return fmt.Errorf("could not create sample file: %w", err)
		}
		_, err = s.WriteTo(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("could not write sample file: %w", err)
		}
	}
	return nil
}
