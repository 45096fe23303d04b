package scale

import (
	"errors"
	"fmt"

	"github.com/rdevries/modechord/model"
	"github.com/rdevries/modechord/theory"
	"github.com/rdevries/modechord/util"
)

// ErrInvalidKey means the key is not a member of the chromatic spelling the
// mode implies (flats unless lydian). The policy is strict: "D#" dorian is
// rejected, "Eb" dorian is not.
var ErrInvalidKey = errors.New("key not spellable in mode")

var ErrUnknownMode = errors.New("unknown mode")

// ionianSteps is the whole/half pattern of the major scale: W-W-H-W-W-W-H.
var ionianSteps = []int{2, 2, 1, 2, 2, 2, 1}

// shifts maps each mode to how far ionianSteps rotates left.
var shifts = map[model.Mode]int{
	model.Ionian:     0,
	model.Dorian:     1,
	model.Phrygian:   2,
	model.Lydian:     3,
	model.Mixolydian: 4,
	model.Aeolian:    5,
	model.Locrian:    6,
}

// Resolve returns the 7-note scale of key in mode together with the full
// chromatic sequence rooted at key.
func Resolve(key model.Note, mode model.Mode) (model.Notes, model.Notes, error) {
	shift, ok := shifts[mode]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	chromatic := theory.ChromaticFlats
	if mode == model.Lydian {
		chromatic = theory.ChromaticSharps
	}
	i := util.IndexOf(chromatic, key)
	if i < 0 {
		return nil, nil, fmt.Errorf("%w: %v in %v", ErrInvalidKey, key, mode)
	}
	rooted := util.RotateLeft(chromatic, i)

	steps := util.RotateLeft(ionianSteps, shift)
	notes := make(model.Notes, 0, len(steps))
	offset := 0
	for _, step := range steps {
		notes = append(notes, rooted[offset])
		offset += step
	}
	return notes, rooted, nil
}
