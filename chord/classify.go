package chord

import (
	"fmt"

	"github.com/rdevries/modechord/model"
	"github.com/rdevries/modechord/theory"
	"github.com/rdevries/modechord/util"
)

// classify names the chord stacked on root inside the mode. positions are
// 0-indexed scale positions ([0,2,4] is the 1-3-5 triad); positions up to 12
// (the 13th) address a duplicated copy of the scale.
//
// The signature compares, tone by tone, where the mode scale sits in the
// chromatic sequence rooted at root against where root's own major scale
// sits. Both position vectors are relative to root, so the mode's spelling
// and the root's reference spelling may differ.
func classify(root model.Note, modeScale, modeChromatic model.Notes, positions []int) (model.Chord, error) {
	norm := theory.NormalizeRoot(root)
	refChromatic := theory.ChromaticOf(norm)
	refChromatic = util.RotateLeft(refChromatic, util.IndexOf(refChromatic, norm))
	majorScale, err := theory.MajorScaleOf(root)
	if err != nil {
		return model.Chord{}, err
	}

	rolledScale := util.RotateLeft(modeScale, util.IndexOf(modeScale, root))
	rolledChromatic := util.RotateLeft(modeChromatic, util.IndexOf(modeChromatic, root))

	sig := make([]int, len(rolledScale))
	for i := range rolledScale {
		modePos := util.IndexOf(rolledChromatic, rolledScale[i])
		majorPos := util.IndexOf(refChromatic, majorScale[i])
		if modePos < 0 || majorPos < 0 {
			return model.Chord{}, fmt.Errorf("note %v or %v not in chromatic context of %v", rolledScale[i], majorScale[i], root)
		}
		sig[i] = modePos - majorPos
	}

	// duplicate so tones past the 7th (9, 11, 13) can be addressed
	sig = append(sig, sig...)
	tones := append(append(model.Notes{}, rolledScale...), rolledScale...)

	chordSig := make([]int, 0, len(positions))
	chordNotes := make(model.Notes, 0, model.ChordSlots)
	for _, pos := range positions {
		chordSig = append(chordSig, sig[pos])
		chordNotes = append(chordNotes, tones[pos])
	}
	for len(chordNotes) < model.ChordSlots {
		chordNotes = append(chordNotes, "")
	}

	return model.Chord{
		Root:    root,
		Quality: theory.QualityOf(chordSig, positions),
		Notes:   chordNotes,
	}, nil
}
