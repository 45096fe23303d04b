package theory

import (
	"errors"
	"fmt"

	"github.com/rdevries/modechord/model"
	"github.com/rdevries/modechord/util"
)

// ErrUnknownRoot means a root symbol outside the 15 supported theoretical keys.
var ErrUnknownRoot = errors.New("unknown root symbol")

// The two spellings of the twelve pitch classes in semitone order.
var ChromaticSharps = model.Notes{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var ChromaticFlats = model.Notes{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// majorScales covers the 15 theoretical keys, including the alternative
// spellings C# (of Db) and Cb (of B).
var majorScales = map[model.Note]model.Notes{
	"C":  {"C", "D", "E", "F", "G", "A", "B"},
	"Db": {"Db", "Eb", "F", "Gb", "Ab", "Bb", "C"},
	"C#": {"C#", "D#", "E#", "F#", "G#", "A#", "B#"},
	"D":  {"D", "E", "F#", "G", "A", "B", "C#"},
	"Eb": {"Eb", "F", "G", "Ab", "Bb", "C", "D"},
	"E":  {"E", "F#", "G#", "A", "B", "C#", "D#"},
	"F":  {"F", "G", "A", "Bb", "C", "D", "E"},
	"Gb": {"Gb", "Ab", "Bb", "Cb", "Db", "Eb", "F"},
	"F#": {"F#", "G#", "A#", "B", "C#", "D#", "E#"},
	"G":  {"G", "A", "B", "C", "D", "E", "F#"},
	"Ab": {"Ab", "Bb", "C", "Db", "Eb", "F", "G"},
	"A":  {"A", "B", "C#", "D", "E", "F#", "G#"},
	"Bb": {"Bb", "C", "D", "Eb", "F", "G", "A"},
	"B":  {"B", "C#", "D#", "E", "F#", "G#", "A#"},
	"Cb": {"Cb", "Db", "Eb", "Fb", "Gb", "Ab", "Bb"},
}

// cofEquivalents folds a spelling onto the symbol the major-scale table and
// the chromatic membership rule use, following the circle of fifths.
var cofEquivalents = map[model.Note]model.Note{
	"A#": "Bb",
	"D#": "Eb",
	"G#": "Ab",
	"E#": "F",
	"Fb": "E",
	"B#": "C",
	"Cb": "B",
}

// enharmonicPlain respells the theoretical members of a major scale (E#, Cb,
// ...) so every note can be located in a chromatic sequence.
var enharmonicPlain = map[model.Note]model.Note{
	"E#": "F",
	"Fb": "E",
	"B#": "C",
	"Cb": "B",
}

// flatRoots are the normalized roots whose chromatic context is flat-spelled;
// everything else reads sharp. Note Cb normalizes to B, which reads sharp.
var flatRoots = map[model.Note]bool{
	"F":  true,
	"Bb": true,
	"Eb": true,
	"Ab": true,
	"Db": true,
	"Gb": true,
}

// NormalizeRoot resolves circle-of-fifths equivalents (A# -> Bb etc.) so that
// lookups hit a defined key even for a tonically identical spelling.
func NormalizeRoot(n model.Note) model.Note {
	if conv, ok := cofEquivalents[n]; ok {
		return conv
	}
	return n
}

// ChromaticOf returns the chromatic sequence a root is read against: flats
// for the flat side of the circle of fifths, sharps otherwise.
func ChromaticOf(root model.Note) model.Notes {
	if flatRoots[NormalizeRoot(root)] {
		return ChromaticFlats
	}
	return ChromaticSharps
}

// MajorScaleOf returns the canonical major scale for root, normalized and
// with theoretical members respelled plainly. The result can mix sharps and
// naturals (e.g. F# major yields both F and F#); that is deliberate, it only
// has to index into a chromatic sequence.
func MajorScaleOf(root model.Note) (model.Notes, error) {
	root = NormalizeRoot(root)
	scale, ok := majorScales[root]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownRoot, root)
	}
	res := make(model.Notes, 0, len(scale))
	for _, n := range scale {
		if plain, ok := enharmonicPlain[n]; ok {
			n = plain
		}
		res = append(res, n)
	}
	return res, nil
}

// Roots lists the 15 supported root symbols in sorted order.
func Roots() model.Notes {
	return util.SortedKeys(majorScales)
}
