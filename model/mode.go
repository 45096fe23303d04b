package model

// Mode is one of the seven church modes.
type Mode = string

const (
	Ionian     Mode = "ionian"
	Dorian     Mode = "dorian"
	Phrygian   Mode = "phrygian"
	Lydian     Mode = "lydian"
	Mixolydian Mode = "mixolydian"
	Aeolian    Mode = "aeolian"
	Locrian    Mode = "locrian"
)

var AllModes = []Mode{Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian}
