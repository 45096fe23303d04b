package model

// ChordSlots is the fixed record width: a chord is always reported as 7 tone
// slots, trailing slots blank when it has fewer tones.
const ChordSlots = 7

// Chord is one classified catalog entry.
type Chord struct {
	Root    Note
	Quality string
	Notes   Notes // always ChordSlots long
}

// Catalog maps "{root}_{quality}" to the chord's 7-slot note record.
type Catalog = map[string]Notes
