package theory

import (
	"strconv"
	"strings"
)

// UnknownQuality is a reportable result, not an error: the catalog stays
// total over every degree/pattern pair.
const UnknownQuality = "Unknown"

// SixAddNine is forced whenever the last two chord tones sit on the 6th and
// 9th scale degrees, regardless of signature.
const SixAddNine = "6th added 9"

type qualityRule struct {
	name      string
	signature []int
}

// qualityRules associates a quality name with the chord's semitone deviation
// from the reference major scale at each selected degree. Several 4-tone
// signatures collide on purpose (Major 7th / 6th / Added 9th all read
// [0,0,0,0]); the final-degree filter in QualityOf tells them apart. 6X_1 and
// 6X_2 are the two unnamed 1-3-5-6 stacks with a lowered 6th.
var qualityRules = []qualityRule{
	// 3 tones
	{"Major", []int{0, 0, 0}},
	{"Minor", []int{0, -1, 0}},
	{"Diminished", []int{0, -1, -1}},
	{"Augmented", []int{0, 0, 1}},
	{"Suspended 4th", []int{0, 1, 0}},
	{"Suspended 2nd", []int{0, -2, 0}},
	// 4 tones
	{"Dominant 7th", []int{0, 0, 0, -1}},
	{"Minor 7th", []int{0, -1, 0, -1}},
	{"Major 7th", []int{0, 0, 0, 0}},
	{"Diminished 7th", []int{0, -1, -1, -2}},
	{"Half Diminished 7th", []int{0, -1, -1, -1}},
	{"6th", []int{0, 0, 0, 0}},
	{"Minor 6th", []int{0, -1, 0, 0}},
	{"6X_1", []int{0, -1, 0, -1}},
	{"6X_2", []int{0, -1, -1, -1}},
	{"Added 9th", []int{0, 0, 0, 0}},
	{"Minor Added 9th", []int{0, -1, 0, 0}},
	// 5 tones
	{"9th", []int{0, 0, 0, -1, 0}},
	{"Major 9th", []int{0, 0, 0, 0, 0}},
	{"Minor 9th", []int{0, -1, 0, -1, 0}},
	{"Minor 7th flat 9", []int{0, -1, 0, -1, -1}},
	{"Half Diminished 7th flat 9", []int{0, -1, -1, -1, -1}},
	// 6 tones
	{"11th", []int{0, 0, 0, -1, 0, 0}},
	{"Major 11th", []int{0, 0, 0, 0, 0, 0}},
	{"Minor 11th", []int{0, -1, 0, -1, 0, 0}},
	{"Major 7th sharp 11", []int{0, 0, 0, 0, 0, 1}},
	{"Minor 11th flat 9", []int{0, -1, 0, -1, -1, 0}},
	{"Half Diminished 11th flat 9", []int{0, -1, -1, -1, -1, 0}},
	// 7 tones
	{"13th", []int{0, 0, 0, -1, 0, 0, 0}},
	{"Major 13th", []int{0, 0, 0, 0, 0, 0, 0}},
	{"Minor 13th", []int{0, -1, 0, -1, 0, 0, 0}},
	{"Major 13th sharp 11", []int{0, 0, 0, 0, 0, 1, 0}},
	{"Minor 11th flat 13", []int{0, -1, 0, -1, 0, 0, -1}},
}

func signaturesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// QualityOf names the chord with interval signature sig whose tones sit on
// the given 0-indexed scale positions. The rules apply in order: the 6-and-9
// special case, signature equality, then (for ambiguous signatures of 4 or
// more tones) only names containing the 1-indexed final degree survive.
func QualityOf(sig []int, positions []int) string {
	n := len(positions)
	if n >= 2 && positions[n-2] == 5 && positions[n-1] == 8 {
		return SixAddNine
	}

	var candidates []string
	for _, rule := range qualityRules {
		if signaturesEqual(rule.signature, sig) {
			candidates = append(candidates, rule.name)
		}
	}

	if len(candidates) > 1 && len(sig) >= 4 {
		finalDegree := strconv.Itoa(positions[n-1] + 1)
		var filtered []string
		for _, name := range candidates {
			if strings.Contains(name, finalDegree) {
				filtered = append(filtered, name)
			}
		}
		candidates = filtered
	}

	if len(candidates) == 0 {
		return UnknownQuality
	}
	return candidates[0]
}
