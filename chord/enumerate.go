package chord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rdevries/modechord/model"
	"github.com/rdevries/modechord/scale"
)

// ErrUnrecognizedChordSize means a requested chord size outside 3..7.
var ErrUnrecognizedChordSize = errors.New("unrecognized chord size")

// sizePatterns maps a chord size to the scale-position patterns enumerated
// for it. Read positions +1: [0,2,4] is the 1-3-5 triad, [0,2,4,8] adds the 9.
var sizePatterns = map[int][][]int{
	3: {{0, 2, 4}},
	4: {{0, 2, 4, 5}, {0, 2, 4, 6}, {0, 2, 4, 8}},
	5: {{0, 2, 4, 5, 8}, {0, 2, 4, 6, 8}},
	6: {{0, 2, 4, 6, 8, 10}},
	7: {{0, 2, 4, 6, 8, 10, 12}},
}

// CreateKey builds the catalog key for a classified chord.
func CreateKey(root model.Note, quality string) string {
	return fmt.Sprintf("%v_%v", root, quality)
}

// ParseSizes parses a dash-separated size list like "3-4-5".
func ParseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, "-") {
		size, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("could not parse chord sizes %q: %w", s, err)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// Enumerate builds the complete chord catalog for key in mode, covering every
// requested chord size on every scale degree. The catalog is rebuilt from
// scratch per call; when two patterns on the same root land on the same
// quality name, the later pattern wins.
func Enumerate(key model.Note, mode model.Mode, sizes []int) (model.Catalog, error) {
	modeScale, modeChromatic, err := scale.Resolve(key, mode)
	if err != nil {
		return nil, err
	}

	var patterns [][]int
	for _, size := range sizes {
		ps, ok := sizePatterns[size]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnrecognizedChordSize, size)
		}
		patterns = append(patterns, ps...)
	}

	catalog := make(model.Catalog)
	for _, root := range modeScale {
		for _, positions := range patterns {
			c, err := classify(root, modeScale, modeChromatic, positions)
			if err != nil {
				return nil, err
			}
			catalog[CreateKey(c.Root, c.Quality)] = c.Notes
		}
	}
	return catalog, nil
}
