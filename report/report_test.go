package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rdevries/modechord/model"
	"github.com/stretchr/testify/assert"
)

func TestWriteCreatesPdf(t *testing.T) {
	assert := assert.New(t)
	catalog := model.Catalog{
		"C_Minor":        {"C", "Eb", "G", "", "", "", ""},
		"C_Minor 7th":    {"C", "Eb", "G", "Bb", "", "", ""},
		"F_Major":        {"F", "A", "C", "", "", "", ""},
		"G_Dominant 7th": {"G", "B", "D", "F", "", "", ""},
	}
	path := filepath.Join(t.TempDir(), "C_dorian.pdf")
	assert.NoError(Write("C", model.Dorian, catalog, path))

	info, err := os.Stat(path)
	assert.NoError(err)
	assert.Greater(info.Size(), int64(0))
}
