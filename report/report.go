package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/rdevries/modechord/model"
	"github.com/rdevries/modechord/util"
)

const (
	nameColWidth = 70
	toneColWidth = 24
	rowHeight    = 7
)

// Write tabulates the catalog as a PDF: one row per chord in sorted key
// order, seven tone columns, blank cells where a chord has fewer tones.
func Write(key model.Note, mode model.Mode, catalog model.Catalog, path string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Chord catalog for %v %v", key, mode), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(nameColWidth, rowHeight, "Chord", "1", 0, "L", false, 0, "")
	for i := 1; i <= model.ChordSlots; i++ {
		pdf.CellFormat(toneColWidth, rowHeight, fmt.Sprintf("%d", i), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, k := range util.SortedKeys(catalog) {
		pdf.CellFormat(nameColWidth, rowHeight, k, "1", 0, "L", false, 0, "")
		for _, n := range catalog[k] {
			pdf.CellFormat(toneColWidth, rowHeight, n, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.OutputFileAndClose(path)
}
