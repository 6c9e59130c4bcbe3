package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/golam/internal/trace"
	"github.com/alexiusacademia/golam/internal/version"
)

// ExportPDF writes a computation trace as a calculation report. Formulas
// are carried as raw LaTeX source; rendering them typeset is left to the
// reader's tooling.
func ExportPDF(t *trace.Trace, filename string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, t.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Source: lecture notes, pages %s", t.Pages))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s (golam v%s)", time.Now().Format("2006-01-02"), version.Version))
	pdf.Ln(10)

	for i, s := range t.Steps {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, fmt.Sprintf("%d. %s", i+1, s.Label))
		pdf.Ln(7)

		pdf.SetFont("Courier", "", 9)
		pdf.MultiCell(0, 5, s.Formula, "", "L", false)

		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Result: %.4g %s    (pg %s)", s.Value, s.Unit, s.Pages))
		pdf.Ln(9)
	}

	return pdf.OutputFileAndClose(filename)
}
