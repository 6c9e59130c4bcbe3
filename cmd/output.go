package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/golam/internal/report"
	"github.com/alexiusacademia/golam/internal/trace"
)

// printTrace renders a computation trace in the standard report layout.
func printTrace(t *trace.Trace) {
	fmt.Println("CALCULATION TRACE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	t.Write(os.Stdout)
}

// printHighlight prints the boxed closing line of a report.
func printHighlight(format string, args ...interface{}) {
	fmt.Println("  ╔═════════════════════════════════════════╗")
	fmt.Printf("  ║  %s\n", fmt.Sprintf(format, args...))
	fmt.Println("  ╚═════════════════════════════════════════╝")
	fmt.Println()
}

// exportTrace handles the shared --report and --xlsx flags.
func exportTrace(t *trace.Trace, pdfFile, xlsxFile string) {
	if pdfFile != "" {
		if err := report.ExportPDF(t, pdfFile); err != nil {
			fmt.Printf("Error exporting PDF report: %v\n", err)
		} else {
			fmt.Printf("  PDF report written to %s\n", pdfFile)
		}
	}
	if xlsxFile != "" {
		if err := report.ExportXLSX(t, xlsxFile); err != nil {
			fmt.Printf("Error exporting spreadsheet: %v\n", err)
		} else {
			fmt.Printf("  Spreadsheet written to %s\n", xlsxFile)
		}
	}
}
