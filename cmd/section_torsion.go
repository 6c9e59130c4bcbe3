package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/golam/internal/section"
	"github.com/alexiusacademia/golam/internal/torsion"
	"github.com/spf13/cobra"
)

var (
	sectionTorsionFile   string
	sectionTorsionTorque float64
	sectionTorsionReport string
	sectionTorsionXlsx   string
)

var sectionTorsionCmd = &cobra.Command{
	Use:   "torsion",
	Short: "Torsional response of a thin-walled section",
	Long: `Compute the torsional response of a thin-walled section defined in a
JSON file. Closed single cells are solved with the Bredt formulas, open
sections with the strip summation Σ μ l t³/3.

Examples:
  golam section torsion --file wingbox.json --torque 500
  golam section torsion -f channel.json -t 10`,
	Run: runSectionTorsion,
}

func init() {
	sectionCmd.AddCommand(sectionTorsionCmd)

	sectionTorsionCmd.Flags().StringVarP(&sectionTorsionFile, "file", "f", "", "Path to section JSON file [required]")
	sectionTorsionCmd.MarkFlagRequired("file")
	sectionTorsionCmd.Flags().Float64VarP(&sectionTorsionTorque, "torque", "t", 0, "Torque Mx (N·m) [required]")
	sectionTorsionCmd.MarkFlagRequired("torque")
	sectionTorsionCmd.Flags().StringVar(&sectionTorsionReport, "report", "", "Export the trace as a PDF report")
	sectionTorsionCmd.Flags().StringVar(&sectionTorsionXlsx, "xlsx", "", "Export the trace as a spreadsheet")
}

func runSectionTorsion(cmd *cobra.Command, args []string) {
	geom, err := section.LoadFromFile(sectionTorsionFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	result, err := torsion.EvaluateGeometry(geom, sectionTorsionTorque)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     THIN-WALLED SECTION TORSION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if geom.Name != "" {
		fmt.Fprintf(w, "  Section:\t%s\n", geom.Name)
	}
	fmt.Fprintf(w, "  Torque (Mx):\t%.2f N·m\n", sectionTorsionTorque)
	kind := "open"
	if result.Closed {
		kind = "closed (single cell)"
	}
	fmt.Fprintf(w, "  Contour:\t%s\n", kind)
	if result.Closed {
		fmt.Fprintf(w, "  Enclosed Area (Ah):\t%.6f m²\n", result.EnclosedArea)
	}
	w.Flush()
	fmt.Println()

	printTrace(result.Trace)
	printHighlight("μĪ_T = %.4g N·m²    θ' = %.4g rad/m", result.Stiffness, result.TwistRate)
	exportTrace(result.Trace, sectionTorsionReport, sectionTorsionXlsx)
}
