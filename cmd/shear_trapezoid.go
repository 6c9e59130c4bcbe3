package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/golam/internal/diagram"
	"github.com/alexiusacademia/golam/internal/shear"
	"github.com/spf13/cobra"
)

var (
	trapShear     float64
	trapWebHeight float64
	trapLegLength float64
	trapWebE      float64
	trapWebThk    float64
	trapLegE      float64
	trapLegThk    float64
	trapDiagram   bool
	trapOutput    string
	trapReport    string
	trapXlsx      string
)

var shearTrapezoidCmd = &cobra.Command{
	Use:   "trapezoid",
	Short: "Closed trapezoidal cell under vertical shear (pages 70-75)",
	Long: `Compute the shear flow distribution of the closed trapezoidal cell:
open flows from a cut at the apex, the redundant closing flux from
torque equivalence, and their superposition.

Examples:
  # The documented example (Tz = 2 kN)
  golam shear trapezoid

  # Double the shear force, with the web flow profile drawn
  golam shear trapezoid --shear 4 --diagram`,
	Run: runShearTrapezoid,
}

func init() {
	shearCmd.AddCommand(shearTrapezoidCmd)

	shearTrapezoidCmd.Flags().Float64VarP(&trapShear, "shear", "T", 2, "Vertical shear force Tz (kN)")
	shearTrapezoidCmd.Flags().Float64Var(&trapWebHeight, "web-height", 300, "Web height h (mm)")
	shearTrapezoidCmd.Flags().Float64Var(&trapLegLength, "leg-length", 250, "Inclined wall length (mm)")
	shearTrapezoidCmd.Flags().Float64Var(&trapWebE, "web-e", 20, "Web modulus (GPa)")
	shearTrapezoidCmd.Flags().Float64Var(&trapWebThk, "web-thk", 1.5, "Web thickness (mm)")
	shearTrapezoidCmd.Flags().Float64Var(&trapLegE, "leg-e", 45, "Inclined wall modulus (GPa)")
	shearTrapezoidCmd.Flags().Float64Var(&trapLegThk, "leg-thk", 2, "Inclined wall thickness (mm)")
	shearTrapezoidCmd.Flags().BoolVar(&trapDiagram, "diagram", false, "Draw the final web flow profile")
	shearTrapezoidCmd.Flags().StringVarP(&trapOutput, "output", "o", "", "Export the web flow profile to an image (png, svg, pdf)")
	shearTrapezoidCmd.Flags().StringVar(&trapReport, "report", "", "Export the trace as a PDF report")
	shearTrapezoidCmd.Flags().StringVar(&trapXlsx, "xlsx", "", "Export the trace as a spreadsheet")
}

func runShearTrapezoid(cmd *cobra.Command, args []string) {
	cell := shear.NewTrapezoidCell(trapShear)
	cell.WebHeight = trapWebHeight
	cell.LegLength = trapLegLength
	cell.WebE = trapWebE
	cell.WebThk = trapWebThk
	cell.LegE = trapLegE
	cell.LegThk = trapLegThk

	result, err := cell.Evaluate()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SHEARING OF CLOSED TRAPEZOIDAL SECTION - PAGES 70-75")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shear Force (Tz):\t%.2f kN\n", cell.ShearZ)
	fmt.Fprintf(w, "  Web BC:\t%.0f mm, %.1f GPa, %.1f mm\n", cell.WebHeight, cell.WebE, cell.WebThk)
	fmt.Fprintf(w, "  Walls AB, AC:\t%.0f mm, %.1f GPa, %.1f mm\n", cell.LegLength, cell.LegE, cell.LegThk)
	fmt.Fprintf(w, "  Cell Depth:\t%.1f mm\n", result.Depth)
	fmt.Fprintf(w, "  Enclosed Area (Ah):\t%.4f m²\n", result.EnclosedArea)
	w.Flush()
	fmt.Println()

	printTrace(result.Trace)
	printHighlight("q(B) = %.4g N/m    q_web(0) = %.4g N/m", result.FlowCorner, result.FlowWebMid)

	if trapDiagram || trapOutput != "" {
		profile := cell.WebFlowProfile(result, 40)
		if trapDiagram {
			fmt.Println(diagram.FlowGraph("Final web shear flow q (N/m), B → C", profile))
		}
		if trapOutput != "" {
			if err := diagram.ExportProfile("Web Shear Flow", "q (N/m)", profile, trapOutput); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("  Diagram written to %s\n", trapOutput)
			}
		}
	}

	exportTrace(result.Trace, trapReport, trapXlsx)
}
