package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/golam/internal/torsion"
	"github.com/spf13/cobra"
)

var (
	iTorque float64
	iReport string
	iXlsx   string
)

var torsionICmd = &cobra.Command{
	Use:   "isection",
	Short: "Torsion exercise on the I-section (pages 84-89)",
	Long: `Solve the torsion exercise on the laminated I-section: torsional
rigidity, twist rate, wall shear stresses, and the warping displacement
at the flange corner from the swept-area rule.

The torque is given in kN·mm as in the exercise statement.

Examples:
  # The documented exercise (Mx = 0.5 kN·mm)
  golam torsion isection

  # A larger torque
  golam torsion isection --torque 2`,
	Run: runTorsionISection,
}

func init() {
	torsionCmd.AddCommand(torsionICmd)

	torsionICmd.Flags().Float64VarP(&iTorque, "torque", "t", 0.5, "Torque Mx (kN·mm)")
	torsionICmd.Flags().StringVar(&iReport, "report", "", "Export the trace as a PDF report")
	torsionICmd.Flags().StringVar(&iXlsx, "xlsx", "", "Export the trace as a spreadsheet")
}

func runTorsionISection(cmd *cobra.Command, args []string) {
	// kN·mm and N·m are the same unit
	sec := torsion.NewISection(iTorque)

	result, err := sec.Evaluate()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     EXERCISE: TORSION OF I-SECTION - PAGES 84-89")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Torque (Mx):\t%.2f kN·mm\n", iTorque)
	for _, wall := range sec.Walls {
		fmt.Fprintf(w, "  %s:\t%.0f mm, %.1f GPa, %.2f mm\n", wall.Name, wall.Length, wall.G, wall.Thickness)
	}
	fmt.Fprintf(w, "  Swept Area (A_R):\t%.0f mm²\n", sec.SweptArea)
	w.Flush()
	fmt.Println()

	printTrace(result.Trace)
	printHighlight("μĪ_T = %.4g N·m²    u_x = %.4g mm", result.Stiffness, result.Warping)
	exportTrace(result.Trace, iReport, iXlsx)
}
