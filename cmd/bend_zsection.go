package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/golam/internal/bending"
	"github.com/alexiusacademia/golam/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	zFlangeE   float64
	zWebE      float64
	zMomentY   float64
	zHeight    float64
	zWidth     float64
	zFlangeThk float64
	zWebThk    float64
	zDiagram   bool
	zOutput    string
	zReport    string
	zXlsx      string
)

var bendZCmd = &cobra.Command{
	Use:   "zsection",
	Short: "Bending of the thin-walled Z-section (pages 63-67)",
	Long: `Compute the modulus-weighted bending stiffnesses of the idealized
Z-section and the axial stress distribution under a bending moment My.

The Z is anti-symmetric, so the product stiffness EIyz does not vanish
and the bending is unsymmetric.

Examples:
  # The documented example (Ef=50 GPa, Ew=15 GPa, My=1 kNm)
  golam bend zsection

  # A stiffer web laminate with the flange stress profile drawn
  golam bend zsection --web-e 25 --diagram`,
	Run: runBendZ,
}

func init() {
	bendCmd.AddCommand(bendZCmd)

	bendZCmd.Flags().Float64Var(&zFlangeE, "flange-e", 50, "Flange modulus Ef (GPa)")
	bendZCmd.Flags().Float64Var(&zWebE, "web-e", 15, "Web modulus Ew (GPa)")
	bendZCmd.Flags().Float64VarP(&zMomentY, "moment", "m", 1, "Bending moment My (kN·m)")
	bendZCmd.Flags().Float64Var(&zHeight, "height", 100, "Web height h (mm)")
	bendZCmd.Flags().Float64VarP(&zWidth, "width", "b", 50, "Flange width b (mm)")
	bendZCmd.Flags().Float64Var(&zFlangeThk, "flange-thk", 2, "Flange thickness tf (mm)")
	bendZCmd.Flags().Float64Var(&zWebThk, "web-thk", 1, "Web thickness tw (mm)")
	bendZCmd.Flags().BoolVar(&zDiagram, "diagram", false, "Draw the flange stress profile")
	bendZCmd.Flags().StringVarP(&zOutput, "output", "o", "", "Export the stress profile to an image (png, svg, pdf)")
	bendZCmd.Flags().StringVar(&zReport, "report", "", "Export the trace as a PDF report")
	bendZCmd.Flags().StringVar(&zXlsx, "xlsx", "", "Export the trace as a spreadsheet")
}

func runBendZ(cmd *cobra.Command, args []string) {
	z := bending.NewZSection(zFlangeE, zWebE, zMomentY)
	z.Height = zHeight
	z.FlangeWidth = zWidth
	z.FlangeThk = zFlangeThk
	z.WebThk = zWebThk

	result, err := z.Evaluate()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BENDING OF THIN-WALLED Z-SECTION - PAGES 63-67")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Flange Modulus (Ef):\t%.1f GPa\n", z.FlangeE)
	fmt.Fprintf(w, "  Web Modulus (Ew):\t%.1f GPa\n", z.WebE)
	fmt.Fprintf(w, "  Web Height (h):\t%.0f mm\n", z.Height)
	fmt.Fprintf(w, "  Flange Width (b):\t%.0f mm\n", z.FlangeWidth)
	fmt.Fprintf(w, "  Flange Thickness (tf):\t%.1f mm\n", z.FlangeThk)
	fmt.Fprintf(w, "  Web Thickness (tw):\t%.1f mm\n", z.WebThk)
	fmt.Fprintf(w, "  Bending Moment (My):\t%.2f kN·m\n", z.MomentY)
	w.Flush()
	fmt.Println()

	printTrace(result.Trace)
	printHighlight("σ_web = %.4g MPa    σ_tip = %.4g MPa", result.WebStressMax, result.FlangeStressTip)

	if zDiagram || zOutput != "" {
		const samples = 40
		profile := make([]float64, samples+1)
		for i := 0; i <= samples; i++ {
			profile[i] = result.FlangeStress(z, z.FlangeWidth*float64(i)/samples)
		}
		if zDiagram {
			fmt.Println(diagram.FlowGraph("Top flange stress σ (MPa), junction → tip", profile))
		}
		if zOutput != "" {
			if err := diagram.ExportProfile("Z-Section Flange Stress", "σ (MPa)", profile, zOutput); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("  Diagram written to %s\n", zOutput)
			}
		}
	}

	exportTrace(result.Trace, zReport, zXlsx)
}
