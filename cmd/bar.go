package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/alexiusacademia/golam/internal/material"
	"github.com/spf13/cobra"
)

var (
	barMatrixE  float64
	barFiberE   float64
	barMatrixVf float64
	barFiberVf  float64
	barWidth    float64
	barDepth    float64
	barLength   float64
	barLoad     float64
	barFiber    string
	barMatrix   string
	barReport   string
	barXlsx     string
)

var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Micromechanics of a composite bar (pages 27-30)",
	Long: `Homogenize a unidirectional fiber-composite bar with the rule of
mixtures and compute its response to an axial load.

All flags default to the documented example of the lecture notes
(pages 27-30): a glass/epoxy bar with 20% fiber volume fraction
under a 100 kN axial load.

Examples:
  # The documented example
  golam bar

  # A stiffer fiber at 40% volume fraction
  golam bar --fiber-e 230 --fiber-vf 0.4 --matrix-vf 0.6

  # Constituent presets instead of explicit moduli
  golam bar --fiber carbon --matrix epoxy`,
	Run: runBar,
}

func init() {
	rootCmd.AddCommand(barCmd)

	barCmd.Flags().Float64Var(&barMatrixE, "matrix-e", 5, "Matrix Young's modulus Em (GPa)")
	barCmd.Flags().Float64Var(&barFiberE, "fiber-e", 200, "Fiber Young's modulus Ef (GPa)")
	barCmd.Flags().Float64Var(&barMatrixVf, "matrix-vf", 0.8, "Matrix volume fraction vm")
	barCmd.Flags().Float64Var(&barFiberVf, "fiber-vf", 0.2, "Fiber volume fraction vf")
	barCmd.Flags().Float64VarP(&barWidth, "width", "b", 80, "Bar width (mm)")
	barCmd.Flags().Float64Var(&barDepth, "depth", 50, "Bar depth (mm)")
	barCmd.Flags().Float64VarP(&barLength, "length", "l", 0.5, "Bar length (m)")
	barCmd.Flags().Float64VarP(&barLoad, "load", "F", 100, "Axial load (kN)")
	barCmd.Flags().StringVar(&barFiber, "fiber", "", "Fiber preset (overrides --fiber-e)")
	barCmd.Flags().StringVar(&barMatrix, "matrix", "", "Matrix preset (overrides --matrix-e)")
	barCmd.Flags().StringVar(&barReport, "report", "", "Export the trace as a PDF report")
	barCmd.Flags().StringVar(&barXlsx, "xlsx", "", "Export the trace as a spreadsheet")
}

func runBar(cmd *cobra.Command, args []string) {
	if barFiber != "" {
		c, err := material.LookupFiber(barFiber)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		barFiberE = c.E
	}
	if barMatrix != "" {
		c, err := material.LookupMatrix(barMatrix)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		barMatrixE = c.E
	}

	bar := laminate.NewBar(barMatrixE, barFiberE, barMatrixVf, barFiberVf)
	bar.Width = barWidth
	bar.Depth = barDepth
	bar.Length = barLength
	bar.AxialLoad = barLoad

	result, err := bar.Evaluate()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MICROMECHANICS OF COMPOSITE BAR - PAGES 27-30")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Matrix Modulus (Em):\t%.1f GPa\n", bar.MatrixE)
	fmt.Fprintf(w, "  Fiber Modulus (Ef):\t%.1f GPa\n", bar.FiberE)
	fmt.Fprintf(w, "  Matrix Volume Fraction (vm):\t%.2f\n", bar.MatrixVf)
	fmt.Fprintf(w, "  Fiber Volume Fraction (vf):\t%.2f\n", bar.FiberVf)
	fmt.Fprintf(w, "  Cross Section:\t%.0f x %.0f mm\n", bar.Width, bar.Depth)
	fmt.Fprintf(w, "  Length (L):\t%.2f m\n", bar.Length)
	fmt.Fprintf(w, "  Axial Load (F):\t%.1f kN\n", bar.AxialLoad)
	w.Flush()
	fmt.Println()

	printTrace(result.Trace)
	printHighlight("Ex = %.4g GPa    ΔL = %.4g mm", result.Ex, result.Elongation)
	exportTrace(result.Trace, barReport, barXlsx)
}
