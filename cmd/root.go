package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/golam/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golam",
	Short: "Laminated Composite Idealization Solver",
	Long: `golam - Go Laminated Composite Idealization Solver

A CLI companion to the aircraft structures lecture notes on the
idealization of laminated composites. It reproduces every numerical
case study of the notes, step by step, with the governing formula and
the page citation attached to each intermediate value.

Case studies:
  - Micromechanics of a composite bar (rule of mixtures)
  - Bending of a thin-walled Z-section
  - Shearing of a closed trapezoidal cell
  - Torsion of a rectangular box, a C-section and an I-section

User-defined thin-walled sections can be analyzed from JSON files.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   golam v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Laminated Composite Idealization Solver              ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A digital companion to the aircraft structures lecture notes")
		fmt.Println("  on the idealization of laminated composites.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Micromechanics of a composite bar (pages 27-30)")
		fmt.Println("    • Bending of a thin-walled Z-section (pages 63-67)")
		fmt.Println("    • Shearing of a closed trapezoidal cell (pages 70-75)")
		fmt.Println("    • Torsion of box, C- and I-sections (pages 77-89)")
		fmt.Println("    • User-defined thin-walled sections from JSON")
		fmt.Println("    • PDF, XLSX, ASCII and image output of every trace")
		fmt.Println()
		fmt.Println("  Use 'golam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
