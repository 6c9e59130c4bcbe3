package cmd

import (
	"github.com/spf13/cobra"
)

var shearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Shearing of thin-walled laminated sections",
	Long: `Shear flow case studies for thin-walled laminated sections.

Subcommands:
  trapezoid - Closed trapezoidal cell under a vertical shear force
              (pages 70-75)

Closed cells are solved by cutting the cell open, integrating the open
shear flow, and restoring the closing flux from torque equivalence.`,
}

func init() {
	rootCmd.AddCommand(shearCmd)
}
