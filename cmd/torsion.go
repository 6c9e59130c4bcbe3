package cmd

import (
	"github.com/spf13/cobra"
)

var torsionCmd = &cobra.Command{
	Use:   "torsion",
	Short: "Torsion of thin-walled laminated sections",
	Long: `Torsion case studies for thin-walled laminated sections.

Subcommands:
  box      - Closed rectangular box, Bredt theory (pages 77-80)
  channel  - Open C-section, strip theory (pages 82-83)
  isection - I-section exercise with warping (pages 84-89)

Closed cells carry a uniform Bredt shear flow; open sections twist with
the strip stiffness Σ μ l t³/3 and warp out of plane.`,
}

func init() {
	rootCmd.AddCommand(torsionCmd)
}
