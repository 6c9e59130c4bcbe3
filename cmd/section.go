package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Analyze user-defined thin-walled sections from JSON",
	Long: `Analyze thin-walled laminated sections defined in a JSON file.

A section is a list of straight wall segments along the midline, each
with its own thickness and homogenized moduli:

  {
    "name": "wing box",
    "closed": true,
    "walls": [
      {"start": {"y": 0, "z": 0}, "end": {"y": 200, "z": 0},
       "thickness": 2, "e": 50, "g": 20, "layup": "[0/90]s"},
      ...
    ]
  }

Coordinates and thicknesses are in mm, moduli in GPa.

Subcommands:
  props   - Modulus-weighted section properties
  torsion - Torsional response (Bredt for closed cells, strips for open)`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
