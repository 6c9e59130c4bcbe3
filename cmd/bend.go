package cmd

import (
	"github.com/spf13/cobra"
)

var bendCmd = &cobra.Command{
	Use:   "bend",
	Short: "Bending of thin-walled laminated beams",
	Long: `Bending case studies for thin-walled laminated beams.

Subcommands:
  zsection - Bending of the idealized Z-section (pages 63-67)

All section properties are modulus-weighted because the walls carry
different laminates.`,
}

func init() {
	rootCmd.AddCommand(bendCmd)
}
