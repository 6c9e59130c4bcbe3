package cmd

import (
	"fmt"

	"github.com/alexiusacademia/golam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of golam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("golam v%s\n", version.Version)
		fmt.Println("Laminated Composite Idealization Solver")
		fmt.Println("Reproduces the lecture-note case studies on composite idealization")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
