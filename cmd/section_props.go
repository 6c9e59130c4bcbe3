package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/golam/internal/diagram"
	"github.com/alexiusacademia/golam/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionPropsFile    string
	sectionPropsDiagram bool
	sectionPropsOutput  string
)

var sectionPropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Modulus-weighted properties of a thin-walled section",
	Long: `Compute the modulus-weighted axial stiffness, centroid and bending
stiffnesses of a thin-walled section defined in a JSON file.

Examples:
  golam section props --file wingbox.json
  golam section props -f wingbox.json --diagram`,
	Run: runSectionProps,
}

func init() {
	sectionCmd.AddCommand(sectionPropsCmd)

	sectionPropsCmd.Flags().StringVarP(&sectionPropsFile, "file", "f", "", "Path to section JSON file [required]")
	sectionPropsCmd.MarkFlagRequired("file")
	sectionPropsCmd.Flags().BoolVar(&sectionPropsDiagram, "diagram", false, "Sketch the section midline")
	sectionPropsCmd.Flags().StringVarP(&sectionPropsOutput, "output", "o", "", "Export the midline to an image (png, svg, pdf)")
}

func runSectionProps(cmd *cobra.Command, args []string) {
	geom, err := section.LoadFromFile(sectionPropsFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	props := geom.CalculateProperties()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     THIN-WALLED SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if geom.Name != "" {
		fmt.Printf("  Section: %s\n", geom.Name)
	}
	if geom.Description != "" {
		fmt.Printf("  Description: %s\n", geom.Description)
	}
	fmt.Println()

	fmt.Println("SECTION GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Walls:\t%d segments\n", len(geom.Walls))
	kind := "open"
	if geom.Closed {
		kind = "closed (single cell)"
	}
	fmt.Fprintf(w, "  Contour:\t%s\n", kind)
	fmt.Fprintf(w, "  Width:\t%.1f mm\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.1f mm\n", props.Height)
	if geom.Closed {
		fmt.Fprintf(w, "  Enclosed Area (Ah):\t%.6f m²\n", props.EnclosedArea)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("MODULUS-WEIGHTED PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Axial Stiffness (EA):\t%.4g N\n", props.EA)
	fmt.Fprintf(w, "  Centroid:\t(%.2f, %.2f) mm\n", props.CentroidY, props.CentroidZ)
	fmt.Fprintf(w, "  EI_yy:\t%.4g N·m²\n", props.EIyy)
	fmt.Fprintf(w, "  EI_zz:\t%.4g N·m²\n", props.EIzz)
	fmt.Fprintf(w, "  EI_yz:\t%.4g N·m²\n", props.EIyz)
	w.Flush()
	fmt.Println()

	if sectionPropsDiagram {
		fmt.Println(diagram.DrawGeometry(geom))
	}
	if sectionPropsOutput != "" {
		if err := diagram.ExportGeometry(geom, sectionPropsOutput); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("  Diagram written to %s\n", sectionPropsOutput)
		}
	}
}
