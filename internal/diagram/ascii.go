package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/golam/internal/section"
)

// DrawGeometry rasterizes the section midline onto a character grid.
// The sketch conveys shape and proportions only.
func DrawGeometry(g *section.Geometry) string {
	const (
		widthChars  = 48
		heightChars = 20
	)

	props := g.CalculateProperties()
	if props.Width <= 0 && props.Height <= 0 {
		return ""
	}

	// Uniform scale preserving aspect ratio (terminal cells are ~2:1)
	scale := math.Min(
		float64(widthChars-1)/math.Max(props.Width, 1e-9),
		float64(heightChars-1)/math.Max(props.Height, 1e-9)*2,
	)

	grid := make([][]rune, heightChars)
	for i := range grid {
		grid[i] = make([]rune, widthChars)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	plot := func(y, z float64) {
		col := int((y - props.MinY) * scale)
		row := heightChars - 1 - int((z-props.MinZ)*scale/2)
		if row >= 0 && row < heightChars && col >= 0 && col < widthChars {
			grid[row][col] = '█'
		}
	}

	for _, w := range g.Walls {
		steps := int(w.Length()*scale) + 1
		for i := 0; i <= steps; i++ {
			frac := float64(i) / float64(steps)
			plot(
				w.Start.Y+frac*(w.End.Y-w.Start.Y),
				w.Start.Z+frac*(w.End.Z-w.Start.Z),
			)
		}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	name := g.Name
	if name == "" {
		name = "SECTION MIDLINE"
	}
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(name)))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", len(name))))
	for _, row := range grid {
		sb.WriteString("  ")
		sb.WriteString(string(row))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("\n  Width: %.1f mm   Height: %.1f mm\n", props.Width, props.Height))
	return sb.String()
}

// FlowGraph renders a sampled shear flow or stress profile as a terminal
// line chart.
func FlowGraph(caption string, values []float64) string {
	if len(values) == 0 {
		return ""
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(56),
		asciigraph.Caption(caption),
	)
	return "\n" + graph + "\n"
}
