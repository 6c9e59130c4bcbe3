package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/golam/internal/section"
)

// ExportGeometry exports the section midline to an image file.
func ExportGeometry(g *section.Geometry, filename string) error {
	p := plot.New()
	name := g.Name
	if name == "" {
		name = "Thin-Walled Section"
	}
	p.Title.Text = name
	p.X.Label.Text = "y (mm)"
	p.Y.Label.Text = "z (mm)"

	for _, w := range g.Walls {
		line, err := plotter.NewLine(plotter.XYs{
			{X: w.Start.Y, Y: w.Start.Z},
			{X: w.End.Y, Y: w.End.Z},
		})
		if err != nil {
			return err
		}
		// Line weight scaled with wall thickness so relative gauge reads
		// off the plot
		line.LineStyle.Width = vg.Points(1 + w.Thickness)
		line.LineStyle.Color = color.Black
		p.Add(line)
	}

	return save(p, filename)
}

// ExportProfile exports a sampled shear flow or stress distribution. The
// abscissa is the dimensionless position along the contour.
func ExportProfile(title, yLabel string, values []float64, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "s / l"
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i] = plotter.XY{X: float64(i) / float64(len(values)-1), Y: v}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)
	p.Add(plotter.NewGrid())

	return save(p, filename)
}

func save(p *plot.Plot, filename string) error {
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
