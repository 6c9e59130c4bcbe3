package section

import "math"

// Properties holds modulus-weighted geometric properties of a section.
// Because each wall may have a different homogenized modulus, plain area
// moments are replaced by their E-weighted counterparts (lecture notes
// pages 60-64).
type Properties struct {
	// Bounding box (mm)
	MinY, MaxY float64
	MinZ, MaxZ float64
	Width      float64 // mm
	Height     float64 // mm

	// Modulus-weighted axial stiffness
	EA float64 // N

	// Modulus-weighted centroid (mm)
	CentroidY float64
	CentroidZ float64

	// Modulus-weighted second moments about the weighted centroid
	EIyy float64 // N·m²
	EIzz float64 // N·m²
	EIyz float64 // N·m²

	// Enclosed midline (Bredt) area for closed cells (m²), zero for open
	EnclosedArea float64
}

const (
	mmToM   = 1e-3
	gpaToPa = 1e9
)

// CalculateProperties computes the modulus-weighted properties of the
// section about its weighted centroid.
func (g *Geometry) CalculateProperties() *Properties {
	props := &Properties{}
	if len(g.Walls) == 0 {
		return props
	}

	props.MinY, props.MaxY = g.Walls[0].Start.Y, g.Walls[0].Start.Y
	props.MinZ, props.MaxZ = g.Walls[0].Start.Z, g.Walls[0].Start.Z
	for _, w := range g.Walls {
		for _, p := range [2]Point{w.Start, w.End} {
			props.MinY = math.Min(props.MinY, p.Y)
			props.MaxY = math.Max(props.MaxY, p.Y)
			props.MinZ = math.Min(props.MinZ, p.Z)
			props.MaxZ = math.Max(props.MaxZ, p.Z)
		}
	}
	props.Width = props.MaxY - props.MinY
	props.Height = props.MaxZ - props.MinZ

	// Weighted area and centroid: each wall contributes E·t·L at its midpoint
	var ea, momY, momZ float64
	for _, w := range g.Walls {
		dEA := w.E * gpaToPa * w.Thickness * mmToM * w.Length() * mmToM
		ea += dEA
		momY += dEA * (w.Start.Y + w.End.Y) / 2 * mmToM
		momZ += dEA * (w.Start.Z + w.End.Z) / 2 * mmToM
	}
	props.EA = ea
	if ea > 0 {
		props.CentroidY = momY / ea / mmToM
		props.CentroidZ = momZ / ea / mmToM
	}

	// Weighted second moments about the weighted centroid.
	// For a straight wall the midline integrals are exact:
	//   ∫ z² ds = L (z₁² + z₁z₂ + z₂²) / 3
	//   ∫ y z ds = L (2y₁z₁ + y₁z₂ + y₂z₁ + 2y₂z₂) / 6
	for _, w := range g.Walls {
		y1 := (w.Start.Y - props.CentroidY) * mmToM
		y2 := (w.End.Y - props.CentroidY) * mmToM
		z1 := (w.Start.Z - props.CentroidZ) * mmToM
		z2 := (w.End.Z - props.CentroidZ) * mmToM
		l := w.Length() * mmToM
		et := w.E * gpaToPa * w.Thickness * mmToM

		props.EIyy += et * l * (z1*z1 + z1*z2 + z2*z2) / 3
		props.EIzz += et * l * (y1*y1 + y1*y2 + y2*y2) / 3
		props.EIyz += et * l * (2*y1*z1 + y1*z2 + y2*z1 + 2*y2*z2) / 6
	}

	if g.Closed {
		props.EnclosedArea = g.enclosedArea()
	}

	return props
}

// enclosedArea computes the midline (Bredt) area of a closed cell in m²
// using the shoelace formula over the wall start points.
func (g *Geometry) enclosedArea() float64 {
	var signed float64
	n := len(g.Walls)
	for i := 0; i < n; i++ {
		p := g.Walls[i].Start
		q := g.Walls[i].End
		signed += p.Y*q.Z - q.Y*p.Z
	}
	return math.Abs(signed) / 2 * mmToM * mmToM
}
