package section

import (
	"fmt"
	"math"
)

// Geometry represents an idealized thin-walled section built from straight
// wall segments along the midline. Walls may carry different ply lay-ups,
// idealized here as per-wall homogenized moduli.
//
// The local coordinate system follows the lecture notes:
// - Y-axis is horizontal, positive to the right
// - Z-axis is vertical, positive upward
// - the X-axis (beam axis) points out of the section plane
type Geometry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Closed marks a single-cell closed section. The walls must then form
	// a loop: each wall starts where the previous one ends.
	Closed bool `json:"closed"`

	// Walls ordered along the midline contour
	Walls []Wall `json:"walls"`
}

// Wall is one straight segment of a thin-walled section midline.
type Wall struct {
	Start Point `json:"start"` // mm
	End   Point `json:"end"`   // mm

	Thickness float64 `json:"thickness"` // mm

	// Homogenized wall moduli (GPa)
	E float64 `json:"e"` // Young's modulus along the beam axis
	G float64 `json:"g"` // in-plane shear modulus

	// Optional lay-up description (e.g. "[0/90]s carbon/epoxy")
	Layup string `json:"layup,omitempty"`
}

// Point is a 2D midline coordinate (mm).
type Point struct {
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Length returns the wall midline length (mm).
func (w Wall) Length() float64 {
	dy := w.End.Y - w.Start.Y
	dz := w.End.Z - w.Start.Z
	return math.Hypot(dy, dz)
}

const contourTol = 1e-6 // mm, wall endpoint mismatch tolerance

// Validate checks the section definition is physically meaningful.
func (g *Geometry) Validate() error {
	if len(g.Walls) == 0 {
		return &ValidationError{"section must have at least one wall"}
	}
	if g.Closed && len(g.Walls) < 3 {
		return &ValidationError{"closed section must have at least 3 walls"}
	}
	for i, w := range g.Walls {
		if w.Thickness <= 0 {
			return &ValidationError{fmt.Sprintf("wall %d must have positive thickness, got %.4f mm", i+1, w.Thickness)}
		}
		if w.Length() <= 0 {
			return &ValidationError{fmt.Sprintf("wall %d has zero length", i+1)}
		}
		if w.E <= 0 {
			return &ValidationError{fmt.Sprintf("wall %d must have positive Young's modulus, got %.3f GPa", i+1, w.E)}
		}
		if w.G < 0 {
			return &ValidationError{fmt.Sprintf("wall %d has negative shear modulus %.3f GPa", i+1, w.G)}
		}
	}
	if g.Closed {
		for i := range g.Walls {
			j := (i + 1) % len(g.Walls)
			dy := g.Walls[j].Start.Y - g.Walls[i].End.Y
			dz := g.Walls[j].Start.Z - g.Walls[i].End.Z
			if math.Hypot(dy, dz) > contourTol {
				return &ValidationError{fmt.Sprintf("closed contour broken between wall %d and wall %d", i+1, j+1)}
			}
		}
	}
	return nil
}

// ValidationError represents a section definition error.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
