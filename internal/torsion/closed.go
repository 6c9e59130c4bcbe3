package torsion

import (
	"fmt"

	"github.com/alexiusacademia/golam/internal/trace"
)

// Box is the closed rectangular box of the torsion case study (lecture
// notes pages 77-80): two horizontal covers and two vertical webs with
// different laminate shear moduli, twisted by a torque about the beam axis.
type Box struct {
	// Loading (kN·m)
	Torque float64 // Mx

	// Geometry (mm)
	Width  float64 // b - cover span
	Height float64 // h - web span

	// Cover laminate
	CoverG   float64 // GPa
	CoverThk float64 // mm

	// Web laminate
	WebG   float64 // GPa
	WebThk float64 // mm
}

// NewBox creates the box with the documented example laminates.
func NewBox(torque float64) *Box {
	return &Box{
		Torque:   torque,
		Width:    200,
		Height:   100,
		CoverG:   20,
		CoverThk: 2,
		WebG:     35,
		WebThk:   1,
	}
}

// BoxResult holds the Bredt flow, the torsion stiffness and the corner
// warping of the closed box.
type BoxResult struct {
	EnclosedArea  float64 // A_h (m²)
	Flow          float64 // q (N/m), constant around the cell
	Stiffness     float64 // μĪ_T (N·m²)
	TwistRate     float64 // θ' (rad/m)
	CoverShear    float64 // τ in the covers (MPa)
	WebShear      float64 // τ in the webs (MPa)
	WarpingCorner float64 // u_x at corner A (mm)

	Trace *trace.Trace
}

// Validate rejects non-physical box definitions.
func (b *Box) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("invalid box dimensions: b=%.2f mm, h=%.2f mm", b.Width, b.Height)
	}
	if b.CoverThk <= 0 || b.WebThk <= 0 {
		return fmt.Errorf("wall thicknesses must be positive: cover=%.3f mm, web=%.3f mm", b.CoverThk, b.WebThk)
	}
	if b.CoverG <= 0 || b.WebG <= 0 {
		return fmt.Errorf("shear moduli must be positive: cover=%.3f GPa, web=%.3f GPa", b.CoverG, b.WebG)
	}
	return nil
}

// Evaluate computes the Bredt shear flow, the torsional stiffness and the
// warping displacement at a corner.
func (b *Box) Evaluate() (*BoxResult, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	// SI units
	w := b.Width * 1e-3
	h := b.Height * 1e-3
	gc := b.CoverG * 1e9
	tc := b.CoverThk * 1e-3
	gw := b.WebG * 1e9
	tw := b.WebThk * 1e-3
	mx := b.Torque * 1e3

	result := &BoxResult{
		Trace: trace.New("TORSION OF RECTANGULAR BOX", "77-80"),
	}
	t := result.Trace

	// Bredt: the flow is uniform around a single closed cell
	result.EnclosedArea = w * h
	result.Flow = mx / (2 * result.EnclosedArea)
	t.Add("Shear Flow q", `q = \frac{M_x}{2 A_h}`, result.Flow, "N/m", "78")

	// Torsional stiffness from the contour compliance integral
	compliance := 2*w/(gc*tc) + 2*h/(gw*tw)
	result.Stiffness = 4 * result.EnclosedArea * result.EnclosedArea / compliance
	t.Add("Torsional Stiffness",
		`\mu \overline{I}_T = \frac{4 A_h^2}{\oint \frac{ds}{\mu t}}`,
		result.Stiffness, "N.m^2", "78")

	result.TwistRate = mx / result.Stiffness
	t.Add("Twist Rate", `\theta_{,x} = \frac{M_x}{\mu \overline{I}_T}`, result.TwistRate, "rad/m", "79")

	result.CoverShear = result.Flow / tc / 1e6
	result.WebShear = result.Flow / tw / 1e6
	t.Add("Cover Shear Stress", `\tau_c = \frac{q}{t_c}`, result.CoverShear, "MPa", "79")
	t.Add("Web Shear Stress", `\tau_w = \frac{q}{t_w}`, result.WebShear, "MPa", "79")

	// Warping varies linearly along each wall and vanishes at the wall
	// midpoints by symmetry; integrating du/ds = q/(μt) − θ' p from a
	// cover midpoint to the adjacent corner gives the corner value
	result.WarpingCorner = -(result.Flow/(gc*tc) - result.TwistRate*h/2) * (w / 2) * 1e3
	t.Add("Warping Displacement at A",
		`u_x(A) = -\left( \frac{q}{\mu_c t_c} - \theta_{,x} \frac{h}{2} \right) \frac{b}{2}`,
		result.WarpingCorner, "mm", "80")

	return result, nil
}
