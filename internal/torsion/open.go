package torsion

import (
	"fmt"

	"github.com/alexiusacademia/golam/internal/trace"
)

// OpenWall is one rectangular strip of an open thin-walled section.
type OpenWall struct {
	Name      string
	G         float64 // shear modulus (GPa)
	Length    float64 // mm
	Thickness float64 // mm
}

// OpenSection is an open thin-walled section under uniform torsion
// (lecture notes pages 82-89). Its stiffness is the sum of the strip
// contributions μ l t³/3; each strip sees the maximum shear μ t θ' at
// its surface.
type OpenSection struct {
	Title string
	Pages string

	// Loading (N·m)
	Torque float64 // Mx

	Walls []OpenWall

	// SweptArea A_R (mm²) from the twist center to the point where the
	// warping displacement is requested. Zero skips the warping steps.
	SweptArea float64

	// Page citations for the stiffness/stress and warping steps
	calcPage string
	warpPage string
}

// NewChannel creates the open C-section of the torsion case study
// (pages 82-83) under the given torque (N·m).
func NewChannel(torque float64) *OpenSection {
	return &OpenSection{
		Title:  "TORSION OF OPEN C-SECTION",
		Pages:  "82-83",
		Torque: torque,
		Walls: []OpenWall{
			{Name: "Top Flange", G: 20, Length: 25, Thickness: 1.5},
			{Name: "Web", G: 15, Length: 50, Thickness: 2.5},
			{Name: "Bottom Flange", G: 20, Length: 25, Thickness: 1.5},
		},
		calcPage: "83",
	}
}

// NewISection creates the I-section of the torsion exercise (pages 84-89)
// under the given torque (N·m). The swept area covers the corner point 1
// of the exercise: A_R = b (h/2) / 2.
func NewISection(torque float64) *OpenSection {
	const (
		h = 100.0 // mm
		b = 50.0  // mm
	)
	return &OpenSection{
		Title:  "EXERCISE: TORSION OF I-SECTION",
		Pages:  "84-89",
		Torque: torque,
		Walls: []OpenWall{
			{Name: "Top Flange", G: 16.3, Length: b, Thickness: 1},
			{Name: "Web", G: 20.9, Length: h, Thickness: 5},
			{Name: "Bottom Flange", G: 16.3, Length: b, Thickness: 1},
		},
		SweptArea: b * (h / 2) / 2,
		calcPage:  "88",
		warpPage:  "89",
	}
}

// WallShear is the surface shear stress reached in one strip.
type WallShear struct {
	Name  string
	Shear float64 // MPa
}

// OpenResult holds the torsional response of an open section.
type OpenResult struct {
	Stiffness float64 // μĪ_T (N·m²)
	TwistRate float64 // θ' (rad/m)
	WallShear []WallShear

	// Warping at the requested point (mm); meaningful only when a swept
	// area was given
	Warping float64

	Trace *trace.Trace
}

// Validate rejects non-physical open section definitions.
func (s *OpenSection) Validate() error {
	if len(s.Walls) == 0 {
		return fmt.Errorf("open section must have at least one wall")
	}
	for i, w := range s.Walls {
		if w.Length <= 0 || w.Thickness <= 0 {
			return fmt.Errorf("wall %d must have positive dimensions: l=%.2f mm, t=%.3f mm", i+1, w.Length, w.Thickness)
		}
		if w.G <= 0 {
			return fmt.Errorf("wall %d must have a positive shear modulus, got %.3f GPa", i+1, w.G)
		}
	}
	if s.SweptArea < 0 {
		return fmt.Errorf("swept area must be non-negative, got %.2f mm²", s.SweptArea)
	}
	return nil
}

// Evaluate computes the torsional stiffness, twist rate, wall shear
// stresses and (when a swept area is set) the warping displacement.
func (s *OpenSection) Evaluate() (*OpenResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	result := &OpenResult{
		Trace: trace.New(s.Title, s.Pages),
	}
	t := result.Trace

	calcPage := s.calcPage
	if calcPage == "" {
		calcPage = s.Pages
	}

	// μĪ_T = Σ μ_i l_i t_i³ / 3, all in SI
	for _, w := range s.Walls {
		thk := w.Thickness * 1e-3
		result.Stiffness += w.G * 1e9 * (w.Length * 1e-3) * thk * thk * thk / 3
	}
	t.Add("Torsional Stiffness",
		`\mu \overline{I}_T = \sum \frac{1}{3} \mu_i l_i t_i^3`,
		result.Stiffness, "N.m^2", calcPage)

	result.TwistRate = s.Torque / result.Stiffness
	t.Add("Twist Rate", `\theta_{,x} = \frac{M_x}{\mu \overline{I}_T}`, result.TwistRate, "rad/m", calcPage)

	for _, w := range s.Walls {
		shear := w.G * 1e9 * (w.Thickness * 1e-3) * result.TwistRate / 1e6
		result.WallShear = append(result.WallShear, WallShear{Name: w.Name, Shear: shear})
		t.Add(fmt.Sprintf("Max Shear Stress (%s)", w.Name),
			`\tau_{max} = \mu t \theta_{,x}`, shear, "MPa", calcPage)
	}

	if s.SweptArea > 0 {
		warpPage := s.warpPage
		if warpPage == "" {
			warpPage = calcPage
		}
		sweptM2 := s.SweptArea * 1e-6
		t.Add("Swept Area", `A_{R_p}`, sweptM2, "m^2", warpPage)

		result.Warping = -2 * sweptM2 * result.TwistRate * 1e3
		t.Add("Warping Displacement",
			`u_x = -2 A_{R_p} \theta_{,x}`, result.Warping, "mm", warpPage)
	}

	return result, nil
}
