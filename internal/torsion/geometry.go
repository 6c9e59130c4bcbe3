package torsion

import (
	"fmt"

	"github.com/alexiusacademia/golam/internal/section"
	"github.com/alexiusacademia/golam/internal/trace"
)

// GeometryResult holds the torsional response of a user-defined thin-walled
// section, closed (Bredt) or open (strip summation).
type GeometryResult struct {
	Closed       bool
	EnclosedArea float64 // A_h (m²), closed sections only
	Flow         float64 // q (N/m), closed sections only
	Stiffness    float64 // μĪ_T (N·m²)
	TwistRate    float64 // θ' (rad/m)
	WallShear    []WallShear

	Trace *trace.Trace
}

// EvaluateGeometry computes the uniform torsion response of a section
// loaded by the torque Mx (N·m). Closed single-cell sections use the Bredt
// formulas; open sections use the strip summation.
func EvaluateGeometry(g *section.Geometry, torque float64) (*GeometryResult, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	for i, w := range g.Walls {
		if w.G <= 0 {
			return nil, fmt.Errorf("wall %d needs a positive shear modulus for torsion, got %.3f GPa", i+1, w.G)
		}
	}

	title := "TORSION OF THIN-WALLED SECTION"
	if g.Name != "" {
		title = fmt.Sprintf("TORSION OF SECTION %q", g.Name)
	}
	result := &GeometryResult{
		Closed: g.Closed,
		Trace:  trace.New(title, "77-89"),
	}
	t := result.Trace

	if g.Closed {
		props := g.CalculateProperties()
		result.EnclosedArea = props.EnclosedArea
		if result.EnclosedArea <= 0 {
			return nil, fmt.Errorf("closed section encloses no area")
		}

		result.Flow = torque / (2 * result.EnclosedArea)
		t.Add("Shear Flow q", `q = \frac{M_x}{2 A_h}`, result.Flow, "N/m", "78")

		var compliance float64
		for _, w := range g.Walls {
			compliance += w.Length() * 1e-3 / (w.G * 1e9 * w.Thickness * 1e-3)
		}
		result.Stiffness = 4 * result.EnclosedArea * result.EnclosedArea / compliance
		t.Add("Torsional Stiffness",
			`\mu \overline{I}_T = \frac{4 A_h^2}{\oint \frac{ds}{\mu t}}`,
			result.Stiffness, "N.m^2", "78")

		result.TwistRate = torque / result.Stiffness
		t.Add("Twist Rate", `\theta_{,x} = \frac{M_x}{\mu \overline{I}_T}`, result.TwistRate, "rad/m", "79")

		for i, w := range g.Walls {
			shear := result.Flow / (w.Thickness * 1e-3) / 1e6
			result.WallShear = append(result.WallShear, WallShear{
				Name:  wallName(w, i),
				Shear: shear,
			})
			t.Add(fmt.Sprintf("Shear Stress (%s)", wallName(w, i)),
				`\tau = \frac{q}{t}`, shear, "MPa", "78")
		}
		return result, nil
	}

	for _, w := range g.Walls {
		thk := w.Thickness * 1e-3
		result.Stiffness += w.G * 1e9 * (w.Length() * 1e-3) * thk * thk * thk / 3
	}
	t.Add("Torsional Stiffness",
		`\mu \overline{I}_T = \sum \frac{1}{3} \mu_i l_i t_i^3`,
		result.Stiffness, "N.m^2", "83")

	result.TwistRate = torque / result.Stiffness
	t.Add("Twist Rate", `\theta_{,x} = \frac{M_x}{\mu \overline{I}_T}`, result.TwistRate, "rad/m", "83")

	for i, w := range g.Walls {
		shear := w.G * 1e9 * (w.Thickness * 1e-3) * result.TwistRate / 1e6
		result.WallShear = append(result.WallShear, WallShear{
			Name:  wallName(w, i),
			Shear: shear,
		})
		t.Add(fmt.Sprintf("Max Shear Stress (%s)", wallName(w, i)),
			`\tau_{max} = \mu t \theta_{,x}`, shear, "MPa", "83")
	}

	return result, nil
}

func wallName(w section.Wall, i int) string {
	if w.Layup != "" {
		return fmt.Sprintf("wall %d, %s", i+1, w.Layup)
	}
	return fmt.Sprintf("wall %d", i+1)
}
