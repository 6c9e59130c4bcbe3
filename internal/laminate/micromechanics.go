package laminate

import (
	"fmt"

	"github.com/alexiusacademia/golam/internal/trace"
)

// Bar represents a unidirectional fiber-composite bar loaded axially.
// The homogenized moduli follow the rule of mixtures (lecture notes
// pages 27-30).
type Bar struct {
	// Constituent moduli (GPa)
	MatrixE float64 // Em - matrix Young's modulus
	FiberE  float64 // Ef - fiber Young's modulus

	// Volume fractions (dimensionless, must sum to 1)
	MatrixVf float64 // vm
	FiberVf  float64 // vf

	// Bar geometry
	Width  float64 // mm
	Depth  float64 // mm
	Length float64 // m

	// Loading (kN)
	AxialLoad float64
}

// NewBar creates a bar with the lecture-note example values as defaults.
func NewBar(matrixE, fiberE, matrixVf, fiberVf float64) *Bar {
	return &Bar{
		MatrixE:  matrixE,
		FiberE:   fiberE,
		MatrixVf: matrixVf,
		FiberVf:  fiberVf,
		Width:    80,
		Depth:    50,
		Length:   0.5,
	}
}

// BarResult holds the homogenized moduli and the axial response.
type BarResult struct {
	// Homogenized moduli (GPa)
	Ex float64 // longitudinal (rule of mixtures)
	Ey float64 // transverse (inverse rule of mixtures)

	// Axial response
	Area       float64 // mm²
	Stress     float64 // σxx (MPa)
	Strain     float64 // εxx
	Elongation float64 // ΔL (mm)

	Trace *trace.Trace
}

const volumeFractionTol = 1e-6

// Validate checks the bar definition for non-physical inputs.
func (b *Bar) Validate() error {
	if b.MatrixE <= 0 || b.FiberE <= 0 {
		return fmt.Errorf("constituent moduli must be positive: Em=%.3f GPa, Ef=%.3f GPa", b.MatrixE, b.FiberE)
	}
	if b.MatrixVf <= 0 || b.MatrixVf >= 1 || b.FiberVf <= 0 || b.FiberVf >= 1 {
		return fmt.Errorf("volume fractions must lie in (0, 1): vm=%.4f, vf=%.4f", b.MatrixVf, b.FiberVf)
	}
	if sum := b.MatrixVf + b.FiberVf; sum < 1-volumeFractionTol || sum > 1+volumeFractionTol {
		return fmt.Errorf("volume fractions must sum to 1: vm+vf=%.6f", sum)
	}
	if b.Width <= 0 || b.Depth <= 0 || b.Length <= 0 {
		return fmt.Errorf("bar dimensions must be positive: width=%.2f mm, depth=%.2f mm, length=%.3f m", b.Width, b.Depth, b.Length)
	}
	return nil
}

// Evaluate computes the homogenized moduli and the axial response of the bar.
func (b *Bar) Evaluate() (*BarResult, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	result := &BarResult{
		Trace: trace.New("MICROMECHANICS OF COMPOSITE BAR", "27-30"),
	}
	t := result.Trace

	// Rule of mixtures, longitudinal direction
	result.Ex = b.FiberVf*b.FiberE + b.MatrixVf*b.MatrixE
	t.Add("Longitudinal Modulus (Ex)", `E_x = v_f E_f + v_m E_m`, result.Ex, "GPa", "28")

	// Inverse rule of mixtures, transverse direction
	result.Ey = 1 / (b.FiberVf/b.FiberE + b.MatrixVf/b.MatrixE)
	t.Add("Transverse Modulus (Ey)", `E_y = \left( \frac{v_f}{E_f} + \frac{v_m}{E_m} \right)^{-1}`, result.Ey, "GPa", "28")

	// Structural response under the axial load
	result.Area = b.Width * b.Depth
	areaM2 := result.Area * 1e-6
	result.Stress = b.AxialLoad * 1e3 / areaM2 / 1e6
	t.Add("Axial Stress", `\sigma_{xx} = \frac{F}{A}`, result.Stress, "MPa", "30")

	result.Strain = result.Stress * 1e6 / (result.Ex * 1e9)
	result.Elongation = result.Strain * b.Length * 1e3
	t.Add("Lengthening", `\Delta L = \epsilon_{xx} L`, result.Elongation, "mm", "30")

	return result, nil
}
