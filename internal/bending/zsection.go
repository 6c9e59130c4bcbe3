package bending

import (
	"fmt"

	"github.com/alexiusacademia/golam/internal/trace"
)

// ZSection represents the idealized thin-walled Z beam of the bending case
// study (lecture notes pages 63-67). Flanges and web are laminates with
// different homogenized moduli, so all section properties are
// modulus-weighted.
type ZSection struct {
	// Homogenized moduli (GPa)
	FlangeE float64 // Ef
	WebE    float64 // Ew

	// Geometry (mm)
	Height      float64 // h - web height
	FlangeWidth float64 // b
	FlangeThk   float64 // tf
	WebThk      float64 // tw

	// Loading (kN·m)
	MomentY float64 // My - bending moment about the horizontal axis
}

// NewZSection creates the Z-section with the documented example geometry.
func NewZSection(flangeE, webE, momentY float64) *ZSection {
	return &ZSection{
		FlangeE:     flangeE,
		WebE:        webE,
		Height:      100,
		FlangeWidth: 50,
		FlangeThk:   2,
		WebThk:      1,
		MomentY:     momentY,
	}
}

// Result holds the weighted stiffnesses and the bending stresses at the
// governing points of the Z-section.
type Result struct {
	// Weighted bending stiffnesses (N·m²)
	EIyy float64
	EIzz float64
	EIyz float64
	D    float64 // EIyy·EIzz − EIyz²

	// Axial stresses (MPa)
	WebStressMax     float64 // web at z = h/2
	FlangeStressJunc float64 // flange at the web junction (y = 0)
	FlangeStressTip  float64 // flange tip (y = b)

	Trace *trace.Trace
}

// Validate rejects non-physical inputs before evaluation.
func (s *ZSection) Validate() error {
	if s.FlangeE <= 0 || s.WebE <= 0 {
		return fmt.Errorf("moduli must be positive: Ef=%.3f GPa, Ew=%.3f GPa", s.FlangeE, s.WebE)
	}
	if s.Height <= 0 || s.FlangeWidth <= 0 {
		return fmt.Errorf("invalid section dimensions: h=%.2f mm, b=%.2f mm", s.Height, s.FlangeWidth)
	}
	if s.FlangeThk <= 0 || s.WebThk <= 0 {
		return fmt.Errorf("wall thicknesses must be positive: tf=%.3f mm, tw=%.3f mm", s.FlangeThk, s.WebThk)
	}
	return nil
}

// Evaluate computes the weighted stiffnesses and the stress distribution
// under the bending moment My.
func (s *ZSection) Evaluate() (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	// Work in SI
	h := s.Height * 1e-3
	b := s.FlangeWidth * 1e-3
	tf := s.FlangeThk * 1e-3
	tw := s.WebThk * 1e-3
	ef := s.FlangeE * 1e9
	ew := s.WebE * 1e9
	my := s.MomentY * 1e3

	result := &Result{
		Trace: trace.New("BENDING OF THIN-WALLED Z-SECTION", "63-67"),
	}
	t := result.Trace

	// Flanges idealized as point areas at ±h/2, web as a thin rectangle
	result.EIyy = 2*(tf*b*(h/2)*(h/2)*ef) + ew*tw*h*h*h/12
	t.Add("Bending Stiffness EI_yy",
		`\overline{E}I_{yy} \approx 2(t_f b (\frac{h}{2})^2 E_f) + E_w \frac{t_w h^3}{12}`,
		result.EIyy, "N.m^2", "64")

	// Flanges about the vertical axis, with the parallel-axis shift b/2
	flangeZZ := tf*b*b*b/12 + tf*b*(b/2)*(b/2)
	result.EIzz = 2 * flangeZZ * ef
	t.Add("Bending Stiffness EI_zz",
		`\overline{E}I_{zz} \approx 2 E_f (I_{zz}^{local} + A d^2)`,
		result.EIzz, "N.m^2", "64")

	// Product stiffness of the anti-symmetric Z
	result.EIyz = 2 * ef * tf * b * (h / 2) * (b / 2)
	t.Add("Product Stiffness EI_yz",
		`\overline{E}I_{yz} = 2 E_f (t_f b) (\frac{h}{2}) (\frac{b}{2})`,
		result.EIyz, "N.m^2", "64")

	result.D = result.EIyy*result.EIzz - result.EIyz*result.EIyz

	// Unsymmetric bending under My: σ = E (EIzz·My·z − EIyz·My·y) / D
	result.WebStressMax = ew * (result.EIzz * my * (h / 2)) / result.D / 1e6
	t.Add("Max Web Stress",
		`\sigma_{web} = E_w \frac{\overline{E}I_{zz} M_y z}{D}`,
		result.WebStressMax, "MPa", "65")

	result.FlangeStressJunc = ef * (result.EIzz * my * (h / 2)) / result.D / 1e6
	t.Add("Flange Stress (Junction)",
		`\sigma_f(y{=}0) = E_f \frac{\overline{E}I_{zz} M_y \frac{h}{2}}{D}`,
		result.FlangeStressJunc, "MPa", "66")

	result.FlangeStressTip = ef * (result.EIzz*my*(h/2) - result.EIyz*my*b) / result.D / 1e6
	t.Add("Flange Stress (Tip)",
		`\sigma_f(y{=}b) = E_f \frac{\overline{E}I_{zz} M_y \frac{h}{2} - \overline{E}I_{yz} M_y b}{D}`,
		result.FlangeStressTip, "MPa", "66")

	return result, nil
}

// FlangeStress returns the axial stress (MPa) in the top flange at the
// span-wise offset y (mm) from the web junction. The distribution is linear
// between the junction and the tip.
func (r *Result) FlangeStress(s *ZSection, y float64) float64 {
	frac := y / s.FlangeWidth
	return r.FlangeStressJunc + frac*(r.FlangeStressTip-r.FlangeStressJunc)
}
