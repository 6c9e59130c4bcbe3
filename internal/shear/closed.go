package shear

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/golam/internal/trace"
)

// TrapezoidCell is the closed single-cell section of the shearing case study
// (lecture notes pages 70-75): a vertical web BC of height h and two equal
// inclined walls AB, AC meeting at the apex A, loaded by a vertical shear
// force through the web. The cell is symmetric about the horizontal axis.
type TrapezoidCell struct {
	// Loading (kN)
	ShearZ float64 // Tz - vertical shear force

	// Geometry (mm)
	WebHeight float64 // h - vertical web BC
	LegLength float64 // l - inclined walls AB and AC

	// Web laminate
	WebE   float64 // GPa
	WebThk float64 // mm

	// Inclined wall laminate
	LegE   float64 // GPa
	LegThk float64 // mm
}

// NewTrapezoidCell creates the cell with the documented example laminates.
func NewTrapezoidCell(shearZ float64) *TrapezoidCell {
	return &TrapezoidCell{
		ShearZ:    shearZ,
		WebHeight: 300,
		LegLength: 250,
		WebE:      20,
		WebThk:    1.5,
		LegE:      45,
		LegThk:    2,
	}
}

// Result holds the shear flow distribution of the closed cell: the open
// (cut) flows, the redundant closing flux, and their superposition.
type Result struct {
	Depth        float64 // horizontal distance apex-to-web (mm)
	EIyy         float64 // weighted bending stiffness (N·m²)
	EnclosedArea float64 // Bredt area A_h (m²)

	// Open section flows after cutting at the apex (N/m)
	OpenFlowCorner float64 // q_o at B (and C)
	OpenFlowWebMid float64 // q_o at web mid-height

	// Closing flux from the redundant-cut correction (N/m)
	ClosingFlux float64

	// Final superposed flows (N/m)
	FlowApex   float64
	FlowCorner float64
	FlowWebMid float64

	Trace *trace.Trace
}

// Validate rejects non-physical cell definitions.
func (c *TrapezoidCell) Validate() error {
	if c.WebHeight <= 0 || c.LegLength <= 0 {
		return fmt.Errorf("invalid cell dimensions: h=%.2f mm, l=%.2f mm", c.WebHeight, c.LegLength)
	}
	if c.LegLength <= c.WebHeight/2 {
		return fmt.Errorf("degenerate cell: leg length %.2f mm must exceed half the web height %.2f mm", c.LegLength, c.WebHeight/2)
	}
	if c.WebThk <= 0 || c.LegThk <= 0 {
		return fmt.Errorf("wall thicknesses must be positive: web=%.3f mm, leg=%.3f mm", c.WebThk, c.LegThk)
	}
	if c.WebE <= 0 || c.LegE <= 0 {
		return fmt.Errorf("moduli must be positive: web=%.3f GPa, leg=%.3f GPa", c.WebE, c.LegE)
	}
	return nil
}

// Evaluate computes the shear flow distribution: open flows from a cut at
// the apex, the closing flux restoring torque equivalence, and the final
// superposition.
func (c *TrapezoidCell) Evaluate() (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// SI units
	h := c.WebHeight * 1e-3
	l := c.LegLength * 1e-3
	ew := c.WebE * 1e9
	tw := c.WebThk * 1e-3
	el := c.LegE * 1e9
	tl := c.LegThk * 1e-3
	tz := c.ShearZ * 1e3

	result := &Result{
		Trace: trace.New("SHEARING OF CLOSED TRAPEZOIDAL SECTION", "70-75"),
	}
	t := result.Trace

	// Horizontal depth of the cell from the apex to the web
	d := math.Sqrt(l*l - (h/2)*(h/2))
	result.Depth = d * 1e3

	// Weighted bending stiffness: web as a thin rectangle, each inclined
	// wall integrated along its midline (z runs linearly from 0 to h/2)
	result.EIyy = ew*tw*h*h*h/12 + 2*el*tl*l*(h/2)*(h/2)/3
	t.Add("Bending Stiffness EI_yy",
		`\overline{E}I_{yy} = E_w \frac{t_w h^3}{12} + \frac{2}{3} E_l t_l l (\frac{h}{2})^2`,
		result.EIyy, "N.m^2", "71")

	// Open shear flow after cutting the cell at the apex A:
	//   q_o(s) = (T_z / EI_yy) ∫ E t z ds
	// Along a leg z = (h/2)(s/l), so q_o grows quadratically to B
	flux := tz / result.EIyy
	result.OpenFlowCorner = flux * el * tl * (h / 2) * l / 2
	t.Add("Open Shear Flow at B (q_o)",
		`q_o(B) = \frac{T_z}{\overline{E}I_{yy}} E_l t_l \frac{h}{2} \frac{l}{2}`,
		result.OpenFlowCorner, "N/m", "72")

	// Along the web the open flow is parabolic, peaking at mid-height
	result.OpenFlowWebMid = result.OpenFlowCorner + flux*ew*tw*h*h/8
	t.Add("Open Shear Flow at Web Mid",
		`q_o(0) = q_o(B) + \frac{T_z}{\overline{E}I_{yy}} E_w t_w \frac{h^2}{8}`,
		result.OpenFlowWebMid, "N/m", "73")

	// Closing flux from torque equivalence about the apex. The inclined
	// walls pass through A, so only the web flow contributes:
	//   ∮ p q_o ds = d ∫_web q_o ds
	webFlowIntegral := result.OpenFlowCorner*h + flux*ew*tw*h*h*h/12
	result.EnclosedArea = d * h / 2
	result.ClosingFlux = -(d * webFlowIntegral) / (2 * result.EnclosedArea)
	t.Add("Correction Flux q(0)",
		`q(0) = \frac{-\oint p q_o ds}{2 A_h}`,
		result.ClosingFlux, "N/m", "74")

	// Final flows: superposition of the open distribution and the flux
	result.FlowApex = result.ClosingFlux
	result.FlowCorner = result.OpenFlowCorner + result.ClosingFlux
	result.FlowWebMid = result.OpenFlowWebMid + result.ClosingFlux
	t.Add("Final Flow at B/C",
		`q(B) = q_o(B) + q(0)`,
		result.FlowCorner, "N/m", "75")
	t.Add("Final Flow at Web Mid",
		`q_{web}(0) = q_o(0) + q(0)`,
		result.FlowWebMid, "N/m", "75")

	return result, nil
}

// LegFlowProfile samples the final shear flow along an inclined wall from
// the apex (s=0) to the corner (s=l), n+1 points. Used for plotting.
func (c *TrapezoidCell) LegFlowProfile(r *Result, n int) []float64 {
	profile := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		frac := float64(i) / float64(n)
		profile[i] = r.OpenFlowCorner*frac*frac + r.ClosingFlux
	}
	return profile
}

// WebFlowProfile samples the final shear flow along the web from B to C.
func (c *TrapezoidCell) WebFlowProfile(r *Result, n int) []float64 {
	profile := make([]float64, n+1)
	parabolic := r.OpenFlowWebMid - r.OpenFlowCorner
	for i := 0; i <= n; i++ {
		// ζ runs from +1 at B through 0 at mid-height to -1 at C
		zeta := 1 - 2*float64(i)/float64(n)
		qo := r.OpenFlowCorner + parabolic*(1-zeta*zeta)
		profile[i] = qo + r.ClosingFlux
	}
	return profile
}
