package torsion

import (
	"testing"

	"github.com/alexiusacademia/golam/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noteBoxGeometry rebuilds the page 77-80 box wall by wall.
func noteBoxGeometry() *section.Geometry {
	return &section.Geometry{
		Name:   "rectangular box",
		Closed: true,
		Walls: []section.Wall{
			{Start: section.Point{Y: 0, Z: 0}, End: section.Point{Y: 200, Z: 0}, Thickness: 2, E: 50, G: 20},
			{Start: section.Point{Y: 200, Z: 0}, End: section.Point{Y: 200, Z: 100}, Thickness: 1, E: 80, G: 35},
			{Start: section.Point{Y: 200, Z: 100}, End: section.Point{Y: 0, Z: 100}, Thickness: 2, E: 50, G: 20},
			{Start: section.Point{Y: 0, Z: 100}, End: section.Point{Y: 0, Z: 0}, Thickness: 1, E: 80, G: 35},
		},
	}
}

func TestGeometryMatchesBoxCase(t *testing.T) {
	result, err := EvaluateGeometry(noteBoxGeometry(), 10e3)
	require.NoError(t, err)

	reference, err := NewBox(10).Evaluate()
	require.NoError(t, err)

	assert.True(t, result.Closed)
	assert.InEpsilon(t, reference.EnclosedArea, result.EnclosedArea, 1e-9)
	assert.InEpsilon(t, reference.Flow, result.Flow, 1e-9)
	assert.InEpsilon(t, reference.Stiffness, result.Stiffness, 1e-9)
	assert.InEpsilon(t, reference.TwistRate, result.TwistRate, 1e-9)
}

func TestGeometryMatchesChannelCase(t *testing.T) {
	g := &section.Geometry{
		Name: "C-section",
		Walls: []section.Wall{
			{Start: section.Point{Y: 25, Z: 50}, End: section.Point{Y: 0, Z: 50}, Thickness: 1.5, E: 50, G: 20},
			{Start: section.Point{Y: 0, Z: 50}, End: section.Point{Y: 0, Z: 0}, Thickness: 2.5, E: 40, G: 15},
			{Start: section.Point{Y: 0, Z: 0}, End: section.Point{Y: 25, Z: 0}, Thickness: 1.5, E: 50, G: 20},
		},
	}

	result, err := EvaluateGeometry(g, 10)
	require.NoError(t, err)

	reference, err := NewChannel(10).Evaluate()
	require.NoError(t, err)

	assert.False(t, result.Closed)
	assert.InEpsilon(t, reference.Stiffness, result.Stiffness, 1e-9)
	assert.InEpsilon(t, reference.TwistRate, result.TwistRate, 1e-9)
	require.Len(t, result.WallShear, 3)
	for i := range result.WallShear {
		assert.InEpsilon(t, reference.WallShear[i].Shear, result.WallShear[i].Shear, 1e-9)
	}
}

func TestGeometryRequiresShearModulus(t *testing.T) {
	g := noteBoxGeometry()
	g.Walls[0].G = 0
	_, err := EvaluateGeometry(g, 100)
	assert.Error(t, err)
}

func TestGeometryRejectsDegenerate(t *testing.T) {
	g := noteBoxGeometry()
	g.Walls[0].Thickness = 0
	_, err := EvaluateGeometry(g, 100)
	assert.Error(t, err)
}
