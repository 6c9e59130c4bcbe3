package section

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxGeometry builds a closed 200x100 mm rectangular box with uniform
// walls: E=70 GPa, t=2 mm.
func boxGeometry() *Geometry {
	return &Geometry{
		Name:   "box",
		Closed: true,
		Walls: []Wall{
			{Start: Point{0, 0}, End: Point{200, 0}, Thickness: 2, E: 70, G: 26},
			{Start: Point{200, 0}, End: Point{200, 100}, Thickness: 2, E: 70, G: 26},
			{Start: Point{200, 100}, End: Point{0, 100}, Thickness: 2, E: 70, G: 26},
			{Start: Point{0, 100}, End: Point{0, 0}, Thickness: 2, E: 70, G: 26},
		},
	}
}

func TestBoxProperties(t *testing.T) {
	g := boxGeometry()
	require.NoError(t, g.Validate())

	props := g.CalculateProperties()

	assert.InDelta(t, 200, props.Width, 1e-9)
	assert.InDelta(t, 100, props.Height, 1e-9)
	assert.InDelta(t, 100, props.CentroidY, 1e-6)
	assert.InDelta(t, 50, props.CentroidZ, 1e-6)

	// EA = E t × perimeter
	assert.InEpsilon(t, 70e9*0.002*0.6, props.EA, 1e-9)

	// Thin-walled rectangle: Iyy = 2 t b (h/2)² + 2 t h³/12
	assert.InEpsilon(t, 70e9*2.3333333e-6, props.EIyy, 1e-6)
	// and Izz by the same formula with b and h swapped
	assert.InEpsilon(t, 70e9*(2*0.002*0.1*0.01+2*0.002*0.008/12), props.EIzz, 1e-6)

	// Doubly symmetric: no product stiffness
	assert.InDelta(t, 0, props.EIyz, 1e-3)

	assert.InEpsilon(t, 0.02, props.EnclosedArea, 1e-9)
}

func TestInclinedWallSecondMoment(t *testing.T) {
	// A single inclined wall from the origin to (200, 150): the midline
	// integral about the weighted centroid must match t L (Δz)²/12
	g := &Geometry{
		Walls: []Wall{
			{Start: Point{0, 0}, End: Point{200, 150}, Thickness: 2, E: 45, G: 5},
		},
	}
	require.NoError(t, g.Validate())

	props := g.CalculateProperties()
	l := 0.25
	assert.InEpsilon(t, 45e9*0.002*l*0.15*0.15/12, props.EIyy, 1e-9)
	assert.InDelta(t, 0, props.EnclosedArea, 1e-12)
}

func TestValidationRejectsDegenerateWalls(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Geometry)
	}{
		{"zero thickness", func(g *Geometry) { g.Walls[0].Thickness = 0 }},
		{"zero length", func(g *Geometry) { g.Walls[1].End = g.Walls[1].Start }},
		{"zero modulus", func(g *Geometry) { g.Walls[2].E = 0 }},
		{"negative shear modulus", func(g *Geometry) { g.Walls[3].G = -1 }},
		{"broken contour", func(g *Geometry) { g.Walls[2].End = Point{5, 105} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := boxGeometry()
			tc.mutate(g)
			err := g.Validate()
			var vErr *ValidationError
			require.Error(t, err)
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	data := `{
		"name": "test channel",
		"walls": [
			{"start": {"y": 25, "z": 50}, "end": {"y": 0, "z": 50}, "thickness": 1.5, "e": 50, "g": 20},
			{"start": {"y": 0, "z": 50}, "end": {"y": 0, "z": 0}, "thickness": 2.5, "e": 40, "g": 15},
			{"start": {"y": 0, "z": 0}, "end": {"y": 25, "z": 0}, "thickness": 1.5, "e": 50, "g": 20}
		]
	}`
	path := filepath.Join(t.TempDir(), "channel.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	g, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test channel", g.Name)
	assert.Len(t, g.Walls, 3)
	assert.False(t, g.Closed)
}

func TestLoadFromFileRejectsInvalid(t *testing.T) {
	data := `{"walls": [{"start": {"y": 0, "z": 0}, "end": {"y": 10, "z": 0}, "thickness": 0, "e": 50, "g": 20}]}`
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
