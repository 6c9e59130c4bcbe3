package torsion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxReferenceValues(t *testing.T) {
	result, err := NewBox(10).Evaluate()
	require.NoError(t, err)

	assert.InEpsilon(t, 0.02, result.EnclosedArea, 1e-9, "enclosed area")
	assert.InEpsilon(t, 250e3, result.Flow, 1e-3, "Bredt flow")
	assert.InEpsilon(t, 1.0182e5, result.Stiffness, 1e-3, "torsional stiffness")
	assert.InEpsilon(t, 0.098214, result.TwistRate, 1e-3, "twist rate")
	assert.InEpsilon(t, 125.0, result.CoverShear, 1e-3, "cover shear")
	assert.InEpsilon(t, 250.0, result.WebShear, 1e-3, "web shear")
	assert.InEpsilon(t, -0.13393, result.WarpingCorner, 1e-3, "corner warping")
}

func TestBoxUniformWallsDoNotWarp(t *testing.T) {
	// A square cell with identical walls twists without warping
	box := NewBox(10)
	box.Width = 100
	box.WebG = box.CoverG
	box.WebThk = box.CoverThk

	result, err := box.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 0, result.WarpingCorner, 1e-9)
}

func TestChannelReferenceValues(t *testing.T) {
	result, err := NewChannel(10).Evaluate()
	require.NoError(t, err)

	assert.InEpsilon(t, 5.03125, result.Stiffness, 1e-3, "torsional stiffness")
	assert.InEpsilon(t, 1.98758, result.TwistRate, 1e-3, "twist rate")

	require.Len(t, result.WallShear, 3)
	assert.InEpsilon(t, 59.627, result.WallShear[0].Shear, 1e-3, "flange shear")
	assert.InEpsilon(t, 74.534, result.WallShear[1].Shear, 1e-3, "web shear")
	assert.Equal(t, result.WallShear[0].Shear, result.WallShear[2].Shear)

	// No swept area on the channel case: no warping step
	_, found := result.Trace.Lookup("Warping Displacement")
	assert.False(t, found)
	assert.Zero(t, result.Warping)
}

func TestISectionReferenceValues(t *testing.T) {
	result, err := NewISection(0.5).Evaluate()
	require.NoError(t, err)

	assert.InEpsilon(t, 87.627, result.Stiffness, 1e-3, "torsional rigidity")
	assert.InEpsilon(t, 5.7060e-3, result.TwistRate, 1e-3, "twist rate")

	require.Len(t, result.WallShear, 3)
	assert.InEpsilon(t, 0.093008, result.WallShear[0].Shear, 1e-3, "flange shear")
	assert.InEpsilon(t, 0.59628, result.WallShear[1].Shear, 1e-3, "web shear")

	assert.InEpsilon(t, -0.014265, result.Warping, 1e-3, "corner warping")

	step, found := result.Trace.Lookup("Swept Area")
	require.True(t, found)
	assert.InEpsilon(t, 1.25e-3, step.Value, 1e-9)
}

func TestOpenSectionDeterministic(t *testing.T) {
	first, err := NewISection(0.5).Evaluate()
	require.NoError(t, err)
	second, err := NewISection(0.5).Evaluate()
	require.NoError(t, err)

	assert.Equal(t, first.Trace.Steps, second.Trace.Steps)
}

func TestOpenSectionValidation(t *testing.T) {
	empty := &OpenSection{Torque: 1}
	_, err := empty.Evaluate()
	assert.Error(t, err)

	zeroThk := NewChannel(10)
	zeroThk.Walls[1].Thickness = 0
	_, err = zeroThk.Evaluate()
	assert.Error(t, err)

	noG := NewChannel(10)
	noG.Walls[0].G = 0
	_, err = noG.Evaluate()
	assert.Error(t, err)
}

func TestBoxValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Box)
	}{
		{"zero width", func(b *Box) { b.Width = 0 }},
		{"zero cover thickness", func(b *Box) { b.CoverThk = 0 }},
		{"negative web modulus", func(b *Box) { b.WebG = -35 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBox(10)
			tc.mutate(b)
			_, err := b.Evaluate()
			assert.Error(t, err)
		})
	}
}
