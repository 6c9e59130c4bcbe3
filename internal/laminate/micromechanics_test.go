package laminate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noteBar returns the documented example bar of pages 27-30.
func noteBar() *Bar {
	b := NewBar(5, 200, 0.8, 0.2)
	b.AxialLoad = 100
	return b
}

func TestBarReferenceValues(t *testing.T) {
	result, err := noteBar().Evaluate()
	require.NoError(t, err)

	assert.InEpsilon(t, 44.0, result.Ex, 1e-3, "longitudinal modulus")
	assert.InEpsilon(t, 6.2112, result.Ey, 1e-3, "transverse modulus")
	assert.InEpsilon(t, 25.0, result.Stress, 1e-3, "axial stress")
	assert.InEpsilon(t, 0.28409, result.Elongation, 1e-3, "lengthening")
}

func TestBarTraceOrder(t *testing.T) {
	result, err := noteBar().Evaluate()
	require.NoError(t, err)

	labels := make([]string, len(result.Trace.Steps))
	for i, s := range result.Trace.Steps {
		labels[i] = s.Label
	}
	assert.Equal(t, []string{
		"Longitudinal Modulus (Ex)",
		"Transverse Modulus (Ey)",
		"Axial Stress",
		"Lengthening",
	}, labels)
}

func TestBarDeterministic(t *testing.T) {
	first, err := noteBar().Evaluate()
	require.NoError(t, err)
	second, err := noteBar().Evaluate()
	require.NoError(t, err)

	assert.Equal(t, first.Trace.Steps, second.Trace.Steps)
}

func TestBarSensitivity(t *testing.T) {
	base, err := noteBar().Evaluate()
	require.NoError(t, err)

	stiffer := noteBar()
	stiffer.FiberE = 400
	modified, err := stiffer.Evaluate()
	require.NoError(t, err)

	// The axial stress is purely statical; only the moduli-dependent
	// quantities may move
	assert.Equal(t, base.Stress, modified.Stress)
	assert.Greater(t, modified.Ex, base.Ex)
	assert.Less(t, modified.Elongation, base.Elongation)
}

func TestBarValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Bar)
	}{
		{"zero matrix modulus", func(b *Bar) { b.MatrixE = 0 }},
		{"negative fiber modulus", func(b *Bar) { b.FiberE = -1 }},
		{"fraction out of range", func(b *Bar) { b.FiberVf = 1.2 }},
		{"fractions not summing to one", func(b *Bar) { b.FiberVf = 0.3 }},
		{"zero width", func(b *Bar) { b.Width = 0 }},
		{"negative length", func(b *Bar) { b.Length = -0.5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := noteBar()
			tc.mutate(b)
			_, err := b.Evaluate()
			assert.Error(t, err)
		})
	}
}
