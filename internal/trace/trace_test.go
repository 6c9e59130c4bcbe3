package trace

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Trace {
	t := New("TORSION OF RECTANGULAR BOX", "77-80")
	t.Add("Shear Flow q", `q = \frac{M_x}{2 A_h}`, 250e3, "N/m", "78")
	t.Add("Twist Rate", `\theta_{,x}`, 0.0982, "rad/m", "79")
	return t
}

func TestAddPreservesOrder(t *testing.T) {
	tr := sample()
	require.Len(t, tr.Steps, 2)
	assert.Equal(t, "Shear Flow q", tr.Steps[0].Label)
	assert.Equal(t, "Twist Rate", tr.Steps[1].Label)
}

func TestLookup(t *testing.T) {
	tr := sample()

	step, found := tr.Lookup("Twist Rate")
	require.True(t, found)
	assert.Equal(t, 0.0982, step.Value)
	assert.Equal(t, "rad/m", step.Unit)

	_, found = tr.Lookup("Warping")
	assert.False(t, found)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	sample().Write(&buf)

	out := buf.String()
	assert.Contains(t, out, "Shear Flow q")
	assert.Contains(t, out, `q = \frac{M_x}{2 A_h}`)
	assert.Contains(t, out, "(pg 78)")
}
