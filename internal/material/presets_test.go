package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFiber(t *testing.T) {
	c, err := LookupFiber("Carbon")
	require.NoError(t, err)
	assert.Equal(t, 230.0, c.E)

	_, err = LookupFiber("unobtainium")
	assert.ErrorContains(t, err, "unknown fiber")
}

func TestLookupMatrix(t *testing.T) {
	c, err := LookupMatrix("epoxy")
	require.NoError(t, err)
	assert.Equal(t, 3.5, c.E)

	_, err = LookupMatrix("concrete")
	assert.ErrorContains(t, err, "unknown matrix")
}

func TestNotePresetsMatchLectureExample(t *testing.T) {
	fiber, err := LookupFiber("note")
	require.NoError(t, err)
	matrix, err := LookupMatrix("note")
	require.NoError(t, err)

	assert.Equal(t, 200.0, fiber.E)
	assert.Equal(t, 5.0, matrix.E)
}
