package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/golam/internal/trace"
)

func sampleTrace() *trace.Trace {
	t := trace.New("MICROMECHANICS OF COMPOSITE BAR", "27-30")
	t.Add("Longitudinal Modulus (Ex)", `E_x = v_f E_f + v_m E_m`, 44, "GPa", "28")
	t.Add("Axial Stress", `\sigma_{xx} = \frac{F}{A}`, 25, "MPa", "30")
	return t
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.pdf")
	require.NoError(t, ExportPDF(sampleTrace(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.xlsx")
	require.NoError(t, ExportXLSX(sampleTrace(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
