package material

import (
	"fmt"
	"sort"
	"strings"
)

// Constituent holds representative constituent properties used across the
// lecture-note examples. Values are homogenized engineering constants, not
// supplier data sheets.
type Constituent struct {
	Name string
	E    float64 // Young's modulus (GPa)
	G    float64 // shear modulus (GPa)
}

// Fiber presets. The "note" entry is the pair used by the lecture-note
// micromechanics example.
var Fibers = map[string]Constituent{
	"carbon": {Name: "Carbon (HS)", E: 230, G: 90},
	"glass":  {Name: "E-Glass", E: 72, G: 30},
	"aramid": {Name: "Aramid", E: 124, G: 3},
	"boron":  {Name: "Boron", E: 400, G: 170},
	"note":   {Name: "Lecture-note fiber", E: 200, G: 80},
}

// Matrix presets
var Matrices = map[string]Constituent{
	"epoxy":     {Name: "Epoxy", E: 3.5, G: 1.3},
	"polyester": {Name: "Polyester", E: 3.0, G: 1.1},
	"peek":      {Name: "PEEK", E: 3.6, G: 1.3},
	"note":      {Name: "Lecture-note matrix", E: 5, G: 1.9},
}

// LookupFiber resolves a fiber preset by key, case-insensitively.
func LookupFiber(key string) (Constituent, error) {
	c, ok := Fibers[strings.ToLower(key)]
	if !ok {
		return Constituent{}, fmt.Errorf("unknown fiber %q (available: %s)", key, keys(Fibers))
	}
	return c, nil
}

// LookupMatrix resolves a matrix preset by key, case-insensitively.
func LookupMatrix(key string) (Constituent, error) {
	c, ok := Matrices[strings.ToLower(key)]
	if !ok {
		return Constituent{}, fmt.Errorf("unknown matrix %q (available: %s)", key, keys(Matrices))
	}
	return c, nil
}

func keys(m map[string]Constituent) string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
