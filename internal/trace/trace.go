package trace

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Step is a single calculation step: a labeled quantity together with the
// LaTeX formula it was obtained from and the lecture-note pages it appears on.
type Step struct {
	Label   string
	Formula string
	Value   float64
	Unit    string
	Pages   string
}

// Trace is the ordered record of one case evaluation. Steps are appended in
// calculation order and never mutated afterwards.
type Trace struct {
	Title string
	Pages string
	Steps []Step
}

// New creates an empty trace for a case study.
func New(title, pages string) *Trace {
	return &Trace{Title: title, Pages: pages}
}

// Add appends a calculation step to the trace.
func (t *Trace) Add(label, formula string, value float64, unit, pages string) {
	t.Steps = append(t.Steps, Step{
		Label:   label,
		Formula: formula,
		Value:   value,
		Unit:    unit,
		Pages:   pages,
	})
}

// Lookup returns the first step with the given label.
func (t *Trace) Lookup(label string) (Step, bool) {
	for _, s := range t.Steps {
		if s.Label == label {
			return s, true
		}
	}
	return Step{}, false
}

// Write renders the trace steps as a tabulated report, one step per pair
// of lines: the value with its page citation, then the formula it came from.
func (t *Trace) Write(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, s := range t.Steps {
		fmt.Fprintf(w, "  %s:\t%.4g %s\t(pg %s)\n", s.Label, s.Value, s.Unit, s.Pages)
		fmt.Fprintf(w, "  \t%s\t\n", s.Formula)
	}
	w.Flush()
	fmt.Fprintln(out)
}
