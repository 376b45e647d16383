package picker

import "strings"

// Candidate is one selectable entry of a Store. Values returned by the store
// and controller are snapshots; only the controller changes selection.
type Candidate struct {
	id          string
	kind        string
	category    string
	name        string
	displayText string
	folded      string
	selected    bool
}

func newCandidate(obj Object, category string) *Candidate {
	display := category + ": " + obj.Name()
	return &Candidate{
		id:          obj.ID(),
		kind:        obj.Kind(),
		category:    category,
		name:        obj.Name(),
		displayText: display,
		folded:      strings.ToLower(display),
	}
}

// ID returns the host identity of the candidate.
func (c Candidate) ID() string { return c.id }

// Kind returns the raw kind of the source object.
func (c Candidate) Kind() string { return c.kind }

// Category returns the display label of the candidate's kind.
func (c Candidate) Category() string { return c.category }

// Name returns the raw display name.
func (c Candidate) Name() string { return c.name }

// DisplayText returns "<category>: <name>".
func (c Candidate) DisplayText() string { return c.displayText }

// Selected reports whether the candidate is currently selected.
func (c Candidate) Selected() bool { return c.selected }

// IDs returns the identities of cands in order.
func IDs(cands []Candidate) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.id)
	}
	return out
}
