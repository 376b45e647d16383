package picker

import (
	"sort"

	"github.com/grovetools/viewpick/errors"
)

// StoreConfig configures how a Store turns domain objects into candidates.
type StoreConfig struct {
	// Eligibility filters objects before they become candidates.
	// Defaults to NonTemplate.
	Eligibility Eligibility

	// Labeler derives the category label from an object's kind.
	// Defaults to the kind itself.
	Labeler Labeler

	// Order controls category grouping. Defaults to alphabetical.
	Order CategoryOrder
}

// Store owns the candidates of one picking session.
type Store struct {
	cfg   StoreConfig
	items []*Candidate
	index map[string]*Candidate
	query string
}

// NewStore creates an empty store.
func NewStore(cfg StoreConfig) *Store {
	if cfg.Eligibility == nil {
		cfg.Eligibility = NonTemplate
	}
	return &Store{
		cfg:   cfg,
		index: make(map[string]*Candidate),
	}
}

// LoadFrom enumerates src and loads the result. On any failure the store keeps
// its previous contents.
func (s *Store) LoadFrom(src Source) error {
	if src == nil {
		return errors.New(errors.ErrCodeInvalidInput, "no candidate source")
	}
	objects, err := src.Enumerate()
	if err != nil {
		return errors.LoadFailed(err)
	}
	return s.Load(objects)
}

// Load filters objects through the store's eligibility predicate, wraps the
// survivors as unselected candidates sorted by (category, name), and replaces
// the store contents in one step. The active query is cleared.
func (s *Store) Load(objects []Object) error {
	items := make([]*Candidate, 0, len(objects))
	index := make(map[string]*Candidate, len(objects))

	for _, obj := range objects {
		if obj == nil || !s.cfg.Eligibility.IsEligible(obj) {
			continue
		}
		c := newCandidate(obj, s.cfg.Labeler.label(obj.Kind()))
		if _, dup := index[c.id]; dup {
			return errors.DuplicateIdentity(c.id)
		}
		index[c.id] = c
		items = append(items, c)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return s.cfg.Order.less(items[i], items[j])
	})

	s.items = items
	s.index = index
	s.query = ""
	return nil
}

// Len returns the number of candidates in the store.
func (s *Store) Len() int {
	return len(s.items)
}

// Query returns the active normalized query.
func (s *Store) Query() string {
	return s.query
}

// Items returns a snapshot of every candidate in store order.
func (s *Store) Items() []Candidate {
	return snapshot(s.items)
}

// Visible returns a snapshot of the candidates matching the active query, in
// store order.
func (s *Store) Visible() []Candidate {
	return snapshot(s.visible())
}

// Selected returns a snapshot of the selected candidates in store order.
func (s *Store) Selected() []Candidate {
	var out []Candidate
	for _, c := range s.items {
		if c.selected {
			out = append(out, *c)
		}
	}
	return out
}

// Get returns the candidate with the given identity.
func (s *Store) Get(id string) (Candidate, bool) {
	c, ok := s.index[id]
	if !ok {
		return Candidate{}, false
	}
	return *c, true
}

func (s *Store) setQuery(normalized string) {
	s.query = normalized
}

func (s *Store) find(id string) *Candidate {
	return s.index[id]
}

func (s *Store) visible() []*Candidate {
	if s.query == "" {
		return s.items
	}
	var out []*Candidate
	for _, c := range s.items {
		if c.matches(s.query) {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) counts() (selected, total int) {
	for _, c := range s.items {
		if c.selected {
			selected++
		}
	}
	return selected, len(s.items)
}

func (s *Store) reset() {
	s.items = nil
	s.index = make(map[string]*Candidate)
	s.query = ""
}

func snapshot(items []*Candidate) []Candidate {
	out := make([]Candidate, len(items))
	for i, c := range items {
		out[i] = *c
	}
	return out
}
