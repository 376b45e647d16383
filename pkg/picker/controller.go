package picker

import (
	"github.com/google/uuid"
	"github.com/grovetools/viewpick/errors"
	"github.com/grovetools/viewpick/logging"
	"github.com/sirupsen/logrus"
)

// State is the lifecycle state of a picking session.
type State int

const (
	// StateIdle accepts queries and selection changes.
	StateIdle State = iota
	// StateCommitted is terminal: the selection was handed to the host.
	StateCommitted
	// StateCancelled is terminal: the session ended without output.
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCommitted:
		return "committed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for session events.
func WithLogger(entry *logrus.Entry) Option {
	return func(c *Controller) {
		c.log = entry
	}
}

// WithSessionID overrides the generated session identifier.
func WithSessionID(id string) Option {
	return func(c *Controller) {
		c.sessionID = id
	}
}

// Controller drives one picking session over a Store.
type Controller struct {
	store          *Store
	state          State
	defaultApplied bool
	sessionID      string
	log            *logrus.Entry
}

// NewController starts an idle session over store.
func NewController(store *Store, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logging.NewLogger("picker")
	}
	c.log = c.log.WithField("session", c.sessionID)
	return c
}

// Open builds a store from cfg, loads it from src and auto-selects defaultID,
// falling back to the source's DefaultID when src is a DefaultProvider.
// A load failure aborts the session: no controller is returned.
func Open(src Source, defaultID string, cfg StoreConfig, opts ...Option) (*Controller, error) {
	store := NewStore(cfg)
	if err := store.LoadFrom(src); err != nil {
		return nil, err
	}
	c := NewController(store, opts...)
	c.log.WithField("candidates", store.Len()).Debug("Session opened")
	if defaultID == "" {
		if dp, ok := src.(DefaultProvider); ok {
			defaultID = dp.DefaultID()
		}
	}
	c.AutoSelectDefault(defaultID)
	return c, nil
}

// SessionID returns the identifier attached to this session's log entries.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Store returns the underlying store for read access.
func (c *Controller) Store() *Store {
	return c.store
}

// Query returns the active normalized query.
func (c *Controller) Query() string {
	return c.store.Query()
}

// Items returns every candidate in store order.
func (c *Controller) Items() []Candidate {
	return c.store.Items()
}

// Visible returns the candidates matching the active query.
func (c *Controller) Visible() []Candidate {
	return c.store.Visible()
}

// Selected returns the selected candidates without ending the session.
func (c *Controller) Selected() []Candidate {
	return c.store.Selected()
}

func (c *Controller) closed(op string) bool {
	if c.state == StateIdle {
		return false
	}
	c.log.WithField("op", op).WithField("state", c.state.String()).Debug("Ignoring operation on closed session")
	return true
}

// SetQuery normalizes text and makes it the active filter. Empty or
// whitespace-only text clears the filter.
func (c *Controller) SetQuery(text string) {
	if c.closed("set_query") {
		return
	}
	c.store.setQuery(NormalizeQuery(text))
}

// Toggle flips the selection of the candidate with the given identity. It
// reports false, changing nothing, when the identity is not in the store.
func (c *Controller) Toggle(id string) bool {
	if c.closed("toggle") {
		return false
	}
	cand := c.store.find(id)
	if cand == nil {
		c.log.WithField("id", id).Debug("Toggle ignored for unknown identity")
		return false
	}
	cand.selected = !cand.selected
	return true
}

// SelectAllVisible selects every visible candidate and returns how many were
// visible. Hidden candidates are untouched.
func (c *Controller) SelectAllVisible() int {
	return c.setVisible("select_all_visible", true)
}

// SelectNoneVisible deselects every visible candidate and returns how many
// were visible. Hidden candidates are untouched.
func (c *Controller) SelectNoneVisible() int {
	return c.setVisible("select_none_visible", false)
}

func (c *Controller) setVisible(op string, selected bool) int {
	if c.closed(op) {
		return 0
	}
	visible := c.store.visible()
	for _, cand := range visible {
		cand.selected = selected
	}
	return len(visible)
}

// AutoSelectDefault selects the candidate for the host's current object. Only
// the first call of a session has any effect; an empty or unknown identity is
// a no-op. Since the store holds only eligible objects, presence implies
// eligibility.
func (c *Controller) AutoSelectDefault(id string) bool {
	if c.closed("auto_select_default") || c.defaultApplied {
		return false
	}
	c.defaultApplied = true
	if id == "" {
		return false
	}
	cand := c.store.find(id)
	if cand == nil {
		c.log.WithField("id", id).Debug("Default object not among candidates")
		return false
	}
	cand.selected = true
	c.log.WithField("id", id).Debug("Auto-selected default object")
	return true
}

// SelectionCount returns the number of selected candidates and the total
// number of candidates, over the whole store regardless of the query.
func (c *Controller) SelectionCount() (selected, total int) {
	return c.store.counts()
}

// Commit ends the session and returns the selected candidates in store order.
// With nothing selected it fails with an EMPTY_SELECTION error and the session
// stays idle.
func (c *Controller) Commit() ([]Candidate, error) {
	if c.state != StateIdle {
		return nil, errors.SessionClosed(c.state.String())
	}
	selected := c.store.Selected()
	if len(selected) == 0 {
		c.log.Info("Commit rejected: nothing selected")
		return nil, errors.EmptySelection(c.store.Len())
	}
	c.state = StateCommitted
	c.log.WithField("selected", len(selected)).Info("Selection committed")
	return selected, nil
}

// Cancel ends the session without output and discards its selection state.
// Cancelling twice is a no-op; cancelling a committed session fails.
func (c *Controller) Cancel() error {
	switch c.state {
	case StateCancelled:
		return nil
	case StateCommitted:
		return errors.SessionClosed(c.state.String())
	}
	c.store.reset()
	c.state = StateCancelled
	c.log.Info("Selection cancelled")
	return nil
}
