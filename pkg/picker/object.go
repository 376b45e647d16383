package picker

// Object is a domain object offered by the host for picking.
type Object interface {
	ID() string
	Kind() string
	Name() string
	IsTemplate() bool
}

// Source enumerates the host's domain objects for one session.
type Source interface {
	Enumerate() ([]Object, error)
}

// DefaultProvider is implemented by sources that know which object the host
// considers current. Open uses it when no default identity is given.
type DefaultProvider interface {
	DefaultID() string
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() ([]Object, error)

// Enumerate calls f.
func (f SourceFunc) Enumerate() ([]Object, error) {
	return f()
}

// Eligibility decides whether an object may be offered at all, independent of
// any search text. Implementations must be pure.
type Eligibility interface {
	IsEligible(obj Object) bool
}

// EligibilityFunc adapts a predicate to Eligibility.
type EligibilityFunc func(obj Object) bool

// IsEligible calls f.
func (f EligibilityFunc) IsEligible(obj Object) bool {
	return f(obj)
}

// NonTemplate accepts every non-nil object that is not a template.
var NonTemplate = EligibilityFunc(func(obj Object) bool {
	return obj != nil && !obj.IsTemplate()
})

// Labeler maps an object kind to the category label shown to the user.
type Labeler func(kind string) string

func (l Labeler) label(kind string) string {
	if l == nil {
		return kind
	}
	if label := l(kind); label != "" {
		return label
	}
	return kind
}
