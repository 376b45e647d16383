package views

import (
	"fmt"
	"strings"

	"github.com/grovetools/viewpick/errors"
	"github.com/grovetools/viewpick/pkg/picker"
)

// dimensionableKinds is a closed allow-list: kinds not listed, including ones
// the host adds later, are never offered.
var dimensionableKinds = map[Kind]bool{
	KindFloorPlan:   true,
	KindCeilingPlan: true,
	KindAreaPlan:    true,
	KindSection:     true,
	KindElevation:   true,
	KindDetail:      true,
}

// DimensionableKinds returns the kinds that can carry generated dimensions.
func DimensionableKinds() []Kind {
	return []Kind{KindFloorPlan, KindCeilingPlan, KindAreaPlan, KindSection, KindElevation, KindDetail}
}

// Dimensionable accepts views that can carry generated dimensions.
type Dimensionable struct {
	only map[Kind]bool
}

// NewDimensionable returns the eligibility filter. When kinds is non-empty the
// allow-list is narrowed to those kinds. Every entry must name one of
// DimensionableKinds. Anything else, ThreeD included, is a configuration
// error.
func NewDimensionable(kinds ...string) (*Dimensionable, error) {
	d := &Dimensionable{}
	if len(kinds) == 0 {
		return d, nil
	}

	var unsupported []string
	d.only = make(map[Kind]bool, len(kinds))
	for _, name := range kinds {
		k := ParseKind(name)
		if !dimensionableKinds[k] {
			unsupported = append(unsupported, name)
			continue
		}
		d.only[k] = true
	}
	if len(unsupported) > 0 {
		return nil, errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("picker.kinds lists kinds that cannot be dimensioned: %s", strings.Join(unsupported, ", "))).
			WithDetail("kinds", unsupported).
			WithDetail("allowed", DimensionableKinds())
	}
	return d, nil
}

// IsEligible implements picker.Eligibility.
func (d *Dimensionable) IsEligible(obj picker.Object) bool {
	if obj == nil {
		return false
	}
	if v, ok := obj.(*View); ok && v == nil {
		return false
	}
	if obj.IsTemplate() {
		return false
	}

	kind := ParseKind(obj.Kind())
	// 3D views never qualify, whatever the allow-list says.
	if kind == KindThreeD {
		return false
	}
	if !dimensionableKinds[kind] {
		return false
	}
	if d != nil && d.only != nil {
		return d.only[kind]
	}
	return true
}

// IsDimensionable applies the default rules to a single object.
func IsDimensionable(obj picker.Object) bool {
	return (*Dimensionable)(nil).IsEligible(obj)
}
