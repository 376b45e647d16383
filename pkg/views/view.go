package views

import (
	"strings"
)

// Kind is the host's view type. Values follow the host enumeration names.
type Kind string

const (
	KindFloorPlan       Kind = "FloorPlan"
	KindCeilingPlan     Kind = "CeilingPlan"
	KindAreaPlan        Kind = "AreaPlan"
	KindSection         Kind = "Section"
	KindElevation       Kind = "Elevation"
	KindDetail          Kind = "Detail"
	KindThreeD          Kind = "ThreeD"
	KindDraftingView    Kind = "DraftingView"
	KindLegend          Kind = "Legend"
	KindSchedule        Kind = "Schedule"
	KindDrawingSheet    Kind = "DrawingSheet"
	KindWalkthrough     Kind = "Walkthrough"
	KindRendering       Kind = "Rendering"
	KindEngineeringPlan Kind = "EngineeringPlan"
	KindReport          Kind = "Report"
	KindSystemBrowser   Kind = "SystemBrowser"
	KindProjectBrowser  Kind = "ProjectBrowser"
	KindUndefined       Kind = "Undefined"
)

var knownKinds = []Kind{
	KindFloorPlan, KindCeilingPlan, KindAreaPlan, KindSection, KindElevation, KindDetail,
	KindThreeD, KindDraftingView, KindLegend, KindSchedule, KindDrawingSheet,
	KindWalkthrough, KindRendering, KindEngineeringPlan, KindReport,
	KindSystemBrowser, KindProjectBrowser, KindUndefined,
}

// defaultLabels maps dimensionable kinds to their display label. Other kinds
// display as their own name.
var defaultLabels = map[Kind]string{
	KindFloorPlan:   "Floor Plan",
	KindCeilingPlan: "Ceiling Plan",
	KindAreaPlan:    "Area Plan",
	KindSection:     "Section",
	KindElevation:   "Elevation",
	KindDetail:      "Detail",
}

// ParseKind resolves a kind name case-insensitively, ignoring spaces, dashes
// and underscores, so "floor-plan", "Floor Plan" and "FloorPlan" agree. "3D"
// is accepted for ThreeD. Unknown names are returned as given.
func ParseKind(s string) Kind {
	key := squash(s)
	if key == "3d" {
		return KindThreeD
	}
	for _, k := range knownKinds {
		if squash(string(k)) == key {
			return k
		}
	}
	if key == "plan" {
		return KindFloorPlan
	}
	return Kind(strings.TrimSpace(s))
}

func squash(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Label returns the default display label for k.
func (k Kind) Label() string {
	if label, ok := defaultLabels[k]; ok {
		return label
	}
	return string(k)
}

// View is one view of the host document.
type View struct {
	Identity string `yaml:"id" json:"id"`
	Type     Kind   `yaml:"type" json:"type"`
	Title    string `yaml:"name" json:"name"`
	Template bool   `yaml:"template,omitempty" json:"template,omitempty"`
}

// ID returns the host identity.
func (v *View) ID() string { return v.Identity }

// Kind returns the view type name.
func (v *View) Kind() string { return string(v.Type) }

// Name returns the view name.
func (v *View) Name() string { return v.Title }

// IsTemplate reports whether the view is a view template.
func (v *View) IsTemplate() bool { return v.Template }

// Labels builds a picker labeler from the default labels plus overrides keyed
// by kind name.
func Labels(overrides map[string]string) func(kind string) string {
	resolved := make(map[Kind]string, len(overrides))
	for name, label := range overrides {
		resolved[ParseKind(name)] = label
	}
	return func(kind string) string {
		k := ParseKind(kind)
		if label, ok := resolved[k]; ok && label != "" {
			return label
		}
		return k.Label()
	}
}
