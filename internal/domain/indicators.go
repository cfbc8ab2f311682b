package domain

import (
	"math"
	"strings"
)

type Placement string

const (
	PlacementOnChart Placement = "on_chart"
	PlacementBelow   Placement = "below"
)

func (p Placement) IsValid() bool {
	return p == PlacementOnChart || p == PlacementBelow
}

// ParamSpec describes one tunable parameter of an indicator as reported by
// the catalog service.
type ParamSpec struct {
	Default     any      `json:"default"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Options     []string `json:"options,omitempty"`
}

type OutputSpec struct {
	Description string `json:"description"`
	Type        string `json:"type"`
}

// IndicatorDescriptor is catalog metadata for one indicator. Fetched once
// per process and treated as immutable. Placement here is authoritative for
// pane assignment regardless of what a calculation response claims.
type IndicatorDescriptor struct {
	ID          string                `json:"-"`
	Description string                `json:"description"`
	ShortName   string                `json:"short_name,omitempty"`
	Placement   Placement             `json:"position"`
	Parameters  map[string]ParamSpec  `json:"parameters"`
	Outputs     map[string]OutputSpec `json:"output"`
}

// Catalog maps indicator id to its descriptor.
type Catalog map[string]IndicatorDescriptor

// SelectedIndicator is one user selection. ParameterValues starts from the
// descriptor defaults and is edited in place; Enabled toggles visibility
// without dropping the selection.
type SelectedIndicator struct {
	ID              string         `json:"id"`
	DisplayName     string         `json:"display_name"`
	ParameterValues map[string]any `json:"parameters"`
	Enabled         bool           `json:"enabled"`
}

// IndicatorResult is one normalized calculation result. Every array in
// Series has exactly the bar-sequence length, gaps as NaN; index i of any
// series pairs with bar i.
type IndicatorResult struct {
	ID        string
	Placement Placement
	Series    map[string][]float64
}

// FieldsWithData returns the field names holding at least one finite value,
// band fields first in draw order, the rest sorted by name.
func (r IndicatorResult) FieldsWithData() []string {
	fields := make([]string, 0, len(r.Series))
	for name, values := range r.Series {
		if hasFinite(values) {
			fields = append(fields, name)
		}
	}
	SortFields(fields)
	return fields
}

func hasFinite(values []float64) bool {
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// bandOrder fixes the render and tooltip order for recognized fields:
// lower before middle before upper so the middle band draws on top, value
// lines last.
var bandOrder = []string{"lower_band", "middle_band", "upper_band", "value"}

func fieldRank(name string) int {
	for i, f := range bandOrder {
		if f == name {
			return i
		}
	}
	return len(bandOrder)
}

// SortFields orders field names deterministically: recognized band fields
// in draw order, everything else alphabetically after them.
func SortFields(fields []string) {
	for i := 1; i < len(fields); i++ {
		for j := i; j > 0; j-- {
			ra, rb := fieldRank(fields[j-1]), fieldRank(fields[j])
			if ra < rb || (ra == rb && fields[j-1] <= fields[j]) {
				break
			}
			fields[j-1], fields[j] = fields[j], fields[j-1]
		}
	}
}

// FieldDisplayName renders a raw field name for legends and tooltips.
func FieldDisplayName(field string) string {
	switch field {
	case "value":
		return "Value"
	case "upper_band":
		return "Upper Band"
	case "middle_band":
		return "Middle Band"
	case "lower_band":
		return "Lower Band"
	}
	parts := strings.Split(field, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// SeriesColumn is the data-table column name for an indicator field.
func SeriesColumn(indicatorID, field string) string {
	return indicatorID + "_" + field
}
