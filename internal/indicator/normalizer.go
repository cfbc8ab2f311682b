// Package indicator turns raw calculation-service payloads into canonical
// bar-aligned results the synthesizer can index directly.
package indicator

import (
	"log"
	"math"
	"sort"
	"strings"

	"chart-composer/internal/domain"
)

// WarnFunc receives soft-error notices (missing payload entries, malformed
// shapes). Normalization never fails hard: a broken indicator is dropped,
// the rest of the chart survives.
type WarnFunc func(format string, args ...any)

type Normalizer struct {
	warnf WarnFunc
}

func NewNormalizer(warnf WarnFunc) *Normalizer {
	if warnf == nil {
		warnf = log.Printf
	}
	return &Normalizer{warnf: warnf}
}

// Normalize resolves each active selection against the payload and emits
// one result per resolvable indicator, in selection order. Every series in
// a result has exactly barCount values; placement always comes from the
// catalog descriptor, never from the payload.
func (n *Normalizer) Normalize(payload map[string]any, catalog domain.Catalog, selected []domain.SelectedIndicator, barCount int) []domain.IndicatorResult {
	results := make([]domain.IndicatorResult, 0, len(selected))
	for _, sel := range selected {
		if !sel.Enabled {
			continue
		}

		desc, ok := catalog[sel.ID]
		if !ok {
			n.warnf("normalize: no catalog descriptor for %q, skipping", sel.ID)
			continue
		}

		entry, ok := resolveEntry(payload, sel)
		if !ok {
			n.warnf("normalize: no payload entry for %q, skipping", sel.ID)
			continue
		}

		series, ok := n.decodeEntry(sel.ID, entry)
		if !ok {
			continue
		}

		// Fields the descriptor declares always exist, even when the
		// payload omitted them, so downstream lookups cannot miss.
		for field := range desc.Outputs {
			if _, present := series[field]; !present {
				series[field] = nil
			}
		}

		for field, values := range series {
			series[field] = alignToBars(values, barCount)
		}

		results = append(results, domain.IndicatorResult{
			ID:        sel.ID,
			Placement: desc.Placement,
			Series:    series,
		})
	}
	return results
}

// resolveEntry finds the payload entry for a selection: exact id match,
// then exact display-name match, then case-insensitive substring match.
// Fuzzy candidates are scanned in sorted key order so resolution is
// deterministic.
func resolveEntry(payload map[string]any, sel domain.SelectedIndicator) (any, bool) {
	if entry, ok := payload[sel.ID]; ok {
		return entry, true
	}
	if sel.DisplayName != "" {
		if entry, ok := payload[sel.DisplayName]; ok {
			return entry, true
		}
	}

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	id := strings.ToLower(sel.ID)
	name := strings.ToLower(sel.DisplayName)
	for _, k := range keys {
		lower := strings.ToLower(k)
		if strings.Contains(lower, id) || (name != "" && strings.Contains(lower, name)) {
			return payload[k], true
		}
	}
	return nil, false
}

// decodeEntry accepts the two payload shapes: an array of per-bar records,
// or a map of field name to value array. Timestamp pseudo-fields are
// dropped; null values become NaN so index alignment survives.
func (n *Normalizer) decodeEntry(id string, entry any) (map[string][]float64, bool) {
	switch e := entry.(type) {
	case []any:
		return decodeRecords(e), true
	case map[string]any:
		return decodeFieldArrays(e), true
	default:
		n.warnf("normalize: unexpected payload shape for %q (%T), skipping", id, entry)
		return nil, false
	}
}

func decodeRecords(records []any) map[string][]float64 {
	series := make(map[string][]float64)
	for i, raw := range records {
		rec, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		for field, value := range rec {
			name := normalizeFieldName(field)
			if name == "" || isTimestampField(name) {
				continue
			}
			values := series[name]
			// A field appearing mid-stream gets NaN for the earlier rows.
			for len(values) < i {
				values = append(values, math.NaN())
			}
			series[name] = append(values, toFloat(value))
		}
		// Fields absent from this record also get a NaN at this index.
		for field, values := range series {
			if len(values) <= i {
				series[field] = append(values, math.NaN())
			}
		}
	}
	return series
}

func decodeFieldArrays(fields map[string]any) map[string][]float64 {
	series := make(map[string][]float64)
	for field, raw := range fields {
		name := normalizeFieldName(field)
		if name == "" || isTimestampField(name) {
			continue
		}
		values, ok := raw.([]any)
		if !ok {
			continue
		}
		out := make([]float64, len(values))
		for i, v := range values {
			out[i] = toFloat(v)
		}
		series[name] = out
	}
	return series
}

// alignToBars forces a series to exactly barCount values: longer arrays
// keep their last barCount entries (calculation services often return the
// full history), shorter ones are front-padded with NaN (warmup gap).
func alignToBars(values []float64, barCount int) []float64 {
	if len(values) == barCount {
		return values
	}
	if len(values) > barCount {
		return values[len(values)-barCount:]
	}
	out := make([]float64, barCount)
	pad := barCount - len(values)
	for i := 0; i < pad; i++ {
		out[i] = math.NaN()
	}
	copy(out[pad:], values)
	return out
}

func normalizeFieldName(field string) string {
	field = strings.ToLower(field)
	field = strings.ReplaceAll(field, " ", "_")
	var b strings.Builder
	for _, r := range field {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isTimestampField(name string) bool {
	return name == "timestamp" || name == "timestamps"
}

func toFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	default:
		return math.NaN()
	}
}
