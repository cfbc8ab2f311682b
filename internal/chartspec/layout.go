package chartspec

// Pane layout engine. All sizes are percentages of the chart height. The
// primary pane keeps a fixed top margin for title/legend and a bottom
// reserve for the zoom slider; below-indicator panes split what is left
// under the primary pane.

const (
	primaryTopPct    = 15.0
	bottomReservePct = 8.0
	belowMinPct      = 12.0
	belowMaxPct      = 25.0
	primaryMinPct    = 30.0
	belowBudgetPct   = 80.0
)

type PanePlacement struct {
	ID     string
	Top    float64
	Height float64
}

type PaneLayout struct {
	PrimaryTop    float64
	PrimaryHeight float64
	Below         []PanePlacement
}

// ComputeLayout splits vertical space across the primary pane and one pane
// per below-indicator id, in order. Manual heights override the heuristic
// per id but are clamped to [belowMinPct, belowMaxPct]; if the overrides
// would push the primary pane under its floor, every below pane is scaled
// down proportionally so the floor holds.
func ComputeLayout(belowIDs []string, manual map[string]float64) PaneLayout {
	layout := PaneLayout{PrimaryTop: primaryTopPct}

	if len(belowIDs) == 0 {
		layout.PrimaryHeight = 100 - primaryTopPct - bottomReservePct
		return layout
	}

	heuristic := clamp(belowBudgetPct/float64(len(belowIDs)), belowMinPct, belowMaxPct)

	heights := make([]float64, len(belowIDs))
	total := 0.0
	for i, id := range belowIDs {
		h := heuristic
		if manual != nil {
			if override, ok := manual[id]; ok {
				h = clamp(override, belowMinPct, belowMaxPct)
			}
		}
		heights[i] = h
		total += h
	}

	available := 100 - primaryTopPct - bottomReservePct
	if available-total < primaryMinPct {
		// Primary floor wins over per-pane clamps.
		scale := (available - primaryMinPct) / total
		total = 0
		for i := range heights {
			heights[i] *= scale
			total += heights[i]
		}
	}

	layout.PrimaryHeight = available - total
	top := primaryTopPct + layout.PrimaryHeight
	for i, id := range belowIDs {
		layout.Below = append(layout.Below, PanePlacement{ID: id, Top: top, Height: heights[i]})
		top += heights[i]
	}
	return layout
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
