package domain

// ViewSnapshot is the immutable read the synthesizer takes of a session's
// view state. Building one copies the mutable slices/maps so the
// synthesizer can stay side-effect-free.
type ViewSnapshot struct {
	Title      string
	Theme      Theme
	ShowVolume bool
	Timeframe  string

	// Selections in insertion order; pane order for below indicators
	// follows this order.
	Selected []SelectedIndicator

	// Zoom is nil until the renderer reports a window; the synthesizer
	// falls back to its default window then.
	Zoom *ZoomWindow

	// ManualPaneHeights holds user drag overrides in percent, keyed by
	// indicator id. Reset whenever the selection set changes.
	ManualPaneHeights map[string]float64
}

// ActiveIDs returns the ids of enabled selections in insertion order.
func (v ViewSnapshot) ActiveIDs() []string {
	out := make([]string, 0, len(v.Selected))
	for _, sel := range v.Selected {
		if sel.Enabled {
			out = append(out, sel.ID)
		}
	}
	return out
}

// IsActive reports whether the id is selected and enabled.
func (v ViewSnapshot) IsActive(id string) bool {
	for _, sel := range v.Selected {
		if sel.ID == id {
			return sel.Enabled
		}
	}
	return false
}
