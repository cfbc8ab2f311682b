package view

import "chart-composer/internal/domain"

// Resize-drag interaction state machine: idle -> dragging -> idle. The
// machine only tracks pointer geometry; the resulting height lands in the
// session's manual overrides, and the layout engine does the clamping.
// Events from a pointer other than the captured one are ignored, which is
// the captured-pointer contract.

type DragState int

const (
	DragIdle DragState = iota
	DragActive
)

type PaneDrag struct {
	state       DragState
	pointerID   int
	indicatorID string
	startY      float64
	startHeight float64
	hadOverride bool
	priorHeight float64
}

func (d *PaneDrag) State() DragState { return d.state }

// BeginDrag captures the pointer on a pane's drag handle. startHeight is
// the pane's current height in percent; y is in pixels.
func (s *Session) BeginDrag(pointerID int, indicatorID string, y, startHeight float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drag.state == DragActive {
		return domain.UserInputError("a drag is already in progress")
	}
	found := false
	for _, sel := range s.selected {
		if sel.ID == indicatorID {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrIndicatorNotSelected
	}

	prior, hadOverride := s.manualHeights[indicatorID]
	s.drag = PaneDrag{
		state:       DragActive,
		pointerID:   pointerID,
		indicatorID: indicatorID,
		startY:      y,
		startHeight: startHeight,
		hadOverride: hadOverride,
		priorHeight: prior,
	}
	return nil
}

// MoveDrag converts pointer movement into a new manual height for the
// dragged pane. totalHeight is the chart's pixel height, used to convert
// the pixel delta into percent. Returns the new height and whether the
// event was consumed.
func (s *Session) MoveDrag(pointerID int, y, totalHeight float64) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drag.state != DragActive || s.drag.pointerID != pointerID || totalHeight <= 0 {
		return 0, false
	}

	// The pane can disappear mid-drag if its indicator is removed; a write
	// here would resurrect an override for an unselected id.
	dragged := false
	for _, sel := range s.selected {
		if sel.ID == s.drag.indicatorID {
			dragged = true
			break
		}
	}
	if !dragged {
		s.drag = PaneDrag{}
		return 0, false
	}

	deltaPct := (y - s.drag.startY) / totalHeight * 100
	height := s.drag.startHeight + deltaPct
	s.manualHeights[s.drag.indicatorID] = height
	return height, true
}

// EndDrag releases the captured pointer. The last height stays as the
// manual override until the indicator set changes.
func (s *Session) EndDrag(pointerID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drag.state != DragActive || s.drag.pointerID != pointerID {
		return false
	}
	s.drag = PaneDrag{}
	return true
}

// CancelDrag aborts the interaction and restores whatever override state
// the pane had when the drag started.
func (s *Session) CancelDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drag.state != DragActive {
		return
	}
	if s.drag.hadOverride {
		s.manualHeights[s.drag.indicatorID] = s.drag.priorHeight
	} else {
		delete(s.manualHeights, s.drag.indicatorID)
	}
	s.drag = PaneDrag{}
}
