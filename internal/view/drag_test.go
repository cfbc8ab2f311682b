package view

import (
	"errors"
	"testing"

	"chart-composer/internal/domain"
)

func dragSession(t *testing.T) *Session {
	t.Helper()
	s := newTestSession()
	s.AddIndicator(rsiDescriptor())
	return s
}

func TestDragLifecycle(t *testing.T) {
	s := dragSession(t)

	if err := s.BeginDrag(1, "rsi", 400, 20); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if s.drag.State() != DragActive {
		t.Fatal("expected active drag")
	}

	// 80px down on an 800px chart is +10%.
	height, ok := s.MoveDrag(1, 480, 800)
	if !ok || height != 30 {
		t.Fatalf("expected height 30, got %v consumed=%v", height, ok)
	}
	if got := s.Snapshot().ManualPaneHeights["rsi"]; got != 30 {
		t.Fatalf("expected override 30, got %v", got)
	}

	if !s.EndDrag(1) {
		t.Fatal("expected end to consume the captured pointer")
	}
	// The override outlives the drag.
	if got := s.Snapshot().ManualPaneHeights["rsi"]; got != 30 {
		t.Fatalf("expected override kept after end, got %v", got)
	}
}

func TestDragIgnoresOtherPointers(t *testing.T) {
	s := dragSession(t)
	if err := s.BeginDrag(1, "rsi", 400, 20); err != nil {
		t.Fatalf("begin: %v", err)
	}

	if _, ok := s.MoveDrag(2, 480, 800); ok {
		t.Fatal("moves from an uncaptured pointer must be ignored")
	}
	if s.EndDrag(2) {
		t.Fatal("end from an uncaptured pointer must be ignored")
	}
	if s.drag.State() != DragActive {
		t.Fatal("drag must survive foreign pointer events")
	}
}

func TestDragRejectsConcurrentAndUnselected(t *testing.T) {
	s := dragSession(t)

	if err := s.BeginDrag(1, "macd", 400, 20); !errors.Is(err, domain.ErrIndicatorNotSelected) {
		t.Fatalf("expected ErrIndicatorNotSelected, got %v", err)
	}

	if err := s.BeginDrag(1, "rsi", 400, 20); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.BeginDrag(2, "rsi", 100, 20); err == nil {
		t.Fatal("expected second concurrent drag rejected")
	}
}

func TestMoveDragAfterIndicatorRemoved(t *testing.T) {
	s := dragSession(t)
	if err := s.BeginDrag(1, "rsi", 400, 20); err != nil {
		t.Fatalf("begin: %v", err)
	}

	if err := s.RemoveIndicator("rsi"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := s.MoveDrag(1, 480, 800); ok {
		t.Fatal("a drag on a removed pane must not be consumed")
	}
	if _, ok := s.Snapshot().ManualPaneHeights["rsi"]; ok {
		t.Fatal("the removed pane must not regain a manual height")
	}
	if s.drag.State() != DragIdle {
		t.Fatal("the orphaned drag must be invalidated")
	}
}

func TestCancelDragRestoresPriorState(t *testing.T) {
	// No override before the drag: cancel must leave none behind.
	s := dragSession(t)
	if err := s.BeginDrag(1, "rsi", 400, 20); err != nil {
		t.Fatalf("begin: %v", err)
	}
	s.MoveDrag(1, 480, 800)
	s.CancelDrag()
	if _, ok := s.Snapshot().ManualPaneHeights["rsi"]; ok {
		t.Fatal("cancel must remove the override created during the drag")
	}

	// Existing override: cancel restores the pre-drag value.
	if err := s.SetPaneHeight("rsi", 18); err != nil {
		t.Fatalf("set height: %v", err)
	}
	if err := s.BeginDrag(1, "rsi", 400, 18); err != nil {
		t.Fatalf("begin: %v", err)
	}
	s.MoveDrag(1, 560, 800)
	s.CancelDrag()
	if got := s.Snapshot().ManualPaneHeights["rsi"]; got != 18 {
		t.Fatalf("expected prior override 18 restored, got %v", got)
	}
}

func TestMoveDragZeroHeight(t *testing.T) {
	s := dragSession(t)
	if err := s.BeginDrag(1, "rsi", 400, 20); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, ok := s.MoveDrag(1, 480, 0); ok {
		t.Fatal("zero chart height must not produce a move")
	}
}
