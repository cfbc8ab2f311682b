// Package view owns the per-session mutable chart state. Sessions are
// explicit objects handed out by a Manager rather than package-level
// state, so independent chart instances cannot leak selections into each
// other.
package view

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"chart-composer/internal/domain"
)

const (
	defaultTheme     = domain.ThemeLight
	defaultTimeframe = "1m"
)

// Session holds everything the synthesizer reads for one chart instance.
// Guarded by a mutex: HTTP handlers and a completing calculation may touch
// it concurrently.
type Session struct {
	mu sync.Mutex

	id         string
	title      string
	theme      domain.Theme
	showVolume bool
	timeframe  string

	selected      []domain.SelectedIndicator
	results       []domain.IndicatorResult
	zoom          *domain.ZoomWindow
	manualHeights map[string]float64

	calculating bool
	calcToken   uint64
	lastErr     error

	drag PaneDrag
}

func newSession(id, title string) *Session {
	return &Session{
		id:            id,
		title:         title,
		theme:         defaultTheme,
		showVolume:    true,
		timeframe:     defaultTimeframe,
		manualHeights: map[string]float64{},
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Timeframe() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeframe
}

// AddIndicator registers a selection with parameter values initialized from
// the descriptor defaults. At most one selection per catalog id: adding an
// already-selected id is a no-op. Manual pane heights reset because the
// indicator set changed.
func (s *Session) AddIndicator(desc domain.IndicatorDescriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sel := range s.selected {
		if sel.ID == desc.ID {
			return
		}
	}

	params := make(map[string]any, len(desc.Parameters))
	for name, spec := range desc.Parameters {
		params[name] = spec.Default
	}

	s.selected = append(s.selected, domain.SelectedIndicator{
		ID:              desc.ID,
		DisplayName:     desc.Description,
		ParameterValues: params,
		Enabled:         true,
	})
	s.manualHeights = map[string]float64{}
}

// RemoveIndicator drops the selection and its calculation result. The
// result is superseded, not merged, so nothing of the indicator survives.
func (s *Session) RemoveIndicator(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, sel := range s.selected {
		if sel.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrIndicatorNotSelected
	}
	s.selected = append(s.selected[:idx], s.selected[idx+1:]...)

	kept := s.results[:0]
	for _, r := range s.results {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.results = kept
	s.manualHeights = map[string]float64{}
	return nil
}

func (s *Session) ToggleIndicator(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.selected {
		if s.selected[i].ID == id {
			s.selected[i].Enabled = !s.selected[i].Enabled
			return nil
		}
	}
	return domain.ErrIndicatorNotSelected
}

// SetParameter updates one parameter value. The name must be declared by
// the descriptor the selection was created from.
func (s *Session) SetParameter(desc domain.IndicatorDescriptor, name string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.selected {
		if s.selected[i].ID != desc.ID {
			continue
		}
		if _, ok := desc.Parameters[name]; !ok {
			return domain.ErrUnknownParameter
		}
		s.selected[i].ParameterValues[name] = value
		return nil
	}
	return domain.ErrIndicatorNotSelected
}

func (s *Session) SetTheme(theme domain.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
}

func (s *Session) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

func (s *Session) SetShowVolume(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showVolume = show
}

// SetTimeframe switches the bar interval. Results were aligned to the old
// timeframe's bars, so they are dropped; the selection itself survives and
// the next calculation repopulates them.
func (s *Session) SetTimeframe(tf string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tf == s.timeframe {
		return
	}
	s.timeframe = tf
	s.results = nil
}

// SetZoom stores the renderer-reported window. It is authoritative from
// then on: unrelated rebuilds (theme toggle, volume toggle) keep it.
func (s *Session) SetZoom(zoom domain.ZoomWindow) error {
	if !zoom.IsValid() {
		return domain.ErrInvalidZoomWindow
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zoom = &zoom
	return nil
}

// SetPaneHeight records a manual resize override for one below pane, in
// percent. Clamping to the layout bounds happens in the layout engine.
func (s *Session) SetPaneHeight(id string, height float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sel := range s.selected {
		if sel.ID == id {
			s.manualHeights[id] = height
			return nil
		}
	}
	return domain.ErrIndicatorNotSelected
}

// ResetPaneHeight clears one override, reverting that pane to the
// heuristic height (double-click on the drag handle).
func (s *Session) ResetPaneHeight(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.manualHeights, id)
}

// BeginCalculation validates and claims the calculation slot. It fails
// synchronously, before any network call, when nothing is active or a
// calculation is already running. The returned token identifies this
// request; stale completions are dropped by CompleteCalculation.
func (s *Session) BeginCalculation() (uint64, []domain.SelectedIndicator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.calculating {
		return 0, nil, domain.ErrCalculationInFlight
	}

	active := make([]domain.SelectedIndicator, 0, len(s.selected))
	for _, sel := range s.selected {
		if sel.Enabled {
			active = append(active, cloneSelection(sel))
		}
	}
	if len(active) == 0 {
		return 0, nil, domain.ErrNoActiveIndicators
	}

	s.calculating = true
	s.calcToken++
	return s.calcToken, active, nil
}

// CompleteCalculation stores the outcome of the request identified by
// token. Out-of-order completions are ignored. On failure the previous
// results stay intact and the error is carried in state for the UI.
func (s *Session) CompleteCalculation(token uint64, results []domain.IndicatorResult, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.calcToken {
		return
	}
	s.calculating = false
	if err != nil {
		s.lastErr = err
		return
	}
	s.lastErr = nil
	s.results = results
}

func (s *Session) Calculating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calculating
}

// LastError returns the typed error carried in state, if any.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Snapshot copies the view state for the synthesizer; Results copies the
// normalized results. Both return data the caller may hold without racing
// later mutations.
func (s *Session) Snapshot() domain.ViewSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.ViewSnapshot{
		Title:      s.title,
		Theme:      s.theme,
		ShowVolume: s.showVolume,
		Timeframe:  s.timeframe,
		Selected:   make([]domain.SelectedIndicator, len(s.selected)),
	}
	for i, sel := range s.selected {
		snap.Selected[i] = cloneSelection(sel)
	}
	if s.zoom != nil {
		z := *s.zoom
		snap.Zoom = &z
	}
	if len(s.manualHeights) > 0 {
		snap.ManualPaneHeights = make(map[string]float64, len(s.manualHeights))
		for k, v := range s.manualHeights {
			snap.ManualPaneHeights[k] = v
		}
	}
	return snap
}

func (s *Session) Results() []domain.IndicatorResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.IndicatorResult, len(s.results))
	copy(out, s.results)
	return out
}

func cloneSelection(sel domain.SelectedIndicator) domain.SelectedIndicator {
	params := make(map[string]any, len(sel.ParameterValues))
	for k, v := range sel.ParameterValues {
		params[k] = v
	}
	sel.ParameterValues = params
	return sel
}

// Manager is the session registry.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Create(title string) *Session {
	id := newSessionID()
	s := newSession(id, title)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func newSessionID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read on supported platforms does not fail; an empty id
		// would collide, so panic loudly instead.
		panic(err)
	}
	return hex.EncodeToString(buf)
}
