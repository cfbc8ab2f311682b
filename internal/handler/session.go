package handler

import (
	"net/http"

	"chart-composer/internal/domain"
	"chart-composer/internal/view"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// sessionState is the view-state payload returned after every mutation so
// the client never has to diff local state against the server.
type sessionState struct {
	ID          string                     `json:"id"`
	Title       string                     `json:"title"`
	Theme       domain.Theme               `json:"theme"`
	ShowVolume  bool                       `json:"show_volume"`
	Timeframe   string                     `json:"timeframe"`
	Selected    []domain.SelectedIndicator `json:"selected"`
	Zoom        *domain.ZoomWindow         `json:"zoom,omitempty"`
	PaneHeights map[string]float64         `json:"pane_heights,omitempty"`
	Calculating bool                       `json:"calculating"`
	LastError   string                     `json:"last_error,omitempty"`
}

func stateOf(sess *view.Session) sessionState {
	snap := sess.Snapshot()
	state := sessionState{
		ID:          sess.ID(),
		Title:       snap.Title,
		Theme:       snap.Theme,
		ShowVolume:  snap.ShowVolume,
		Timeframe:   snap.Timeframe,
		Selected:    snap.Selected,
		Zoom:        snap.Zoom,
		PaneHeights: snap.ManualPaneHeights,
		Calculating: sess.Calculating(),
	}
	if err := sess.LastError(); err != nil {
		state.LastError = err.Error()
	}
	return state
}

// GetCatalog godoc
// @Summary      List available indicators
// @Description  Returns the indicator catalog keyed by indicator id
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-catalog")
	defer span.End()

	catalog := h.chartService.Catalog(ctx)
	span.SetAttributes(attribute.Int("indicators", len(catalog)))
	c.JSON(http.StatusOK, gin.H{"indicators": catalog})
}

// CreateSession godoc
// @Summary      Create a chart session
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  sessionState
// @Router       /api/sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.create-session")
	defer span.End()

	sess := h.chartService.CreateSession()
	span.SetAttributes(attribute.String("session_id", sess.ID()))
	c.JSON(http.StatusCreated, stateOf(sess))
}

// DeleteSession godoc
// @Summary      Delete a chart session
// @Tags         sessions
// @Param        id  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/sessions/{id} [delete]
func (h *Handler) DeleteSession(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.delete-session")
	defer span.End()

	id := c.Param("id")
	if _, ok := h.chartService.Session(id); !ok {
		respondError(c, domain.ErrUnknownSession)
		return
	}
	h.chartService.DeleteSession(id)
	c.Status(http.StatusNoContent)
}

type updateViewRequest struct {
	Title      *string `json:"title"`
	Theme      *string `json:"theme"`
	ShowVolume *bool   `json:"show_volume"`
	Timeframe  *string `json:"timeframe"`
}

// UpdateView godoc
// @Summary      Update session view settings
// @Description  Partial update of theme, volume visibility, timeframe and title.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path  string             true  "Session ID"
// @Param        request  body  updateViewRequest  true  "Fields to change"
// @Success      200  {object}  sessionState
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/sessions/{id}/view [put]
func (h *Handler) UpdateView(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.update-view")
	defer span.End()

	sess, ok := h.chartService.Session(c.Param("id"))
	if !ok {
		respondError(c, domain.ErrUnknownSession)
		return
	}

	var req updateViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Theme != nil {
		theme := domain.Theme(*req.Theme)
		if !theme.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be light or dark"})
			return
		}
		sess.SetTheme(theme)
	}
	if req.Timeframe != nil {
		if !domain.IsSupportedTimeframe(*req.Timeframe) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":                "unsupported timeframe: " + *req.Timeframe,
				"supported_timeframes": domain.SupportedTimeframes,
			})
			return
		}
		sess.SetTimeframe(*req.Timeframe)
	}
	if req.ShowVolume != nil {
		sess.SetShowVolume(*req.ShowVolume)
	}
	if req.Title != nil {
		sess.SetTitle(*req.Title)
	}

	c.JSON(http.StatusOK, stateOf(sess))
}
