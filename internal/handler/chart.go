package handler

import (
	"errors"
	"net/http"

	"chart-composer/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetChart godoc
// @Summary      Get the synthesized chart option
// @Description  Builds the full declarative chart option for the session's
// @Description  current bars, results and view state.
// @Tags         chart
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/sessions/{id}/chart [get]
func (h *Handler) GetChart(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-chart")
	defer span.End()
	span.SetAttributes(attribute.String("session_id", c.Param("id")))

	spec, err := h.chartService.BuildChartSpec(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSession) {
			respondError(c, err)
			return
		}
		// Price fetch failed: serve the empty spec with the error riding
		// along so the UI can show stale/empty state plus a retry.
		c.JSON(http.StatusOK, gin.H{"chart": spec, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chart": spec})
}

// Calculate godoc
// @Summary      Run indicator calculations
// @Description  Sends all active indicators upstream in one request and
// @Description  normalizes the response into per-indicator series.
// @Tags         chart
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  sessionState
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/sessions/{id}/calculate [post]
func (h *Handler) Calculate(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.calculate")
	defer span.End()
	span.SetAttributes(attribute.String("session_id", c.Param("id")))

	if err := h.chartService.Calculate(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	sess, ok := h.chartService.Session(c.Param("id"))
	if !ok {
		respondError(c, domain.ErrUnknownSession)
		return
	}
	c.JSON(http.StatusOK, stateOf(sess))
}

// SetZoom godoc
// @Summary      Report the renderer's zoom window
// @Description  Persists the pan/zoom window so later rebuilds keep it.
// @Tags         chart
// @Accept       json
// @Produce      json
// @Param        id       path  string             true  "Session ID"
// @Param        request  body  domain.ZoomWindow  true  "Window in percent"
// @Success      200  {object}  sessionState
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/sessions/{id}/zoom [post]
func (h *Handler) SetZoom(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.set-zoom")
	defer span.End()

	sess, ok := h.chartService.Session(c.Param("id"))
	if !ok {
		respondError(c, domain.ErrUnknownSession)
		return
	}

	var zoom domain.ZoomWindow
	if err := c.ShouldBindJSON(&zoom); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := sess.SetZoom(zoom); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateOf(sess))
}
