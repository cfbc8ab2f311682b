package handler

import (
	"net/http"

	"chart-composer/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type addIndicatorRequest struct {
	ID string `json:"id" binding:"required"`
}

// AddIndicator godoc
// @Summary      Add an indicator to the session
// @Description  Selects a catalog indicator with its default parameters.
// @Description  Adding an already-selected id is a no-op.
// @Tags         indicators
// @Accept       json
// @Produce      json
// @Param        id       path  string               true  "Session ID"
// @Param        request  body  addIndicatorRequest  true  "Indicator id"
// @Success      200  {object}  sessionState
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/sessions/{id}/indicators [post]
func (h *Handler) AddIndicator(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.add-indicator")
	defer span.End()

	var req addIndicatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "indicator id is required"})
		return
	}
	span.SetAttributes(attribute.String("indicator", req.ID))

	if err := h.chartService.AddIndicator(ctx, c.Param("id"), req.ID); err != nil {
		respondError(c, err)
		return
	}
	sess, _ := h.chartService.Session(c.Param("id"))
	c.JSON(http.StatusOK, stateOf(sess))
}

// RemoveIndicator godoc
// @Summary      Remove an indicator from the session
// @Description  Drops the selection and any calculated series for it.
// @Tags         indicators
// @Produce      json
// @Param        id           path  string  true  "Session ID"
// @Param        indicatorID  path  string  true  "Indicator id"
// @Success      200  {object}  sessionState
// @Failure      404  {object}  map[string]string
// @Router       /api/sessions/{id}/indicators/{indicatorID} [delete]
func (h *Handler) RemoveIndicator(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.remove-indicator")
	defer span.End()
	span.SetAttributes(attribute.String("indicator", c.Param("indicatorID")))

	sess, ok := h.chartService.Session(c.Param("id"))
	if !ok {
		respondError(c, domain.ErrUnknownSession)
		return
	}
	if err := sess.RemoveIndicator(c.Param("indicatorID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateOf(sess))
}

// ToggleIndicator godoc
// @Summary      Toggle an indicator's visibility
// @Description  Flips the enabled flag without touching parameters or
// @Description  calculated series, so re-enabling needs no recalculation.
// @Tags         indicators
// @Produce      json
// @Param        id           path  string  true  "Session ID"
// @Param        indicatorID  path  string  true  "Indicator id"
// @Success      200  {object}  sessionState
// @Failure      404  {object}  map[string]string
// @Router       /api/sessions/{id}/indicators/{indicatorID}/toggle [post]
func (h *Handler) ToggleIndicator(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.toggle-indicator")
	defer span.End()
	span.SetAttributes(attribute.String("indicator", c.Param("indicatorID")))

	sess, ok := h.chartService.Session(c.Param("id"))
	if !ok {
		respondError(c, domain.ErrUnknownSession)
		return
	}
	if err := sess.ToggleIndicator(c.Param("indicatorID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateOf(sess))
}

// SetParameters godoc
// @Summary      Update indicator parameters
// @Description  Sets one or more parameter values. Every name must be
// @Description  declared by the catalog descriptor. Takes effect on the
// @Description  next calculation.
// @Tags         indicators
// @Accept       json
// @Produce      json
// @Param        id           path  string          true  "Session ID"
// @Param        indicatorID  path  string          true  "Indicator id"
// @Param        request      body  map[string]any  true  "Parameter values by name"
// @Success      200  {object}  sessionState
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/sessions/{id}/indicators/{indicatorID}/parameters [patch]
func (h *Handler) SetParameters(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.set-parameters")
	defer span.End()
	span.SetAttributes(attribute.String("indicator", c.Param("indicatorID")))

	var params map[string]any
	if err := c.ShouldBindJSON(&params); err != nil || len(params) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected a non-empty parameter object"})
		return
	}

	for name, value := range params {
		if err := h.chartService.SetParameter(ctx, c.Param("id"), c.Param("indicatorID"), name, value); err != nil {
			respondError(c, err)
			return
		}
	}
	sess, _ := h.chartService.Session(c.Param("id"))
	c.JSON(http.StatusOK, stateOf(sess))
}

type paneHeightRequest struct {
	Height float64 `json:"height" binding:"required"`
}

// SetPaneHeight godoc
// @Summary      Override a below-pane height
// @Description  Records a manual height in percent for one below-chart
// @Description  pane. The layout engine clamps it to its bounds.
// @Tags         panes
// @Accept       json
// @Produce      json
// @Param        id           path  string             true  "Session ID"
// @Param        indicatorID  path  string             true  "Indicator id"
// @Param        request      body  paneHeightRequest  true  "Height in percent"
// @Success      200  {object}  sessionState
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/sessions/{id}/panes/{indicatorID}/height [post]
func (h *Handler) SetPaneHeight(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.set-pane-height")
	defer span.End()

	sess, ok := h.chartService.Session(c.Param("id"))
	if !ok {
		respondError(c, domain.ErrUnknownSession)
		return
	}

	var req paneHeightRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Height <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "height must be a positive percentage"})
		return
	}
	if err := sess.SetPaneHeight(c.Param("indicatorID"), req.Height); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateOf(sess))
}

// ResetPaneHeight godoc
// @Summary      Reset a below-pane height
// @Description  Clears the manual override so the pane reverts to the
// @Description  heuristic height.
// @Tags         panes
// @Produce      json
// @Param        id           path  string  true  "Session ID"
// @Param        indicatorID  path  string  true  "Indicator id"
// @Success      200  {object}  sessionState
// @Failure      404  {object}  map[string]string
// @Router       /api/sessions/{id}/panes/{indicatorID}/height [delete]
func (h *Handler) ResetPaneHeight(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.reset-pane-height")
	defer span.End()

	sess, ok := h.chartService.Session(c.Param("id"))
	if !ok {
		respondError(c, domain.ErrUnknownSession)
		return
	}
	sess.ResetPaneHeight(c.Param("indicatorID"))
	c.JSON(http.StatusOK, stateOf(sess))
}
