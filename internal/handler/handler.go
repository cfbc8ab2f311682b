package handler

import (
	"errors"
	"net/http"

	"chart-composer/internal/domain"
	"chart-composer/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer       trace.Tracer
	chartService *service.ChartService
}

func New(tracer trace.Tracer, chartService *service.ChartService) *Handler {
	return &Handler{
		tracer:       tracer,
		chartService: chartService,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/catalog", h.GetCatalog)
	r.POST("/api/sessions", h.CreateSession)
	r.DELETE("/api/sessions/:id", h.DeleteSession)
	r.GET("/api/sessions/:id/chart", h.GetChart)
	r.PUT("/api/sessions/:id/view", h.UpdateView)
	r.POST("/api/sessions/:id/zoom", h.SetZoom)
	r.POST("/api/sessions/:id/calculate", h.Calculate)
	r.POST("/api/sessions/:id/indicators", h.AddIndicator)
	r.DELETE("/api/sessions/:id/indicators/:indicatorID", h.RemoveIndicator)
	r.POST("/api/sessions/:id/indicators/:indicatorID/toggle", h.ToggleIndicator)
	r.PATCH("/api/sessions/:id/indicators/:indicatorID/parameters", h.SetParameters)
	r.POST("/api/sessions/:id/panes/:indicatorID/height", h.SetPaneHeight)
	r.DELETE("/api/sessions/:id/panes/:indicatorID/height", h.ResetPaneHeight)
}

// respondError maps domain errors to HTTP statuses. Upstream fetch
// failures surface as 502 so the UI can distinguish them from bad input.
func respondError(c *gin.Context, err error) {
	var userErr domain.UserInputError
	switch {
	case errors.Is(err, domain.ErrUnknownSession),
		errors.Is(err, domain.ErrUnknownIndicator),
		errors.Is(err, domain.ErrIndicatorNotSelected):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCalculationInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoActiveIndicators),
		errors.Is(err, domain.ErrUnknownParameter),
		errors.Is(err, domain.ErrInvalidZoomWindow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &userErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsFetchError(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Health godoc
// @Summary      Health check
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
