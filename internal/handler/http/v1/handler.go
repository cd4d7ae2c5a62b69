package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/ambulance_dispatch/internal/config"
	"github.com/shenikar/ambulance_dispatch/internal/ranker"
	"github.com/shenikar/ambulance_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

const engineName = "proximity-ranker"

type Handler struct {
	dispatchService service.DispatchService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(dispatchService service.DispatchService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dispatchService: dispatchService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Find nearest available ambulances
// @Description Rank available ambulances by great-circle distance to the emergency and return the nearest ones.
// @Description An empty ambulance list is rejected; a list without available units yields success=false.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Param request body FindNearestRequest true "Emergency and candidate ambulances"
// @Success 200 {object} FindNearestResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or no ambulances provided"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dispatch/nearest [post]
func (h *Handler) findNearest(c *gin.Context) {
	var input FindNearestRequest
	log := h.logger.WithField("method", "findNearest")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident := DTOToIncident(input.Emergency)
	units := DTOsToUnits(input.Ambulances)
	limit := input.Limit
	if limit == 0 {
		limit = ranker.DefaultLimit
	}

	result, err := h.dispatchService.FindNearest(c.Request.Context(), incident, units, limit)
	if err != nil {
		if errors.Is(err, ranker.ErrNoUnits) {
			log.WithField("emergency_id", incident.ID).Warn("No ambulances provided")
			c.JSON(http.StatusBadRequest, gin.H{"error": "No ambulances provided"})
			return
		}
		log.WithError(err).Error("Failed to rank ambulances in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToFindNearestResponse(result))
}

// @Summary Get dispatch statistics
// @Description Number of ranking calls within the configured time window. Requires the dispatch log.
// @Tags Dispatch
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Failure 503 {object} map[string]string "Dispatch log disabled"
// @Router /dispatch/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.dispatchService.GetStats(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrStatsUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dispatch statistics are disabled"})
			return
		}
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		DispatchCount: count,
		WindowMinutes: h.cfg.StatsTimeWindowMinutes,
	})
}

// @Summary Get application health status
// @Description Liveness probe of the ranking engine
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Engine: engineName})
}
