package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/internal/utils"
	"github.com/piresc/arcpay/services/scheduler"
)

// SchedulerHandler lets operators trigger a tick on demand
type SchedulerHandler struct {
	schedulerUC scheduler.SchedulerUC
}

// NewSchedulerHandler creates the scheduler handler
func NewSchedulerHandler(schedulerUC scheduler.SchedulerUC) *SchedulerHandler {
	return &SchedulerHandler{schedulerUC: schedulerUC}
}

// Tick serves POST /v1/scheduler/tick
func (h *SchedulerHandler) Tick(c echo.Context) error {
	results, err := h.schedulerUC.Tick(c.Request().Context())
	if err != nil {
		logger.Error("Manual tick failed", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	if results == nil {
		results = []models.TickResult{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "Tick complete", results)
}

// RegisterRoutes mounts the scheduler endpoints on g
func (h *SchedulerHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/scheduler/tick", h.Tick)
}
