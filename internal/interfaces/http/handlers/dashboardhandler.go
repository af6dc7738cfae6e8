package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"slidebridge/internal/application/alert/usecases"
	"slidebridge/internal/shared/logger"
	"slidebridge/internal/shared/utils"
)

// DashboardHandler serves the operator dashboard summary.
type DashboardHandler struct {
	statsUC *usecases.GetDashboardStatsUseCase
	logger  logger.Interface
}

func NewDashboardHandler(statsUC *usecases.GetDashboardStatsUseCase, log logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		statsUC: statsUC,
		logger:  log,
	}
}

// GetStats handles GET /api/dashboard
func (h *DashboardHandler) GetStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
