package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"slidebridge/internal/application/alert/usecases"
	"slidebridge/internal/shared/logger"
	"slidebridge/internal/shared/utils"
)

// AlertHandler serves the alert ingestion and listing endpoints.
type AlertHandler struct {
	ingestUC *usecases.IngestAlertsUseCase
	listUC   *usecases.ListAlertsUseCase
	closeUC  *usecases.CloseAlertUseCase
	logger   logger.Interface
}

func NewAlertHandler(
	ingestUC *usecases.IngestAlertsUseCase,
	listUC *usecases.ListAlertsUseCase,
	closeUC *usecases.CloseAlertUseCase,
	log logger.Interface,
) *AlertHandler {
	return &AlertHandler{
		ingestUC: ingestUC,
		listUC:   listUC,
		closeUC:  closeUC,
		logger:   log,
	}
}

// ListAlerts handles GET /api/alerts
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	query := usecases.ListAlertsQuery{
		UnresolvedOnly: c.Query("unresolved") == "true",
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Alerts)
}

// IngestAlerts handles POST /api/alerts/ingest
func (h *AlertHandler) IngestAlerts(c *gin.Context) {
	result, err := h.ingestUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CloseAlert handles POST /api/alerts/:id/close
func (h *AlertHandler) CloseAlert(c *gin.Context) {
	cmd := usecases.CloseAlertCommand{AlertID: c.Param("id")}

	if err := h.closeUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alert closed", nil)
}
