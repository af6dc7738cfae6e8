package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"slidebridge/internal/application/ticketing/usecases"
	"slidebridge/internal/shared/logger"
	"slidebridge/internal/shared/utils"
)

// TicketHandler serves ticket creation, ticket link lifecycle, and
// reconciliation endpoints.
type TicketHandler struct {
	createUC    *usecases.CreateTicketForAlertUseCase
	previewUC   *usecases.PreviewTicketUseCase
	listLinksUC *usecases.ListTicketLinksUseCase
	closeUC     *usecases.CloseTicketLinkUseCase
	reopenUC    *usecases.ReopenTicketLinkUseCase
	reconcileUC *usecases.ReconcileTicketsUseCase
	logger      logger.Interface
}

func NewTicketHandler(
	createUC *usecases.CreateTicketForAlertUseCase,
	previewUC *usecases.PreviewTicketUseCase,
	listLinksUC *usecases.ListTicketLinksUseCase,
	closeUC *usecases.CloseTicketLinkUseCase,
	reopenUC *usecases.ReopenTicketLinkUseCase,
	reconcileUC *usecases.ReconcileTicketsUseCase,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC:    createUC,
		previewUC:   previewUC,
		listLinksUC: listLinksUC,
		closeUC:     closeUC,
		reopenUC:    reopenUC,
		reconcileUC: reconcileUC,
		logger:      log,
	}
}

// PreviewTicketRequest is the payload for POST /api/tickets/preview.
type PreviewTicketRequest struct {
	AlertID         string `json:"alert_id"`
	SummaryTemplate string `json:"summary_template"`
	BodyTemplate    string `json:"body_template"`
}

// CreateTicket handles POST /api/alerts/:id/ticket
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	cmd := usecases.CreateTicketForAlertCommand{AlertID: c.Param("id")}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// PreviewTicket handles POST /api/tickets/preview
func (h *TicketHandler) PreviewTicket(c *gin.Context) {
	var req PreviewTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for ticket preview", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.previewUC.Execute(c.Request.Context(), usecases.PreviewTicketCommand{
		AlertID:         req.AlertID,
		SummaryTemplate: req.SummaryTemplate,
		BodyTemplate:    req.BodyTemplate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTicketLinks handles GET /api/ticket-links
func (h *TicketHandler) ListTicketLinks(c *gin.Context) {
	var query usecases.ListTicketLinksQuery
	if limit := c.Query("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil || parsed < 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		query.Limit = parsed
	}

	result, err := h.listLinksUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Links)
}

// CloseTicketLink handles POST /api/ticket-links/:alertId/close
func (h *TicketHandler) CloseTicketLink(c *gin.Context) {
	cmd := usecases.CloseTicketLinkCommand{AlertID: c.Param("alertId")}

	if err := h.closeUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket link closed", nil)
}

// ReopenTicketLink handles POST /api/ticket-links/:alertId/reopen
func (h *TicketHandler) ReopenTicketLink(c *gin.Context) {
	cmd := usecases.ReopenTicketLinkCommand{AlertID: c.Param("alertId")}

	if err := h.reopenUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket link reopened", nil)
}

// Reconcile handles POST /api/reconcile
func (h *TicketHandler) Reconcile(c *gin.Context) {
	result, err := h.reconcileUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
