package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"slidebridge/internal/application/ticketing/usecases"
	"slidebridge/internal/domain/ticketing"
	"slidebridge/internal/shared/logger"
	"slidebridge/internal/shared/utils"
)

// ConfigHandler serves the ticketing configuration endpoints.
type ConfigHandler struct {
	getUC  *usecases.GetConfigUseCase
	saveUC *usecases.SaveConfigUseCase
	logger logger.Interface
}

func NewConfigHandler(
	getUC *usecases.GetConfigUseCase,
	saveUC *usecases.SaveConfigUseCase,
	log logger.Interface,
) *ConfigHandler {
	return &ConfigHandler{
		getUC:  getUC,
		saveUC: saveUC,
		logger: log,
	}
}

// TicketingConfigRequest is the payload for PUT /api/config/ticketing.
type TicketingConfigRequest struct {
	BoardID         int    `json:"board_id" binding:"required"`
	BoardName       string `json:"board_name"`
	StatusID        int    `json:"status_id" binding:"required"`
	StatusName      string `json:"status_name"`
	PriorityID      int    `json:"priority_id" binding:"required"`
	PriorityName    string `json:"priority_name"`
	TypeID          int    `json:"type_id" binding:"required"`
	TypeName        string `json:"type_name"`
	SummaryTemplate string `json:"summary_template"`
	BodyTemplate    string `json:"body_template"`
	AutoAssignTech  bool   `json:"auto_assign_tech"`
	TechnicianID    *int   `json:"technician_id"`
	TechnicianName  string `json:"technician_name"`
}

// TicketingConfigResponse mirrors the stored configuration.
type TicketingConfigResponse struct {
	BoardID         int       `json:"board_id"`
	BoardName       string    `json:"board_name"`
	StatusID        int       `json:"status_id"`
	StatusName      string    `json:"status_name"`
	PriorityID      int       `json:"priority_id"`
	PriorityName    string    `json:"priority_name"`
	TypeID          int       `json:"type_id"`
	TypeName        string    `json:"type_name"`
	SummaryTemplate string    `json:"summary_template"`
	BodyTemplate    string    `json:"body_template"`
	AutoAssignTech  bool      `json:"auto_assign_tech"`
	TechnicianID    *int      `json:"technician_id,omitempty"`
	TechnicianName  string    `json:"technician_name,omitempty"`
	Configured      bool      `json:"configured"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// GetConfig handles GET /api/config/ticketing
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toConfigResponse(result.Config, result.Configured))
}

// SaveConfig handles PUT /api/config/ticketing
func (h *ConfigHandler) SaveConfig(c *gin.Context) {
	var req TicketingConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for ticketing config", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cfg, err := h.saveUC.Execute(c.Request.Context(), usecases.SaveConfigCommand{
		BoardID:         req.BoardID,
		BoardName:       req.BoardName,
		StatusID:        req.StatusID,
		StatusName:      req.StatusName,
		PriorityID:      req.PriorityID,
		PriorityName:    req.PriorityName,
		TypeID:          req.TypeID,
		TypeName:        req.TypeName,
		SummaryTemplate: req.SummaryTemplate,
		BodyTemplate:    req.BodyTemplate,
		AutoAssignTech:  req.AutoAssignTech,
		TechnicianID:    req.TechnicianID,
		TechnicianName:  req.TechnicianName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Configuration saved", toConfigResponse(cfg, true))
}

func toConfigResponse(cfg *ticketing.Config, configured bool) TicketingConfigResponse {
	return TicketingConfigResponse{
		BoardID:         cfg.BoardID,
		BoardName:       cfg.BoardName,
		StatusID:        cfg.StatusID,
		StatusName:      cfg.StatusName,
		PriorityID:      cfg.PriorityID,
		PriorityName:    cfg.PriorityName,
		TypeID:          cfg.TypeID,
		TypeName:        cfg.TypeName,
		SummaryTemplate: cfg.SummaryTemplate,
		BodyTemplate:    cfg.BodyTemplate,
		AutoAssignTech:  cfg.AutoAssignTech,
		TechnicianID:    cfg.TechnicianID,
		TechnicianName:  cfg.TechnicianName,
		Configured:      configured,
		UpdatedAt:       cfg.UpdatedAt,
	}
}
