// Package handlers contains the gin HTTP handlers for the REST API.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"slidebridge/internal/application/mapping/usecases"
	"slidebridge/internal/shared/logger"
	"slidebridge/internal/shared/utils"
)

type ListMappingsExecutor interface {
	Execute(ctx context.Context) (*usecases.ListMappingsResult, error)
}

type CreateMappingExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateMappingCommand) (*usecases.CreateMappingResult, error)
}

type DeleteMappingExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteMappingCommand) error
}

type AutoMapClientsExecutor interface {
	Execute(ctx context.Context) (*usecases.AutoMapResult, error)
}

// MappingHandler serves the client-to-company mapping endpoints.
type MappingHandler struct {
	listUC    ListMappingsExecutor
	createUC  CreateMappingExecutor
	deleteUC  DeleteMappingExecutor
	autoMapUC AutoMapClientsExecutor
	logger    logger.Interface
}

func NewMappingHandler(
	listUC ListMappingsExecutor,
	createUC CreateMappingExecutor,
	deleteUC DeleteMappingExecutor,
	autoMapUC AutoMapClientsExecutor,
	log logger.Interface,
) *MappingHandler {
	return &MappingHandler{
		listUC:    listUC,
		createUC:  createUC,
		deleteUC:  deleteUC,
		autoMapUC: autoMapUC,
		logger:    log,
	}
}

// CreateMappingRequest is the payload for POST /api/mappings.
type CreateMappingRequest struct {
	SlideClientID   string `json:"slide_client_id" binding:"required"`
	SlideClientName string `json:"slide_client_name"`
	ConnectWiseID   int    `json:"connectwise_id" binding:"required"`
	ConnectWiseName string `json:"connectwise_name"`
}

// ListMappings handles GET /api/mappings
func (h *MappingHandler) ListMappings(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Rows)
}

// CreateMapping handles POST /api/mappings
func (h *MappingHandler) CreateMapping(c *gin.Context) {
	var req CreateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create mapping", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.CreateMappingCommand{
		SlideClientID:   req.SlideClientID,
		SlideClientName: req.SlideClientName,
		ConnectWiseID:   req.ConnectWiseID,
		ConnectWiseName: req.ConnectWiseName,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Mapping created successfully")
}

// DeleteMapping handles DELETE /api/mappings/:slideClientId
func (h *MappingHandler) DeleteMapping(c *gin.Context) {
	slideClientID := c.Param("slideClientId")

	err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteMappingCommand{
		SlideClientID: slideClientID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AutoMap handles POST /api/mappings/automap
func (h *MappingHandler) AutoMap(c *gin.Context) {
	result, err := h.autoMapUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
