package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"slidebridge/internal/infrastructure/cache"
	"slidebridge/internal/infrastructure/connectwise"
	"slidebridge/internal/infrastructure/slide"
	"slidebridge/internal/shared/logger"
	"slidebridge/internal/shared/utils"
)

// DirectoryHandler exposes the remote Slide and ConnectWise directories so
// the UI can populate mapping and configuration pickers. Responses are read
// through the directory cache; a refresh=true query forces a live fetch.
type DirectoryHandler struct {
	slideClient *slide.Client
	cwClient    *connectwise.Client
	cache       *cache.DirectoryCache
	logger      logger.Interface
}

func NewDirectoryHandler(
	slideClient *slide.Client,
	cwClient *connectwise.Client,
	dirCache *cache.DirectoryCache,
	log logger.Interface,
) *DirectoryHandler {
	return &DirectoryHandler{
		slideClient: slideClient,
		cwClient:    cwClient,
		cache:       dirCache,
		logger:      log,
	}
}

// SlideClients handles GET /api/slide/clients
func (h *DirectoryHandler) SlideClients(c *gin.Context) {
	h.invalidateOnRefresh(c, "slide_clients")
	clients, _, err := cache.Fetch(c.Request.Context(), h.cache, "slide_clients", h.slideClient.GetClients)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", clients)
}

// SlideDevices handles GET /api/slide/devices
func (h *DirectoryHandler) SlideDevices(c *gin.Context) {
	h.invalidateOnRefresh(c, "slide_devices")
	devices, _, err := cache.Fetch(c.Request.Context(), h.cache, "slide_devices", h.slideClient.GetDevices)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", devices)
}

// Companies handles GET /api/connectwise/companies
func (h *DirectoryHandler) Companies(c *gin.Context) {
	h.invalidateOnRefresh(c, "connectwise_companies")
	companies, _, err := cache.Fetch(c.Request.Context(), h.cache, "connectwise_companies", h.cwClient.GetCompanies)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", companies)
}

// Boards handles GET /api/connectwise/boards
func (h *DirectoryHandler) Boards(c *gin.Context) {
	h.invalidateOnRefresh(c, "connectwise_boards")
	boards, _, err := cache.Fetch(c.Request.Context(), h.cache, "connectwise_boards", h.cwClient.GetBoards)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", boards)
}

// Statuses handles GET /api/connectwise/boards/:boardId/statuses
func (h *DirectoryHandler) Statuses(c *gin.Context) {
	boardID, err := parseBoardID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid board ID")
		return
	}

	key := "connectwise_statuses_" + strconv.Itoa(boardID)
	h.invalidateOnRefresh(c, key)
	statuses, _, err := cache.Fetch(c.Request.Context(), h.cache, key,
		func(ctx context.Context) ([]connectwise.Status, error) {
			return h.cwClient.GetStatuses(ctx, boardID)
		})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", statuses)
}

// Priorities handles GET /api/connectwise/priorities
func (h *DirectoryHandler) Priorities(c *gin.Context) {
	h.invalidateOnRefresh(c, "connectwise_priorities")
	priorities, _, err := cache.Fetch(c.Request.Context(), h.cache, "connectwise_priorities", h.cwClient.GetPriorities)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", priorities)
}

// Types handles GET /api/connectwise/boards/:boardId/types
func (h *DirectoryHandler) Types(c *gin.Context) {
	boardID, err := parseBoardID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid board ID")
		return
	}

	key := "connectwise_types_" + strconv.Itoa(boardID)
	h.invalidateOnRefresh(c, key)
	types, _, err := cache.Fetch(c.Request.Context(), h.cache, key,
		func(ctx context.Context) ([]connectwise.Type, error) {
			return h.cwClient.GetTypes(ctx, boardID)
		})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", types)
}

// Members handles GET /api/connectwise/members
func (h *DirectoryHandler) Members(c *gin.Context) {
	h.invalidateOnRefresh(c, "connectwise_members")
	members, _, err := cache.Fetch(c.Request.Context(), h.cache, "connectwise_members", h.cwClient.GetMembers)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", members)
}

func (h *DirectoryHandler) invalidateOnRefresh(c *gin.Context, key string) {
	if c.Query("refresh") != "true" {
		return
	}
	if err := h.cache.Invalidate(c.Request.Context(), key); err != nil {
		h.logger.Warnw("failed to invalidate directory cache", "key", key, "error", err)
	}
}

func parseBoardID(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("boardId"))
}
