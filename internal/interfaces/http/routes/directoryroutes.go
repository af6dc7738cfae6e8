package routes

import (
	"github.com/gin-gonic/gin"

	"slidebridge/internal/interfaces/http/handlers"
)

type DirectoryRouteConfig struct {
	DirectoryHandler *handlers.DirectoryHandler
}

func SetupDirectoryRoutes(api *gin.RouterGroup, config *DirectoryRouteConfig) {
	slideDir := api.Group("/slide")
	{
		slideDir.GET("/clients", config.DirectoryHandler.SlideClients)
		slideDir.GET("/devices", config.DirectoryHandler.SlideDevices)
	}

	cw := api.Group("/connectwise")
	{
		cw.GET("/companies", config.DirectoryHandler.Companies)
		cw.GET("/boards", config.DirectoryHandler.Boards)
		cw.GET("/boards/:boardId/statuses", config.DirectoryHandler.Statuses)
		cw.GET("/boards/:boardId/types", config.DirectoryHandler.Types)
		cw.GET("/priorities", config.DirectoryHandler.Priorities)
		cw.GET("/members", config.DirectoryHandler.Members)
	}
}
