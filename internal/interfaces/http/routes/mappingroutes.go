// Package routes registers the API route groups.
package routes

import (
	"github.com/gin-gonic/gin"

	"slidebridge/internal/interfaces/http/handlers"
)

type MappingRouteConfig struct {
	MappingHandler *handlers.MappingHandler
}

func SetupMappingRoutes(api *gin.RouterGroup, config *MappingRouteConfig) {
	mappings := api.Group("/mappings")
	{
		mappings.GET("", config.MappingHandler.ListMappings)
		mappings.POST("", config.MappingHandler.CreateMapping)
		mappings.POST("/automap", config.MappingHandler.AutoMap)
		mappings.DELETE("/:slideClientId", config.MappingHandler.DeleteMapping)
	}
}
