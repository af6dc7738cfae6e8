package routes

import (
	"github.com/gin-gonic/gin"

	"slidebridge/internal/interfaces/http/handlers"
)

type TicketRouteConfig struct {
	TicketHandler *handlers.TicketHandler
	ConfigHandler *handlers.ConfigHandler
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	api.POST("/tickets/preview", config.TicketHandler.PreviewTicket)
	api.POST("/reconcile", config.TicketHandler.Reconcile)

	links := api.Group("/ticket-links")
	{
		links.GET("", config.TicketHandler.ListTicketLinks)
		links.POST("/:alertId/close", config.TicketHandler.CloseTicketLink)
		links.POST("/:alertId/reopen", config.TicketHandler.ReopenTicketLink)
	}

	ticketingConfig := api.Group("/config")
	{
		ticketingConfig.GET("/ticketing", config.ConfigHandler.GetConfig)
		ticketingConfig.PUT("/ticketing", config.ConfigHandler.SaveConfig)
	}
}
