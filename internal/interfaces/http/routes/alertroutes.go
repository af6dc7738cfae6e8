package routes

import (
	"github.com/gin-gonic/gin"

	"slidebridge/internal/interfaces/http/handlers"
)

type AlertRouteConfig struct {
	AlertHandler  *handlers.AlertHandler
	TicketHandler *handlers.TicketHandler
}

func SetupAlertRoutes(api *gin.RouterGroup, config *AlertRouteConfig) {
	alerts := api.Group("/alerts")
	{
		alerts.GET("", config.AlertHandler.ListAlerts)
		alerts.POST("/ingest", config.AlertHandler.IngestAlerts)

		// Specific action endpoints on one alert.
		alerts.POST("/:id/close", config.AlertHandler.CloseAlert)
		alerts.POST("/:id/ticket", config.TicketHandler.CreateTicket)
	}
}
