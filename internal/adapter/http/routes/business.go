package routes

import (
	"obrafacil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients   = "/clients"
	PathEstimates = "/estimates"
	PathServices  = "/services"
)

func addBusinessRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	estimateHandler *handlers.EstimateHandler,
	serviceHandler *handlers.ServiceHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PUT("/:id", estimateHandler.UpdateEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)

		// Lifecycle transitions; approve spawns the service exactly once.
		estimates.PATCH("/:id/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/:id/reject", estimateHandler.RejectEstimate)
		estimates.PATCH("/:id/expire", estimateHandler.ExpireEstimate)

		// Shareable representations.
		estimates.GET("/:id/document", estimateHandler.GetEstimateDocument)
		estimates.GET("/:id/summary", estimateHandler.GetEstimateSummary)
	}

	services := rg.Group(PathServices)
	{
		// Registered before /:id so gin does not treat "summary" as an id.
		services.GET("/summary", serviceHandler.GetFinancialSummary)

		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)

		services.PATCH("/:id/payment", serviceHandler.SetPaymentStatus)
		services.POST("/:id/charge", serviceHandler.CreateCharge)
	}
}
