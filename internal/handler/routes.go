package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes. adminOnly gates the mutating
// endpoints; read endpoints and view-filter updates stay open.
func RegisterRoutes(e *echo.Echo, adminOnly echo.MiddlewareFunc, transactionHandler *TransactionHandler, personHandler *PersonHandler, cardHandler *CardHandler, budgetHandler *BudgetHandler, dashboardHandler *DashboardHandler, authHandler *AuthHandler, importHandler *ImportHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", transactionHandler.CreateTransaction, adminOnly)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction, adminOnly)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction, adminOnly)

	// View filter routes (per-view state, not gated)
	filters := api.Group("/filters")
	filters.GET("", transactionHandler.GetFilters)
	filters.PATCH("", transactionHandler.UpdateFilters)

	// People routes
	people := api.Group("/people")
	people.GET("", personHandler.GetPeople)
	people.POST("", personHandler.CreatePerson, adminOnly)
	people.PUT("/:id", personHandler.UpdatePerson, adminOnly)
	people.DELETE("/:id", personHandler.DeletePerson, adminOnly)

	// Card routes
	cards := api.Group("/cards")
	cards.GET("", cardHandler.GetCards)
	cards.GET("/default", cardHandler.GetDefaultCard)
	cards.POST("", cardHandler.CreateCard, adminOnly)
	cards.PUT("/default/:id", cardHandler.SetDefaultCard, adminOnly)
	cards.PUT("/:id", cardHandler.UpdateCard, adminOnly)
	cards.DELETE("/:id", cardHandler.DeleteCard, adminOnly)

	// Budget routes
	budget := api.Group("/budget")
	budget.GET("", budgetHandler.GetBudget)
	budget.PUT("", budgetHandler.UpdateBudget, adminOnly)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/person-spending", dashboardHandler.GetPersonSpending)

	// Demo data seeding
	api.POST("/initialize", dashboardHandler.Initialize)

	// Auth routes (demo role toggle)
	auth := api.Group("/auth")
	auth.GET("/role", authHandler.GetRole)
	auth.POST("/role/toggle", authHandler.ToggleRole)

	// Import routes
	imports := api.Group("/import")
	imports.GET("/providers", importHandler.GetProviders)
	imports.POST("/:provider/fetch", importHandler.FetchCandidates, adminOnly)
	imports.POST("/commit", importHandler.CommitImport, adminOnly)

	// WebSocket endpoint
	e.GET("/ws", wsHandler.HandleWS)
}
