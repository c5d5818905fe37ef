package main

import (
	"family-ledger/internal/handlers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeHandlers struct {
	definitions  *handlers.DefinitionHandler
	transactions *handlers.TransactionHandler
	installments *handlers.InstallmentHandler
	budgets      *handlers.BudgetHandler
	health       *handlers.HealthCheckHandler
	// dev is nil in production.
	dev *handlers.DevHandler
}

func registerRoutes(e *echo.Echo, h routeHandlers, requireAuth, rateLimit echo.MiddlewareFunc, reg prometheus.Registerer) {
	e.GET("/health", h.health.HealthCheck)
	if gatherer, ok := reg.(prometheus.Gatherer); ok {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	v1 := e.Group("/api/v1")

	if h.dev != nil {
		v1.POST("/dev/token", h.dev.IssueToken, rateLimit)
	}

	api := v1.Group("", requireAuth, rateLimit)

	definitions := api.Group("/recurring-definitions")
	definitions.POST("", h.definitions.CreateDefinition)
	definitions.GET("", h.definitions.ListDefinitions)
	definitions.GET("/:id", h.definitions.GetDefinition)
	definitions.PATCH("/:id", h.definitions.UpdateDefinition)
	definitions.DELETE("/:id", h.definitions.DeleteDefinition)
	definitions.POST("/:id/restore", h.definitions.RestoreDefinition)
	definitions.GET("/:id/instances", h.definitions.ListDefinitionInstances)

	plans := api.Group("/installment-plans")
	plans.POST("", h.installments.CreatePlan)
	plans.GET("", h.installments.ListPlans)
	plans.GET("/:id", h.installments.GetPlan)
	plans.PATCH("/:id", h.installments.UpdatePlan)
	plans.DELETE("/:id", h.installments.DeletePlan)
	plans.POST("/:id/restore", h.installments.RestorePlan)

	transactions := api.Group("/transactions")
	transactions.POST("", h.transactions.CreateTransaction)
	transactions.GET("", h.transactions.ListTransactions)
	transactions.GET("/export", h.transactions.ExportTransactions)
	transactions.GET("/:id", h.transactions.GetTransaction)
	transactions.PATCH("/:id", h.transactions.UpdateTransaction)
	transactions.DELETE("/:id", h.transactions.DeleteTransaction)
	transactions.POST("/:id/process", h.transactions.ProcessTransaction)

	api.PUT("/budget-allocations", h.budgets.UpsertAllocation)
	api.GET("/budget-allocations/:id/status", h.budgets.GetBudgetStatus)
	api.GET("/budgets/status", h.budgets.GetPeriodStatus)
}
