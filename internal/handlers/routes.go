package handlers

import "github.com/labstack/echo/v4"

// Handlers groups every HTTP handler the API serves
type Handlers struct {
	Health    *HealthCheckHandler
	Customers *CustomerHandler
	Accounts  *AccountHandler
	Movements *MovementHandler
	Reference *ReferenceHandler
}

// RegisterRoutes mounts the API under /api/v1. Extra middleware applies to the
// versioned group only.
func RegisterRoutes(e *echo.Echo, h Handlers, mw ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health.HealthCheck)

	v1 := e.Group("/api/v1", mw...)

	v1.POST("/customers", h.Customers.CreateCustomer)
	v1.GET("/customers/:customerId", h.Customers.GetCustomer)
	v1.GET("/customers/:customerId/summary", h.Customers.GetSummary)

	v1.POST("/accounts", h.Accounts.CreateAccount)
	v1.GET("/accounts/:accountId", h.Accounts.GetAccount)
	v1.GET("/accounts/:accountId/balance", h.Accounts.GetBalance)
	v1.GET("/accounts/:accountId/movements", h.Accounts.ListMovements)

	v1.POST("/movements", h.Movements.ApplyMovement)
	v1.GET("/movements/:reference", h.Movements.GetMovement)

	v1.GET("/transaction-types", h.Reference.ListTransactionTypes)
}
