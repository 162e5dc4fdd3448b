package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Account  *handler.AccountHandler
	Transfer *handler.TransferHandler
	Query    *handler.QueryHandler
	Health   *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers, logger coreport.Logger) {
	router.GET("/healthz", handlers.Health.Health)

	v1 := router.Group("/v1", middleware.Authenticate(logger))
	{
		me := v1.Group("/accounts/me")
		{
			me.POST("", handlers.Account.EnsureAccount)
			me.GET("", handlers.Account.GetAccount)
			me.POST("/deposits", handlers.Account.Deposit)
			me.POST("/withdrawals", handlers.Account.Withdraw)

			me.GET("/transactions", handlers.Query.RecentTransactions)
			me.GET("/categories", handlers.Query.CategoryTotals)
			me.GET("/summary", handlers.Query.Summary)
		}

		v1.POST("/transfers", handlers.Transfer.Transfer)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, idGenerator coreport.IDGenerator, timeProvider coreport.TimeProvider) {
	// Recovery runs inside the request logger so that panics are logged as 500s
	router.Use(middleware.RequestIDMiddleware(idGenerator))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.ErrorHandler(logger))
}
