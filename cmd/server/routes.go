package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"aurum-pay.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	routeHandler       *handlers.RouteHandler
	chainHandler       *handlers.ChainHandler
	balanceHandler     *handlers.BalanceHandler
	merchantHandler    *handlers.MerchantHandler
	transactionHandler *handlers.TransactionHandler
	qrHandler          *handlers.QRHandler
	healthHandler      *handlers.HealthHandler
	rateLimit          gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	if d.rateLimit != nil {
		api.Use(d.rateLimit)
	}
	{
		// Route detection core
		api.POST("/detect-route", d.routeHandler.DetectRoute)
		api.POST("/prepare-transaction", d.routeHandler.PrepareTransaction)
		api.POST("/validate-route", d.routeHandler.ValidateRoute)

		// Static chain catalogue and balances
		api.GET("/supported-chains", d.chainHandler.GetSupportedChains)
		api.GET("/user-balances/:wallet", d.balanceHandler.GetUserBalances)
		api.GET("/token-addresses/:chainId", d.routeHandler.GetTokenAddresses)
		api.GET("/gas-estimate/:chainId", d.routeHandler.GetGasEstimate)

		// Merchant registry
		merchants := api.Group("/merchants")
		{
			merchants.POST("", d.merchantHandler.CreateMerchant)
			merchants.GET("", d.merchantHandler.ListMerchants)
			merchants.GET("/:id", d.merchantHandler.GetMerchant)
		}

		// Payment history and loyalty
		transactions := api.Group("/transactions")
		{
			transactions.POST("", d.transactionHandler.CreateTransaction)
			transactions.GET("", d.transactionHandler.ListTransactions)
			transactions.GET("/:id", d.transactionHandler.GetTransaction)
			transactions.POST("/:id/confirm", d.transactionHandler.ConfirmTransaction)
		}

		// Merchant payment QR codes
		merchants.POST("/:id/qr", d.qrHandler.CreateQRCode)
		api.GET("/qr/:id", d.qrHandler.GetQRCode)

		api.GET("/health", d.healthHandler.Health)
		api.GET("/health/detailed", d.healthHandler.HealthDetailed)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
