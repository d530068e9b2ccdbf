package handler

import (
	"chain-inventory-gateway/internal/adapter/http/middleware"
	"chain-inventory-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	InventorySvc   ports.InventoryService
	Pages          *PageRenderer
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// The route table is flat by design: the frontend and the NFC writer apps
// bake these exact paths into deployed tags, so there is no version prefix.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (verifies ledger RPC, plus Redis when configured)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	inventory := NewInventoryHandler(deps.InventorySvc)
	tags := NewTagHandler(deps.InventorySvc, deps.Pages)

	// JSON endpoints (frontend UI)
	r.POST("/register", inventory.Register)
	r.POST("/updateLocation", inventory.UpdateLocation)
	r.POST("/logSale", inventory.LogSale)
	r.POST("/deleteProduct", inventory.Delete)
	r.GET("/products", inventory.ListProducts)
	r.GET("/product/:productId", inventory.GetProduct)

	// HTML endpoints (NFC scanner browsers)
	r.GET("/register", tags.Register)
	r.GET("/updateLocation", tags.UpdateLocation)
	r.GET("/logSale", tags.LogSale)
	r.GET("/checkProduct", tags.CheckStatus)

	return r
}
