package router

import (
	"github.com/gin-gonic/gin"

	"menuflow/internal/config"
	"menuflow/internal/handler"
	"menuflow/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	parseH *handler.ParseHandler,
	reconcileH *handler.ReconcileHandler,
	importH *handler.ImportHandler,
	menuH *handler.MenuHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// All menu routes are scoped to the caller's restaurant
	scoped := v1.Group("")
	scoped.Use(middleware.RestaurantContext())

	menus := scoped.Group("/menus")
	menus.POST("/parse", parseH.Parse)
	menus.POST("/:id/reconcile", reconcileH.Reconcile)
	menus.POST("/:id/import", importH.Commit)
	menus.GET("/:id/items", menuH.ListItems)
	menus.GET("/:id/export", menuH.ExportCSV)

	imports := scoped.Group("/imports")
	imports.GET("/:id", importH.GetJob)

	return r
}
