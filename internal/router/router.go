package router

import (
	"github.com/gin-gonic/gin"

	"credigate/internal/config"
	"credigate/internal/handler"
	"credigate/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	consultaH *handler.ConsultaHandler,
	historyH *handler.HistoryHandler,
	authH *handler.AuthHandler,
	balanceH *handler.BalanceHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Session(cfg.Session, cfg.Server.IsProduction()))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Auth proxy
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/logout", authH.Logout)
	auth.GET("/session", authH.Session)

	// Consultations
	consultas := v1.Group("/consultas")
	consultas.GET("", consultaH.Catalog)
	consultas.POST("/:slug", consultaH.Submit)
	consultas.GET("/history", historyH.List)
	consultas.GET("/history/counts", historyH.Counts)
	consultas.GET("/history/export.csv", historyH.ExportCSV)
	consultas.GET("/history/export.xlsx", historyH.ExportXLSX)

	// Reports and balance
	v1.GET("/reports/:protocol", reportH.Get)
	v1.GET("/balance", balanceH.Get)

	return r
}
