package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lounge-engine/internal/handler/api"
	"lounge-engine/internal/handler/middleware"
	"lounge-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, sessionHandler *api.SessionHandler, stationHandler *api.StationHandler, reportHandler *api.ReportHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, sessionHandler, stationHandler, reportHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, sessionHandler *api.SessionHandler, stationHandler *api.StationHandler, reportHandler *api.ReportHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/stations", Handler: stationHandler.List},
			{Method: http.MethodGet, Path: "/quote", Handler: stationHandler.Quote},
		})

		sessions := apiGroup.Group("/sessions")
		{
			addRoutes(sessions, []route{
				{Method: http.MethodPost, Path: "", Handler: sessionHandler.Start},
				{Method: http.MethodGet, Path: "", Handler: sessionHandler.ListLive},
				{Method: http.MethodPost, Path: "/:id/extend", Handler: sessionHandler.Extend},
				{Method: http.MethodPost, Path: "/:id/close", Handler: sessionHandler.Close},
			})
		}

		reports := apiGroup.Group("/reports")
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/revenue", Handler: reportHandler.Revenue},
				{Method: http.MethodGet, Path: "/games", Handler: reportHandler.PopularGames},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
