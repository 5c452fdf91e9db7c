package routes

import (
	"net/http"

	_ "proposal_relay/docs" // generated by swag init
	"proposal_relay/internal/adapter/http/handlers"
	"proposal_relay/internal/infrastructure/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const PathAPI = "/api"

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Proposal *handlers.ProposalHandler
	Catalog  *handlers.CatalogHandler
}

// NewRouter builds the HTTP engine with middlewares and all routes mounted.
func NewRouter(cfg *config.Config, h Handlers, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, cfg, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group(PathAPI)
	addPingRoutes(api)
	addCatalogRoutes(api, h.Catalog)
	addProposalRoutes(api, h.Proposal)

	return router
}

// Run starts the server and blocks until it stops.
func Run(cfg *config.Config, h Handlers, logger *zap.Logger) error {
	router := NewRouter(cfg, h, logger)
	logger.Info("server listening", zap.String("addr", cfg.Addr()), zap.String("frontend_origin", cfg.FrontendOrigin))
	return router.Run(cfg.Addr())
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.FrontendOrigin)))
}

// corsConfig allows a single browser origin to call the API.
func corsConfig(origin string) cors.Config {
	return cors.Config{
		AllowOrigins: []string{origin},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type"},
	}
}
