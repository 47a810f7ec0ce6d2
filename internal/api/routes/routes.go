package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-busca-processos/internal/api/handlers"
	"github.com/prefeitura-rio/app-busca-processos/internal/config"
	middlewares "github.com/prefeitura-rio/app-busca-processos/internal/middleware"
	"github.com/prefeitura-rio/app-busca-processos/internal/search"
)

// SetupRouter monta as rotas da API. assistant nil desabilita o chat.
func SetupRouter(cfg *config.Config, engine *search.Engine, assistant handlers.Replier, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := handlers.RegisterValidations(); err != nil {
		logger.Fatal("erro ao registrar validações", zap.Error(err))
	}

	r := gin.New()
	r.Use(
		middlewares.RequestID(),
		middlewares.Recovery(logger),
		middlewares.RequestTiming(),
		middlewares.Logger(logger),
		corsMiddleware(cfg.AllowedOrigins),
	)

	healthHandler := handlers.NewHealthHandler(engine, assistant != nil)
	buscaHandler := handlers.NewBuscaHandler(engine)
	tribunalHandler := handlers.NewTribunalHandler(engine)
	chatHandler := handlers.NewChatHandler(assistant)

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api/v1")
	{
		api.POST("/busca", buscaHandler.Buscar)
		api.GET("/busca", buscaHandler.BuscarGet)
		api.GET("/processos/:numero", buscaHandler.BuscarProcesso)

		api.GET("/tribunais", tribunalHandler.ListarTribunais)
		api.GET("/tribunais/:codigo", tribunalHandler.BuscarTribunal)
		api.GET("/tribunais/:codigo/busca", tribunalHandler.BuscarNoTribunal)

		api.POST("/chat", chatHandler.Chat)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cors.New(cfg)
		}
	}
	cfg.AllowOrigins = origins
	return cors.New(cfg)
}
