package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "github.com/prefeitura-rio/app-busca-processos/docs"
	"github.com/prefeitura-rio/app-busca-processos/internal/api/handlers"
	"github.com/prefeitura-rio/app-busca-processos/internal/api/routes"
	"github.com/prefeitura-rio/app-busca-processos/internal/chat"
	"github.com/prefeitura-rio/app-busca-processos/internal/config"
	"github.com/prefeitura-rio/app-busca-processos/internal/logger"
	"github.com/prefeitura-rio/app-busca-processos/internal/observability"
	"github.com/prefeitura-rio/app-busca-processos/internal/search"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/adapter"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/court"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/query"
)

// @title           Busca de Processos Judiciais API
// @version         1.0
// @description     API de consulta a processos judiciais via Datajud (CNJ), com roteamento por número CNJ e assistente conversacional
// @termsOfService  http://swagger.io/terms/

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

func main() {
	cfg := config.LoadConfig()

	zl, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Erro ao iniciar logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("servidor encerrado com erro", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer, err := observability.InitTracer(ctx, cfg, zl)
	if err != nil {
		zl.Warn("tracing indisponível", zap.Error(err))
	}

	directory := court.Default()
	router, err := query.NewRouter(directory,
		query.WithDefaultCourt(cfg.DatajudDefaultCourt),
		query.WithLogger(zl))
	if err != nil {
		return fmt.Errorf("tribunal padrão inválido: %w", err)
	}

	datajud := adapter.NewDatajudAdapter(directory, adapter.DatajudConfig{
		BaseURL: cfg.DatajudBaseURL,
		APIKey:  cfg.DatajudAPIKey,
		Timeout: cfg.DatajudTimeout,
	}, zl)
	engine := search.NewEngine(router, datajud, directory, zl)

	var replier handlers.Replier
	geminiClient, err := adapter.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	switch {
	case err != nil:
		zl.Warn("chat desabilitado", zap.Error(err))
	case geminiClient == nil:
		zl.Info("chat desabilitado: GEMINI_API_KEY não definida")
	default:
		gemini := adapter.NewGeminiAdapter(geminiClient, adapter.GeminiConfig{ChatModel: cfg.GeminiChatModel})
		replier = chat.NewAssistant(gemini, engine, zl)
		zl.Info("chat habilitado", zap.String("model", gemini.ChatModel()))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           routes.SetupRouter(cfg, engine, replier, zl),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zl.Info("servidor iniciado",
			zap.String("port", cfg.ServerPort),
			zap.String("default_court", engine.DefaultCourt().Code),
			zap.Int("courts", directory.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("erro ao iniciar servidor: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		zl.Info("encerrando servidor")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("erro ao encerrar servidor: %w", err)
		}
		return tracer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
