// Package bootstrap — точка сборки AI-сервиса: локальные анализаторы,
// внешние провайдеры и HTTP API.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/adapters/in/transport"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/adapters/out/provider"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/adapters/out/repo"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/usecase"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/config"
	db_conn "github.com/RedDragX/carrentalwebsite-sub000/internal/shared/db"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

// Run запускает AI-сервис и блокируется до отмены контекста
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) {
	log.Info(logger.Entry{Action: "ai_service_starting", Message: "initializing ai service"})

	// Инфраструктура: PostgreSQL (данные каталога, только чтение)
	dbPool, err := db_conn.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal(logger.Entry{
			Action:  "db_connection_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}
	defer db_conn.Close(dbPool, log)

	catalogReader := repo.NewCatalogPgReader(dbPool)

	// Провайдеры в порядке приоритета; несконфигурированные пропускаются
	providers := []out.Provider{
		provider.NewOpenAIProvider(cfg.AI),
		provider.NewGeminiProvider(cfg.AI),
		provider.NewHuggingFaceProvider(cfg.AI),
	}

	configured := cfg.AI.ConfiguredProviders()
	usingLocal := cfg.AI.ForceLocal || len(configured) == 0
	log.Info(logger.Entry{
		Action:  "ai_mode_selected",
		Message: "provider chain initialized",
		Additional: map[string]interface{}{
			"providers":      configured,
			"using_local_ai": usingLocal,
			"force_local":    cfg.AI.ForceLocal,
		},
	})

	lexicon := domain.DefaultLexicon()

	// Use cases
	analyzeUC := usecase.NewAnalyzeReviewService(catalogReader, lexicon, log)
	insightsUC := usecase.NewDriverInsightsService(catalogReader, lexicon, log)
	recommendUC := usecase.NewRecommendationsService(catalogReader, log)
	assistantUC := usecase.NewAssistantService(catalogReader, log)
	chatUC := usecase.NewChatService(providers, cfg.AI.ForceLocal, log)
	statusUC := usecase.NewStatusService(providers, cfg.AI.ForceLocal)

	// HTTP handler и сервер
	httpHandler := transport.NewHTTPHandler(analyzeUC, insightsUC, recommendUC, assistantUC, chatUC, statusUC, log)

	mux := http.NewServeMux()
	httpHandler.RegisterRoutes(mux)

	addr := fmt.Sprintf(":%d", cfg.Services.AIServicePort)
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second, // провайдеры могут отвечать долго
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info(logger.Entry{
			Action:  "http_server_starting",
			Message: fmt.Sprintf("listening on %s", addr),
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(logger.Entry{
				Action:  "http_server_failed",
				Message: err.Error(),
				Error:   &logger.ErrObj{Msg: err.Error()},
			})
		}
	}()

	<-ctx.Done()
	log.Info(logger.Entry{Action: "ai_service_stopping", Message: "shutting down ai service"})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(logger.Entry{
			Action:  "http_server_shutdown_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}

	log.Info(logger.Entry{Action: "ai_service_stopped", Message: "ai service stopped"})
}
