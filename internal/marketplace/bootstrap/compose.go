// Package bootstrap — точка сборки marketplace-сервиса: аккаунты, каталог,
// бронирования, WebSocket уведомления. Все зависимости создаются здесь
// и передаются в конструкторы.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	accounttransport "github.com/RedDragX/carrentalwebsite-sub000/internal/account/adapters/in/transport"
	accountrepo "github.com/RedDragX/carrentalwebsite-sub000/internal/account/adapters/out/repo"
	accountusecase "github.com/RedDragX/carrentalwebsite-sub000/internal/account/application/usecase"
	aiinws "github.com/RedDragX/carrentalwebsite-sub000/internal/ai/adapters/in/in_ws"
	aiprovider "github.com/RedDragX/carrentalwebsite-sub000/internal/ai/adapters/out/provider"
	aiout "github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/out"
	aiusecase "github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/usecase"
	bookinginamqp "github.com/RedDragX/carrentalwebsite-sub000/internal/booking/adapters/in/in_amqp"
	bookingtransport "github.com/RedDragX/carrentalwebsite-sub000/internal/booking/adapters/in/transport"
	bookingamqp "github.com/RedDragX/carrentalwebsite-sub000/internal/booking/adapters/out/out_amqp"
	bookingrepo "github.com/RedDragX/carrentalwebsite-sub000/internal/booking/adapters/out/repo"
	bookingusecase "github.com/RedDragX/carrentalwebsite-sub000/internal/booking/application/usecase"
	cataloginamqp "github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/adapters/in/in_amqp"
	catalogtransport "github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/adapters/in/transport"
	catalogamqp "github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/adapters/out/out_amqp"
	catalogrepo "github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/adapters/out/repo"
	catalogusecase "github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/usecase"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/auth"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/config"
	db_conn "github.com/RedDragX/carrentalwebsite-sub000/internal/shared/db"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/mq"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/ws"
)

// Run запускает marketplace-сервис и блокируется до отмены контекста
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) {
	log.Info(logger.Entry{Action: "marketplace_starting", Message: "initializing marketplace service"})

	// Инфраструктура: PostgreSQL, миграции, RabbitMQ, JWT
	dbPool, err := db_conn.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal(logger.Entry{
			Action:  "db_connection_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}
	defer db_conn.Close(dbPool, log)

	if err := db_conn.Migrate(ctx, dbPool); err != nil {
		log.Fatal(logger.Entry{
			Action:  "db_migration_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}

	mqConn, err := mq.NewRabbitMQ(ctx, cfg.RabbitMQ, log)
	if err != nil {
		log.Fatal(logger.Entry{
			Action:  "rabbitmq_connection_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}
	defer mqConn.Close()

	if err := mq.SetupTopology(ctx, mqConn, log); err != nil {
		log.Fatal(logger.Entry{
			Action:  "rabbitmq_topology_setup_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// WebSocket hub: real-time уведомления о бронированиях и live-чат.
	// Сообщения чата уходят в ту же цепочку провайдеров, что и /api/ai/chatbot.
	chatProviders := []aiout.Provider{
		aiprovider.NewOpenAIProvider(cfg.AI),
		aiprovider.NewGeminiProvider(cfg.AI),
		aiprovider.NewHuggingFaceProvider(cfg.AI),
	}
	chatUC := aiusecase.NewChatService(chatProviders, cfg.AI.ForceLocal, log)
	chatRouter := aiinws.NewChatRouter(chatUC, log)

	wsHub := ws.NewHub(jwtService.ExtractUserID, log)
	wsHub.SetMessageHandler(chatRouter.Handle)
	go wsHub.Run(ctx)

	// Репозитории
	userRepo := accountrepo.NewUserPgRepository(dbPool, log)
	carRepo := catalogrepo.NewCarPgRepository(dbPool, log)
	driverRepo := catalogrepo.NewDriverPgRepository(dbPool, log)
	reviewRepo := catalogrepo.NewReviewPgRepository(dbPool, log)
	bookingRepo := bookingrepo.NewBookingPgRepository(dbPool, log)
	catalogReader := bookingrepo.NewCatalogPgReader(dbPool)

	// Publishers
	reviewPublisher := catalogamqp.NewReviewEventPublisher(mqConn, log)
	bookingPublisher := bookingamqp.NewBookingEventPublisher(mqConn, log)

	// Use cases: аккаунты
	registerUC := accountusecase.NewRegisterService(userRepo, jwtService, log)
	loginUC := accountusecase.NewLoginService(userRepo, jwtService, log)

	// Use cases: каталог и отзывы
	listCarsUC := catalogusecase.NewListCarsService(carRepo, log)
	getCarUC := catalogusecase.NewGetCarService(carRepo)
	listDriversUC := catalogusecase.NewListDriversService(driverRepo)
	getDriverUC := catalogusecase.NewGetDriverService(driverRepo)
	createReviewUC := catalogusecase.NewCreateReviewService(reviewRepo, carRepo, driverRepo, reviewPublisher, log)
	listReviewsUC := catalogusecase.NewListReviewsService(reviewRepo)
	recalcRatingUC := catalogusecase.NewRecalcRatingService(reviewRepo, carRepo, driverRepo, log)

	// Use cases: бронирования
	createBookingUC := bookingusecase.NewCreateBookingService(bookingRepo, catalogReader, bookingPublisher, log)
	listBookingsUC := bookingusecase.NewListUserBookingsService(bookingRepo)
	cancelBookingUC := bookingusecase.NewCancelBookingService(bookingRepo, bookingPublisher, log)

	// AMQP consumers: пересчет рейтингов и WebSocket уведомления
	reviewConsumer := cataloginamqp.NewReviewCreatedConsumer(mqConn, recalcRatingUC, log)
	go func() {
		if err := reviewConsumer.Start(ctx); err != nil {
			log.Error(logger.Entry{
				Action:  "review_consumer_failed",
				Message: err.Error(),
				Error:   &logger.ErrObj{Msg: err.Error()},
			})
		}
	}()

	notificationConsumer := bookinginamqp.NewNotificationConsumer(mqConn, wsHub, log)
	go func() {
		if err := notificationConsumer.Start(ctx); err != nil {
			log.Error(logger.Entry{
				Action:  "notification_consumer_failed",
				Message: err.Error(),
				Error:   &logger.ErrObj{Msg: err.Error()},
			})
		}
	}()

	// HTTP handlers и маршруты
	authMiddleware := accounttransport.AuthMiddleware(jwtService, log)

	accountHandler := accounttransport.NewHTTPHandler(registerUC, loginUC, log)
	catalogHandler := catalogtransport.NewHTTPHandler(listCarsUC, getCarUC, listDriversUC, getDriverUC, createReviewUC, listReviewsUC, log)
	bookingHandler := bookingtransport.NewHTTPHandler(createBookingUC, listBookingsUC, cancelBookingUC, log)

	mux := http.NewServeMux()
	accountHandler.RegisterRoutes(mux)
	catalogHandler.RegisterRoutes(mux, authMiddleware)
	bookingHandler.RegisterRoutes(mux, authMiddleware)
	mux.HandleFunc("/ws", wsHub.ServeWS)

	addr := fmt.Sprintf(":%d", cfg.Services.MarketplaceServicePort)
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
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
	log.Info(logger.Entry{Action: "marketplace_stopping", Message: "shutting down marketplace service"})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(logger.Entry{
			Action:  "http_server_shutdown_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}

	log.Info(logger.Entry{Action: "marketplace_stopped", Message: "marketplace service stopped"})
}
