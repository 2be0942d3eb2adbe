package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/config"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"

	aiboot "github.com/RedDragX/carrentalwebsite-sub000/internal/ai/bootstrap"
	marketplaceboot "github.com/RedDragX/carrentalwebsite-sub000/internal/marketplace/bootstrap"
)

func main() {
	svc := flag.String("service", "marketplace", "marketplace|ai|all")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	go func() { <-quit; cancel() }()

	switch *svc {
	case "marketplace":
		log := logger.NewLogger("marketplace-service")
		marketplaceboot.Run(ctx, cfg, log)

	case "ai":
		log := logger.NewLogger("ai-service")
		aiboot.Run(ctx, cfg, log)

	case "all":
		marketplaceLog := logger.NewLogger("marketplace-service")
		aiLog := logger.NewLogger("ai-service")

		go marketplaceboot.Run(ctx, cfg, marketplaceLog)
		go aiboot.Run(ctx, cfg, aiLog)

	default:
		log := logger.NewLogger("bootstrap")
		log.Fatal(logger.Entry{Action: "invalid_service", Message: *svc})
	}

	<-ctx.Done()
}
