package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/marketplace/bootstrap"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/config"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

func main() {
	cfg := config.Load()
	log := logger.NewLogger("marketplace-service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	go func() { <-quit; cancel() }()

	bootstrap.Run(ctx, cfg, log)
}
