package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fit-coach/config"
	"fit-coach/internal/ai"
	"fit-coach/internal/db"
	"fit-coach/internal/server"
	"fit-coach/internal/service"
	"fit-coach/pkg/logger"
)

func main() {
	l := logger.New()
	defer l.Sync()

	cfg, err := config.Load()
	if err != nil {
		l.Fatalw("failed to load config", "error", err)
	}

	var database *db.PostgresDB
	for attempt := 1; attempt <= 5; attempt++ {
		database, err = db.NewPostgresDB(cfg)
		if err == nil {
			break
		}
		l.Warnw("database not ready, retrying", "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	if err != nil {
		l.Fatalw("failed to connect to database", "error", err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx); err != nil {
		cancel()
		l.Fatalw("failed to run migrations", "error", err)
	}
	cancel()

	aiClient := ai.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, l.Named("ai"))
	svc := service.New(database, aiClient, l.Named("service"))
	srv := server.New(cfg.Server.Port, svc, l.Named("http"))

	go func() {
		if err := srv.Start(); err != nil {
			l.Fatalw("http server stopped", "error", err)
		}
	}()
	l.Infow("api server started", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("shutting down")
	if err := srv.Stop(); err != nil {
		l.Errorw("failed to stop http server", "error", err)
	}
}
