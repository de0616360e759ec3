package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"fit-coach/config"
	"fit-coach/internal/apiclient"
	"fit-coach/internal/bot"
	"fit-coach/pkg/logger"
)

func main() {
	l := logger.New()
	defer l.Sync()

	cfg, err := config.Load()
	if err != nil {
		l.Fatalw("failed to load config", "error", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		l.Fatalw("failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
	}
	defer redisClient.Close()

	backend := apiclient.New(cfg.API.BaseURL)
	states := bot.NewRedisStore(redisClient)
	throttle := bot.NewRedisThrottle(redisClient, cfg.CooldownTime)

	tgBot, err := bot.NewTelegramBot(cfg.Telegram.Token, backend, states, throttle, l.Named("bot"))
	if err != nil {
		l.Fatalw("failed to create bot", "error", err)
	}

	if err := tgBot.Start(ctx); err != nil {
		l.Fatalw("failed to start bot", "error", err)
	}
	l.Info("bot started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("shutting down")
	stopCtx, stopCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stopCancel()
	if err := tgBot.Stop(stopCtx); err != nil {
		l.Errorw("failed to stop bot cleanly", "error", err)
	}
}
