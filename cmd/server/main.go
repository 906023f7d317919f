package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/X1ag/BahnBestpreis/internal/config"
	"github.com/X1ag/BahnBestpreis/internal/domain"
	"github.com/X1ag/BahnBestpreis/internal/infrastructure/bahn"
	"github.com/X1ag/BahnBestpreis/internal/logging"
	"github.com/X1ag/BahnBestpreis/internal/usecase"
	"github.com/X1ag/BahnBestpreis/internal/utils"
	"github.com/X1ag/BahnBestpreis/transport/rest"
	"github.com/X1ag/BahnBestpreis/transport/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	slog.SetDefault(logger)

	bahnClient := bahn.NewClient(cfg.Bahn.BaseURL, time.Duration(cfg.Bahn.TimeoutMS)*time.Millisecond, logger)

	var resolver domain.StationResolver = bahnClient
	if cfg.Stations.Resolver == config.ResolverStatic {
		resolver = utils.NewStaticResolver()
	}

	searchUC := usecase.NewSearchUsecase(resolver, bahnClient, cfg.Search.DefaultDayLimit, logger).
		WithMaxDayLimit(cfg.Search.MaxDayLimit)
	stationUC := usecase.NewStationUsecase(resolver)

	app := rest.NewApp(searchUC, stationUC, rest.Options{
		ReadTimeout:   time.Duration(cfg.Server.ReadTimeoutMS) * time.Millisecond,
		WriteTimeout:  time.Duration(cfg.Server.WriteTimeoutMS) * time.Millisecond,
		StationSearch: cfg.Stations.Resolver == config.ResolverRemote,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telegram.Token != "" {
		tgBot, err := telegram.NewBot(cfg.Telegram.Token, searchUC, stationUC, logger)
		if err != nil {
			log.Fatal(err)
		}
		go tgBot.Start(ctx)
		slog.Info("telegram bot started")
	}

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("server is running", "addr", addr, "resolver", cfg.Stations.Resolver)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		return
	}
	slog.Info("server shut down successfully")
}
