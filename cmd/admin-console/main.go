package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/linhqtruong/productcatalogmanager/internal/api"
	"github.com/linhqtruong/productcatalogmanager/internal/app"
	"github.com/linhqtruong/productcatalogmanager/internal/config"
	"github.com/linhqtruong/productcatalogmanager/pkg/httpclient"
	"github.com/linhqtruong/productcatalogmanager/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "admin-console: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logLevel := cfg.LogLevel
	if cfg.EnableDebugLogging {
		logLevel = "debug"
	}
	l := logger.New("admin-console", logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clientCfg := httpclient.DefaultConfig()
	clientCfg.Timeout = cfg.APITimeout
	base := httpclient.New(clientCfg)
	breaker := httpclient.NewCircuitBreakerClient(
		base,
		httpclient.DefaultCircuitBreakerConfig("catalog-api"),
		l,
	)

	client := api.New(cfg.APIBaseURL, breaker, l, cfg.EnableDebugLogging)

	l.Info("starting admin console",
		slog.String("environment", cfg.Environment),
		slog.String("api_base_url", cfg.APIBaseURL),
	)

	console := app.New(cfg, client, l, os.Stdin, os.Stdout)
	return console.Run(ctx)
}
