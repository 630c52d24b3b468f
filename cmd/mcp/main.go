package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cryptobuddy/internal/advisor"
	"cryptobuddy/internal/bootstrap"
	"cryptobuddy/internal/config"
	"cryptobuddy/internal/mcpserver"
	"cryptobuddy/pkg/logging"
	"cryptobuddy/pkg/tracing"

	"github.com/joho/godotenv"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	newLoggerFunc          = logging.New
	initTracerFunc         = tracing.InitTracer
	runStdioFunc           = func(s *mcpserver.Server, ctx context.Context) error { return s.RunStdio(ctx) }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
)

func main() {
	_ = loadEnvFunc()

	cfg := loadConfigFunc()
	logger := newLoggerFunc(cfg.LogLevel, cfg.LogFormat)
	// stdout carries the protocol.
	logger.SetOutput(os.Stderr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx, tracing.Options{Enabled: cfg.TracingEnabled, Endpoint: cfg.OTLPEndpoint})
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize tracer")
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Warn("error shutting down tracer provider")
		}
	}()

	repo := bootstrap.NewRepository(ctx, cfg, tracer, logger, nil, bootstrap.RepositoryOptions{})
	advisorService := advisor.NewAdvisorService(tracer, repo, logger, nil)
	server := mcpserver.New(tracer, advisorService, logger)

	if cfg.MCPTransport != "http" {
		if err := runStdioFunc(server, ctx); err != nil {
			logger.WithError(err).Error("mcp stdio server stopped")
		}
		return
	}

	srv := server.HTTPServer(cfg.MCPHTTPBind, cfg.MCPHTTPPort)
	go func() {
		logger.WithField("addr", srv.Addr).Info("mcp http server listening")
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	logger.Info("shutting down mcp server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		logger.WithError(err).Error("mcp server forced to shutdown")
	}
}
