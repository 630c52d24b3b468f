package main

import (
	"context"
	"io"
	"os"

	"cryptobuddy/internal/advisor"
	"cryptobuddy/internal/bootstrap"
	"cryptobuddy/internal/config"
	"cryptobuddy/internal/tui"
	"cryptobuddy/pkg/logging"
	"cryptobuddy/pkg/tracing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

const logFileName = "cryptobuddy-chat.log"

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	newLoggerFunc  = logging.New
	initTracerFunc = tracing.InitTracer
	openLogFunc    = func() (io.WriteCloser, error) {
		return os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
	runProgramFunc = func(m tea.Model) error {
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	}
)

func main() {
	_ = loadEnvFunc()

	cfg := loadConfigFunc()
	logger := newLoggerFunc(cfg.LogLevel, cfg.LogFormat)

	// The terminal belongs to the UI; logs go to a file.
	if f, err := openLogFunc(); err == nil {
		defer f.Close()
		logger.SetOutput(f)
	} else {
		logger.SetOutput(io.Discard)
	}

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

	if err := runProgramFunc(tui.NewChatModel(advisorService)); err != nil {
		logger.WithError(err).Error("chat ui exited with error")
		os.Exit(1)
	}
}
