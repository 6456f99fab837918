package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/techtide/orchestrator/internal/catalog"
	"github.com/techtide/orchestrator/internal/config"
	"github.com/techtide/orchestrator/internal/invoker"
	"github.com/techtide/orchestrator/internal/llm"
	"github.com/techtide/orchestrator/internal/metrics"
	"github.com/techtide/orchestrator/internal/service"
	"github.com/techtide/orchestrator/internal/store"
	transport "github.com/techtide/orchestrator/internal/transport/http"
	"github.com/techtide/orchestrator/policy"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting orchestrator",
		zap.Int("http_port", cfg.HTTPPort),
		zap.String("database", cfg.DatabaseURL),
		zap.String("llm_provider", cfg.LLMProvider))

	// Store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to initialize store", zap.Error(err))
	}
	defer db.Close()

	// Agent catalog
	registry := catalog.NewRegistry()

	// LLM client with retry wrapper
	llmClient, err := llm.New(llm.Config{
		Provider:        cfg.LLMProvider,
		OpenAIModel:     cfg.OpenAIModel,
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		AnthropicModel:  cfg.AnthropicModel,
	})
	if err != nil {
		logger.Fatal("failed to initialize llm client", zap.Error(err))
	}
	retryOpts := llm.DefaultRetryOptions()
	retryOpts.MaxRetries = cfg.LLMMaxRetries
	llmClient = llm.WithRetry(llmClient, retryOpts, logger)

	// Invoker
	inv := invoker.NewLLMInvoker(registry, llmClient, cfg.AgentTimeout, logger)

	// Policy engine
	ctx := context.Background()
	policyContent := policy.DefaultPolicy
	if cfg.PolicyPath != "" {
		raw, err := os.ReadFile(cfg.PolicyPath)
		if err != nil {
			logger.Fatal("failed to read policy file", zap.String("path", cfg.PolicyPath), zap.Error(err))
		}
		policyContent = string(raw)
	}
	policyEngine, err := policy.NewEngine(ctx, policyContent)
	if err != nil {
		logger.Fatal("failed to initialize policy engine", zap.Error(err))
	}

	// Metrics
	collector := metrics.NewCollector()

	// Service
	svc := service.New(db, inv, registry, policyEngine, collector, logger, service.Options{
		TerminalWriteRetries:   cfg.TerminalWriteRetries,
		TerminalWriteBaseDelay: cfg.TerminalWriteBaseDelay,
	})

	// HTTP server
	server := transport.NewServer(svc, registry, cfg.DefaultTenantID)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	logger.Info("orchestrator started", zap.Int("http_port", cfg.HTTPPort))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down orchestrator")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server gracefully", zap.Error(err))
	}

	logger.Info("orchestrator stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	return cfg.Build()
}
