// Package main runs the scribe chat TUI: an interactive terminal
// client for a running scribe server. Messages go through the built-in
// command interpreter, or through the OpenAI-backed assistant when an
// API key is configured.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/entrhq/scribe/pkg/assistant"
	"github.com/entrhq/scribe/pkg/client"
	"github.com/entrhq/scribe/pkg/config"
	"github.com/entrhq/scribe/pkg/logging"
	"github.com/entrhq/scribe/pkg/tui"
)

const version = "2.0.0"

// CLIConfig holds command-line configuration.
type CLIConfig struct {
	Server      string
	APIKey      string
	BaseURL     string
	Model       string
	ConfigFile  string
	ShowVersion bool
}

func main() {
	cliConfig := parseFlags()

	if cliConfig.ShowVersion {
		fmt.Printf("scribe-chat v%s\n", version)
		return
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := run(ctx, cliConfig); err != nil {
		cancel()
		log.Fatalf("Chat failed: %v", err)
	}
	cancel()
}

// parseFlags parses command line flags and environment variables.
func parseFlags() *CLIConfig {
	cliConfig := &CLIConfig{}

	flag.StringVar(&cliConfig.Server, "server", envOr("SCRIBE_SERVER", "http://localhost:8000"), "scribe server base URL (or set SCRIBE_SERVER env var)")
	flag.StringVar(&cliConfig.APIKey, "api-key", os.Getenv("OPENAI_API_KEY"), "OpenAI API key (or set OPENAI_API_KEY env var)")
	flag.StringVar(&cliConfig.BaseURL, "base-url", os.Getenv("OPENAI_BASE_URL"), "OpenAI API base URL (or set OPENAI_BASE_URL env var)")
	flag.StringVar(&cliConfig.Model, "model", "", "Assistant model (default from config)")
	flag.StringVar(&cliConfig.ConfigFile, "config", "", "Path to configuration file (YAML, default ~/.scribe/config.yaml)")
	flag.BoolVar(&cliConfig.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "scribe-chat - interactive chat client for a scribe server\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scribe-chat [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  SCRIBE_SERVER      scribe server base URL\n")
		fmt.Fprintf(os.Stderr, "  OPENAI_API_KEY     OpenAI API key (enables the assistant)\n")
		fmt.Fprintf(os.Stderr, "  OPENAI_BASE_URL    OpenAI API base URL (for compatible APIs)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Chat against a local server, interpreter only\n")
		fmt.Fprintf(os.Stderr, "  scribe-chat\n\n")
		fmt.Fprintf(os.Stderr, "  # Chat with the AI assistant\n")
		fmt.Fprintf(os.Stderr, "  OPENAI_API_KEY=sk-... scribe-chat -model gpt-4o\n\n")
	}

	flag.Parse()
	return cliConfig
}

// run wires the recorder, assistant, and TUI together.
func run(ctx context.Context, cliConfig *CLIConfig) error {
	cfg, err := config.Load(cliConfig.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := buildLogger(cfg)
	defer logger.Close()

	rec := tui.NewRecorder(client.New(cliConfig.Server))

	assist, err := buildAssistant(ctx, cliConfig, cfg, rec, logger)
	if err != nil {
		return err
	}

	return tui.NewApp(rec, assist, logger).Run(ctx)
}

// buildAssistant creates the OpenAI assistant over the server's tool
// catalog. It returns nil when no API key is configured, which the TUI
// reports as "assistant disabled".
func buildAssistant(ctx context.Context, cliConfig *CLIConfig, cfg *config.Config, rec *tui.Recorder, logger *logging.Logger) (*assistant.Assistant, error) {
	if cliConfig.APIKey == "" {
		logger.Infof("no OpenAI API key configured; assistant disabled")
		return nil, nil
	}

	catalog, err := rec.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tool catalog from %s: %w", cliConfig.Server, err)
	}

	model := cliConfig.Model
	if model == "" {
		model = cfg.Assistant.Model
	}

	assist, err := assistant.New(cliConfig.APIKey, catalog, rec,
		assistant.WithModel(model),
		assistant.WithBaseURL(cliConfig.BaseURL),
		assistant.WithTokenBudget(cfg.Assistant.MaxContextTokens),
		assistant.WithLogger(logger),
	)
	if err != nil {
		if errors.Is(err, assistant.ErrNoAPIKey) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create assistant: %w", err)
	}

	logger.Infof("assistant enabled (model %s, %d tools)", model, len(catalog))
	return assist, nil
}

// buildLogger creates the file logger described by the config, or a
// no-op logger when file logging is disabled.
func buildLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NewNop()
	}

	logger, err := logging.NewLoggerAt("chat", cfg.Logging.Dir)
	if err != nil {
		return logging.NewNop()
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logging.LevelInfo
	}
	logger.SetLevel(level)
	return logger
}

// envOr returns the environment variable's value, or fallback when it
// is unset or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
