// Package main runs the scribe note server: it loads configuration,
// opens the note store, registers the tool set, and serves the
// tool-call API over HTTP until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/entrhq/scribe/pkg/config"
	"github.com/entrhq/scribe/pkg/logging"
	"github.com/entrhq/scribe/pkg/notes"
	"github.com/entrhq/scribe/pkg/server"
	"github.com/entrhq/scribe/pkg/tools"
	"github.com/entrhq/scribe/pkg/tools/notetools"
	"github.com/entrhq/scribe/pkg/tools/utility"
)

const shutdownTimeout = 10 * time.Second

// CLIConfig holds command-line configuration.
type CLIConfig struct {
	ConfigFile  string
	Host        string
	Port        int
	Storage     string
	LogDir      string
	ShowVersion bool
}

func main() {
	cliConfig := parseFlags()

	if cliConfig.ShowVersion {
		fmt.Printf("scribe v%s\n", server.Version)
		return
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down gracefully...")
		cancel()
	}()

	if err := run(ctx, cliConfig); err != nil {
		cancel()
		log.Printf("Server failed: %v", err)
		os.Exit(1)
	}
	cancel()
}

// parseFlags parses command line flags.
func parseFlags() *CLIConfig {
	cliConfig := &CLIConfig{}

	flag.StringVar(&cliConfig.ConfigFile, "config", "", "Path to configuration file (YAML, default ~/.scribe/config.yaml)")
	flag.StringVar(&cliConfig.Host, "host", "", "Listen host (overrides config)")
	flag.IntVar(&cliConfig.Port, "port", 0, "Listen port (overrides config)")
	flag.StringVar(&cliConfig.Storage, "storage", "", "Path to the note snapshot file (overrides config)")
	flag.StringVar(&cliConfig.LogDir, "log-dir", "", "Log directory (overrides config)")
	flag.BoolVar(&cliConfig.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "scribe - persistent note server with a tool-call API\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scribe [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Serve with defaults (0.0.0.0:8000, ./notes_storage.json)\n")
		fmt.Fprintf(os.Stderr, "  scribe\n\n")
		fmt.Fprintf(os.Stderr, "  # Custom port and storage location\n")
		fmt.Fprintf(os.Stderr, "  scribe -port 9000 -storage /var/lib/scribe/notes.json\n\n")
		fmt.Fprintf(os.Stderr, "  # Explicit config file\n")
		fmt.Fprintf(os.Stderr, "  scribe -config ./scribe.yaml\n\n")
	}

	flag.Parse()
	return cliConfig
}

// run starts the server and blocks until shutdown.
func run(ctx context.Context, cliConfig *CLIConfig) error {
	cfg, err := config.Load(cliConfig.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyOverrides(cfg, cliConfig)

	logger, err := buildLogger(cfg)
	if err != nil {
		// The fallback logger already reported the problem on stderr.
		logger = logging.NewNop()
	}
	defer logger.Close()

	store, err := notes.New(cfg.Storage.NotesPath())
	if err != nil {
		return fmt.Errorf("failed to open note store: %w", err)
	}
	logger.Infof("note store ready at %s (%d notes)", store.Path(), store.Count())

	registry := tools.NewRegistry()
	for _, tool := range notetools.All(store) {
		if regErr := registry.Register(tool); regErr != nil {
			return fmt.Errorf("failed to register tool: %w", regErr)
		}
	}
	for _, tool := range utility.All() {
		if regErr := registry.Register(tool); regErr != nil {
			return fmt.Errorf("failed to register tool: %w", regErr)
		}
	}
	logger.Infof("registered %d tools", registry.Count())

	srv, err := server.New(cfg, store, registry, logger)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	fmt.Printf("scribe v%s\n", server.Version)
	fmt.Printf("Listening on: http://%s\n", cfg.Server.Addr())
	fmt.Printf("Storage: %s (%d notes)\n", store.Path(), store.Count())
	if logger.LogPath() != "" {
		fmt.Printf("Log file: %s\n", logger.LogPath())
	}
	fmt.Println()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Infof("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		logger.Infof("server stopped")
		return nil
	}
}

// applyOverrides layers non-zero CLI flags over the loaded config.
func applyOverrides(cfg *config.Config, cliConfig *CLIConfig) {
	if cliConfig.Host != "" {
		cfg.Server.Host = cliConfig.Host
	}
	if cliConfig.Port != 0 {
		cfg.Server.Port = cliConfig.Port
	}
	if cliConfig.Storage != "" {
		cfg.Storage.DataDir = filepath.Dir(cliConfig.Storage)
		cfg.Storage.NotesFile = filepath.Base(cliConfig.Storage)
	}
	if cliConfig.LogDir != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.Dir = cliConfig.LogDir
	}
}

// buildLogger creates the file logger described by the config, or a
// no-op logger when file logging is disabled.
func buildLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NewNop(), nil
	}

	logger, err := logging.NewLoggerAt("server", cfg.Logging.Dir)
	if err != nil {
		return logger, err
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logging.LevelInfo
	}
	logger.SetLevel(level)
	return logger, nil
}
