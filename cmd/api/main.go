package main

import (
	_ "embed"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"linuxword/internal/config"
	"linuxword/internal/http"
	"linuxword/internal/service"
	"linuxword/internal/storage"
)

//go:embed index.html
var indexHTML string

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	documentRepo := storage.NewDocumentRepo(db)

	editorService := service.NewEditorService(documentRepo, service.Options{
		DefaultName:  cfg.DefaultDocumentName,
		HistoryLimit: cfg.HistoryLimit,
		RegexTimeout: cfg.RegexTimeout,
	})
	slog.Info("Editor ready", "default_name", cfg.DefaultDocumentName, "history_limit", cfg.HistoryLimit)

	// Create router with dependencies
	deps := &http.Deps{
		EditorService: editorService,
		DB:            db,
		IndexHTML:     indexHTML,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
