// Package app assembles configuration, logging, transport and the
// session controller into a ready runtime for the CLI entry points.
package app

import (
	"fmt"
	"io"

	"github.com/mark041002/chatbot-tui/internal/api"
	"github.com/mark041002/chatbot-tui/internal/chat"
	"github.com/mark041002/chatbot-tui/internal/config"
	"github.com/mark041002/chatbot-tui/internal/i18n"
	"github.com/mark041002/chatbot-tui/internal/log"
)

// Runtime provides the initialized application components shared by the
// interactive TUI and the plain CLI subcommands.
//
// Usage:
//
//	runtime, err := app.NewRuntime(cfg)
//	if err != nil { ... }
//	defer runtime.Cleanup()
type Runtime struct {
	Config     *config.Config
	Logger     log.Logger
	Client     *api.Client
	Controller *chat.Controller

	logCloser io.Closer
}

// NewRuntime creates a fully initialized runtime from a validated
// configuration. Logs go to the rotating file, never to the terminal,
// so the alternate screen stays clean.
func NewRuntime(cfg *config.Config) (*Runtime, error) {
	if cfg == nil {
		return nil, config.ErrConfigNil
	}

	i18n.Init(cfg.Language)

	logger, closer := log.NewFile(
		log.FileConfig{Path: cfg.LogFile},
		log.Config{Level: log.ParseLevel(cfg.LogLevel)},
	)

	client := api.New(cfg.APIURL,
		api.WithTimeout(cfg.HTTPTimeout()),
		api.WithRateLimit(cfg.RequestsPerSecond),
		api.WithLogger(logger),
	)

	ctrl, err := chat.New(chat.Config{
		Client:      client,
		Logger:      logger,
		Temperature: cfg.Temperature,
		MaxMessages: cfg.MaxMessages,
	})
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("building controller: %w", err)
	}

	logger.Info("runtime initialized",
		"api_url", cfg.APIURL,
		"language", cfg.Language,
		"log_file", cfg.LogFile)

	return &Runtime{
		Config:     cfg,
		Logger:     logger,
		Client:     client,
		Controller: ctrl,
		logCloser:  closer,
	}, nil
}

// Cleanup releases runtime resources. Safe to call more than once.
func (r *Runtime) Cleanup() {
	if r.logCloser != nil {
		_ = r.logCloser.Close()
		r.logCloser = nil
	}
}
