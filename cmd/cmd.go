// Package cmd provides the CLI commands for the chatbot client.
//
// Commands:
//   - (no subcommand): interactive terminal client
//   - sessions: list, show and delete stored conversations
//   - models: list and switch Ollama models
//   - documents: manage the knowledge base
//   - health, version: diagnostics
package cmd

import (
	"fmt"

	"github.com/mark041002/chatbot-tui/internal/config"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

// Execute is the entry point called from main. It loads the
// configuration and runs the root command.
func Execute() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Command descriptions resolve through the catalog, so the language
	// has to be set before the command tree is built.
	i18n.Init(cfg.Language)

	return NewRootCmd(cfg).Execute()
}
