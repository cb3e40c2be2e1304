package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/spf13/cobra"

	"github.com/mark041002/chatbot-tui/internal/app"
	"github.com/mark041002/chatbot-tui/internal/config"
	"github.com/mark041002/chatbot-tui/internal/i18n"
	"github.com/mark041002/chatbot-tui/internal/tui"
)

// newChatCmd is an explicit alias for the default action, so that
// `chatbot chat` works next to plain `chatbot`.
func newChatCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: i18n.T("cli.chat.description"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), cfg)
		},
	}
}

// runTUI initializes the runtime and starts the Bubble Tea interface.
func runTUI(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runtime, err := app.NewRuntime(cfg)
	if err != nil {
		return fmt.Errorf("initializing runtime: %w", err)
	}
	defer runtime.Cleanup()

	model, err := tui.New(ctx, runtime.Controller)
	if err != nil {
		return fmt.Errorf("creating the interface: %w", err)
	}

	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("running the interface: %w", err)
	}
	return nil
}
