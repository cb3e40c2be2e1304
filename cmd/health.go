package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark041002/chatbot-tui/internal/api"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

func newHealthCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: i18n.T("cli.health.description"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHealth(cmd.Context(), client)
		},
	}
}

func runHealth(ctx context.Context, client *api.Client) error {
	status, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("checking backend health: %w", err)
	}

	fmt.Println(i18n.T("health.ok"))
	fmt.Println(i18n.Sprintf("cli.health.status", status.APIStatus))
	if status.CurrentModel != "" {
		fmt.Println(i18n.Sprintf("status.model", status.CurrentModel))
	}
	fmt.Println(i18n.Sprintf("cli.health.documents", status.DocumentCount, status.UploadedFilesCount))
	if !status.OllamaAvailable {
		fmt.Println(i18n.T("health.ollama.down"))
	}
	return nil
}
