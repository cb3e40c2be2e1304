package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark041002/chatbot-tui/internal/api"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

func newModelsCmd(client *api.Client) *cobra.Command {
	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: i18n.T("cli.models.description"),
	}

	modelsCmd.AddCommand(newModelsListCmd(client))
	modelsCmd.AddCommand(newModelsSelectCmd(client))

	return modelsCmd
}

func newModelsListCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: i18n.T("cli.models.list"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runModelsList(cmd.Context(), client)
		},
	}
}

func newModelsSelectCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "select <name>",
		Short: i18n.T("cli.models.select"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelsSelect(cmd.Context(), client, args[0])
		},
	}
}

func runModelsList(ctx context.Context, client *api.Client) error {
	list, err := client.Models(ctx)
	if err != nil {
		return fmt.Errorf("listing models: %w", err)
	}

	if !list.OllamaAvailable {
		fmt.Println(i18n.T("health.ollama.down"))
	}
	if len(list.Models) == 0 {
		fmt.Println(i18n.T("model.list.empty"))
		return nil
	}

	fmt.Println(i18n.T("model.list.title"))
	for _, name := range list.Models {
		marker := ""
		if name == list.CurrentModel {
			marker = i18n.T("cli.current.marker")
		}
		fmt.Println("  " + name + marker)
	}
	return nil
}

func runModelsSelect(ctx context.Context, client *api.Client, name string) error {
	if err := client.SelectModel(ctx, name); err != nil {
		return fmt.Errorf("selecting model %s: %w", name, err)
	}

	fmt.Println(i18n.Sprintf("model.selected", name))
	return nil
}
