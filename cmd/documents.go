package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark041002/chatbot-tui/internal/api"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

func newDocumentsCmd(client *api.Client) *cobra.Command {
	documentsCmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"docs"},
		Short:   i18n.T("cli.documents.description"),
	}

	documentsCmd.AddCommand(newDocumentsListCmd(client))
	documentsCmd.AddCommand(newDocumentsUploadCmd(client))
	documentsCmd.AddCommand(newDocumentsDeleteCmd(client))

	return documentsCmd
}

func newDocumentsListCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: i18n.T("cli.documents.list"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDocumentsList(cmd.Context(), client)
		},
	}
}

func newDocumentsUploadCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <path>",
		Short: i18n.T("cli.documents.upload"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocumentsUpload(cmd.Context(), client, args[0])
		},
	}
}

func newDocumentsDeleteCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: i18n.T("cli.documents.delete"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocumentsDelete(cmd.Context(), client, args[0])
		},
	}
}

func runDocumentsList(ctx context.Context, client *api.Client) error {
	list, err := client.Documents(ctx)
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if len(list.Documents) == 0 {
		fmt.Println(i18n.T("document.list.empty"))
		return nil
	}

	fmt.Println(i18n.T("document.list.title"))
	for _, name := range list.Documents {
		fmt.Println("  " + name)
	}
	return nil
}

func runDocumentsUpload(ctx context.Context, client *api.Client, path string) error {
	result, err := client.UploadDocument(ctx, path)
	if err != nil {
		return fmt.Errorf("uploading %s: %w", path, err)
	}

	fmt.Println(i18n.T("document.uploaded"))
	if result.ChunksCreated > 0 {
		fmt.Println(i18n.Sprintf("cli.upload.chunks", result.ChunksCreated))
	}
	return nil
}

func runDocumentsDelete(ctx context.Context, client *api.Client, name string) error {
	if err := client.DeleteDocument(ctx, name); err != nil {
		return fmt.Errorf("deleting document %s: %w", name, err)
	}

	fmt.Println(i18n.T("document.deleted"))
	return nil
}
