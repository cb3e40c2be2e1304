package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mark041002/chatbot-tui/internal/api"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

func newSessionsCmd(client *api.Client) *cobra.Command {
	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: i18n.T("cli.sessions.description"),
	}

	sessionsCmd.AddCommand(newSessionsListCmd(client))
	sessionsCmd.AddCommand(newSessionsShowCmd(client))
	sessionsCmd.AddCommand(newSessionsDeleteCmd(client))

	return sessionsCmd
}

func newSessionsListCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: i18n.T("cli.sessions.list"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSessionsList(cmd.Context(), client)
		},
	}
}

func newSessionsShowCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: i18n.T("cli.sessions.show"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessionsShow(cmd.Context(), client, args[0])
		},
	}
}

func newSessionsDeleteCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: i18n.T("cli.sessions.delete"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessionsDelete(cmd.Context(), client, args[0])
		},
	}
}

func runSessionsList(ctx context.Context, client *api.Client) error {
	sessions, err := client.Sessions(ctx)
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println(i18n.T("session.list.empty"))
		return nil
	}

	fmt.Println(i18n.T("session.list.title"))
	for _, s := range sessions {
		fmt.Println(i18n.Sprintf("cli.session.item",
			s.SessionID, s.Title, s.MessageCount, formatStamp(s.UpdatedAt)))
	}
	return nil
}

func runSessionsShow(ctx context.Context, client *api.Client, id string) error {
	detail, err := client.Session(ctx, id)
	if err != nil {
		return fmt.Errorf("loading session %s: %w", id, err)
	}

	fmt.Println(i18n.Sprintf("cli.session.show.id", detail.SessionID))
	fmt.Println(i18n.Sprintf("cli.session.show.title", detail.Title))
	fmt.Println(i18n.Sprintf("cli.session.show.created", formatStamp(detail.CreatedAt)))
	fmt.Println(i18n.Sprintf("cli.session.show.updated", formatStamp(detail.UpdatedAt)))
	fmt.Println(i18n.Sprintf("cli.session.show.count", len(detail.Messages)))
	fmt.Println()

	for _, msg := range detail.Messages {
		prompt := i18n.T("chat.assistant")
		if msg.Role == "user" {
			prompt = i18n.T("chat.prompt")
		}
		fmt.Println(prompt + msg.Content)
		if len(msg.Sources) > 0 {
			fmt.Println(i18n.Sprintf("chat.sources", strings.Join(msg.Sources, ", ")))
		}
		fmt.Println()
	}
	return nil
}

func runSessionsDelete(ctx context.Context, client *api.Client, id string) error {
	if err := client.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}

	fmt.Println(i18n.T("session.deleted"))
	return nil
}

// formatStamp shortens the server's ISO timestamps for terminal output.
func formatStamp(s string) string {
	if len(s) > 16 {
		s = s[:16]
	}
	return strings.ReplaceAll(s, "T", " ")
}
