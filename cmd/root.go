package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mark041002/chatbot-tui/internal/api"
	"github.com/mark041002/chatbot-tui/internal/config"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

// NewRootCmd creates the root command (factory pattern). Running it
// without a subcommand starts the interactive terminal client; the
// subcommands talk to the backend directly.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chatbot",
		Short: i18n.T("app.description"),
		Long:  i18n.T("app.long"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), cfg)
		},
	}

	client := api.New(cfg.APIURL,
		api.WithTimeout(cfg.HTTPTimeout()),
		api.WithRateLimit(cfg.RequestsPerSecond),
	)

	rootCmd.AddCommand(newChatCmd(cfg))
	rootCmd.AddCommand(newSessionsCmd(client))
	rootCmd.AddCommand(newModelsCmd(client))
	rootCmd.AddCommand(newDocumentsCmd(client))
	rootCmd.AddCommand(newHealthCmd(client))
	rootCmd.AddCommand(newVersionCmd(cfg))

	return rootCmd
}
