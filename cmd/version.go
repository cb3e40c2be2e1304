package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark041002/chatbot-tui/internal/config"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

// Version information (injected at build time via ldflags)
var (
	AppVersion = "development"
	BuildTime  = "unknown"
	GitCommit  = "unknown"
)

func newVersionCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("cli.version.description"),
		RunE: func(_ *cobra.Command, _ []string) error {
			return runVersion(cfg)
		},
	}
}

func runVersion(cfg *config.Config) error {
	fmt.Println(i18n.Sprintf("app.version", AppVersion))
	fmt.Println(i18n.Sprintf("cli.version.build", BuildTime, GitCommit))
	fmt.Println()

	fmt.Println(i18n.T("cli.version.config"))
	fmt.Println(i18n.Sprintf("cli.version.api", cfg.APIURL))
	fmt.Println(i18n.Sprintf("cli.version.language", cfg.Language))
	fmt.Println(i18n.Sprintf("cli.version.temperature", cfg.Temperature))
	fmt.Println(i18n.Sprintf("cli.version.logfile", cfg.LogFile))
	return nil
}
