package chat

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mark041002/chatbot-tui/internal/api"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

// Bootstrap performs the startup fetches: health, model list, document
// list and session list, all concurrently. The interface becomes
// interactive only when all four succeeded; the first failure cancels
// the remaining fetches and is surfaced as one blocking notification,
// not four.
func (c *Controller) Bootstrap(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	var (
		health    *api.HealthStatus
		models    *api.ModelList
		documents *api.DocumentList
		sessions  []api.SessionSummary
	)

	eg.Go(func() error {
		var err error
		health, err = c.client.Health(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		models, err = c.client.Models(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		documents, err = c.client.Documents(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		sessions, err = c.client.Sessions(ctx)
		return err
	})

	if err := eg.Wait(); err != nil {
		c.logger.Error("bootstrap failed", "error", err)
		c.state.PostNotice(NoticeError, i18n.Sprintf("bootstrap.failed", err))
		return err
	}

	c.state.applyBootstrap(*health, *models, documents.Documents, sessions)
	c.logger.Info("bootstrap complete",
		"model", models.CurrentModel,
		"ollama_available", health.OllamaAvailable,
		"documents", documents.Count,
		"sessions", len(sessions),
	)
	return nil
}
