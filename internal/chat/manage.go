package chat

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark041002/chatbot-tui/internal/i18n"
)

// uploadTypes are the formats the backend's document pipeline accepts.
var uploadTypes = map[string]bool{".pdf": true, ".txt": true, ".docx": true}

// RefreshModels reloads the model list into the state.
func (c *Controller) RefreshModels(ctx context.Context) error {
	list, err := c.client.Models(ctx)
	if err != nil {
		c.logger.Warn("refresh models", "error", err)
		c.state.PostNotice(NoticeError, i18n.T("error.connection"))
		return err
	}
	c.state.SetModels(list.Models, list.CurrentModel)
	return nil
}

// SelectModel switches the backend's active model and reflects the
// choice in the status area.
func (c *Controller) SelectModel(ctx context.Context, name string) error {
	if err := c.client.SelectModel(ctx, name); err != nil {
		c.logger.Warn("select model", "model", name, "error", err)
		c.state.PostNotice(NoticeError, i18n.Sprintf("model.select.failed", err))
		return err
	}
	c.state.setCurrentModel(name)
	c.state.PostNotice(NoticeSuccess, i18n.Sprintf("model.selected", name))
	c.logger.Info("model selected", "model", name)
	return nil
}

// RefreshDocuments reloads the document list into the state.
func (c *Controller) RefreshDocuments(ctx context.Context) error {
	list, err := c.client.Documents(ctx)
	if err != nil {
		c.logger.Warn("refresh documents", "error", err)
		c.state.PostNotice(NoticeError, i18n.T("error.connection"))
		return err
	}
	c.state.SetDocuments(list.Documents)
	return nil
}

// UploadDocument sends a file to the backend for indexing. A missing
// file or an unsupported format is rejected before any network call.
// On success the document list is refreshed so the new entry shows up.
func (c *Controller) UploadDocument(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		c.state.PostNotice(NoticeError, i18n.Sprintf("document.upload.missing", path))
		return fmt.Errorf("upload document: %w", err)
	}
	if !uploadTypes[strings.ToLower(filepath.Ext(path))] {
		c.state.PostNotice(NoticeError, i18n.Sprintf("document.upload.type", path))
		return fmt.Errorf("upload document: unsupported type %q", filepath.Ext(path))
	}

	result, err := c.client.UploadDocument(ctx, path)
	if err != nil {
		c.logger.Warn("upload document", "path", path, "error", err)
		c.state.PostNotice(NoticeError, i18n.Sprintf("document.upload.failed", err))
		return err
	}

	c.state.PostNotice(NoticeSuccess, i18n.T("document.uploaded"))
	c.logger.Info("document uploaded",
		"document", result.DocumentName,
		"chunks", result.ChunksCreated,
		"ocr", result.OCRUsed,
	)
	return c.RefreshDocuments(ctx)
}

// DeleteDocument removes an indexed document after the user confirmed,
// then refreshes the document list. Declined confirmations return
// ErrDeclined and change nothing.
func (c *Controller) DeleteDocument(ctx context.Context, name string) error {
	accepted, err := c.gate.Request(ctx,
		i18n.T("document.delete.title"),
		i18n.Sprintf("document.delete.message", name),
	)
	if err != nil {
		return err
	}
	if !accepted {
		return ErrDeclined
	}

	if err := c.client.DeleteDocument(ctx, name); err != nil {
		c.logger.Warn("delete document", "document", name, "error", err)
		c.state.PostNotice(NoticeError, i18n.Sprintf("document.delete.failed", err))
		return err
	}

	c.state.PostNotice(NoticeSuccess, i18n.T("document.deleted"))
	c.logger.Info("document deleted", "document", name)
	return c.RefreshDocuments(ctx)
}

// RefreshHealth re-probes the backend and updates the status area.
func (c *Controller) RefreshHealth(ctx context.Context) error {
	health, err := c.client.Health(ctx)
	if err != nil {
		c.logger.Warn("refresh health", "error", err)
		c.state.PostNotice(NoticeError, i18n.T("error.connection"))
		return err
	}
	c.state.SetHealth(*health)
	if !health.OllamaAvailable {
		c.state.PostNotice(NoticeError, i18n.T("health.ollama.down"))
	}
	return nil
}
