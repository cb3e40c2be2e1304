package chat

import (
	"context"
	"errors"

	"github.com/mark041002/chatbot-tui/internal/api"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

// ErrDeclined reports a destructive action the user did not confirm.
var ErrDeclined = errors.New("action declined")

// NewChat resets to a fresh conversation: no session identity, empty
// transcript. The next message will make the server create a new
// session. Purely local, no network.
func (c *Controller) NewChat() {
	c.state.Reset()
	c.logger.Debug("new chat")
}

// RefreshSessions reloads the session list. The list is stored in the
// order the server returned it; the client never re-sorts. On transport
// failure the list enters a distinct failed-to-load state instead of
// propagating the error, so this operation never fails.
func (c *Controller) RefreshSessions(ctx context.Context) {
	sessions, err := c.client.Sessions(ctx)
	if err != nil {
		c.logger.Warn("refresh sessions", "error", err)
		c.state.SetSessions(nil, true)
		return
	}
	c.state.SetSessions(sessions, false)
	c.logger.Debug("sessions refreshed", "count", len(sessions))
}

// LoadSession opens a stored session, replacing the displayed transcript
// wholesale. On failure the state stays untouched and the failure is
// surfaced on the notice banner.
func (c *Controller) LoadSession(ctx context.Context, id string) error {
	detail, err := c.client.Session(ctx, id)
	if err != nil {
		c.logger.Warn("load session", "session_id", id, "error", err)
		c.state.PostNotice(NoticeError, i18n.Sprintf("session.load.failed", err))
		return err
	}

	c.state.replaceTranscript(id, detail.Title, toMessages(detail.Messages))
	c.logger.Debug("session loaded", "session_id", id, "messages", len(detail.Messages))
	return nil
}

// DeleteSession removes a stored session after the user confirmed. A
// declined confirmation returns ErrDeclined and changes nothing. When
// the deleted session is the active one, the identity reset happens
// before the list refresh, so the UI never references a session that no
// longer exists even if the refresh fails. A failed delete leaves
// identity and transcript untouched.
func (c *Controller) DeleteSession(ctx context.Context, id string) error {
	accepted, err := c.gate.Request(ctx,
		i18n.T("session.delete.title"),
		i18n.Sprintf("session.delete.message", c.state.sessionTitle(id)),
	)
	if err != nil {
		return err
	}
	if !accepted {
		return ErrDeclined
	}

	if err := c.client.DeleteSession(ctx, id); err != nil {
		c.logger.Warn("delete session", "session_id", id, "error", err)
		c.state.PostNotice(NoticeError, i18n.Sprintf("session.delete.failed", err))
		return err
	}

	cleared := c.state.clearIfCurrent(id)
	c.state.PostNotice(NoticeSuccess, i18n.T("session.deleted"))
	c.RefreshSessions(ctx)
	c.logger.Info("session deleted", "session_id", id, "was_active", cleared)
	return nil
}

// adoptIdentity accepts a session identity the server assigned. When the
// conversation had none before, this is its first persistence: the list
// is refreshed so the new session shows up, and a created notification
// fires exactly once. A differing prior identity is an authoritative
// correction with no extra notification.
func (c *Controller) adoptIdentity(ctx context.Context, id string) SendOutcome {
	prior := c.state.adoptIdentity(id)
	switch prior {
	case "":
		c.state.PostNotice(NoticeSuccess, i18n.T("session.created"))
		c.RefreshSessions(ctx)
		c.logger.Info("session created", "session_id", id)
		return SessionCreated
	case id:
		return SessionUnchanged
	default:
		c.logger.Debug("session identity corrected", "prior", prior, "session_id", id)
		return SessionCorrected
	}
}

func toMessages(wire []api.SessionMessage) []Message {
	messages := make([]Message, 0, len(wire))
	for _, m := range wire {
		messages = append(messages, Message{
			Role:    m.Role,
			Content: m.Content,
			Sources: m.Sources,
		})
	}
	return messages
}
