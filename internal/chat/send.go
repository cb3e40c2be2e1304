package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/mark041002/chatbot-tui/internal/api"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

// Send refusals. Both happen before any network call or state change.
var (
	// ErrEmptyMessage reports input that is empty after trimming.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrBusy reports a send started while another one is in flight.
	// Sends are refused, never queued.
	ErrBusy = errors.New("send already in flight")
)

// SendOutcome describes what a completed send did to the session
// identity. Callers pattern-match on it instead of comparing
// identities themselves.
type SendOutcome int

const (
	// SessionUnchanged: the response carried no identity or the one
	// already held.
	SessionUnchanged SendOutcome = iota
	// SessionCreated: the server persisted the conversation for the
	// first time and assigned its identity.
	SessionCreated
	// SessionCorrected: the server reported a different identity than
	// the one held; the server's choice wins.
	SessionCorrected
)

// SendResult reports a completed send. Failed marks an exchange whose
// answer is an inline error placeholder instead of a model response.
type SendResult struct {
	Outcome   SendOutcome
	SessionID string
	Failed    bool
}

// Send runs one chat exchange: optimistic append of the user message,
// request with the held identity and temperature, response or error
// absorbed into the transcript.
//
// Refusals (empty input, send already in flight) are returned as
// sentinel errors before anything changes. Once the message is
// appended it stays, even when the exchange fails: failures become an
// assistant-role placeholder in the transcript and a SendResult with
// Failed set, never an error return.
func (c *Controller) Send(ctx context.Context, text string) (SendResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return SendResult{}, ErrEmptyMessage
	}

	if !c.state.tryBeginSend() {
		return SendResult{}, ErrBusy
	}
	defer c.state.endSend()

	sessionID, temperature := c.state.chatParams()
	c.state.AppendMessage(Message{Role: RoleUser, Content: text})

	result, err := c.client.Chat(ctx, api.ChatRequest{
		Message:     text,
		Temperature: temperature,
		SessionID:   sessionID,
	})
	if err != nil {
		c.logger.Warn("chat request", "error", err)
		c.appendFailure(err.Error())
		return SendResult{SessionID: sessionID, Failed: true}, nil
	}

	if !result.Success {
		detail := result.Detail
		if detail == "" {
			detail = i18n.T("chat.no.response")
		}
		c.logger.Warn("chat refused", "detail", detail)
		c.appendFailure(detail)
		return SendResult{SessionID: sessionID, Failed: true}, nil
	}

	response := result.Response
	if response == "" {
		response = i18n.T("chat.no.response")
	}
	c.state.AppendMessage(Message{
		Role:    RoleAssistant,
		Content: response,
		Sources: result.Sources,
	})

	out := SendResult{Outcome: SessionUnchanged, SessionID: sessionID}
	if result.SessionID != "" {
		out.Outcome = c.adoptIdentity(ctx, result.SessionID)
		out.SessionID = result.SessionID
	}
	c.logger.Debug("chat exchange complete",
		"session_id", out.SessionID,
		"mode", result.Mode,
		"sources", len(result.Sources),
	)
	return out, nil
}

// appendFailure absorbs a failed exchange into the transcript as an
// assistant-role placeholder.
func (c *Controller) appendFailure(description string) {
	c.state.AppendMessage(Message{
		Role:    RoleAssistant,
		Content: i18n.Sprintf("chat.error", description),
		IsError: true,
	})
}
