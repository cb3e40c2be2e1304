package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mark041002/chatbot-tui/internal/chat"
)

// Controller operations run in tea.Cmd goroutines and report back as
// one message per operation. Update stays the single writer of the
// model, the controller keeps the session state consistent.

type bootstrapDoneMsg struct{ err error }

type sendDoneMsg struct{ err error }

type sessionsRefreshedMsg struct{}

type sessionLoadedMsg struct{ err error }

type sessionDeletedMsg struct{ err error }

type modelsRefreshedMsg struct{}

type modelSelectedMsg struct{ err error }

type documentsRefreshedMsg struct{}

type documentUploadedMsg struct{ err error }

type documentDeletedMsg struct{ err error }

// confirmMsg delivers a pending confirmation from the gate.
type confirmMsg struct{ req *chat.ConfirmationRequest }

// noticeExpiredMsg dismisses the notice with this sequence number. A
// newer notice keeps the banner, the container ignores stale sequences.
type noticeExpiredMsg struct{ seq uint64 }

func (m *Model) bootstrapCmd() tea.Cmd {
	return func() tea.Msg {
		return bootstrapDoneMsg{err: m.ctrl.Bootstrap(m.ctx)}
	}
}

// sendCmd runs the message exchange. The outcome lands in the session
// state, Update only needs to know that the exchange finished.
func (m *Model) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.ctrl.Send(m.ctx, text)
		return sendDoneMsg{err: err}
	}
}

func (m *Model) refreshSessionsCmd() tea.Cmd {
	return func() tea.Msg {
		m.ctrl.RefreshSessions(m.ctx)
		return sessionsRefreshedMsg{}
	}
}

func (m *Model) loadSessionCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return sessionLoadedMsg{err: m.ctrl.LoadSession(m.ctx, id)}
	}
}

// deleteSessionCmd blocks inside the confirmation gate until the modal
// resolves it, the surrounding goroutine makes that safe.
func (m *Model) deleteSessionCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return sessionDeletedMsg{err: m.ctrl.DeleteSession(m.ctx, id)}
	}
}

func (m *Model) refreshModelsCmd() tea.Cmd {
	return func() tea.Msg {
		_ = m.ctrl.RefreshModels(m.ctx)
		return modelsRefreshedMsg{}
	}
}

func (m *Model) selectModelCmd(name string) tea.Cmd {
	return func() tea.Msg {
		return modelSelectedMsg{err: m.ctrl.SelectModel(m.ctx, name)}
	}
}

func (m *Model) refreshDocumentsCmd() tea.Cmd {
	return func() tea.Msg {
		_ = m.ctrl.RefreshDocuments(m.ctx)
		return documentsRefreshedMsg{}
	}
}

func (m *Model) uploadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return documentUploadedMsg{err: m.ctrl.UploadDocument(m.ctx, path)}
	}
}

func (m *Model) deleteDocumentCmd(name string) tea.Cmd {
	return func() tea.Msg {
		return documentDeletedMsg{err: m.ctrl.DeleteDocument(m.ctx, name)}
	}
}

// waitForConfirmation waits for the next confirmation request. The
// command is re-armed after each modal resolution, so exactly one
// listener is attached to the gate at any time.
func (m *Model) waitForConfirmation() tea.Cmd {
	requests := m.ctrl.Gate().Requests()
	return func() tea.Msg {
		select {
		case req := <-requests:
			return confirmMsg{req: req}
		case <-m.ctx.Done():
			return nil
		}
	}
}

// scheduleNoticeExpiry arms a dismissal timer for the current notice.
// Returns nil when there is no notice or a timer is already armed.
func (m *Model) scheduleNoticeExpiry() tea.Cmd {
	notice := m.snap.Notice
	if notice.Seq == 0 || notice.Seq == m.noticeSeen {
		return nil
	}
	m.noticeSeen = notice.Seq
	seq := notice.Seq
	return tea.Tick(noticeLifetime, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}
