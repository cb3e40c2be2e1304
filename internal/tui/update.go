package tui

import (
	"errors"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/mark041002/chatbot-tui/internal/chat"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

// Update implements tea.Model.
//
//nolint:gocognit,gocyclo // Bubble Tea Update requires type switch on all message types
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Viewport height: total minus input, separators and bars
		fixedHeight := separatorLines + noticeLines + statusLines + helpLines + m.input.Height()
		vpHeight := max(msg.Height-fixedHeight, minViewport)

		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(vpHeight)
		m.input.SetWidth(msg.Width - 4) // Room for "Du> " prompt
		m.help.SetWidth(msg.Width)
		m.markdown.SetWidth(msg.Width)

		m.rebuildViewportContent()
		return m, nil

	case tea.MouseWheelMsg:
		// Forward mouse wheel to viewport for scrolling
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		// While a request runs the transcript may gain the optimistic
		// user entry in the background, pick it up with the animation.
		if m.sending || m.mode == modeBoot {
			m.refresh()
			m.rebuildViewportContent()
			if m.sending {
				m.viewport.GotoBottom()
			}
		}
		return m, cmd

	case bootstrapDoneMsg:
		m.refresh()
		if msg.err != nil {
			m.bootErr = msg.err
			return m, m.scheduleNoticeExpiry()
		}
		m.mode = modeChat
		m.rebuildViewportContent()
		return m, m.input.Focus()

	case sendDoneMsg:
		m.sending = false
		// The guard in handleSubmit makes this unlikely, the controller
		// still refuses overlapping sends on its own.
		if errors.Is(msg.err, chat.ErrBusy) {
			m.postNotice(chat.NoticeError, i18n.T("validate.busy"))
		}
		m.refresh()
		m.rebuildViewportContent()
		m.viewport.GotoBottom()
		return m, tea.Batch(m.input.Focus(), m.scheduleNoticeExpiry())

	case sessionsRefreshedMsg, modelsRefreshedMsg, documentsRefreshedMsg:
		m.refresh()
		m.clampCursor()
		return m, m.scheduleNoticeExpiry()

	case sessionLoadedMsg:
		m.refresh()
		if msg.err == nil {
			m.mode = modeChat
			m.cursor = 0
			m.rebuildViewportContent()
			m.viewport.GotoBottom()
			return m, m.input.Focus()
		}
		return m, m.scheduleNoticeExpiry()

	case sessionDeletedMsg:
		m.refresh()
		m.clampCursor()
		m.rebuildViewportContent()
		return m, m.scheduleNoticeExpiry()

	case modelSelectedMsg:
		m.refresh()
		if msg.err == nil {
			m.mode = modeChat
			m.cursor = 0
			m.rebuildViewportContent()
			return m, tea.Batch(m.input.Focus(), m.scheduleNoticeExpiry())
		}
		return m, m.scheduleNoticeExpiry()

	case documentUploadedMsg, documentDeletedMsg:
		m.refresh()
		m.clampCursor()
		return m, m.scheduleNoticeExpiry()

	case confirmMsg:
		m.confirm = msg.req
		m.prevMode = m.mode
		m.mode = modeConfirm
		return m, nil

	case noticeExpiredMsg:
		m.ctrl.State().DismissNotice(msg.seq)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
