package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark041002/chatbot-tui/internal/chat"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

// View implements tea.Model.
// Uses AltScreen with viewport for scrollable message history. Pickers
// and the confirmation modal take over the whole screen until closed.
func (m *Model) View() tea.View {
	m.viewBuf.Reset()

	switch m.mode {
	case modeBoot:
		_, _ = m.viewBuf.WriteString(m.renderBoot())
	case modeSessions, modeModels, modeDocuments, modeHelp:
		_, _ = m.viewBuf.WriteString(m.renderOverlay())
	case modeConfirm:
		_, _ = m.viewBuf.WriteString(m.renderConfirm())
	default:
		m.renderChat()
	}

	v := tea.NewView(m.viewBuf.String())
	v.AltScreen = true
	return v
}

// renderChat writes the chat screen into the reusable view buffer.
func (m *Model) renderChat() {
	// Viewport (scrollable transcript)
	_, _ = m.viewBuf.WriteString(m.viewport.View())
	_, _ = m.viewBuf.WriteString("\n")

	// Notification banner, blank when idle
	_, _ = m.viewBuf.WriteString(m.renderNotice())
	_, _ = m.viewBuf.WriteString("\n")

	// Separator line above input
	_, _ = m.viewBuf.WriteString(m.renderSeparator())
	_, _ = m.viewBuf.WriteString("\n")

	// Input prompt - always shown, typing stays possible while a
	// request is running
	_, _ = m.viewBuf.WriteString(m.styles.Prompt.Render(i18n.T("chat.prompt")))
	_, _ = m.viewBuf.WriteString(m.input.View())
	_, _ = m.viewBuf.WriteString("\n")

	// Separator line below input
	_, _ = m.viewBuf.WriteString(m.renderSeparator())
	_, _ = m.viewBuf.WriteString("\n")

	// Session / model / temperature status line
	_, _ = m.viewBuf.WriteString(m.renderStatusBar())
	_, _ = m.viewBuf.WriteString("\n")

	// Keyboard shortcut bar
	_, _ = m.viewBuf.WriteString(m.renderHelpBar())
}

// rebuildViewportContent reconstructs the viewport content from the
// cached snapshot. Called when the transcript or send state changes.
func (m *Model) rebuildViewportContent() {
	var b strings.Builder

	// Banner and welcome text until the first message arrives
	if len(m.snap.Messages) == 0 {
		_, _ = b.WriteString(m.styles.RenderBanner())
		_, _ = b.WriteString("\n")
		_, _ = b.WriteString(m.styles.RenderWelcome())
		_, _ = b.WriteString("\n")
	}

	for _, msg := range m.snap.Messages {
		switch {
		case msg.Role == chat.RoleUser:
			_, _ = b.WriteString(m.styles.User.Render(i18n.T("chat.prompt")))
			_, _ = b.WriteString(msg.Content)
		case msg.IsError:
			_, _ = b.WriteString(m.styles.Error.Render(msg.Content))
		default:
			_, _ = b.WriteString(m.styles.Assistant.Render(i18n.T("chat.assistant")))
			_, _ = b.WriteString(m.markdown.Render(msg.Content))
			if len(msg.Sources) > 0 {
				_, _ = b.WriteString("\n")
				_, _ = b.WriteString(m.styles.System.Render(
					i18n.Sprintf("chat.sources", strings.Join(msg.Sources, ", "))))
			}
		}
		_, _ = b.WriteString("\n\n")
	}

	// Thinking indicator while the request runs
	if m.sending {
		_, _ = b.WriteString(m.spinner.View())
		_, _ = b.WriteString(" ")
		_, _ = b.WriteString(m.styles.System.Render(i18n.T("chat.thinking")))
		_, _ = b.WriteString("\n\n")
	}

	m.viewport.SetContent(b.String())
}

// renderBoot shows the startup screen, either the progress spinner or
// the failure that keeps the interface locked.
func (m *Model) renderBoot() string {
	var content string
	if m.bootErr != nil {
		content = lipgloss.JoinVertical(lipgloss.Center,
			m.styles.RenderBanner(),
			m.styles.Error.Render(i18n.Sprintf("bootstrap.failed", m.bootErr)),
			"",
			m.styles.System.Render(m.keys.Quit.Help().Key+" · "+i18n.T("help.quit")),
		)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Center,
			m.styles.RenderBanner(),
			m.spinner.View()+" "+m.styles.Tips.Render(i18n.T("bootstrap.loading")),
		)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderOverlay draws the active picker as a centered box.
func (m *Model) renderOverlay() string {
	var (
		title string
		lines []string
		hint  string
	)

	switch m.mode {
	case modeSessions:
		title = i18n.T("session.list.title")
		hint = i18n.T("overlay.sessions.hint")
		switch {
		case m.snap.SessionsFailed:
			lines = []string{m.styles.Error.Render(i18n.T("session.list.failed"))}
		case len(m.snap.Sessions) == 0:
			lines = []string{m.styles.System.Render(i18n.T("session.list.empty"))}
		default:
			for i, s := range m.snap.Sessions {
				label := fmt.Sprintf("%s · %d · %s", s.Title, s.MessageCount, formatStamp(s.UpdatedAt))
				if s.SessionID == m.snap.SessionID {
					label += i18n.T("cli.current.marker")
				}
				lines = append(lines, m.renderOverlayLine(i, label))
			}
		}

	case modeModels:
		title = i18n.T("model.list.title")
		hint = i18n.T("overlay.models.hint")
		if len(m.snap.Models) == 0 {
			lines = []string{m.styles.System.Render(i18n.T("model.list.empty"))}
		} else {
			for i, name := range m.snap.Models {
				label := name
				if name == m.snap.CurrentModel {
					label += " ✓"
				}
				lines = append(lines, m.renderOverlayLine(i, label))
			}
		}

	case modeDocuments:
		title = i18n.T("document.list.title")
		hint = i18n.T("overlay.documents.hint")
		if len(m.snap.Documents) == 0 {
			lines = []string{m.styles.System.Render(i18n.T("document.list.empty"))}
		} else {
			for i, name := range m.snap.Documents {
				lines = append(lines, m.renderOverlayLine(i, name))
			}
		}

	case modeHelp:
		title = i18n.T("help.title")
		hint = m.keys.Close.Help().Key + " ✕"
		for _, entry := range [][2]string{
			{cmdNew, "help.new"},
			{cmdSessions, "help.sessions"},
			{cmdModels, "help.models"},
			{cmdDocs, "help.docs"},
			{cmdUpload + " <pfad>", "help.upload"},
			{cmdTemp + " <0..1>", "help.temp"},
			{cmdHelp, "help.help"},
			{cmdQuit, "help.quit"},
		} {
			lines = append(lines, fmt.Sprintf("%s  %s",
				m.styles.Selected.Render(fmt.Sprintf("%-16s", entry[0])),
				m.styles.Tips.Render(i18n.T(entry[1]))))
		}
	}

	box := m.styles.Overlay.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(title),
		"",
		strings.Join(lines, "\n"),
		"",
		m.styles.System.Render(hint),
	))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderOverlayLine prefixes the cursor marker for the selected row.
func (m *Model) renderOverlayLine(index int, label string) string {
	if index == m.cursor {
		return m.styles.Selected.Render("> " + label)
	}
	return "  " + label
}

// renderConfirm draws the confirmation modal.
func (m *Model) renderConfirm() string {
	title := ""
	message := ""
	if m.confirm != nil {
		title = m.confirm.Title
		message = m.confirm.Message
	}

	box := m.styles.Overlay.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(title),
		"",
		message,
		"",
		m.styles.System.Render(i18n.T("confirm.hint")),
	))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderNotice returns the styled notification banner, empty when no
// notice is active.
func (m *Model) renderNotice() string {
	n := m.snap.Notice
	if n.Seq == 0 {
		return ""
	}
	switch n.Kind {
	case chat.NoticeSuccess:
		return m.styles.Success.Render("✓ " + n.Text)
	case chat.NoticeError:
		return m.styles.Error.Render("✗ " + n.Text)
	default:
		return m.styles.Info.Render("• " + n.Text)
	}
}

// renderSeparator returns a horizontal line separator.
func (m *Model) renderSeparator() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	return m.styles.Separator.Render(strings.Repeat("─", width))
}

// renderStatusBar returns the session, model and temperature line.
func (m *Model) renderStatusBar() string {
	title := m.snap.Title
	if !m.snap.Saved || title == "" {
		title = i18n.T("chat.new.title")
	}

	parts := []string{m.styles.StatusBar.Render(title)}
	if m.snap.Saved {
		parts = append(parts, m.styles.StatusBar.Render(i18n.T("chat.saved")))
	}
	if m.snap.CurrentModel != "" {
		parts = append(parts, m.styles.StatusBar.Render(i18n.Sprintf("status.model", m.snap.CurrentModel)))
	}
	parts = append(parts, m.styles.StatusBar.Render(i18n.Sprintf("status.temperature", m.snap.Temperature)))
	if m.snap.Ready && !m.snap.Health.OllamaAvailable {
		parts = append(parts, m.styles.Error.Render(i18n.T("status.offline")))
	}

	return strings.Join(parts, m.styles.Separator.Render(" · "))
}

// renderHelpBar returns the keyboard shortcut help for the chat screen.
func (m *Model) renderHelpBar() string {
	bindings := []key.Binding{
		m.keys.Submit, m.keys.NewLine, m.keys.History,
		m.keys.ScrollUp, m.keys.Cancel,
	}
	return m.help.ShortHelpView(bindings)
}

// formatStamp shortens an ISO timestamp for list display.
func formatStamp(s string) string {
	if len(s) > 16 {
		s = s[:16]
	}
	return strings.ReplaceAll(s, "T", " ")
}
