package tui

import (
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/mark041002/chatbot-tui/internal/chat"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

// Slash command constants.
const (
	cmdHelp     = "/help"
	cmdNew      = "/new"
	cmdSessions = "/sessions"
	cmdModels   = "/models"
	cmdDocs     = "/docs"
	cmdUpload   = "/upload"
	cmdTemp     = "/temp"
	cmdExit     = "/exit"
	cmdQuit     = "/quit"
)

// keyMap holds key bindings for help bar display.
type keyMap struct {
	Submit     key.Binding
	NewLine    key.Binding
	History    key.Binding
	Cancel     key.Binding
	Quit       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Close      key.Binding
	Navigate   key.Binding
	Select     key.Binding
	Delete     key.Binding
	Yes        key.Binding
	No         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", i18n.T("keys.send"))),
		NewLine:    key.NewBinding(key.WithKeys("shift+enter"), key.WithHelp("s+enter", "\\n")),
		History:    key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", i18n.T("keys.history"))),
		Cancel:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", i18n.T("keys.quit"))),
		Quit:       key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", i18n.T("keys.quit"))),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", i18n.T("keys.scroll"))),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", i18n.T("keys.scroll"))),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "✕")),
		Navigate:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "⇅")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "✓")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "✕")),
		Yes:        key.NewBinding(key.WithKeys("y", "j"), key.WithHelp("y/j", i18n.T("confirm.yes"))),
		No:         key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", i18n.T("confirm.no"))),
	}
}

//nolint:gocyclo // Keyboard handler requires branching for all key combinations
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	k := msg.Key()

	// Check for Ctrl modifier
	if k.Mod&tea.ModCtrl != 0 {
		switch k.Code {
		case 'c':
			return m.handleCtrlC()
		case 'd':
			return m, m.cleanup()
		}
	}

	switch m.mode {
	case modeBoot:
		// Only the quit chords above work until startup finished
		return m, nil
	case modeConfirm:
		return m.handleConfirmKey(k)
	case modeSessions, modeModels, modeDocuments, modeHelp:
		return m.handleOverlayKey(k)
	}

	switch k.Code {
	case tea.KeyEnter:
		// Enter without Shift = submit
		// Shift+Enter = newline (pass through to textarea)
		if k.Mod&tea.ModShift == 0 {
			return m.handleSubmit()
		}

	case tea.KeyUp:
		// Up at first line navigates history, otherwise pass to textarea
		if m.input.Line() == 0 {
			return m.navigateHistory(-1)
		}

	case tea.KeyDown:
		// Down at last line navigates history, otherwise pass to textarea
		if m.input.Line() == m.input.LineCount()-1 {
			return m.navigateHistory(1)
		}

	case tea.KeyPgUp:
		m.viewport.PageUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.PageDown()
		return m, nil
	}

	// Pass keys to textarea for typing - users can prepare the next
	// message while a request is still running
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleConfirmKey answers the pending confirmation. Any dismissal
// counts as No, only an explicit Yes proceeds.
func (m *Model) handleConfirmKey(k tea.Key) (tea.Model, tea.Cmd) {
	if m.confirm == nil {
		m.mode = m.prevMode
		return m, m.waitForConfirmation()
	}

	switch k.Code {
	case 'y', 'j':
		m.confirm.Resolve(true)
	case 'n', tea.KeyEscape:
		m.confirm.Resolve(false)
	default:
		return m, nil
	}

	m.confirm = nil
	m.mode = m.prevMode
	return m, m.waitForConfirmation()
}

func (m *Model) handleOverlayKey(k tea.Key) (tea.Model, tea.Cmd) {
	items := m.overlayItems()

	switch k.Code {
	case tea.KeyEscape, 'q':
		m.mode = modeChat
		m.cursor = 0
		m.rebuildViewportContent()
		return m, m.input.Focus()

	case tea.KeyUp, 'k':
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case tea.KeyDown, 'j':
		if m.cursor < len(items)-1 {
			m.cursor++
		}
		return m, nil

	case tea.KeyEnter:
		if m.cursor >= len(items) {
			return m, nil
		}
		switch m.mode {
		case modeSessions:
			return m, m.loadSessionCmd(items[m.cursor])
		case modeModels:
			return m, m.selectModelCmd(items[m.cursor])
		}
		return m, nil

	case 'd', 'x':
		if m.cursor >= len(items) {
			return m, nil
		}
		// The gate takes one question at a time
		if m.ctrl.Gate().Pending() {
			m.postNotice(chat.NoticeError, i18n.T("validate.confirm"))
			return m, m.scheduleNoticeExpiry()
		}
		switch m.mode {
		case modeSessions:
			return m, m.deleteSessionCmd(items[m.cursor])
		case modeDocuments:
			return m, m.deleteDocumentCmd(items[m.cursor])
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleCtrlC() (tea.Model, tea.Cmd) {
	now := time.Now()

	// Double Ctrl+C within 1 second = quit
	if now.Sub(m.lastCtrlC) < time.Second {
		return m, m.cleanup()
	}
	m.lastCtrlC = now

	switch m.mode {
	case modeChat:
		m.input.Reset()
	case modeSessions, modeModels, modeDocuments, modeHelp:
		m.mode = modeChat
		m.cursor = 0
	case modeConfirm:
		return m.handleConfirmKey(tea.Key{Code: tea.KeyEscape})
	}

	m.postNotice(chat.NoticeInfo, i18n.T("quit.hint"))
	return m, m.scheduleNoticeExpiry()
}

func (m *Model) handleSubmit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	// Handle slash commands
	if strings.HasPrefix(text, "/") {
		return m.handleSlashCommand(text)
	}

	// One request at a time, typing stays possible meanwhile
	if m.sending {
		return m, nil
	}

	// Add to history (enforce maxHistory cap)
	m.history = append(m.history, text)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.historyIdx = len(m.history)

	m.input.Reset()
	m.sending = true
	m.rebuildViewportContent()
	m.viewport.GotoBottom()

	return m, tea.Batch(
		m.spinner.Tick,
		m.sendCmd(text),
	)
}

//nolint:gocyclo // One case per slash command
func (m *Model) handleSlashCommand(text string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(text)
	name := fields[0]
	m.input.Reset()

	switch name {
	case cmdHelp:
		m.mode = modeHelp
		return m, nil

	case cmdNew:
		m.ctrl.NewChat()
		m.refresh()
		m.rebuildViewportContent()
		return m, nil

	case cmdSessions:
		m.mode = modeSessions
		m.cursor = 0
		return m, m.refreshSessionsCmd()

	case cmdModels:
		m.mode = modeModels
		m.cursor = 0
		return m, m.refreshModelsCmd()

	case cmdDocs:
		m.mode = modeDocuments
		m.cursor = 0
		return m, m.refreshDocumentsCmd()

	case cmdUpload:
		// Keep spaces in the path intact
		path := strings.TrimSpace(strings.TrimPrefix(text, cmdUpload))
		if path == "" {
			m.postNotice(chat.NoticeError, i18n.T("slash.upload.usage"))
			return m, m.scheduleNoticeExpiry()
		}
		return m, m.uploadCmd(path)

	case cmdTemp:
		if len(fields) != 2 {
			m.postNotice(chat.NoticeError, i18n.T("slash.temp.usage"))
			return m, m.scheduleNoticeExpiry()
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			m.postNotice(chat.NoticeError, i18n.T("slash.temp.usage"))
			return m, m.scheduleNoticeExpiry()
		}
		if err := m.ctrl.SetTemperature(value); err != nil {
			m.postNotice(chat.NoticeError, i18n.T("validate.temperature"))
			return m, m.scheduleNoticeExpiry()
		}
		m.postNotice(chat.NoticeSuccess, i18n.Sprintf("slash.temp.set", value))
		return m, m.scheduleNoticeExpiry()

	case cmdExit, cmdQuit:
		return m, m.cleanup()

	default:
		m.postNotice(chat.NoticeError, i18n.Sprintf("slash.unknown", name))
		return m, m.scheduleNoticeExpiry()
	}
}

// postNotice publishes a notification and refreshes the cached state
// so the banner shows up with the next render.
func (m *Model) postNotice(kind chat.NoticeKind, text string) {
	m.ctrl.State().PostNotice(kind, text)
	m.refresh()
}

func (m *Model) navigateHistory(delta int) (tea.Model, tea.Cmd) {
	if len(m.history) == 0 {
		return m, nil
	}

	m.historyIdx += delta

	if m.historyIdx < 0 {
		m.historyIdx = 0
	}
	if m.historyIdx > len(m.history) {
		m.historyIdx = len(m.history)
	}

	if m.historyIdx == len(m.history) {
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.history[m.historyIdx])
		// Move cursor to end of text
		m.input.CursorEnd()
	}

	return m, nil
}

// cleanup resolves a pending confirmation negatively, cancels all
// running operations and returns the quit command.
func (m *Model) cleanup() tea.Cmd {
	if m.confirm != nil {
		m.confirm.Resolve(false)
		m.confirm = nil
	}

	if m.ctxCancel != nil {
		m.ctxCancel()
		m.ctxCancel = nil
	}

	return tea.Quit
}
