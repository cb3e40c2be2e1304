// Package tui provides the Bubble Tea terminal interface for the chatbot.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark041002/chatbot-tui/internal/chat"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

// mode is the TUI state machine. The chat screen is the home state,
// pickers and the confirmation modal replace it until dismissed.
type mode int

const (
	modeBoot      mode = iota // Startup fetch in flight or failed
	modeChat                  // Normal chat input
	modeSessions              // Session picker
	modeModels                // Model picker
	modeDocuments             // Document list
	modeHelp                  // Command help
	modeConfirm               // Confirmation modal
)

// maxHistory bounds the command history kept for Up/Down navigation.
const maxHistory = 100

// noticeLifetime is how long a notification banner stays visible
// before it is dismissed automatically.
const noticeLifetime = 4 * time.Second

// Layout constants for viewport height calculation.
const (
	separatorLines = 2 // Lines above and below the input
	noticeLines    = 1 // Notification banner (blank when idle)
	statusLines    = 1 // Session / model / temperature line
	helpLines      = 1 // Keyboard shortcut bar
	minViewport    = 3 // Minimum viewport height
)

// Model is the Bubble Tea model for the chatbot terminal interface.
type Model struct {
	// Input (textarea for multi-line support, Shift+Enter for newline)
	input      textarea.Model
	history    []string
	historyIdx int

	// State
	mode      mode
	prevMode  mode // Mode to restore after the confirmation modal
	sending   bool
	bootErr   error
	lastCtrlC time.Time

	// Output
	spinner spinner.Model
	viewBuf strings.Builder // Reusable buffer for View() to reduce allocations

	// Scrollable transcript viewport
	viewport viewport.Model

	// Help bar for keyboard shortcuts
	help help.Model
	keys keyMap

	// Overlay selection index
	cursor int

	// Pending confirmation, nil outside modeConfirm
	confirm *chat.ConfirmationRequest

	// Dependencies (direct, no interface)
	ctrl *chat.Controller
	snap chat.Snapshot // Cached display state, refreshed via refresh()

	// Sequence of the newest notice already scheduled for dismissal
	noticeSeen uint64

	ctx       context.Context
	ctxCancel context.CancelFunc // For canceling all operations on exit

	// Dimensions
	width  int
	height int

	// Styles
	styles Styles

	// Markdown rendering (nil = graceful degradation to plain text)
	markdown *markdownRenderer
}

// New creates a Model around the session controller.
// Returns error if required dependencies are nil.
//
// IMPORTANT: ctx MUST be the same context passed to tea.WithContext()
// to ensure consistent cancellation behavior.
func New(ctx context.Context, ctrl *chat.Controller) (*Model, error) {
	if ctrl == nil {
		return nil, errors.New("tui.New: controller is required")
	}
	if ctx == nil {
		return nil, errors.New("tui.New: ctx is required")
	}

	// Create cancellable context for cleanup on exit
	ctx, cancel := context.WithCancel(ctx)

	// Enter submits, Shift+Enter adds newline (default behavior)
	ta := textarea.New()
	ta.Placeholder = i18n.T("chat.placeholder")
	ta.SetHeight(1)
	ta.SetWidth(120) // Updated on WindowSizeMsg
	ta.MaxWidth = 0
	ta.ShowLineNumbers = false

	// No background colors, just plain text
	cleanStyle := textarea.StyleState{
		Base:        lipgloss.NewStyle(),
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Prompt:      lipgloss.NewStyle(),
	}
	ta.SetStyles(textarea.Styles{
		Focused: cleanStyle,
		Blurred: cleanStyle,
	})
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	// Viewport for the scrollable transcript. Built-in key handling is
	// disabled, keys are routed explicitly in handleKey to avoid
	// conflicts with textarea and history navigation.
	vp := viewport.New(viewport.WithWidth(80), viewport.WithHeight(20))
	vp.MouseWheelEnabled = true
	vp.SoftWrap = true
	vp.KeyMap = viewport.KeyMap{}

	h := help.New()

	m := &Model{
		ctrl:      ctrl,
		ctx:       ctx,
		ctxCancel: cancel,
		mode:      modeBoot,
		input:     ta,
		spinner:   sp,
		viewport:  vp,
		help:      h,
		keys:      newKeyMap(),
		styles:    DefaultStyles(),
		history:   make([]string, 0, maxHistory),
		markdown:  newMarkdownRenderer(80),
		width:     80, // Default width until WindowSizeMsg arrives
	}
	m.refresh()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.input.Focus(),
		m.bootstrapCmd(),
		m.waitForConfirmation(),
	)
}

// refresh re-reads the display state from the controller. Called in
// Update after every message that may have changed it, never in View.
func (m *Model) refresh() {
	m.snap = m.ctrl.State().Snapshot()
}

// clampCursor keeps the overlay selection inside the current list.
func (m *Model) clampCursor() {
	n := len(m.overlayItems())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// overlayItems returns the selectable entries of the active overlay.
func (m *Model) overlayItems() []string {
	switch m.mode {
	case modeSessions:
		ids := make([]string, 0, len(m.snap.Sessions))
		for _, s := range m.snap.Sessions {
			ids = append(ids, s.SessionID)
		}
		return ids
	case modeModels:
		return m.snap.Models
	case modeDocuments:
		return m.snap.Documents
	default:
		return nil
	}
}
