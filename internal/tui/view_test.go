package tui

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"github.com/mark041002/chatbot-tui/internal/chat"
	"github.com/mark041002/chatbot-tui/internal/i18n"
)

var errFake = errors.New("Verbindung abgelehnt")

func TestRenderBoot_ShowsProgressAndFailure(t *testing.T) {
	defer goleak.VerifyNone(t, goleakOptions()...)

	m := newTestModel(t)
	defer m.cleanup()
	m.mode = modeBoot
	m.width = 80
	m.height = 24

	if got := m.renderBoot(); !strings.Contains(got, i18n.T("bootstrap.loading")) {
		t.Error("boot screen should show the loading text")
	}

	m.bootErr = errFake
	if got := m.renderBoot(); !strings.Contains(got, "Start fehlgeschlagen") {
		t.Error("boot screen should show the failure text")
	}
}

func TestRebuildViewport_WelcomeWhileEmpty(t *testing.T) {
	defer goleak.VerifyNone(t, goleakOptions()...)

	m := newTestModel(t)
	defer m.cleanup()

	m.rebuildViewportContent()

	view := m.viewport.View()
	if !strings.Contains(view, i18n.T("welcome.examples")) {
		t.Error("empty transcript should show the example questions")
	}
	if !strings.Contains(view, i18n.T("welcome.q1")) {
		t.Errorf("missing example question, view:\n%s", view)
	}
}

func TestRebuildViewport_Transcript(t *testing.T) {
	defer goleak.VerifyNone(t, goleakOptions()...)

	m := newTestModel(t)
	defer m.cleanup()

	state := m.ctrl.State()
	state.AppendMessage(chat.Message{Role: chat.RoleUser, Content: "Hallo"})
	state.AppendMessage(chat.Message{
		Role:    chat.RoleAssistant,
		Content: "Gerne!",
		Sources: []string{"handbuch.pdf"},
	})
	state.AppendMessage(chat.Message{
		Role:    chat.RoleAssistant,
		Content: "Fehler: Ollama ist nicht verfügbar",
		IsError: true,
	})
	m.refresh()
	m.rebuildViewportContent()

	view := m.viewport.View()
	for _, want := range []string{
		"Hallo",
		"Gerne!",
		"handbuch.pdf",
		"Fehler: Ollama ist nicht verfügbar",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
	if strings.Contains(view, i18n.T("welcome.examples")) {
		t.Error("welcome text should disappear once messages exist")
	}
}

func TestRenderConfirm_ShowsTitleAndHint(t *testing.T) {
	defer goleak.VerifyNone(t, goleakOptions()...)

	m := newTestModel(t)
	defer m.cleanup()
	m.width = 80
	m.height = 24
	m.confirm = &chat.ConfirmationRequest{
		Title:   i18n.T("session.delete.title"),
		Message: i18n.Sprintf("session.delete.message", "Erste Unterhaltung"),
	}

	got := m.renderConfirm()
	for _, want := range []string{
		"Session löschen",
		"Erste Unterhaltung",
		i18n.T("confirm.hint"),
	} {
		if !strings.Contains(got, want) {
			t.Errorf("confirm modal is missing %q", want)
		}
	}
}

func TestRenderOverlay_SessionsStates(t *testing.T) {
	defer goleak.VerifyNone(t, goleakOptions()...)

	m := newTestModel(t)
	defer m.cleanup()
	m.mode = modeSessions
	m.width = 80
	m.height = 24

	// Empty list
	if got := m.renderOverlay(); !strings.Contains(got, i18n.T("session.list.empty")) {
		t.Error("overlay should show the empty placeholder")
	}

	// Failed refresh
	m.ctrl.State().SetSessions(nil, true)
	m.refresh()
	if got := m.renderOverlay(); !strings.Contains(got, i18n.T("session.list.failed")) {
		t.Error("overlay should show the failure placeholder")
	}
}

func TestRenderNotice_Kinds(t *testing.T) {
	defer goleak.VerifyNone(t, goleakOptions()...)

	m := newTestModel(t)
	defer m.cleanup()

	if got := m.renderNotice(); got != "" {
		t.Errorf("no notice should render empty, got %q", got)
	}

	m.postNotice(chat.NoticeSuccess, "Session gelöscht")
	if got := m.renderNotice(); !strings.Contains(got, "Session gelöscht") {
		t.Errorf("notice text missing, got %q", got)
	}
}

func TestRenderStatusBar_States(t *testing.T) {
	m, backend := newBackedModel(t)
	backend.HealthFunc = func() (int, any) {
		return 200, map[string]any{
			"api_status":           "online",
			"ollama_available":     false,
			"current_model":        "llama3",
			"document_count":       0,
			"uploaded_files_count": 0,
		}
	}
	boot(t, m)

	bar := m.renderStatusBar()
	if !strings.Contains(bar, i18n.T("chat.new.title")) {
		t.Error("unsaved conversation should show the new chat marker")
	}
	if !strings.Contains(bar, "llama3") {
		t.Error("status bar should show the model")
	}
	if !strings.Contains(bar, i18n.T("status.offline")) {
		t.Error("status bar should flag Ollama as offline")
	}

	// A loaded session shows its title and the saved marker
	if err := m.ctrl.LoadSession(m.ctx, "s-1"); err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	m.refresh()
	bar = m.renderStatusBar()
	if !strings.Contains(bar, "Erste Unterhaltung") {
		t.Error("status bar should show the session title")
	}
	if !strings.Contains(bar, i18n.T("chat.saved")) {
		t.Error("status bar should mark the loaded session as saved")
	}
}

func TestFormatStamp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-01-05T10:05:00", "2025-01-05 10:05"},
		{"2025-01-05", "2025-01-05"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := formatStamp(tt.in); got != tt.want {
			t.Errorf("formatStamp(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMarkdownRenderer(t *testing.T) {
	defer goleak.VerifyNone(t, goleakOptions()...)

	t.Run("renders markdown", func(t *testing.T) {
		mr := newMarkdownRenderer(80)
		if mr == nil {
			t.Fatal("failed to create markdown renderer")
		}
		if mr.Render("**fett**") == "" {
			t.Error("render should produce output")
		}
	})

	t.Run("nil renderer passes through", func(t *testing.T) {
		var mr *markdownRenderer
		if got := mr.Render("Text"); got != "Text" {
			t.Errorf("got %q, want passthrough", got)
		}
	})

	t.Run("width clamp and caching", func(t *testing.T) {
		mr := newMarkdownRenderer(0)
		if mr == nil {
			t.Fatal("failed to create markdown renderer")
		}
		if mr.width != 80 {
			t.Errorf("width = %d, want default 80", mr.width)
		}

		mr.SetWidth(120)
		if mr.width != 120 {
			t.Errorf("width = %d, want 120", mr.width)
		}

		before := mr.renderer
		mr.SetWidth(120)
		if mr.renderer != before {
			t.Error("same width must not rebuild the renderer")
		}
		mr.SetWidth(-1)
		if mr.width != 120 {
			t.Error("invalid width must be ignored")
		}
	})
}
