package cmd

import (
	"strings"
	"testing"

	"github.com/mark041002/chatbot-tui/internal/config"
	"github.com/mark041002/chatbot-tui/internal/testutil"
)

func TestNewRootCmd(t *testing.T) {
	cfg := &config.Config{APIURL: "http://127.0.0.1:1"}

	cmd := NewRootCmd(cfg)
	if cmd == nil {
		t.Fatal("expected non-nil command")
	}

	if cmd.Use != "chatbot" {
		t.Errorf("expected Use=%q, got %q", "chatbot", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("expected non-empty Short description")
	}
	if cmd.Long == "" {
		t.Error("expected non-empty Long description")
	}
	if cmd.RunE == nil {
		t.Error("expected non-nil RunE")
	}
}

func TestNewRootCmd_FindsSubcommands(t *testing.T) {
	cfg := &config.Config{APIURL: "http://127.0.0.1:1"}
	root := NewRootCmd(cfg)

	tests := []struct {
		name string
		path []string
		want string
	}{
		{name: "chat", path: []string{"chat"}, want: "chat"},
		{name: "sessions list", path: []string{"sessions", "list"}, want: "list"},
		{name: "sessions show", path: []string{"sessions", "show"}, want: "show"},
		{name: "sessions delete", path: []string{"sessions", "delete"}, want: "delete"},
		{name: "models list", path: []string{"models", "list"}, want: "list"},
		{name: "models select", path: []string{"models", "select"}, want: "select"},
		{name: "documents upload", path: []string{"documents", "upload"}, want: "upload"},
		{name: "documents alias", path: []string{"docs", "list"}, want: "list"},
		{name: "health", path: []string{"health"}, want: "health"},
		{name: "version", path: []string{"version"}, want: "version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, _, err := root.Find(tt.path)
			if err != nil {
				t.Fatalf("Find(%v) failed: %v", tt.path, err)
			}
			if sub.Name() != tt.want {
				t.Errorf("expected command %q, got %q", tt.want, sub.Name())
			}
			if sub.Short == "" {
				t.Errorf("expected non-empty Short for %v", tt.path)
			}
		})
	}
}

func TestRootCmd_ExecutesSubcommand(t *testing.T) {
	backend := testutil.NewBackend(t)
	cfg := &config.Config{APIURL: backend.URL()}

	root := NewRootCmd(cfg)
	root.SetArgs([]string{"models", "list"})

	out, err := captureStdout(t, root.Execute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "llama3") {
		t.Errorf("expected model listing, got: %s", out)
	}
	if got := backend.Calls("models"); got != 1 {
		t.Errorf("expected 1 models request, got %d", got)
	}
}
