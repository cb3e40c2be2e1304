package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark041002/chatbot-tui/internal/api"
	"github.com/mark041002/chatbot-tui/internal/testutil"
)

// captureStdout redirects os.Stdout while fn runs and returns what it
// printed together with fn's error.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	_ = r.Close()

	return buf.String(), runErr
}

// newTestClient wires a client against the fake backend.
func newTestClient(t *testing.T) (*testutil.Backend, *api.Client) {
	t.Helper()

	backend := testutil.NewBackend(t)
	return backend, api.New(backend.URL())
}

func TestRunSessionsList(t *testing.T) {
	backend, client := newTestClient(t)

	out, err := captureStdout(t, func() error {
		return runSessionsList(context.Background(), client)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Sessions", "s-1", "Erste Unterhaltung", "2 Nachrichten", "2025-01-05 10:05"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\nGot: %s", want, out)
		}
	}
	if got := backend.Calls("sessions"); got != 1 {
		t.Errorf("expected 1 sessions request, got %d", got)
	}
}

func TestRunSessionsList_Empty(t *testing.T) {
	backend, client := newTestClient(t)
	backend.SessionsFunc = func() (int, any) {
		return http.StatusOK, []map[string]any{}
	}

	out, err := captureStdout(t, func() error {
		return runSessionsList(context.Background(), client)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Keine Sessions vorhanden") {
		t.Errorf("expected empty notice, got: %s", out)
	}
}

func TestRunSessionsList_Error(t *testing.T) {
	backend, client := newTestClient(t)
	backend.SessionsFunc = func() (int, any) {
		return http.StatusInternalServerError, map[string]any{"detail": "Datenbank nicht erreichbar"}
	}

	_, err := captureStdout(t, func() error {
		return runSessionsList(context.Background(), client)
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "listing sessions") {
		t.Errorf("expected wrapped error, got: %v", err)
	}
}

func TestRunSessionsShow(t *testing.T) {
	backend, client := newTestClient(t)

	out, err := captureStdout(t, func() error {
		return runSessionsShow(context.Background(), client, "s-1")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Session: s-1",
		"Titel: Erste Unterhaltung",
		"Erstellt: 2025-01-05 10:00",
		"Nachrichten: 2",
		"Du> Hallo",
		"Assistent> Hallo! Wie kann ich helfen?",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\nGot: %s", want, out)
		}
	}
	if got := backend.Calls("session"); got != 1 {
		t.Errorf("expected 1 session request, got %d", got)
	}
}

func TestRunSessionsDelete(t *testing.T) {
	backend, client := newTestClient(t)

	out, err := captureStdout(t, func() error {
		return runSessionsDelete(context.Background(), client, "s-1")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Session gelöscht") {
		t.Errorf("expected confirmation, got: %s", out)
	}
	if got := backend.Calls("delete_session"); got != 1 {
		t.Errorf("expected 1 delete request, got %d", got)
	}
}

func TestRunModelsList(t *testing.T) {
	_, client := newTestClient(t)

	out, err := captureStdout(t, func() error {
		return runModelsList(context.Background(), client)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Modelle", "llama3 (aktiv)", "mistral"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\nGot: %s", want, out)
		}
	}
	if strings.Contains(out, "mistral (aktiv)") {
		t.Errorf("marker on inactive model: %s", out)
	}
}

func TestRunModelsList_OllamaDown(t *testing.T) {
	backend, client := newTestClient(t)
	backend.ModelsFunc = func() (int, any) {
		return http.StatusOK, map[string]any{
			"models":           []string{},
			"current_model":    "",
			"ollama_available": false,
		}
	}

	out, err := captureStdout(t, func() error {
		return runModelsList(context.Background(), client)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Ollama ist nicht verfügbar", "Keine Modelle verfügbar"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\nGot: %s", want, out)
		}
	}
}

func TestRunModelsSelect(t *testing.T) {
	backend, client := newTestClient(t)

	out, err := captureStdout(t, func() error {
		return runModelsSelect(context.Background(), client, "mistral")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Modell gewechselt: mistral") {
		t.Errorf("expected confirmation, got: %s", out)
	}
	if got := backend.Calls("select_model"); got != 1 {
		t.Errorf("expected 1 select request, got %d", got)
	}
}

func TestRunDocumentsList(t *testing.T) {
	_, client := newTestClient(t)

	out, err := captureStdout(t, func() error {
		return runDocumentsList(context.Background(), client)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Dokumente", "handbuch.pdf"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\nGot: %s", want, out)
		}
	}
}

func TestRunDocumentsUpload(t *testing.T) {
	backend, client := newTestClient(t)

	path := filepath.Join(t.TempDir(), "notizen.txt")
	if err := os.WriteFile(path, []byte("Inhalt"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	out, err := captureStdout(t, func() error {
		return runDocumentsUpload(context.Background(), client, path)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Dokument erfolgreich hochgeladen", "3 Abschnitte indexiert"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\nGot: %s", want, out)
		}
	}
	if got := backend.Calls("upload"); got != 1 {
		t.Errorf("expected 1 upload request, got %d", got)
	}
}

func TestRunDocumentsDelete(t *testing.T) {
	backend, client := newTestClient(t)

	out, err := captureStdout(t, func() error {
		return runDocumentsDelete(context.Background(), client, "handbuch.pdf")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Dokument gelöscht") {
		t.Errorf("expected confirmation, got: %s", out)
	}
	if got := backend.Calls("delete_document"); got != 1 {
		t.Errorf("expected 1 delete request, got %d", got)
	}
}

func TestRunHealth(t *testing.T) {
	_, client := newTestClient(t)

	out, err := captureStdout(t, func() error {
		return runHealth(context.Background(), client)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Backend erreichbar",
		"Status: online",
		"Modell: llama3",
		"Dokumente: 1, hochgeladene Dateien: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\nGot: %s", want, out)
		}
	}
}

func TestRunHealth_Error(t *testing.T) {
	backend, client := newTestClient(t)
	backend.HealthFunc = func() (int, any) {
		return http.StatusServiceUnavailable, map[string]any{"detail": "Backend nicht erreichbar"}
	}

	_, err := captureStdout(t, func() error {
		return runHealth(context.Background(), client)
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "checking backend health") {
		t.Errorf("expected wrapped error, got: %v", err)
	}
}
