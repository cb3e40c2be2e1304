// Package testutil provides shared helpers for tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Backend is an in-memory stand-in for the chatbot REST service.
//
// Every route serves a small fixed payload by default, so tests only
// override the handlers they assert on. A handler returns the status
// code and a value that is encoded as the JSON body; a nil value sends
// an empty body. Handler fields may be swapped at any point before the
// request that should hit them.
//
// Example:
//
//	backend := testutil.NewBackend(t)
//	backend.SessionsFunc = func() (int, any) {
//		return http.StatusInternalServerError, map[string]any{"detail": "Datenbank nicht erreichbar"}
//	}
//	client := api.New(backend.URL())
type Backend struct {
	t   *testing.T
	srv *httptest.Server

	mu         sync.Mutex
	calls      map[string]int
	chatBodies []map[string]any

	HealthFunc         func() (int, any)
	ModelsFunc         func() (int, any)
	SelectModelFunc    func(name string) (int, any)
	DocumentsFunc      func() (int, any)
	DeleteDocumentFunc func(name string) (int, any)
	UploadFunc         func(filename string, data []byte) (int, any)
	SessionsFunc       func() (int, any)
	CreateSessionFunc  func() (int, any)
	SessionFunc        func(id string) (int, any)
	DeleteSessionFunc  func(id string) (int, any)
	ChatFunc           func(body map[string]any) (int, any)
}

// NewBackend starts a fake service and registers its shutdown with
// t.Cleanup.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{t: t, calls: make(map[string]int)}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, _ *http.Request) {
		b.serve(w, "health", b.HealthFunc, func() (int, any) {
			return http.StatusOK, map[string]any{
				"api_status":           "online",
				"ollama_available":     true,
				"current_model":        "llama3",
				"document_count":       1,
				"uploaded_files_count": 1,
			}
		})
	})

	mux.HandleFunc("GET /api/models", func(w http.ResponseWriter, _ *http.Request) {
		b.serve(w, "models", b.ModelsFunc, func() (int, any) {
			return http.StatusOK, map[string]any{
				"models":           []string{"llama3", "mistral"},
				"current_model":    "llama3",
				"ollama_available": true,
			}
		})
	})

	mux.HandleFunc("POST /api/models/{name}", func(w http.ResponseWriter, r *http.Request) {
		b.serveNamed(w, "select_model", r.PathValue("name"), b.SelectModelFunc, func(string) (int, any) {
			return http.StatusOK, map[string]any{"message": "Modell gewechselt"}
		})
	})

	mux.HandleFunc("GET /api/documents", func(w http.ResponseWriter, _ *http.Request) {
		b.serve(w, "documents", b.DocumentsFunc, func() (int, any) {
			return http.StatusOK, map[string]any{
				"documents": []string{"handbuch.pdf"},
				"count":     1,
			}
		})
	})

	mux.HandleFunc("DELETE /api/documents/{name}", func(w http.ResponseWriter, r *http.Request) {
		b.serveNamed(w, "delete_document", r.PathValue("name"), b.DeleteDocumentFunc, func(string) (int, any) {
			return http.StatusOK, map[string]any{"message": "Dokument gelöscht"}
		})
	})

	mux.HandleFunc("POST /api/upload", b.handleUpload)

	mux.HandleFunc("GET /api/chat/sessions", func(w http.ResponseWriter, _ *http.Request) {
		b.serve(w, "sessions", b.SessionsFunc, func() (int, any) {
			return http.StatusOK, []map[string]any{
				{
					"session_id":    "s-1",
					"title":         "Erste Unterhaltung",
					"created_at":    "2025-01-05T10:00:00",
					"updated_at":    "2025-01-05T10:05:00",
					"message_count": 2,
				},
			}
		})
	})

	mux.HandleFunc("POST /api/chat/sessions", func(w http.ResponseWriter, _ *http.Request) {
		b.serve(w, "create_session", b.CreateSessionFunc, func() (int, any) {
			return http.StatusOK, map[string]any{
				"session_id": "s-new",
				"message":    "Neue Session erstellt",
			}
		})
	})

	mux.HandleFunc("GET /api/chat/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.serveNamed(w, "session", r.PathValue("id"), b.SessionFunc, func(id string) (int, any) {
			return http.StatusOK, map[string]any{
				"session_id": id,
				"title":      "Erste Unterhaltung",
				"created_at": "2025-01-05T10:00:00",
				"updated_at": "2025-01-05T10:05:00",
				"messages": []map[string]any{
					{"role": "user", "content": "Hallo"},
					{"role": "assistant", "content": "Hallo! Wie kann ich helfen?"},
				},
			}
		})
	})

	mux.HandleFunc("DELETE /api/chat/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.serveNamed(w, "delete_session", r.PathValue("id"), b.DeleteSessionFunc, func(string) (int, any) {
			return http.StatusOK, map[string]any{"message": "Session gelöscht"}
		})
	})

	mux.HandleFunc("POST /api/chat", b.handleChat)

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

// URL returns the base URL of the fake service.
func (b *Backend) URL() string {
	return b.srv.URL
}

// Calls reports how many requests the named operation has received.
// Operation names: health, models, select_model, documents,
// delete_document, upload, sessions, create_session, session,
// delete_session, chat.
func (b *Backend) Calls(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[op]
}

// ChatBodies returns the decoded request bodies POST /api/chat has
// received, in order. Key presence is preserved, so tests can assert
// that session_id was omitted rather than sent empty.
func (b *Backend) ChatBodies() []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]map[string]any, len(b.chatBodies))
	copy(out, b.chatBodies)
	return out
}

func (b *Backend) count(op string) {
	b.mu.Lock()
	b.calls[op]++
	b.mu.Unlock()
}

func (b *Backend) serve(w http.ResponseWriter, op string, h, fallback func() (int, any)) {
	b.count(op)
	if h == nil {
		h = fallback
	}
	status, body := h()
	writeJSON(b.t, w, status, body)
}

func (b *Backend) serveNamed(w http.ResponseWriter, op, name string, h, fallback func(string) (int, any)) {
	b.count(op)
	if h == nil {
		h = fallback
	}
	status, body := h(name)
	writeJSON(b.t, w, status, body)
}

func (b *Backend) handleUpload(w http.ResponseWriter, r *http.Request) {
	b.count("upload")

	file, header, err := r.FormFile("file")
	if err != nil {
		b.t.Errorf("upload request without file field: %v", err)
		writeJSON(b.t, w, http.StatusBadRequest, map[string]any{"detail": "Keine Datei"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		b.t.Errorf("read upload body: %v", err)
		writeJSON(b.t, w, http.StatusBadRequest, map[string]any{"detail": "Lesefehler"})
		return
	}

	h := b.UploadFunc
	if h == nil {
		h = func(filename string, _ []byte) (int, any) {
			return http.StatusOK, map[string]any{
				"message":        "Dokument verarbeitet",
				"document_name":  filename,
				"chunks_created": 3,
			}
		}
	}
	status, body := h(header.Filename, data)
	writeJSON(b.t, w, status, body)
}

func (b *Backend) handleChat(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		b.t.Errorf("decode chat request: %v", err)
		writeJSON(b.t, w, http.StatusBadRequest, map[string]any{"detail": "Ungültige Anfrage"})
		return
	}

	b.mu.Lock()
	b.calls["chat"]++
	b.chatBodies = append(b.chatBodies, body)
	h := b.ChatFunc
	b.mu.Unlock()

	if h == nil {
		h = func(map[string]any) (int, any) {
			return http.StatusOK, map[string]any{
				"success":    true,
				"response":   "Gerne! Womit kann ich helfen?",
				"session_id": "s-1",
			}
		}
	}
	status, out := h(body)
	writeJSON(b.t, w, status, out)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		t.Errorf("encode response: %v", err)
	}
}
