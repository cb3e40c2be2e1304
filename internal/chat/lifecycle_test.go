package chat

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/mark041002/chatbot-tui/internal/api"
)

func TestNewChat_ResetsIdentityAndTranscript(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.State().adoptIdentity("abc123")
	ctrl.State().AppendMessage(Message{Role: RoleUser, Content: "Hallo"})

	ctrl.NewChat()

	snap := ctrl.State().Snapshot()
	if snap.SessionID != "" {
		t.Errorf("session = %q, want absent", snap.SessionID)
	}
	if len(snap.Messages) != 0 {
		t.Errorf("transcript has %d messages, want the welcome view (0)", len(snap.Messages))
	}
	if snap.Title != "" || snap.Saved {
		t.Errorf("title/saved = %q/%v, want reset", snap.Title, snap.Saved)
	}
}

func TestRefreshSessions_FailurePlaceholder(t *testing.T) {
	ctrl, backend := newTestController(t)
	backend.SessionsFunc = func() (int, any) {
		return http.StatusInternalServerError, map[string]any{"detail": "Datenbank nicht erreichbar"}
	}

	ctrl.RefreshSessions(context.Background())

	snap := ctrl.State().Snapshot()
	if !snap.SessionsFailed {
		t.Error("SessionsFailed = false, want the failed-to-load placeholder state")
	}
	if len(snap.Sessions) != 0 {
		t.Errorf("sessions = %d entries, want none", len(snap.Sessions))
	}

	// The next successful refresh recovers.
	backend.SessionsFunc = nil
	ctrl.RefreshSessions(context.Background())

	snap = ctrl.State().Snapshot()
	if snap.SessionsFailed {
		t.Error("SessionsFailed = true after recovery, want false")
	}
	if len(snap.Sessions) != 1 {
		t.Errorf("sessions = %d entries, want 1", len(snap.Sessions))
	}
}

func TestRefreshSessions_PreservesServerOrder(t *testing.T) {
	ctrl, backend := newTestController(t)
	backend.SessionsFunc = func() (int, any) {
		// Deliberately not sorted by recency: the server decides the
		// order, the client never re-sorts.
		return http.StatusOK, []map[string]any{
			{"session_id": "b", "title": "Ältere", "updated_at": "2025-01-04T09:00:00", "message_count": 1},
			{"session_id": "a", "title": "Neuere", "updated_at": "2025-01-05T11:00:00", "message_count": 3},
		}
	}

	ctrl.RefreshSessions(context.Background())

	sessions := ctrl.State().Snapshot().Sessions
	if len(sessions) != 2 {
		t.Fatalf("sessions = %d entries, want 2", len(sessions))
	}
	if sessions[0].SessionID != "b" || sessions[1].SessionID != "a" {
		t.Errorf("order = [%s %s], want server order [b a]", sessions[0].SessionID, sessions[1].SessionID)
	}
}

func TestLoadSession_ReplacesTranscriptWholesale(t *testing.T) {
	ctrl, _ := newTestController(t)

	// A live unsaved conversation is on screen.
	ctrl.State().adoptIdentity("alt")
	ctrl.State().AppendMessage(Message{Role: RoleUser, Content: "Übrig gebliebene Nachricht"})

	if err := ctrl.LoadSession(context.Background(), "s-1"); err != nil {
		t.Fatalf("LoadSession() error: %v", err)
	}

	snap := ctrl.State().Snapshot()
	if snap.SessionID != "s-1" {
		t.Errorf("session = %q, want s-1", snap.SessionID)
	}
	if snap.Title != "Erste Unterhaltung" || !snap.Saved {
		t.Errorf("title/saved = %q/%v, want loaded title with saved marker", snap.Title, snap.Saved)
	}
	if len(snap.Messages) != 2 {
		t.Fatalf("transcript has %d messages, want exactly the loaded 2", len(snap.Messages))
	}
	for _, m := range snap.Messages {
		if strings.Contains(m.Content, "Übrig gebliebene") {
			t.Errorf("stale message survived the load: %+v", m)
		}
	}
}

func TestLoadSession_FailureLeavesStateUntouched(t *testing.T) {
	ctrl, backend := newTestController(t)
	backend.SessionFunc = func(id string) (int, any) {
		return http.StatusNotFound, map[string]any{"detail": "Session nicht gefunden"}
	}

	ctrl.State().adoptIdentity("abc123")
	ctrl.State().AppendMessage(Message{Role: RoleUser, Content: "Hallo"})

	err := ctrl.LoadSession(context.Background(), "s-404")
	if err == nil {
		t.Fatal("LoadSession() error = nil, want error")
	}

	snap := ctrl.State().Snapshot()
	if snap.SessionID != "abc123" {
		t.Errorf("session = %q, want untouched abc123", snap.SessionID)
	}
	if len(snap.Messages) != 1 {
		t.Errorf("transcript has %d messages, want untouched 1", len(snap.Messages))
	}
	if snap.Notice.Kind != NoticeError || !strings.Contains(snap.Notice.Text, "Session nicht gefunden") {
		t.Errorf("notice = %+v, want an error notice carrying the detail", snap.Notice)
	}
}

func TestDeleteSession_ActiveIdentityClearedBeforeRefresh(t *testing.T) {
	ctrl, backend := newTestController(t)
	backend.ChatFunc = func(map[string]any) (int, any) {
		return http.StatusOK, map[string]any{"success": true, "response": "Hi!", "session_id": "abc123"}
	}
	if _, err := ctrl.Send(context.Background(), "Hallo"); err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	// The refresh after the delete fails, and records what identity it
	// saw when it ran.
	identityAtRefresh := make(chan string, 1)
	backend.SessionsFunc = func() (int, any) {
		identityAtRefresh <- ctrl.State().CurrentSessionID()
		return http.StatusInternalServerError, map[string]any{"detail": "Datenbank nicht erreichbar"}
	}

	if err := deleteSession(t, ctrl, "abc123", true); err != nil {
		t.Fatalf("DeleteSession() error: %v", err)
	}

	select {
	case seen := <-identityAtRefresh:
		if seen != "" {
			t.Errorf("identity at refresh time = %q, want already cleared", seen)
		}
	default:
		t.Fatal("the list refresh never ran")
	}

	snap := ctrl.State().Snapshot()
	if snap.SessionID != "" {
		t.Errorf("session = %q, want absent even though the refresh failed", snap.SessionID)
	}
	if !snap.SessionsFailed {
		t.Error("SessionsFailed = false, want the failed refresh reflected")
	}
}

func TestDeleteSession_FailedDeletePreservesIdentity(t *testing.T) {
	ctrl, backend := newTestController(t)
	backend.ChatFunc = func(map[string]any) (int, any) {
		return http.StatusOK, map[string]any{"success": true, "response": "Hi!", "session_id": "abc123"}
	}
	if _, err := ctrl.Send(context.Background(), "Hallo"); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	refreshesBefore := backend.Calls("sessions")

	backend.DeleteSessionFunc = func(id string) (int, any) {
		return http.StatusInternalServerError, map[string]any{"detail": "Löschen fehlgeschlagen"}
	}

	err := deleteSession(t, ctrl, "abc123", true)
	if err == nil {
		t.Fatal("DeleteSession() error = nil, want error")
	}
	if _, ok := api.IsAPIError(err); !ok {
		t.Errorf("error = %v, want the backend failure", err)
	}

	snap := ctrl.State().Snapshot()
	if snap.SessionID != "abc123" {
		t.Errorf("session = %q, want abc123: a failed delete must not corrupt identity", snap.SessionID)
	}
	if len(snap.Messages) != 2 {
		t.Errorf("transcript has %d messages, want untouched 2", len(snap.Messages))
	}
	if snap.Notice.Kind != NoticeError || !strings.Contains(snap.Notice.Text, "Löschen fehlgeschlagen") {
		t.Errorf("notice = %+v, want the delete failure", snap.Notice)
	}
	if got := backend.Calls("sessions"); got != refreshesBefore {
		t.Errorf("session list refreshes = %d, want unchanged %d after a failed delete", got, refreshesBefore)
	}
}

func TestDeleteSession_Declined(t *testing.T) {
	ctrl, backend := newTestController(t)
	ctrl.State().adoptIdentity("abc123")

	err := deleteSession(t, ctrl, "abc123", false)
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("DeleteSession() error = %v, want ErrDeclined", err)
	}

	if got := backend.Calls("delete_session"); got != 0 {
		t.Errorf("delete calls = %d, want 0 after decline", got)
	}
	if got := ctrl.State().CurrentSessionID(); got != "abc123" {
		t.Errorf("session = %q, want untouched abc123", got)
	}
}

func TestDeleteSession_InactiveSessionKeepsConversation(t *testing.T) {
	ctrl, backend := newTestController(t)
	backend.ChatFunc = func(map[string]any) (int, any) {
		return http.StatusOK, map[string]any{"success": true, "response": "Hi!", "session_id": "abc123"}
	}
	if _, err := ctrl.Send(context.Background(), "Hallo"); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	refreshesBefore := backend.Calls("sessions")

	if err := deleteSession(t, ctrl, "andere-session", true); err != nil {
		t.Fatalf("DeleteSession() error: %v", err)
	}

	snap := ctrl.State().Snapshot()
	if snap.SessionID != "abc123" {
		t.Errorf("session = %q, want abc123: deleting another session must not touch it", snap.SessionID)
	}
	if len(snap.Messages) != 2 {
		t.Errorf("transcript has %d messages, want untouched 2", len(snap.Messages))
	}
	if got := backend.Calls("sessions"); got != refreshesBefore+1 {
		t.Errorf("session list refreshes = %d, want one more than %d", got, refreshesBefore)
	}
}
