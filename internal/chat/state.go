package chat

import (
	"sync"

	"github.com/mark041002/chatbot-tui/internal/api"
)

// Message roles as the backend speaks them.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one transcript entry. Inline failure placeholders carry
// IsError so the view can style them; they are regular assistant
// entries otherwise.
type Message struct {
	Role    string
	Content string
	Sources []string
	IsError bool
}

// NoticeKind selects the banner styling.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// Notice is the single-slot banner content. Seq increases with every
// post, so a dismissal scheduled for an older notice never clears a
// newer one. The zero Seq means no notice is showing.
type Notice struct {
	Kind NoticeKind
	Text string
	Seq  uint64
}

// Snapshot is a consistent copy of the display state. Slices are copies
// and safe to keep across further mutations.
type Snapshot struct {
	SessionID   string
	Title       string
	Saved       bool
	Temperature float64
	Busy        bool
	Ready       bool

	Messages []Message

	Sessions       []api.SessionSummary
	SessionsFailed bool

	Models       []string
	CurrentModel string
	Documents    []string
	Health       api.HealthStatus

	Notice Notice
}

// State is the single owner of all mutable client session state. Every
// mutation goes through a method and holds the lock for its whole
// read-modify-write, so controller operations running in different
// goroutines can never observe a half-applied change.
type State struct {
	mu sync.Mutex

	sessionID   string
	title       string
	saved       bool
	temperature float64
	busy        bool
	ready       bool

	messages    []Message
	maxMessages int

	sessions       []api.SessionSummary
	sessionsFailed bool

	models       []string
	currentModel string
	documents    []string
	health       api.HealthStatus

	notice    Notice
	noticeSeq uint64
}

// NewState creates an empty container. The transcript keeps at most
// maxMessages entries, dropping the oldest first.
func NewState(maxMessages int, temperature float64) *State {
	return &State{
		maxMessages: maxMessages,
		temperature: temperature,
	}
}

// Snapshot returns a copy of the current state for rendering.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		SessionID:      s.sessionID,
		Title:          s.title,
		Saved:          s.saved,
		Temperature:    s.temperature,
		Busy:           s.busy,
		Ready:          s.ready,
		SessionsFailed: s.sessionsFailed,
		CurrentModel:   s.currentModel,
		Health:         s.health,
		Notice:         s.notice,
	}
	snap.Messages = append([]Message(nil), s.messages...)
	snap.Sessions = append([]api.SessionSummary(nil), s.sessions...)
	snap.Models = append([]string(nil), s.models...)
	snap.Documents = append([]string(nil), s.documents...)
	return snap
}

// CurrentSessionID returns the held session identity, empty when the
// conversation has not been persisted yet.
func (s *State) CurrentSessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// chatParams returns identity and temperature together, as one
// consistent pair for building a chat request.
func (s *State) chatParams() (sessionID string, temperature float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID, s.temperature
}

// Reset clears identity and transcript for a fresh conversation. The
// empty transcript is the welcome view.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionID = ""
	s.title = ""
	s.saved = false
	s.messages = nil
}

// clearIfCurrent resets identity and transcript only when id is the
// active session. Reports whether it did.
func (s *State) clearIfCurrent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionID != id {
		return false
	}
	s.sessionID = ""
	s.title = ""
	s.saved = false
	s.messages = nil
	return true
}

// AppendMessage adds one entry to the transcript, dropping the oldest
// entries beyond the configured bound.
func (s *State) AppendMessage(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
	if s.maxMessages > 0 && len(s.messages) > s.maxMessages {
		s.messages = s.messages[len(s.messages)-s.maxMessages:]
	}
}

// replaceTranscript swaps the whole conversation for a loaded session.
func (s *State) replaceTranscript(id, title string, messages []Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionID = id
	s.title = title
	s.saved = true
	if s.maxMessages > 0 && len(messages) > s.maxMessages {
		messages = messages[len(messages)-s.maxMessages:]
	}
	s.messages = messages
}

// adoptIdentity stores the server-assigned identity and returns the
// value held before, so the caller can tell first persistence from an
// authoritative correction.
func (s *State) adoptIdentity(id string) (prior string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prior = s.sessionID
	s.sessionID = id
	return prior
}

// tryBeginSend sets the busy flag, refusing when a send is already in
// flight.
func (s *State) tryBeginSend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *State) endSend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
}

// Busy reports whether a send is in flight.
func (s *State) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// SetTemperature stores a new sampling temperature. Range checking is
// the controller's job.
func (s *State) SetTemperature(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.temperature = v
}

// SetSessions stores the session list exactly as the server returned
// it. failed marks the distinct failed-to-load placeholder state.
func (s *State) SetSessions(sessions []api.SessionSummary, failed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = sessions
	s.sessionsFailed = failed
}

// sessionTitle returns the listed title for id, or id itself when the
// list does not carry it.
func (s *State) sessionTitle(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		if sess.SessionID == id && sess.Title != "" {
			return sess.Title
		}
	}
	return id
}

// SetModels stores the model list and the active model name.
func (s *State) SetModels(models []string, current string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.models = models
	s.currentModel = current
}

// setCurrentModel updates only the active model name.
func (s *State) setCurrentModel(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentModel = name
}

// SetDocuments stores the document name list.
func (s *State) SetDocuments(documents []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = documents
}

// SetHealth stores the latest backend health report.
func (s *State) SetHealth(h api.HealthStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.health = h
}

// applyBootstrap lands all four startup fetches and marks the interface
// interactive in one step.
func (s *State) applyBootstrap(health api.HealthStatus, models api.ModelList, documents []string, sessions []api.SessionSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.health = health
	s.models = models.Models
	s.currentModel = models.CurrentModel
	s.documents = documents
	s.sessions = sessions
	s.sessionsFailed = false
	s.ready = true
}

// Ready reports whether bootstrap completed and the interface may
// accept input.
func (s *State) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// PostNotice replaces the banner. The most recent call wins; the
// returned notice carries the sequence number a dismissal must present.
func (s *State) PostNotice(kind NoticeKind, text string) Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.noticeSeq++
	s.notice = Notice{Kind: kind, Text: text, Seq: s.noticeSeq}
	return s.notice
}

// DismissNotice clears the banner, but only when seq still names the
// notice on display. A dismissal for a replaced notice is a no-op.
func (s *State) DismissNotice(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notice.Seq == seq {
		s.notice = Notice{}
	}
}
