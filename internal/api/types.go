package api

// Wire types for the backend REST contract. Field names follow the JSON the
// FastAPI server emits; timestamps stay strings because the server sends bare
// ISO 8601 without a timezone, which time.Time's JSON decoding rejects.

// HealthStatus is the response of GET /api/health.
type HealthStatus struct {
	APIStatus          string `json:"api_status"`
	OllamaAvailable    bool   `json:"ollama_available"`
	CurrentModel       string `json:"current_model"`
	DocumentCount      int    `json:"document_count"`
	UploadedFilesCount int    `json:"uploaded_files_count"`
}

// ModelList is the response of GET /api/models.
type ModelList struct {
	Models          []string `json:"models"`
	CurrentModel    string   `json:"current_model"`
	OllamaAvailable bool     `json:"ollama_available"`
}

// DocumentList is the response of GET /api/documents.
type DocumentList struct {
	Documents []string `json:"documents"`
	Count     int      `json:"count"`
}

// SessionSummary is one entry of GET /api/chat/sessions.
type SessionSummary struct {
	SessionID    string `json:"session_id"`
	Title        string `json:"title"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
	MessageCount int    `json:"message_count"`
}

// SessionMessage is one transcript entry inside a SessionDetail.
type SessionMessage struct {
	Role      string   `json:"role"`
	Content   string   `json:"content"`
	Timestamp string   `json:"timestamp,omitempty"`
	Sources   []string `json:"sources,omitempty"`
	ToolsUsed []string `json:"tools_used,omitempty"`
}

// SessionDetail is the response of GET /api/chat/sessions/{id}.
type SessionDetail struct {
	SessionID string           `json:"session_id"`
	Title     string           `json:"title"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
	Messages  []SessionMessage `json:"messages"`
}

// CreatedSession is the response of POST /api/chat/sessions.
type CreatedSession struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message,omitempty"`
}

// ChatRequest is the body of POST /api/chat.
// SessionID is omitted entirely when the conversation has no server-side
// identity yet; the server then creates a session implicitly.
type ChatRequest struct {
	Message     string  `json:"message"`
	Temperature float64 `json:"temperature"`
	SessionID   string  `json:"session_id,omitempty"`
}

// ChatResult is the response of POST /api/chat.
type ChatResult struct {
	Success   bool     `json:"success"`
	Response  string   `json:"response"`
	Sources   []string `json:"sources,omitempty"`
	ToolsUsed []string `json:"tools_used,omitempty"`
	Mode      string   `json:"mode,omitempty"`
	SessionID string   `json:"session_id,omitempty"`
	Detail    string   `json:"detail,omitempty"`
}

// UploadResult is the response of POST /api/upload.
type UploadResult struct {
	Message        string `json:"message"`
	DocumentName   string `json:"document_name,omitempty"`
	ChunksCreated  int    `json:"chunks_created,omitempty"`
	TextLength     int    `json:"text_length,omitempty"`
	OCRUsed        bool   `json:"ocr_used,omitempty"`
	ProcessingInfo string `json:"processing_info,omitempty"`
}
