// Package api provides the HTTP client for the chatbot backend.
//
// The client covers the full REST contract: health, models, documents,
// sessions, uploads and chat. Every call takes a context, performs exactly
// one attempt and returns either a decoded payload or an error; non-2xx
// responses become *APIError with the server's detail message. An optional
// token-bucket limiter paces requests, it never re-issues them.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/mark041002/chatbot-tui/internal/log"
)

// Client talks to the chatbot backend. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     log.Logger
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP client timeout. Zero means no deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRateLimit paces outgoing requests at rps tokens per second with a
// burst of one. Zero or negative rps disables pacing.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the backend at baseURL
// (e.g. "http://localhost:8000").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger: log.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one request and decodes the response into out (when non-nil).
// The returned error is either a transport error or an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			"request_id", requestID,
			"method", method,
			"path", path,
			"elapsed", time.Since(start),
			"error", err,
		)
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	c.logger.Debug("request completed",
		"request_id", requestID,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// getJSON issues a GET and decodes the result.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// postJSON issues a POST with a JSON body and decodes the result.
func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.do(ctx, http.MethodPost, path, body, contentType, out)
}

// Health probes the backend and reports Ollama availability.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.getJSON(ctx, "/api/health", &status); err != nil {
		return nil, fmt.Errorf("health: %w", err)
	}
	return &status, nil
}

// Models lists the available models and the active one.
func (c *Client) Models(ctx context.Context) (*ModelList, error) {
	var list ModelList
	if err := c.getJSON(ctx, "/api/models", &list); err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	return &list, nil
}

// SelectModel switches the backend to the named model.
// The server tests the model before accepting the switch.
func (c *Client) SelectModel(ctx context.Context, name string) error {
	if err := c.postJSON(ctx, "/api/models/"+url.PathEscape(name), nil, nil); err != nil {
		return fmt.Errorf("select model: %w", err)
	}
	return nil
}

// Documents lists the indexed documents.
func (c *Client) Documents(ctx context.Context) (*DocumentList, error) {
	var list DocumentList
	if err := c.getJSON(ctx, "/api/documents", &list); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return &list, nil
}

// UploadDocument sends a local file to the backend for indexing.
func (c *Client) UploadDocument(ctx context.Context, path string) (*UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}

	var result UploadResult
	if err := c.do(ctx, http.MethodPost, "/api/upload", &buf, mw.FormDataContentType(), &result); err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}
	return &result, nil
}

// DeleteDocument removes a document from the backend index.
func (c *Client) DeleteDocument(ctx context.Context, name string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/documents/"+url.PathEscape(name), nil, "", nil); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// Sessions lists the recent chat sessions in server order.
func (c *Client) Sessions(ctx context.Context) ([]SessionSummary, error) {
	var sessions []SessionSummary
	if err := c.getJSON(ctx, "/api/chat/sessions", &sessions); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Session fetches one session with its full message history.
func (c *Client) Session(ctx context.Context, id string) (*SessionDetail, error) {
	var detail SessionDetail
	if err := c.getJSON(ctx, "/api/chat/sessions/"+url.PathEscape(id), &detail); err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &detail, nil
}

// CreateSession asks the server for a fresh, empty session. The chat
// flow itself never calls this: the first exchange creates the session
// implicitly.
func (c *Client) CreateSession(ctx context.Context) (*CreatedSession, error) {
	var created CreatedSession
	if err := c.postJSON(ctx, "/api/chat/sessions", nil, &created); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &created, nil
}

// DeleteSession removes a session on the server.
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/chat/sessions/"+url.PathEscape(id), nil, "", nil); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Chat sends a message and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	var result ChatResult
	if err := c.postJSON(ctx, "/api/chat", req, &result); err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	return &result, nil
}

// IsAPIError reports whether err carries a backend status response and
// returns it when so.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
