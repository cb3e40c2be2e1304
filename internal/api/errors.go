package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is the decoded form of a non-2xx backend response.
// Detail carries the server's human-readable explanation when the body
// provided one; otherwise it is empty and Error falls back to the status.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// errorBodyLimit bounds how much of an error body is read.
const errorBodyLimit = 64 << 10

// decodeError turns a non-2xx response into an *APIError.
// FastAPI reports failures as {"detail": "..."}; anything else degrades to
// the bare status code. Callers never branch on specific codes.
func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		apiErr.Detail = payload.Detail
	}

	return apiErr
}
