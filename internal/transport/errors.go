package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ProblemBody is the error document returned by the APIs
type ProblemBody struct {
	Type   string          `json:"type,omitempty"`
	Title  string          `json:"title,omitempty"`
	Detail string          `json:"detail,omitempty"`
	Status int             `json:"status,omitempty"`
	Errors json.RawMessage `json:"errors,omitempty"`
}

// RequestError is a non-2xx response
type RequestError struct {
	Status     int
	StatusText string
	Headers    http.Header
	Body       ProblemBody
	Raw        []byte
}

func newRequestError(resp *http.Response, raw []byte) *RequestError {
	reqErr := &RequestError{
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		Headers:    resp.Header,
		Raw:        raw,
	}
	// non-JSON error bodies are kept raw only
	_ = json.Unmarshal(raw, &reqErr.Body)
	return reqErr
}

func (e *RequestError) Error() string {
	if e.Body.Title != "" {
		return fmt.Sprintf("request failed with status %d %s: %s", e.Status, e.StatusText, e.Body.Title)
	}
	return fmt.Sprintf("request failed with status %d %s", e.Status, e.StatusText)
}

// MarshalJSON exposes the status and problem body
func (e *RequestError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status     int         `json:"status"`
		StatusText string      `json:"statusText"`
		Body       ProblemBody `json:"body"`
	}{e.Status, e.StatusText, e.Body})
}

// AsRequestError unwraps err into a *RequestError
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	ok := errors.As(err, &reqErr)
	return reqErr, ok
}
