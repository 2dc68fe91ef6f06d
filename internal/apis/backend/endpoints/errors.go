package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
)

// APIError is returned when the backend replied with a non-2xx status.
type APIError struct {
	Status  int
	Code    any
	Message string
	Body    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = strings.TrimSpace(e.Body)
	}
	return fmt.Sprintf("api error: status=%d code=%v message=%s", e.Status, e.Code, msg)
}

func ParseAPIError(status int, body []byte) *APIError {
	out := &APIError{Status: status, Body: string(body)}

	var m map[string]any
	if json.Unmarshal(body, &m) == nil {
		if v, ok := m["code"]; ok {
			out.Code = v
		} else if v, ok := m["error"]; ok {
			out.Code = v
		}
		if v, ok := m["message"].(string); ok {
			out.Message = v
		}
	}
	return out
}

// NetworkError is returned when no response came back: dns, refused connection, timeout.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Timeout() bool {
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// HasResponse reports whether err carries a backend response.
func HasResponse(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}

// StatusCode returns the backend status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status, true
	}
	return 0, false
}

// IsNetwork reports whether err means no response was received.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
