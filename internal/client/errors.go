package client

import (
	"encoding/json"
	"fmt"
)

// StatusError is returned when the backend answered with a non-2xx status.
type StatusError struct {
	StatusCode int
	Path       string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: http %d: %s", e.Path, e.StatusCode, string(e.Body))
}

// ServerMessage returns the "error" field of a JSON error body, if any.
func (e *StatusError) ServerMessage() string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &body); err != nil {
		return ""
	}
	return body.Error
}
