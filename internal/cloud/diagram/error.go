package diagram

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ServerError is a diagram API rejection of a request
type ServerError struct {
	StatusCode int
	Message    string
}

func (se ServerError) Error() string {
	return se.Message
}

// HTTPStatus returns the status code of the rejected request
func (se ServerError) HTTPStatus() int {
	return se.StatusCode
}

// ErrUnauthenticated is returned when a request requiring a session is made without one
// No request is sent to the server in this case
type ErrUnauthenticated struct {
	Action string
}

func (err ErrUnauthenticated) Error() string {
	return fmt.Sprintf("must be logged in to %s diagrams", err.Action)
}

// DownloadError is returned when a diagram download fails for any reason
// other than a missing session
type DownloadError struct {
	Format string
	cause  error
}

func (err DownloadError) Error() string {
	return fmt.Sprintf("failed to download diagram in format %s", err.Format)
}

// Unwrap returns the underlying cause of the download failure
func (err DownloadError) Unwrap() error {
	return err.cause
}

// IsUnauthorized returns true when the error is a server rejection of the session token
func IsUnauthorized(err error) bool {
	var serverErr ServerError
	if !errors.As(err, &serverErr) {
		return false
	}
	return serverErr.StatusCode == http.StatusUnauthorized || serverErr.StatusCode == http.StatusForbidden
}

// parseResponseError reads the non-success *http.Response into a ServerError
// using the body's message field, or the fallback message if there is none
func parseResponseError(res *http.Response, fallback string) error {
	serverErr := ServerError{StatusCode: res.StatusCode, Message: fallback}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return serverErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(buf).Decode(&payload); err != nil {
		return serverErr
	}

	if payload.Message != "" {
		serverErr.Message = payload.Message
	}
	return serverErr
}
