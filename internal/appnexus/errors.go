package appnexus

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const errorIDNoAuth = "NOAUTH"

// Error is a failure reported by the AppNexus API in its response envelope.
type Error struct {
	StatusCode  int
	ID          string
	Message     string
	Description string
}

func (e *Error) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("appnexus %s (status %d): %s", e.ID, e.StatusCode, e.Detail())
	}
	return fmt.Sprintf("appnexus (status %d): %s", e.StatusCode, e.Detail())
}

// Detail is the human-readable part of the envelope.
func (e *Error) Detail() string {
	msg := strings.TrimSpace(e.Message)
	desc := strings.TrimSpace(e.Description)

	switch {
	case msg != "" && desc != "" && desc != msg:
		return msg + ": " + desc
	case msg != "":
		return msg
	case desc != "":
		return desc
	default:
		return http.StatusText(e.StatusCode)
	}
}

// DecodeMessage turns err into the message recorded in the job log. Remote
// errors yield the decoded envelope text.
func DecodeMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail()
	}
	return err.Error()
}

func isNoAuth(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.ID == errorIDNoAuth || apiErr.StatusCode == http.StatusUnauthorized
}

// retryable reports whether a failed call may be sent again: transport
// failures and server-side errors only.
func retryable(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	return err != nil
}
