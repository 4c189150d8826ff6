package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoRows is returned by single-row reads that match nothing.
	ErrNoRows = errors.New("backend: no rows")
	// ErrMultipleRows is returned by single-row reads that match more than one row.
	ErrMultipleRows = errors.New("backend: multiple rows")
	// ErrInvalidIdentifier rejects table or column names before any I/O.
	ErrInvalidIdentifier = errors.New("backend: invalid identifier")
)

// Error is a failure reported by the remote backend.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != "" {
		return fmt.Sprintf("backend: %s (status %d, code %s)", msg, e.Status, e.Code)
	}
	return fmt.Sprintf("backend: %s (status %d)", msg, e.Status)
}

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoRows)
}
