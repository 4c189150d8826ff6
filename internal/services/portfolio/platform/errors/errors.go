// Package errors classifies page failures. The site distinguishes a failed
// remote query from rejected visitor input, plus content that does not exist.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio/internal/backend"
)

// Kind is the failure class used to pick a response status.
type Kind uint8

const (
	KindInternal Kind = iota
	KindInvalid
	KindNotFound
	KindRemote
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid input"
	case KindNotFound:
		return "not found"
	case KindRemote:
		return "remote query failed"
	default:
		return "internal error"
	}
}

// Error attaches a kind and a catalog key to a cause.
type Error struct {
	Kind Kind
	Key  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Invalid reports visitor input the page rejected.
func Invalid(key string, cause error) error {
	return &Error{Kind: KindInvalid, Key: strings.TrimSpace(key), Err: cause}
}

// NotFound reports content that does not exist or is unpublished.
func NotFound(key string) error {
	return &Error{Kind: KindNotFound, Key: strings.TrimSpace(key)}
}

// Remote reports a failed backend call. A nil cause returns nil.
func Remote(key string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: KindRemote, Key: strings.TrimSpace(key), Err: cause}
}

// KindOf classifies err. Unwrapped backend errors are classified from their
// sentinel or remote status.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	if stderrors.Is(err, backend.ErrNoRows) {
		return KindNotFound
	}
	var remote *backend.Error
	if stderrors.As(err, &remote) && remote.Status >= http.StatusInternalServerError {
		return KindRemote
	}
	return KindInternal
}

// LocalizationKey returns the catalog key carried by err, if any.
func LocalizationKey(err error) string {
	var e *Error
	if !stderrors.As(err, &e) {
		return ""
	}
	return e.Key
}

// HTTPStatus maps err to a response status.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalid:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindRemote:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
