// Package flash carries a one-time notice across the redirect that follows a
// form post. The cookie holds only a kind and a catalog key, never visitor
// text.
package flash

import (
	"net/http"
	"strings"
)

// CookieName is the cookie carrying the pending notice.
const CookieName = "pf_flash"

// Kind selects the toast style.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice references one localized message.
type Notice struct {
	Kind Kind
	Key  string
}

// Success creates a success notice for key.
func Success(key string) Notice { return Notice{Kind: KindSuccess, Key: key} }

// Failure creates an error notice for key.
func Failure(key string) Notice { return Notice{Kind: KindError, Key: key} }

// String encodes n as the cookie value, "kind:key".
func (n Notice) String() string { return string(n.Kind) + ":" + n.Key }

// Parse decodes a cookie value written by Write.
func Parse(raw string) (Notice, bool) {
	kind, key, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return Notice{}, false
	}
	n := Notice{Kind: Kind(kind), Key: key}
	return n, n.valid()
}

func (n Notice) valid() bool {
	if n.Kind != KindSuccess && n.Kind != KindError {
		return false
	}
	if n.Key == "" || len(n.Key) > 64 {
		return false
	}
	for _, r := range n.Key {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '.' && r != '_' {
			return false
		}
	}
	return true
}

// Write stores n for the next page render. Invalid notices are dropped.
func Write(w http.ResponseWriter, r *http.Request, n Notice) {
	if w == nil || !n.valid() {
		return
	}
	http.SetCookie(w, cookie(r, n.String(), 0))
}

// ReadAndClear returns the pending notice, if any, and expires the cookie.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	c, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	if w != nil {
		http.SetCookie(w, cookie(r, "", -1))
	}
	return Parse(c.Value)
}

func cookie(r *http.Request, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	}
}

func isHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	return r.TLS != nil || strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")), "https")
}
