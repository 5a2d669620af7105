package cookieheader

import (
	"errors"
	"fmt"
)

// A Cookie is one name/value pair with optional Set-Cookie attributes
// (RFC 6265 Section 4.1). Cookies parsed from a request never carry
// attributes, because clients do not send them back.
type Cookie struct {
	Name  string
	Value string

	MaxAge *int   // nil if no Max-Age; zero and negative are written as is
	Secure bool
	Path   string // empty if no Path
	Domain string // empty if no Domain
}

// Seconds returns a pointer to n, for use as Cookie.MaxAge.
func Seconds(n int) *int {
	return &n
}

var (
	// ErrInvalidName is returned for a cookie whose name is empty or
	// contains "=", ";", a space or a control character.
	ErrInvalidName = errors.New("cookieheader: invalid cookie name")

	// ErrInvalidValue is returned for a cookie whose value, path or domain
	// contains ";" or a control character, begins or ends with a space,
	// or is wrapped in double quotes.
	ErrInvalidValue = errors.New("cookieheader: invalid cookie value")

	// ErrHeadersSent is recorded when a cookie is added to a response
	// whose headers have already been written.
	ErrHeadersSent = errors.New("cookieheader: cookie added after headers were sent")
)

// Validate reports whether c can be written to a Set-Cookie header
// without corrupting it, and read back from a Cookie header unchanged.
// Values that a parser would trim or unquote are rejected.
func Validate(c Cookie) error {
	if !isCookieName(c.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, c.Name)
	}
	if !isCookieValue(c.Value) {
		return fmt.Errorf("%w: %q", ErrInvalidValue, c.Value)
	}
	if !isCookieValue(c.Path) {
		return fmt.Errorf("%w: path %q", ErrInvalidValue, c.Path)
	}
	if !isCookieValue(c.Domain) {
		return fmt.Errorf("%w: domain %q", ErrInvalidValue, c.Domain)
	}
	return nil
}
