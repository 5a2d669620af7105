package cookieheader

import (
	"fmt"
	"net/http"
)

// A HeaderField is one name/value pair of a header section.
type HeaderField struct {
	Name, Value string
}

// ResponseCookies accumulates the cookies to set on one response.
// Each cookie becomes its own Set-Cookie header, in the order it was added,
// without deduplication by name.
//
// The first invalid cookie, or the first cookie added after Seal,
// is dropped and its error is kept for Err.
type ResponseCookies struct {
	cookies []Cookie
	err     error
	sealed  bool

	// Set for builders of writers not wrapped by Handler:
	// cookies go straight into this header as they are added.
	through http.Header
}

// NewResponseCookies returns an empty builder.
func NewResponseCookies() *ResponseCookies {
	return &ResponseCookies{}
}

// Add appends c and returns rc, so calls can be chained:
//
//	ResponseFrom(w).Add(a).Add(b)
func (rc *ResponseCookies) Add(c Cookie) *ResponseCookies {
	if rc.sealed {
		rc.fail(fmt.Errorf("%w: %q", ErrHeadersSent, c.Name))
		return rc
	}
	if err := Validate(c); err != nil {
		rc.fail(err)
		return rc
	}
	if c.MaxAge != nil {
		c.MaxAge = Seconds(*c.MaxAge)
	}
	rc.cookies = append(rc.cookies, c)
	if rc.through != nil {
		AddSetCookie(rc.through, c)
	}
	return rc
}

func (rc *ResponseCookies) fail(err error) {
	if rc.err == nil {
		rc.err = err
	}
}

// Err returns the first error recorded by Add, if any.
func (rc *ResponseCookies) Err() error {
	return rc.err
}

// Len returns the number of cookies added so far.
func (rc *ResponseCookies) Len() int {
	return len(rc.cookies)
}

// Header returns one Set-Cookie field per cookie, in the order they were
// added. It does not reset rc and may be called more than once.
func (rc *ResponseCookies) Header() []HeaderField {
	if len(rc.cookies) == 0 {
		return nil
	}
	fields := make([]HeaderField, 0, len(rc.cookies))
	for _, c := range rc.cookies {
		fields = append(fields, HeaderField{Name: "Set-Cookie", Value: EncodeSetCookie(c)})
	}
	return fields
}

// Apply appends the fields returned by Header to h,
// keeping any Set-Cookie headers already in h.
func (rc *ResponseCookies) Apply(h http.Header) {
	for _, f := range rc.Header() {
		h.Add(f.Name, f.Value)
	}
}

// Seal marks the response headers as sent. Later calls to Add fail
// with ErrHeadersSent.
func (rc *ResponseCookies) Seal() {
	rc.sealed = true
}
