package cookieheader

// RequestCookies is a read-only view of the cookies sent with a request,
// in the order the client sent them.
// A nil *RequestCookies behaves as a view with no cookies.
type RequestCookies struct {
	cookies []Cookie
}

// NewRequestCookies parses the given values of the Cookie header
// (see ParseCookie) into a view.
func NewRequestCookies(values []string) *RequestCookies {
	return &RequestCookies{cookies: ParseCookie(values)}
}

// Value returns the value of the first cookie named name.
// Names are matched exactly, case-sensitively.
func (rc *RequestCookies) Value(name string) (value string, ok bool) {
	if rc == nil {
		return "", false
	}
	for _, c := range rc.cookies {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// All returns a copy of all cookies, or nil if there are none.
func (rc *RequestCookies) All() []Cookie {
	if rc == nil || len(rc.cookies) == 0 {
		return nil
	}
	cookies := make([]Cookie, len(rc.cookies))
	copy(cookies, rc.cookies)
	return cookies
}

// Len returns the number of cookies.
func (rc *RequestCookies) Len() int {
	if rc == nil {
		return 0
	}
	return len(rc.cookies)
}
