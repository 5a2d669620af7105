package cookieheader

import (
	"net/http"
	"strconv"
	"strings"
)

// Cookies parses all Cookie headers from h (RFC 6265 Section 5.4).
// See ParseCookie.
func Cookies(h http.Header) []Cookie {
	return ParseCookie(h["Cookie"])
}

// ParseCookie parses the given values of the Cookie header, in order.
// Each value may hold several name=value pairs separated by semicolons.
// Cookies are returned in the order they appear. A pair without "=" is
// a cookie with an empty value; a pair without a name is skipped.
// Duplicate names are all kept. Whitespace around a pair and before "="
// is dropped; the value is kept as sent, except that one pair of
// surrounding double quotes is removed.
//
// If no cookies are found, ParseCookie returns nil.
func ParseCookie(values []string) []Cookie {
	if len(values) == 0 {
		return nil
	}
	cookies := make([]Cookie, 0, estimatePairs(values))
	for _, v := range values {
		for v != "" {
			var pair string
			pair, v = consumePair(v)
			name, value := splitPair(pair)
			if name == "" {
				continue
			}
			cookies = append(cookies, Cookie{Name: name, Value: unquote(value)})
		}
	}
	if len(cookies) == 0 {
		return nil
	}
	return cookies
}

// AddCookie appends a Cookie header with the names and values of cookies
// to h, as a client would send them. Attributes are ignored.
// If cookies is empty, h is not changed.
func AddCookie(h http.Header, cookies ...Cookie) {
	if len(cookies) == 0 {
		return
	}
	b := &strings.Builder{}
	for i, c := range cookies {
		if i > 0 {
			write(b, "; ")
		}
		write(b, c.Name, "=", c.Value)
	}
	h.Add("Cookie", b.String())
}

// SetCookies parses all Set-Cookie headers from h (RFC 6265 Section 5.2),
// one cookie per header. Only the Max-Age, Secure, Path and Domain
// attributes are recognized (case-insensitively); others are ignored,
// as is a Max-Age that is not an integer. Values are trimmed and unquoted.
// A header without a cookie name is skipped.
func SetCookies(h http.Header) []Cookie {
	var cookies []Cookie
	for _, v := range h["Set-Cookie"] {
		var pair string
		pair, v = consumePair(v)
		name, value := splitPair(pair)
		if name == "" {
			continue
		}
		c := Cookie{Name: name, Value: unquote(trimWS(value))}
		for v != "" {
			pair, v = consumePair(v)
			attr, attrValue := splitPair(pair)
			attrValue = trimWS(attrValue)
			switch strings.ToLower(attr) {
			case "max-age":
				if n, err := strconv.Atoi(attrValue); err == nil {
					c.MaxAge = &n
				}
			case "secure":
				c.Secure = true
			case "path":
				c.Path = unquote(attrValue)
			case "domain":
				c.Domain = unquote(attrValue)
			}
		}
		cookies = append(cookies, c)
	}
	return cookies
}

// AddSetCookie appends a Set-Cookie header for c to h.
// There is no SetSetCookie, because each cookie needs its own header.
// See EncodeSetCookie.
func AddSetCookie(h http.Header, c Cookie) {
	h.Add("Set-Cookie", EncodeSetCookie(c))
}

// EncodeSetCookie returns the Set-Cookie header value for c:
//
//	name=value[; Max-Age=n][; Secure][; Path=p][; Domain=d]
//
// c is not validated; see Validate.
func EncodeSetCookie(c Cookie) string {
	b := &strings.Builder{}
	b.Grow(len(c.Name) + 1 + len(c.Value))
	write(b, c.Name, "=", c.Value)
	if c.MaxAge != nil {
		write(b, "; Max-Age=", strconv.Itoa(*c.MaxAge))
	}
	if c.Secure {
		write(b, "; Secure")
	}
	if c.Path != "" {
		write(b, "; Path=", c.Path)
	}
	if c.Domain != "" {
		write(b, "; Domain=", c.Domain)
	}
	return b.String()
}
