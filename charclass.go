package cookieheader

// classify scans s to determine where it can appear in a cookie.
// nameOK means s can be written as a cookie-name: it has no separators
// that would end the name early when the Cookie header is parsed back.
// valueOK means s can be written as a cookie-value or attribute value
// without breaking the Set-Cookie field.
func classify(s string) (nameOK, valueOK bool) {
	nameOK, valueOK = s != "", true
	for i := 0; i < len(s); i++ {
		switch byteClass[s[i]] {
		case cControl, cDelim:
			return false, false
		case cEquals, cSpace:
			nameOK = false
		}
	}
	return
}

func isCookieName(s string) bool {
	nameOK, _ := classify(s)
	return nameOK
}

// isCookieValue also rejects s if parsing it back would change it:
// surrounding spaces are trimmed, and surrounding double quotes removed.
func isCookieValue(s string) bool {
	if _, valueOK := classify(s); !valueOK {
		return false
	}
	if s != trimWS(s) || s != unquote(s) {
		return false
	}
	return true
}

type charClass int

const (
	cOctet charClass = iota
	cEquals
	cSpace
	cDelim
	cControl
)

var byteClass [256]charClass

func init() {
	for i := 0; i <= 0xFF; i++ {
		b := byte(i)
		switch {
		case b < 0x20 || b == 0x7F:
			byteClass[b] = cControl
		case b == ';':
			byteClass[b] = cDelim
		case b == '=':
			byteClass[b] = cEquals
		case b == ' ':
			byteClass[b] = cSpace
		default:
			// Bytes above 0x7F pass through as sent.
			byteClass[b] = cOctet
		}
	}
}
