package cookieheader

import "strings"

// consumePair returns the text of v up to the next semicolon, with
// surrounding whitespace trimmed, and the rest of v after that semicolon.
func consumePair(v string) (pair, newv string) {
	if i := strings.IndexByte(v, ';'); i >= 0 {
		pair, newv = v[:i], v[i+1:]
	} else {
		pair, newv = v, ""
	}
	return trimWS(pair), newv
}

// splitPair splits pair on its first "=". A pair without "=" is all name.
// The name is trimmed; the value is returned as is.
func splitPair(pair string) (name, value string) {
	name, value, _ = strings.Cut(pair, "=")
	return trimWS(name), value
}

func trimWS(s string) string {
	return strings.Trim(s, " \t")
}

// unquote strips one pair of double quotes around v
// (RFC 6265 Section 4.1.1 allows them around a cookie-value).
func unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}

// estimatePairs returns a rough upper bound on the number of pairs in vs.
func estimatePairs(vs []string) int {
	n := 0
	for _, v := range vs {
		n += 1 + strings.Count(v, ";")
	}
	return n
}

func write(b *strings.Builder, ss ...string) {
	for _, s := range ss {
		b.WriteString(s)
	}
}
