package cookieheader

import (
	"math/rand"
	"net/http"
	"reflect"
	"testing"
)

func checkParse(t *testing.T, header http.Header, expected, actual interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("parsing: %#v\nexpected: %#v\nactual:   %#v",
			header, expected, actual)
	}
}

func checkGenerate(t *testing.T, input interface{}, expected, actual interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("generating: %#v\nexpected: %#v\nactual:   %#v",
			input, expected, actual)
	}
}

func checkFuzz(
	t *testing.T,
	name string,
	parseFunc func(http.Header) []Cookie,
	generateFunc func(http.Header, []Cookie),
) {
	// Simplistic fuzz testing: On any input, the parse function must not panic,
	// and the generate function must not panic on the result of the parse.
	t.Helper()
	for i := 0; i < 100; i++ {
		t.Run("", func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(i)))
			header := http.Header{}
			for i := 0; i < 1+r.Intn(3); i++ {
				b := make([]byte, r.Intn(64))
				for j := range b {
					// Biased towards punctuation, to trigger more parser states.
					const chars = "\x00 \t,;=-\"\\abcdefghijklmnopqrstuvwxyz0123456789"
					b[j] = chars[r.Intn(len(chars))]
				}
				header.Add(name, string(b))
			}
			t.Logf("header: %#v", header)
			cookies := parseFunc(header)
			t.Logf("parsed: %#v", cookies)
			generateFunc(http.Header{}, cookies)
		})
	}
}

func checkRoundTrip(
	t *testing.T,
	generateFunc func(http.Header, []Cookie),
	parseFunc func(http.Header) []Cookie,
	generator func(*rand.Rand) []Cookie,
) {
	// Property-based test: Generating and then parsing valid cookies
	// should give the same cookies.
	t.Helper()
	for i := 0; i < 100; i++ {
		t.Run("", func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(i)))
			header := http.Header{}
			input := generator(r)
			generateFunc(header, input)
			t.Logf("generated: %#v", header)
			output := parseFunc(header)
			if !reflect.DeepEqual(input, output) {
				t.Errorf("round-trip failure:\ninput:  %#v\noutput: %#v",
					input, output)
			}
		})
	}
}

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	// RFC 7230 tchar, which is also a valid RFC 6265 cookie-name.
	tchar = "!#$%&'*+-.^_`|~" + digits + letters
	// RFC 6265 cookie-octet, minus DQUOTE so that values are not unquoted.
	cookieOctet = "!#$%&'()*+-./:<=>?@[]^_`{|}~" + digits + letters
)

func mkString(r *rand.Rand, alphabet string, min int) string {
	b := make([]byte, min+r.Intn(8))
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

func mkName(r *rand.Rand) string {
	return mkString(r, tchar, 1)
}

func mkValue(r *rand.Rand) string {
	return mkString(r, cookieOctet, 0)
}

func mkMaybeMaxAge(r *rand.Rand) *int {
	if r.Intn(2) == 0 {
		return nil
	}
	return Seconds(r.Intn(200000) - 100000)
}

func mkMaybePath(r *rand.Rand) string {
	if r.Intn(2) == 0 {
		return ""
	}
	return "/" + mkString(r, letters+digits+"/-._~", 0)
}

func mkMaybeDomain(r *rand.Rand) string {
	if r.Intn(2) == 0 {
		return ""
	}
	return mkString(r, "abcdefghijklmnopqrstuvwxyz", 1) + ".example"
}

// mkPairs returns between 0 and 3 cookies with names and values only,
// nil if 0.
func mkPairs(r *rand.Rand) []Cookie {
	var cookies []Cookie
	for i := r.Intn(4); i > 0; i-- {
		cookies = append(cookies, Cookie{Name: mkName(r), Value: mkValue(r)})
	}
	return cookies
}

// mkSetCookies is like mkPairs, but cookies also get random attributes.
func mkSetCookies(r *rand.Rand) []Cookie {
	cookies := mkPairs(r)
	for i := range cookies {
		cookies[i].MaxAge = mkMaybeMaxAge(r)
		cookies[i].Secure = r.Intn(2) == 0
		cookies[i].Path = mkMaybePath(r)
		cookies[i].Domain = mkMaybeDomain(r)
	}
	return cookies
}
