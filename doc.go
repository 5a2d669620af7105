/*
Package cookieheader parses and generates the HTTP Cookie and Set-Cookie
headers (RFC 6265), and carries cookies between a net/http server
and its handlers.

Cookies parses every Cookie field in a request, in the order the fields
arrived and left to right within each field. It never errors: malformed
pairs are tolerated and parsed to some extent, or skipped. Do not assume
that names and values returned by Cookies conform to the grammar of the
protocol.

EncodeSetCookie and AddSetCookie produce one Set-Cookie field per cookie.
Attributes are written only when set, always in the order Max-Age, Secure,
Path, Domain. Names and values are written verbatim, without quoting or
escaping; use Validate (or ResponseCookies, which calls it) to reject
cookies that would produce a broken header.

Handler attaches a RequestCookies view and a ResponseCookies builder to
each request. Handlers reach them with FromRequest and ResponseFrom.
*/
package cookieheader
