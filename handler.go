package cookieheader

import (
	"context"
	"net/http"
)

type requestKey struct{}

// Options configures Handler. A nil *Options is valid.
type Options struct {
	// ErrorHandler is called instead of writing the response headers
	// when the response's ResponseCookies has recorded an error.
	// The default replies with 500 Internal Server Error.
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
}

// Handler returns a handler that parses the request's Cookie headers once,
// makes them available to next through FromRequest, and collects the cookies
// next adds through ResponseFrom. Those are written as Set-Cookie headers,
// after any set directly by next, just before the response headers are sent.
//
// The http.ResponseWriter passed to next always implements http.Flusher;
// Flush is a no-op if the underlying writer does not. Other optional
// interfaces, such as http.Hijacker, are not visible to type assertions,
// but http.ResponseController reaches them through Unwrap.
func Handler(next http.Handler, opts *Options) http.Handler {
	errorHandler := defaultErrorHandler
	if opts != nil && opts.ErrorHandler != nil {
		errorHandler = opts.ErrorHandler
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := NewRequestCookies(r.Header["Cookie"])
		r = r.WithContext(context.WithValue(r.Context(), requestKey{}, rc))
		cw := &cookieWriter{
			ResponseWriter: w,
			r:              r,
			cookies:        NewResponseCookies(),
			errorHandler:   errorHandler,
		}
		next.ServeHTTP(cw, r)
		cw.finalize()
	})
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, http.StatusText(http.StatusInternalServerError),
		http.StatusInternalServerError)
}

// FromRequest returns the cookies sent with r. Under Handler, they are
// parsed once per request; otherwise they are parsed on every call.
func FromRequest(r *http.Request) *RequestCookies {
	if rc, ok := r.Context().Value(requestKey{}).(*RequestCookies); ok {
		return rc
	}
	return NewRequestCookies(r.Header["Cookie"])
}

// ResponseFrom returns the cookie builder for the response written by w.
// Under Handler (possibly behind other wrappers that implement
// Unwrap() http.ResponseWriter), the same builder is returned on every call,
// and its cookies are written when the response headers are sent.
// Otherwise the returned builder adds each cookie to w.Header() right away,
// and it is up to the caller to add cookies before writing the response.
func ResponseFrom(w http.ResponseWriter) *ResponseCookies {
	for {
		switch ww := w.(type) {
		case *cookieWriter:
			return ww.cookies
		case interface{ Unwrap() http.ResponseWriter }:
			w = ww.Unwrap()
		default:
			return &ResponseCookies{through: w.Header()}
		}
	}
}

type cookieWriter struct {
	http.ResponseWriter
	r            *http.Request
	cookies      *ResponseCookies
	errorHandler func(http.ResponseWriter, *http.Request, error)

	finalized bool
	err       error
}

// finalize writes the accumulated cookies into the header, exactly once.
// It returns the builder's error, in which case the error handler
// has already produced the response.
func (cw *cookieWriter) finalize() error {
	if cw.finalized {
		return cw.err
	}
	cw.finalized = true
	defer cw.cookies.Seal()
	if err := cw.cookies.Err(); err != nil {
		cw.err = err
		cw.errorHandler(cw.ResponseWriter, cw.r, err)
		return err
	}
	cw.cookies.Apply(cw.ResponseWriter.Header())
	return nil
}

func (cw *cookieWriter) WriteHeader(code int) {
	if cw.finalize() != nil {
		return
	}
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cookieWriter) Write(p []byte) (int, error) {
	if err := cw.finalize(); err != nil {
		return 0, err
	}
	return cw.ResponseWriter.Write(p)
}

func (cw *cookieWriter) Flush() {
	if cw.finalize() != nil {
		return
	}
	if f, ok := cw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (cw *cookieWriter) Unwrap() http.ResponseWriter {
	return cw.ResponseWriter
}
