package wiz

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/wiz/pkg/clientip"
)

// Context wraps one request/response exchange. It embeds the request's
// context.Context and exposes a read surface over the request plus a chainable
// write surface over the response, without leaking the engine's native types
// into handler signatures.
//
// Read accessors report absence as (zero value, false) instead of returning
// errors; a value that is blank after trimming is treated the same as a
// missing one. All side effects are confined to the wrapped exchange.
type Context struct {
	w http.ResponseWriter
	r *http.Request

	status      int
	wroteHeader bool
}

// NewContext wraps an exchange. Handlers registered through a Config receive
// their Context from dispatch; NewContext exists for tests and for mounting
// wiz handlers on foreign routers.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r}
}

// Request returns the underlying request.
func (c *Context) Request() *http.Request { return c.r }

// ResponseWriter returns the underlying response writer.
func (c *Context) ResponseWriter() http.ResponseWriter { return c.w }

// Deadline implements context.Context via the request's context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done implements context.Context via the request's context.
func (c *Context) Done() <-chan struct{} { return c.r.Context().Done() }

// Err implements context.Context via the request's context.
func (c *Context) Err() error { return c.r.Context().Err() }

// Value implements context.Context via the request's context.
func (c *Context) Value(key any) any { return c.r.Context().Value(key) }

var _ context.Context = (*Context)(nil)

// Method returns the request method.
func (c *Context) Method() string { return c.r.Method }

// Scheme returns "https" when the exchange arrived over TLS, "http" otherwise.
func (c *Context) Scheme() string {
	if c.r.TLS != nil {
		return "https"
	}
	return "http"
}

// Host returns the request host, including the port when the client sent one.
func (c *Context) Host() string { return c.r.Host }

// Hostname returns the request host without the port. Bracketed IPv6 hosts
// are unwrapped.
func (c *Context) Hostname() string {
	host, _, err := net.SplitHostPort(c.r.Host)
	if err != nil {
		return strings.Trim(c.r.Host, "[]")
	}
	return host
}

// Port returns the port the client addressed. It reports false when the
// request carried no explicit port.
func (c *Context) Port() (int, bool) {
	_, portStr, err := net.SplitHostPort(c.r.Host)
	if err != nil || portStr == "" {
		return 0, false
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, false
	}
	return port, true
}

// Path returns the request path. An empty path normalizes to "/".
func (c *Context) Path() string {
	if c.r.URL.Path == "" {
		return "/"
	}
	return c.r.URL.Path
}

// RawQuery returns the query string as sent, without the leading "?".
func (c *Context) RawQuery() string { return c.r.URL.RawQuery }

// URL returns the path and query ("/spell?level=3").
func (c *Context) URL() string {
	if q := c.r.URL.RawQuery; q != "" {
		return c.Path() + "?" + q
	}
	return c.Path()
}

// EncodedURL returns the percent-encoded form of URL.
func (c *Context) EncodedURL() string {
	p := c.r.URL.EscapedPath()
	if p == "" {
		p = "/"
	}
	if q := c.r.URL.RawQuery; q != "" {
		return p + "?" + q
	}
	return p
}

// Origin returns scheme://host.
func (c *Context) Origin() string { return c.Scheme() + "://" + c.r.Host }

// Href returns the full request URL: origin plus path and query.
func (c *Context) Href() string { return c.Origin() + c.URL() }

// Header returns the named request header. It reports false when the header
// is missing or blank after trimming.
func (c *Context) Header(key string) (string, bool) {
	return present(c.r.Header.Get(key))
}

// Cookie returns the value of the named request cookie. It reports false when
// the cookie is missing or its value is blank.
func (c *Context) Cookie(name string) (string, bool) {
	cookie, err := c.r.Cookie(name)
	if err != nil {
		return "", false
	}
	return present(cookie.Value)
}

// Query returns the first non-blank value of the named query parameter.
func (c *Context) Query(key string) (string, bool) {
	for _, v := range c.r.URL.Query()[key] {
		if strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}

// QueryAll returns every value of the named query parameter. It reports false
// when the parameter is missing or all of its values are blank.
func (c *Context) QueryAll(key string) ([]string, bool) {
	values := c.r.URL.Query()[key]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return values, true
		}
	}
	return nil, false
}

// Param returns the named route parameter resolved by the router's matcher.
func (c *Context) Param(key string) (string, bool) {
	return present(chi.URLParam(c.r, key))
}

// ContentType returns the request Content-Type header.
func (c *Context) ContentType() (string, bool) {
	return present(c.r.Header.Get("Content-Type"))
}

// RemoteIP returns the peer's IP address, honoring common proxy headers.
func (c *Context) RemoteIP() string { return clientip.FromRequest(c.r) }

// Body reads the request body to completion and returns it as text. It blocks
// until the engine signals end-of-body; read faults are returned as-is.
func (c *Context) Body() (string, error) {
	b, err := io.ReadAll(c.r.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// present collapses missing and blank-after-trim values into one absence case.
func present(s string) (string, bool) {
	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
