package wiz

import (
	"net/http"
	"time"
)

// defaultCookieMaxAge is the lifetime applied when the caller does not
// override MaxAge.
const defaultCookieMaxAge = 30 * 24 * time.Hour

// CookieOptions describes the attributes applied when a cookie is set.
// Construct it with Context.CookieDefaults and override fields as needed
// before passing it to SetCookie; MaxAge is a relative duration, not an
// absolute expiry.
//
// Essential marks cookies that are required for the site to function (for
// consent tracking); it carries no wire attribute of its own.
type CookieOptions struct {
	Domain    string
	Path      string
	MaxAge    time.Duration
	HTTPOnly  bool
	Essential bool
	SameSite  http.SameSite
	Secure    bool
}

// CookieDefaults derives cookie attributes from the current exchange:
// Domain is the request hostname, MaxAge is 30 days, Path is "/", and the
// cookie is neither Secure nor HTTPOnly.
func (c *Context) CookieDefaults() CookieOptions {
	return CookieOptions{
		Domain:   c.Hostname(),
		Path:     "/",
		MaxAge:   defaultCookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	}
}

// SetCookie adds a Set-Cookie header for name=value with the attributes
// materialized from opts.
func (c *Context) SetCookie(name, value string, opts CookieOptions) *Context {
	http.SetCookie(c.w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     opts.Path,
		Domain:   opts.Domain,
		MaxAge:   int(opts.MaxAge / time.Second),
		Secure:   opts.Secure,
		HttpOnly: opts.HTTPOnly,
		SameSite: opts.SameSite,
	})
	return c
}

// RemoveCookie instructs the client to drop the named cookie by sending an
// already-expired replacement.
func (c *Context) RemoveCookie(name string) *Context {
	http.SetCookie(c.w, &http.Cookie{
		Name:    name,
		Value:   "",
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	})
	return c
}
