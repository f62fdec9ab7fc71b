package wiz

import (
	"net/http"
	"strconv"
)

// Content types applied by the Send* helpers. The core always emits UTF-8 and
// never negotiates another charset.
const (
	contentTypeText = "text/plain; charset=UTF-8"
	contentTypeHTML = "text/html; charset=UTF-8"
	contentTypeJSON = "application/json; charset=UTF-8"
)

// SetStatus records the response status code. It is applied on the first body
// write or Flush; until then later calls overwrite earlier ones.
func (c *Context) SetStatus(code int) *Context {
	c.status = code
	return c
}

// SetContentType sets the response Content-Type header.
func (c *Context) SetContentType(ct string) *Context {
	c.w.Header().Set("Content-Type", ct)
	return c
}

// SetHeader sets a response header, replacing any existing values.
func (c *Context) SetHeader(key, value string) *Context {
	c.w.Header().Set(key, value)
	return c
}

// AppendHeader adds a value to a response header, keeping existing values.
func (c *Context) AppendHeader(key, value string) *Context {
	c.w.Header().Add(key, value)
	return c
}

// RemoveHeader removes a response header.
func (c *Context) RemoveHeader(key string) *Context {
	c.w.Header().Del(key)
	return c
}

// Send writes body as the response. It sets Content-Length from the byte
// length, applies the pending status code, and writes the bytes. Send is the
// single low-level write primitive; SendText, SendHTML, and SendJSON compose
// it with a content type.
func (c *Context) Send(body []byte) *Context {
	c.w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	c.writeHeader()
	_, _ = c.w.Write(body)
	return c
}

// SendText writes body with content type "text/plain; charset=UTF-8".
func (c *Context) SendText(body string) *Context {
	return c.SetContentType(contentTypeText).Send([]byte(body))
}

// SendHTML writes body with content type "text/html; charset=UTF-8".
func (c *Context) SendHTML(body string) *Context {
	return c.SetContentType(contentTypeHTML).Send([]byte(body))
}

// SendJSON writes body with content type "application/json; charset=UTF-8".
// The body is written verbatim; marshaling is the caller's concern.
func (c *Context) SendJSON(body string) *Context {
	return c.SetContentType(contentTypeJSON).Send([]byte(body))
}

// Redirect responds with status 302 and a Location header pointing at url.
// No body is written. Other 3xx codes are not supported here.
func (c *Context) Redirect(url string) *Context {
	c.w.Header().Set("Location", url)
	c.status = http.StatusFound
	c.writeHeader()
	return c
}

// Flush finalizes the exchange: the pending status is applied if no write has
// happened yet, and buffered bytes are pushed to the transport when the
// engine supports it.
func (c *Context) Flush() *Context {
	c.writeHeader()
	if f, ok := c.w.(http.Flusher); ok {
		f.Flush()
	}
	return c
}

func (c *Context) writeHeader() {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true
	status := c.status
	if status == 0 {
		status = http.StatusOK
	}
	c.w.WriteHeader(status)
}
