package wiz

import "net/http"

// Method is the closed set of HTTP methods a Route can match. There is no
// wildcard; a request with any other method simply never matches a route.
type Method string

const (
	MethodGet     Method = http.MethodGet
	MethodPut     Method = http.MethodPut
	MethodPost    Method = http.MethodPost
	MethodDelete  Method = http.MethodDelete
	MethodHead    Method = http.MethodHead
	MethodInfo    Method = "INFO"
	MethodOptions Method = http.MethodOptions
)

// Handler produces exactly one response for the exchange wrapped by the
// Context. Handlers are single-shot: dispatch never invokes a second handler
// for the same exchange.
type Handler func(*Context)

// Route binds a method and a path pattern to a handler. The pattern is an
// opaque string interpreted by the host router's matcher; this package does
// not compile or validate it.
type Route struct {
	Method  Method
	Pattern string
	Handler Handler
}

// NewRoute constructs a Route for an arbitrary method.
func NewRoute(method Method, pattern string, h Handler) Route {
	return Route{Method: method, Pattern: pattern, Handler: h}
}

// Get constructs a GET route.
func Get(pattern string, h Handler) Route { return NewRoute(MethodGet, pattern, h) }

// Put constructs a PUT route.
func Put(pattern string, h Handler) Route { return NewRoute(MethodPut, pattern, h) }

// Post constructs a POST route.
func Post(pattern string, h Handler) Route { return NewRoute(MethodPost, pattern, h) }

// Delete constructs a DELETE route.
func Delete(pattern string, h Handler) Route { return NewRoute(MethodDelete, pattern, h) }

// Head constructs a HEAD route.
func Head(pattern string, h Handler) Route { return NewRoute(MethodHead, pattern, h) }

// Info constructs an INFO route.
func Info(pattern string, h Handler) Route { return NewRoute(MethodInfo, pattern, h) }

// Options constructs an OPTIONS route.
func Options(pattern string, h Handler) Route { return NewRoute(MethodOptions, pattern, h) }
