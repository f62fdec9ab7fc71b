package wiz

import (
	"maps"
	"net"
	"slices"
	"strconv"
)

// StaticConfig is the static-file policy of a server. ServeIndex only has an
// effect while Enabled is true; Enabled gates both file and index serving.
type StaticConfig struct {
	Enabled    bool
	ServeIndex bool
	Root       string
	Prefix     string
}

// StatusHandler pairs a response status code with the handler that should
// produce the response body for it.
type StatusHandler struct {
	Code    int
	Handler Handler
}

// Config is an immutable description of a server. Every With* setter returns
// a new value with exactly the targeted field changed, so configs compose as
// a pipeline and are safe to share across goroutines without locking.
//
// Two setters deviate from plain replacement by design: WithStatusHandlers
// merges into the existing mapping, and WithRoutes replaces the whole route
// list.
type Config struct {
	name           string
	host           string
	port           int
	serverHeader   bool
	static         StaticConfig
	compress       bool
	routes         []Route
	statusHandlers map[int]Handler
}

// New returns the default configuration: "Wiz" on localhost:8080 with a
// single catch-all GET "/" welcome route. The route table is never empty at
// construction time.
func New() Config {
	return Config{
		name:   "Wiz",
		host:   "localhost",
		port:   8080,
		routes: defaultRoutes(),
	}
}

func defaultRoutes() []Route {
	return []Route{Get("/", Welcome)}
}

// WithName sets the server name shown in the startup banner.
func (c Config) WithName(name string) Config {
	c.name = name
	return c
}

// WithHost sets the bind host.
func (c Config) WithHost(host string) Config {
	c.host = host
	return c
}

// WithPort sets the bind port.
func (c Config) WithPort(port int) Config {
	c.port = port
	return c
}

// WithServerHeader toggles the "Server: wiz" response header.
func (c Config) WithServerHeader(enabled bool) Config {
	c.serverHeader = enabled
	return c
}

// WithStaticFiles toggles static-file serving.
func (c Config) WithStaticFiles(enabled bool) Config {
	c.static.Enabled = enabled
	return c
}

// WithStaticIndex toggles serving index.html for directory paths. It has no
// effect unless static-file serving is enabled.
func (c Config) WithStaticIndex(serve bool) Config {
	c.static.ServeIndex = serve
	return c
}

// WithStaticRoot sets the directory static files are served from.
func (c Config) WithStaticRoot(dir string) Config {
	c.static.Root = dir
	return c
}

// WithStaticPrefix sets the request-path prefix static files are served
// beneath.
func (c Config) WithStaticPrefix(prefix string) Config {
	c.static.Prefix = prefix
	return c
}

// WithCompression toggles response compression.
func (c Config) WithCompression(enabled bool) Config {
	c.compress = enabled
	return c
}

// WithRoutes replaces the route table. Order is preserved and duplicates are
// kept as-is; dispatch resolves them first-match-wins.
func (c Config) WithRoutes(routes ...Route) Config {
	c.routes = slices.Clone(routes)
	return c
}

// WithStatusHandlers folds the given pairs into the status-handler mapping.
// Later entries overwrite earlier ones sharing a code, within one call and
// across calls; codes not mentioned keep their previous handler.
func (c Config) WithStatusHandlers(handlers ...StatusHandler) Config {
	merged := make(map[int]Handler, len(c.statusHandlers)+len(handlers))
	maps.Copy(merged, c.statusHandlers)
	for _, sh := range handlers {
		merged[sh.Code] = sh.Handler
	}
	c.statusHandlers = merged
	return c
}

// Name returns the server name.
func (c Config) Name() string { return c.name }

// Host returns the bind host.
func (c Config) Host() string { return c.host }

// Port returns the bind port.
func (c Config) Port() int { return c.port }

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.host, strconv.Itoa(c.port))
}

// ServerHeader reports whether responses carry the "Server: wiz" header.
func (c Config) ServerHeader() bool { return c.serverHeader }

// Static returns the static-file policy.
func (c Config) Static() StaticConfig { return c.static }

// Compression reports whether response compression is enabled.
func (c Config) Compression() bool { return c.compress }

// Routes returns the route table in registration order.
func (c Config) Routes() []Route { return slices.Clone(c.routes) }

// StatusHandler returns the handler mapped to the given status code.
func (c Config) StatusHandler(code int) (Handler, bool) {
	h, ok := c.statusHandlers[code]
	return h, ok
}
