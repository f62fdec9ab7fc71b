package wiz

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/wiz/pkg/httpserver"
	"github.com/dmitrymomot/wiz/pkg/logger"
	"github.com/dmitrymomot/wiz/pkg/requestid"
)

// chi only routes methods it knows about; INFO is not in its default set.
func init() {
	chi.RegisterMethod(string(MethodInfo))
}

// routeKey identifies a (method, pattern) pair in the route table.
type routeKey struct {
	method  Method
	pattern string
}

// Build materializes a Config into the engine's handler chain: request-ID
// correlation, optional compression and Server header, status interception,
// static-file dispatch, and finally the route table registered against the
// router's method+path matcher.
//
// Duplicate (method, pattern) entries keep only the first registration, which
// preserves first-match-wins without the matcher rejecting the table.
func Build(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	if cfg.compress {
		r.Use(middleware.Compress(5))
	}
	if cfg.serverHeader {
		r.Use(serverHeader)
	}
	if len(cfg.statusHandlers) > 0 {
		r.Use(func(next http.Handler) http.Handler {
			return statusInterceptor(cfg.statusHandlers, next)
		})
	}
	if cfg.static.Enabled {
		r.Use(func(next http.Handler) http.Handler {
			return staticHandler(cfg.static, next)
		})
	}

	routes := cfg.routes
	if len(routes) == 0 {
		routes = defaultRoutes()
	}
	seen := make(map[routeKey]struct{}, len(routes))
	for _, rt := range routes {
		key := routeKey{method: rt.Method, pattern: rt.Pattern}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		r.Method(string(rt.Method), rt.Pattern, wrapHandler(rt.Handler))
	}

	return r
}

func wrapHandler(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(NewContext(w, r))
	}
}

func serverHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", "wiz")
		next.ServeHTTP(w, r)
	})
}

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	logger *slog.Logger
	server *httpserver.Server
}

// WithLogger supplies the logger used for operational messages, replacing the
// NewLogger default. The startup banner always goes to stdout.
func WithLogger(l *slog.Logger) RunOption {
	return func(rc *runConfig) { rc.logger = l }
}

// NewLogger builds the default server logger: structured slog output with the
// request ID injected into every record logged within a request. Extra
// options are applied on top.
func NewLogger(opts ...logger.Option) *slog.Logger {
	base := []logger.Option{
		logger.WithContextExtractors(requestid.LogExtractor()),
	}
	return logger.New(append(base, opts...)...)
}

// WithServer supplies a preconfigured httpserver.Server, overriding the one
// Run builds from the Config's address.
func WithServer(srv *httpserver.Server) RunOption {
	return func(rc *runConfig) { rc.server = srv }
}

// Run materializes cfg into a live server, prints the startup banner, and
// blocks until ctx is cancelled or the process receives an interrupt/TERM
// signal. A clean start and shutdown returns nil.
func Run(ctx context.Context, cfg Config, opts ...RunOption) error {
	rc := &runConfig{}
	for _, opt := range opts {
		opt(rc)
	}

	log := rc.logger
	if log == nil {
		log = NewLogger()
	}

	srv := rc.server
	if srv == nil {
		srv = httpserver.New(
			httpserver.WithAddr(cfg.Addr()),
			httpserver.WithLogger(log),
			httpserver.WithStartHook(func(*slog.Logger) {
				fmt.Println(banner(cfg))
			}),
		)
	}

	return srv.Run(ctx, Build(cfg))
}

// banner renders the startup line. Loopback bind hosts display as
// "localhost"; anything else is shown verbatim.
func banner(cfg Config) string {
	host := cfg.host
	if host == "localhost" || host == "127.0.0.1" {
		host = "localhost"
	}
	return fmt.Sprintf("🔮 %s listening on http://%s:%d", cfg.name, host, cfg.port)
}
