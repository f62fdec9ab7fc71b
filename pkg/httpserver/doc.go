// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle hooks, and slog-based logging. It is the bootstrap
// boundary between a wiz configuration and the live listener.
//
// Run blocks until the supplied context is cancelled or the process receives
// an interrupt/TERM signal, then drains in-flight requests within the
// shutdown deadline:
//
//	srv := httpserver.New(
//		httpserver.WithAddr("localhost:8080"),
//		httpserver.WithShutdownTimeout(10*time.Second),
//		httpserver.WithStartHook(func(*slog.Logger) { fmt.Println("up") }),
//	)
//	if err := srv.Run(ctx, handler); err != nil {
//		// errors.Is(err, httpserver.ErrStart) for listen failures
//	}
//
// NewFromConfig builds a Server from an env-tagged Config for applications
// that configure the listener through the environment.
package httpserver
