// Package wiz provides a small declarative layer for building HTTP servers in Go.
//
// A server is described as an immutable Config value: bind address, static-file
// policy, compression, a route table, and per-status fallback handlers. Each
// setter returns a new Config, so a server definition reads as a left-to-right
// pipeline of pure transformations:
//
//	cfg := wiz.New().
//		WithRoutes(
//			wiz.Get("/", home),
//			wiz.Get("/spell/{name}", spell),
//			wiz.Post("/spell", castSpell),
//		).
//		WithPort(9000).
//		WithCompression(true)
//
//	if err := wiz.Run(context.Background(), cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Handlers receive a Context wrapping one request/response exchange. Reads
// report absence explicitly instead of returning errors, and writes chain:
//
//	func spell(c *wiz.Context) {
//		name, ok := c.Param("name")
//		if !ok {
//			c.SetStatus(http.StatusBadRequest).SendText("which spell?")
//			return
//		}
//		c.SendText("casting " + name)
//	}
//
// Dispatch follows a fixed precedence: static index files, then static files,
// then the route table in registration order (first match wins), then the
// built-in welcome page when the table is empty, and finally the engine's own
// fallback, optionally intercepted by a status handler registered with
// Config.WithStatusHandlers.
//
// The heavy lifting — listening, TLS, parsing, compression, path matching — is
// delegated to net/http and go-chi/chi. This package only decides who answers.
package wiz
