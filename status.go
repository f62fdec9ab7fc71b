package wiz

import "net/http"

// statusInterceptor substitutes a configured handler for responses that start
// with a mapped non-200 status code. The mapping keys on the status code
// alone, whatever its class; it is meant for error pages (404, 500), and a
// caller who maps a redirect or other non-error code gets that substituted
// too. Substitution happens only on the first WriteHeader and only before any
// body byte: a producer that has started writing is never pre-empted. Body
// writes issued by the original producer after a substitution are discarded.
func statusInterceptor(handlers map[int]Handler, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&statusWriter{ResponseWriter: w, r: r, handlers: handlers}, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	r        *http.Request
	handlers map[int]Handler

	started     bool
	substituted bool
}

func (w *statusWriter) WriteHeader(code int) {
	if w.substituted {
		return
	}
	if !w.started && code != http.StatusOK {
		if h, ok := w.handlers[code]; ok {
			w.substituted = true
			c := NewContext(w.ResponseWriter, w.r)
			c.status = code
			h(c)
			return
		}
	}
	w.started = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.substituted {
		// Pretend the bytes were accepted so the original producer
		// completes without transport errors.
		return len(b), nil
	}
	w.started = true
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Flush() {
	if w.substituted {
		return
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
