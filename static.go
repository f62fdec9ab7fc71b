package wiz

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const indexFile = "index.html"

// staticHandler serves files from cfg.Root for request paths beneath
// cfg.Prefix, falling through to next when no file answers. Directory paths
// are answered by their index document when cfg.ServeIndex is set. Unlike
// http.FileServer, no trailing-slash redirect is ever issued: a directory
// path without a trailing slash serves its index in place.
func staticHandler(cfg StaticConfig, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		rel, ok := staticPath(cfg.Prefix, r.URL.Path)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		target := filepath.Join(cfg.Root, filepath.FromSlash(rel))
		info, err := os.Stat(target)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		if info.IsDir() {
			if !cfg.ServeIndex {
				next.ServeHTTP(w, r)
				return
			}
			target = filepath.Join(target, indexFile)
			info, err = os.Stat(target)
			if err != nil || !info.Mode().IsRegular() {
				next.ServeHTTP(w, r)
				return
			}
		} else if !info.Mode().IsRegular() {
			next.ServeHTTP(w, r)
			return
		}

		serveFile(w, r, target, info)
	})
}

// staticPath maps a request path to a root-relative file path. It reports
// false when the path does not fall under prefix.
func staticPath(prefix, reqPath string) (string, bool) {
	if reqPath == "" {
		reqPath = "/"
	}
	if prefix != "" && prefix != "/" {
		rest, found := strings.CutPrefix(reqPath, prefix)
		// The prefix must end on a path-segment boundary: "/assetsx" is
		// not beneath "/assets".
		if !found || (rest != "" && rest[0] != '/') {
			return "", false
		}
		reqPath = rest
	}
	// Cleaning the rooted path strips any ".." segments before the path
	// touches the filesystem.
	return path.Clean("/" + reqPath), true
}

// serveFile writes the file's bytes, letting the engine determine the content
// type from the file name. http.ServeContent handles range and conditional
// requests but never redirects.
func serveFile(w http.ResponseWriter, r *http.Request, name string, info os.FileInfo) {
	f, err := os.Open(name)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer f.Close()
	http.ServeContent(w, r, filepath.Base(name), info.ModTime(), f)
}
