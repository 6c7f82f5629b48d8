package showcase

import (
	"net/http"
	"strings"
)

// Router is an interface for registering HTTP routes.
// It provides a method for registering handlers for specific HTTP methods.
// This simplified interface allows showcase to work with different routing implementations,
// see the chirouter package for a chi based one.
type Router interface {
	HandleMethod(method, path string, handler http.Handler)
}

type stdRouter struct {
	router *http.ServeMux
}

// NewRouter creates a new router that wraps http.ServeMux.
// If router is nil, it uses http.DefaultServeMux.
//
// Page routes are exact matches: a route ending in "/" is registered with the {$} anchor
// so "/" does not swallow every unmatched path.
//
// Example:
//
//	mux := http.NewServeMux()
//	router := showcase.NewRouter(mux)
//	sp.MountPages(router, pages.Pages{}, "/")
func NewRouter(router *http.ServeMux) *stdRouter {
	if router == nil {
		router = http.DefaultServeMux
	}
	return &stdRouter{router: router}
}

func (r *stdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if strings.HasSuffix(pattern, "/") {
		pattern += "{$}"
	}
	if method != methodAll && method != "" {
		pattern = method + " " + pattern
	}
	r.router.Handle(pattern, handler)
}

func (r *stdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
