package showcase

import (
	"context"
	"fmt"
	"net/http"
	"reflect"

	"github.com/a-h/templ"
	"github.com/jackielii/ctxkey"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

// MiddlewareFunc wraps the handler of a single page. It receives the page node the
// handler belongs to.
type MiddlewareFunc = func(http.Handler, *PageNode) http.Handler

// LayoutFunc wraps a page component in a document shell.
type LayoutFunc = func(children templ.Component) templ.Component

var pageCtx = ctxkey.New[*PageNode]("showcase.page", nil)

// CurrentPage returns the page node whose handler is serving the request, or nil
// outside a mounted page.
func CurrentPage(ctx context.Context) *PageNode {
	return pageCtx.Value(ctx)
}

// StructPages mounts page trees onto a Router.
type StructPages struct {
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []MiddlewareFunc
	layout      LayoutFunc
	minifier    *minify.M
}

// New creates a StructPages configured by options.
func New(options ...func(*StructPages)) *StructPages {
	sp := &StructPages{onError: defaultErrorHandler}
	for _, opt := range options {
		opt(sp)
	}
	return sp
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("render page")
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// WithErrorHandler replaces the handler called when a page fails to render.
// Nothing has been written to the response when it runs.
func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) func(*StructPages) {
	return func(sp *StructPages) {
		sp.onError = onError
	}
}

// WithMiddlewares adds middlewares applied to every page, outside the page's own.
func WithMiddlewares(middlewares ...MiddlewareFunc) func(*StructPages) {
	return func(sp *StructPages) {
		sp.middlewares = append(sp.middlewares, middlewares...)
	}
}

// WithLayout sets the layout every full page render is wrapped in.
func WithLayout(layout LayoutFunc) func(*StructPages) {
	return func(sp *StructPages) {
		sp.layout = layout
	}
}

// WithMinify minifies rendered HTML before it is written.
func WithMinify() func(*StructPages) {
	return func(sp *StructPages) {
		m := minify.New()
		m.Add("text/html", &html.Minifier{KeepDocumentTags: true, KeepEndTags: true})
		sp.minifier = m
	}
}

// MountPages parses the page tree rooted at page and registers a handler for every page
// that renders something.
func (sp *StructPages) MountPages(router Router, page any, route string) error {
	root, err := parsePageTree(route, "", page)
	if err != nil {
		return fmt.Errorf("mount pages at %s: %w", route, err)
	}
	for node := range root.All() {
		if err := sp.registerPageItem(router, node); err != nil {
			return fmt.Errorf("mount pages at %s: %w", route, err)
		}
	}
	return nil
}

func (sp *StructPages) registerPageItem(router Router, page *PageNode) error {
	if page.Route == "" {
		return fmt.Errorf("page %s has an empty route", page.Name)
	}
	handler := sp.buildHandler(page)
	if handler == nil {
		return nil
	}
	// own middlewares innermost, then each ancestor's
	for node := page; node != nil; node = node.Parent {
		if node.Middlewares == nil {
			continue
		}
		res := callMethod(node.Value, node.Middlewares)
		middlewares, _ := res[0].Interface().([]MiddlewareFunc)
		for _, mw := range middlewares {
			handler = mw(handler, page)
		}
	}
	for _, mw := range sp.middlewares {
		handler = mw(handler, page)
	}
	handler = withPage(handler, page)
	fullRoute := page.FullRoute()
	log.Debug().Str("page", page.Name).Str("method", page.Method).Str("route", fullRoute).Msg("mount page")
	router.HandleMethod(page.Method, fullRoute, handler)
	return nil
}

func withPage(next http.Handler, page *PageNode) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(pageCtx.WithValue(r.Context(), page)))
	})
}

func (sp *StructPages) buildHandler(page *PageNode) http.Handler {
	if h := getHTTPHandler(page.Value); h != nil {
		return h
	}
	if page.Page == nil {
		return nil
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		comp, err := callComponentMethod(page)
		if err != nil {
			sp.onError(w, r, err)
			return
		}
		var out templ.Component = comp
		if sp.layout != nil && !renderBare(r) {
			out = sp.layout(out)
		}
		buf := getBuffer()
		defer releaseBuffer(buf)
		if err := out.Render(r.Context(), buf); err != nil {
			sp.onError(w, r, fmt.Errorf("render %s: %w", page.Name, err))
			return
		}
		body := buf.Bytes()
		if sp.minifier != nil {
			if minified, err := sp.minifier.Bytes("text/html", body); err == nil {
				body = minified
			} else {
				zerolog.Ctx(r.Context()).Warn().Err(err).Str("page", page.Name).Msg("minify page")
			}
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(body); err != nil {
			zerolog.Ctx(r.Context()).Debug().Err(err).Msg("write page")
		}
	})
}

func getHTTPHandler(v reflect.Value) http.Handler {
	if !v.IsValid() {
		return nil
	}
	if v.Type().Implements(handlerType) {
		return v.Interface().(http.Handler)
	}
	return nil
}
