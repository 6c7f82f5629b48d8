// Package guard redirects requests for a reserved subtree of the site before they reach
// page routing.
package guard

import (
	"fmt"
	"net/http"

	"github.com/angelofallars/htmx-go"
	"github.com/rs/zerolog"
)

// DefaultPattern is the subtree guarded when none is configured.
const DefaultPattern = "/admin/:path*"

// Action is what the guard does with a request.
type Action int

const (
	// Continue lets the request through to routing unchanged.
	Continue Action = iota
	// Redirect sends the client to Decision.Target.
	Redirect
)

func (a Action) String() string {
	switch a {
	case Continue:
		return "continue"
	case Redirect:
		return "redirect"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Decision is the outcome of checking a single path.
type Decision struct {
	Action Action
	Target string
}

// Guard redirects every path matched by its Matcher to a fixed target.
type Guard struct {
	matcher    *Matcher
	target     string
	status     int
	onRedirect func(*http.Request)
}

// Option configures a Guard.
type Option func(*Guard)

// WithTarget sets the redirect target. Defaults to "/".
func WithTarget(target string) Option {
	return func(g *Guard) {
		g.target = target
	}
}

// WithStatus sets the redirect status code. Defaults to 307 Temporary Redirect.
func WithStatus(status int) Option {
	return func(g *Guard) {
		g.status = status
	}
}

// WithOnRedirect registers fn to be called for every redirected request.
func WithOnRedirect(fn func(*http.Request)) Option {
	return func(g *Guard) {
		g.onRedirect = fn
	}
}

// New creates a Guard for pattern.
func New(pattern string, opts ...Option) (*Guard, error) {
	m, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	g := &Guard{matcher: m, target: "/", status: http.StatusTemporaryRedirect}
	for _, opt := range opts {
		opt(g)
	}
	if g.target == "" {
		return nil, fmt.Errorf("guard: empty redirect target for %s", pattern)
	}
	if g.status < 300 || g.status > 399 {
		return nil, fmt.Errorf("guard: status %d is not a redirect", g.status)
	}
	return g, nil
}

// Decide returns the decision for path. It has no side effects.
func (g *Guard) Decide(path string) Decision {
	if g.matcher.Match(path) {
		return Decision{Action: Redirect, Target: g.target}
	}
	return Decision{Action: Continue}
}

// Middleware runs the guard in front of next. HTMX requests are redirected with an
// HX-Redirect header, since the browser would otherwise follow a 3xx inside the XHR and
// swap the target page into the current one.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := g.Decide(r.URL.Path)
		if d.Action != Redirect {
			next.ServeHTTP(w, r)
			return
		}
		zerolog.Ctx(r.Context()).Debug().
			Str("path", r.URL.Path).
			Str("pattern", g.matcher.String()).
			Str("target", d.Target).
			Msg("guard redirect")
		if g.onRedirect != nil {
			g.onRedirect(r)
		}
		if htmx.IsHTMX(r) {
			if err := htmx.NewResponse().Redirect(d.Target).Write(w); err != nil {
				zerolog.Ctx(r.Context()).Error().Err(err).Msg("write htmx redirect")
			}
			return
		}
		http.Redirect(w, r, d.Target, g.status)
	})
}
