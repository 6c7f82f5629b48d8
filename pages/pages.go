// Package pages holds the showcase's page tree, its root layout and static assets.
package pages

import (
	"embed"
	"io/fs"

	"github.com/a-h/templ"
)

// Pages is the root of the page tree, mounted at "/".
type Pages struct {
	home `route:"GET / Home"`
}

type home struct{}

func (home) Page() templ.Component { return HomePage() }

//go:embed static
var staticFS embed.FS

// Static returns the embedded assets, rooted so globals.css is at "globals.css".
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
