package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// StylesheetPath is where the embedded globals.css is served.
const StylesheetPath = "/static/globals.css"

// RootLayout wraps children in the document shell and writes meta into its head.
// Empty metadata fields fall back to DefaultMetadata.
func RootLayout(meta Metadata, children templ.Component) templ.Component {
	meta = meta.WithDefaults()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html lang="en"><head>`+
			`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(meta.Title)+`</title>`+
			`<meta name="description" content="`+templ.EscapeString(meta.Description)+`">`+
			`<link rel="stylesheet" href="`+StylesheetPath+`">`+
			`</head><body>`); err != nil {
			return err
		}
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// Layout returns a layout function bound to meta, for showcase.WithLayout.
func Layout(meta Metadata) func(templ.Component) templ.Component {
	return func(children templ.Component) templ.Component {
		return RootLayout(meta, children)
	}
}
