package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	Heading     = "Next.js Routing Showcase"
	Description = "A comprehensive demonstration of all Next.js 16 App Router routing patterns."
)

// HomePage is the content of the site root.
func HomePage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<main class="min-h-screen p-8">`+
			`<h1 class="text-4xl font-bold mb-4">`+templ.EscapeString(Heading)+`</h1>`+
			`<p class="text-lg text-gray-600 dark:text-gray-400">`+templ.EscapeString(Description)+`</p>`+
			`</main>`)
		return err
	})
}
