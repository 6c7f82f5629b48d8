package pages

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/jackielii/showcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestHomePage(t *testing.T) {
	first := render(t, HomePage())
	assert.Contains(t, first, "<h1 class=\"text-4xl font-bold mb-4\">Next.js Routing Showcase</h1>")
	assert.Contains(t, first, Description)
	assert.True(t, strings.HasPrefix(first, "<main"))
	for range 3 {
		assert.Equal(t, first, render(t, HomePage()))
	}
}

func TestRootLayout(t *testing.T) {
	const child = `<p id="child">content</p>`
	out := render(t, RootLayout(DefaultMetadata(), text(child)))

	assert.Equal(t, 1, strings.Count(out, child))
	assert.Equal(t, 1, strings.Count(out, "<html"))
	assert.True(t, strings.HasSuffix(out, "<body>"+child+"</body></html>"))
	assert.Contains(t, out, `<html lang="en">`)
	assert.Contains(t, out, "<title>Next.js Routing Showcase</title>")
	assert.Contains(t, out, `<meta name="description" content="A comprehensive showcase of all Next.js 16 App Router routing patterns">`)
	assert.Contains(t, out, `href="`+StylesheetPath+`"`)

	assert.Equal(t, out, render(t, RootLayout(DefaultMetadata(), text(child))))
}

func TestRootLayoutMetadata(t *testing.T) {
	tests := []struct {
		name      string
		meta      Metadata
		wantTitle string
		wantDesc  string
	}{
		{name: "zero value uses defaults", meta: Metadata{}, wantTitle: "<title>Next.js Routing Showcase</title>",
			wantDesc: `content="A comprehensive showcase of all Next.js 16 App Router routing patterns"`},
		{name: "override", meta: Metadata{Title: "Other", Description: "Desc"}, wantTitle: "<title>Other</title>",
			wantDesc: `content="Desc"`},
		{name: "escaped", meta: Metadata{Title: "<b>", Description: `a"b`}, wantTitle: "<title>&lt;b&gt;</title>",
			wantDesc: `content="a&#34;b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, RootLayout(tt.meta, nil))
			assert.Contains(t, out, tt.wantTitle)
			assert.Contains(t, out, tt.wantDesc)
			assert.Contains(t, out, "<body></body>")
		})
	}
}

func TestDefaultMetadata(t *testing.T) {
	m := DefaultMetadata()
	assert.NotEmpty(t, m.Title)
	assert.NotEmpty(t, m.Description)
	assert.Equal(t, m, Metadata{}.WithDefaults())
	assert.Equal(t, m, DefaultMetadata())
}

func TestStatic(t *testing.T) {
	b, err := fs.ReadFile(Static(), "globals.css")
	require.NoError(t, err)
	assert.Contains(t, string(b), ".text-4xl")
}

func TestMountedPages(t *testing.T) {
	r := showcase.NewRouter(http.NewServeMux())
	sp := showcase.New(showcase.WithLayout(Layout(DefaultMetadata())))
	require.NoError(t, sp.MountPages(r, Pages{}, "/"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	want := render(t, RootLayout(DefaultMetadata(), HomePage()))
	assert.Equal(t, want, rec.Body.String())

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("HX-Request", "true")
	r.ServeHTTP(rec, req)
	assert.Equal(t, render(t, HomePage()), rec.Body.String())
}
