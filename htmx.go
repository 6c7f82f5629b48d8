package showcase

import (
	"net/http"

	"github.com/angelofallars/htmx-go"
)

// renderBare reports whether the page should be written without its layout.
// Boosted navigations and history restores replace the whole body, so they still
// need the full document.
func renderBare(r *http.Request) bool {
	return htmx.IsHTMX(r) && !htmx.IsBoosted(r) && !htmx.IsHistoryRestoreRequest(r)
}
