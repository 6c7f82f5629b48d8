package showcase

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func Test_renderBare(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		want   bool
	}{
		{name: "plain request", want: false},
		{name: "htmx request", header: map[string]string{"HX-Request": "true"}, want: true},
		{name: "boosted", header: map[string]string{"HX-Request": "true", "HX-Boosted": "true"}, want: false},
		{name: "history restore", header: map[string]string{"HX-Request": "true", "HX-History-Restore-Request": "true"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			for k, v := range tt.header {
				r.Header.Set(k, v)
			}
			if got := renderBare(r); got != tt.want {
				t.Errorf("renderBare() = %v, want %v", got, tt.want)
			}
		})
	}
}
