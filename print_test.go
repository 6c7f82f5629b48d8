package showcase

import (
	"strings"
	"testing"
)

func TestPrintRoutes(t *testing.T) {
	s := PrintRoutes("/", &nestedTop{})
	want := []string{
		"ALL    / nestedTop",
		"  ALL    /section (Section) section",
		"    ALL    /section/leaf (Leaf) leaf",
		"  GET    / (Home) index",
	}
	if got := strings.Split(strings.TrimSuffix(s, "\n"), "\n"); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("PrintRoutes() =\n%s\nwant\n%s", s, strings.Join(want, "\n"))
	}
}

func TestPrintRoutesError(t *testing.T) {
	if s := PrintRoutes("/", 1); !strings.HasPrefix(s, "error: ") {
		t.Errorf("expected error output, got %q", s)
	}
}
