package showcase

import (
	"fmt"
	"strings"
)

// PrintRoutes renders the page tree mounted at route, one page per line, indented by
// depth. Pages that fail to parse are reported in the output instead.
func PrintRoutes(route string, page any) string {
	root, err := parsePageTree(route, "", page)
	if err != nil {
		return fmt.Sprintf("error: %v\n", err)
	}
	var sb strings.Builder
	printNode(&sb, root, 0)
	return sb.String()
}

func printNode(sb *strings.Builder, pn *PageNode, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(sb, "%-6s %s", pn.Method, pn.FullRoute())
	if pn.Title != "" {
		fmt.Fprintf(sb, " (%s)", pn.Title)
	}
	sb.WriteString(" " + pn.Name + "\n")
	for _, child := range pn.Children {
		printNode(sb, child, depth+1)
	}
}
