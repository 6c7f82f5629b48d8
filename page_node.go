package showcase

import (
	"fmt"
	"iter"
	"path"
	"reflect"
	"strings"
)

// PageNode is one page of a mounted page tree.
type PageNode struct {
	Name        string
	Title       string
	Method      string
	Route       string
	Value       reflect.Value
	Page        *reflect.Method
	Middlewares *reflect.Method
	Parent      *PageNode
	Children    []*PageNode
}

// FullRoute joins the routes of all ancestors with the node's own route.
func (pn *PageNode) FullRoute() string {
	if pn.Parent == nil {
		return pn.Route
	}
	full := path.Join(pn.Parent.FullRoute(), pn.Route)
	if strings.HasSuffix(pn.Route, "/") && !strings.HasSuffix(full, "/") {
		full += "/"
	}
	return full
}

// All iterates over the node and its descendants, depth first.
func (pn *PageNode) All() iter.Seq[*PageNode] {
	return func(yield func(*PageNode) bool) {
		walk(pn, yield)
	}
}

func walk(pn *PageNode, yield func(*PageNode) bool) bool {
	if !yield(pn) {
		return false
	}
	for _, child := range pn.Children {
		if !walk(child, yield) {
			return false
		}
	}
	return true
}

func (p PageNode) String() string {
	var sb strings.Builder
	sb.WriteString("PageNode{")
	sb.WriteString("\n  name: " + p.Name)
	sb.WriteString("\n  title: " + p.Title)
	sb.WriteString("\n  method: " + p.Method)
	sb.WriteString("\n  route: " + p.Route)
	sb.WriteString("\n  page: " + formatMethod(p.Page))
	sb.WriteString("\n  middlewares: " + formatMethod(p.Middlewares))
	for i, child := range p.Children {
		fmt.Fprintf(&sb, "\n  child %d:", i+1)
		childStr := strings.TrimRight(child.String(), "\n")
		for _, line := range strings.SplitAfter(childStr, "\n") {
			sb.WriteString("  " + line)
		}
	}
	sb.WriteString("\n}")
	return sb.String()
}
