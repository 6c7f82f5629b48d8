package showcase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"runtime"
	"slices"
	"strings"
)

var (
	componentType  = reflect.TypeFor[component]()
	handlerType    = reflect.TypeFor[http.Handler]()
	middlewareType = reflect.TypeFor[[]MiddlewareFunc]()
)

func parsePageTree(route, fieldName string, page any) (*PageNode, error) {
	if page == nil {
		return nil, errors.New("page is nil")
	}
	st := reflect.TypeOf(page) // struct type
	pt := reflect.TypeOf(page) // pointer type
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	} else {
		pt = reflect.PointerTo(st)
	}
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("page %s is not a struct", st)
	}
	item := &PageNode{Value: reflect.ValueOf(page), Name: cmp.Or(fieldName, st.Name())}
	item.Method, item.Route, item.Title = parseTag(route)

	for i := range st.NumField() {
		field := st.Field(i)
		route, ok := field.Tag.Lookup("route")
		if !ok {
			continue
		}
		typ := field.Type
		if typ.Kind() == reflect.Ptr {
			typ = typ.Elem()
		}
		childItem, err := parsePageTree(route, field.Name, reflect.New(typ).Interface())
		if err != nil {
			return nil, err
		}
		childItem.Parent = item
		item.Children = append(item.Children, childItem)
	}

	for _, t := range []reflect.Type{st, pt} {
		for i := range t.NumMethod() {
			method := t.Method(i)
			if isPromotedMethod(&method) {
				continue
			}
			switch method.Name {
			case "Page":
				if !isComponent(&method) {
					return nil, fmt.Errorf("method %s must take no arguments and return a component",
						formatMethod(&method))
				}
				item.Page = &method
			case "Middlewares":
				if method.Type.NumIn() != 1 || method.Type.NumOut() != 1 || method.Type.Out(0) != middlewareType {
					return nil, fmt.Errorf("method %s must have signature func() []MiddlewareFunc",
						formatMethod(&method))
				}
				item.Middlewares = &method
			}
		}
	}

	return item, nil
}

// callMethod calls method with receiver value v, converting between value and pointer
// receivers as needed.
func callMethod(v reflect.Value, method *reflect.Method) []reflect.Value {
	receiver := method.Type.In(0)
	if receiver.Kind() == reflect.Ptr && v.Kind() != reflect.Ptr {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		v = p
	}
	if receiver.Kind() != reflect.Ptr && v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return method.Func.Call([]reflect.Value{v})
}

func callComponentMethod(pn *PageNode) (component, error) {
	results := callMethod(pn.Value, pn.Page)
	comp, ok := results[0].Interface().(component)
	if !ok || comp == nil {
		return nil, fmt.Errorf("method %s returned a nil component", formatMethod(pn.Page))
	}
	return comp, nil
}

func parseTag(route string) (method, path, title string) {
	method = methodAll
	parts := strings.Fields(route)
	if len(parts) == 0 {
		path = "/"
		return
	}
	if len(parts) == 1 {
		path = parts[0]
		return
	}
	method = strings.ToUpper(parts[0])
	if slices.Contains(validMethod, method) {
		path = parts[1]
		title = strings.Join(parts[2:], " ")
	} else {
		method = methodAll
		path = parts[0]
		title = strings.Join(parts[1:], " ")
	}
	return
}

const methodAll = "ALL"

var validMethod = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
	methodAll,
}

// component is satisfied by templ.Component.
type component interface {
	Render(context.Context, io.Writer) error
}

func isComponent(t *reflect.Method) bool {
	if t.Type.NumIn() != 1 || t.Type.NumOut() != 1 {
		return false
	}
	return t.Type.Out(0).Implements(componentType)
}

func isPromotedMethod(method *reflect.Method) bool {
	// Check if the method is promoted from an embedded type
	// https://github.com/golang/go/issues/73883
	wPC := method.Func.Pointer()
	wFunc := runtime.FuncForPC(wPC)
	wFile, wLine := wFunc.FileLine(wPC)
	return wFile == "<autogenerated>" && wLine == 1
}

func formatMethod(method *reflect.Method) string {
	if method == nil || method.Func == (reflect.Value{}) {
		return "<nil>"
	}
	return fmt.Sprintf("%s.%s", method.Type.In(0).String(), method.Name)
}
