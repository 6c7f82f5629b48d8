// Package showcase mounts the routing showcase pages onto an HTTP router.
//
// Pages are plain structs. A field tagged with `route:"[METHOD] /path [Title]"` declares a
// child page; a page renders through its Page method, which returns a templ component.
// Every page is wrapped in the configured layout unless the request comes from HTMX, in
// which case the bare page is written so it can be swapped into an existing document.
//
//	sp := showcase.New(showcase.WithLayout(layout))
//	r := showcase.NewRouter(http.NewServeMux())
//	if err := sp.MountPages(r, pages.Pages{}, "/"); err != nil {
//		log.Fatal(err)
//	}
package showcase
