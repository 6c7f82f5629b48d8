package pages

// Metadata describes the document rather than its content. The layout renders it into
// the document head.
type Metadata struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// DefaultMetadata is the metadata every page of the showcase declares.
func DefaultMetadata() Metadata {
	return Metadata{
		Title:       "Next.js Routing Showcase",
		Description: "A comprehensive showcase of all Next.js 16 App Router routing patterns",
	}
}

// WithDefaults fills empty fields from DefaultMetadata.
func (m Metadata) WithDefaults() Metadata {
	def := DefaultMetadata()
	if m.Title == "" {
		m.Title = def.Title
	}
	if m.Description == "" {
		m.Description = def.Description
	}
	return m
}
