// file: internal/builder/resource.go
package builder

import "github.com/mcpcore/mcp/internal/mcptype"

// ResourceBuilder constructs a mcptype.Resource. Name and URI are required.
type ResourceBuilder struct {
	used
	name        string
	title       string
	uri         string
	description string
	mimeType    string
	size        *int64
	icons       []mcptype.Icon
	annotations *mcptype.Annotations
}

// NewResourceBuilder starts building a Resource.
func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{}
}

// WithName sets the resource's required name.
func (b *ResourceBuilder) WithName(name string) *ResourceBuilder {
	b.name = name
	return b
}

// WithTitle sets an optional human-readable title.
func (b *ResourceBuilder) WithTitle(title string) *ResourceBuilder {
	b.title = title
	return b
}

// WithURI sets the resource's required URI.
func (b *ResourceBuilder) WithURI(uri string) *ResourceBuilder {
	b.uri = uri
	return b
}

// WithDescription sets an optional description.
func (b *ResourceBuilder) WithDescription(description string) *ResourceBuilder {
	b.description = description
	return b
}

// WithMimeType sets an optional MIME type.
func (b *ResourceBuilder) WithMimeType(mimeType string) *ResourceBuilder {
	b.mimeType = mimeType
	return b
}

// WithSize sets an optional known size in bytes.
func (b *ResourceBuilder) WithSize(size int64) *ResourceBuilder {
	b.size = &size
	return b
}

// WithIcon appends an icon.
func (b *ResourceBuilder) WithIcon(icon mcptype.Icon) *ResourceBuilder {
	b.icons = append(b.icons, icon)
	return b
}

// WithAnnotations sets optional audience/priority hints, validated via
// mcptype.NewAnnotations.
func (b *ResourceBuilder) WithAnnotations(audience []mcptype.Role, priority *float64, lastModified string) (*ResourceBuilder, error) {
	annotations, err := mcptype.NewAnnotations(audience, priority, lastModified)
	if err != nil {
		return b, err
	}
	b.annotations = &annotations
	return b, nil
}

// Build validates required fields and returns the constructed Resource.
func (b *ResourceBuilder) Build() (mcptype.Resource, error) {
	if err := b.checkUnused("ResourceBuilder"); err != nil {
		return mcptype.Resource{}, err
	}
	b.markUsed()

	if b.name == "" {
		return mcptype.Resource{}, missingField("ResourceBuilder", "name", "WithName")
	}
	if b.uri == "" {
		return mcptype.Resource{}, missingField("ResourceBuilder", "uri", "WithURI")
	}

	return mcptype.Resource{
		Name:        b.name,
		Title:       b.title,
		URI:         b.uri,
		Description: b.description,
		MimeType:    b.mimeType,
		Size:        b.size,
		Icons:       append([]mcptype.Icon(nil), b.icons...),
		Annotations: b.annotations,
	}, nil
}
