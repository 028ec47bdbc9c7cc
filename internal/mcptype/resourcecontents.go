// file: internal/mcptype/resourcecontents.go
package mcptype

// ResourceContents is the body of a resource, discriminated not by a "type"
// field but by which of "text"/"blob" is present — the one polymorphic
// family in the type model with a presence-based rather than field-based
// discriminator (§3, §4.2).
type ResourceContents interface {
	ResourceURI() string
}

// TextResourceContents holds textual resource content.
type TextResourceContents struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text"`
	Meta     Meta   `json:"_meta,omitempty"`
}

// ResourceURI implements ResourceContents.
func (c TextResourceContents) ResourceURI() string { return c.URI }

// BlobResourceContents holds base64-encoded binary resource content.
type BlobResourceContents struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Blob     string `json:"blob"`
	Meta     Meta   `json:"_meta,omitempty"`
}

// ResourceURI implements ResourceContents.
func (c BlobResourceContents) ResourceURI() string { return c.URI }

// UnknownResourceContents is the fallback when neither "text" nor "blob" is
// present. The core tolerates this so an unrecognized resource shape does
// not abort an otherwise-valid decode; see §4.2's tolerance policy, which
// draws the line at content blocks (fail hard) versus resource contents
// (carry the unknown shape through).
type UnknownResourceContents struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Meta     Meta   `json:"_meta,omitempty"`
}

// ResourceURI implements ResourceContents.
func (c UnknownResourceContents) ResourceURI() string { return c.URI }
