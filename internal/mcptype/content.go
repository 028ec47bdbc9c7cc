// file: internal/mcptype/content.go
package mcptype

import "encoding/json"

// Content is a content block attached to a prompt message or a tool call
// result. It is discriminated on the wire by its "type" field — one of the
// places in the type model (with Reference) where a polymorphic value does
// carry an explicit class discriminator (§4.2 rule 4). Every concrete Content type implements
// MarshalJSON to stamp that field on encode; codec.DecodeContent reads it
// back off on decode.
type Content interface {
	ContentType() string
}

// TextContent is plain text.
type TextContent struct {
	Text        string       `json:"text"`
	Annotations *Annotations `json:"annotations,omitempty"`
	Meta        Meta         `json:"_meta,omitempty"`
}

// ContentType implements Content.
func (TextContent) ContentType() string { return "text" }

// MarshalJSON stamps the "type" discriminator required on the wire.
func (c TextContent) MarshalJSON() ([]byte, error) {
	type alias TextContent
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: c.ContentType(), alias: alias(c)})
}

// NewTextContent builds a TextContent block.
func NewTextContent(text string, annotations *Annotations, meta Meta) TextContent {
	return TextContent{Text: text, Annotations: annotations, Meta: meta}
}

// ImageContent is base64-encoded image data.
type ImageContent struct {
	Data        string       `json:"data"`
	MimeType    string       `json:"mimeType"`
	Annotations *Annotations `json:"annotations,omitempty"`
	Meta        Meta         `json:"_meta,omitempty"`
}

// ContentType implements Content.
func (ImageContent) ContentType() string { return "image" }

// MarshalJSON stamps the "type" discriminator required on the wire.
func (c ImageContent) MarshalJSON() ([]byte, error) {
	type alias ImageContent
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: c.ContentType(), alias: alias(c)})
}

// AudioContent is base64-encoded audio data.
type AudioContent struct {
	Data        string       `json:"data"`
	MimeType    string       `json:"mimeType"`
	Annotations *Annotations `json:"annotations,omitempty"`
	Meta        Meta         `json:"_meta,omitempty"`
}

// ContentType implements Content.
func (AudioContent) ContentType() string { return "audio" }

// MarshalJSON stamps the "type" discriminator required on the wire.
func (c AudioContent) MarshalJSON() ([]byte, error) {
	type alias AudioContent
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: c.ContentType(), alias: alias(c)})
}

// ResourceLinkContent points at a resource by URI without embedding its
// contents, letting a client fetch it lazily via resources/read.
type ResourceLinkContent struct {
	Name        string       `json:"name"`
	URI         string       `json:"uri"`
	Title       string       `json:"title,omitempty"`
	Size        *int64       `json:"size,omitempty"`
	MimeType    string       `json:"mimeType,omitempty"`
	Icons       []Icon       `json:"icons,omitempty"`
	Description string       `json:"description,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	Meta        Meta         `json:"_meta,omitempty"`
}

// ContentType implements Content.
func (ResourceLinkContent) ContentType() string { return "resource_link" }

// MarshalJSON stamps the "type" discriminator required on the wire.
func (c ResourceLinkContent) MarshalJSON() ([]byte, error) {
	type alias ResourceLinkContent
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: c.ContentType(), alias: alias(c)})
}

// Icon describes a small image associated with a tool, resource, or prompt.
type Icon struct {
	Src      string `json:"src"`
	MimeType string `json:"mimeType,omitempty"`
	Sizes    string `json:"sizes,omitempty"`
}

// EmbeddedResourceContent carries a resource's contents inline rather than
// by reference.
type EmbeddedResourceContent struct {
	Resource    ResourceContents `json:"resource"`
	Annotations *Annotations     `json:"annotations,omitempty"`
	Meta        Meta             `json:"_meta,omitempty"`
}

// ContentType implements Content.
func (EmbeddedResourceContent) ContentType() string { return "resource" }

// MarshalJSON stamps the "type" discriminator required on the wire.
func (c EmbeddedResourceContent) MarshalJSON() ([]byte, error) {
	type alias EmbeddedResourceContent
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: c.ContentType(), alias: alias(c)})
}
