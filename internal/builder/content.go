// file: internal/builder/content.go
package builder

import "github.com/mcpcore/mcp/internal/mcptype"

// TextContentBuilder constructs a mcptype.TextContent. Text is required.
type TextContentBuilder struct {
	used
	text        string
	textSet     bool
	annotations *mcptype.Annotations
}

// NewTextContentBuilder starts building a TextContent block.
func NewTextContentBuilder() *TextContentBuilder {
	return &TextContentBuilder{}
}

// WithText sets the block's required text.
func (b *TextContentBuilder) WithText(text string) *TextContentBuilder {
	b.text = text
	b.textSet = true
	return b
}

// WithAnnotations attaches audience/priority hints.
func (b *TextContentBuilder) WithAnnotations(annotations mcptype.Annotations) *TextContentBuilder {
	b.annotations = &annotations
	return b
}

// Build validates required fields and returns the constructed TextContent.
func (b *TextContentBuilder) Build() (mcptype.TextContent, error) {
	if err := b.checkUnused("TextContentBuilder"); err != nil {
		return mcptype.TextContent{}, err
	}
	b.markUsed()

	if !b.textSet {
		return mcptype.TextContent{}, missingField("TextContentBuilder", "text", "WithText")
	}

	return mcptype.NewTextContent(b.text, b.annotations, nil), nil
}

// ImageContentBuilder constructs a mcptype.ImageContent. Data and MimeType are required.
type ImageContentBuilder struct {
	used
	data        string
	mimeType    string
	annotations *mcptype.Annotations
}

// NewImageContentBuilder starts building an ImageContent block.
func NewImageContentBuilder() *ImageContentBuilder {
	return &ImageContentBuilder{}
}

// WithData sets the block's required base64-encoded image data.
func (b *ImageContentBuilder) WithData(data string) *ImageContentBuilder {
	b.data = data
	return b
}

// WithMimeType sets the block's required MIME type.
func (b *ImageContentBuilder) WithMimeType(mimeType string) *ImageContentBuilder {
	b.mimeType = mimeType
	return b
}

// WithAnnotations attaches audience/priority hints.
func (b *ImageContentBuilder) WithAnnotations(annotations mcptype.Annotations) *ImageContentBuilder {
	b.annotations = &annotations
	return b
}

// Build validates required fields and returns the constructed ImageContent.
func (b *ImageContentBuilder) Build() (mcptype.ImageContent, error) {
	if err := b.checkUnused("ImageContentBuilder"); err != nil {
		return mcptype.ImageContent{}, err
	}
	b.markUsed()

	if b.data == "" {
		return mcptype.ImageContent{}, missingField("ImageContentBuilder", "data", "WithData")
	}
	if b.mimeType == "" {
		return mcptype.ImageContent{}, missingField("ImageContentBuilder", "mimeType", "WithMimeType")
	}

	return mcptype.ImageContent{Data: b.data, MimeType: b.mimeType, Annotations: b.annotations}, nil
}
