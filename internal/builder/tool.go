// file: internal/builder/tool.go
package builder

import "github.com/mcpcore/mcp/internal/mcptype"

// ToolBuilder constructs a mcptype.Tool. Name and InputSchema are required.
type ToolBuilder struct {
	used
	name         string
	title        string
	description  string
	inputSchema  map[string]interface{}
	outputSchema map[string]interface{}
	icons        []mcptype.Icon
	annotations  *mcptype.ToolAnnotations
}

// NewToolBuilder starts building a Tool.
func NewToolBuilder() *ToolBuilder {
	return &ToolBuilder{}
}

// WithName sets the tool's required name.
func (b *ToolBuilder) WithName(name string) *ToolBuilder {
	b.name = name
	return b
}

// WithTitle sets an optional human-readable title.
func (b *ToolBuilder) WithTitle(title string) *ToolBuilder {
	b.title = title
	return b
}

// WithDescription sets an optional description.
func (b *ToolBuilder) WithDescription(description string) *ToolBuilder {
	b.description = description
	return b
}

// WithInputSchema sets the tool's required JSON Schema for its arguments.
// The core injects "type": "object" per the encode rules; callers need not
// set it themselves.
func (b *ToolBuilder) WithInputSchema(schema map[string]interface{}) *ToolBuilder {
	b.inputSchema = normalizeObjectSchema(schema)
	return b
}

// WithOutputSchema sets an optional JSON Schema for structuredContent. The
// core injects "type": "object" per the encode rules; callers need not set
// it themselves.
func (b *ToolBuilder) WithOutputSchema(schema map[string]interface{}) *ToolBuilder {
	b.outputSchema = normalizeObjectSchema(schema)
	return b
}

// WithIcon appends an icon.
func (b *ToolBuilder) WithIcon(icon mcptype.Icon) *ToolBuilder {
	b.icons = append(b.icons, icon)
	return b
}

// WithAnnotations sets optional untrusted behavior hints.
func (b *ToolBuilder) WithAnnotations(annotations mcptype.ToolAnnotations) *ToolBuilder {
	b.annotations = &annotations
	return b
}

// Build validates required fields and returns the constructed Tool.
func (b *ToolBuilder) Build() (mcptype.Tool, error) {
	if err := b.checkUnused("ToolBuilder"); err != nil {
		return mcptype.Tool{}, err
	}
	b.markUsed()

	if b.name == "" {
		return mcptype.Tool{}, missingField("ToolBuilder", "name", "WithName")
	}
	if b.inputSchema == nil {
		return mcptype.Tool{}, missingField("ToolBuilder", "inputSchema", "WithInputSchema")
	}

	return mcptype.Tool{
		Name:         b.name,
		Title:        b.title,
		Description:  b.description,
		InputSchema:  b.inputSchema,
		OutputSchema: b.outputSchema,
		Icons:        append([]mcptype.Icon(nil), b.icons...),
		Annotations:  b.annotations,
	}, nil
}
