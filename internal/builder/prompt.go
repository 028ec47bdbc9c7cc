// file: internal/builder/prompt.go
package builder

import "github.com/mcpcore/mcp/internal/mcptype"

// PromptBuilder constructs a mcptype.Prompt. Name is required.
type PromptBuilder struct {
	used
	name        string
	title       string
	description string
	arguments   []mcptype.PromptArgument
	icons       []mcptype.Icon
}

// NewPromptBuilder starts building a Prompt.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// WithName sets the prompt's required name.
func (b *PromptBuilder) WithName(name string) *PromptBuilder {
	b.name = name
	return b
}

// WithTitle sets an optional human-readable title.
func (b *PromptBuilder) WithTitle(title string) *PromptBuilder {
	b.title = title
	return b
}

// WithDescription sets an optional description.
func (b *PromptBuilder) WithDescription(description string) *PromptBuilder {
	b.description = description
	return b
}

// WithArgument appends a declared argument.
func (b *PromptBuilder) WithArgument(argument mcptype.PromptArgument) *PromptBuilder {
	b.arguments = append(b.arguments, argument)
	return b
}

// WithIcon appends an icon.
func (b *PromptBuilder) WithIcon(icon mcptype.Icon) *PromptBuilder {
	b.icons = append(b.icons, icon)
	return b
}

// Build validates required fields and returns the constructed Prompt.
func (b *PromptBuilder) Build() (mcptype.Prompt, error) {
	if err := b.checkUnused("PromptBuilder"); err != nil {
		return mcptype.Prompt{}, err
	}
	b.markUsed()

	if b.name == "" {
		return mcptype.Prompt{}, missingField("PromptBuilder", "name", "WithName")
	}

	return mcptype.Prompt{
		Name:        b.name,
		Title:       b.title,
		Description: b.description,
		Arguments:   append([]mcptype.PromptArgument(nil), b.arguments...),
		Icons:       append([]mcptype.Icon(nil), b.icons...),
	}, nil
}
