// file: internal/builder/sampling.go
package builder

import "github.com/mcpcore/mcp/internal/mcptype"

// CreateMessageRequestBuilder constructs a mcptype.CreateMessageRequest.
// At least one message and MaxTokens are required.
type CreateMessageRequestBuilder struct {
	used
	messages         []mcptype.SamplingMessage
	modelPreferences *mcptype.ModelPreferences
	systemPrompt     string
	includeContext   mcptype.IncludeContext
	temperature      *float64
	maxTokens        int
	maxTokensSet     bool
	stopSequences    []string
}

// NewCreateMessageRequestBuilder starts building a CreateMessageRequest.
func NewCreateMessageRequestBuilder() *CreateMessageRequestBuilder {
	return &CreateMessageRequestBuilder{}
}

// WithMessage appends one turn to the sampling conversation.
func (b *CreateMessageRequestBuilder) WithMessage(message mcptype.SamplingMessage) *CreateMessageRequestBuilder {
	b.messages = append(b.messages, message)
	return b
}

// WithModelPreferences sets the model selection hints.
func (b *CreateMessageRequestBuilder) WithModelPreferences(preferences mcptype.ModelPreferences) *CreateMessageRequestBuilder {
	b.modelPreferences = &preferences
	return b
}

// WithSystemPrompt sets an optional system prompt.
func (b *CreateMessageRequestBuilder) WithSystemPrompt(prompt string) *CreateMessageRequestBuilder {
	b.systemPrompt = prompt
	return b
}

// WithIncludeContext sets how much ambient MCP context to splice in.
func (b *CreateMessageRequestBuilder) WithIncludeContext(include mcptype.IncludeContext) *CreateMessageRequestBuilder {
	b.includeContext = include
	return b
}

// WithTemperature sets an optional sampling temperature.
func (b *CreateMessageRequestBuilder) WithTemperature(temperature float64) *CreateMessageRequestBuilder {
	b.temperature = &temperature
	return b
}

// WithMaxTokens sets the required completion token budget.
func (b *CreateMessageRequestBuilder) WithMaxTokens(maxTokens int) *CreateMessageRequestBuilder {
	b.maxTokens = maxTokens
	b.maxTokensSet = true
	return b
}

// WithStopSequence appends a stop sequence.
func (b *CreateMessageRequestBuilder) WithStopSequence(sequence string) *CreateMessageRequestBuilder {
	b.stopSequences = append(b.stopSequences, sequence)
	return b
}

// Build validates required fields and returns the constructed CreateMessageRequest.
func (b *CreateMessageRequestBuilder) Build() (mcptype.CreateMessageRequest, error) {
	if err := b.checkUnused("CreateMessageRequestBuilder"); err != nil {
		return mcptype.CreateMessageRequest{}, err
	}
	b.markUsed()

	if len(b.messages) == 0 {
		return mcptype.CreateMessageRequest{}, missingField("CreateMessageRequestBuilder", "messages", "WithMessage")
	}
	if !b.maxTokensSet {
		return mcptype.CreateMessageRequest{}, missingField("CreateMessageRequestBuilder", "maxTokens", "WithMaxTokens")
	}

	return mcptype.CreateMessageRequest{
		Messages:         append([]mcptype.SamplingMessage(nil), b.messages...),
		ModelPreferences: b.modelPreferences,
		SystemPrompt:     b.systemPrompt,
		IncludeContext:   b.includeContext,
		Temperature:      b.temperature,
		MaxTokens:        b.maxTokens,
		StopSequences:    append([]string(nil), b.stopSequences...),
	}, nil
}
