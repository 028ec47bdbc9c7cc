// file: internal/builder/request.go
package builder

import "github.com/mcpcore/mcp/internal/mcptype"

// InitializeRequestBuilder constructs a mcptype.InitializeRequest.
// ProtocolVersion and ClientInfo are required.
type InitializeRequestBuilder struct {
	used
	protocolVersion string
	capabilities    mcptype.ClientCapabilities
	clientInfo      mcptype.Implementation
	clientInfoSet   bool
}

// NewInitializeRequestBuilder starts building an InitializeRequest.
func NewInitializeRequestBuilder() *InitializeRequestBuilder {
	return &InitializeRequestBuilder{}
}

// WithProtocolVersion sets the required protocol version string.
func (b *InitializeRequestBuilder) WithProtocolVersion(version string) *InitializeRequestBuilder {
	b.protocolVersion = version
	return b
}

// WithCapabilities sets the client's declared capabilities.
func (b *InitializeRequestBuilder) WithCapabilities(capabilities mcptype.ClientCapabilities) *InitializeRequestBuilder {
	b.capabilities = capabilities
	return b
}

// WithClientInfo sets the required client implementation identity.
func (b *InitializeRequestBuilder) WithClientInfo(info mcptype.Implementation) *InitializeRequestBuilder {
	b.clientInfo = info
	b.clientInfoSet = true
	return b
}

// Build validates required fields and returns the constructed InitializeRequest.
func (b *InitializeRequestBuilder) Build() (mcptype.InitializeRequest, error) {
	if err := b.checkUnused("InitializeRequestBuilder"); err != nil {
		return mcptype.InitializeRequest{}, err
	}
	b.markUsed()

	if b.protocolVersion == "" {
		return mcptype.InitializeRequest{}, missingField("InitializeRequestBuilder", "protocolVersion", "WithProtocolVersion")
	}
	if !b.clientInfoSet {
		return mcptype.InitializeRequest{}, missingField("InitializeRequestBuilder", "clientInfo", "WithClientInfo")
	}

	return mcptype.InitializeRequest{
		ProtocolVersion: b.protocolVersion,
		Capabilities:    b.capabilities,
		ClientInfo:      b.clientInfo,
	}, nil
}

// CallToolRequestBuilder constructs a mcptype.CallToolRequest. Name is required.
type CallToolRequestBuilder struct {
	used
	name      string
	arguments map[string]interface{}
}

// NewCallToolRequestBuilder starts building a CallToolRequest.
func NewCallToolRequestBuilder() *CallToolRequestBuilder {
	return &CallToolRequestBuilder{}
}

// WithName sets the required tool name to invoke.
func (b *CallToolRequestBuilder) WithName(name string) *CallToolRequestBuilder {
	b.name = name
	return b
}

// WithArgument sets a single named argument, building the arguments map lazily.
func (b *CallToolRequestBuilder) WithArgument(key string, value interface{}) *CallToolRequestBuilder {
	if b.arguments == nil {
		b.arguments = make(map[string]interface{})
	}
	b.arguments[key] = value
	return b
}

// Build validates required fields and returns the constructed CallToolRequest.
func (b *CallToolRequestBuilder) Build() (mcptype.CallToolRequest, error) {
	if err := b.checkUnused("CallToolRequestBuilder"); err != nil {
		return mcptype.CallToolRequest{}, err
	}
	b.markUsed()

	if b.name == "" {
		return mcptype.CallToolRequest{}, missingField("CallToolRequestBuilder", "name", "WithName")
	}

	argsCopy := make(map[string]interface{}, len(b.arguments))
	for k, v := range b.arguments {
		argsCopy[k] = v
	}
	return mcptype.CallToolRequest{Name: b.name, Arguments: argsCopy}, nil
}

// CallToolResultBuilder constructs a mcptype.CallToolResult.
type CallToolResultBuilder struct {
	used
	content           []mcptype.Content
	structuredContent map[string]interface{}
	isError           bool
}

// NewCallToolResultBuilder starts building a CallToolResult.
func NewCallToolResultBuilder() *CallToolResultBuilder {
	return &CallToolResultBuilder{}
}

// WithContent appends a content block to the result.
func (b *CallToolResultBuilder) WithContent(content mcptype.Content) *CallToolResultBuilder {
	b.content = append(b.content, content)
	return b
}

// WithStructuredContent sets the structured result payload.
func (b *CallToolResultBuilder) WithStructuredContent(structured map[string]interface{}) *CallToolResultBuilder {
	b.structuredContent = structured
	return b
}

// WithIsError marks this result as a tool-level execution error.
func (b *CallToolResultBuilder) WithIsError(isError bool) *CallToolResultBuilder {
	b.isError = isError
	return b
}

// Build returns the constructed CallToolResult. A tool result with no
// content blocks at all is still valid (the empty slice means "no output");
// only StructuredContent or IsError need ever be set.
func (b *CallToolResultBuilder) Build() (mcptype.CallToolResult, error) {
	if err := b.checkUnused("CallToolResultBuilder"); err != nil {
		return mcptype.CallToolResult{}, err
	}
	b.markUsed()

	return mcptype.CallToolResult{
		Content:           append([]mcptype.Content{}, b.content...),
		StructuredContent: b.structuredContent,
		IsError:           b.isError,
	}, nil
}

// ElicitRequestBuilder constructs a mcptype.ElicitRequest. Message and
// RequestedSchema are required.
type ElicitRequestBuilder struct {
	used
	message         string
	requestedSchema map[string]interface{}
}

// NewElicitRequestBuilder starts building an ElicitRequest.
func NewElicitRequestBuilder() *ElicitRequestBuilder {
	return &ElicitRequestBuilder{}
}

// WithMessage sets the required prompt shown to the user.
func (b *ElicitRequestBuilder) WithMessage(message string) *ElicitRequestBuilder {
	b.message = message
	return b
}

// WithRequestedSchema sets the required JSON Schema describing the expected
// input shape. The core injects "type": "object" per the encode rules;
// callers need not set it themselves.
func (b *ElicitRequestBuilder) WithRequestedSchema(schema map[string]interface{}) *ElicitRequestBuilder {
	b.requestedSchema = normalizeObjectSchema(schema)
	return b
}

// Build validates required fields and returns the constructed ElicitRequest.
func (b *ElicitRequestBuilder) Build() (mcptype.ElicitRequest, error) {
	if err := b.checkUnused("ElicitRequestBuilder"); err != nil {
		return mcptype.ElicitRequest{}, err
	}
	b.markUsed()

	if b.message == "" {
		return mcptype.ElicitRequest{}, missingField("ElicitRequestBuilder", "message", "WithMessage")
	}
	if b.requestedSchema == nil {
		return mcptype.ElicitRequest{}, missingField("ElicitRequestBuilder", "requestedSchema", "WithRequestedSchema")
	}

	return mcptype.ElicitRequest{Message: b.message, RequestedSchema: b.requestedSchema}, nil
}
