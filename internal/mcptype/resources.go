// file: internal/mcptype/resources.go
package mcptype

import "github.com/mcpcore/mcp/internal/jsonrpc"

// Resource describes a single addressable resource the server can serve.
type Resource struct {
	Name        string       `json:"name"`
	Title       string       `json:"title,omitempty"`
	URI         string       `json:"uri"`
	Description string       `json:"description,omitempty"`
	MimeType    string       `json:"mimeType,omitempty"`
	Size        *int64       `json:"size,omitempty"`
	Icons       []Icon       `json:"icons,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	Meta        Meta         `json:"_meta,omitempty"`
}

// ResourceTemplate describes a parameterized family of resources, expanded
// via RFC 6570 URI templates (see internal/resourcetemplate).
type ResourceTemplate struct {
	Name        string       `json:"name"`
	Title       string       `json:"title,omitempty"`
	URITemplate string       `json:"uriTemplate"`
	Description string       `json:"description,omitempty"`
	MimeType    string       `json:"mimeType,omitempty"`
	Icons       []Icon       `json:"icons,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	Meta        Meta         `json:"_meta,omitempty"`
}

// ListResourcesRequest lists the server's concrete resources.
type ListResourcesRequest struct {
	Cursor string `json:"cursor,omitempty"`
	Meta   Meta   `json:"_meta,omitempty"`
}

func (ListResourcesRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (ListResourcesRequest) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodResourcesList)
}

// ListResourcesResult is the paginated resource catalog.
type ListResourcesResult struct {
	Resources  []Resource `json:"resources"`
	NextCursor string     `json:"nextCursor,omitempty"`
	Meta       Meta       `json:"_meta,omitempty"`
}

func (ListResourcesResult) mcpServerResult() {}

// ListResourceTemplatesRequest lists the server's parameterized resource templates.
type ListResourceTemplatesRequest struct {
	Cursor string `json:"cursor,omitempty"`
	Meta   Meta   `json:"_meta,omitempty"`
}

func (ListResourceTemplatesRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (ListResourceTemplatesRequest) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodResourcesTemplatesList)
}

// ListResourceTemplatesResult is the paginated template catalog.
type ListResourceTemplatesResult struct {
	ResourceTemplates []ResourceTemplate `json:"resourceTemplates"`
	NextCursor        string             `json:"nextCursor,omitempty"`
	Meta              Meta               `json:"_meta,omitempty"`
}

func (ListResourceTemplatesResult) mcpServerResult() {}

// ReadResourceRequest fetches a resource's contents by URI.
type ReadResourceRequest struct {
	URI  string `json:"uri"`
	Meta Meta   `json:"_meta,omitempty"`
}

func (ReadResourceRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (ReadResourceRequest) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodResourcesRead)
}

// ReadResourceResult carries the fetched resource's contents.
type ReadResourceResult struct {
	Contents []ResourceContents `json:"contents"`
	Meta     Meta               `json:"_meta,omitempty"`
}

func (ReadResourceResult) mcpServerResult() {}

// SubscribeRequest asks the server to notify on changes to one resource.
type SubscribeRequest struct {
	URI  string `json:"uri"`
	Meta Meta   `json:"_meta,omitempty"`
}

func (SubscribeRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (SubscribeRequest) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodResourcesSubscribe)
}

// UnsubscribeRequest cancels a prior SubscribeRequest.
type UnsubscribeRequest struct {
	URI  string `json:"uri"`
	Meta Meta   `json:"_meta,omitempty"`
}

func (UnsubscribeRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (UnsubscribeRequest) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodResourcesUnsubscribe)
}

// ResourceListChangedNotification tells the client the resource catalog changed.
type ResourceListChangedNotification struct {
	Meta Meta `json:"_meta,omitempty"`
}

func (ResourceListChangedNotification) mcpServerNotification() {}

// Method implements ServerNotification.
func (ResourceListChangedNotification) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodNotificationsResourcesListChanged)
}

// ResourceUpdatedNotification tells a subscribed client that one resource changed.
type ResourceUpdatedNotification struct {
	URI  string `json:"uri"`
	Meta Meta   `json:"_meta,omitempty"`
}

func (ResourceUpdatedNotification) mcpServerNotification() {}

// Method implements ServerNotification.
func (ResourceUpdatedNotification) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodNotificationsResourcesUpdated)
}
