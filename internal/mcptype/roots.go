// file: internal/mcptype/roots.go
package mcptype

import (
	"strings"

	"github.com/mcpcore/mcp/internal/jsonrpc"
	"github.com/mcpcore/mcp/internal/mcperror"
)

// Root is a filesystem root the client exposes to the server. Its URI must
// use the file:// scheme (§3 invariant); no other scheme is valid today.
type Root struct {
	URI  string `json:"uri"`
	Name string `json:"name,omitempty"`
	Meta Meta   `json:"_meta,omitempty"`
}

// NewRoot validates the file:// scheme before constructing a Root.
func NewRoot(uri, name string) (Root, error) {
	if !strings.HasPrefix(uri, "file://") {
		return Root{}, mcperror.NewConstructionError(
			"root: uri must start with file://",
			map[string]interface{}{"field": "uri", "value": uri},
		)
	}
	return Root{URI: uri, Name: name}, nil
}

// ListRootsRequest asks the client for its current set of filesystem roots.
type ListRootsRequest struct {
	Meta Meta `json:"_meta,omitempty"`
}

func (ListRootsRequest) mcpServerRequest() {}

// Method implements ServerRequest.
func (ListRootsRequest) Method() jsonrpc.Method { return jsonrpc.NewMethod(jsonrpc.MethodRootsList) }

// ListRootsResult carries the client's roots back to the server.
type ListRootsResult struct {
	Roots []Root `json:"roots"`
	Meta  Meta   `json:"_meta,omitempty"`
}

func (ListRootsResult) mcpClientResult() {}

// RootsListChangedNotification tells the server the client's root set changed.
type RootsListChangedNotification struct {
	Meta Meta `json:"_meta,omitempty"`
}

func (RootsListChangedNotification) mcpClientNotification() {}

// Method implements ClientNotification.
func (RootsListChangedNotification) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodNotificationsRootsListChanged)
}
