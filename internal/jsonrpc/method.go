// file: internal/jsonrpc/method.go
package jsonrpc

import "encoding/json"

// Method is either one of the Defined protocol method constants below or a
// Custom wrapper around an arbitrary string. On the wire a Method is always
// a plain string; the Defined/Custom split exists only on the Go side so
// that request/notification dispatch can distinguish a known method from
// one it must carry through verbatim.
type Method struct {
	defined string // non-empty for a Defined method
	custom  string // set only when this Method is Custom
	isKnown bool
}

// Defined method constants. These are the ~30 method names the protocol
// specifies; every other string is Custom.
const (
	MethodInitialize             = "initialize"
	MethodPing                   = "ping"
	MethodToolsList              = "tools/list"
	MethodToolsCall              = "tools/call"
	MethodResourcesList          = "resources/list"
	MethodResourcesRead          = "resources/read"
	MethodResourcesSubscribe     = "resources/subscribe"
	MethodResourcesUnsubscribe   = "resources/unsubscribe"
	MethodResourcesTemplatesList = "resources/templates/list"
	MethodPromptsList            = "prompts/list"
	MethodPromptsGet             = "prompts/get"
	MethodCompletionComplete     = "completion/complete"
	MethodLoggingSetLevel        = "logging/setLevel"
	MethodSamplingCreateMessage  = "sampling/createMessage"
	MethodElicitationCreate      = "elicitation/create"
	MethodRootsList              = "roots/list"
	MethodTasksGet               = "tasks/get"
	MethodTasksResult            = "tasks/result"
	MethodTasksList              = "tasks/list"
	MethodTasksCancel            = "tasks/cancel"

	MethodNotificationsInitialized          = "notifications/initialized"
	MethodNotificationsCancelled            = "notifications/cancelled"
	MethodNotificationsProgress             = "notifications/progress"
	MethodNotificationsMessage              = "notifications/message"
	MethodNotificationsResourcesUpdated     = "notifications/resources/updated"
	MethodNotificationsResourcesListChanged = "notifications/resources/list_changed"
	MethodNotificationsToolsListChanged     = "notifications/tools/list_changed"
	MethodNotificationsPromptsListChanged   = "notifications/prompts/list_changed"
	MethodNotificationsRootsListChanged     = "notifications/roots/list_changed"
	MethodNotificationsTasksStatus          = "notifications/tasks/status"
)

// definedMethods is the closed set backing NewMethod's Defined/Custom split.
var definedMethods = map[string]bool{
	MethodInitialize: true, MethodPing: true, MethodToolsList: true, MethodToolsCall: true,
	MethodResourcesList: true, MethodResourcesRead: true, MethodResourcesSubscribe: true,
	MethodResourcesUnsubscribe: true, MethodResourcesTemplatesList: true,
	MethodPromptsList: true, MethodPromptsGet: true, MethodCompletionComplete: true,
	MethodLoggingSetLevel: true, MethodSamplingCreateMessage: true, MethodElicitationCreate: true,
	MethodRootsList: true, MethodTasksGet: true, MethodTasksResult: true, MethodTasksList: true,
	MethodTasksCancel: true,
	MethodNotificationsInitialized: true, MethodNotificationsCancelled: true,
	MethodNotificationsProgress: true, MethodNotificationsMessage: true,
	MethodNotificationsResourcesUpdated: true, MethodNotificationsResourcesListChanged: true,
	MethodNotificationsToolsListChanged: true, MethodNotificationsPromptsListChanged: true,
	MethodNotificationsRootsListChanged: true, MethodNotificationsTasksStatus: true,
}

// NewMethod wraps a wire method string, tagging it Defined if it matches the
// closed protocol set and Custom otherwise.
func NewMethod(wire string) Method {
	if definedMethods[wire] {
		return Method{defined: wire, isKnown: true}
	}
	return Method{custom: wire}
}

// IsDefined reports whether this Method is one of the closed protocol set.
func (m Method) IsDefined() bool { return m.isKnown }

// String returns the wire string regardless of Defined/Custom status.
func (m Method) String() string {
	if m.isKnown {
		return m.defined
	}
	return m.custom
}

// MarshalJSON emits the plain wire string — Method never appears as an
// object on the wire.
func (m Method) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts any JSON string and classifies it as Defined or
// Custom via NewMethod.
func (m *Method) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = NewMethod(s)
	return nil
}
