// file: internal/mcptype/logging.go
package mcptype

import "github.com/mcpcore/mcp/internal/jsonrpc"

// LoggingLevel is an RFC 5424 severity, ordered Debug < ... < Emergency.
type LoggingLevel string

const (
	LoggingLevelDebug     LoggingLevel = "debug"
	LoggingLevelInfo      LoggingLevel = "info"
	LoggingLevelNotice    LoggingLevel = "notice"
	LoggingLevelWarning   LoggingLevel = "warning"
	LoggingLevelError     LoggingLevel = "error"
	LoggingLevelCritical  LoggingLevel = "critical"
	LoggingLevelAlert     LoggingLevel = "alert"
	LoggingLevelEmergency LoggingLevel = "emergency"
)

// loggingLevelRank orders the severities for SetLevelRequest threshold
// comparisons; lower rank is less severe.
var loggingLevelRank = map[LoggingLevel]int{
	LoggingLevelDebug: 0, LoggingLevelInfo: 1, LoggingLevelNotice: 2,
	LoggingLevelWarning: 3, LoggingLevelError: 4, LoggingLevelCritical: 5,
	LoggingLevelAlert: 6, LoggingLevelEmergency: 7,
}

// AtLeast reports whether this level is at least as severe as other.
func (l LoggingLevel) AtLeast(other LoggingLevel) bool {
	return loggingLevelRank[l] >= loggingLevelRank[other]
}

// SetLevelRequest asks the server to only emit log messages at or above Level.
type SetLevelRequest struct {
	Level LoggingLevel `json:"level"`
	Meta  Meta         `json:"_meta,omitempty"`
}

func (SetLevelRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (SetLevelRequest) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodLoggingSetLevel)
}

// LoggingMessageNotification carries one structured log record from server to client.
type LoggingMessageNotification struct {
	Level  LoggingLevel `json:"level"`
	Logger string       `json:"logger,omitempty"`
	Data   interface{}  `json:"data"`
	Meta   Meta         `json:"_meta,omitempty"`
}

func (LoggingMessageNotification) mcpServerNotification() {}

// Method implements ServerNotification.
func (LoggingMessageNotification) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodNotificationsMessage)
}
