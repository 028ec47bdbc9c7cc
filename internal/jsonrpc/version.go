// Package jsonrpc implements the JSON-RPC 2.0 envelope that every MCP
// message rides on: the request/notification/response/error shapes, the
// discriminated request id, and the Method sum type. It has no knowledge of
// any concrete MCP request or result — those live one layer up, in mcptype.
// file: internal/jsonrpc/version.go
package jsonrpc

// Version is the fixed jsonrpc wire field. The core never makes it
// configurable; every envelope emits exactly this string.
const Version = "2.0"

// SupportedProtocolVersions lists the MCP protocol version date-strings
// this core understands, newest first. The first entry is the version a
// fresh InitializeRequest/InitializeResult should advertise.
var SupportedProtocolVersions = []string{
	"2025-11-25",
	"2025-06-18",
	"2025-03-26",
	"2024-11-05",
}

// LatestProtocolVersion is SupportedProtocolVersions[0].
func LatestProtocolVersion() string {
	return SupportedProtocolVersions[0]
}

// IsSupportedProtocolVersion reports whether version is in the supported set.
func IsSupportedProtocolVersion(version string) bool {
	for _, v := range SupportedProtocolVersions {
		if v == version {
			return true
		}
	}
	return false
}
