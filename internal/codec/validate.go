// file: internal/codec/validate.go
package codec

import (
	"encoding/json"
	"strings"

	"github.com/mcpcore/mcp/internal/mcperror"
)

// Validate performs structural pre-validation of a raw JSON-RPC message
// before classification/dispatch, generalizing the teacher's
// transport-level ValidateMessage into a transport-agnostic codec step:
// valid JSON, a matching "jsonrpc" version, a non-empty "method" not
// reserved under the "rpc." prefix, a well-typed "id", and mutual
// exclusivity of "result"/"error" against "method".
func Validate(raw []byte) error {
	var msg map[string]interface{}
	if err := json.Unmarshal(raw, &msg); err != nil {
		return mcperror.NewDecodeError(err, map[string]interface{}{"stage": "parse"})
	}

	version, hasVersion := msg["jsonrpc"]
	if !hasVersion {
		return mcperror.NewDecodeError(nil, map[string]interface{}{
			"field": "jsonrpc", "issue": "missing",
		})
	}
	if version != "2.0" {
		return mcperror.NewDecodeError(nil, map[string]interface{}{
			"field": "jsonrpc", "issue": "unsupported version", "value": version,
		})
	}

	hasMethod := false
	if method, exists := msg["method"]; exists {
		hasMethod = true
		methodStr, ok := method.(string)
		if !ok || methodStr == "" {
			return mcperror.NewDecodeError(nil, map[string]interface{}{
				"field": "method", "issue": "must be a non-empty string",
			})
		}
		if strings.HasPrefix(methodStr, "rpc.") {
			return mcperror.NewDecodeError(nil, map[string]interface{}{
				"field": "method", "issue": "rpc.-prefixed names are reserved", "value": methodStr,
			})
		}
	}

	if id, exists := msg["id"]; exists {
		switch id.(type) {
		case string, float64, json.Number, nil:
		default:
			return mcperror.NewDecodeError(nil, map[string]interface{}{
				"field": "id", "issue": "must be a string or number",
			})
		}
	}

	_, hasResult := msg["result"]
	_, hasError := msg["error"]

	if hasMethod && (hasResult || hasError) {
		return mcperror.NewDecodeError(nil, map[string]interface{}{
			"issue": "request/notification must not carry result or error",
		})
	}
	if hasResult && hasError {
		return mcperror.NewDecodeError(nil, map[string]interface{}{
			"issue": "response must not carry both result and error",
		})
	}
	if !hasMethod && !hasResult && !hasError {
		return mcperror.NewDecodeError(nil, map[string]interface{}{
			"issue": "message matches no known envelope shape",
		})
	}

	return nil
}
