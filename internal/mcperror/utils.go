// Package mcperror defines the error kinds, wire error codes, and error
// utilities shared by the codec, builders, and transport contract.
// file: internal/mcperror/utils.go
package mcperror

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// IsConstructionError reports whether err originated from a builder's
// Build() validation.
func IsConstructionError(err error) bool {
	return errors.Is(err, ErrConstruction)
}

// IsDecodeError reports whether err originated from the codec's decode path.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsDispatchError reports whether err originated from polymorphic dispatch.
func IsDispatchError(err error) bool {
	return errors.Is(err, ErrDispatch)
}

// GetErrorCategory extracts the category attached by ErrorWithDetails.
func GetErrorCategory(err error) string {
	return getDetailValue(err, "category")
}

// GetErrorCode extracts the wire error code attached by ErrorWithDetails,
// defaulting to CodeInternalError when none is present.
func GetErrorCode(err error) int {
	raw := getDetailValue(err, "code")
	if raw == "" {
		return CodeInternalError
	}
	code, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return CodeInternalError
	}
	return code
}

// getDetailValue walks the wrapped error chain looking for a detail string
// of the form "key:value" and returns the value for the first match.
func getDetailValue(err error, key string) string {
	prefix := key + ":"
	for _, detail := range errors.GetAllDetails(err) {
		if strings.HasPrefix(detail, prefix) {
			return strings.TrimPrefix(detail, prefix)
		}
	}
	return ""
}

// GetErrorProperties extracts every "key:value" detail attached to err,
// excluding the reserved category/code pair.
func GetErrorProperties(err error) map[string]string {
	properties := make(map[string]string)
	for _, detail := range errors.GetAllDetails(err) {
		key, value, ok := strings.Cut(detail, ":")
		if !ok || key == "category" || key == "code" {
			continue
		}
		properties[key] = value
	}
	return properties
}

// sensitiveKeywords are detail keys stripped from ErrorToWire's data map so
// that a decode/construction error never leaks a credential to a peer.
var sensitiveKeywords = map[string]bool{
	"token": true, "password": true, "secret": true, "key": true,
	"auth": true, "credential": true,
}

// ErrorToWire converts an error produced by this package into the fields of
// a JSON-RPC ErrorResponse, using UserFacingMessage so internal error text
// never reaches a peer verbatim.
func ErrorToWire(err error) (code int, message string, data map[string]string) {
	if err == nil {
		return 0, "", nil
	}
	code = GetErrorCode(err)
	message = UserFacingMessage(code)

	props := GetErrorProperties(err)
	data = make(map[string]string, len(props))
	for k, v := range props {
		if sensitiveKeywords[k] {
			continue
		}
		data[k] = v
	}
	if len(data) == 0 {
		data = nil
	}
	return code, message, data
}
