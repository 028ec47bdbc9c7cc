// Package rawjson provides cheap field-presence probes over raw JSON bytes,
// used by the codec's shape-based dispatchers instead of a full unmarshal
// into map[string]interface{} just to ask "is this key present".
// file: internal/rawjson/rawjson.go
package rawjson

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Has reports whether key is present at the top level of raw.
func Has(raw []byte, key string) bool {
	return gjson.GetBytes(raw, key).Exists()
}

// HasAll reports whether every key in keys is present at the top level of raw.
func HasAll(raw []byte, keys ...string) bool {
	for _, key := range keys {
		if !Has(raw, key) {
			return false
		}
	}
	return true
}

// String returns the string value at key, or "" if absent or not a string.
func String(raw []byte, key string) string {
	return gjson.GetBytes(raw, key).String()
}

// IsEmptyObject reports whether raw is `{}`, `null`, or an object containing
// only a `_meta` field — the shape EmptyResult accepts per the result
// dispatch's final fallback.
func IsEmptyObject(raw []byte) bool {
	if len(raw) == 0 {
		return true
	}
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsObject() {
		return false
	}
	onlyMeta := true
	parsed.ForEach(func(key, _ gjson.Result) bool {
		if key.String() != "_meta" {
			onlyMeta = false
			return false
		}
		return true
	})
	return onlyMeta
}

// SetMeta patches a `_meta` object onto an already-encoded JSON frame
// without a full decode/re-encode round trip — used by the in-memory
// transport to stamp correlation metadata onto outbound frames.
func SetMeta(raw []byte, meta map[string]interface{}) ([]byte, error) {
	if len(meta) == 0 {
		return raw, nil
	}
	out := raw
	var err error
	for key, value := range meta {
		out, err = sjson.SetBytes(out, "_meta."+key, value)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
