// file: internal/mcptype/meta.go
package mcptype

import "encoding/json"

// Meta is the reserved "_meta" field carried by requests, notifications,
// results, and content. Values are kept as raw JSON so arbitrary peer
// metadata round-trips without a fixed schema.
type Meta map[string]json.RawMessage

// RelatedTaskMetaKey is the reserved _meta key that binds a message to a
// task id, letting progress/cancellation notifications correlate back to
// the long-running operation they concern.
const RelatedTaskMetaKey = "io.modelcontextprotocol/related-task"

// IsEmpty reports whether meta has no entries. The codec's EmptyResult
// shape check works on raw JSON (rawjson.IsEmptyObject) and does not call it.
func (m Meta) IsEmpty() bool {
	return len(m) == 0
}
