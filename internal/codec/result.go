// file: internal/codec/result.go
package codec

import (
	"encoding/json"

	"github.com/mcpcore/mcp/internal/mcperror"
	"github.com/mcpcore/mcp/internal/mcptype"
	"github.com/mcpcore/mcp/internal/rawjson"
)

// DecodeResult dispatches a result's raw JSON by top-level key presence,
// per §4.2's fixed check order: server-result shapes first (in the order
// listed), then client-result shapes, then the empty-object fallback.
// Some variants are supersets of others, so the order is load-bearing —
// do not reorder these checks.
func DecodeResult(raw json.RawMessage) (interface{}, error) {
	switch {
	case rawjson.HasAll(raw, "protocolVersion", "capabilities"):
		return decodeInto[mcptype.InitializeResult](raw)
	case rawjson.Has(raw, "completion"):
		return decodeInto[mcptype.CompleteResult](raw)
	case rawjson.Has(raw, "tools"):
		return decodeInto[mcptype.ListToolsResult](raw)
	case rawjson.Has(raw, "resources"):
		return decodeInto[mcptype.ListResourcesResult](raw)
	case rawjson.Has(raw, "resourceTemplates"):
		return decodeInto[mcptype.ListResourceTemplatesResult](raw)
	case rawjson.Has(raw, "prompts"):
		return decodeInto[mcptype.ListPromptsResult](raw)
	case rawjson.Has(raw, "messages"):
		return decodeInto[mcptype.GetPromptResult](raw)
	case rawjson.Has(raw, "contents"):
		return decodeInto[mcptype.ReadResourceResult](raw)
	case rawjson.Has(raw, "content"):
		return decodeToolResult(raw)
	case rawjson.HasAll(raw, "model", "role"):
		return decodeInto[mcptype.CreateMessageResult](raw)
	case rawjson.Has(raw, "roots"):
		return decodeInto[mcptype.ListRootsResult](raw)
	case rawjson.Has(raw, "action"):
		return decodeElicitResult(raw)
	case rawjson.IsEmptyObject(raw):
		return decodeInto[mcptype.EmptyResult](raw)
	default:
		return nil, mcperror.NewDispatchError(
			"result: no known shape matched top-level keys",
			map[string]interface{}{"raw": string(raw)},
		)
	}
}

// decodeToolResult decodes CallToolResult's polymorphic Content slice
// through the content dispatcher rather than plain json.Unmarshal, since
// Content is an interface.
func decodeToolResult(raw json.RawMessage) (interface{}, error) {
	var wire struct {
		Content           []json.RawMessage       `json:"content"`
		StructuredContent map[string]interface{} `json:"structuredContent,omitempty"`
		IsError           bool                    `json:"isError,omitempty"`
		Meta              mcptype.Meta            `json:"_meta,omitempty"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, mcperror.NewDecodeError(err, map[string]interface{}{"field": "content"})
	}
	blocks := make([]mcptype.Content, 0, len(wire.Content))
	for _, blockRaw := range wire.Content {
		block, err := DecodeContent(blockRaw)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return mcptype.CallToolResult{
		Content:           blocks,
		StructuredContent: wire.StructuredContent,
		IsError:           wire.IsError,
		Meta:              wire.Meta,
	}, nil
}

// decodeElicitResult uses NewElicitResult so the action/content invariant
// is enforced on the decode path, not only the builder path.
func decodeElicitResult(raw json.RawMessage) (interface{}, error) {
	var wire struct {
		Action  mcptype.ElicitAction   `json:"action"`
		Content map[string]interface{} `json:"content,omitempty"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, mcperror.NewDecodeError(err, map[string]interface{}{"field": "elicitResult"})
	}
	result, err := mcptype.NewElicitResult(wire.Action, wire.Content)
	if err != nil {
		return nil, err
	}
	return result, nil
}
