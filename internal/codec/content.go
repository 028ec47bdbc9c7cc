// file: internal/codec/content.go
package codec

import (
	"encoding/json"

	"github.com/mcpcore/mcp/internal/mcperror"
	"github.com/mcpcore/mcp/internal/mcptype"
	"github.com/mcpcore/mcp/internal/rawjson"
)

// DecodeContent dispatches a content block by its "type" discriminator.
// Unknown type values fail hard (§4.2 tolerance policy): a content block
// with no recognized type carries no usable structural information, unlike
// an unrecognized method name, which can survive as Custom.
func DecodeContent(raw json.RawMessage) (mcptype.Content, error) {
	switch rawjson.String(raw, "type") {
	case "text":
		v, err := decodeInto[mcptype.TextContent](raw)
		if err != nil {
			return nil, err
		}
		return v.(mcptype.TextContent), nil
	case "image":
		v, err := decodeInto[mcptype.ImageContent](raw)
		if err != nil {
			return nil, err
		}
		return v.(mcptype.ImageContent), nil
	case "audio":
		v, err := decodeInto[mcptype.AudioContent](raw)
		if err != nil {
			return nil, err
		}
		return v.(mcptype.AudioContent), nil
	case "resource_link":
		v, err := decodeInto[mcptype.ResourceLinkContent](raw)
		if err != nil {
			return nil, err
		}
		return v.(mcptype.ResourceLinkContent), nil
	case "resource":
		return decodeEmbeddedResource(raw)
	default:
		return nil, mcperror.NewDispatchError(
			"content: unrecognized type discriminator",
			map[string]interface{}{"type": rawjson.String(raw, "type")},
		)
	}
}

func decodeEmbeddedResource(raw json.RawMessage) (mcptype.Content, error) {
	var wire struct {
		Resource    json.RawMessage        `json:"resource"`
		Annotations *mcptype.Annotations   `json:"annotations,omitempty"`
		Meta        mcptype.Meta           `json:"_meta,omitempty"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, mcperror.NewDecodeError(err, map[string]interface{}{"field": "resource"})
	}
	contents, err := DecodeResourceContents(wire.Resource)
	if err != nil {
		return nil, err
	}
	return mcptype.EmbeddedResourceContent{
		Resource:    contents,
		Annotations: wire.Annotations,
		Meta:        wire.Meta,
	}, nil
}

// DecodeResourceContents dispatches by key presence rather than a type
// field: "text" present means TextResourceContents, "blob" present means
// BlobResourceContents, neither present falls through to
// UnknownResourceContents rather than failing — the one polymorphic family
// the core tolerates carrying an unrecognized shape through (§4.2).
func DecodeResourceContents(raw json.RawMessage) (mcptype.ResourceContents, error) {
	switch {
	case rawjson.Has(raw, "text"):
		v, err := decodeInto[mcptype.TextResourceContents](raw)
		if err != nil {
			return nil, err
		}
		return v.(mcptype.TextResourceContents), nil
	case rawjson.Has(raw, "blob"):
		v, err := decodeInto[mcptype.BlobResourceContents](raw)
		if err != nil {
			return nil, err
		}
		return v.(mcptype.BlobResourceContents), nil
	default:
		v, err := decodeInto[mcptype.UnknownResourceContents](raw)
		if err != nil {
			return nil, err
		}
		return v.(mcptype.UnknownResourceContents), nil
	}
}

// decodeCompleteRequest decodes a CompleteRequest, routing its polymorphic
// Ref field through DecodeReference rather than plain json.Unmarshal, since
// Reference is an interface.
func decodeCompleteRequest(params json.RawMessage) (interface{}, error) {
	var wire struct {
		Ref      json.RawMessage            `json:"ref"`
		Argument mcptype.CompletionArgument `json:"argument"`
		Meta     mcptype.Meta               `json:"_meta,omitempty"`
	}
	if err := json.Unmarshal(params, &wire); err != nil {
		return nil, mcperror.NewDecodeError(err, map[string]interface{}{"field": "ref"})
	}
	ref, err := DecodeReference(wire.Ref)
	if err != nil {
		return nil, err
	}
	return mcptype.CompleteRequest{Ref: ref, Argument: wire.Argument, Meta: wire.Meta}, nil
}

// DecodeReference dispatches a completion/complete Ref by its "type" field.
func DecodeReference(raw json.RawMessage) (mcptype.Reference, error) {
	switch rawjson.String(raw, "type") {
	case "ref/prompt":
		v, err := decodeInto[mcptype.PromptReference](raw)
		if err != nil {
			return nil, err
		}
		return v.(mcptype.PromptReference), nil
	case "ref/resource":
		v, err := decodeInto[mcptype.ResourceReference](raw)
		if err != nil {
			return nil, err
		}
		return v.(mcptype.ResourceReference), nil
	default:
		return nil, mcperror.NewDispatchError(
			"reference: unrecognized type discriminator",
			map[string]interface{}{"type": rawjson.String(raw, "type")},
		)
	}
}
