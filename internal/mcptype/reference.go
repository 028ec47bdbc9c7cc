// file: internal/mcptype/reference.go
package mcptype

import "encoding/json"

// Reference identifies the thing a completion/complete request is
// completing arguments for: either a prompt or a resource template.
// Discriminated on the wire by its "type" field; each concrete type
// implements MarshalJSON to stamp it.
type Reference interface {
	ReferenceType() string
}

// PromptReference points at a prompt by name.
type PromptReference struct {
	Name string `json:"name"`
}

// ReferenceType implements Reference.
func (PromptReference) ReferenceType() string { return "ref/prompt" }

// MarshalJSON stamps the "type" discriminator required on the wire.
func (r PromptReference) MarshalJSON() ([]byte, error) {
	type alias PromptReference
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: r.ReferenceType(), alias: alias(r)})
}

// ResourceReference points at a resource (or resource template) by URI.
type ResourceReference struct {
	URI string `json:"uri"`
}

// ReferenceType implements Reference.
func (ResourceReference) ReferenceType() string { return "ref/resource" }

// MarshalJSON stamps the "type" discriminator required on the wire.
func (r ResourceReference) MarshalJSON() ([]byte, error) {
	type alias ResourceReference
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: r.ReferenceType(), alias: alias(r)})
}
