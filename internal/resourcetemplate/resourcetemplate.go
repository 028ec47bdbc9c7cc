// Package resourcetemplate expands an mcptype.ResourceTemplate's RFC 6570
// URI template against the argument a peer supplied to completion/complete,
// so a server can resolve which concrete resource a ref/resource
// completion request is actually completing against.
package resourcetemplate

// file: internal/resourcetemplate/resourcetemplate.go

import (
	"github.com/mcpcore/mcp/internal/mcperror"
	"github.com/yosida95/uritemplate/v3"
)

// Template wraps a compiled RFC 6570 template alongside its raw string;
// VarNames reads the variable names off the compiled template, so a caller
// can discover which argument names a completion request
// should offer before ever expanding it.
type Template struct {
	compiled *uritemplate.Template
	raw      string
}

// Parse compiles a resource template's uriTemplate string (as carried by
// mcptype.ResourceTemplate.URITemplate). Returns a decode error if the
// string is not a valid RFC 6570 template.
func Parse(raw string) (*Template, error) {
	compiled, err := uritemplate.New(raw)
	if err != nil {
		return nil, mcperror.NewDecodeError(err, map[string]interface{}{
			"field": "uriTemplate", "value": raw,
		})
	}
	return &Template{compiled: compiled, raw: raw}, nil
}

// VarNames returns the template's variable names, in the order they first
// appear in the template, for a server to match against a completion
// request's known argument set.
func (t *Template) VarNames() []string {
	return t.compiled.Varnames()
}

// Raw returns the original template string.
func (t *Template) Raw() string {
	return t.raw
}

// Expand substitutes the given named arguments into the template and
// returns the resulting concrete URI.
func (t *Template) Expand(args map[string]string) (string, error) {
	values := uritemplate.Values{}
	for name, value := range args {
		values = values.Set(name, uritemplate.String(value))
	}
	expanded, err := t.compiled.Expand(values)
	if err != nil {
		return "", mcperror.NewDecodeError(err, map[string]interface{}{
			"field": "uriTemplate", "template": t.raw,
		})
	}
	return expanded, nil
}
