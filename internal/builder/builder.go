// Package builder is the L3 layer: fluent, single-use builders over the L1
// type model, enforcing required-field and numeric/size invariants at
// Build() time rather than at send time (§4.3).
// file: internal/builder/builder.go
package builder

import "github.com/mcpcore/mcp/internal/mcperror"

// used guards single-use Build() semantics: embed it in every builder and
// call checkUnused/markUsed at the top of Build().
type used struct {
	consumed bool
}

func (u *used) checkUnused(builderName string) error {
	if u.consumed {
		return mcperror.NewConstructionError(
			builderName+": build() already called on this builder",
			map[string]interface{}{"builder": builderName},
		)
	}
	return nil
}

func (u *used) markUsed() {
	u.consumed = true
}

// missingField reports a required field left unset at Build() time, naming
// the field and showing the setter that would have supplied it.
func missingField(builderName, field, example string) error {
	return mcperror.NewConstructionError(
		builderName+": required field "+field+" was never set; call "+example+" before Build()",
		map[string]interface{}{"builder": builderName, "field": field},
	)
}

// normalizeObjectSchema copies schema and stamps "type": "object" on it, per
// §4.2 encoding rule 4: RequestedSchema and ToolSchema always carry that
// literal on the wire regardless of what the caller passed in.
func normalizeObjectSchema(schema map[string]interface{}) map[string]interface{} {
	normalized := make(map[string]interface{}, len(schema)+1)
	for k, v := range schema {
		normalized[k] = v
	}
	normalized["type"] = "object"
	return normalized
}
