// file: internal/mcptype/modelpreferences.go
package mcptype

import "github.com/mcpcore/mcp/internal/mcperror"

// ModelHint names a model family the server should prefer when honoring a
// ModelPreferences request, without binding to an exact model identifier.
type ModelHint struct {
	Name string `json:"name,omitempty"`
}

// ModelPreferences expresses the relative importance of cost, speed, and
// intelligence when a server chooses among candidate models for a sampling
// request. Each priority, when set, must lie in [0.0, 1.0].
type ModelPreferences struct {
	Hints                []ModelHint `json:"hints,omitempty"`
	CostPriority         *float64    `json:"costPriority,omitempty"`
	SpeedPriority        *float64    `json:"speedPriority,omitempty"`
	IntelligencePriority *float64    `json:"intelligencePriority,omitempty"`
}

// NewModelPreferences validates the three optional priorities before
// returning a constructed value.
func NewModelPreferences(hints []ModelHint, cost, speed, intelligence *float64) (ModelPreferences, error) {
	for name, v := range map[string]*float64{
		"costPriority": cost, "speedPriority": speed, "intelligencePriority": intelligence,
	} {
		if v != nil && (*v < 0.0 || *v > 1.0) {
			return ModelPreferences{}, mcperror.NewConstructionError(
				"modelPreferences: "+name+" must be in [0.0, 1.0]",
				map[string]interface{}{"field": name, "value": *v},
			)
		}
	}
	return ModelPreferences{
		Hints:                append([]ModelHint(nil), hints...),
		CostPriority:         cost,
		SpeedPriority:        speed,
		IntelligencePriority: intelligence,
	}, nil
}
