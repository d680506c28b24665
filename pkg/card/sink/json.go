package sink

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/cardfold/pkg/card/layout"
)

// jsonVersion identifies the export schema. Bump when the layout plan
// shape changes incompatibly.
const jsonVersion = 1

// jsonExport wraps a plan with schema metadata for external tools.
type jsonExport struct {
	Version int          `json:"version"`
	Plan    *layout.Plan `json:"plan"`
}

// RenderJSON exports the complete layout plan as indented JSON. The
// export round-trips through [ParseJSON], so plans can be cached or fed
// to external renderers and re-imported without loss.
func RenderJSON(plan *layout.Plan) ([]byte, error) {
	return json.MarshalIndent(jsonExport{Version: jsonVersion, Plan: plan}, "", "  ")
}

// ParseJSON re-imports a plan exported by [RenderJSON].
func ParseJSON(data []byte) (*layout.Plan, error) {
	var export jsonExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("invalid layout JSON: %w", err)
	}
	if export.Version != jsonVersion {
		return nil, fmt.Errorf("unsupported layout JSON version: %d", export.Version)
	}
	if export.Plan == nil {
		return nil, fmt.Errorf("layout JSON has no plan")
	}
	return export.Plan, nil
}
