package output

import (
	"encoding/json"

	"github.com/divsim/dividend-simulator/internal/domain"
)

// JSONFormatter serializes the full summary, raw outcomes included, as
// pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(summary *domain.SimulationSummary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "  ")
}
