package output

import (
	"encoding/json"

	"github.com/retireplan/drawdown-calculator/internal/domain"
)

// JSONFormatter emits the row list as indented JSON for downstream tooling.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(rows []domain.PlanRow) ([]byte, error) {
	return json.MarshalIndent(rows, "", "  ")
}
