package output

import (
	"fmt"

	"github.com/retireplan/drawdown-calculator/internal/domain"
)

// Formatter renders the engine's row list into one output representation.
type Formatter interface {
	Name() string
	Format(rows []domain.PlanRow) ([]byte, error)
}

// ForName returns the formatter registered under the given name.
func ForName(name string) (Formatter, error) {
	switch name {
	case "csv":
		return CSVFormatter{}, nil
	case "console", "table":
		return ConsoleFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (must be csv, console, or json)", name)
}
