package output

import (
	"encoding/json"

	"github.com/rgehrsitz/form11/internal/domain"
)

// JSONFormatter serializes the computation as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
