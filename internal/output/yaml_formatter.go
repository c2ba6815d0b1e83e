package output

import (
	"github.com/rgehrsitz/form11/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the computation as YAML, using the same field
// names as the input files.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string      { return "yaml" }
func (y YAMLFormatter) Extension() string { return "yaml" }

func (y YAMLFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	return yaml.Marshal(result)
}
