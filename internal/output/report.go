package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rgehrsitz/form11/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport formats result with the named formatter and writes it to w.
func GenerateReport(w io.Writer, result *domain.TaxResult, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(result)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// EncodeConstants serializes a rule table as yaml or json so it can be
// edited and passed back with --constants.
func EncodeConstants(c domain.TaxConstants, format string) ([]byte, error) {
	switch NormalizeFormatName(format) {
	case "yaml", "":
		return yaml.Marshal(c)
	case "json":
		return json.MarshalIndent(c, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q. Constants support yaml or json", ErrUnsupportedFormat, format)
	}
}
