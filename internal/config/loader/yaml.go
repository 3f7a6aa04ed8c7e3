package loader

import (
	"gopkg.in/yaml.v3"

	"github.com/dshills/notepad/internal/config"
)

// YAML is the YAML settings codec.
type YAML struct{}

// Decode parses YAML data into a map. An empty document yields nil.
func (YAML) Decode(source string, data []byte) (map[string]any, error) {
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, &config.ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}
	return values, nil
}

// Encode renders settings as YAML.
func (YAML) Encode(s config.Settings) ([]byte, error) {
	return yaml.Marshal(s)
}
