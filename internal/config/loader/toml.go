package loader

import (
	"errors"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/notepad/internal/config"
)

// TOML is the TOML settings codec.
type TOML struct{}

// Decode parses TOML data into a map.
func (TOML) Decode(source string, data []byte) (map[string]any, error) {
	var values map[string]any
	if err := toml.Unmarshal(data, &values); err != nil {
		perr := &config.ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	return values, nil
}

// Encode renders settings as TOML.
func (TOML) Encode(s config.Settings) ([]byte, error) {
	return toml.Marshal(s)
}
