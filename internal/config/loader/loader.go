// Package loader reads notepad settings files and environment overrides.
//
// The file format is chosen by extension: .toml for TOML and .yaml or .yml
// for YAML. Both formats hold the same flat set of keys:
//
//	language = "hr"
//	log_level = "info"
//	clipboard = "internal"
//	untitled_name = "Untitled"
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dshills/notepad/internal/config"
	"github.com/dshills/notepad/internal/vfs"
)

// Codec decodes and encodes one settings file format.
type Codec interface {
	// Decode parses data into a key map. source names the data in errors.
	Decode(source string, data []byte) (map[string]any, error)
	// Encode renders settings in the codec's format.
	Encode(s config.Settings) ([]byte, error)
}

// CodecFor returns the codec for path's extension.
func CodecFor(fsys vfs.FS, path string) (Codec, error) {
	switch strings.ToLower(fsys.Ext(path)) {
	case ".toml":
		return TOML{}, nil
	case ".yaml", ".yml":
		return YAML{}, nil
	}
	return nil, fmt.Errorf("%w: %s", config.ErrUnsupportedFormat, path)
}

// ReadFile reads and decodes the settings file at path.
// Returns nil, nil if the file doesn't exist (not an error).
func ReadFile(fsys vfs.FS, path string) (map[string]any, error) {
	codec, err := CodecFor(fsys, path)
	if err != nil {
		return nil, err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	return codec.Decode(path, data)
}

// Load resolves settings from the defaults, the file at path and env.
// An empty path skips the file; a nil env skips the environment.
// The result is validated.
func Load(fsys vfs.FS, path string, env *EnvLoader) (config.Settings, error) {
	s := config.Default()

	if path != "" {
		values, err := ReadFile(fsys, path)
		if err != nil {
			return s, err
		}
		if s, err = s.Merge(values); err != nil {
			return s, fmt.Errorf("settings file %s: %w", path, err)
		}
	}

	if env != nil {
		var err error
		if s, err = s.Merge(env.Load()); err != nil {
			return s, fmt.Errorf("environment: %w", err)
		}
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes s to path in the format chosen by its extension.
func Save(fsys vfs.FS, path string, s config.Settings) error {
	codec, err := CodecFor(fsys, path)
	if err != nil {
		return err
	}
	data, err := codec.Encode(s)
	if err != nil {
		return err
	}
	return fsys.WriteFile(path, data, 0644)
}
