package loader

import (
	"os"
	"strings"

	"github.com/dshills/notepad/internal/config"
)

// DefaultEnvPrefix prefixes the environment variables read by EnvLoader.
const DefaultEnvPrefix = "NOTEPAD_"

// EnvLoader loads setting overrides from environment variables.
// NOTEPAD_LOG_LEVEL sets log_level, NOTEPAD_LANGUAGE sets language, and
// so on for every setting key.
type EnvLoader struct {
	prefix string
	lookup func(string) (string, bool)
}

// NewEnvLoader creates a loader reading variables with the given prefix.
// The prefix should include the trailing underscore (e.g., "NOTEPAD_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix, lookup: os.LookupEnv}
}

// Load returns the overrides that are set.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() map[string]any {
	values := make(map[string]any)
	for _, key := range []string{
		config.KeyLanguage,
		config.KeyLogLevel,
		config.KeyClipboard,
		config.KeyUntitledName,
	} {
		if val, ok := l.lookup(l.VarName(key)); ok {
			values[key] = val
		}
	}
	return values
}

// VarName returns the environment variable for a setting key.
func (l *EnvLoader) VarName(key string) string {
	return l.prefix + strings.ToUpper(key)
}
