package config

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"golang.org/x/text/language"
)

// Setting keys as they appear in settings files.
const (
	KeyLanguage     = "language"
	KeyLogLevel     = "log_level"
	KeyClipboard    = "clipboard"
	KeyUntitledName = "untitled_name"
)

// Clipboard modes.
const (
	ClipboardInternal = "internal"
	ClipboardSystem   = "system"
)

// LogLevels lists the accepted log level names.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Settings holds the editor configuration.
type Settings struct {
	// Language is the BCP 47 code used for sorting and case mapping.
	Language string `toml:"language" yaml:"language"`

	// LogLevel is the minimum level logged.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// Clipboard selects the internal slot or the system clipboard.
	Clipboard string `toml:"clipboard" yaml:"clipboard"`

	// UntitledName is the display name of documents without a path.
	UntitledName string `toml:"untitled_name" yaml:"untitled_name"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Language:     "hr",
		LogLevel:     "info",
		Clipboard:    ClipboardInternal,
		UntitledName: "Untitled",
	}
}

// Validate checks every setting and reports all failures together.
func (s Settings) Validate() error {
	var errs []error

	if s.Language == "" {
		errs = append(errs, &ValidationError{Key: KeyLanguage, Message: "must not be empty", Code: ErrCodeRequiredMissing})
	} else if _, err := language.Parse(s.Language); err != nil {
		errs = append(errs, &ValidationError{Key: KeyLanguage, Message: "not a language tag", Value: s.Language, Code: ErrCodePatternMismatch})
	}

	if !slices.Contains(LogLevels, s.LogLevel) {
		errs = append(errs, &ValidationError{
			Key:     KeyLogLevel,
			Message: fmt.Sprintf("must be one of %v", LogLevels),
			Value:   s.LogLevel,
			Code:    ErrCodeInvalidEnum,
		})
	}

	if s.Clipboard != ClipboardInternal && s.Clipboard != ClipboardSystem {
		errs = append(errs, &ValidationError{
			Key:     KeyClipboard,
			Message: fmt.Sprintf("must be %q or %q", ClipboardInternal, ClipboardSystem),
			Value:   s.Clipboard,
			Code:    ErrCodeInvalidEnum,
		})
	}

	if s.UntitledName == "" {
		errs = append(errs, &ValidationError{Key: KeyUntitledName, Message: "must not be empty", Code: ErrCodeRequiredMissing})
	}

	return errors.Join(errs...)
}

// Merge returns a copy of s with values overridden by the entries of m.
// Keys are setting keys; every value must be a string.
func (s Settings) Merge(m map[string]any) (Settings, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field := s.field(key)
		if field == nil {
			return s, &ValidationError{Key: key, Message: "unknown setting", Value: m[key], Code: ErrCodeUnknownSetting}
		}
		str, ok := m[key].(string)
		if !ok {
			return s, &TypeError{Key: key, Expected: "string", Actual: fmt.Sprintf("%T", m[key])}
		}
		*field = str
	}
	return s, nil
}

// Map returns the settings keyed by setting key.
func (s Settings) Map() map[string]any {
	return map[string]any{
		KeyLanguage:     s.Language,
		KeyLogLevel:     s.LogLevel,
		KeyClipboard:    s.Clipboard,
		KeyUntitledName: s.UntitledName,
	}
}

func (s *Settings) field(key string) *string {
	switch key {
	case KeyLanguage:
		return &s.Language
	case KeyLogLevel:
		return &s.LogLevel
	case KeyClipboard:
		return &s.Clipboard
	case KeyUntitledName:
		return &s.UntitledName
	}
	return nil
}
