// Package locale tracks the current language and derives language-aware
// string comparison from it.
package locale

import (
	"errors"
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dshills/notepad/internal/event"
)

// DefaultLanguage is the language a Provider starts with.
const DefaultLanguage = "hr"

// ErrInvalidLanguage indicates a language code that is not a valid BCP 47 tag.
var ErrInvalidLanguage = errors.New("invalid language")

// Compare orders two strings, returning a negative number, zero or a
// positive number.
type Compare func(a, b string) int

// Source is anything that reports the current language and its changes.
type Source interface {
	Language() string
	Tag() language.Tag
	Subscribe(fn func(lang string)) event.Handle
	Unsubscribe(h event.Handle) bool
}

// Provider holds the current language.
type Provider struct {
	lang      string
	tag       language.Tag
	listeners event.Listeners[string]
}

// NewProvider creates a provider set to DefaultLanguage.
func NewProvider() *Provider {
	p, err := NewProviderFor(DefaultLanguage)
	if err != nil {
		panic(err)
	}
	return p
}

// NewProviderFor creates a provider set to lang.
func NewProviderFor(lang string) (*Provider, error) {
	tag, err := parse(lang)
	if err != nil {
		return nil, err
	}
	return &Provider{lang: lang, tag: tag}, nil
}

// Language returns the current language code.
func (p *Provider) Language() string {
	return p.lang
}

// Tag returns the current language tag.
func (p *Provider) Tag() language.Tag {
	return p.tag
}

// SetLanguage switches the language and notifies listeners.
// Setting the current language again does nothing.
func (p *Provider) SetLanguage(lang string) error {
	tag, err := parse(lang)
	if err != nil {
		return err
	}
	if lang == p.lang {
		return nil
	}
	p.lang = lang
	p.tag = tag
	p.listeners.Notify(lang)
	return nil
}

// Subscribe registers fn to receive each new language.
func (p *Provider) Subscribe(fn func(lang string)) event.Handle {
	return p.listeners.Add(fn)
}

// Unsubscribe removes a listener.
func (p *Provider) Unsubscribe(h event.Handle) bool {
	return p.listeners.Remove(h)
}

// Comparator returns a collation for the current language.
func (p *Provider) Comparator() Compare {
	return Collation(p.tag)
}

// Collation returns a comparison function that orders strings the way
// speakers of tag expect. Each returned function owns its collator.
func Collation(tag language.Tag) Compare {
	c := collate.New(tag)
	return c.CompareString
}

func parse(lang string) (language.Tag, error) {
	if lang == "" {
		return language.Und, fmt.Errorf("%w: empty code", ErrInvalidLanguage)
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, fmt.Errorf("%w %q: %v", ErrInvalidLanguage, lang, err)
	}
	return tag, nil
}
