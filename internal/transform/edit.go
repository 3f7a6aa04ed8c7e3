package transform

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/dshills/notepad/internal/document"
	"github.com/dshills/notepad/internal/engine/cursor"
)

// CaseMode selects a case conversion.
type CaseMode int

const (
	// Upper converts to upper case.
	Upper CaseMode = iota
	// Lower converts to lower case.
	Lower
	// Invert swaps the case of each letter.
	Invert
)

// String returns the mode name.
func (m CaseMode) String() string {
	switch m {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	case Invert:
		return "invert"
	default:
		return "unknown"
	}
}

// ParseCaseMode returns the mode named s.
func ParseCaseMode(s string) (CaseMode, bool) {
	switch strings.ToLower(s) {
	case "upper":
		return Upper, true
	case "lower":
		return Lower, true
	case "invert":
		return Invert, true
	}
	return 0, false
}

// ChangeCase converts the selected text. An empty selection is a no-op.
// The result selects the converted text, which may differ in length.
func (e *Engine) ChangeCase(doc *document.Document, sel Selection, mode CaseMode) Selection {
	if sel.IsEmpty() {
		return sel
	}
	buf := doc.Buffer()
	text := selected("change case", buf, sel)

	var converted string
	switch mode {
	case Upper:
		converted = cases.Upper(e.lang.Tag()).String(text)
	case Lower:
		converted = cases.Lower(e.lang.Tag()).String(text)
	case Invert:
		converted = invertCase(text)
	default:
		document.Invariant("change case", "unknown case mode "+mode.String(), nil)
	}

	end := replace("change case", buf, sel.Offset(), sel.End(), converted)
	return cursor.NewSelection(sel.Offset(), end)
}

func invertCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}

// Cut moves the selected text to the clipboard. An empty selection is a
// no-op and leaves the clipboard alone.
func (e *Engine) Cut(doc *document.Document, sel Selection) Selection {
	if sel.IsEmpty() {
		return sel
	}
	buf := doc.Buffer()
	e.clip.SetText(selected("cut", buf, sel))
	if err := buf.Delete(sel.Offset(), sel.End()); err != nil {
		document.Invariant("cut", "delete outside buffer", err)
	}
	return sel.CollapseToStart()
}

// Copy puts the selected text on the clipboard. An empty selection is a
// no-op.
func (e *Engine) Copy(doc *document.Document, sel Selection) Selection {
	if sel.IsEmpty() {
		return sel
	}
	e.clip.SetText(selected("copy", doc.Buffer(), sel))
	return sel
}

// Paste replaces the selection with the clipboard text. With an empty
// clipboard only the selection is removed. The caret ends up after the
// inserted text.
func (e *Engine) Paste(doc *document.Document, sel Selection) Selection {
	buf := doc.Buffer()
	aligned("paste", buf, sel.Offset(), sel.End())
	return cursor.NewCaret(replace("paste", buf, sel.Offset(), sel.End(), e.clip.Text()))
}

// Delete removes the selected text. An empty selection is a no-op.
func (e *Engine) Delete(doc *document.Document, sel Selection) Selection {
	if sel.IsEmpty() {
		return sel
	}
	buf := doc.Buffer()
	aligned("delete", buf, sel.Offset(), sel.End())
	if err := buf.Delete(sel.Offset(), sel.End()); err != nil {
		document.Invariant("delete", "delete outside buffer", err)
	}
	return sel.CollapseToStart()
}
