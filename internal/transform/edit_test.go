package transform

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/dshills/notepad/internal/clipboard"
	"github.com/dshills/notepad/internal/document"
	"github.com/dshills/notepad/internal/engine/cursor"
)

func TestChangeCase(t *testing.T) {
	tests := []struct {
		name    string
		lang    language.Tag
		text    string
		sel     Selection
		mode    CaseMode
		want    string
		wantSel Selection
	}{
		{"invert", language.Und, "Hello World", cursor.NewSpan(0, 5), Invert, "hELLO World", cursor.NewSpan(0, 5)},
		{"invert keeps non letters", language.Und, "a1-B", cursor.NewSpan(0, 4), Invert, "A1-b", cursor.NewSpan(0, 4)},
		{"upper", language.Und, "hello world", cursor.NewSpan(6, 5), Upper, "hello WORLD", cursor.NewSpan(6, 5)},
		{"lower backward selection", language.Und, "HELLO", cursor.NewSelection(5, 0), Lower, "hello", cursor.NewSpan(0, 5)},
		{"upper grows text", language.Und, "straße", cursor.NewSpan(0, 7), Upper, "STRASSE", cursor.NewSpan(0, 7)},
		{"upper croatian", language.Croatian, "čćžšđ", cursor.NewSpan(0, 10), Upper, "ČĆŽŠĐ", cursor.NewSpan(0, 10)},
		{"upper turkish dotted i", language.Turkish, "i", cursor.NewSpan(0, 1), Upper, "İ", cursor.NewSpan(0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.NewDocument("", tt.text)
			e := New(WithLanguage(tt.lang))

			got := e.ChangeCase(doc, tt.sel, tt.mode)

			if doc.Text() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, doc.Text())
			}
			if got != tt.wantSel {
				t.Errorf("expected selection %v, got %v", tt.wantSel, got)
			}
			if !doc.IsModified() {
				t.Error("expected document to be modified")
			}
		})
	}
}

func TestChangeCase_FollowsLanguageSource(t *testing.T) {
	src := &stubLanguage{tag: language.English}
	e := New(WithLanguageSource(src))
	doc := document.NewDocument("", "i")

	e.ChangeCase(doc, cursor.NewSpan(0, 1), Upper)
	if doc.Text() != "I" {
		t.Fatalf("expected 'I', got %q", doc.Text())
	}

	src.tag = language.Turkish
	e.ChangeCase(doc, cursor.NewSpan(0, 1), Lower)
	if doc.Text() != "ı" {
		t.Errorf("expected dotless i, got %q", doc.Text())
	}
}

type stubLanguage struct {
	tag language.Tag
}

func (s *stubLanguage) Tag() language.Tag { return s.tag }

func TestEmptySelectionIsNoOp(t *testing.T) {
	sel := cursor.NewCaret(2)

	ops := map[string]func(e *Engine, doc *document.Document) Selection{
		"cut":    func(e *Engine, doc *document.Document) Selection { return e.Cut(doc, sel) },
		"copy":   func(e *Engine, doc *document.Document) Selection { return e.Copy(doc, sel) },
		"delete": func(e *Engine, doc *document.Document) Selection { return e.Delete(doc, sel) },
		"upper":  func(e *Engine, doc *document.Document) Selection { return e.ChangeCase(doc, sel, Upper) },
		"invert": func(e *Engine, doc *document.Document) Selection { return e.ChangeCase(doc, sel, Invert) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			cb := clipboard.NewSlot()
			cb.SetText("kept")
			e := New(WithClipboard(cb))
			doc := document.NewDocument("/a.txt", "abcd")

			got := op(e, doc)

			if doc.Text() != "abcd" || doc.IsModified() {
				t.Errorf("expected unchanged document, got %q modified=%v", doc.Text(), doc.IsModified())
			}
			if cb.Text() != "kept" {
				t.Errorf("expected clipboard unchanged, got %q", cb.Text())
			}
			if got != sel {
				t.Errorf("expected selection %v, got %v", sel, got)
			}
		})
	}
}

func TestCutThenPaste(t *testing.T) {
	e := New()
	doc := document.NewDocument("", "abc")

	sel := e.Cut(doc, cursor.NewSpan(1, 1))
	if doc.Text() != "ac" {
		t.Errorf("expected 'ac', got %q", doc.Text())
	}
	if e.Clipboard().Text() != "b" {
		t.Errorf("expected clipboard 'b', got %q", e.Clipboard().Text())
	}
	if sel != cursor.NewCaret(1) {
		t.Errorf("expected caret at 1, got %v", sel)
	}

	sel = e.Paste(doc, sel)
	if doc.Text() != "abc" {
		t.Errorf("expected 'abc', got %q", doc.Text())
	}
	if sel != cursor.NewCaret(2) {
		t.Errorf("expected caret at 2, got %v", sel)
	}
	if e.Clipboard().Text() != "b" {
		t.Error("paste should not clear the clipboard")
	}
}

func TestCopy(t *testing.T) {
	e := New()
	doc := document.NewDocument("", "hello world")

	sel := e.Copy(doc, cursor.NewSelection(11, 6))

	if e.Clipboard().Text() != "world" {
		t.Errorf("expected 'world', got %q", e.Clipboard().Text())
	}
	if doc.Text() != "hello world" || doc.IsModified() {
		t.Error("expected buffer unchanged")
	}
	if sel != cursor.NewSelection(11, 6) {
		t.Errorf("expected selection unchanged, got %v", sel)
	}
}

func TestPaste(t *testing.T) {
	tests := []struct {
		name    string
		clip    string
		sel     Selection
		want    string
		wantSel Selection
	}{
		{"insert at caret", "XY", cursor.NewCaret(0), "XYabc", cursor.NewCaret(2)},
		{"replace selection", "XY", cursor.NewSpan(1, 1), "aXYc", cursor.NewCaret(3)},
		{"empty clipboard deletes selection", "", cursor.NewSpan(0, 2), "c", cursor.NewCaret(0)},
		{"empty clipboard at caret", "", cursor.NewCaret(1), "abc", cursor.NewCaret(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := clipboard.NewSlot()
			cb.SetText(tt.clip)
			e := New(WithClipboard(cb))
			doc := document.NewDocument("", "abc")

			got := e.Paste(doc, tt.sel)

			if doc.Text() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, doc.Text())
			}
			if got != tt.wantSel {
				t.Errorf("expected %v, got %v", tt.wantSel, got)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	e := New()
	doc := document.NewDocument("", "one two three")

	sel := e.Delete(doc, cursor.NewSelection(8, 3))

	if doc.Text() != "one three" {
		t.Errorf("expected 'one three', got %q", doc.Text())
	}
	if sel != cursor.NewCaret(3) {
		t.Errorf("expected caret at 3, got %v", sel)
	}
	if e.Clipboard().Text() != "" {
		t.Error("delete should not touch the clipboard")
	}
}

func TestOutOfRangeSelectionPanics(t *testing.T) {
	e := New()
	doc := document.NewDocument("", "abc")

	defer func() {
		v := recover()
		if _, ok := v.(*document.InvariantError); !ok {
			t.Errorf("expected *document.InvariantError panic, got %v", v)
		}
	}()
	e.ChangeCase(doc, cursor.NewSpan(2, 10), Upper)
}

func TestSplitCharacterSelectionPanics(t *testing.T) {
	tests := []struct {
		name string
		run  func(e *Engine, doc *document.Document)
	}{
		{"change case", func(e *Engine, doc *document.Document) { e.ChangeCase(doc, cursor.NewSpan(1, 2), Invert) }},
		{"cut", func(e *Engine, doc *document.Document) { e.Cut(doc, cursor.NewSpan(1, 1)) }},
		{"copy", func(e *Engine, doc *document.Document) { e.Copy(doc, cursor.NewSpan(0, 1)) }},
		{"delete", func(e *Engine, doc *document.Document) { e.Delete(doc, cursor.NewSpan(1, 1)) }},
		{"paste", func(e *Engine, doc *document.Document) { e.Paste(doc, cursor.NewCaret(1)) }},
		{"caret status", func(_ *Engine, doc *document.Document) { CaretStatus(doc, cursor.NewCaret(1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.NewDocument("", "čx")
			defer func() {
				v := recover()
				if _, ok := v.(*document.InvariantError); !ok {
					t.Errorf("expected *document.InvariantError panic, got %v", v)
				}
				if doc.Text() != "čx" || doc.IsModified() {
					t.Errorf("expected document untouched, got %q modified=%v", doc.Text(), doc.IsModified())
				}
			}()
			tt.run(New(), doc)
		})
	}
}

func TestParseCaseMode(t *testing.T) {
	for _, mode := range []CaseMode{Upper, Lower, Invert} {
		got, ok := ParseCaseMode(mode.String())
		if !ok || got != mode {
			t.Errorf("ParseCaseMode(%q) = %v, %v", mode.String(), got, ok)
		}
	}
	if _, ok := ParseCaseMode("title"); ok {
		t.Error("expected unknown mode to fail")
	}
}
