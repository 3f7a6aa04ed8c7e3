package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/notepad/internal/document"
)

// Statistics summarizes a document's text.
type Statistics struct {
	Characters int // Code points
	NonBlank   int // Code points that are not white space
	Lines      int // Newlines plus one
	Graphemes  int // User-perceived characters
	Bytes      int // UTF-8 length
}

// Stats counts the characters and lines in doc.
func Stats(doc *document.Document) Statistics {
	text := doc.Text()

	nonBlank := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			nonBlank++
		}
	}

	return Statistics{
		Characters: utf8.RuneCountInString(text),
		NonBlank:   nonBlank,
		Lines:      strings.Count(text, "\n") + 1,
		Graphemes:  uniseg.GraphemeClusterCount(text),
		Bytes:      len(text),
	}
}

// Status describes the caret for a status bar. Line and Column are
// 1-based and count code points; Selection is the selected code point count.
type Status struct {
	Line      int
	Column    int
	Selection int
}

// CaretStatus reports where the dot of sel sits in doc.
func CaretStatus(doc *document.Document, sel Selection) Status {
	buf := doc.Buffer()
	sel = sel.Clamp(buf.Len())

	aligned("caret status", buf, sel.Dot)
	p := buf.OffsetToPoint(sel.Dot)
	before, err := buf.TextRange(sel.Dot-ByteOffset(p.Column), sel.Dot)
	if err != nil {
		document.Invariant("caret status", "caret outside buffer", err)
	}

	return Status{
		Line:      int(p.Line) + 1,
		Column:    utf8.RuneCountInString(before) + 1,
		Selection: utf8.RuneCountInString(selected("caret status", buf, sel)),
	}
}
