package transform

import (
	"sort"
	"strings"

	"github.com/dshills/notepad/internal/document"
	"github.com/dshills/notepad/internal/engine/cursor"
	"github.com/dshills/notepad/internal/locale"
)

// Compare orders two lines. It is the type locale comparators have.
type Compare = locale.Compare

// Lexical compares lines byte by byte.
func Lexical(a, b string) int {
	return strings.Compare(a, b)
}

// LineRange widens sel to the whole lines it touches. The range includes
// the terminator of its last line, except at the end of the buffer.
func LineRange(buf document.TextBuffer, sel Selection) (start, end ByteOffset) {
	startRow := buf.LineIndexOf(sel.Offset())
	endRow := buf.LineIndexOf(sel.End())

	start = buf.LineStartOffset(startRow)
	if endRow+1 < buf.LineCount() {
		end = buf.LineStartOffset(endRow + 1)
	} else {
		end = buf.Len()
	}
	return start, end
}

// splitLines splits text after each "\n". A trailing empty piece is dropped.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// SortLines sorts the whole lines touched by sel. Sorting is stable;
// descending reverses the comparison so equal lines keep their order.
//
// Every line is compared with its terminator. The last line of the buffer
// gains one for the sort and the result gives it back, so the length of
// the document never changes. The result selects the sorted lines.
func (e *Engine) SortLines(doc *document.Document, sel Selection, cmp Compare, descending bool) Selection {
	if cmp == nil {
		cmp = Lexical
	}
	buf := doc.Buffer()
	start, end := LineRange(buf, sel)
	text := selected("sort lines", buf, cursor.NewSelection(start, end))

	lines := splitLines(text)
	if n := len(lines); n > 0 && !strings.HasSuffix(lines[n-1], "\n") {
		lines[n-1] += "\n"
	}

	less := func(i, j int) bool { return cmp(lines[i], lines[j]) < 0 }
	if descending {
		less = func(i, j int) bool { return cmp(lines[j], lines[i]) < 0 }
	}
	sort.SliceStable(lines, less)

	sorted := strings.Join(lines, "")
	// Give back the terminator the last line borrowed; the range keeps
	// its length and the buffer still ends without a newline.
	if !strings.HasSuffix(text, "\n") {
		sorted = strings.TrimSuffix(sorted, "\n")
	}
	return rewrite("sort lines", buf, start, end, text, sorted)
}

// UniqueLines removes repeated lines from the whole lines touched by sel,
// keeping the first occurrence of each. Lines are compared exactly,
// terminators included. The result selects the remaining lines.
func (e *Engine) UniqueLines(doc *document.Document, sel Selection) Selection {
	buf := doc.Buffer()
	start, end := LineRange(buf, sel)
	text := selected("unique lines", buf, cursor.NewSelection(start, end))

	lines := splitLines(text)
	seen := make(map[string]struct{}, len(lines))
	kept := lines[:0]
	for _, line := range lines {
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		kept = append(kept, line)
	}
	return rewrite("unique lines", buf, start, end, text, strings.Join(kept, ""))
}

// rewrite replaces [start, end) with updated unless it equals original.
func rewrite(op string, buf document.TextBuffer, start, end ByteOffset, original, updated string) Selection {
	if updated == original {
		return cursor.NewSelection(start, end)
	}
	next := replace(op, buf, start, end, updated)
	return cursor.NewSelection(start, next)
}
