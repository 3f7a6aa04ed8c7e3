package document

import (
	"testing"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument("/path/to/file.txt", "content")

	if doc.Path() != "/path/to/file.txt" {
		t.Errorf("expected path '/path/to/file.txt', got '%s'", doc.Path())
	}
	if doc.Name() != "file.txt" {
		t.Errorf("expected name 'file.txt', got '%s'", doc.Name())
	}
	if doc.Text() != "content" {
		t.Errorf("expected content, got %q", doc.Text())
	}
	if doc.IsModified() {
		t.Error("expected loaded document to be unmodified")
	}
	if doc.IsScratch() {
		t.Error("expected document to not be scratch")
	}
}

func TestNewScratchDocument(t *testing.T) {
	doc := NewScratchDocument()

	if doc.Path() != "" {
		t.Errorf("expected empty path, got '%s'", doc.Path())
	}
	if doc.Name() != UntitledName {
		t.Errorf("expected name %q, got %q", UntitledName, doc.Name())
	}
	if !doc.IsModified() {
		t.Error("expected new document to be modified")
	}
	if !doc.IsScratch() {
		t.Error("expected document to be scratch")
	}
}

func TestDocument_DistinctIDs(t *testing.T) {
	a, b := NewScratchDocument(), NewScratchDocument()
	if a.ID() == b.ID() {
		t.Error("expected distinct document IDs")
	}
}

func TestDocument_BufferEditSetsModified(t *testing.T) {
	doc := NewDocument("/a.txt", "abc")
	var events []DocumentEvent
	doc.Subscribe(func(ev DocumentEvent) { events = append(events, ev) })

	if _, err := doc.Buffer().Insert(3, "d"); err != nil {
		t.Fatal(err)
	}
	if !doc.IsModified() {
		t.Fatal("expected insert to mark document modified")
	}
	if err := doc.Buffer().Delete(0, 1); err != nil {
		t.Fatal(err)
	}

	// Only the first edit flips the flag.
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Kind != ModifiedChanged || events[0].Document != doc {
		t.Errorf("unexpected event: %+v", events[0])
	}
}

func TestDocument_SetModifiedNotifiesOnChangeOnly(t *testing.T) {
	doc := NewDocument("/a.txt", "")
	count := 0
	doc.Subscribe(func(ev DocumentEvent) {
		if ev.Kind == ModifiedChanged {
			count++
		}
	})

	doc.SetModified(false)
	doc.SetModified(true)
	doc.SetModified(true)
	doc.MarkSaved()
	doc.MarkSaved()

	if count != 2 {
		t.Errorf("expected 2 notifications, got %d", count)
	}
	if doc.IsModified() {
		t.Error("expected document to be saved")
	}
}

func TestDocument_SetPath(t *testing.T) {
	doc := NewScratchDocument()
	var events []DocumentEvent
	doc.Subscribe(func(ev DocumentEvent) { events = append(events, ev) })

	doc.SetPath("/x.txt") // none -> some
	doc.SetPath("/x.txt") // unchanged
	doc.SetPath("/y.txt")

	if len(events) != 2 {
		t.Fatalf("expected 2 path events, got %d", len(events))
	}
	if events[0].Kind != PathChanged || events[0].OldPath != "" {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if events[1].OldPath != "/x.txt" || doc.Path() != "/y.txt" {
		t.Errorf("unexpected second event: %+v", events[1])
	}
	if doc.Name() != "y.txt" {
		t.Errorf("expected name y.txt, got %s", doc.Name())
	}
}

func TestDocument_Unsubscribe(t *testing.T) {
	doc := NewScratchDocument()
	h := doc.Subscribe(func(DocumentEvent) { t.Error("listener should have been removed") })
	if !doc.Unsubscribe(h) {
		t.Fatal("expected unsubscribe to succeed")
	}
	doc.SetPath("/z.txt")
}
