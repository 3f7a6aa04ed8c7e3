package event

import (
	"reflect"
	"testing"
)

func TestListeners_NotifyInRegistrationOrder(t *testing.T) {
	var l Listeners[int]
	var got []string

	l.Add(func(v int) { got = append(got, "first") })
	l.Add(func(v int) { got = append(got, "second") })
	l.Add(func(v int) { got = append(got, "third") })

	l.Notify(1)

	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestListeners_Remove(t *testing.T) {
	var l Listeners[string]
	calls := 0

	h1 := l.Add(func(string) { calls++ })
	h2 := l.Add(func(string) { calls += 10 })

	if h1 == h2 {
		t.Fatal("expected distinct handles")
	}
	if !l.Remove(h1) {
		t.Fatal("expected remove to succeed")
	}
	if l.Remove(h1) {
		t.Error("expected second remove to fail")
	}

	l.Notify("x")
	if calls != 10 {
		t.Errorf("expected only remaining listener to run, calls=%d", calls)
	}
	if l.Len() != 1 {
		t.Errorf("expected 1 listener, got %d", l.Len())
	}
}

func TestListeners_NilListener(t *testing.T) {
	var l Listeners[int]
	if h := l.Add(nil); h != 0 {
		t.Errorf("expected zero handle for nil listener, got %d", h)
	}
	if l.Len() != 0 {
		t.Errorf("expected no listeners, got %d", l.Len())
	}
}

func TestListeners_RemoveDuringNotify(t *testing.T) {
	var l Listeners[int]
	var h2 Handle
	calls := 0

	l.Add(func(int) {
		calls++
		l.Remove(h2)
	})
	h2 = l.Add(func(int) { calls++ })

	// Removal takes effect on the next delivery.
	l.Notify(0)
	if calls != 2 {
		t.Errorf("expected 2 calls on first notify, got %d", calls)
	}

	l.Notify(0)
	if calls != 3 {
		t.Errorf("expected 3 calls after second notify, got %d", calls)
	}
}

func TestListeners_Clear(t *testing.T) {
	var l Listeners[int]
	l.Add(func(int) { t.Error("listener should not run after Clear") })
	l.Clear()
	l.Notify(0)
}
