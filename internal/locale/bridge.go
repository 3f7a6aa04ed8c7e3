package locale

import (
	"golang.org/x/text/language"

	"github.com/dshills/notepad/internal/event"
)

// Bridge relays a parent Source to its own listeners while connected.
//
// A window subscribes to a Bridge instead of the shared Provider and
// disconnects when it goes away, releasing its hold on the parent.
// Reconnecting delivers one notification if the language changed while
// the bridge was disconnected.
type Bridge struct {
	parent    Source
	handle    event.Handle
	connected bool
	seen      string
	listeners event.Listeners[string]
}

// NewBridge creates a disconnected bridge over parent.
func NewBridge(parent Source) *Bridge {
	return &Bridge{parent: parent, seen: parent.Language()}
}

// Connect starts relaying parent changes. It is a no-op when connected.
func (b *Bridge) Connect() {
	if b.connected {
		return
	}
	b.connected = true
	b.handle = b.parent.Subscribe(b.relay)

	if lang := b.parent.Language(); lang != b.seen {
		b.relay(lang)
	}
}

// Disconnect stops relaying. It is a no-op when disconnected.
func (b *Bridge) Disconnect() {
	if !b.connected {
		return
	}
	b.parent.Unsubscribe(b.handle)
	b.handle = 0
	b.connected = false
}

// Connected reports whether the bridge is relaying.
func (b *Bridge) Connected() bool {
	return b.connected
}

// Language returns the parent's current language.
func (b *Bridge) Language() string {
	return b.parent.Language()
}

// Tag returns the parent's current language tag.
func (b *Bridge) Tag() language.Tag {
	return b.parent.Tag()
}

// Subscribe registers fn on the bridge.
func (b *Bridge) Subscribe(fn func(lang string)) event.Handle {
	return b.listeners.Add(fn)
}

// Unsubscribe removes a bridge listener.
func (b *Bridge) Unsubscribe(h event.Handle) bool {
	return b.listeners.Remove(h)
}

// Comparator returns a collation for the parent's current language.
func (b *Bridge) Comparator() Compare {
	return Collation(b.parent.Tag())
}

func (b *Bridge) relay(lang string) {
	b.seen = lang
	b.listeners.Notify(lang)
}

var (
	_ Source = (*Provider)(nil)
	_ Source = (*Bridge)(nil)
)
