package engine

import (
	"github.com/dshills/forge/internal/engine/edit"
	"github.com/dshills/forge/internal/engine/selection"
)

// EventKind identifies what changed a buffer.
type EventKind uint8

const (
	EventApply EventKind = iota
	EventUndo
	EventRedo
	EventJump
	EventSave
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventApply:
		return "apply"
	case EventUndo:
		return "undo"
	case EventRedo:
		return "redo"
	case EventJump:
		return "jump"
	case EventSave:
		return "save"
	default:
		return "unknown"
	}
}

// Event describes a change to a buffer, delivered after the buffer has
// reached its new state.
type Event struct {
	Kind     EventKind
	Revision uint64

	// Changes are the applied changes, in order. The first change's
	// offsets refer to the text before the event and each later change's
	// offsets refer to the text left by the changes before it, so applying
	// them in sequence reproduces the new text. An EventJump concatenates
	// the changes of every step it takes. Empty for EventSave.
	Changes edit.ChangeSet

	// Selection is the selection after the event.
	Selection selection.Selection
}

// Listener receives buffer events. It runs synchronously on the goroutine
// that changed the buffer and must not modify the buffer.
type Listener func(Event)

type listener struct {
	id int
	fn Listener
}

// Subscribe registers fn for all future events. The returned function
// removes it; calling it more than once is harmless.
func (b *Buffer) Subscribe(fn Listener) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

func (b *Buffer) notify(kind EventKind, changes edit.ChangeSet) {
	if len(b.listeners) == 0 {
		return
	}
	ev := Event{
		Kind:      kind,
		Revision:  b.revision,
		Changes:   changes,
		Selection: b.sel,
	}
	for _, l := range b.listeners {
		l.fn(ev)
	}
}
