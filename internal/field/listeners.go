package field

import "github.com/google/uuid"

// Subscription is a registered listener. Cancel removes it.
type Subscription struct {
	id     string
	cancel func(string)
}

// Cancel unregisters the listener. Calling it more than once is a no-op.
func (s Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel(s.id)
	}
}

type entry[F any] struct {
	id string
	fn F
}

// listeners keeps callbacks in registration order.
type listeners[F any] struct {
	entries []entry[F]
}

func (l *listeners[F]) add(fn F) Subscription {
	id := uuid.NewString()
	l.entries = append(l.entries, entry[F]{id: id, fn: fn})
	return Subscription{id: id, cancel: l.remove}
}

func (l *listeners[F]) remove(id string) {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

// snapshot lets callbacks register or cancel during dispatch without
// affecting the current round.
func (l *listeners[F]) snapshot() []F {
	out := make([]F, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.fn
	}
	return out
}

func (l *listeners[F]) len() int { return len(l.entries) }
