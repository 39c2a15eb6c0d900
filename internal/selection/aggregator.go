package selection

import (
	"sync"

	"likes-cli/internal/categories"
)

// AnySelecter is the only thing the aggregator needs from a category source.
type AnySelecter interface {
	AnySelected() bool
}

// Listener receives the new aggregate value on every none <-> some transition.
type Listener func(anySelected bool)

// Aggregator turns per-item category mutations into edge events: it emits only when
// "at least one item is selected" changes value. The previously emitted value starts
// as false.
type Aggregator struct {
	mu        sync.Mutex
	last      bool
	listeners []*listenerEntry
}

type listenerEntry struct {
	fn Listener
}

func New() *Aggregator {
	return &Aggregator{}
}

// Bind creates an aggregator fed by every mutation of l.
func Bind(l *categories.List) (*Aggregator, func()) {
	a := New()
	cancel := l.Subscribe(func(l *categories.List) {
		a.OnCategoryChanged(l)
	})
	return a, cancel
}

// Value returns the last emitted aggregate value.
func (a *Aggregator) Value() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

// OnCategoryChanged recomputes the aggregate and notifies listeners if it flipped.
// It reports whether an edge was emitted.
func (a *Aggregator) OnCategoryChanged(src AnySelecter) bool {
	v := src.AnySelected()

	a.mu.Lock()
	if v == a.last {
		a.mu.Unlock()
		return false
	}
	a.last = v
	ls := make([]*listenerEntry, len(a.listeners))
	copy(ls, a.listeners)
	a.mu.Unlock()

	for _, l := range ls {
		l.fn(v)
	}
	return true
}

// Subscribe registers fn for edge events and returns a function that removes it.
func (a *Aggregator) Subscribe(fn Listener) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	e := &listenerEntry{fn: fn}
	a.mu.Lock()
	a.listeners = append(a.listeners, e)
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		for i, l := range a.listeners {
			if l == e {
				a.listeners = append(a.listeners[:i], a.listeners[i+1:]...)
				return
			}
		}
	}
}
