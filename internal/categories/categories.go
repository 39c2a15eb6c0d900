package categories

import (
	"strings"
	"sync"
)

// Item is one selectable category. Its identity is its position in the List.
type Item struct {
	Title    string `json:"title"`
	Selected bool   `json:"selected"`
}

// Observer is called after every successful mutation of a List.
type Observer func(l *List)

// List is the ordered set of categories shown on one onboarding screen.
//
// Order is fixed at construction; selection never reorders items. Mutations are
// serialized by mu. Observers run on the mutating goroutine after the lock is
// released, so they may read the list.
type List struct {
	mu        sync.Mutex
	items     []Item
	selected  int
	observers []*observerEntry
}

type observerEntry struct {
	fn Observer
}

// DefaultTitles returns the seed categories in display order.
func DefaultTitles() []string {
	return []string{
		"Юмор",
		"Еда",
		"Кино",
		"Рестораны",
		"Прогулки",
		"Политика",
		"Новости",
		"Автомобили",
		"Сериалы",
		"Рецепты",
	}
}

// New builds an unselected list from titles, preserving order.
func New(titles []string) (*List, error) {
	if len(titles) == 0 {
		return nil, errEmptyTitles()
	}
	items := make([]Item, 0, len(titles))
	for i, t := range titles {
		if strings.TrimSpace(t) == "" {
			return nil, errBlankTitle(i)
		}
		items = append(items, Item{Title: t})
	}
	return &List{items: items}, nil
}

// Len returns the number of items.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Item returns a copy of the item at i.
func (l *List) Item(i int) (Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.items) {
		return Item{}, errIndexOutOfRange(i, len(l.items))
	}
	return l.items[i], nil
}

// Items returns a snapshot of all items.
func (l *List) Items() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Titles() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.items))
	for _, it := range l.items {
		out = append(out, it.Title)
	}
	return out
}

// Selected returns the indices of selected items in display order.
func (l *List) Selected() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]int, 0, l.selected)
	for i, it := range l.items {
		if it.Selected {
			out = append(out, i)
		}
	}
	return out
}

func (l *List) SelectedTitles() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, l.selected)
	for _, it := range l.items {
		if it.Selected {
			out = append(out, it.Title)
		}
	}
	return out
}

// AnySelected reports whether at least one item is selected.
func (l *List) AnySelected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selected > 0
}

// Toggle flips the selection of the item at i and notifies observers once.
func (l *List) Toggle(i int) error {
	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		n := len(l.items)
		l.mu.Unlock()
		return errIndexOutOfRange(i, n)
	}
	l.setLocked(i, !l.items[i].Selected)
	obs := l.observersLocked()
	l.mu.Unlock()

	l.notify(obs)
	return nil
}

// SetSelected stores v as the selection of the item at i and notifies observers once,
// even when v equals the current value.
func (l *List) SetSelected(i int, v bool) error {
	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		n := len(l.items)
		l.mu.Unlock()
		return errIndexOutOfRange(i, n)
	}
	l.setLocked(i, v)
	obs := l.observersLocked()
	l.mu.Unlock()

	l.notify(obs)
	return nil
}

// Subscribe registers fn and returns a function that removes it.
func (l *List) Subscribe(fn Observer) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	e := &observerEntry{fn: fn}
	l.mu.Lock()
	l.observers = append(l.observers, e)
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, o := range l.observers {
			if o == e {
				l.observers = append(l.observers[:i], l.observers[i+1:]...)
				return
			}
		}
	}
}

func (l *List) setLocked(i int, v bool) {
	if l.items[i].Selected == v {
		return
	}
	l.items[i].Selected = v
	if v {
		l.selected++
	} else {
		l.selected--
	}
}

func (l *List) observersLocked() []*observerEntry {
	if len(l.observers) == 0 {
		return nil
	}
	out := make([]*observerEntry, len(l.observers))
	copy(out, l.observers)
	return out
}

func (l *List) notify(obs []*observerEntry) {
	for _, o := range obs {
		o.fn(l)
	}
}
