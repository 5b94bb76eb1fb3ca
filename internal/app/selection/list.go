package selection

// List is an ordered sequence with a single cursor.
// The cursor is a valid index whenever the list is non-empty and absent otherwise.
type List[T any] struct {
	items    []T
	cursor   int
	selected bool
}

// New creates a list with the cursor on the first item, if any
func New[T any](items []T) *List[T] {
	l := &List[T]{}
	l.Replace(items)

	return l
}

// Replace swaps the items and moves the cursor to the first item, if any
func (l *List[T]) Replace(items []T) {
	l.items = items
	l.cursor = 0
	l.selected = len(items) > 0
}

// Next moves the cursor forward, wrapping past the last item
func (l *List[T]) Next() {
	if len(l.items) == 0 {
		return
	}

	l.cursor = (l.cursor + 1) % len(l.items)
}

// Previous moves the cursor backward, wrapping before the first item
func (l *List[T]) Previous() {
	if len(l.items) == 0 {
		return
	}

	if l.cursor == 0 {
		l.cursor = len(l.items) - 1
	} else {
		l.cursor--
	}
}

// Select moves the cursor to i, or to the first item when i is out of range
func (l *List[T]) Select(i int) {
	if len(l.items) == 0 {
		l.cursor = 0
		l.selected = false

		return
	}

	if i < 0 || i >= len(l.items) {
		i = 0
	}

	l.cursor = i
	l.selected = true
}

// Current returns the item under the cursor
func (l *List[T]) Current() (T, bool) {
	var zero T
	if !l.selected {
		return zero, false
	}

	return l.items[l.cursor], true
}

// Cursor returns the cursor index
func (l *List[T]) Cursor() (int, bool) {
	if !l.selected {
		return 0, false
	}

	return l.cursor, true
}

// Len returns the number of items
func (l *List[T]) Len() int {
	return len(l.items)
}

// Items returns a copy of the items
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)

	return out
}

// Clone returns an independent copy of the list
func (l *List[T]) Clone() *List[T] {
	return &List[T]{
		items:    l.Items(),
		cursor:   l.cursor,
		selected: l.selected,
	}
}
