package epool

// node is a single element of a List. Nodes are owned exclusively by their
// list and are reachable only through the list's front/back pointers and
// neighboring links.
type node[T any] struct {
	prev *node[T]
	next *node[T]
	elem T
}

// List is a doubly-linked deque with O(1) push and pop at both ends.
//
// It satisfies the storage contract of the guarded task queue but is a
// general-purpose container. The list performs no locking of its own;
// concurrent use is safe only when every access is serialized externally.
//
// Invariant: front and back are both nil iff size is 0, and following
// next-links from front (or prev-links from back) visits exactly size nodes.
type List[T any] struct {
	front *node[T]
	back  *node[T]
	size  int
}

// NewList returns an empty list.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements currently stored.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// PushFront inserts elem at the head of the list.
func (l *List[T]) PushFront(elem T) {
	n := &node[T]{elem: elem}
	if old := l.front; old != nil {
		old.prev = n
		n.next = old
	} else {
		l.back = n
	}
	l.front = n
	l.size++
}

// PushBack inserts elem at the tail of the list.
func (l *List[T]) PushBack(elem T) {
	n := &node[T]{elem: elem}
	if old := l.back; old != nil {
		old.next = n
		n.prev = old
	} else {
		l.front = n
	}
	l.back = n
	l.size++
}

// PopFront removes and returns the head element.
// The second result is false when the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	var zero T
	n := l.front
	if n == nil {
		return zero, false
	}
	l.front = n.next
	if l.front != nil {
		l.front.prev = nil
	} else {
		l.back = nil
	}
	n.next = nil
	l.size--
	return n.elem, true
}

// PopBack removes and returns the tail element.
// The second result is false when the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	var zero T
	n := l.back
	if n == nil {
		return zero, false
	}
	l.back = n.prev
	if l.back != nil {
		l.back.next = nil
	} else {
		l.front = nil
	}
	n.prev = nil
	l.size--
	return n.elem, true
}

// Front returns the head element without removing it.
func (l *List[T]) Front() (T, bool) {
	var zero T
	if l.front == nil {
		return zero, false
	}
	return l.front.elem, true
}

// Back returns the tail element without removing it.
func (l *List[T]) Back() (T, bool) {
	var zero T
	if l.back == nil {
		return zero, false
	}
	return l.back.elem, true
}

// FrontRef returns a mutable pointer to the head element, or nil when empty.
// The pointer is invalidated by any structural mutation of the list.
func (l *List[T]) FrontRef() *T {
	if l.front == nil {
		return nil
	}
	return &l.front.elem
}

// BackRef returns a mutable pointer to the tail element, or nil when empty.
// The pointer is invalidated by any structural mutation of the list.
func (l *List[T]) BackRef() *T {
	if l.back == nil {
		return nil
	}
	return &l.back.elem
}

// Clear removes every element. Equivalent to popping until empty, so every
// node is released exactly once.
func (l *List[T]) Clear() {
	for {
		if _, ok := l.PopFront(); !ok {
			return
		}
	}
}

// Extend appends every element produced by next (until it reports false)
// to the tail of the list.
func (l *List[T]) Extend(next func() (T, bool)) {
	for {
		elem, ok := next()
		if !ok {
			return
		}
		l.PushBack(elem)
	}
}

// ToSlice returns the elements in front-to-back order.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.front; n != nil; n = n.next {
		out = append(out, n.elem)
	}
	return out
}

// Equal reports whether l and other have the same length and equal elements
// in iteration order, using eq for element comparison.
func (l *List[T]) Equal(other *List[T], eq func(a, b T) bool) bool {
	if l.size != other.size {
		return false
	}
	a, b := l.front, other.front
	for a != nil {
		if !eq(a.elem, b.elem) {
			return false
		}
		a, b = a.next, b.next
	}
	return true
}

// Compare orders l against other lexicographically in iteration order using
// cmp for element comparison. The result is the first non-zero element
// comparison; if one list is a prefix of the other, the shorter is smaller.
func (l *List[T]) Compare(other *List[T], cmp func(a, b T) int) int {
	a, b := l.front, other.front
	for a != nil && b != nil {
		if c := cmp(a.elem, b.elem); c != 0 {
			return c
		}
		a, b = a.next, b.next
	}
	switch {
	case a != nil:
		return 1
	case b != nil:
		return -1
	default:
		return 0
	}
}

// Iter is a bidirectional iterator over a list.
//
// The iterator borrows the list; structural mutation of the list while an
// iterator is live invalidates it. Next and Prev consume elements from
// opposite ends of the same remaining range, so a mixed traversal visits
// each element at most once.
type Iter[T any] struct {
	front     *node[T]
	back      *node[T]
	remaining int
}

// Iter returns an iterator positioned over the whole list.
func (l *List[T]) Iter() Iter[T] {
	return Iter[T]{front: l.front, back: l.back, remaining: l.size}
}

// Remaining reports how many elements the iterator has not yet yielded.
func (it *Iter[T]) Remaining() int { return it.remaining }

// Next yields the next element front-to-back.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.remaining == 0 {
		return zero, false
	}
	n := it.front
	it.front = n.next
	it.remaining--
	return n.elem, true
}

// Prev yields the next element back-to-front.
func (it *Iter[T]) Prev() (T, bool) {
	var zero T
	if it.remaining == 0 {
		return zero, false
	}
	n := it.back
	it.back = n.prev
	it.remaining--
	return n.elem, true
}

// Drain is an owning iterator that empties the list as it proceeds.
// Next pops from the front, Prev pops from the back.
type Drain[T any] struct {
	list *List[T]
}

// Drain returns a draining iterator over the list.
func (l *List[T]) Drain() Drain[T] {
	return Drain[T]{list: l}
}

// Remaining reports how many elements are left to drain.
func (d *Drain[T]) Remaining() int { return d.list.size }

// Next removes and returns the head element.
func (d *Drain[T]) Next() (T, bool) { return d.list.PopFront() }

// Prev removes and returns the tail element.
func (d *Drain[T]) Prev() (T, bool) { return d.list.PopBack() }

// Cursor is a mutable position within a list.
//
// A fresh cursor starts at the ghost position: the notional slot between
// the last and first elements where Current and Index report nothing.
// MoveNext from the ghost enters at the front, MovePrev enters at the back,
// and walking off either end parks the cursor back on the ghost, so
// repeated moves in one direction cycle through the list.
type Cursor[T any] struct {
	list *List[T]
	cur  *node[T]
	// index is valid only while cur is non-nil.
	index int
}

// Cursor returns a cursor parked at the ghost position.
func (l *List[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{list: l}
}

// MoveNext advances the cursor one element toward the back.
func (c *Cursor[T]) MoveNext() {
	if c.cur != nil {
		c.cur = c.cur.next
		c.index++
		return
	}
	c.cur = c.list.front
	c.index = 0
}

// MovePrev moves the cursor one element toward the front.
func (c *Cursor[T]) MovePrev() {
	if c.cur != nil {
		c.cur = c.cur.prev
		c.index--
		return
	}
	c.cur = c.list.back
	c.index = c.list.size - 1
}

// Current returns a mutable pointer to the element under the cursor,
// or nil at the ghost position.
func (c *Cursor[T]) Current() *T {
	if c.cur == nil {
		return nil
	}
	return &c.cur.elem
}

// Index returns the zero-based position of the cursor.
// The second result is false at the ghost position.
func (c *Cursor[T]) Index() (int, bool) {
	if c.cur == nil {
		return 0, false
	}
	return c.index, true
}

// PeekNext returns the element after the cursor without moving it.
func (c *Cursor[T]) PeekNext() (T, bool) {
	var zero T
	if c.cur == nil || c.cur.next == nil {
		return zero, false
	}
	return c.cur.next.elem, true
}

// PeekPrev returns the element before the cursor without moving it.
func (c *Cursor[T]) PeekPrev() (T, bool) {
	var zero T
	if c.cur == nil || c.cur.prev == nil {
		return zero, false
	}
	return c.cur.prev.elem, true
}
