package pqueue

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned by Pop and Peek when the heap holds no elements.
var ErrEmpty = errors.New("pqueue: heap is empty")

// Heap is an indexed binary min-heap over unique elements.
type Heap[E comparable] struct {
	// slots stores the complete binary tree level-order, 1-indexed:
	// slots[0] is an unused sentinel so that the parent of slot i is
	// i/2 and its children are 2i and 2i+1.
	slots []E
	// rank is the inverse of slots, mapping each element to the slot
	// it currently occupies.
	rank map[E]int
	less func(a, b E) bool // returns true if a has higher priority than b
}

// New creates a heap ordered by less and pushes each of items in the
// order given. The less function should return true if a should be
// popped before b.
func New[E comparable](less func(a, b E) bool, items ...E) *Heap[E] {
	h := &Heap[E]{
		slots: make([]E, 1, len(items)+1),
		rank:  make(map[E]int, len(items)),
		less:  less,
	}
	for _, x := range items {
		h.Push(x)
	}
	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[E]) Len() int {
	return len(h.slots) - 1
}

// Contains reports whether x is currently in the heap.
func (h *Heap[E]) Contains(x E) bool {
	_, ok := h.rank[x]
	return ok
}

// Push inserts x into the heap. Pushing an element that is already
// present is a caller bug and panics: silently overwriting it would
// corrupt the element-to-slot index undetected.
func (h *Heap[E]) Push(x E) {
	if _, ok := h.rank[x]; ok {
		panic(fmt.Sprintf("pqueue: push of element already in heap: %v", x))
	}
	h.slots = append(h.slots, x)
	h.rank[x] = len(h.slots) - 1
	h.up(len(h.slots) - 1)
}

// Pop removes and returns the minimum element. It returns ErrEmpty if
// the heap holds no elements.
func (h *Heap[E]) Pop() (E, error) {
	if h.Len() == 0 {
		var zero E
		return zero, ErrEmpty
	}

	root := h.slots[1]
	delete(h.rank, root)

	last := h.slots[len(h.slots)-1]
	h.slots = h.slots[:len(h.slots)-1]
	if h.Len() > 0 {
		h.slots[1] = last
		h.rank[last] = 1
		h.down(1)
	}
	return root, nil
}

// Peek returns the minimum element without removing it. It returns
// ErrEmpty if the heap holds no elements.
func (h *Heap[E]) Peek() (E, error) {
	if h.Len() == 0 {
		var zero E
		return zero, ErrEmpty
	}
	return h.slots[1], nil
}

// Update replaces the element old with new in place, restoring heap
// order with a single sift: down if new compares greater than old, up
// if it compares smaller, neither if the two are equivalent under the
// ordering. It panics if old is not in the heap, or if new is already
// present elsewhere in it.
func (h *Heap[E]) Update(old, new E) {
	i, ok := h.rank[old]
	if !ok {
		panic(fmt.Sprintf("pqueue: update of element not in heap: %v", old))
	}
	if _, ok := h.rank[new]; ok && new != old {
		panic(fmt.Sprintf("pqueue: update to element already in heap: %v", new))
	}

	delete(h.rank, old)
	h.slots[i] = new
	h.rank[new] = i

	switch {
	case h.less(old, new):
		h.down(i)
	case h.less(new, old):
		h.up(i)
	}
}

// swap exchanges the elements in slots i and j and their rank entries.
func (h *Heap[E]) swap(i, j int) {
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
	h.rank[h.slots[i]] = i
	h.rank[h.slots[j]] = j
}

// up moves the element in slot i toward the root until its parent no
// longer compares greater.
func (h *Heap[E]) up(i int) {
	for i > 1 && h.less(h.slots[i], h.slots[i/2]) {
		h.swap(i, i/2)
		i /= 2
	}
}

// down moves the element in slot i toward the leaves, swapping it with
// the smaller of its children at each step until neither child compares
// smaller.
func (h *Heap[E]) down(i int) {
	n := len(h.slots)
	for {
		smallest := i
		if left := 2 * i; left < n && h.less(h.slots[left], h.slots[smallest]) {
			smallest = left
		}
		if right := 2*i + 1; right < n && h.less(h.slots[right], h.slots[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
