package fifo

import "errors"

// ErrEmpty is returned by Pop and Peek when the queue holds no elements.
var ErrEmpty = errors.New("fifo: queue is empty")

// Queue is a FIFO queue backed by two stacks. Elements arrive on the
// inbound stack and leave from the outbound stack, which holds them in
// reversed arrival order so the oldest element is always on top.
type Queue[E any] struct {
	in  []E
	out []E
}

// New creates an empty queue.
func New[E any]() *Queue[E] {
	return &Queue[E]{}
}

// Len returns the number of elements in the queue.
func (q *Queue[E]) Len() int {
	return len(q.in) + len(q.out)
}

// Push appends x to the back of the queue. O(1).
func (q *Queue[E]) Push(x E) {
	q.in = append(q.in, x)
}

// Pop removes and returns the element at the front of the queue. It
// returns ErrEmpty if the queue holds no elements. Amortized O(1): the
// inbound stack is reversed into the outbound stack only when the
// latter runs dry, moving each element at most once.
func (q *Queue[E]) Pop() (E, error) {
	if len(q.out) == 0 {
		if len(q.in) == 0 {
			var zero E
			return zero, ErrEmpty
		}
		q.refill()
	}
	x := q.out[len(q.out)-1]
	q.out = q.out[:len(q.out)-1]
	return x, nil
}

// Peek returns the element at the front of the queue without removing
// it. It returns ErrEmpty if the queue holds no elements.
func (q *Queue[E]) Peek() (E, error) {
	if len(q.out) == 0 {
		if len(q.in) == 0 {
			var zero E
			return zero, ErrEmpty
		}
		q.refill()
	}
	return q.out[len(q.out)-1], nil
}

// refill reverses the inbound stack into the outbound stack and clears
// it. Only called when the outbound stack is empty.
func (q *Queue[E]) refill() {
	for i := len(q.in) - 1; i >= 0; i-- {
		q.out = append(q.out, q.in[i])
	}
	clear(q.in)
	q.in = q.in[:0]
}
