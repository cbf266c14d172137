// Package fifo implements a first-in-first-out queue built from two
// stacks, giving amortized O(1) push and pop without shifting elements.
//
// Elements are pushed onto an inbound stack. When a pop finds the
// outbound stack empty, the inbound stack is reversed into it in one
// O(n) transfer; each element is moved at most once over the queue's
// lifetime, so the amortized cost per operation stays constant.
//
// Basic usage:
//
//	q := fifo.New[int]()
//	q.Push(1)
//	q.Push(2)
//
//	x, err := q.Pop()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(x) // 1
//
// A Queue is not safe for concurrent use; callers sharing one across
// goroutines must add their own synchronization.
package fifo
