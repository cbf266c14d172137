// Package pqueue implements an indexed binary min-heap: a priority queue
// over unique elements that supports updating the priority of an element
// already in the heap in O(log n) time.
//
// The heap keeps a reverse index from each element to its current slot,
// so an arbitrary element can be located in O(1) and re-sifted after a
// change. This is the building block for relaxation-style algorithms
// such as Dijkstra's shortest paths or Prim's minimum spanning tree,
// where the tentative priority of a queued element shrinks as better
// candidates are discovered.
//
// Elements act as their own identity keys and must therefore be unique:
// pushing an element that is already present is a caller bug and panics.
// The ordering is determined by a user-provided less function, so the
// same type can back a min-heap or a max-heap.
//
// Basic usage:
//
//	// Create a min-heap over ints
//	h := pqueue.New(func(a, b int) bool { return a < b }, 5, 3, 8, 1)
//
//	// Pop elements in ascending order
//	for h.Len() > 0 {
//	    x, _ := h.Pop()
//	    fmt.Println(x)
//	}
//
//	// Decrease an element's priority in place
//	h.Push(20)
//	h.Update(20, 5)
//
// All operations run to completion without blocking; Push, Pop and
// Update are O(log n), Len, Peek and Contains are O(1).
//
// A Heap is not safe for concurrent use. Callers that share a heap
// across goroutines must serialize access with their own lock; the
// slot/index bookkeeping is not consistent under interleaved mutation.
package pqueue
