package fifo_test

import (
	"fmt"

	"github.com/davidvella/queues/fifo"
)

// ExampleQueue demonstrates FIFO ordering under interleaved pushes and
// pops.
func ExampleQueue() {
	q := fifo.New[int]()

	q.Push(1)
	q.Push(2)

	x, _ := q.Pop()
	fmt.Println(x)

	q.Push(3)

	for q.Len() > 0 {
		x, _ := q.Pop()
		fmt.Println(x)
	}

	// Output:
	// 1
	// 2
	// 3
}
