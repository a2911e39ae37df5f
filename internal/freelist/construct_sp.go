// File: internal/freelist/construct_sp.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Single-producer construct policy: wait-free, not safe to call
// concurrently from more than one thread (§4.2).

package freelist

// SPConstruct removes the head cell from the free list without any
// atomics beyond the ones already on Cell.next, relying entirely on
// program order.
type SPConstruct[T any] struct {
	head *Cell[T]
}

// NewSPConstruct starts the policy at storage's initial head.
func NewSPConstruct[T any](s *Storage[T]) *SPConstruct[T] {
	return &SPConstruct[T]{head: s.Head()}
}

// Construct implements §4.2. factory is the Go stand-in for T's
// constructor: it may fail, in which case the free list is left
// exactly as it was before the call. A nil cell with a nil error
// means the pool is exhausted (Empty).
func (c *SPConstruct[T]) Construct(owner Destroyer[T], factory func() (T, error)) (*Cell[T], error) {
	h := c.head
	n := h.Next()
	if n == nil {
		return nil, nil // head is the sentinel: pool exhausted
	}

	val, err := factory()
	if err != nil {
		// h has not been mutated and c.head has not advanced, so the
		// free list is already in its pre-call state: nothing to repair.
		return nil, err
	}

	h.SetOwner(owner)
	*h.Value() = val
	c.head = n
	return h, nil
}
