// File: internal/freelist/policies.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package freelist

// ConstructPolicy is satisfied by both SPConstruct and MPConstruct,
// letting Pool compose either without knowing which one it holds.
type ConstructPolicy[T any] interface {
	Construct(owner Destroyer[T], factory func() (T, error)) (*Cell[T], error)
}

// DestroyPolicy is satisfied by both SCDestroy and MCDestroy.
type DestroyPolicy[T any] interface {
	Unlink(c *Cell[T])
}

var (
	_ ConstructPolicy[int] = (*SPConstruct[int])(nil)
	_ ConstructPolicy[int] = (*MPConstruct[int])(nil)
	_ DestroyPolicy[int]   = (*SCDestroy[int])(nil)
	_ DestroyPolicy[int]   = (*MCDestroy[int])(nil)
)
