// File: pool/errors.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import (
	"errors"
	"fmt"

	"github.com/momentics/freelistpool/internal/freelist"
)

var (
	// ErrAllocationFailed is returned by NewSPSC, NewSPMC, NewMPSC and
	// NewMPMC when the requested capacity exceeds the storage limit of
	// 1<<40 cells. An allocation below that limit that the runtime
	// cannot satisfy is not reported through it. It is never returned
	// by Construct (§7).
	ErrAllocationFailed = freelist.ErrAllocationFailed

	// ErrConstructorFailure wraps an error returned by a caller's
	// factory function. The pool's free list is left unchanged when
	// this is returned (§4.2, §4.3, §7).
	ErrConstructorFailure = errors.New("pool: constructor failed")

	// ErrMisuse is returned, on a best-effort basis only, when a
	// handle is released more than once. Per §7, misuse is otherwise
	// undefined behaviour and is not reliably detected.
	ErrMisuse = errors.New("pool: handle misuse")
)

func wrapConstructorFailure(cause error) error {
	return fmt.Errorf("%w: %w", ErrConstructorFailure, cause)
}
