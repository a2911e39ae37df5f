// File: internal/freelist/pad.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package freelist

import "golang.org/x/sys/cpu"

// pad is the false-sharing guard placed after every hot atomic field
// shared between producers or consumers, matching the teacher's own
// manual [64]byte padding in core/concurrency/ring.go and
// lock_free_queue.go. golang.org/x/sys/cpu.CacheLinePad is the same
// idea with the platform's actual line size instead of a hardcoded 64.
type pad = cpu.CacheLinePad
