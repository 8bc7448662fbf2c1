// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrEmpty indicates Pop or Pull found no element available.
//
// This is a control flow signal, not a failure: the caller should
// retry later (with backoff) rather than propagate the error. It is
// sourced from [iox] for ecosystem consistency with code.hybscloud.com/lfq.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    v, err := q.Pop()
//	    if err == nil {
//	        backoff.Reset()
//	        return v, true
//	    }
//	    if !cq.IsEmpty(err) {
//	        return zero, false // unexpected error
//	    }
//	    backoff.Wait()
//	}
var ErrEmpty = iox.ErrWouldBlock

// IsEmpty reports whether err indicates Pop/Pull found nothing
// available. Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsEmpty(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// FatalKind classifies a FatalError.
type FatalKind int

const (
	// KindCapacityExhausted: a reservation strictly exceeds the store's
	// hard maximum capacity.
	KindCapacityExhausted FatalKind = iota
	// KindGrowthFailed: the pinned store rejected GrowTo.
	KindGrowthFailed
	// KindWritersPendingAtClose: Close observed written != writeReserved,
	// meaning a writer was still mid-push.
	KindWritersPendingAtClose
)

func (k FatalKind) String() string {
	switch k {
	case KindCapacityExhausted:
		return "capacity exhausted"
	case KindGrowthFailed:
		return "growth failed"
	case KindWritersPendingAtClose:
		return "writers pending at close"
	default:
		return "unknown"
	}
}

// FatalError signals a programmer-contract violation: a misconfigured
// backing store, an index past the hard maximum capacity, or a Close
// called while a writer was still in flight. These are unrecoverable
// by design: raising them after any partial write would leave the
// queue's invariants observably broken, so the engine checks before
// attempting the write and panics rather than returning them —
// contract violations like this are programmer errors, not conditions
// a caller should be expected to handle via an error return.
type FatalError struct {
	Kind  FatalKind
	Index uint64
	Bound uint64
}

func (e *FatalError) Error() string {
	switch e.Kind {
	case KindCapacityExhausted:
		return fmt.Sprintf("cq: reservation %d exceeds max capacity %d", e.Index, e.Bound)
	case KindGrowthFailed:
		return fmt.Sprintf("cq: grow to %d failed (max capacity %d)", e.Index, e.Bound)
	case KindWritersPendingAtClose:
		return fmt.Sprintf("cq: close observed %d reserved but unpublished slot(s)", e.Index)
	default:
		return "cq: fatal error"
	}
}
