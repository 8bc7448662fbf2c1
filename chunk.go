// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

import "code.hybscloud.com/cq/internal/pinned"

// Chunk is an owning iterator over a contiguous range of slots handed
// out by Pull. It holds no back-pointer to the Queue's cursors: the
// range was already removed from the queue's valid range before the
// Chunk was returned, so a Chunk can outlive subsequent Push/Pop calls
// on the Queue it came from.
//
// Advancing a Chunk via Next moves the element out of the slot.
// Calling Close on a Chunk before it is fully drained drops the
// remaining un-yielded slots in place. A Chunk that simply becomes
// unreachable does not clear its slots: the un-yielded elements stay
// referenced by the queue's store until the store itself is collected.
type Chunk[T any] struct {
	store *pinned.Store[T]
	next  uint64
	end   uint64
}

func newChunk[T any](store *pinned.Store[T], begin, end uint64) *Chunk[T] {
	return &Chunk[T]{store: store, next: begin, end: end}
}

// Len returns the number of elements remaining in the chunk.
func (c *Chunk[T]) Len() int {
	if c.next >= c.end {
		return 0
	}
	return int(c.end - c.next)
}

// Next moves the next element out of the chunk and returns it along
// with true. Returns (zero-value, false) once the chunk is exhausted.
func (c *Chunk[T]) Next() (T, bool) {
	if c.next >= c.end {
		var zero T
		return zero, false
	}
	p := c.store.Ptr(c.next)
	value := *p
	var zero T
	*p = zero
	c.next++
	return value, true
}

// Close drops every un-yielded element in the chunk in place, without
// returning them. Safe to call on an already-exhausted chunk.
func (c *Chunk[T]) Close() {
	var zero T
	for ; c.next < c.end; c.next++ {
		*c.store.Ptr(c.next) = zero
	}
}

// All drains the chunk into a freshly allocated slice, in order. A
// convenience for callers that do not need incremental Next.
func (c *Chunk[T]) All() []T {
	out := make([]T, 0, c.Len())
	for {
		v, ok := c.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
