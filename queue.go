// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/cq/internal/pinned"
)

// Queue is a thread-safe, unbounded, growable FIFO queue. Producers
// (Push, Extend) and consumers (Pop, Pull) operate concurrently
// through a shared *Queue[T]; no caller needs exclusive access except
// for IterExclusive.
//
// Unlike code.hybscloud.com/lfq's fixed-capacity SCQ queues, Queue
// grows its backing store on demand up to an optional hard maximum
// (see WithMaxCapacity). This makes it the right primitive for
// work-stealing style workloads where a popped task generates new
// tasks appended to the back — the queue never blocks on capacity the
// way a bounded lfq queue would.
type Queue[T any] struct {
	_             pad
	writeReserved atomix.Uint64
	_             pad
	written       atomix.Uint64
	_             pad
	popped        atomix.Uint64
	_             pad
	store         *pinned.Store[T]
}

// New creates an empty Queue.
func New[T any](opts ...Option) *Queue[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Queue[T]{store: pinned.New[T](cfg.firstFragmentLen, cfg.maxCapacity)}
}

// From creates a Queue seeded with the elements of seed, in order.
// seed is copied; the Queue never aliases it. written = writeReserved
// = len(seed), popped = 0.
func From[T any](seed []T, opts ...Option) *Queue[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	q := &Queue[T]{store: pinned.FromSlice[T](seed, cfg.firstFragmentLen, cfg.maxCapacity)}
	n := uint64(len(seed))
	q.writeReserved.StoreRelaxed(n)
	q.written.StoreRelaxed(n)
	return q
}

// Push adds value to the back of the queue.
//
// Panics with a *FatalError (KindCapacityExhausted or KindGrowthFailed)
// if the reservation exceeds the configured max capacity — a
// misconfigured backing store.
func (q *Queue[T]) Push(value T) {
	idx := q.writeReserved.AddRelaxed(1) - 1
	maxCap := q.store.MaxCapacity()
	if idx >= maxCap {
		panic(&FatalError{Kind: KindCapacityExhausted, Index: idx, Bound: maxCap})
	}

	sw := spin.Wait{}
	for {
		capacity := q.store.Capacity()
		switch permitForOne(capacity, idx) {
		case permitJustWrite:
			*q.store.Ptr(idx) = value
			q.publish(idx, idx+1)
			return
		case permitGrowThenWrite:
			if err := q.store.GrowTo(idx + 1); err != nil {
				panic(&FatalError{Kind: KindGrowthFailed, Index: idx + 1, Bound: maxCap})
			}
			*q.store.Ptr(idx) = value
			q.publish(idx, idx+1)
			return
		case permitSpin:
			sw.Once()
		}
	}
}

// Extend appends every element of values, in order, to the back of the
// queue. If values is empty, Extend is a no-op. No partial publish is
// ever observable: either all of values becomes visible to consumers
// or (on a fatal capacity error) none of it does.
//
// Panics with a *FatalError if the reservation exceeds the configured
// max capacity.
func (q *Queue[T]) Extend(values []T) {
	n := uint64(len(values))
	if n == 0 {
		return
	}
	begin := q.writeReserved.AddRelaxed(n) - n
	end := begin + n
	last := end - 1
	maxCap := q.store.MaxCapacity()
	if last >= maxCap {
		panic(&FatalError{Kind: KindCapacityExhausted, Index: last, Bound: maxCap})
	}

	sw := spin.Wait{}
	for {
		capacity := q.store.Capacity()
		switch permitForMany(capacity, begin, last) {
		case permitJustWrite:
			q.writeRange(begin, end, values)
			q.publish(begin, end)
			return
		case permitGrowThenWrite:
			if err := q.store.GrowTo(end); err != nil {
				panic(&FatalError{Kind: KindGrowthFailed, Index: end, Bound: maxCap})
			}
			q.writeRange(begin, end, values)
			q.publish(begin, end)
			return
		case permitSpin:
			sw.Once()
		}
	}
}

func (q *Queue[T]) writeRange(begin, end uint64, values []T) {
	ptrs := q.store.PtrRange(begin, end)
	for i, p := range ptrs {
		*p = values[i]
	}
}

// publish advances written from from to to, spinning until every
// lower-indexed writer has published first. This enforces in-order
// publication: a consumer observing written == n is guaranteed every
// element in [0, n) has been fully written.
func (q *Queue[T]) publish(from, to uint64) {
	sw := spin.Wait{}
	for !q.written.CompareAndSwapAcqRel(from, to) {
		sw.Once()
	}
}

// Pop removes and returns the element at the front of the queue.
// Returns (zero-value, ErrEmpty) if no element is currently available.
func (q *Queue[T]) Pop() (T, error) {
	v, _, err := q.pop()
	return v, err
}

// PopWithIndex is Pop, additionally returning the global index the
// returned element occupied.
func (q *Queue[T]) PopWithIndex() (T, uint64, error) {
	return q.pop()
}

func (q *Queue[T]) pop() (T, uint64, error) {
	idx := q.popped.AddRelaxed(1) - 1
	sw := spin.Wait{}
	for {
		written := q.written.LoadAcquire()
		if idx < written {
			p := q.store.Ptr(idx)
			value := *p
			var zero T
			*p = zero
			return value, idx, nil
		}
		if q.popped.CompareAndSwapRelease(idx+1, idx) {
			var zero T
			return zero, idx, ErrEmpty
		}
		sw.Once()
	}
}

// Pull removes and returns up to chunkSize elements from the front of
// the queue as an owning Chunk. Returns (nil, ErrEmpty) unconditionally
// if chunkSize is 0, or if no elements are currently available. The
// returned Chunk's length is between 1 and chunkSize.
func (q *Queue[T]) Pull(chunkSize int) (*Chunk[T], error) {
	if chunkSize <= 0 {
		return nil, ErrEmpty
	}
	n := uint64(chunkSize)
	begin := q.popped.AddRelaxed(n) - n
	end := begin + n

	sw := spin.Wait{}
	for {
		written := q.written.LoadAcquire()
		switch {
		case begin >= written:
			if q.popped.CompareAndSwapRelease(end, begin) {
				return nil, ErrEmpty
			}
		case end <= written:
			return newChunk(q.store, begin, end), nil
		default: // begin < written < end: partial chunk
			if q.popped.CompareAndSwapRelease(end, written) {
				return newChunk(q.store, begin, written), nil
			}
		}
		sw.Once()
	}
}

// Len returns a snapshot of the queue's length (written - popped).
// Consistent only relative to its own load ordering; use as a hint,
// not an invariant.
func (q *Queue[T]) Len() int {
	written := q.written.LoadRelaxed()
	popped := q.popped.LoadRelaxed()
	if written < popped {
		return 0
	}
	return int(written - popped)
}

// IsEmpty reports whether the queue currently has no published,
// unclaimed elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.written.LoadRelaxed() == q.popped.LoadRelaxed()
}

// WriteReserved returns the current write-reservation cursor. This is
// an internal hook for collaborators (e.g. a dynamic tree-expansion
// iterator) that need to skip to the current end of the queue without
// racing a concurrent Pop.
func (q *Queue[T]) WriteReserved() uint64 {
	return q.writeReserved.LoadAcquire()
}

// IterExclusive traverses the live range [popped, written), invoking
// fn with each element's index and address, stopping early if fn
// returns false.
//
// IterExclusive requires exclusive access to the Queue: the caller
// must guarantee no concurrent Push, Extend, Pop, or Pull executes for
// the duration of the call. Go cannot enforce this statically the way
// a borrow checker would; violating it is undefined behavior, exactly
// as violating SPSC's single-producer constraint is in
// code.hybscloud.com/lfq.
func (q *Queue[T]) IterExclusive(fn func(idx uint64, v *T) bool) {
	popped := q.popped.LoadRelaxed()
	written := q.written.LoadRelaxed()
	for i := popped; i < written; i++ {
		if !fn(i, q.store.Ptr(i)) {
			return
		}
	}
}

// Close asserts that no writer is still in flight (written ==
// writeReserved) and releases every live element's reference so the
// pinned store's fragments can be garbage collected without keeping
// large values alive. Go has no deterministic destructor, so calling
// Close is optional for correctness — the GC reclaims the store once
// the Queue becomes unreachable — but recommended when elements hold
// significant memory.
//
// Panics with a *FatalError (KindWritersPendingAtClose) if a writer is
// still mid-push.
func (q *Queue[T]) Close() {
	written := q.written.LoadAcquire()
	writeReserved := q.writeReserved.LoadAcquire()
	if written != writeReserved {
		panic(&FatalError{Kind: KindWritersPendingAtClose, Index: writeReserved - written})
	}
	popped := q.popped.LoadRelaxed()
	var zero T
	for i := popped; i < written; i++ {
		*q.store.Ptr(i) = zero
	}
}

// IntoSlice consumes the queue, returning the live elements
// [popped, written) compacted into a freshly allocated, owned slice in
// FIFO order. The Queue must not be used after calling IntoSlice.
func (q *Queue[T]) IntoSlice() []T {
	popped := q.popped.LoadRelaxed()
	written := q.written.LoadRelaxed()
	if popped == 0 {
		return q.store.ToSlice(written)
	}
	n := written - popped
	out := make([]T, n)
	for i := uint64(0); i < n; i++ {
		out[i] = *q.store.Ptr(popped + i)
	}
	return out
}
