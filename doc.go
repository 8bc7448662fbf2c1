// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cq provides a thread-safe, unbounded, growable FIFO queue.
//
// Unlike code.hybscloud.com/lfq's fixed-capacity SCQ-style queues, a
// cq.Queue grows its backing store on demand (up to an optional hard
// ceiling) instead of returning ErrWouldBlock when full. This makes it
// the right primitive for work-stealing style workloads where a task
// popped from the front can generate new tasks appended to the back —
// the total number of tasks in flight is not known up front.
//
// # Quick Start
//
//	q := cq.New[Task]()
//	q.Push(task)
//
//	t, err := q.Pop()
//	if cq.IsEmpty(err) {
//	    // nothing available right now
//	}
//
// # Basic Usage
//
// All operations are safe to call concurrently from any number of
// goroutines through a shared *Queue[T]; there is no producer/consumer
// cardinality constraint the way lfq's SPSC/MPSC/SPMC variants have.
//
//	q := cq.New[int]()
//
//	q.Push(1)
//	q.Push(2)
//	q.Extend([]int{3, 4, 5})
//
//	v, err := q.Pop() // v == 1
//
//	chunk, err := q.Pull(2)
//	for v, ok := chunk.Next(); ok; v, ok = chunk.Next() {
//	    process(v)
//	}
//
// # Work-Stealing / Tree Expansion
//
// A popped element can generate new elements appended to the back
// without any special coordination — any goroutine holding the shared
// *Queue[T] may call Push/Extend at any time, including from inside a
// loop draining Pop:
//
//	q := cq.From([]int{1, 2, 3})
//	next := cq.TreeExpand(q, func(n int) []int {
//	    children := make([]int, n)
//	    for i := range children {
//	        children[i] = i
//	    }
//	    return children
//	})
//	for v, ok := next(); ok; v, ok = next() {
//	    fmt.Println(v)
//	}
//
// # Error Handling
//
// Pop and Pull return [ErrEmpty] when nothing is available. This is
// sourced from [code.hybscloud.com/iox] for ecosystem consistency with
// code.hybscloud.com/lfq.
//
//	backoff := iox.Backoff{}
//	for {
//	    v, err := q.Pop()
//	    if err == nil {
//	        backoff.Reset()
//	        process(v)
//	        continue
//	    }
//	    if !cq.IsEmpty(err) {
//	        panic(err) // unexpected
//	    }
//	    backoff.Wait()
//	}
//
// Push and Extend panic with a [*FatalError] if a reservation would
// exceed the queue's configured max capacity (see [WithMaxCapacity]).
// This is a programmer-contract violation, not a runtime condition to
// recover from: the default max capacity is math.MaxUint32, so this
// only triggers with an explicitly narrowed ceiling.
//
// # Length
//
// Len and IsEmpty return a best-effort snapshot (written - popped).
// Under concurrent Push/Pop the true length may have already changed
// by the time the caller observes the result; use them as hints.
//
// # Exclusive Iteration
//
// IterExclusive traverses the queue's live range directly, but — like
// lfq's per-variant producer/consumer cardinality constraints — it
// requires the caller to guarantee no concurrent Push/Extend/Pop/Pull
// for its duration. Go's type system cannot enforce this statically;
// violating it is undefined behavior.
//
// # Race Detection
//
// Like code.hybscloud.com/lfq, this package's correctness rests on
// acquire/release orderings between distinct atomic variables (the
// publication CAS on written pairs with the Acquire load on the
// consumer path) that Go's race detector's happens-before model cannot
// observe. Tests whose correctness depends on this pairing alone are
// excluded from race builds via //go:build !race, exactly as in lfq.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause
// instructions — the same foundation code.hybscloud.com/lfq is built
// on.
package cq
