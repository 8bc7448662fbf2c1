// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/cq"
)

// TestPopFIFO seeds ["1","2","3"] and pops four times, checking FIFO
// order and that the fourth pop observes an empty queue.
func TestPopFIFO(t *testing.T) {
	q := cq.From([]string{"1", "2", "3"})

	want := []string{"1", "2", "3"}
	for i, w := range want {
		v, err := q.Pop()
		if err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if v != w {
			t.Fatalf("Pop(%d): got %q, want %q", i, v, w)
		}
	}

	if _, err := q.Pop(); !errors.Is(err, cq.ErrEmpty) {
		t.Fatalf("Pop on empty: got %v, want ErrEmpty", err)
	}
}

// TestPushExtendPopPullLen exercises Push, Extend, Pop, Pull, Len, and
// IntoSlice together in sequence.
func TestPushExtendPopPullLen(t *testing.T) {
	q := cq.New[int]()

	q.Push(0)
	q.Push(1)

	v, err := q.Pop()
	if err != nil || v != 0 {
		t.Fatalf("Pop: got (%d, %v), want (0, nil)", v, err)
	}

	q.Extend([]int{2, 3, 4, 5, 6})

	chunk, err := q.Pull(4)
	if err != nil {
		t.Fatalf("Pull: %v", err)
	}
	got := chunk.All()
	want := []int{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Pull: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Pull[%d]: got %d, want %d", i, got[i], want[i])
		}
	}

	if n := q.Len(); n != 2 {
		t.Fatalf("Len: got %d, want 2", n)
	}

	rest := q.IntoSlice()
	wantRest := []int{5, 6}
	if len(rest) != len(wantRest) {
		t.Fatalf("IntoSlice: got %v, want %v", rest, wantRest)
	}
	for i := range wantRest {
		if rest[i] != wantRest[i] {
			t.Fatalf("IntoSlice[%d]: got %d, want %d", i, rest[i], wantRest[i])
		}
	}
}

// TestTreeExpansion seeds three roots; each popped value n produces
// children [0, 1, ..., n-1] appended back onto the queue.
func TestTreeExpansion(t *testing.T) {
	q := cq.From([]int{1, 2, 3})

	var popped []int
	next := cq.TreeExpand(q, func(n int) []int {
		children := make([]int, n)
		for i := range children {
			children[i] = i
		}
		return children
	})
	for v, ok := next(); ok; v, ok = next() {
		popped = append(popped, v)
	}

	want := []int{1, 2, 3, 0, 0, 1, 0, 1, 2, 0, 0, 0, 1, 0}
	if len(popped) != len(want) {
		t.Fatalf("popped len: got %d (%v), want %d (%v)", len(popped), popped, len(want), want)
	}
	for i := range want {
		if popped[i] != want[i] {
			t.Fatalf("popped[%d]: got %d, want %d (full: %v)", i, popped[i], want[i], popped)
		}
	}
}

// TestRoundTrip: seeding with S and converting straight back to a slice
// (zero operations in between) returns S unchanged.
func TestRoundTrip(t *testing.T) {
	seed := []int{10, 20, 30, 40}
	q := cq.From(seed)
	got := q.IntoSlice()
	if len(got) != len(seed) {
		t.Fatalf("IntoSlice: got %v, want %v", got, seed)
	}
	for i := range seed {
		if got[i] != seed[i] {
			t.Fatalf("IntoSlice[%d]: got %d, want %d", i, got[i], seed[i])
		}
	}
}

func TestEmptyQueueBoundaries(t *testing.T) {
	q := cq.New[int]()

	if _, err := q.Pop(); !errors.Is(err, cq.ErrEmpty) {
		t.Fatalf("Pop on empty: got %v, want ErrEmpty", err)
	}
	if _, err := q.Pull(4); !errors.Is(err, cq.ErrEmpty) {
		t.Fatalf("Pull on empty: got %v, want ErrEmpty", err)
	}
	if !q.IsEmpty() {
		t.Fatalf("IsEmpty: got false, want true")
	}
	if got := q.IntoSlice(); len(got) != 0 {
		t.Fatalf("IntoSlice: got %v, want empty", got)
	}
}

func TestPullZeroAlwaysEmpty(t *testing.T) {
	q := cq.From([]int{1, 2, 3})
	if _, err := q.Pull(0); !errors.Is(err, cq.ErrEmpty) {
		t.Fatalf("Pull(0): got %v, want ErrEmpty", err)
	}
	// Pull(0) must not have reserved anything.
	if n := q.Len(); n != 3 {
		t.Fatalf("Len after Pull(0): got %d, want 3", n)
	}
}

func TestPullPartialChunk(t *testing.T) {
	q := cq.From([]int{1, 2, 3})
	chunk, err := q.Pull(10)
	if err != nil {
		t.Fatalf("Pull: %v", err)
	}
	if chunk.Len() != 3 {
		t.Fatalf("Pull partial: got len %d, want 3", chunk.Len())
	}
	got := chunk.All()
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Pull partial[%d]: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFatalCapacityExhausted(t *testing.T) {
	q := cq.New[int](cq.WithMaxCapacity(2))
	q.Push(1)
	q.Push(2)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Push past max capacity: expected panic")
		}
		fe, ok := r.(*cq.FatalError)
		if !ok {
			t.Fatalf("Push past max capacity: got panic %v, want *cq.FatalError", r)
		}
		if fe.Kind != cq.KindCapacityExhausted {
			t.Fatalf("Push past max capacity: got kind %v, want KindCapacityExhausted", fe.Kind)
		}
	}()
	q.Push(3)
}

func TestCloseOnQuiescentQueue(t *testing.T) {
	q := cq.From([]int{1, 2, 3})
	q.Pop()
	q.Close() // must not panic: no writer is in flight
}

func TestIterExclusive(t *testing.T) {
	q := cq.From([]int{1, 2, 3})
	q.Pop()

	var got []int
	q.IterExclusive(func(idx uint64, v *int) bool {
		got = append(got, *v)
		return true
	})

	want := []int{2, 3}
	if len(got) != len(want) {
		t.Fatalf("IterExclusive: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IterExclusive[%d]: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestIterExclusiveEarlyStop(t *testing.T) {
	q := cq.From([]int{1, 2, 3, 4})
	var got []int
	q.IterExclusive(func(idx uint64, v *int) bool {
		got = append(got, *v)
		return *v < 2
	})
	if len(got) != 2 {
		t.Fatalf("IterExclusive early stop: got %v, want 2 elements", got)
	}
}
