// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

// TreeExpand returns a closure implementing a pop-then-extend
// tree-expansion pattern over q: each call pops one element, calls
// expand on it, appends the result to the back of q, and returns the
// popped element. Returns (zero-value, false) once q is exhausted.
//
// This is a peripheral convenience, not part of the core coordination
// engine. It is a thin wrapper over Pop/Extend useful for
// work-stealing style workloads where a popped task generates child
// tasks:
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
//	    process(v)
//	}
func TreeExpand[T any](q *Queue[T], expand func(T) []T) func() (T, bool) {
	return func() (T, bool) {
		v, err := q.Pop()
		if err != nil {
			var zero T
			return zero, false
		}
		if children := expand(v); len(children) > 0 {
			q.Extend(children)
		}
		return v, true
	}
}
