// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

// permit classifies what a writer holding reserved index(es) must do
// before it may write, given the store's current capacity.
//
// At most one reservation ever equals the current capacity boundary at
// a time; that reservation is elected grower. Reservations strictly
// past the boundary spin until the grower extends capacity.
// Reservations strictly inside capacity proceed unconditionally.
type permit int

const (
	permitJustWrite permit = iota
	permitGrowThenWrite
	permitSpin
)

// permitForOne classifies a single reserved index idx against capacity.
func permitForOne(capacity, idx uint64) permit {
	switch {
	case idx < capacity:
		return permitJustWrite
	case idx == capacity:
		return permitGrowThenWrite
	default:
		return permitSpin
	}
}

// permitForMany classifies a reserved range [beginIdx, lastIdx] (lastIdx
// inclusive) against capacity.
func permitForMany(capacity, beginIdx, lastIdx uint64) permit {
	switch {
	case lastIdx < capacity:
		return permitJustWrite
	case beginIdx > capacity:
		return permitSpin
	default:
		return permitGrowThenWrite
	}
}
