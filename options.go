// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

import "math"

// config holds constructor-time configuration for a Queue.
type config struct {
	firstFragmentLen int
	maxCapacity      uint64
}

func defaultConfig() config {
	return config{
		firstFragmentLen: 4,
		maxCapacity:      math.MaxUint32,
	}
}

// Option configures a Queue at construction time. There is no
// algorithm-selection builder the way code.hybscloud.com/lfq has one:
// a growable queue has exactly one coordination algorithm (the
// three-cursor engine), so the only knobs are the backing store's
// growth shape and hard ceiling.
type Option func(*config)

// WithFirstFragmentLen sets the size of the pinned store's first
// fragment (rounded up to a power of 2, minimum 1). Subsequent
// fragments double in size. Default is 4.
func WithFirstFragmentLen(n int) Option {
	return func(c *config) {
		c.firstFragmentLen = n
	}
}

// WithMaxCapacity sets the hard ceiling writeReserved may never exceed.
// Exceeding it is a fatal, unrecoverable condition — size it for the
// peak of writeReserved, which for producer/consumer patterns can
// exceed the queue's steady-state length. Default is math.MaxUint32.
func WithMaxCapacity(n uint64) Option {
	return func(c *config) {
		c.maxCapacity = n
	}
}
