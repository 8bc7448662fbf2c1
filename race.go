// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package cq

// RaceEnabled is true when the race detector is active.
// This package's own concurrent tests and examples, whose correctness
// depends on acquire/release pairing across distinct atomic variables
// that the race detector's happens-before model cannot observe, are
// excluded from race builds by a //go:build !race constraint rather
// than by reading this constant.
const RaceEnabled = true
