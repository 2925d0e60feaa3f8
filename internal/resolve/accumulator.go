// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"sync/atomic"

	"fillmore-labs.com/accessguard/access"
)

// accumulator joins classified levels from concurrent usage scans.
// Both writers funnel into an atomic max and an atomic found flag.
type accumulator struct {
	level atomic.Int32
	found atomic.Bool
}

// newAccumulator creates an accumulator seeded with the given lower bound.
func newAccumulator(seed access.Level) *accumulator {
	var a accumulator
	a.level.Store(int32(seed))

	return &a
}

// MarkFound records that at least one usage site exists.
func (a *accumulator) MarkFound() {
	a.found.Store(true)
}

// Raise joins the given level into the accumulator.
func (a *accumulator) Raise(l access.Level) {
	for {
		cur := a.level.Load()
		if int32(l) <= cur || a.level.CompareAndSwap(cur, int32(l)) {
			return
		}
	}
}

// Level returns the joined level.
func (a *accumulator) Level() access.Level {
	return access.Level(a.level.Load())
}

// Found reports whether any usage site was seen.
func (a *accumulator) Found() bool {
	return a.found.Load()
}
