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

// Package aggregate enforces the monotonic containment invariant: a
// container's visibility can never be stricter than the loosest level
// required by any member it contains.
package aggregate

import (
	"sync"

	"fillmore-labs.com/accessguard/access"
	"fillmore-labs.com/accessguard/graph"
)

// Table accumulates the maximum suggested level of each container's
// members. Record is safe for concurrent writers; every update is a single
// compare-and-max under one short-held lock. The table is owned by one
// analysis run.
type Table struct {
	mu       sync.Mutex
	childMax map[*graph.Declaration]access.Level
}

// NewTable creates an empty aggregation table.
func NewTable() *Table {
	return &Table{
		childMax: make(map[*graph.Declaration]access.Level),
	}
}

// Record joins a member's resolved level into its container's maximum.
func (t *Table) Record(container *graph.Declaration, level access.Level) {
	if container == nil {
		return
	}

	t.mu.Lock()
	t.childMax[container] = access.Max(t.childMax[container], level)
	t.mu.Unlock()
}

// ChildMax returns the maximum level resolved for the container's directly
// and transitively contained members. Call after all Record updates have
// completed.
func (t *Table) ChildMax(g graph.Graph, container *graph.Declaration) access.Level {
	t.mu.Lock()
	level := t.childMax[container]
	t.mu.Unlock()

	for m := range g.Members(container) {
		if m.Kind == graph.KindType {
			level = access.Max(level, t.ChildMax(g, m))
		}
	}

	return level
}

// Withdraw reports whether a container's suggestion must be dropped
// because a contained member requires a broader level. Emitting such a
// suggestion would produce a non-compiling or behavior-changing edit.
func (t *Table) Withdraw(g graph.Graph, container *graph.Declaration, suggested access.Level) bool {
	if container.Kind != graph.KindType {
		return false
	}

	return suggested < t.ChildMax(g, container)
}
