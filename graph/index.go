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

package graph

import (
	"context"
	"iter"
)

// MemoryIndex is a slice-backed [Index] populated while a front end binds
// references. Iteration honors context cancellation between sites.
type MemoryIndex struct {
	usages   map[*Declaration][]UsageSite
	implicit map[*Declaration][]UsageSite
}

// NewMemoryIndex creates an empty usage index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		usages:   make(map[*Declaration][]UsageSite),
		implicit: make(map[*Declaration][]UsageSite),
	}
}

// AddUsage records a usage site for a declaration.
func (x *MemoryIndex) AddUsage(d *Declaration, site UsageSite) {
	x.usages[d] = append(x.usages[d], site)
}

// AddImplicitUsage records a behavioral-conversion usage for a functional
// type.
func (x *MemoryIndex) AddImplicitUsage(d *Declaration, site UsageSite) {
	x.implicit[d] = append(x.implicit[d], site)
}

// Usages implements [Index].
func (x *MemoryIndex) Usages(ctx context.Context, d *Declaration) iter.Seq[UsageSite] {
	return yieldSites(ctx, x.usages[d])
}

// ImplicitUsages implements [Index].
func (x *MemoryIndex) ImplicitUsages(ctx context.Context, d *Declaration) iter.Seq[UsageSite] {
	return yieldSites(ctx, x.implicit[d])
}

func yieldSites(ctx context.Context, sites []UsageSite) iter.Seq[UsageSite] {
	return func(yield func(UsageSite) bool) {
		for _, site := range sites {
			if ctx.Err() != nil {
				return
			}

			if !yield(site) {
				return
			}
		}
	}
}
