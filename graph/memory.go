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
	"iter"
	"slices"
)

// Memory is an in-memory [Graph]. Front ends populate it while building
// their symbol tables; after that it is read-only for the analysis run.
type Memory struct {
	decls      []*Declaration
	members    map[*Declaration][]*Declaration
	superSig   map[*Declaration]bool
	overridden map[*Declaration]bool
	supertypes map[*Declaration][]*Declaration
	functional map[*Declaration]bool
}

// NewMemory creates an empty in-memory graph.
func NewMemory() *Memory {
	return &Memory{
		members:    make(map[*Declaration][]*Declaration),
		superSig:   make(map[*Declaration]bool),
		overridden: make(map[*Declaration]bool),
		supertypes: make(map[*Declaration][]*Declaration),
		functional: make(map[*Declaration]bool),
	}
}

// Add registers a declaration and links it to its container.
func (m *Memory) Add(d *Declaration) {
	m.decls = append(m.decls, d)

	if d.Container != nil {
		m.members[d.Container] = append(m.members[d.Container], d)
	}
}

// AddSupertype records super as a direct supertype of sub.
func (m *Memory) AddSupertype(sub, super *Declaration) {
	m.supertypes[sub] = append(m.supertypes[sub], super)
}

// SetSuperSignature records that a method overrides a supertype signature.
func (m *Memory) SetSuperSignature(method *Declaration) {
	m.superSig[method] = true
}

// SetOverridden records that a method is overridden in a subtype.
func (m *Memory) SetOverridden(method *Declaration) {
	m.overridden[method] = true
}

// SetFunctional records that a type is a single-method functional type.
func (m *Memory) SetFunctional(typ *Declaration) {
	m.functional[typ] = true
}

// All yields every declaration in insertion order.
func (m *Memory) All() iter.Seq[*Declaration] {
	return slices.Values(m.decls)
}

// Members yields the direct members of a container in insertion order.
func (m *Memory) Members(container *Declaration) iter.Seq[*Declaration] {
	return slices.Values(m.members[container])
}

// HasSuperSignature implements [Graph].
func (m *Memory) HasSuperSignature(method *Declaration) bool {
	return m.superSig[method]
}

// IsOverridden implements [Graph].
func (m *Memory) IsOverridden(method *Declaration) bool {
	return m.overridden[method]
}

// IsSubtype reports whether sub is a strict subtype of super, walking the
// recorded supertype relation.
func (m *Memory) IsSubtype(sub, super *Declaration) bool {
	if sub == nil || super == nil || sub == super {
		return false
	}

	seen := make(map[*Declaration]struct{})

	return m.isSubtype(sub, super, seen)
}

func (m *Memory) isSubtype(sub, super *Declaration, seen map[*Declaration]struct{}) bool {
	if _, ok := seen[sub]; ok {
		return false // malformed inheritance cycle
	}
	seen[sub] = struct{}{}

	for _, s := range m.supertypes[sub] {
		if s == super || m.isSubtype(s, super, seen) {
			return true
		}
	}

	return false
}

// IsFunctional implements [Graph].
func (m *Memory) IsFunctional(typ *Declaration) bool {
	return m.functional[typ]
}
