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

	"fillmore-labs.com/accessguard/access"
)

// Graph supplies the declarations of a codebase together with their
// containment and inheritance relations. Implementations must be safe for
// concurrent readers and immutable for the duration of an analysis run.
type Graph interface {
	// All yields every declaration in a stable order.
	All() iter.Seq[*Declaration]

	// Members yields the members directly contained in a type declaration.
	Members(container *Declaration) iter.Seq[*Declaration]

	// HasSuperSignature reports whether a method overrides a supertype
	// signature.
	HasSuperSignature(method *Declaration) bool

	// IsOverridden reports whether a method is overridden in a subtype.
	IsOverridden(method *Declaration) bool

	// IsSubtype reports whether sub is a strict subtype of super.
	IsSubtype(sub, super *Declaration) bool

	// IsFunctional reports whether a type is a single-method functional
	// type that can be adopted implicitly by closures.
	IsFunctional(typ *Declaration) bool
}

// Index yields the usage sites of a declaration. Scans may run arbitrarily
// long and must honor cancellation of the supplied context.
type Index interface {
	// Usages yields the ordered usage sites of a declaration.
	Usages(ctx context.Context, d *Declaration) iter.Seq[UsageSite]

	// ImplicitUsages yields behavioral-conversion usages of a functional
	// type, such as closures adopting it.
	ImplicitUsages(ctx context.Context, d *Declaration) iter.Seq[UsageSite]
}

// EntryPointOracle decides whether a declaration must remain reachable
// beyond ordinary static usage, for example through reflection,
// serialization or a test harness.
type EntryPointOracle interface {
	// IsEntryPoint reports whether the declaration is an entry point.
	IsEntryPoint(d *Declaration) bool

	// MinVisibility returns the visibility floor an entry point must keep.
	// The second result is false when the oracle imposes no finite floor,
	// in which case the declaration keeps its current level.
	MinVisibility(d *Declaration) (access.Level, bool)
}

// ExtensibilityProvider flags framework-imposed subclassing constraints
// that force members of a container to keep their current level.
type ExtensibilityProvider interface {
	// AppliesTo reports whether the provider constrains the container.
	AppliesTo(container *Declaration) bool

	// ForcedMembers returns the members forced to keep their level.
	// A nil set with ok true forces every member of the container.
	ForcedMembers(container *Declaration) (forced map[*Declaration]struct{}, ok bool)
}
