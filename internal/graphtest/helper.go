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

// Package graphtest provides fixtures for building declaration graphs and
// usage indexes in tests.
//
// It removes the boilerplate of wiring [graph.Memory] and
// [graph.MemoryIndex] by hand: declarations default to physical, public
// and complete, and usage sites can be recorded directly against a
// declaration.
package graphtest

import (
	"fillmore-labs.com/accessguard/access"
	"fillmore-labs.com/accessguard/graph"
)

// Fixture bundles a graph and usage index under construction.
type Fixture struct {
	Graph *graph.Memory
	Index *graph.MemoryIndex
}

// New creates an empty fixture.
func New() *Fixture {
	return &Fixture{
		Graph: graph.NewMemory(),
		Index: graph.NewMemoryIndex(),
	}
}

// Scope returns a package scope with the given qualified name.
func (f *Fixture) Scope(name string) *graph.Scope {
	return &graph.Scope{Name: name}
}

// Type adds a physical class declaration.
func (f *Fixture) Type(name string, pkg *graph.Scope, container *graph.Declaration,
	level access.Level, mods graph.Modifiers,
) *graph.Declaration {
	d := &graph.Declaration{
		Name:      name,
		Kind:      graph.KindType,
		Flavor:    graph.FlavorClass,
		Modifiers: mods,
		Level:     level,
		Pkg:       pkg,
		Container: container,
		Physical:  true,
	}
	f.Graph.Add(d)

	return d
}

// Method adds a physical method declaration to a container.
func (f *Fixture) Method(name string, container *graph.Declaration,
	level access.Level, mods graph.Modifiers,
) *graph.Declaration {
	d := &graph.Declaration{
		Name:      name,
		Kind:      graph.KindMethod,
		Modifiers: mods,
		Level:     level,
		Pkg:       container.Pkg,
		Container: container,
		Physical:  true,
	}
	f.Graph.Add(d)

	return d
}

// Field adds a physical field declaration to a container.
func (f *Fixture) Field(name string, container *graph.Declaration,
	level access.Level, mods graph.Modifiers,
) *graph.Declaration {
	d := &graph.Declaration{
		Name:      name,
		Kind:      graph.KindField,
		Modifiers: mods,
		Level:     level,
		Pkg:       container.Pkg,
		Container: container,
		Physical:  true,
	}
	f.Graph.Add(d)

	return d
}

// EnumConstant adds a physical enum constant declaration to a container.
func (f *Fixture) EnumConstant(name string, container *graph.Declaration) *graph.Declaration {
	d := &graph.Declaration{
		Name:      name,
		Kind:      graph.KindEnumConstant,
		Level:     access.Public,
		Pkg:       container.Pkg,
		Container: container,
		Physical:  true,
	}
	f.Graph.Add(d)

	return d
}

// Use records a usage site for a declaration.
func (f *Fixture) Use(d *graph.Declaration, site graph.UsageSite) {
	f.Index.AddUsage(d, site)
}

// EntryPoints is a static [graph.EntryPointOracle] for tests.
type EntryPoints struct {
	// Floors maps entry points to their finite visibility floor.
	Floors map[*graph.Declaration]access.Level

	// Fixed contains entry points without a finite floor.
	Fixed map[*graph.Declaration]struct{}
}

// IsEntryPoint implements [graph.EntryPointOracle].
func (e EntryPoints) IsEntryPoint(d *graph.Declaration) bool {
	if _, ok := e.Fixed[d]; ok {
		return true
	}

	_, ok := e.Floors[d]

	return ok
}

// MinVisibility implements [graph.EntryPointOracle].
func (e EntryPoints) MinVisibility(d *graph.Declaration) (access.Level, bool) {
	level, ok := e.Floors[d]

	return level, ok
}

// Extensibility is a static [graph.ExtensibilityProvider] for tests.
type Extensibility struct {
	// Forced maps constrained containers to their forced members.
	// A nil member set forces every member.
	Forced map[*graph.Declaration]map[*graph.Declaration]struct{}
}

// AppliesTo implements [graph.ExtensibilityProvider].
func (e Extensibility) AppliesTo(container *graph.Declaration) bool {
	_, ok := e.Forced[container]

	return ok
}

// ForcedMembers implements [graph.ExtensibilityProvider].
func (e Extensibility) ForcedMembers(container *graph.Declaration) (map[*graph.Declaration]struct{}, bool) {
	forced, ok := e.Forced[container]

	return forced, ok
}
