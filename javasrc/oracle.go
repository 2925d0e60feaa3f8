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

package javasrc

import (
	"fillmore-labs.com/accessguard/access"
	"fillmore-labs.com/accessguard/graph"
)

// EntryPoints recognizes declarations reached from outside the analyzed
// sources: main methods and declarations carrying configured annotations.
// Annotation names are matched by simple name.
type EntryPoints struct {
	project *Project
	fixed   map[string]struct{}
	floors  map[string]access.Level
}

// NewEntryPoints creates an oracle for the given project. Declarations
// annotated with a name in fixed keep their declared level; names in
// floors impose the mapped level as a lower bound.
func NewEntryPoints(p *Project, fixed []string, floors map[string]access.Level) *EntryPoints {
	fixedSet := make(map[string]struct{}, len(fixed))
	for _, name := range fixed {
		fixedSet[simpleName(name)] = struct{}{}
	}

	floorSet := make(map[string]access.Level, len(floors))
	for name, level := range floors {
		floorSet[simpleName(name)] = level
	}

	return &EntryPoints{project: p, fixed: fixedSet, floors: floorSet}
}

// IsEntryPoint implements [graph.EntryPointOracle].
func (e *EntryPoints) IsEntryPoint(d *graph.Declaration) bool {
	if mainMethod(d) || serializationMember(d) {
		return true
	}

	for _, name := range e.project.Annotations(d) {
		if _, ok := e.fixed[name]; ok {
			return true
		}

		if _, ok := e.floors[name]; ok {
			return true
		}
	}

	return false
}

// MinVisibility implements [graph.EntryPointOracle]. The floors of
// multiple matching annotations are joined.
func (e *EntryPoints) MinVisibility(d *graph.Declaration) (access.Level, bool) {
	if mainMethod(d) || serializationMember(d) {
		return 0, false
	}

	floor, found := access.Private, false

	for _, name := range e.project.Annotations(d) {
		if _, ok := e.fixed[name]; ok {
			return 0, false
		}

		if level, ok := e.floors[name]; ok {
			floor = access.Max(floor, level)
			found = true
		}
	}

	return floor, found
}

// mainMethod reports whether d is a static method named main. The JVM
// launches these reflectively, so no usage ever appears in source.
func mainMethod(d *graph.Declaration) bool {
	return d.Kind == graph.KindMethod && d.Name == "main" &&
		d.Modifiers.Has(graph.ModStatic) && !d.Modifiers.Has(graph.ModConstructor)
}

// serializationMember reports whether d is one of the members the Java
// serialization machinery accesses reflectively.
func serializationMember(d *graph.Declaration) bool {
	switch d.Kind {
	case graph.KindMethod:
		switch d.Name {
		case "readObject", "writeObject", "readObjectNoData", "readResolve", "writeReplace":
			return !d.Modifiers.Has(graph.ModConstructor)
		}

	case graph.KindField:
		return d.Name == "serialVersionUID" || d.Name == "serialPersistentFields"

	case graph.KindType, graph.KindEnumConstant:
	}

	return false
}

// Extensibility forces the members of annotated container types to keep
// their level, covering frameworks that generate subclasses at runtime.
type Extensibility struct {
	project     *Project
	annotations map[string]struct{}
}

// NewExtensibility creates a provider matching containers annotated with
// one of the given names.
func NewExtensibility(p *Project, annotations []string) *Extensibility {
	set := make(map[string]struct{}, len(annotations))
	for _, name := range annotations {
		set[simpleName(name)] = struct{}{}
	}

	return &Extensibility{project: p, annotations: set}
}

// AppliesTo implements [graph.ExtensibilityProvider].
func (x *Extensibility) AppliesTo(container *graph.Declaration) bool {
	for _, name := range x.project.Annotations(container) {
		if _, ok := x.annotations[name]; ok {
			return true
		}
	}

	return false
}

// ForcedMembers implements [graph.ExtensibilityProvider]. Every member of
// a matching container is forced.
func (x *Extensibility) ForcedMembers(container *graph.Declaration) (map[*graph.Declaration]struct{}, bool) {
	if !x.AppliesTo(container) {
		return nil, false
	}

	return nil, true
}
