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
	"strings"

	"fillmore-labs.com/accessguard/graph"
)

// link resolves supertype names, marks overrides and functional
// interfaces and resolves declared field types. It runs once after all
// files are collected.
func (p *Project) link() {
	for _, t := range p.types {
		for _, name := range t.superNames {
			super := p.resolveType(t, name)
			if super == nil {
				continue
			}

			t.supers = append(t.supers, super)
			p.Graph.AddSupertype(t.decl, super.decl)
		}
	}

	for _, t := range p.types {
		p.linkOverrides(t)
		p.markFunctional(t)
		p.resolveFieldTypes(t)
	}
}

// linkOverrides marks methods that redeclare a supertype signature,
// matching by name and parameter count.
func (p *Project) linkOverrides(t *typeInfo) {
	for name, members := range t.members {
		for _, method := range members {
			if method.Kind != graph.KindMethod || method.Modifiers.HasAny(graph.ModConstructor|graph.ModStatic) {
				continue
			}

			for _, super := range p.superMethods(t, name, p.arities[method], nil) {
				p.Graph.SetSuperSignature(method)
				p.Graph.SetOverridden(super)
			}
		}
	}
}

// superMethods collects matching instance methods in the transitive
// supertype chain.
func (p *Project) superMethods(t *typeInfo, name string, arity int, found []*graph.Declaration) []*graph.Declaration {
	for _, super := range t.supers {
		for _, candidate := range super.members[name] {
			if candidate.Kind != graph.KindMethod || candidate.Modifiers.HasAny(graph.ModConstructor|graph.ModStatic) {
				continue
			}

			if p.arities[candidate] == arity {
				found = append(found, candidate)
			}
		}

		found = p.superMethods(super, name, arity, found)
	}

	return found
}

// markFunctional marks interfaces declaring exactly one abstract method.
func (p *Project) markFunctional(t *typeInfo) {
	if t.decl.Flavor != graph.FlavorInterface {
		return
	}

	abstract := 0

	for _, members := range t.members {
		for _, m := range members {
			if m.Kind == graph.KindMethod && m.Modifiers.Has(graph.ModAbstract) && !m.Modifiers.Has(graph.ModStatic) {
				abstract++
			}
		}
	}

	if abstract == 1 {
		p.Graph.SetFunctional(t.decl)
	}
}

// resolveFieldTypes records the declared type of each field and local
// holder that resolves to a project type.
func (p *Project) resolveFieldTypes(t *typeInfo) {
	for _, members := range t.members {
		for _, m := range members {
			if m.Kind != graph.KindField {
				continue
			}

			node := t.nodes[m]
			if node == nil {
				continue
			}

			typeNode := node.ChildByFieldName("type")
			if typeNode == nil {
				continue
			}

			name := rawTypeName(typeNode.Content(t.file.src))
			if ft := p.resolveType(t, name); ft != nil {
				p.fieldTypes[m] = ft
			}
		}
	}
}

// resolveType resolves a possibly qualified type name as seen from
// within t: the type itself, nested types of the enclosing chain, single
// imports, the same package, then the name taken as fully qualified.
func (p *Project) resolveType(t *typeInfo, name string) *typeInfo {
	name = rawTypeName(name)

	if strings.ContainsRune(name, '.') {
		if found, ok := p.types[name]; ok {
			return found
		}

		return nil
	}

	for enclosing := t; enclosing != nil; {
		if enclosing.decl.Name == name {
			return enclosing
		}

		if found, ok := p.types[enclosing.qualified+"."+name]; ok {
			return found
		}

		enclosing = p.byDecl[enclosing.decl.Container]
	}

	if qualified, ok := t.file.imports[name]; ok {
		if found, ok := p.types[qualified]; ok {
			return found
		}

		return nil
	}

	qualified := name
	if pkg := t.file.pkg.Name; pkg != "" {
		qualified = pkg + "." + name
	}

	if found, ok := p.types[qualified]; ok {
		return found
	}

	return nil
}
