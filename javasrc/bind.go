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
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/accessguard/graph"
)

// bind records usage sites for every reference found in collected
// declarations. It runs once after link.
func (p *Project) bind() {
	for _, t := range p.types {
		b := &binder{p: p, t: t, src: t.file.src}
		b.bindType()
	}
}

// binder walks the bodies of one type's members, resolving references
// against the project symbol table.
type binder struct {
	p      *Project
	t      *typeInfo
	src    []byte
	locals map[string]*typeInfo
}

func (b *binder) bindType() {
	b.bindAnnotations(b.t.decl)
	b.bindSuperLists()

	for _, members := range b.t.members {
		for _, m := range members {
			b.bindMember(m, b.t.nodes[m])
		}
	}
}

// bindSuperLists records the extends and implements references of the
// type itself.
func (b *binder) bindSuperLists() {
	for i := range int(b.t.node.NamedChildCount()) {
		child := b.t.node.NamedChild(i)

		switch child.Type() {
		case "superclass", "super_interfaces", "extends_interfaces":
			b.walk(child, graph.ReferenceListContext)
		}
	}
}

// bindAnnotations records a usage of every annotation type attached to a
// declaration that resolves inside the project.
func (b *binder) bindAnnotations(d *graph.Declaration) {
	for _, name := range b.p.annotations[d] {
		ann := b.p.resolveType(b.t, name)
		if ann == nil {
			continue
		}

		b.record(ann.decl, graph.UsageSite{
			From:    b.t.decl,
			Pkg:     b.t.file.pkg,
			Context: graph.AnnotationContext,
		})
	}
}

func (b *binder) bindMember(m *graph.Declaration, node *sitter.Node) {
	if node == nil {
		return
	}

	b.bindAnnotations(m)
	b.locals = make(map[string]*typeInfo)

	switch node.Type() {
	case "method_declaration", "constructor_declaration":
		if params := node.ChildByFieldName("parameters"); params != nil {
			b.bindParameters(params)
		}

		if body := node.ChildByFieldName("body"); body != nil {
			b.walk(body, graph.NormalContext)
		}

	case "field_declaration":
		b.bindField(m, node)

	case "enum_constant":
		b.bindEnumConstant(node)
	}
}

func (b *binder) bindParameters(params *sitter.Node) {
	for i := range int(params.NamedChildCount()) {
		param := params.NamedChild(i)
		if param.Type() != "formal_parameter" && param.Type() != "spread_parameter" {
			continue
		}

		b.declareLocal(param)
		b.walk(param, graph.NormalContext)
	}
}

// bindField records the initializer references of one field, including
// a behavioral conversion when a lambda initializes a functional type.
func (b *binder) bindField(m *graph.Declaration, node *sitter.Node) {
	declared := b.p.fieldTypes[m]

	for i := range int(node.NamedChildCount()) {
		declarator := node.NamedChild(i)
		if declarator.Type() != "variable_declarator" {
			continue
		}

		name := declarator.ChildByFieldName("name")
		if name == nil || m.Name != name.Content(b.src) {
			continue
		}

		if typeNode := node.ChildByFieldName("type"); typeNode != nil {
			b.walk(typeNode, graph.NormalContext)
		}

		if value := declarator.ChildByFieldName("value"); value != nil {
			b.bindConversion(declared, value)
			b.walk(value, graph.NormalContext)
		}
	}
}

// bindEnumConstant records the implicit constructor call of an enum
// constant.
func (b *binder) bindEnumConstant(node *sitter.Node) {
	arity := 0

	args := node.ChildByFieldName("arguments")
	if args != nil {
		arity = int(args.NamedChildCount())
		b.walk(args, graph.NormalContext)
	}

	for _, ctor := range b.constructors(b.t, arity) {
		b.record(ctor, graph.UsageSite{
			From:            b.t.decl,
			Pkg:             b.t.file.pkg,
			ConstructorCall: true,
		})
	}
}

// bindConversion records an implicit usage of a functional type when the
// assigned value is a lambda or method reference.
func (b *binder) bindConversion(declared *typeInfo, value *sitter.Node) {
	if declared == nil || value == nil {
		return
	}

	if value.Type() != "lambda_expression" && value.Type() != "method_reference" {
		return
	}

	b.p.Index.AddImplicitUsage(declared.decl, graph.UsageSite{
		From: b.t.decl,
		Pkg:  b.t.file.pkg,
	})
}

// walk records references in a subtree. Name children of invocations and
// accesses are resolved explicitly instead of being visited.
func (b *binder) walk(node *sitter.Node, ctx graph.Context) {
	switch node.Type() {
	case "method_invocation":
		b.bindInvocation(node, ctx)

	case "field_access":
		b.bindFieldAccess(node, ctx)

	case "object_creation_expression":
		b.bindCreation(node, ctx)

	case "explicit_constructor_invocation":
		b.bindExplicitConstructor(node, ctx)

	case "local_variable_declaration":
		b.bindLocalDeclaration(node, ctx)

	case "identifier":
		b.bindIdentifier(node, ctx)

	case "type_identifier", "scoped_type_identifier":
		b.bindTypeReference(node, ctx)

	case "marker_annotation", "annotation":
		b.walkChildren(node, graph.AnnotationContext)

	default:
		b.walkChildren(node, ctx)
	}
}

func (b *binder) walkChildren(node *sitter.Node, ctx graph.Context) {
	for i := range int(node.NamedChildCount()) {
		b.walk(node.NamedChild(i), ctx)
	}
}

func (b *binder) bindInvocation(node *sitter.Node, ctx graph.Context) {
	name := node.ChildByFieldName("name")
	object := node.ChildByFieldName("object")
	args := node.ChildByFieldName("arguments")

	if name != nil {
		qualifier, qualifierType, resolved := b.qualify(object)
		if resolved {
			methodName := name.Content(b.src)

			search := b.t
			if qualifier == graph.ExpressionQualifier {
				search = qualifierType
			}

			targets := b.lookupMethods(search, methodName, qualifier)
			for _, target := range targets {
				site := graph.UsageSite{
					From:      b.t.decl,
					Pkg:       b.t.file.pkg,
					Qualifier: qualifier,
					Context:   ctx,
				}
				if qualifier == graph.ExpressionQualifier {
					site.QualifierType = qualifierType.decl
				}

				b.record(target, site)
			}
		}
	}

	if object != nil {
		b.walk(object, ctx)
	}

	if args != nil {
		b.walk(args, ctx)
	}
}

func (b *binder) bindFieldAccess(node *sitter.Node, ctx graph.Context) {
	field := node.ChildByFieldName("field")
	object := node.ChildByFieldName("object")

	if field != nil {
		qualifier, qualifierType, resolved := b.qualify(object)
		if resolved {
			fieldName := field.Content(b.src)

			var target *graph.Declaration

			switch qualifier {
			case graph.ExpressionQualifier:
				target = b.lookupField(qualifierType, fieldName)
			case graph.SuperQualifier:
				for _, super := range b.t.supers {
					if target = b.lookupField(super, fieldName); target != nil {
						break
					}
				}
			default:
				target = b.fieldInScope(fieldName)
			}

			if target != nil {
				site := graph.UsageSite{
					From:      b.t.decl,
					Pkg:       b.t.file.pkg,
					Qualifier: qualifier,
					Context:   ctx,
				}
				if qualifier == graph.ExpressionQualifier {
					site.QualifierType = qualifierType.decl
				}

				b.record(target, site)
			}
		}
	}

	if object != nil {
		b.walk(object, ctx)
	}
}

func (b *binder) bindCreation(node *sitter.Node, ctx graph.Context) {
	typeNode := node.ChildByFieldName("type")
	args := node.ChildByFieldName("arguments")

	if typeNode != nil {
		if target := b.p.resolveType(b.t, typeNode.Content(b.src)); target != nil {
			arity := 0
			if args != nil {
				arity = int(args.NamedChildCount())
			}

			for _, ctor := range b.constructors(target, arity) {
				b.record(ctor, graph.UsageSite{
					From:            b.t.decl,
					Pkg:             b.t.file.pkg,
					Context:         ctx,
					ConstructorCall: true,
				})
			}
		}

		b.walk(typeNode, ctx)
	}

	if args != nil {
		b.walk(args, ctx)
	}
}

func (b *binder) bindExplicitConstructor(node *sitter.Node, ctx graph.Context) {
	args := node.ChildByFieldName("arguments")

	arity := 0
	if args != nil {
		arity = int(args.NamedChildCount())
	}

	qualifier := graph.ThisQualifier
	search := []*typeInfo{b.t}

	if firstOfType(node, "super") != nil {
		qualifier = graph.SuperQualifier
		search = b.t.supers
	}

	for _, owner := range search {
		for _, ctor := range b.constructors(owner, arity) {
			b.record(ctor, graph.UsageSite{
				From:            b.t.decl,
				Pkg:             b.t.file.pkg,
				Qualifier:       qualifier,
				ConstructorCall: true,
			})
		}
	}

	if args != nil {
		b.walk(args, ctx)
	}
}

func (b *binder) bindLocalDeclaration(node *sitter.Node, ctx graph.Context) {
	declared := b.declareLocal(node)

	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		b.walk(typeNode, ctx)
	}

	for i := range int(node.NamedChildCount()) {
		declarator := node.NamedChild(i)
		if declarator.Type() != "variable_declarator" {
			continue
		}

		if value := declarator.ChildByFieldName("value"); value != nil {
			b.bindConversion(declared, value)
			b.walk(value, ctx)
		}
	}
}

// bindIdentifier resolves a bare name reference to a field of the
// enclosing chain, or to a type used by its simple name.
func (b *binder) bindIdentifier(node *sitter.Node, ctx graph.Context) {
	name := node.Content(b.src)

	if _, ok := b.locals[name]; ok {
		return
	}

	if target := b.fieldInScope(name); target != nil {
		b.record(target, graph.UsageSite{
			From:    b.t.decl,
			Pkg:     b.t.file.pkg,
			Context: ctx,
		})

		return
	}

	if target := b.p.resolveType(b.t, name); target != nil && target != b.t {
		b.record(target.decl, graph.UsageSite{
			From:    b.t.decl,
			Pkg:     b.t.file.pkg,
			Context: ctx,
		})
	}
}

func (b *binder) bindTypeReference(node *sitter.Node, ctx graph.Context) {
	target := b.p.resolveType(b.t, node.Content(b.src))
	if target == nil || target == b.t {
		return
	}

	b.record(target.decl, graph.UsageSite{
		From:    b.t.decl,
		Pkg:     b.t.file.pkg,
		Context: ctx,
	})
}

// qualify classifies the qualifier expression of an invocation or field
// access. The third result reports whether a member lookup is possible at
// all; a qualifier of unknown static type yields no lookup scope, and the
// reference is left unrecorded.
func (b *binder) qualify(object *sitter.Node) (graph.Qualifier, *typeInfo, bool) {
	if object == nil {
		return graph.NoQualifier, nil, true
	}

	switch object.Type() {
	case "this":
		return graph.ThisQualifier, nil, true

	case "super":
		return graph.SuperQualifier, nil, len(b.t.supers) > 0

	case "identifier":
		name := object.Content(b.src)

		if local, ok := b.locals[name]; ok {
			if local == nil {
				return graph.ExpressionQualifier, nil, false
			}

			return graph.ExpressionQualifier, local, true
		}

		if field := b.fieldInScope(name); field != nil {
			if ft := b.p.fieldTypes[field]; ft != nil {
				return graph.ExpressionQualifier, ft, true
			}

			return graph.ExpressionQualifier, nil, false
		}

		if target := b.p.resolveType(b.t, name); target != nil {
			return graph.ExpressionQualifier, target, true
		}
	}

	return graph.ExpressionQualifier, nil, false
}

// fieldInScope resolves a bare field name against the enclosing chain.
func (b *binder) fieldInScope(name string) *graph.Declaration {
	for enclosing := b.t; enclosing != nil; enclosing = b.p.byDecl[enclosing.decl.Container] {
		if target := b.lookupField(enclosing, name); target != nil {
			return target
		}
	}

	return nil
}

// declareLocal records the declared types of the variables introduced by
// a parameter or local declaration node. Unresolved types map to nil so
// shadowing still hides outer fields.
func (b *binder) declareLocal(node *sitter.Node) *typeInfo {
	var declared *typeInfo

	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		declared = b.p.resolveType(b.t, typeNode.Content(b.src))
	}

	if name := node.ChildByFieldName("name"); name != nil {
		b.locals[name.Content(b.src)] = declared
	}

	for i := range int(node.NamedChildCount()) {
		declarator := node.NamedChild(i)
		if declarator.Type() != "variable_declarator" {
			continue
		}

		if name := declarator.ChildByFieldName("name"); name != nil {
			b.locals[name.Content(b.src)] = declared
		}
	}

	return declared
}

// lookupMethods finds methods named name in owner and its supertypes,
// stopping at the nearest declaring type. Super qualified lookups skip
// the type itself.
func (b *binder) lookupMethods(owner *typeInfo, name string, qualifier graph.Qualifier) []*graph.Declaration {
	chain := []*typeInfo{owner}
	if qualifier == graph.SuperQualifier {
		chain = owner.supers
	} else if qualifier == graph.NoQualifier {
		for enclosing := b.p.byDecl[owner.decl.Container]; enclosing != nil; enclosing = b.p.byDecl[enclosing.decl.Container] {
			chain = append(chain, enclosing)
		}
	}

	for _, start := range chain {
		if found := methodsIn(start, name, nil); len(found) > 0 {
			return found
		}
	}

	return nil
}

func methodsIn(t *typeInfo, name string, seen map[*typeInfo]struct{}) []*graph.Declaration {
	if _, ok := seen[t]; ok {
		return nil
	}
	if seen == nil {
		seen = make(map[*typeInfo]struct{})
	}
	seen[t] = struct{}{}

	var found []*graph.Declaration

	for _, m := range t.members[name] {
		if m.Kind == graph.KindMethod && !m.Modifiers.Has(graph.ModConstructor) {
			found = append(found, m)
		}
	}

	if len(found) > 0 {
		return found
	}

	for _, super := range t.supers {
		if found := methodsIn(super, name, seen); len(found) > 0 {
			return found
		}
	}

	return nil
}

// lookupField finds a field or enum constant named name in owner or its
// supertypes.
func (b *binder) lookupField(owner *typeInfo, name string) *graph.Declaration {
	return fieldIn(owner, name, nil)
}

func fieldIn(t *typeInfo, name string, seen map[*typeInfo]struct{}) *graph.Declaration {
	if _, ok := seen[t]; ok {
		return nil
	}
	if seen == nil {
		seen = make(map[*typeInfo]struct{})
	}
	seen[t] = struct{}{}

	for _, m := range t.members[name] {
		if m.Kind == graph.KindField || m.Kind == graph.KindEnumConstant {
			return m
		}
	}

	for _, super := range t.supers {
		if found := fieldIn(super, name, seen); found != nil {
			return found
		}
	}

	return nil
}

// constructors finds the constructors of a type matching the given
// argument count, or all of them when no arity matches.
func (b *binder) constructors(t *typeInfo, arity int) []*graph.Declaration {
	var all, matching []*graph.Declaration

	for _, m := range t.members[t.decl.Name] {
		if m.Kind != graph.KindMethod || !m.Modifiers.Has(graph.ModConstructor) {
			continue
		}

		all = append(all, m)
		if b.p.arities[m] == arity {
			matching = append(matching, m)
		}
	}

	if len(matching) > 0 {
		return matching
	}

	return all
}

func (b *binder) record(target *graph.Declaration, site graph.UsageSite) {
	b.p.Index.AddUsage(target, site)
}
