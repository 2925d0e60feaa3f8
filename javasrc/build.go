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

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/accessguard/access"
	"fillmore-labs.com/accessguard/graph"
)

// collectFile records every type declared in one parsed source file.
func (p *Project) collectFile(path string, src []byte, root *sitter.Node) {
	file := &fileInfo{
		path:    path,
		src:     src,
		pkg:     p.scope(""),
		imports: make(map[string]string),
	}

	for i := range int(root.NamedChildCount()) {
		node := root.NamedChild(i)

		switch node.Type() {
		case "package_declaration":
			if name := firstOfType(node, "scoped_identifier", "identifier"); name != nil {
				file.pkg = p.scope(name.Content(src))
			}

		case "import_declaration":
			p.collectImport(file, node)

		case "class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration":
			p.collectType(file, node, nil)
		}
	}
}

// collectImport maps the imported simple name to its qualified name.
// Wildcard and static imports carry no simple name and are skipped.
func (p *Project) collectImport(file *fileInfo, node *sitter.Node) {
	name := firstOfType(node, "scoped_identifier", "identifier")
	if name == nil {
		return
	}

	qualified := name.Content(file.src)
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		file.imports[qualified[i+1:]] = qualified
	}
}

// collectType records a type declaration and descends into its members.
func (p *Project) collectType(file *fileInfo, node *sitter.Node, container *typeInfo) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := nameNode.Content(file.src)

	level, mods, anns := p.modifiers(file, node)

	flavor := graph.FlavorClass
	switch node.Type() {
	case "interface_declaration":
		flavor = graph.FlavorInterface
	case "enum_declaration":
		flavor = graph.FlavorEnum
	case "annotation_type_declaration":
		flavor = graph.FlavorAnnotation
	}

	decl := &graph.Declaration{
		Name:      name,
		Kind:      graph.KindType,
		Flavor:    flavor,
		Modifiers: mods,
		Level:     level,
		Pkg:       file.pkg,
		Physical:  true,
	}

	qualified := name
	if container != nil {
		decl.Container = container.decl
		qualified = container.qualified + "." + name
	} else if file.pkg.Name != "" {
		qualified = file.pkg.Name + "." + name
	}

	t := &typeInfo{
		decl:      decl,
		qualified: qualified,
		node:      node,
		body:      node.ChildByFieldName("body"),
		file:      file,
		members:   make(map[string][]*graph.Declaration),
		nodes:     make(map[*graph.Declaration]*sitter.Node),
	}

	p.register(decl, nameNode, file, anns)
	p.types[qualified] = t
	p.byDecl[decl] = t

	t.superNames = superTypeNames(node, file.src)

	if t.body != nil {
		p.collectMembers(file, t, t.body)
	}
}

// collectMembers records the members of a type body, descending into
// enum body declarations.
func (p *Project) collectMembers(file *fileInfo, t *typeInfo, body *sitter.Node) {
	for i := range int(body.NamedChildCount()) {
		node := body.NamedChild(i)

		switch node.Type() {
		case "field_declaration":
			p.collectField(file, t, node)

		case "method_declaration", "constructor_declaration":
			p.collectMethod(file, t, node)

		case "enum_constant":
			p.collectEnumConstant(file, t, node)

		case "enum_body_declarations":
			p.collectMembers(file, t, node)

		case "class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration":
			p.collectType(file, node, t)
		}
	}
}

// collectField records one declaration per variable declarator.
func (p *Project) collectField(file *fileInfo, t *typeInfo, node *sitter.Node) {
	level, mods, anns := p.modifiers(file, node)
	if t.decl.Flavor == graph.FlavorInterface {
		level = access.Public
	}

	for i := range int(node.NamedChildCount()) {
		declarator := node.NamedChild(i)
		if declarator.Type() != "variable_declarator" {
			continue
		}

		nameNode := declarator.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}

		fieldMods := mods
		if declarator.ChildByFieldName("value") != nil {
			fieldMods |= graph.ModInitializer
		}

		decl := &graph.Declaration{
			Name:      nameNode.Content(file.src),
			Kind:      graph.KindField,
			Modifiers: fieldMods,
			Level:     level,
			Pkg:       file.pkg,
			Container: t.decl,
			Physical:  true,
		}

		p.register(decl, nameNode, file, anns)
		t.members[decl.Name] = append(t.members[decl.Name], decl)
		t.nodes[decl] = node
	}
}

// collectMethod records a method or constructor declaration.
func (p *Project) collectMethod(file *fileInfo, t *typeInfo, node *sitter.Node) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}

	level, mods, anns := p.modifiers(file, node)
	if t.decl.Flavor == graph.FlavorInterface {
		level = access.Public
	}

	if node.Type() == "constructor_declaration" {
		mods |= graph.ModConstructor
	} else if node.ChildByFieldName("body") == nil {
		mods |= graph.ModAbstract
	}

	decl := &graph.Declaration{
		Name:      nameNode.Content(file.src),
		Kind:      graph.KindMethod,
		Modifiers: mods,
		Level:     level,
		Pkg:       file.pkg,
		Container: t.decl,
		Physical:  true,
	}

	p.register(decl, nameNode, file, anns)
	t.members[decl.Name] = append(t.members[decl.Name], decl)
	t.nodes[decl] = node

	if params := node.ChildByFieldName("parameters"); params != nil {
		p.arities[decl] = int(params.NamedChildCount())
	}
}

// collectEnumConstant records an enum constant.
func (p *Project) collectEnumConstant(file *fileInfo, t *typeInfo, node *sitter.Node) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}

	decl := &graph.Declaration{
		Name:      nameNode.Content(file.src),
		Kind:      graph.KindEnumConstant,
		Level:     access.Public,
		Pkg:       file.pkg,
		Container: t.decl,
		Physical:  true,
	}

	p.register(decl, nameNode, file, nil)
	t.members[decl.Name] = append(t.members[decl.Name], decl)
	t.nodes[decl] = node
}

// register adds a declaration to the graph and records its position and
// annotations.
func (p *Project) register(decl *graph.Declaration, nameNode *sitter.Node, file *fileInfo, anns []string) {
	p.Graph.Add(decl)

	point := nameNode.StartPoint()
	p.positions[decl] = Position{File: file.path, Line: point.Row + 1, Column: point.Column + 1}

	if len(anns) > 0 {
		p.annotations[decl] = anns
	}
}

// modifiers extracts the access level, modifier bits and annotation names
// of a declaration node.
func (p *Project) modifiers(file *fileInfo, node *sitter.Node) (access.Level, graph.Modifiers, []string) {
	level := access.Package

	var mods graph.Modifiers
	var anns []string

	list := firstOfType(node, "modifiers")
	if list == nil {
		return level, mods, anns
	}

	for i := range int(list.ChildCount()) {
		child := list.Child(i)

		switch child.Type() {
		case "public":
			level = access.Public
		case "protected":
			level = access.Protected
		case "private":
			level = access.Private
		case "static":
			mods |= graph.ModStatic
		case "final":
			mods |= graph.ModFinal
		case "abstract":
			mods |= graph.ModAbstract
		case "native":
			mods |= graph.ModNative
		case "marker_annotation", "annotation":
			if name := child.ChildByFieldName("name"); name != nil {
				anns = append(anns, simpleName(name.Content(file.src)))
			}
		}
	}

	return level, mods, anns
}

// superTypeNames returns the raw extends and implements type names of a
// type declaration.
func superTypeNames(node *sitter.Node, src []byte) []string {
	var names []string

	for i := range int(node.NamedChildCount()) {
		child := node.NamedChild(i)

		switch child.Type() {
		case "superclass", "super_interfaces", "extends_interfaces":
			names = appendTypeNames(names, child, src)
		}
	}

	return names
}

func appendTypeNames(names []string, node *sitter.Node, src []byte) []string {
	for i := range int(node.NamedChildCount()) {
		child := node.NamedChild(i)

		if child.Type() == "type_list" {
			names = appendTypeNames(names, child, src)

			continue
		}

		names = append(names, rawTypeName(child.Content(src)))
	}

	return names
}

// rawTypeName strips type arguments from a type name.
func rawTypeName(name string) string {
	if i := strings.IndexByte(name, '<'); i >= 0 {
		return name[:i]
	}

	return name
}

// simpleName returns the last segment of a dotted name.
func simpleName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}

	return name
}

// firstOfType returns the first named child with one of the given node
// types.
func firstOfType(node *sitter.Node, types ...string) *sitter.Node {
	for i := range int(node.NamedChildCount()) {
		child := node.NamedChild(i)
		for _, t := range types {
			if child.Type() == t {
				return child
			}
		}
	}

	return nil
}
