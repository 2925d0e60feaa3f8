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

package gosrc

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/accessguard/access"
	"fillmore-labs.com/accessguard/graph"
)

// Project is the declaration graph and usage index built from Go
// packages. Exported declarations map to the public level, unexported
// ones to the package level; the private and protected levels do not
// occur.
type Project struct {
	// Graph is the populated declaration graph.
	Graph *graph.Memory

	// Index is the populated usage index.
	Index *graph.MemoryIndex

	decls     map[types.Object]*graph.Declaration
	scopes    map[string]*graph.Scope
	positions map[*graph.Declaration]token.Position

	named  []namedEntry
	ifaces []ifaceEntry
}

type namedEntry struct {
	named *types.Named
	decl  *graph.Declaration
}

type ifaceEntry struct {
	iface *types.Interface
	decl  *graph.Declaration
}

// Load type-checks the packages matching the given patterns and builds a
// [Project] from them.
func Load(ctx context.Context, patterns ...string) (*Project, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		Fset: token.NewFileSet(),
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			return nil, fmt.Errorf("loading %s: %s", pkg.PkgPath, e.Msg)
		}
	}

	p := newProject()

	for _, pkg := range pkgs {
		p.collect(cfg.Fset, pkg.PkgPath, pkg.Syntax, pkg.TypesInfo)
	}

	p.link()

	for _, pkg := range pkgs {
		p.bind(pkg.PkgPath, pkg.TypesInfo)
	}

	return p, nil
}

// Build constructs a [Project] from already type-checked packages. Load
// is the usual entry point; Build serves callers that drive the type
// checker themselves.
func Build(fset *token.FileSet, pkgs []CheckedPackage) *Project {
	p := newProject()

	for _, pkg := range pkgs {
		p.collect(fset, pkg.Path, pkg.Files, pkg.Info)
	}

	p.link()

	for _, pkg := range pkgs {
		p.bind(pkg.Path, pkg.Info)
	}

	return p
}

// CheckedPackage is one type-checked package handed to [Build].
type CheckedPackage struct {
	Path  string
	Files []*ast.File
	Info  *types.Info
}

func newProject() *Project {
	return &Project{
		Graph:     graph.NewMemory(),
		Index:     graph.NewMemoryIndex(),
		decls:     make(map[types.Object]*graph.Declaration),
		scopes:    make(map[string]*graph.Scope),
		positions: make(map[*graph.Declaration]token.Position),
	}
}

// PositionOf returns the source position of a declaration.
func (p *Project) PositionOf(d *graph.Declaration) (token.Position, bool) {
	pos, ok := p.positions[d]

	return pos, ok
}

// Decl returns the declaration built for a type-checker object.
func (p *Project) Decl(obj types.Object) (*graph.Declaration, bool) {
	d, ok := p.decls[obj]

	return d, ok
}

// scope returns the interned scope for a package path.
func (p *Project) scope(path string) *graph.Scope {
	if s, ok := p.scopes[path]; ok {
		return s
	}

	s := &graph.Scope{Name: path}
	p.scopes[path] = s

	return s
}

// collect builds declarations for the top-level names of one package.
// Types are collected before functions and variables so methods can link
// to their receiver type.
func (p *Project) collect(fset *token.FileSet, path string, files []*ast.File, info *types.Info) {
	pkg := p.scope(path)

	for _, file := range files {
		for _, d := range file.Decls {
			if gd, ok := d.(*ast.GenDecl); ok && gd.Tok == token.TYPE {
				for _, spec := range gd.Specs {
					if ts, ok := spec.(*ast.TypeSpec); ok {
						p.collectType(fset, pkg, ts, info)
					}
				}
			}
		}
	}

	for _, file := range files {
		for _, d := range file.Decls {
			switch d := d.(type) {
			case *ast.FuncDecl:
				p.collectFunc(fset, pkg, d, info)

			case *ast.GenDecl:
				if d.Tok == token.VAR || d.Tok == token.CONST {
					p.collectValues(fset, pkg, d, info)
				}
			}
		}
	}
}

func (p *Project) collectType(fset *token.FileSet, pkg *graph.Scope, ts *ast.TypeSpec, info *types.Info) {
	obj, ok := info.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return
	}

	decl := &graph.Declaration{
		Name:     obj.Name(),
		Kind:     graph.KindType,
		Flavor:   graph.FlavorClass,
		Level:    level(obj.Name()),
		Pkg:      pkg,
		Physical: true,
	}

	named, _ := obj.Type().(*types.Named)

	if iface, ok := obj.Type().Underlying().(*types.Interface); ok {
		decl.Flavor = graph.FlavorInterface
		p.ifaces = append(p.ifaces, ifaceEntry{iface: iface, decl: decl})
	} else if named != nil {
		p.named = append(p.named, namedEntry{named: named, decl: decl})
	}

	p.add(fset, obj, decl)

	if st, ok := ts.Type.(*ast.StructType); ok {
		p.collectFields(fset, pkg, decl, st, info)
	}
}

func (p *Project) collectFields(fset *token.FileSet, pkg *graph.Scope,
	container *graph.Declaration, st *ast.StructType, info *types.Info,
) {
	for _, field := range st.Fields.List {
		for _, name := range field.Names {
			obj := info.Defs[name]
			if obj == nil {
				continue
			}

			p.add(fset, obj, &graph.Declaration{
				Name:      obj.Name(),
				Kind:      graph.KindField,
				Level:     level(obj.Name()),
				Pkg:       pkg,
				Container: container,
				Physical:  true,
			})
		}
	}
}

func (p *Project) collectFunc(fset *token.FileSet, pkg *graph.Scope, fd *ast.FuncDecl, info *types.Info) {
	obj, ok := info.Defs[fd.Name].(*types.Func)
	if !ok {
		return
	}

	decl := &graph.Declaration{
		Name:     obj.Name(),
		Kind:     graph.KindMethod,
		Level:    level(obj.Name()),
		Pkg:      pkg,
		Physical: true,
	}

	if recv := obj.Signature().Recv(); recv != nil {
		decl.Container = p.receiverDecl(recv)
	}

	p.add(fset, obj, decl)
}

// receiverDecl resolves a method receiver to its collected type
// declaration.
func (p *Project) receiverDecl(recv *types.Var) *graph.Declaration {
	t := recv.Type()
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}

	d, _ := p.decls[named.Obj()]

	return d
}

func (p *Project) collectValues(fset *token.FileSet, pkg *graph.Scope, gd *ast.GenDecl, info *types.Info) {
	var mods graph.Modifiers
	if gd.Tok == token.CONST {
		mods = graph.ModStatic | graph.ModFinal | graph.ModInitializer
	}

	for _, spec := range gd.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		for _, name := range vs.Names {
			obj := info.Defs[name]
			if obj == nil || name.Name == "_" {
				continue
			}

			p.add(fset, obj, &graph.Declaration{
				Name:      obj.Name(),
				Kind:      graph.KindField,
				Modifiers: mods,
				Level:     level(obj.Name()),
				Pkg:       pkg,
				Physical:  true,
			})
		}
	}
}

func (p *Project) add(fset *token.FileSet, obj types.Object, decl *graph.Declaration) {
	p.Graph.Add(decl)
	p.decls[obj] = decl
	p.positions[decl] = fset.Position(obj.Pos())
}

// link marks methods whose name is required by an interface the receiver
// type satisfies. Unexporting such a method would break the satisfaction,
// so they keep their level.
func (p *Project) link() {
	for _, t := range p.named {
		for _, i := range p.ifaces {
			if !types.Implements(t.named, i.iface) &&
				!types.Implements(types.NewPointer(t.named), i.iface) {
				continue
			}

			for k := range i.iface.NumMethods() {
				p.markImplementation(t.named, i.iface.Method(k).Name())
			}
		}
	}
}

func (p *Project) markImplementation(named *types.Named, name string) {
	for k := range named.NumMethods() {
		method := named.Method(k)
		if method.Name() != name {
			continue
		}

		if d, ok := p.decls[method]; ok {
			p.Graph.SetSuperSignature(d)
		}
	}
}

// bind records one usage site per resolved identifier of a package.
// Sites carry the using package only; the lexical rules of nested Java
// types have no Go counterpart.
func (p *Project) bind(path string, info *types.Info) {
	pkg := p.scope(path)

	for _, obj := range info.Uses {
		d, ok := p.decls[obj]
		if !ok {
			continue
		}

		p.Index.AddUsage(d, graph.UsageSite{Pkg: pkg})
	}
}

// level maps Go exportedness onto the access ladder.
func level(name string) access.Level {
	if token.IsExported(name) {
		return access.Public
	}

	return access.Package
}
