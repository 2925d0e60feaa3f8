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

package gosrc_test

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/accessguard/access"
	"fillmore-labs.com/accessguard/engine"
	"fillmore-labs.com/accessguard/gosrc"
	"fillmore-labs.com/accessguard/graph"
)

const widgetSrc = `package a

type Widget struct {
	Count int
	name  string
}

type Resetter interface {
	Reset()
}

func (w *Widget) Reset() { w.Count = 0; w.name = "" }

func (w *Widget) Hidden() int { return w.Count }

func total(w *Widget) int { return w.Hidden() }

func NewWidget() *Widget { return &Widget{} }

const Limit = 3
`

const clientSrc = `package b

import "example.com/a"

func Use() int {
	w := a.NewWidget()
	w.Reset()
	return w.Count
}
`

type mapImporter map[string]*types.Package

func (m mapImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := m[path]; ok {
		return pkg, nil
	}

	return nil, fmt.Errorf("unknown import %q", path)
}

func check(tb testing.TB, fset *token.FileSet, path, src string,
	imports mapImporter,
) (*types.Package, gosrc.CheckedPackage) {
	tb.Helper()

	file, err := parser.ParseFile(fset, path+"/src.go", src, 0)
	require.NoError(tb, err)

	info := &types.Info{
		Defs: make(map[*ast.Ident]types.Object),
		Uses: make(map[*ast.Ident]types.Object),
	}

	conf := types.Config{Importer: imports}
	pkg, err := conf.Check(path, fset, []*ast.File{file}, info)
	require.NoError(tb, err)

	return pkg, gosrc.CheckedPackage{Path: path, Files: []*ast.File{file}, Info: info}
}

func project(tb testing.TB) *gosrc.Project {
	tb.Helper()

	fset := token.NewFileSet()

	pkgA, checkedA := check(tb, fset, "example.com/a", widgetSrc, nil)
	_, checkedB := check(tb, fset, "example.com/b", clientSrc, mapImporter{"example.com/a": pkgA})

	return gosrc.Build(fset, []gosrc.CheckedPackage{checkedA, checkedB})
}

func findDecl(tb testing.TB, p *gosrc.Project, pkg, name string) *graph.Declaration {
	tb.Helper()

	for d := range p.Graph.All() {
		if d.Name == name && d.Pkg.Name == pkg {
			return d
		}
	}

	tb.Fatalf("declaration %s.%s not found", pkg, name)

	return nil
}

func TestBuild(t *testing.T) {
	t.Parallel()

	p := project(t)

	widget := findDecl(t, p, "example.com/a", "Widget")
	assert.Equal(t, graph.KindType, widget.Kind)
	assert.Equal(t, access.Public, widget.Level)

	count := findDecl(t, p, "example.com/a", "Count")
	assert.Same(t, widget, count.Container)

	name := findDecl(t, p, "example.com/a", "name")
	assert.Equal(t, access.Package, name.Level)

	reset := findDecl(t, p, "example.com/a", "Reset")
	assert.Same(t, widget, reset.Container)
	assert.True(t, p.Graph.HasSuperSignature(reset), "interface methods keep their level")

	limit := findDecl(t, p, "example.com/a", "Limit")
	assert.True(t, limit.IsConstant())

	pos, ok := p.PositionOf(widget)
	require.True(t, ok)
	assert.Equal(t, "example.com/a/src.go", pos.Filename)
	assert.Equal(t, 3, pos.Line)
}

func TestSuggestUnexport(t *testing.T) {
	t.Parallel()

	p := project(t)

	e := engine.New(p.Graph, p.Index,
		engine.WithEntryPoints(gosrc.EntryPoints{}),
		engine.WithLogger(slog.New(slog.DiscardHandler)),
	)

	result, err := e.Run(context.Background())
	require.NoError(t, err)

	// Widget is referenced only inside its package, but its field Count is
	// read cross-package, so only Hidden can tighten.
	suggestions := result.Suggestions()
	require.Len(t, suggestions, 1)
	assert.Same(t, findDecl(t, p, "example.com/a", "Hidden"), suggestions[0].Decl)
	assert.Equal(t, access.Package, suggestions[0].Suggested)
}

func TestEntryPoints(t *testing.T) {
	t.Parallel()

	oracle := gosrc.EntryPoints{}

	main := &graph.Declaration{Name: "main", Kind: graph.KindMethod}
	assert.True(t, oracle.IsEntryPoint(main))

	_, finite := oracle.MinVisibility(main)
	assert.False(t, finite)

	use := &graph.Declaration{Name: "Use", Kind: graph.KindMethod}
	assert.False(t, oracle.IsEntryPoint(use))
}
