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
	"context"
	"maps"
	"slices"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/accessguard/graph"
)

// Position locates a declaration in its source file.
type Position struct {
	File   string
	Line   uint32
	Column uint32
}

// Project is the declaration graph and usage index built from a set of
// Java sources. It is read-only after [Parse] returns.
type Project struct {
	// Graph is the populated declaration graph.
	Graph *graph.Memory

	// Index is the populated usage index.
	Index *graph.MemoryIndex

	// trees keeps the parse trees referenced; their nodes back the
	// symbol tables below.
	trees []*sitter.Tree

	types       map[string]*typeInfo // by qualified name
	byDecl      map[*graph.Declaration]*typeInfo
	scopes      map[string]*graph.Scope
	annotations map[*graph.Declaration][]string
	positions   map[*graph.Declaration]Position
	arities     map[*graph.Declaration]int
	fieldTypes  map[*graph.Declaration]*typeInfo
}

// typeInfo carries the per-type symbol table built while collecting
// declarations.
type typeInfo struct {
	decl       *graph.Declaration
	qualified  string
	node       *sitter.Node
	body       *sitter.Node
	file       *fileInfo
	superNames []string
	supers     []*typeInfo
	members    map[string][]*graph.Declaration
	nodes      map[*graph.Declaration]*sitter.Node
}

// fileInfo carries per-file context needed for name resolution.
type fileInfo struct {
	path    string
	src     []byte
	pkg     *graph.Scope
	imports map[string]string // simple name to qualified name
}

// Load parses all Java sources under root and builds a [Project].
func Load(ctx context.Context, root string) (*Project, error) {
	sources, err := readSources(root)
	if err != nil {
		return nil, err
	}

	return Parse(ctx, sources)
}

// Parse builds a [Project] from the given sources, keyed by path.
// Files that fail to parse are skipped silently; tree-sitter degrades
// gracefully on partial input.
func Parse(ctx context.Context, sources map[string][]byte) (*Project, error) {
	p := &Project{
		Graph:       graph.NewMemory(),
		Index:       graph.NewMemoryIndex(),
		types:       make(map[string]*typeInfo),
		byDecl:      make(map[*graph.Declaration]*typeInfo),
		scopes:      make(map[string]*graph.Scope),
		annotations: make(map[*graph.Declaration][]string),
		positions:   make(map[*graph.Declaration]Position),
		arities:     make(map[*graph.Declaration]int),
		fieldTypes:  make(map[*graph.Declaration]*typeInfo),
	}

	ps := newParser()

	for _, path := range slices.Sorted(maps.Keys(sources)) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		src := sources[path]

		tree, err := ps.parse(ctx, src)
		if err != nil {
			continue
		}

		p.trees = append(p.trees, tree)
		p.collectFile(path, src, tree.RootNode())
	}

	p.link()
	p.bind()

	return p, nil
}

// Annotations returns the simple names of the annotations on a
// declaration.
func (p *Project) Annotations(d *graph.Declaration) []string {
	return p.annotations[d]
}

// PositionOf returns the source position of a declaration.
func (p *Project) PositionOf(d *graph.Declaration) (Position, bool) {
	pos, ok := p.positions[d]

	return pos, ok
}

// Type returns the type declaration with the given qualified name.
func (p *Project) Type(qualified string) (*graph.Declaration, bool) {
	t, ok := p.types[qualified]
	if !ok {
		return nil, false
	}

	return t.decl, true
}

// scope returns the interned scope for a package name.
func (p *Project) scope(name string) *graph.Scope {
	if s, ok := p.scopes[name]; ok {
		return s
	}

	s := &graph.Scope{Name: name}
	p.scopes[name] = s

	return s
}
