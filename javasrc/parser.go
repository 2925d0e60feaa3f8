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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// parser wraps tree-sitter for Java parsing.
type parser struct {
	parser *sitter.Parser
}

// newParser creates a tree-sitter parser configured for Java.
func newParser() *parser {
	p := sitter.NewParser()
	p.SetLanguage(java.GetLanguage())

	return &parser{parser: p}
}

// parse parses one source file. The caller must keep the tree referenced
// for as long as any of its nodes are in use.
func (p *parser) parse(ctx context.Context, source []byte) (*sitter.Tree, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return tree, nil
}

// readSources walks a directory tree and returns the contents of all Java
// source files, keyed by path.
func readSources(root string) (map[string][]byte, error) {
	sources := make(map[string][]byte)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// Skip hidden and build output directories.
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || name == "target" || name == "build") {
				return filepath.SkipDir
			}

			return nil
		}

		if !strings.HasSuffix(path, ".java") {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		sources[path] = src

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading sources under %s: %w", root, err)
	}

	return sources, nil
}
