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

package engine

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"runtime/trace"
	"sync"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/accessguard/access"
	"fillmore-labs.com/accessguard/graph"
	"fillmore-labs.com/accessguard/internal/aggregate"
	"fillmore-labs.com/accessguard/internal/config"
	"fillmore-labs.com/accessguard/internal/resolve"
)

// ErrMissingCollaborator is returned when the engine is constructed
// without a declaration graph or usage index.
var ErrMissingCollaborator = errors.New("declaration graph or usage index missing")

// Engine computes suggested access levels for all declarations of one
// graph snapshot.
type Engine struct {
	graph         graph.Graph
	index         graph.Index
	entryPoints   []graph.EntryPointOracle
	extensibility []graph.ExtensibilityProvider
	rules         config.Rules
	workers       int
	log           *slog.Logger
}

// New creates an engine for the given graph and usage index. Entry point
// oracles and extensibility providers are passed explicitly via [Option]
// values, not discovered at runtime.
func New(g graph.Graph, index graph.Index, opts ...Option) *Engine {
	e := &Engine{
		graph:   g,
		index:   index,
		rules:   config.DefaultRules(),
		workers: runtime.GOMAXPROCS(0),
		log:     slog.Default(),
	}
	Options(opts).apply(e)

	return e
}

// Suggestion proposes tightening one declaration's access level.
type Suggestion struct {
	// Decl is the declaration the suggestion applies to.
	Decl *graph.Declaration

	// Current is the declared access level.
	Current access.Level

	// Suggested is the tightest sufficient access level.
	Suggested access.Level
}

// Result holds the outcome of one analysis run.
type Result struct {
	levels      map[*graph.Declaration]access.Level
	suggestions []Suggestion
}

// Level returns the resolved level of a declaration. The second result is
// false when the declaration was not resolved, for example because the run
// was cancelled before reaching it.
func (r *Result) Level(d *graph.Declaration) (access.Level, bool) {
	level, ok := r.levels[d]

	return level, ok
}

// Suggestions returns all emitted suggestions in graph order.
func (r *Result) Suggestions() []Suggestion {
	return r.suggestions
}

// Run resolves every declaration on a worker pool and aggregates the
// results bottom-up. Cancellation stops scanning early; declarations left
// unresolved are excluded from the result, which is not an error.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if e.graph == nil || e.index == nil {
		return nil, ErrMissingCollaborator
	}

	ctx, task := trace.NewTask(ctx, "AccessGuard")
	defer task.End()

	r := &resolve.Resolver{
		Graph:         e.graph,
		Index:         e.index,
		EntryPoints:   e.entryPoints,
		Extensibility: e.extensibility,
		Rules:         e.rules,
		Log:           e.log,
	}

	tbl := aggregate.NewTable()

	// The levels map is shared across workers; each update is one short
	// critical section.
	var mu sync.Mutex
	levels := make(map[*graph.Declaration]access.Level)

	var g errgroup.Group
	g.SetLimit(e.workers)

	for d := range e.graph.All() {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			level, err := r.SuggestLevel(ctx, d)
			if err != nil {
				// Cancelled mid-scan: unresolved, yields no suggestion.
				return nil
			}

			tbl.Record(d.Container, level)

			mu.Lock()
			levels[d] = level
			mu.Unlock()

			return nil
		})
	}

	_ = g.Wait() // workers never fail

	return e.aggregate(tbl, levels), nil
}

// aggregate walks the resolved levels in graph order, emits suggestions
// tighter than the declared level and withdraws container suggestions that
// would violate monotonic containment.
func (e *Engine) aggregate(tbl *aggregate.Table, levels map[*graph.Declaration]access.Level) *Result {
	var suggestions []Suggestion

	for d := range e.graph.All() {
		level, ok := levels[d]
		if !ok || level >= d.Level {
			continue
		}

		if tbl.Withdraw(e.graph, d, level) {
			e.log.Debug("withdrawn", "decl", d.Name, "suggested", level)

			continue
		}

		suggestions = append(suggestions, Suggestion{Decl: d, Current: d.Level, Suggested: level})
	}

	return &Result{levels: levels, suggestions: suggestions}
}
