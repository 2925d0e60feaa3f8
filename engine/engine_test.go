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

package engine_test

import (
	"log/slog"
	"testing"

	"fillmore-labs.com/accessguard/access"
	. "fillmore-labs.com/accessguard/engine"
	"fillmore-labs.com/accessguard/graph"
	"fillmore-labs.com/accessguard/internal/graphtest"
)

func quiet() Option {
	return WithLogger(slog.New(slog.DiscardHandler))
}

func TestRun(t *testing.T) {
	t.Parallel()

	f := graphtest.New()

	pkg := f.Scope("com.example.core")
	other := f.Scope("com.example.client")

	owner := f.Type("Owner", pkg, nil, access.Public, 0)
	neighbor := f.Type("Neighbor", pkg, nil, access.Public, 0)
	far := f.Type("Far", other, nil, access.Public, 0)

	// Only used inside Owner: Private.
	hidden := f.Field("hidden", owner, access.Public, 0)
	f.Use(hidden, graph.UsageSite{From: owner, Pkg: pkg})

	// Only used in the same package: Package.
	helper := f.Method("helper", owner, access.Public, 0)
	f.Use(helper, graph.UsageSite{From: neighbor, Pkg: pkg})

	// Used cross-package: keeps Public, no suggestion.
	api := f.Method("api", owner, access.Public, 0)
	f.Use(api, graph.UsageSite{From: far, Pkg: other})

	// Owner is referenced only from its own package, but exposing helper at
	// Package level keeps Owner at Package too, which is still a valid
	// suggestion; api keeping Public withdraws it.
	f.Use(owner, graph.UsageSite{From: neighbor, Pkg: pkg})

	e := New(f.Graph, f.Index, quiet())

	result, err := e.Run(t.Context())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := map[*graph.Declaration]access.Level{
		hidden: access.Private,
		helper: access.Package,
	}

	suggestions := result.Suggestions()
	if len(suggestions) != len(want) {
		t.Fatalf("got %d suggestions, want %d: %v", len(suggestions), len(want), suggestions)
	}

	for _, s := range suggestions {
		wantLevel, ok := want[s.Decl]
		if !ok {
			t.Errorf("unexpected suggestion for %s", s.Decl.Name)

			continue
		}

		if s.Suggested != wantLevel {
			t.Errorf("%s suggested %v, want %v", s.Decl.Name, s.Suggested, wantLevel)
		}

		if s.Current != access.Public {
			t.Errorf("%s current %v, want Public", s.Decl.Name, s.Current)
		}
	}

	// api keeps Public even though Owner could be Package; the container
	// suggestion is withdrawn by aggregation.
	if level, ok := result.Level(owner); !ok || level != access.Package {
		t.Errorf("Owner resolved to %v, want Package", level)
	}
}

func TestRunIdempotent(t *testing.T) {
	t.Parallel()

	f := graphtest.New()

	pkg := f.Scope("com.example")
	owner := f.Type("Owner", pkg, nil, access.Public, 0)
	neighbor := f.Type("Neighbor", pkg, nil, access.Public, 0)

	field := f.Field("value", owner, access.Public, 0)
	f.Use(field, graph.UsageSite{From: owner, Pkg: pkg})

	method := f.Method("run", owner, access.Public, 0)
	f.Use(method, graph.UsageSite{From: neighbor, Pkg: pkg})

	e := New(f.Graph, f.Index, quiet())

	first, err := e.Run(t.Context())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	second, err := e.Run(t.Context())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(first.Suggestions()) != len(second.Suggestions()) {
		t.Fatalf("runs differ: %v vs %v", first.Suggestions(), second.Suggestions())
	}

	for i, s := range first.Suggestions() {
		if second.Suggestions()[i] != s {
			t.Errorf("suggestion %d differs: %v vs %v", i, s, second.Suggestions()[i])
		}
	}
}

func TestRunMonotonicContainment(t *testing.T) {
	t.Parallel()

	f := graphtest.New()

	pkg := f.Scope("com.example.core")
	other := f.Scope("com.example.client")

	outer := f.Type("Outer", pkg, nil, access.Public, 0)
	inner := f.Type("Inner", pkg, outer, access.Public, graph.ModStatic)
	far := f.Type("Far", other, nil, access.Public, 0)

	// Inner itself is only referenced locally, but its field is used
	// cross-package: the Inner suggestion must be withdrawn.
	f.Use(inner, graph.UsageSite{From: outer, Pkg: pkg})

	exposed := f.Field("exposed", inner, access.Public, 0)
	f.Use(exposed, graph.UsageSite{From: far, Pkg: other})

	e := New(f.Graph, f.Index, quiet())

	result, err := e.Run(t.Context())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, s := range result.Suggestions() {
		if s.Decl == inner {
			t.Errorf("suggestion for Inner (%v) must be withdrawn", s.Suggested)
		}
	}
}

func TestRunMissingCollaborator(t *testing.T) {
	t.Parallel()

	e := New(nil, nil, quiet())

	if _, err := e.Run(t.Context()); err == nil {
		t.Error("expected error for missing collaborators")
	}
}
