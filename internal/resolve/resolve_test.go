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

package resolve_test

import (
	"context"
	"iter"
	"log/slog"
	"testing"

	"fillmore-labs.com/accessguard/access"
	"fillmore-labs.com/accessguard/graph"
	"fillmore-labs.com/accessguard/internal/config"
	"fillmore-labs.com/accessguard/internal/graphtest"
	. "fillmore-labs.com/accessguard/internal/resolve"
)

func newResolver(f *graphtest.Fixture) *Resolver {
	return &Resolver{
		Graph: f.Graph,
		Index: f.Index,
		Rules: config.DefaultRules(),
		Log:   slog.New(slog.DiscardHandler),
	}
}

func TestSuggestLevel(t *testing.T) {
	t.Parallel()

	f := graphtest.New()

	pkg := f.Scope("com.example.core")
	other := f.Scope("com.example.client")

	owner := f.Type("Owner", pkg, nil, access.Public, 0)
	neighbor := f.Type("Neighbor", pkg, nil, access.Public, 0)
	sub := f.Type("Sub", other, nil, access.Public, 0)
	far := f.Type("Far", other, nil, access.Public, 0)
	f.Graph.AddSupertype(sub, owner)

	// Scenario A: field referenced only from its own declaring type.
	hidden := f.Field("hidden", owner, access.Public, 0)
	f.Use(hidden, graph.UsageSite{From: owner, Pkg: pkg})

	// Scenario B: method referenced only from the same package.
	helper := f.Method("helper", owner, access.Public, 0)
	f.Use(helper, graph.UsageSite{From: neighbor, Pkg: pkg})

	// Scenario C: field accessed as obj.field from another package.
	exposed := f.Field("exposed", owner, access.Public, 0)
	f.Use(exposed, graph.UsageSite{
		From: far, Pkg: other,
		Qualifier: graph.ExpressionQualifier, QualifierType: owner,
	})

	// Scenario D: super.method() from a subclass in another package.
	hook := f.Method("hook", owner, access.Public, 0)
	f.Use(hook, graph.UsageSite{From: sub, Pkg: other, Qualifier: graph.SuperQualifier})

	// Mixed usages: the broadest site wins.
	mixed := f.Method("mixed", owner, access.Public, 0)
	f.Use(mixed, graph.UsageSite{From: owner, Pkg: pkg})
	f.Use(mixed, graph.UsageSite{From: neighbor, Pkg: pkg})

	private := f.Field("secret", owner, access.Private, 0)
	native := f.Method("nativeOp", owner, access.Public, graph.ModNative)
	unused := f.Method("unused", owner, access.Public, 0)
	constant := f.Field("LIMIT", owner, access.Public,
		graph.ModStatic|graph.ModFinal|graph.ModInitializer)

	overridden := f.Method("template", owner, access.Public, 0)
	f.Graph.SetOverridden(overridden)
	f.Use(overridden, graph.UsageSite{From: owner, Pkg: pkg})

	tests := []struct {
		name   string
		member *graph.Declaration
		want   access.Level
	}{
		{name: "scenario_a_private", member: hidden, want: access.Private},
		{name: "scenario_b_package", member: helper, want: access.Package},
		{name: "scenario_c_public", member: exposed, want: access.Public},
		{name: "scenario_d_protected", member: hook, want: access.Protected},
		{name: "join_over_sites", member: mixed, want: access.Package},
		{name: "private_unchanged", member: private, want: access.Private},
		{name: "native_unchanged", member: native, want: access.Public},
		{name: "unused_unchanged", member: unused, want: access.Public},
		{name: "constant_unchanged", member: constant, want: access.Public},
		{name: "overridden_unchanged", member: overridden, want: access.Public},
	}

	r := newResolver(f)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.SuggestLevel(t.Context(), tt.member)
			if err != nil {
				t.Fatalf("SuggestLevel() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("SuggestLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSuggestLevelIdempotent(t *testing.T) {
	t.Parallel()

	f := graphtest.New()

	pkg := f.Scope("com.example")
	owner := f.Type("Owner", pkg, nil, access.Public, 0)
	field := f.Field("value", owner, access.Public, 0)
	f.Use(field, graph.UsageSite{From: owner, Pkg: pkg})

	r := newResolver(f)

	first, err := r.SuggestLevel(t.Context(), field)
	if err != nil {
		t.Fatalf("SuggestLevel() error = %v", err)
	}

	second, err := r.SuggestLevel(t.Context(), field)
	if err != nil {
		t.Fatalf("SuggestLevel() error = %v", err)
	}

	if first != second {
		t.Errorf("runs differ: %v vs %v", first, second)
	}
}

func TestEntryPoints(t *testing.T) {
	t.Parallel()

	f := graphtest.New()

	pkg := f.Scope("com.example")
	owner := f.Type("Owner", pkg, nil, access.Public, 0)

	fixed := f.Method("main", owner, access.Public, 0)
	floored := f.Method("onMessage", owner, access.Public, 0)
	f.Use(floored, graph.UsageSite{From: owner, Pkg: pkg})

	api := f.Type("Api", pkg, nil, access.Public, 0)
	tool := f.Type("Tool", pkg, nil, access.Public, 0)

	r := newResolver(f)
	r.EntryPoints = []graph.EntryPointOracle{graphtest.EntryPoints{
		Fixed: map[*graph.Declaration]struct{}{fixed: {}},
		Floors: map[*graph.Declaration]access.Level{
			floored: access.Protected,
			api:     access.Package,
			tool:    access.Private,
		},
	}}

	tests := []struct {
		name   string
		member *graph.Declaration
		want   access.Level
	}{
		// No finite floor: fully constrained.
		{name: "fixed_entry_point", member: fixed, want: access.Public},
		// Floor seeds the join even above the usage classification.
		{name: "floor_lower_bound", member: floored, want: access.Protected},
		// Entry point without usages still resolves to its floor.
		{name: "floor_without_usages", member: api, want: access.Package},
		// Private is inexpressible for a top-level type and escalates.
		{name: "top_level_escalation", member: tool, want: access.Package},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.SuggestLevel(t.Context(), tt.member)
			if err != nil {
				t.Fatalf("SuggestLevel() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("SuggestLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForcedMembers(t *testing.T) {
	t.Parallel()

	f := graphtest.New()

	pkg := f.Scope("com.example")
	service := f.Type("Service", pkg, nil, access.Public, 0)
	forced := f.Method("transactional", service, access.Public, 0)
	free := f.Method("plain", service, access.Public, 0)

	f.Use(forced, graph.UsageSite{From: service, Pkg: pkg})
	f.Use(free, graph.UsageSite{From: service, Pkg: pkg})

	r := newResolver(f)
	r.Extensibility = []graph.ExtensibilityProvider{graphtest.Extensibility{
		Forced: map[*graph.Declaration]map[*graph.Declaration]struct{}{
			service: {forced: {}},
		},
	}}

	got, err := r.SuggestLevel(t.Context(), forced)
	if err != nil {
		t.Fatalf("SuggestLevel() error = %v", err)
	}

	if got != access.Public {
		t.Errorf("forced member resolved to %v, want unchanged Public", got)
	}

	got, err = r.SuggestLevel(t.Context(), free)
	if err != nil {
		t.Fatalf("SuggestLevel() error = %v", err)
	}

	if got != access.Private {
		t.Errorf("unconstrained member resolved to %v, want Private", got)
	}
}

func TestFunctionalImplicitUsages(t *testing.T) {
	t.Parallel()

	f := graphtest.New()

	pkg := f.Scope("com.example")
	other := f.Scope("com.example.client")

	handler := f.Type("Handler", pkg, nil, access.Public, 0)
	f.Graph.SetFunctional(handler)

	caller := f.Type("Caller", pkg, nil, access.Public, 0)
	adopter := f.Type("Adopter", other, nil, access.Public, 0)

	f.Use(handler, graph.UsageSite{From: caller, Pkg: pkg})
	f.Index.AddImplicitUsage(handler, graph.UsageSite{From: adopter, Pkg: other})

	r := newResolver(f)

	got, err := r.SuggestLevel(t.Context(), handler)
	if err != nil {
		t.Fatalf("SuggestLevel() error = %v", err)
	}

	// The cross-package lambda adoption forces Public.
	if got != access.Public {
		t.Errorf("SuggestLevel() = %v, want Public", got)
	}
}

// countingIndex records how many sites were actually visited.
type countingIndex struct {
	sites   []graph.UsageSite
	visited int
}

func (c *countingIndex) Usages(_ context.Context, _ *graph.Declaration) iter.Seq[graph.UsageSite] {
	return func(yield func(graph.UsageSite) bool) {
		for _, site := range c.sites {
			c.visited++
			if !yield(site) {
				return
			}
		}
	}
}

func (c *countingIndex) ImplicitUsages(_ context.Context, _ *graph.Declaration) iter.Seq[graph.UsageSite] {
	return func(func(graph.UsageSite) bool) {}
}

func TestNonSourceShortCircuit(t *testing.T) {
	t.Parallel()

	f := graphtest.New()

	pkg := f.Scope("com.example")
	owner := f.Type("Owner", pkg, nil, access.Public, 0)
	bean := f.Field("bean", owner, access.Public, 0)

	// Scenario E: a descriptor reference followed by source references that
	// must not be scanned.
	idx := &countingIndex{sites: []graph.UsageSite{
		{NonSource: true, Pkg: pkg},
		{From: owner, Pkg: pkg},
		{From: owner, Pkg: pkg},
	}}

	r := newResolver(f)
	r.Index = idx

	got, err := r.SuggestLevel(t.Context(), bean)
	if err != nil {
		t.Fatalf("SuggestLevel() error = %v", err)
	}

	if got != access.Public {
		t.Errorf("SuggestLevel() = %v, want Public", got)
	}

	if idx.visited != 1 {
		t.Errorf("visited %d sites, want 1", idx.visited)
	}
}

func TestCancellation(t *testing.T) {
	t.Parallel()

	f := graphtest.New()

	pkg := f.Scope("com.example")
	owner := f.Type("Owner", pkg, nil, access.Public, 0)
	field := f.Field("value", owner, access.Public, 0)
	f.Use(field, graph.UsageSite{From: owner, Pkg: pkg})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	r := newResolver(f)

	if _, err := r.SuggestLevel(ctx, field); err == nil {
		t.Error("expected error from cancelled context")
	}
}
