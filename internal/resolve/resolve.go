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

// Package resolve computes the tightest sufficient access level for a
// single declaration by joining the classification of all its usage sites.
package resolve

import (
	"context"
	"iter"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/accessguard/access"
	"fillmore-labs.com/accessguard/graph"
	"fillmore-labs.com/accessguard/internal/classify"
	"fillmore-labs.com/accessguard/internal/config"
)

// Resolver computes suggested access levels. It is pure with respect to
// the graph and index snapshot of one analysis run and safe for concurrent
// use.
type Resolver struct {
	// Graph supplies declarations and their relations.
	Graph graph.Graph

	// Index yields usage sites.
	Index graph.Index

	// EntryPoints are the registered entry point oracles.
	EntryPoints []graph.EntryPointOracle

	// Extensibility are the registered extensibility providers.
	Extensibility []graph.ExtensibilityProvider

	// Rules is the enabled rule set.
	Rules config.Rules

	// Log receives debug output.
	Log *slog.Logger
}

// SuggestLevel returns the tightest access level that keeps every usage of
// member valid. Declarations that must keep their current level return it
// unchanged. A cancelled context yields an error; the member is then
// unresolved and must produce no suggestion.
func (r *Resolver) SuggestLevel(ctx context.Context, member *graph.Declaration) (access.Level, error) {
	if r.skip(member) {
		return member.Level, nil
	}

	minLevel := access.Private

	entry := false
	if e, floor, finite := r.entryPoint(member); e {
		if !finite {
			r.Log.Debug("entry point without visibility floor", "member", member.Name)

			return member.Level, nil
		}

		entry = true
		minLevel = floor
	}

	acc := newAccumulator(minLevel)

	if err := r.scan(ctx, member, acc); err != nil {
		return 0, err
	}

	if !acc.Found() && !entry {
		// Never suggest Private for an apparently unused member; dead code
		// removal is a separate concern.
		return member.Level, nil
	}

	level := acc.Level()
	if level == access.Private && member.TopLevel() {
		// Private is not expressible for container-less declarations.
		level = r.escalate(member)
	}

	r.Log.Debug("resolved", "member", member.Name, "level", level)

	return level, nil
}

// skip reports whether the member must keep its current level without
// scanning any usages.
func (r *Resolver) skip(member *graph.Declaration) bool {
	if member.Incomplete {
		return true
	}

	if member.IsConstant() && !r.Rules.Enabled(config.Constants) {
		return true
	}

	if member.Level == access.Private || member.Modifiers.Has(graph.ModNative) {
		return true
	}

	if member.Synthetic || !member.Physical {
		return true
	}

	if member.Kind == graph.KindEnumConstant {
		return true
	}

	if member.Kind == graph.KindMethod &&
		(r.Graph.HasSuperSignature(member) || r.Graph.IsOverridden(member)) {
		return true
	}

	if member.Kind == graph.KindType &&
		member.Modifiers.HasAny(graph.ModAnonymous|graph.ModLocal|graph.ModTypeParameter) {
		return true
	}

	container := member.Container
	if container == nil {
		return false
	}

	switch container.Flavor {
	case graph.FlavorInterface, graph.FlavorEnum, graph.FlavorAnnotation:
		// Interface, enum and annotation members have a fixed ABI.
		return true

	case graph.FlavorClass:
	}

	if container.Modifiers.Has(graph.ModLocal) && member.Kind == graph.KindType {
		return true
	}

	// A framework subclassing the container may impose visibility
	// requirements on its methods.
	return member.Kind == graph.KindMethod && r.forced(container, member)
}

// entryPoint consults the registered oracles. finite is false when some
// oracle marks the member as an entry point without a visibility floor.
func (r *Resolver) entryPoint(member *graph.Declaration) (entry bool, floor access.Level, finite bool) {
	for _, o := range r.EntryPoints {
		if !o.IsEntryPoint(member) {
			continue
		}

		f, ok := o.MinVisibility(member)
		if !ok {
			return true, 0, false
		}

		entry, floor, finite = true, access.Max(floor, f), true
	}

	return entry, floor, finite
}

// forced reports whether an extensibility provider forces the member to
// keep its current level.
func (r *Resolver) forced(container, member *graph.Declaration) bool {
	for _, p := range r.Extensibility {
		if !p.AppliesTo(container) {
			continue
		}

		forced, ok := p.ForcedMembers(container)
		if !ok {
			continue
		}

		if forced == nil {
			return true
		}

		if _, in := forced[member]; in {
			return true
		}
	}

	return false
}

// scan joins the classification of all usage sites into acc. Ordinary
// references and implicit behavioral-conversion references of functional
// types are scanned concurrently.
func (r *Resolver) scan(ctx context.Context, member *graph.Declaration, acc *accumulator) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.scanSites(gctx, r.Index.Usages(gctx, member), member, acc)
	})

	if member.Kind == graph.KindType && r.Graph.IsFunctional(member) {
		// There can be closures adopting this type implicitly.
		g.Go(func() error {
			return r.scanSites(gctx, r.Index.ImplicitUsages(gctx, member), member, acc)
		})
	}

	return g.Wait()
}

// scanSites folds the classified level of every site into acc, stopping
// once nothing can exceed the accumulated level.
func (r *Resolver) scanSites(ctx context.Context, sites iter.Seq[graph.UsageSite],
	member *graph.Declaration, acc *accumulator,
) error {
	for site := range sites {
		acc.MarkFound()

		if site.NonSource {
			// Referenced outside normal source representation, has to stay
			// Public.
			acc.Raise(access.Public)

			break
		}

		acc.Raise(classify.Site(r.Graph, r.Rules, site, member))

		if acc.Level() == access.Public {
			break
		}
	}

	return ctx.Err()
}

// escalate maps an inexpressible Private suggestion on a top-level
// declaration to Package or Public per the configured policy.
func (r *Resolver) escalate(member *graph.Declaration) access.Level {
	rule := config.PackageForMembers
	if member.Kind == graph.KindType {
		rule = config.PackageForTopLevelTypes
	}

	if r.Rules.Enabled(rule) {
		return access.Package
	}

	return access.Public
}
