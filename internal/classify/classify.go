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

// Package classify computes the minimal access level a single usage site
// requires for the declaration it references.
package classify

import (
	"fillmore-labs.com/accessguard/access"
	"fillmore-labs.com/accessguard/graph"
	"fillmore-labs.com/accessguard/internal/config"
)

// Site returns the minimal access level the given usage site requires for
// member. Rules are evaluated in order; the first match wins.
func Site(g graph.Graph, rules config.Rules, site graph.UsageSite, member *graph.Declaration) access.Level {
	container := member.Container

	if local(site, container) {
		return localLevel(g, rules, site, member, container)
	}

	// Unqualified same-package access, or access through a qualifier whose
	// resolved type lives in the same package. An unresolved qualifier type
	// never passes: suggesting less than Public for it could break the
	// reference.
	if member.Pkg.SameAs(site.Pkg) && samePackageQualifier(site) {
		return access.Package
	}

	// Protected members are unreachable through an arbitrary qualifier.
	if site.Qualified() {
		return access.Public
	}

	// Access from a strict subtype can be Protected, except for
	// constructors.
	if container != nil && site.From != nil && g.IsSubtype(site.From, container) && !site.ConstructorCall {
		return access.Protected
	}

	return access.Public
}

// local reports whether the reference and the declaring container are
// lexically related closely enough for Private access: the reference sits
// inside the declaring container's enclosing type, or inside the container
// itself through a non-static nested type.
func local(site graph.UsageSite, container *graph.Declaration) bool {
	if container == nil || site.From == nil {
		return false
	}

	if graph.Contains(site.From, container) {
		return true
	}

	return graph.Contains(container, site.From) && !site.From.Modifiers.Has(graph.ModStatic)
}

// localLevel classifies a lexically local reference.
func localLevel(g graph.Graph, rules config.Rules, site graph.UsageSite,
	member, container *graph.Declaration,
) access.Level {
	// Extends/implements lists and annotation arguments cannot reliably
	// resolve a Private target even when textually local.
	if site.Context == graph.ReferenceListContext || site.Context == graph.AnnotationContext {
		return access.Package
	}

	// Private would break override resolution for abstract members and for
	// calls dispatched through a subtype instance.
	if member.Modifiers.Has(graph.ModAbstract) || calledOnSubtype(g, site, container) {
		return access.Package
	}

	if container.Nested() && !rules.Enabled(config.PrivateForInners) {
		return access.Package
	}

	return access.Private
}

// calledOnSubtype reports whether the call goes through a qualifier whose
// static type is a strict subtype of the declaring container.
func calledOnSubtype(g graph.Graph, site graph.UsageSite, container *graph.Declaration) bool {
	if site.QualifierType == nil {
		return false
	}

	return g.IsSubtype(site.QualifierType, container)
}

// samePackageQualifier reports whether the site's qualifier permits
// package-level access: no expression qualifier, or one whose resolved
// static type belongs to the referencing package.
func samePackageQualifier(site graph.UsageSite) bool {
	if !site.Qualified() {
		return true
	}

	return site.QualifierType != nil && site.QualifierType.Pkg.SameAs(site.Pkg)
}
