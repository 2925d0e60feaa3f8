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

package classify_test

import (
	"testing"

	"fillmore-labs.com/accessguard/access"
	"fillmore-labs.com/accessguard/graph"
	. "fillmore-labs.com/accessguard/internal/classify"
	"fillmore-labs.com/accessguard/internal/config"
	"fillmore-labs.com/accessguard/internal/graphtest"
)

func TestSite(t *testing.T) {
	t.Parallel()

	f := graphtest.New()

	pkg := f.Scope("com.example.core")
	other := f.Scope("com.example.client")

	owner := f.Type("Owner", pkg, nil, access.Public, 0)
	sub := f.Type("Sub", other, nil, access.Public, 0)
	neighbor := f.Type("Neighbor", pkg, nil, access.Public, 0)
	far := f.Type("Far", other, nil, access.Public, 0)
	staticNested := f.Type("Nested", pkg, owner, access.Public, graph.ModStatic)

	f.Graph.AddSupertype(sub, owner)

	field := f.Field("value", owner, access.Public, 0)
	method := f.Method("run", owner, access.Public, 0)
	abstract := f.Method("handle", owner, access.Public, graph.ModAbstract)
	ctor := f.Method("Owner", owner, access.Public, graph.ModConstructor)

	tests := []struct {
		name   string
		site   graph.UsageSite
		member *graph.Declaration
		rules  []config.Rule
		want   access.Level
	}{
		{
			name:   "own_type_field",
			site:   graph.UsageSite{From: owner, Pkg: pkg},
			member: field,
			want:   access.Private,
		},
		{
			name:   "reference_list_is_package",
			site:   graph.UsageSite{From: owner, Pkg: pkg, Context: graph.ReferenceListContext},
			member: field,
			want:   access.Package,
		},
		{
			name:   "annotation_argument_is_package",
			site:   graph.UsageSite{From: owner, Pkg: pkg, Context: graph.AnnotationContext},
			member: field,
			want:   access.Package,
		},
		{
			name:   "abstract_member_local",
			site:   graph.UsageSite{From: owner, Pkg: pkg},
			member: abstract,
			want:   access.Package,
		},
		{
			name: "dispatch_through_subtype",
			site: graph.UsageSite{
				From: owner, Pkg: pkg,
				Qualifier: graph.ExpressionQualifier, QualifierType: sub,
			},
			member: method,
			want:   access.Package,
		},
		{
			name:   "nested_member_without_inners_rule",
			site:   graph.UsageSite{From: owner, Pkg: pkg},
			member: f.Field("inner", staticNested, access.Public, 0),
			want:   access.Package,
		},
		{
			name:   "nested_member_with_inners_rule",
			site:   graph.UsageSite{From: owner, Pkg: pkg},
			member: f.Field("inner2", staticNested, access.Public, 0),
			rules:  []config.Rule{config.PrivateForInners},
			want:   access.Private,
		},
		{
			name:   "same_package_unqualified",
			site:   graph.UsageSite{From: neighbor, Pkg: pkg},
			member: method,
			want:   access.Package,
		},
		{
			name: "same_package_qualified_same_package_type",
			site: graph.UsageSite{
				From: neighbor, Pkg: pkg,
				Qualifier: graph.ExpressionQualifier, QualifierType: owner,
			},
			member: field,
			want:   access.Package,
		},
		{
			name: "same_package_unresolved_qualifier",
			site: graph.UsageSite{
				From: neighbor, Pkg: pkg,
				Qualifier: graph.ExpressionQualifier,
			},
			member: field,
			want:   access.Public,
		},
		{
			name: "qualified_cross_package",
			site: graph.UsageSite{
				From: far, Pkg: other,
				Qualifier: graph.ExpressionQualifier, QualifierType: owner,
			},
			member: field,
			want:   access.Public,
		},
		{
			name:   "super_call_from_subclass",
			site:   graph.UsageSite{From: sub, Pkg: other, Qualifier: graph.SuperQualifier},
			member: method,
			want:   access.Protected,
		},
		{
			name: "constructor_from_subclass",
			site: graph.UsageSite{
				From: sub, Pkg: other,
				ConstructorCall: true,
			},
			member: ctor,
			want:   access.Public,
		},
		{
			name:   "unrelated_cross_package",
			site:   graph.UsageSite{From: far, Pkg: other},
			member: method,
			want:   access.Public,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rules := config.DefaultRules()
			for _, r := range tt.rules {
				rules.Enable(r)
			}

			if got := Site(f.Graph, rules, tt.site, tt.member); got != tt.want {
				t.Errorf("Site() = %v, want %v", got, tt.want)
			}
		})
	}
}
