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

package graph

// Qualifier is the syntactic form of the qualifier at a usage site.
type Qualifier uint8

const (
	// NoQualifier is an unqualified reference.
	NoQualifier Qualifier = iota

	// ThisQualifier is a reference qualified with the current instance.
	ThisQualifier

	// SuperQualifier is a reference qualified with the supertype instance.
	SuperQualifier

	// ExpressionQualifier is a reference qualified with an arbitrary
	// expression.
	ExpressionQualifier
)

// Context is the structural context a usage site occurs in.
type Context uint8

const (
	// NormalContext is an ordinary reference.
	NormalContext Context = iota

	// ReferenceListContext is a reference inside an extends or implements
	// list.
	ReferenceListContext

	// AnnotationContext is a reference inside an annotation argument.
	AnnotationContext
)

// UsageSite is a single location referencing a declaration, with enough
// structural context to classify the access level the reference requires.
type UsageSite struct {
	// From is the innermost type declaration enclosing the reference,
	// nil when the reference is not inside a known type.
	From *Declaration

	// Pkg is the package the reference occurs in.
	Pkg *Scope

	// Qualifier is the syntactic form of the qualifier.
	Qualifier Qualifier

	// QualifierType is the resolved static type of an
	// [ExpressionQualifier], nil when resolution failed.
	QualifierType *Declaration

	// Context is the structural context of the reference.
	Context Context

	// ConstructorCall reports that the reference denotes construction of
	// the target type or an explicit constructor invocation.
	ConstructorCall bool

	// NonSource reports that the reference lives outside normal source
	// representation, for example in a deployment descriptor.
	NonSource bool
}

// Qualified reports whether the site carries an expression qualifier,
// excluding the this and super forms.
func (s UsageSite) Qualified() bool {
	return s.Qualifier == ExpressionQualifier
}
