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

import (
	"fillmore-labs.com/accessguard/access"
)

// Kind classifies a declaration.
type Kind uint8

const (
	// KindType is a type declaration (class, interface, enum, annotation).
	KindType Kind = iota

	// KindMethod is a method or constructor declaration.
	KindMethod

	// KindField is a field declaration.
	KindField

	// KindEnumConstant is an enum constant declaration.
	KindEnumConstant
)

// Flavor distinguishes the flavors of a type declaration.
type Flavor uint8

const (
	// FlavorClass is an ordinary class type.
	FlavorClass Flavor = iota

	// FlavorInterface is an interface type.
	FlavorInterface

	// FlavorEnum is an enum type.
	FlavorEnum

	// FlavorAnnotation is an annotation type.
	FlavorAnnotation
)

// Modifiers is a bit set of declaration modifiers and syntactic attributes.
type Modifiers uint16

const (
	// ModNative marks a native member.
	ModNative Modifiers = 1 << iota

	// ModStatic marks a static member.
	ModStatic

	// ModFinal marks a final member.
	ModFinal

	// ModAbstract marks an abstract member.
	ModAbstract

	// ModInitializer marks a field with an initializer.
	ModInitializer

	// ModConstructor marks a constructor among the method declarations.
	ModConstructor

	// ModAnonymous marks an anonymous type.
	ModAnonymous

	// ModLocal marks a type declared inside a method body.
	ModLocal

	// ModTypeParameter marks a type parameter.
	ModTypeParameter
)

// Has reports whether all the given modifier bits are set.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// HasAny reports whether at least one of the given modifier bits is set.
func (m Modifiers) HasAny(mod Modifiers) bool {
	return m&mod != 0
}

// Declaration is a named program entity with a current access level.
//
// A Declaration references its containing type but does not own it; the
// containment tree is owned by the [Graph].
type Declaration struct {
	// Name is the simple name of the declaration.
	Name string

	// Kind classifies the declaration.
	Kind Kind

	// Flavor is meaningful for [KindType] declarations only.
	Flavor Flavor

	// Modifiers holds the declared modifiers.
	Modifiers Modifiers

	// Level is the currently declared access level.
	Level access.Level

	// Pkg is the containing package.
	Pkg *Scope

	// Container is the enclosing type declaration, nil for top-level
	// declarations.
	Container *Declaration

	// Synthetic marks compiler-generated members.
	Synthetic bool

	// Physical reports whether the declaration is present in real source.
	Physical bool

	// Incomplete marks partially built declaration data, for example a
	// missing modifier list. Incomplete declarations are never resolved.
	Incomplete bool
}

// IsConstant reports whether the declaration is a constant field,
// a static final field with an initializer.
func (d *Declaration) IsConstant() bool {
	return d.Kind == KindField && d.Modifiers.Has(ModStatic|ModFinal|ModInitializer)
}

// TopLevel reports whether the declaration has no enclosing container.
func (d *Declaration) TopLevel() bool {
	return d.Container == nil
}

// Nested reports whether the declaration is a type contained in another type.
func (d *Declaration) Nested() bool {
	return d.Container != nil || d.Modifiers.Has(ModAnonymous)
}

// Contains reports whether inner is lexically contained in outer,
// including inner == outer.
func Contains(outer, inner *Declaration) bool {
	if outer == nil || inner == nil {
		return false
	}

	for d := inner; d != nil; d = d.Container {
		if d == outer {
			return true
		}
	}

	return false
}
