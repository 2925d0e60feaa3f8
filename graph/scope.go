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

// Scope identifies a package or module. Scopes compare by qualified name.
type Scope struct {
	// Name is the qualified package name.
	Name string
}

// SameAs reports whether both scopes identify the same package.
// A nil scope only matches another nil scope.
func (s *Scope) SameAs(other *Scope) bool {
	if s == other {
		return true
	}

	return s != nil && other != nil && s.Name == other.Name
}
