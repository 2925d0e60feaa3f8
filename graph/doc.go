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

// Package graph models the declarations of a codebase and the places that
// reference them.
//
// The engine consumes two capabilities: a [Graph] supplying declarations
// with their containment and inheritance relations, and an [Index] yielding
// the usage sites of a declaration. [Memory] and [MemoryIndex] are the
// canonical implementations; front ends populate them once per run, after
// which they are read-only.
//
// [EntryPointOracle] and [ExtensibilityProvider] are the two strategy
// interfaces the resolver consults before scanning usages. They are passed
// to the engine explicitly instead of being discovered at runtime.
package graph
