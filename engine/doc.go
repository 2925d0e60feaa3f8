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

// Package engine computes, for every declaration of a codebase, the
// tightest access level that keeps all of its references valid.
//
// # Overview
//
// AccessGuard suggests tightening declarations whose declared visibility
// exceeds what their usages require.
//
// # Example
//
// Before:
//
//	public class Cache {
//	    public int limit;        // only read by Cache itself
//	    public void evict() {}   // only called from the same package
//	}
//
// After applying accessguard's suggestions:
//
//	public class Cache {
//	    private int limit;
//	    void evict() {}
//	}
//
// # Pipeline
//
// Each declaration is resolved independently on a worker pool: skip rules
// and the entry point and extensibility oracles run first, then every
// usage site is classified and the required levels are joined. A bottom-up
// aggregation pass withdraws container suggestions that would end up
// stricter than a contained member's requirement.
package engine
