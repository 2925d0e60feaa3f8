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

package gosrc

import (
	"fillmore-labs.com/accessguard/access"
	"fillmore-labs.com/accessguard/graph"
)

// EntryPoints recognizes declarations the Go runtime or toolchain reaches
// without a source-level reference: main and init functions, and test
// functions in test packages.
type EntryPoints struct{}

// IsEntryPoint implements [graph.EntryPointOracle].
func (EntryPoints) IsEntryPoint(d *graph.Declaration) bool {
	if d.Kind != graph.KindMethod || d.Container != nil {
		return false
	}

	switch d.Name {
	case "main", "init", "TestMain":
		return true
	}

	return false
}

// MinVisibility implements [graph.EntryPointOracle]. Runtime entry points
// have no finite floor and keep their level.
func (EntryPoints) MinVisibility(*graph.Declaration) (access.Level, bool) {
	return 0, false
}
