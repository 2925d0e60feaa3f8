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

// Package javasrc builds a declaration graph and usage index from Java
// sources using tree-sitter.
//
// The front end is a single-project approximation of a full compiler: it
// resolves names against the types declared in the analyzed sources and
// leaves references into external libraries unrecorded. Qualified
// references whose static type cannot be determined are likewise skipped,
// so members only reachable through such references should be pinned with
// an [EntryPoints] oracle.
//
// [Load] parses a directory tree, [Parse] a prepared set of sources. The
// resulting [Project] exposes the populated graph and index for
// [fillmore-labs.com/accessguard/engine.New].
package javasrc
