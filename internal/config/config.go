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

// Package config holds the rule flags steering the visibility engine.
package config

// Rule represents a tunable suggestion rule.
type Rule uint8

const (
	// PrivateForInners permits Private suggestions for members of nested
	// containers. When disabled, lexically local references to such members
	// classify as Package.
	PrivateForInners Rule = 1 << iota

	// PackageForTopLevelTypes escalates an inexpressible Private suggestion
	// on a top-level type to Package instead of Public.
	PackageForTopLevelTypes

	// PackageForMembers escalates an inexpressible Private suggestion on a
	// container-less member to Package instead of Public.
	PackageForMembers

	// Constants enables suggestions for constant fields, static final
	// fields carrying an initializer.
	Constants
)

// Rules is the flag set of enabled suggestion rules.
type Rules = BitMask[Rule]

// DefaultRules returns the default rule set: package escalation on, Private
// for nested containers and constant suggestions off.
func DefaultRules() Rules {
	return NewBitMask(PackageForTopLevelTypes, PackageForMembers)
}
