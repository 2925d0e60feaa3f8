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

package access

import (
	"fmt"
	"strings"
)

// Level is an access level, totally ordered from narrowest to broadest.
type Level uint8

const (
	// Private restricts access to the declaring container.
	Private Level = iota

	// Package restricts access to the declaring package.
	Package

	// Protected extends package access to subtypes of the declaring container.
	Protected

	// Public places no restriction on access.
	Public
)

// Max returns the broader of the two levels, the join of the total order.
func Max(a, b Level) Level {
	return max(a, b)
}

// String returns the conventional modifier spelling of the level.
func (l Level) String() string {
	switch l {
	case Private:
		return "private"

	case Package:
		return "package-private"

	case Protected:
		return "protected"

	case Public:
		return "public"

	default:
		return fmt.Sprintf("access.Level(%d)", uint8(l))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	switch l {
	case Private:
		return []byte("private"), nil

	case Package:
		return []byte("package"), nil

	case Protected:
		return []byte("protected"), nil

	case Public:
		return []byte("public"), nil

	default:
		return nil, fmt.Errorf("unknown access level %d", uint8(l))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Level) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "private":
		*l = Private

	case "package", "package-private", "default":
		*l = Package

	case "protected":
		*l = Protected

	case "public":
		*l = Public

	default:
		return fmt.Errorf("unknown access level %q", string(text))
	}

	return nil
}
