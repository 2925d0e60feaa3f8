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

package access_test

import (
	"testing"

	. "fillmore-labs.com/accessguard/access"
)

func TestOrder(t *testing.T) {
	t.Parallel()

	levels := []Level{Private, Package, Protected, Public}

	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Errorf("expected %v < %v", levels[i-1], levels[i])
		}
	}
}

func TestMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Level
		want Level
	}{
		{name: "identity", a: Package, b: Package, want: Package},
		{name: "broader_wins", a: Private, b: Protected, want: Protected},
		{name: "commutative", a: Public, b: Package, want: Public},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Max(tt.a, tt.b); got != tt.want {
				t.Errorf("Max(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}

			if got := Max(tt.b, tt.a); got != tt.want {
				t.Errorf("Max(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestUnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		want    Level
		wantErr bool
	}{
		{text: "private", want: Private},
		{text: "Package", want: Package},
		{text: "default", want: Package},
		{text: "protected", want: Protected},
		{text: "public", want: Public},
		{text: "friend", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var got Level

			err := got.UnmarshalText([]byte(tt.text))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText(%q) error = %v", tt.text, err)
			}

			if !tt.wantErr && got != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
