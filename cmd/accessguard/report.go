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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fillmore-labs.com/accessguard/graph"
)

// finding is one reportable suggestion.
type finding struct {
	File      string `json:"file,omitempty"`
	Line      uint32 `json:"line,omitempty"`
	Column    uint32 `json:"column,omitempty"`
	Name      string `json:"name"`
	Current   string `json:"current"`
	Suggested string `json:"suggested"`
}

// render writes findings as text lines or as a JSON array.
func render(w io.Writer, findings []finding, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(findings)
	}

	for _, f := range findings {
		if f.File != "" {
			fmt.Fprintf(w, "%s:%d:%d: ", f.File, f.Line, f.Column)
		}

		fmt.Fprintf(w, "%s can be %s, is %s\n", f.Name, f.Suggested, f.Current)
	}

	return nil
}

// declName renders the container-qualified name of a declaration.
func declName(d *graph.Declaration) string {
	var parts []string
	for ; d != nil; d = d.Container {
		parts = append(parts, d.Name)
	}

	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	return strings.Join(parts, ".")
}
