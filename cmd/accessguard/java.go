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
	"github.com/spf13/cobra"

	"fillmore-labs.com/accessguard/engine"
	"fillmore-labs.com/accessguard/javasrc"
)

func createJavaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "java [path]",
		Short: "Analyze a Java source tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			cfg, err := config()
			if err != nil {
				return err
			}

			floors, err := cfg.Levels()
			if err != nil {
				return err
			}

			log := logger()

			project, err := javasrc.Load(cmd.Context(), root)
			if err != nil {
				return err
			}

			opts := append(cfg.EngineOptions(),
				engine.WithEntryPoints(javasrc.NewEntryPoints(project, cfg.EntryPoints.Fixed, floors)),
				engine.WithExtensibility(javasrc.NewExtensibility(project, cfg.Extensible)),
				engine.WithLogger(log),
			)

			result, err := engine.New(project.Graph, project.Index, opts...).Run(cmd.Context())
			if err != nil {
				return err
			}

			var findings []finding
			for _, s := range result.Suggestions() {
				f := finding{
					Name:      declName(s.Decl),
					Current:   s.Current.String(),
					Suggested: s.Suggested.String(),
				}

				if pos, ok := project.PositionOf(s.Decl); ok {
					f.File, f.Line, f.Column = pos.File, pos.Line, pos.Column
				}

				findings = append(findings, f)
			}

			return render(cmd.OutOrStdout(), findings, asJSON)
		},
	}
}
