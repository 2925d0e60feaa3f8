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

// Accessguard suggests the tightest access level each declaration of a
// codebase can have without breaking a reference.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfig = ".accessguard.yaml"

var (
	verbose    bool
	configPath string
	asJSON     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "accessguard",
		Short: "Suggest tighter access levels",
		Long: `Accessguard analyzes a codebase and reports every declaration whose ` +
			`access level can be tightened without breaking a reference.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default "+defaultConfig+")")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Report findings as JSON")

	rootCmd.AddCommand(createJavaCmd(), createGoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// logger builds the slog logger for one invocation.
func logger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// config loads the configured or default configuration file. Only an
// explicitly named file is required to exist.
func config() (*Config, error) {
	if configPath != "" {
		return loadConfig(configPath, true)
	}

	return loadConfig(defaultConfig, false)
}
