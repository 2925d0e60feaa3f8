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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/accessguard/access"
	"fillmore-labs.com/accessguard/engine"
)

// Config is the YAML configuration file. All fields are optional.
type Config struct {
	Rules struct {
		PrivateForInners        bool  `yaml:"privateForInners"`
		PackageForTopLevelTypes *bool `yaml:"packageForTopLevelTypes"`
		PackageForMembers       *bool `yaml:"packageForMembers"`
		Constants               bool  `yaml:"constants"`
	} `yaml:"rules"`

	EntryPoints struct {
		// Fixed lists annotations pinning a declaration at its level.
		Fixed []string `yaml:"fixed"`

		// Floors maps annotations to the minimal level they impose.
		Floors map[string]string `yaml:"floors"`
	} `yaml:"entryPoints"`

	// Extensible lists annotations marking runtime-subclassed types.
	Extensible []string `yaml:"extensible"`

	Workers int `yaml:"workers"`
}

// loadConfig reads a configuration file. A missing file at the default
// location yields the zero configuration.
func loadConfig(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Levels parses the entry point floor annotations.
func (c *Config) Levels() (map[string]access.Level, error) {
	floors := make(map[string]access.Level, len(c.EntryPoints.Floors))

	for name, text := range c.EntryPoints.Floors {
		var l access.Level
		if err := l.UnmarshalText([]byte(text)); err != nil {
			return nil, fmt.Errorf("floor for %s: %w", name, err)
		}

		floors[name] = l
	}

	return floors, nil
}

// EngineOptions translates the configured rules into engine options.
func (c *Config) EngineOptions() []engine.Option {
	opts := []engine.Option{
		engine.WithPrivateForInners(c.Rules.PrivateForInners),
		engine.WithConstants(c.Rules.Constants),
	}

	if c.Rules.PackageForTopLevelTypes != nil {
		opts = append(opts, engine.WithPackageForTopLevelTypes(*c.Rules.PackageForTopLevelTypes))
	}

	if c.Rules.PackageForMembers != nil {
		opts = append(opts, engine.WithPackageForMembers(*c.Rules.PackageForMembers))
	}

	if c.Workers > 0 {
		opts = append(opts, engine.WithWorkers(c.Workers))
	}

	return opts
}
