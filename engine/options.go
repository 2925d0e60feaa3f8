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

package engine

import (
	"log/slog"

	"fillmore-labs.com/accessguard/graph"
	"fillmore-labs.com/accessguard/internal/config"
)

// Option configures specific behavior of a [New] engine.
type Option interface {
	apply(e *Engine)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(e *Engine) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(e)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithEntryPoints is an [Option] registering entry point oracles.
func WithEntryPoints(oracles ...graph.EntryPointOracle) Option {
	return entryPointsOption{oracles: oracles}
}

type entryPointsOption struct{ oracles []graph.EntryPointOracle }

func (o entryPointsOption) apply(e *Engine) {
	e.entryPoints = append(e.entryPoints, o.oracles...)
}

func (o entryPointsOption) LogAttr() slog.Attr {
	return slog.Int("entry-point-oracles", len(o.oracles))
}

// WithExtensibility is an [Option] registering extensibility providers.
func WithExtensibility(providers ...graph.ExtensibilityProvider) Option {
	return extensibilityOption{providers: providers}
}

type extensibilityOption struct{ providers []graph.ExtensibilityProvider }

func (o extensibilityOption) apply(e *Engine) {
	e.extensibility = append(e.extensibility, o.providers...)
}

func (o extensibilityOption) LogAttr() slog.Attr {
	return slog.Int("extensibility-providers", len(o.providers))
}

// WithPrivateForInners is an [Option] to permit Private suggestions for
// members of nested containers.
func WithPrivateForInners(inners bool) Option { return innersOption{inners: inners} }

type innersOption struct{ inners bool }

func (o innersOption) apply(e *Engine) {
	e.rules.Set(config.PrivateForInners, o.inners)
}

func (o innersOption) LogAttr() slog.Attr {
	return slog.Bool("private-for-inners", o.inners)
}

// WithPackageForTopLevelTypes is an [Option] to escalate inexpressible
// Private suggestions on top-level types to Package instead of Public.
func WithPackageForTopLevelTypes(pkg bool) Option { return topLevelOption{pkg: pkg} }

type topLevelOption struct{ pkg bool }

func (o topLevelOption) apply(e *Engine) {
	e.rules.Set(config.PackageForTopLevelTypes, o.pkg)
}

func (o topLevelOption) LogAttr() slog.Attr {
	return slog.Bool("package-for-top-level-types", o.pkg)
}

// WithPackageForMembers is an [Option] to escalate inexpressible Private
// suggestions on container-less members to Package instead of Public.
func WithPackageForMembers(pkg bool) Option { return membersOption{pkg: pkg} }

type membersOption struct{ pkg bool }

func (o membersOption) apply(e *Engine) {
	e.rules.Set(config.PackageForMembers, o.pkg)
}

func (o membersOption) LogAttr() slog.Attr {
	return slog.Bool("package-for-members", o.pkg)
}

// WithConstants is an [Option] enabling suggestions for constant fields.
func WithConstants(constants bool) Option { return constantsOption{constants: constants} }

type constantsOption struct{ constants bool }

func (o constantsOption) apply(e *Engine) {
	e.rules.Set(config.Constants, o.constants)
}

func (o constantsOption) LogAttr() slog.Attr {
	return slog.Bool("constants", o.constants)
}

// WithWorkers is an [Option] limiting the number of concurrent
// per-declaration resolutions.
func WithWorkers(workers int) Option { return workersOption{workers: workers} }

type workersOption struct{ workers int }

func (o workersOption) apply(e *Engine) {
	if o.workers > 0 {
		e.workers = o.workers
	}
}

func (o workersOption) LogAttr() slog.Attr {
	return slog.Int("workers", o.workers)
}

// WithLogger is an [Option] routing debug output to the given logger.
func WithLogger(log *slog.Logger) Option { return loggerOption{log: log} }

type loggerOption struct{ log *slog.Logger }

func (o loggerOption) apply(e *Engine) {
	if o.log != nil {
		e.log = o.log
	}
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.log != nil)
}
