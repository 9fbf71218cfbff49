// SPDX-License-Identifier: MIT
// Package: roadmap/builder
//
// config.go - builderConfig and its functional options.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig is the immutable, resolved configuration handed to constructors.
type builderConfig struct {
	idFn      func(int) string // node codes for index-based constructors
	rng       *rand.Rand       // nil unless WithSeed is given
	weightFn  WeightFn         // link weights
	centralFn func(string) bool
}

// BuilderOption mutates a builderConfig during resolution.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      decimalID,
		weightFn:  DefaultWeightFn,
		centralFn: func(string) bool { return false },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a deterministic RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the link weight generator. nil keeps the default.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithIDScheme sets the code scheme for Ring and Path. nil keeps decimal codes.
func WithIDScheme(fn func(int) string) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithCentral marks every node whose code satisfies fn as central.
func WithCentral(fn func(code string) bool) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.centralFn = fn
		}
	}
}

// WithCentralCodes marks the listed codes as central.
func WithCentralCodes(codes ...string) BuilderOption {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}

	return WithCentral(func(code string) bool { return set[code] })
}

func decimalID(i int) string {
	return strconv.Itoa(i)
}
