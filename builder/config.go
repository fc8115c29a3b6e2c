package builder

import (
	"math/rand"

	"github.com/katalvlaran/constellation/core"
)

// builderConfig aggregates every knob constructors read. It is passed by
// value.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand // nil means no randomness
	radius   float64
	spacing  float64
	category core.Category

	leftPrefix  string
	rightPrefix string
}

const (
	defaultRadius      = 10.0
	defaultSpacing     = 1.0
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts over the defaults, last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		radius:      defaultRadius,
		spacing:     defaultSpacing,
		category:    core.Concept,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
