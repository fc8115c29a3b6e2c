// Package config loads the TOML settings of the constellation CLI.
//
// A file only needs the keys it changes:
//
//	strategy    = "prim"
//	root        = "ts"
//	dataset     = "skills.yaml"
//	single_tree = false
//	log_level   = "info"
//
//	[delays.prim]
//	consider = "250ms"
//	accept   = "200ms"
//	linger   = "1s"
//
// A [delays.<strategy>] table replaces the whole pacing of that strategy;
// omitted durations are zero.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/constellation/animation"
	"github.com/katalvlaran/constellation/prim_kruskal"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Delays is the on-disk form of animation.Delays.
type Delays struct {
	Consider time.Duration `toml:"consider"`
	Accept   time.Duration `toml:"accept"`
	Reject   time.Duration `toml:"reject"`
	Visit    time.Duration `toml:"visit"`
	Linger   time.Duration `toml:"linger"`
}

// Config holds every setting the CLI reads from file.
type Config struct {
	// Strategy is the default algorithm: "prim" or "kruskal".
	Strategy string `toml:"strategy"`
	// Root seeds Prim; "" picks the built-in default or the most-connected node.
	Root string `toml:"root"`
	// Dataset is a YAML skills file; "" uses the built-in constellation.
	Dataset string `toml:"dataset"`
	// SingleTree stops Prim after the root's component.
	SingleTree bool `toml:"single_tree"`
	// LogLevel is a zap level name.
	LogLevel string `toml:"log_level"`
	// Delays overrides pacing per strategy.
	Delays map[string]Delays `toml:"delays"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Strategy: string(prim_kruskal.MethodKruskal),
		LogLevel: "info",
		Delays: map[string]Delays{
			string(prim_kruskal.MethodPrim):    fromAnimation(animation.DefaultDelays(prim_kruskal.MethodPrim)),
			string(prim_kruskal.MethodKruskal): fromAnimation(animation.DefaultDelays(prim_kruskal.MethodKruskal)),
		},
	}
}

// Load reads path over Default. An empty path returns Default unchanged.
// Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if _, err := prim_kruskal.ParseMethod(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy: %v", ErrInvalid, err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	for name, d := range c.Delays {
		if _, err := prim_kruskal.ParseMethod(name); err != nil {
			return fmt.Errorf("%w: delays.%s: %v", ErrInvalid, name, err)
		}
		for _, v := range []time.Duration{d.Consider, d.Accept, d.Reject, d.Visit, d.Linger} {
			if v < 0 {
				return fmt.Errorf("%w: delays.%s: negative duration %s", ErrInvalid, name, v)
			}
		}
	}

	return nil
}

// Method returns the parsed Strategy.
func (c Config) Method() (prim_kruskal.Method, error) {
	return prim_kruskal.ParseMethod(c.Strategy)
}

// Level returns the parsed LogLevel, defaulting to info.
func (c Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}

	return lvl
}

// DriverOptions translates the pacing and Prim settings into animation options.
func (c Config) DriverOptions() []animation.Option {
	opts := make([]animation.Option, 0, len(c.Delays)+2)
	for name, d := range c.Delays {
		m, err := prim_kruskal.ParseMethod(name)
		if err != nil {
			continue
		}
		opts = append(opts, animation.WithDelays(m, d.toAnimation()))
	}
	if c.Root != "" {
		opts = append(opts, animation.WithRoot(c.Root))
	}
	if c.SingleTree {
		opts = append(opts, animation.WithSingleTree())
	}

	return opts
}

func fromAnimation(d animation.Delays) Delays {
	return Delays{Consider: d.Consider, Accept: d.Accept, Reject: d.Reject, Visit: d.Visit, Linger: d.Linger}
}

func (d Delays) toAnimation() animation.Delays {
	return animation.Delays{Consider: d.Consider, Accept: d.Accept, Reject: d.Reject, Visit: d.Visit, Linger: d.Linger}
}
