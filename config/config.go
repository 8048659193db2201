// SPDX-License-Identifier: MIT

// Package config holds the partitioner's run settings: YAML file values,
// validated with struct tags, then overridden by command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/specpart/eigen"
	"github.com/katalvlaran/specpart/kmeans"
	"github.com/katalvlaran/specpart/partition"
)

// ErrInvalidConfig wraps every decoding or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is one partitioning run.
type Config struct {
	// Parts is the number of parts p.
	Parts int `yaml:"parts" validate:"min=2"`

	// MaxMargin is the accepted imbalance in percent; nil disables the check.
	MaxMargin *float64 `yaml:"max_margin" validate:"omitempty,gte=0"`

	Seed        int64 `yaml:"seed"`
	Restarts    int   `yaml:"restarts" validate:"min=1"`
	SkipTrivial bool  `yaml:"skip_trivial_vector"`

	// Workers bounds how many graphs are partitioned at once.
	Workers int `yaml:"workers" validate:"min=1,max=256"`

	// OutputDir receives result and assignment files; "" means next to the input.
	OutputDir string `yaml:"output_dir"`

	Eigen  Eigen  `yaml:"eigen"`
	KMeans KMeans `yaml:"kmeans"`
	Log    Log    `yaml:"log"`
}

// Eigen tunes the Lanczos solver.
type Eigen struct {
	Tolerance     float64 `yaml:"tolerance" validate:"gt=0,lt=1"`
	MaxIterations int     `yaml:"max_iterations" validate:"min=1"`
	NCV           int     `yaml:"ncv" validate:"min=0"`
}

// KMeans tunes the clusterer.
type KMeans struct {
	MaxRounds int     `yaml:"max_rounds" validate:"min=1"`
	Epsilon   float64 `yaml:"epsilon" validate:"gte=0"`
}

// Log selects the zap preset and level.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Parts:    2,
		Restarts: 1,
		Workers:  1,
		Eigen: Eigen{
			Tolerance:     eigen.DefaultTolerance,
			MaxIterations: eigen.DefaultMaxIterations,
		},
		KMeans: KMeans{
			MaxRounds: kmeans.DefaultMaxRounds,
			Epsilon:   kmeans.DefaultEpsilon,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults. An empty path yields
// the validated defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every tagged field and reports all failures at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// fieldMessage renders one validator failure as "<Field> must ...".
func fieldMessage(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lt":
		return fmt.Sprintf("%s must be below %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// PartitionOptions translates c into partition options. The logger is
// attached by the caller.
func (c *Config) PartitionOptions() []partition.Option {
	eopts := []eigen.Option{
		eigen.WithTolerance(c.Eigen.Tolerance),
		eigen.WithMaxIterations(c.Eigen.MaxIterations),
	}
	if c.Eigen.NCV > 0 {
		eopts = append(eopts, eigen.WithNCV(c.Eigen.NCV))
	}

	opts := []partition.Option{
		partition.WithSeed(c.Seed),
		partition.WithRestarts(c.Restarts),
		partition.WithEigenOptions(eopts...),
		partition.WithKMeansOptions(
			kmeans.WithMaxRounds(c.KMeans.MaxRounds),
			kmeans.WithEpsilon(c.KMeans.Epsilon),
		),
	}
	if c.MaxMargin != nil {
		opts = append(opts, partition.WithMaxMargin(*c.MaxMargin))
	}
	if c.SkipTrivial {
		opts = append(opts, partition.WithoutTrivialVector())
	}

	return opts
}

// Logger builds the zap logger selected by c.Log.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
