// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlin/featrange"
	"github.com/katalvlaran/lvlin/measure"
	"github.com/katalvlaran/lvlin/sampler"
	"github.com/katalvlaran/lvlin/scorer"
)

// Model kinds understood by buildModel.
const (
	modelAffine   = "affine"
	modelLogistic = "logistic"
)

// ErrUnknownModel is returned for a model kind other than affine or logistic.
var ErrUnknownModel = errors.New("lvlin: unknown model kind")

// Config is the file and flag view of measure.Options plus the built-in model.
type Config struct {
	Method    sampler.Method   `yaml:"method"`
	ModelType scorer.ModelType `yaml:"model_type"`
	Epsilon   float64          `yaml:"epsilon"`
	Samples   int              `yaml:"nb_samples"`
	Res       int              `yaml:"res"`
	Alphas    [2]float64       `yaml:"alphas,flow"`
	Seed      int64            `yaml:"seed"`
	Range     [][2]float64     `yaml:"features_range,omitempty"`
	Shape     []int            `yaml:"input_shape,omitempty,flow"`
	Model     ModelConfig      `yaml:"model"`
}

// ModelConfig selects a built-in predictor. Empty weights mean a default
// model sized to the input: an all-ones row for affine, and ± all-ones rows
// for logistic.
type ModelConfig struct {
	Kind    string      `yaml:"kind"`
	Weights [][]float64 `yaml:"weights,omitempty"`
	Bias    []float64   `yaml:"bias,omitempty"`
}

// DefaultConfig mirrors measure.DefaultOptions with a logistic model.
func DefaultConfig() Config {
	o := measure.DefaultOptions()

	return Config{
		Method:    o.Method,
		ModelType: o.ModelType,
		Epsilon:   o.Epsilon,
		Samples:   o.Samples,
		Res:       o.Res,
		Alphas:    o.Alphas,
		Seed:      o.Seed,
		Model:     ModelConfig{Kind: modelLogistic},
	}
}

// LoadConfig reads path over DefaultConfig. Keys absent from the file keep
// their defaults; unknown keys are rejected. An empty path or file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Options converts the configuration into measure.Options.
func (c Config) Options() (measure.Options, error) {
	o := measure.Options{
		Method:    c.Method,
		ModelType: c.ModelType,
		Epsilon:   c.Epsilon,
		Samples:   c.Samples,
		Res:       c.Res,
		Alphas:    scorer.Alphas(c.Alphas),
		Seed:      c.Seed,
	}
	if len(c.Range) > 0 {
		fr, err := featrange.New(c.Range)
		if err != nil {
			return o, err
		}
		o.Range = fr
	}

	return o, o.Validate()
}

// resolveConfig loads --config and applies every flag the user set explicitly.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	fs := cmd.Flags()
	path, _ := fs.GetString(flagConfig)
	cfg, err := LoadConfig(path)
	if err != nil {
		return cfg, err
	}

	if fs.Changed(flagMethod) {
		s, _ := fs.GetString(flagMethod)
		if cfg.Method, err = sampler.ParseMethod(s); err != nil {
			return cfg, err
		}
	}
	if fs.Changed(flagModelType) {
		s, _ := fs.GetString(flagModelType)
		if cfg.ModelType, err = scorer.ParseModelType(s); err != nil {
			return cfg, err
		}
	}
	if fs.Changed(flagEpsilon) {
		cfg.Epsilon, _ = fs.GetFloat64(flagEpsilon)
	}
	if fs.Changed(flagSamples) {
		cfg.Samples, _ = fs.GetInt(flagSamples)
	}
	if fs.Changed(flagRes) {
		cfg.Res, _ = fs.GetInt(flagRes)
	}
	if fs.Changed(flagAlpha0) {
		cfg.Alphas[0], _ = fs.GetFloat64(flagAlpha0)
	}
	if fs.Changed(flagAlpha1) {
		cfg.Alphas[1], _ = fs.GetFloat64(flagAlpha1)
	}
	if fs.Changed(flagSeed) {
		cfg.Seed, _ = fs.GetInt64(flagSeed)
	}
	if fs.Changed(flagShape) {
		cfg.Shape, _ = fs.GetIntSlice(flagShape)
	}
	if fs.Changed(flagModel) {
		cfg.Model.Kind, _ = fs.GetString(flagModel)
	}

	return cfg, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long:  "Loads --config, applies flag overrides and prints the result. Nothing is scored.",
		Args:  cobra.NoArgs,
		RunE:  runConfig,
	}
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if _, err = cfg.Options(); err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err = enc.Encode(cfg); err != nil {
		return err
	}

	return enc.Close()
}
