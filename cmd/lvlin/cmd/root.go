// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"
)

// flag names shared by every subcommand.
const (
	flagConfig    = "config"
	flagMethod    = "method"
	flagModelType = "model-type"
	flagEpsilon   = "epsilon"
	flagSamples   = "samples"
	flagRes       = "res"
	flagAlpha0    = "alpha0"
	flagAlpha1    = "alpha1"
	flagSeed      = "seed"
	flagShape     = "shape"
	flagModel     = "model"
	flagVerbose   = "verbose"
)

// NewRootCmd builds a fresh command tree. Tests use it to avoid shared flag state.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvlin",
		Short:         "lvlin: local linearity measure for black-box models",
		Long:          "Scores how far a model departs from linear behaviour in a small neighbourhood of each instance.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "YAML configuration file")
	pf.String(flagMethod, "", "neighbourhood method: knn or gridSampling")
	pf.String(flagModelType, "", "model type: classifier or regressor")
	pf.Float64(flagEpsilon, 0, "grid half-width as a fraction of each feature range")
	pf.Int(flagSamples, 0, "neighbours per instance")
	pf.Int(flagRes, 0, "grid resolution")
	pf.Float64(flagAlpha0, 0, "first superposition coefficient")
	pf.Float64(flagAlpha1, 0, "second superposition coefficient")
	pf.Int64(flagSeed, 0, "grid random seed (0 draws from the clock)")
	pf.IntSlice(flagShape, nil, "per-instance shape, e.g. 4,4 (default: one flat dimension)")
	pf.String(flagModel, "", "built-in model: affine or logistic")
	pf.BoolP(flagVerbose, "v", false, "log predict calls at debug level")

	root.AddCommand(newScoreCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
