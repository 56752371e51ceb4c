// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlin/measure"
	"github.com/katalvlaran/lvlin/tensor"
)

const (
	flagTrain = "train"
	flagX     = "x"
)

func newScoreCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "score",
		Short: "Score local linearity for every instance in --x",
		Long: "Reads instances from --x (one flattened instance per CSV row), optionally fits on --train, " +
			"runs the built-in model and prints one score per line.",
		Args: cobra.NoArgs,
		RunE: runScore,
	}
	c.Flags().String(flagTrain, "", "training CSV (required for knn, optional range source for gridSampling)")
	c.Flags().String(flagX, "", "instances CSV")
	_ = c.MarkFlagRequired(flagX)

	return c
}

func runScore(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool(flagVerbose)
	log := newLogger(cmd.ErrOrStderr(), verbose)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.Hook = logHook(log)

	var shape tensor.Shape
	if len(cfg.Shape) > 0 {
		shape = tensor.Shape(cfg.Shape)
	}

	xPath, _ := cmd.Flags().GetString(flagX)
	x, err := readBatch(xPath, shape)
	if err != nil {
		return err
	}

	m, err := measure.New(opts)
	if err != nil {
		return err
	}
	if trainPath, _ := cmd.Flags().GetString(flagTrain); trainPath != "" {
		train, err := readBatch(trainPath, shape)
		if err != nil {
			return err
		}
		if err = m.Fit(train); err != nil {
			return err
		}
		log.Debug("fitted", "rows", train.Len(), "shape", train.Shape().String())
	}

	p, err := buildModel(cfg.Model, x.Dim())
	if err != nil {
		return err
	}

	start := time.Now()
	scores, err := m.Score(p, x)
	if err != nil {
		return err
	}
	log.Info("scored",
		"instances", len(scores),
		"method", opts.Method.String(),
		"model_type", opts.ModelType.String(),
		"elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	for _, s := range scores {
		if _, err = fmt.Fprintf(out, "%.6g\n", s); err != nil {
			return err
		}
	}

	return nil
}

func readBatch(path string, shape tensor.Shape) (*tensor.Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := tensor.ReadCSV(f, shape)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}
