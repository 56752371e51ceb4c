// SPDX-License-Identifier: MIT

package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlin/cmd/lvlin/cmd"
	"github.com/katalvlaran/lvlin/sampler"
	"github.com/katalvlaran/lvlin/scorer"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func parseScores(t *testing.T, out string) []float64 {
	t.Helper()
	var scores []float64
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		v, err := strconv.ParseFloat(line, 64)
		require.NoError(t, err, line)
		scores = append(scores, v)
	}
	return scores
}

const trainCSV = `0,0
1,0
0,1
1,1
0.5,0.5
0.2,0.8
`

func TestLoadConfig_DefaultsAndOverrides(t *testing.T) {
	cfg, err := cmd.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, cmd.DefaultConfig(), cfg)

	p := writeFile(t, "cfg.yaml", "method: knn\nmodel_type: regressor\nepsilon: 0.1\nfeatures_range: [[0, 1], [0, 2]]\n")
	cfg, err = cmd.LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, sampler.KNN, cfg.Method)
	assert.Equal(t, scorer.Regressor, cfg.ModelType)
	assert.Equal(t, 0.1, cfg.Epsilon)
	assert.Equal(t, 10, cfg.Samples, "absent keys keep defaults")
	assert.Equal(t, [][2]float64{{0, 1}, {0, 2}}, cfg.Range)

	opts, err := cfg.Options()
	require.NoError(t, err)
	require.NotNil(t, opts.Range)
	assert.Equal(t, 2, opts.Range.Dim())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := cmd.LoadConfig(writeFile(t, "bad.yaml", "epsilonn: 0.1\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = cmd.LoadConfig(writeFile(t, "bad.yaml", "method: lime\n"))
	assert.ErrorIs(t, err, sampler.ErrUnknownMethod)

	cfg, err := cmd.LoadConfig(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, cmd.DefaultConfig(), cfg)

	_, err = cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	cfg = cmd.DefaultConfig()
	cfg.Samples = 0
	_, err = cfg.Options()
	assert.ErrorIs(t, err, sampler.ErrBadSamples)
}

func TestConfigCmd_FlagsOverrideFile(t *testing.T) {
	p := writeFile(t, "cfg.yaml", "epsilon: 0.2\nnb_samples: 4\n")
	out, err := run(t, "config", "--config", p, "--samples", "3", "--method", "knn")
	require.NoError(t, err)
	assert.Contains(t, out, "method: knn")
	assert.Contains(t, out, "model_type: classifier")
	assert.Contains(t, out, "epsilon: 0.2")
	assert.Contains(t, out, "nb_samples: 3")
}

func TestConfigCmd_RejectsBadFlag(t *testing.T) {
	_, err := run(t, "config", "--model-type", "ranker")
	assert.ErrorIs(t, err, scorer.ErrUnknownModelType)
}

func TestScoreCmd_AffineKNNIsLinear(t *testing.T) {
	train := writeFile(t, "train.csv", trainCSV)
	x := writeFile(t, "x.csv", "0.3,0.3\n0.9,0.1\n")

	out, err := run(t, "score", "--train", train, "--x", x,
		"--method", "knn", "--model-type", "regressor", "--model", "affine", "--samples", "3")
	require.NoError(t, err)

	scores := parseScores(t, out)
	require.Len(t, scores, 2)
	for _, s := range scores {
		assert.InDelta(t, 0, s, 1e-9)
	}
}

func TestScoreCmd_LogisticGridFromConfigRange(t *testing.T) {
	p := writeFile(t, "cfg.yaml", "seed: 7\nfeatures_range: [[0, 1], [0, 1]]\nmodel:\n  kind: logistic\n  weights: [[4, -4], [-4, 4]]\n")
	x := writeFile(t, "x.csv", "0.3,0.3\n0.9,0.1\n0.5,0.5\n")

	out, err := run(t, "score", "--config", p, "--x", x, "-v")
	require.NoError(t, err)

	scores := parseScores(t, out)
	require.Len(t, scores, 3)
	for _, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0)
	}
}

func TestScoreCmd_Errors(t *testing.T) {
	x := writeFile(t, "x.csv", "0.3,0.3\n")

	_, err := run(t, "score")
	assert.Error(t, err, "--x is required")

	_, err = run(t, "score", "--x", x, "--model", "forest", "--epsilon", "0.1", "--config",
		writeFile(t, "cfg.yaml", "features_range: [[0, 1], [0, 1]]\n"))
	assert.ErrorIs(t, err, cmd.ErrUnknownModel)

	_, err = run(t, "score", "--x", x, "--method", "knn")
	assert.Error(t, err, "knn needs --train")
}
