package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/bias-bars/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const sampleReviews = "rating,gender,review\n5.0,M,good movie\n4.5,W,good film\n3.0,W,good\n1.5,M,bad\n"

const sampleDisease = "Evermore,1,1,1,1,1,1,1\nVanguard City,1,2,3,4,5,6,7\n"

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// run executes the app with a config path that does not exist, so defaults
// apply unless a test passes its own.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := NewApp(&out, &errOut)
	argv := append([]string{"bias-bars", "--quiet"}, args...)
	err := app.Run(argv)
	return out.String(), errOut.String(), err
}

func TestPrint(t *testing.T) {
	reviews := writeFile(t, t.TempDir(), "reviews.txt", sampleReviews)

	out, _, err := run(t, "print", reviews)
	require.NoError(t, err)
	assert.Equal(t,
		"bad M [1, 0, 0] W [0, 0, 0]\n"+
			"film M [0, 0, 0] W [0, 0, 1]\n"+
			"good M [0, 0, 1] W [0, 1, 1]\n"+
			"movie M [0, 0, 1] W [0, 0, 0]\n",
		out)
}

func TestPrintJSON(t *testing.T) {
	reviews := writeFile(t, t.TempDir(), "reviews.txt", sampleReviews)

	out, _, err := run(t, "print", "--format", "json", reviews)
	require.NoError(t, err)

	var got map[string]map[string][]float64
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []float64{0, 1, 1}, got["good"]["W"])
	assert.Equal(t, []float64{1, 0, 0}, got["bad"]["M"])
}

func TestSearch(t *testing.T) {
	reviews := writeFile(t, t.TempDir(), "reviews.txt", sampleReviews)

	out, _, err := run(t, "search", "oo", reviews)
	require.NoError(t, err)
	assert.Equal(t, "good\n", out)

	out, _, err = run(t, "search", "--ignore-case", "O", reviews)
	require.NoError(t, err)
	assert.Equal(t, "good\nmovie\n", out)

	_, _, err = run(t, "search")
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	reviews := writeFile(t, t.TempDir(), "reviews.txt", sampleReviews)

	out, _, err := run(t, "lookup", "--format", "json", "bad", reviews)
	require.NoError(t, err)

	var got struct {
		Word       string     `json:"word"`
		Normalized bool       `json:"normalized"`
		W          [3]float64 `json:"W"`
		M          [3]float64 `json:"M"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "bad", got.Word)
	assert.True(t, got.Normalized)
	assert.Equal(t, [3]float64{}, got.W)
	assert.InDelta(t, 1_000_000.0/3, got.M[0], 1e-6)
}

func TestLookupYAML(t *testing.T) {
	reviews := writeFile(t, t.TempDir(), "reviews.txt", sampleReviews)

	out, _, err := run(t, "lookup", "FILM", reviews)
	require.NoError(t, err)
	assert.Contains(t, out, "word: film\n")
	assert.Contains(t, out, "W: [0, 0, ")
}

func TestLookupErrors(t *testing.T) {
	reviews := writeFile(t, t.TempDir(), "reviews.txt", sampleReviews)

	tests := []struct {
		name string
		word string
		want string
	}{
		{"unknown", "great", "great is not contained in the word database."},
		{"empty", "", "Please enter a non-empty word."},
		{"multiple words", "good movie", "cannot search for multiple words"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "lookup", tt.word, reviews)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var exitErr cli.ExitCoder
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 1, exitErr.ExitCode())
		})
	}
}

func TestPlotText(t *testing.T) {
	reviews := writeFile(t, t.TempDir(), "reviews.txt", sampleReviews)

	out, _, err := run(t, "plot", "--bar-width", "10", "good", reviews)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "good\nLow Reviews\n"))
	assert.Contains(t, out, "High Reviews")
}

func TestPlotSVG(t *testing.T) {
	dir := t.TempDir()
	reviews := writeFile(t, dir, "reviews.txt", sampleReviews)
	svg := filepath.Join(dir, "charts", "good.svg")

	out, _, err := run(t, "plot", "--out", svg, "--width", "800", "good", reviews)
	require.NoError(t, err)
	assert.Equal(t, svg+"\n", out)

	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="600"`)
}

func TestPlotTooSmall(t *testing.T) {
	dir := t.TempDir()
	reviews := writeFile(t, dir, "reviews.txt", sampleReviews)

	_, _, err := run(t, "plot", "--out", filepath.Join(dir, "x.svg"), "--width", "50", "good", reviews)
	assert.ErrorContains(t, err, "too small")
}

func TestTop(t *testing.T) {
	reviews := writeFile(t, t.TempDir(), "reviews.txt", sampleReviews)

	out, _, err := run(t, "top", "--gender", "M", "--bucket", "high", reviews)
	require.NoError(t, err)
	assert.Equal(t, "1. good: 1\n2. movie: 1\n", out)

	_, _, err = run(t, "top", "--gender", "X", reviews)
	assert.ErrorContains(t, err, "invalid gender")

	_, _, err = run(t, "top", "--bucket", "huge", reviews)
	assert.ErrorContains(t, err, "invalid bucket")
}

func TestStats(t *testing.T) {
	reviews := writeFile(t, t.TempDir(), "reviews.txt", sampleReviews)

	out, _, err := run(t, "stats", reviews)
	require.NoError(t, err)
	assert.Equal(t,
		"50% of reviews for women in the dataset are high.\n"+
			"50% of reviews for men in the dataset are high.\n",
		out)
}

func TestDisease(t *testing.T) {
	path := writeFile(t, t.TempDir(), "disease.txt", sampleDisease)

	out, _, err := run(t, "disease", "daily", path)
	require.NoError(t, err)
	assert.Equal(t, "Evermore: [1, 0, 0, 0, 0, 0, 0]\nVanguard City: [1, 1, 1, 1, 1, 1, 1]\n", out)

	out, _, err = run(t, "disease", "load", "--format", "json", path)
	require.NoError(t, err)
	var got map[string][]int
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, got["Vanguard City"])
}

func TestMissingInput(t *testing.T) {
	_, _, err := run(t, "print", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "missing file")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	reviews := writeFile(t, dir, "reviews.txt", "rating,gender,review\n5.0,W,Great great\n")
	config := writeFile(t, dir, "bias-bars.yaml", "reviews_file: "+reviews+"\ningest:\n  fold_case: true\n")

	out, _, err := run(t, "--config", config, "print")
	require.NoError(t, err)
	assert.Equal(t, "great M [0, 0, 0] W [0, 0, 2]\n", out)

	_, _, err = run(t, "--config", filepath.Join(dir, "none.yaml"), "print", reviews)
	assert.ErrorContains(t, err, "missing file")
}

func TestMetricsFile(t *testing.T) {
	dir := t.TempDir()
	reviews := writeFile(t, dir, "reviews.txt", sampleReviews)
	prom := filepath.Join(dir, "bias-bars.prom")

	_, _, err := run(t, "--metrics-file", prom, "print", reviews)
	require.NoError(t, err)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), "biasbars_vocabulary_size 4")
	assert.Contains(t, string(data), `biasbars_records_ingested_total{kind="review"} 4`)
}

func TestLogsGoToErrWriter(t *testing.T) {
	reviews := writeFile(t, t.TempDir(), "reviews.txt", sampleReviews)

	var out, errOut bytes.Buffer
	err := NewApp(&out, &errOut).Run([]string{"bias-bars", "--log-level", "debug", "search", "oo", reviews})
	require.NoError(t, err)
	assert.Equal(t, "good\n", out.String())
	assert.Contains(t, errOut.String(), "Search complete")
}

func TestQuickstart(t *testing.T) {
	out, _, err := run(t, "quickstart")
	require.NoError(t, err)
	assert.Contains(t, out, "# bias-bars Quick Start")
}

func TestTopSkipStopwords(t *testing.T) {
	reviews := writeFile(t, t.TempDir(), "reviews.txt",
		"rating,gender,review\n1.0,W,the the the dull\n2.0,W,dull and slow\n")

	out, _, err := run(t, "--skip-stopwords", "top", "--gender", "W", "--bucket", "low", "-n", "20", reviews)
	require.NoError(t, err)
	assert.Equal(t, "1. dull: 2\n2. slow: 1\n", out)

	out, _, err = run(t, "top", "--gender", "W", "--bucket", "low", "-n", "1", reviews)
	require.NoError(t, err)
	assert.Equal(t, "1. the: 3\n", out)
}

func TestTopCompact(t *testing.T) {
	reviews := writeFile(t, t.TempDir(), "reviews.txt", sampleReviews)

	out, _, err := run(t, "top", "--compact", "--gender", "M", "-n", "5", reviews)
	require.NoError(t, err)
	assert.Equal(t, "good:1 movie:1\n", out)
}

func TestLookupUnknownWordSingleGender(t *testing.T) {
	reviews := writeFile(t, t.TempDir(), "reviews.txt", "rating,gender,review\n5.0,W,great\n")

	_, _, err := run(t, "lookup", "zzz", reviews)
	require.Error(t, err)
	assert.Equal(t, "zzz is not contained in the word database.", err.Error())

	_, _, err = run(t, "lookup", "great", reviews)
	assert.ErrorIs(t, err, models.ErrDivisionByZero)
}

func TestPlotWarnsOnOverwrite(t *testing.T) {
	dir := t.TempDir()
	reviews := writeFile(t, dir, "reviews.txt", sampleReviews)
	svg := writeFile(t, dir, "good.svg", "old")

	var out, errOut bytes.Buffer
	err := NewApp(&out, &errOut).Run([]string{"bias-bars", "plot", "--out", svg, "good", reviews})
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "Overwriting existing chart")

	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg "))
}
