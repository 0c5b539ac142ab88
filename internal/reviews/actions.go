package reviews

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/bias-bars/internal/common"
	"github.com/dtnitsch/bias-bars/models"
	"github.com/dtnitsch/bias-bars/pkg/analytics"
	"github.com/dtnitsch/bias-bars/pkg/chart"
	"github.com/dtnitsch/bias-bars/pkg/ingest"
	"github.com/dtnitsch/bias-bars/pkg/mapreduce"
	"github.com/dtnitsch/bias-bars/pkg/storage"
	"github.com/urfave/cli/v2"
)

// LookupResult is the rendering query answer for one word.
type LookupResult struct {
	Word               string `yaml:"word" json:"word"`
	Normalized         bool   `yaml:"normalized" json:"normalized"`
	analytics.WordStat `yaml:",inline"`
}

func loadWordData(rt *common.Runtime, files []string) (*analytics.WordData, error) {
	files = common.InputFiles(files, rt.Config.ReviewsFile)
	return mapreduce.MapReduce(files, rt.ReviewOptions())
}

// validateWord applies the same checks as the interactive plot field.
func validateWord(text string) (string, error) {
	if text == "" {
		return "", cli.Exit("Please enter a non-empty word.", 1)
	}
	if strings.Contains(text, " ") {
		return "", cli.Exit("The program cannot search for multiple words at a time. Please enter a single word with no spaces.", 1)
	}
	return strings.ToLower(text), nil
}

// normalizedStat loads the data, checks word is present, then normalizes.
func normalizedStat(rt *common.Runtime, word string, files []string) (analytics.WordStat, error) {
	wd, err := loadWordData(rt, files)
	if err != nil {
		return analytics.WordStat{}, err
	}
	if _, ok := wd.Lookup(word); !ok {
		rt.Logger.Debug("Word not found", "word", word, "vocabulary", wd.Len())
		return analytics.WordStat{}, fmt.Errorf("%w: %s", models.ErrUnknownWord, word)
	}
	if err := wd.Normalize(); err != nil {
		return analytics.WordStat{}, fmt.Errorf("failed to compute frequencies: %w", err)
	}
	stat, _ := wd.Lookup(word)
	return stat, nil
}

func unknownWordExit(err error, word string) error {
	if errors.Is(err, models.ErrUnknownWord) {
		return cli.Exit(fmt.Sprintf("%s is not contained in the word database.", word), 1)
	}
	return err
}

// PrintAction prints every word alphabetically with its raw count triples.
func PrintAction(c *cli.Context) error {
	rt := common.FromContext(c)
	wd, err := loadWordData(rt, c.Args().Slice())
	if err != nil {
		return err
	}
	if format := c.String("format"); format != "" {
		return common.WriteOutput(c.App.Writer, format, wd.Snapshot())
	}
	PrintWords(c.App.Writer, wd)
	return nil
}

// PrintWords writes one line per word: the word, then each gender in
// alphabetical order followed by its triple.
func PrintWords(w io.Writer, wd *analytics.WordData) {
	for _, word := range wd.Words() {
		stat, _ := wd.Lookup(word)
		fmt.Fprintf(w, "%s %s %s %s %s\n",
			word,
			models.GenderMen, formatTriple(stat.M),
			models.GenderWomen, formatTriple(stat.W))
	}
}

func formatTriple(t analytics.Triple) string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = mapreduce.FormatCount(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// SearchAction prints each word containing the target, one per line.
func SearchAction(c *cli.Context) error {
	rt := common.FromContext(c)
	target := c.Args().First()
	if target == "" {
		return cli.Exit("search target is required", 1)
	}

	wd, err := loadWordData(rt, c.Args().Tail())
	if err != nil {
		return err
	}

	var matches []string
	if c.Bool("ignore-case") {
		matches = wd.SearchFold(target)
	} else {
		matches = wd.Search(target)
	}
	rt.Logger.Info("Search complete", "target", target, "matches", len(matches))

	for _, word := range matches {
		fmt.Fprintln(c.App.Writer, word)
	}
	return nil
}

// LookupAction prints the per-million frequency triples for one word.
func LookupAction(c *cli.Context) error {
	rt := common.FromContext(c)
	word, err := validateWord(strings.TrimSpace(c.Args().First()))
	if err != nil {
		return err
	}

	stat, err := normalizedStat(rt, word, c.Args().Tail())
	if err != nil {
		return unknownWordExit(err, word)
	}

	return common.WriteOutput(c.App.Writer, c.String("format"), LookupResult{
		Word:       word,
		Normalized: true,
		WordStat:   stat,
	})
}

// PlotAction draws the frequency bars for one word, as an SVG file when
// --out is given and as terminal bars otherwise.
func PlotAction(c *cli.Context) error {
	rt := common.FromContext(c)
	word, err := validateWord(strings.TrimSpace(c.Args().First()))
	if err != nil {
		return err
	}

	stat, err := normalizedStat(rt, word, c.Args().Tail())
	if err != nil {
		return unknownWordExit(err, word)
	}

	out := c.String("out")
	if out == "" {
		return chart.RenderText(c.App.Writer, word, stat, c.Int("bar-width"))
	}

	layout := chart.Layout{Width: rt.Config.Chart.Width, Height: rt.Config.Chart.Height}
	if c.IsSet("width") {
		layout.Width = c.Int("width")
	}
	if c.IsSet("height") {
		layout.Height = c.Int("height")
	}
	if layout.Width <= chart.LeftMargin+chart.RightMargin || layout.Height <= 2*chart.VerticalMargin {
		return fmt.Errorf("chart size %dx%d is too small", layout.Width, layout.Height)
	}

	plot, err := layout.Plot(word, stat)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := chart.RenderSVG(&buf, plot); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	s := &storage.Storage{}
	if s.HasFile(out) {
		rt.Logger.Warn("Overwriting existing chart", "path", out)
	}
	if err := s.SaveFile(out, buf.Bytes()); err != nil {
		return err
	}

	rt.Logger.Info("Wrote chart", "word", word, "path", out, "bytes", buf.Len())
	fmt.Fprintln(c.App.Writer, out)
	return nil
}

// TopAction lists the words with the largest cell for one gender and bucket.
func TopAction(c *cli.Context) error {
	rt := common.FromContext(c)

	gender, err := models.ParseGender(c.String("gender"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid gender %q (use W or M)", c.String("gender")), 1)
	}
	bucket, ok := analytics.ParseBucket(strings.ToLower(c.String("bucket")))
	if !ok {
		return cli.Exit(fmt.Sprintf("invalid bucket %q (use low, medium or high)", c.String("bucket")), 1)
	}

	wd, err := loadWordData(rt, c.Args().Slice())
	if err != nil {
		return err
	}
	if c.Bool("frequencies") {
		if err := wd.Normalize(); err != nil {
			return fmt.Errorf("failed to compute frequencies: %w", err)
		}
	}

	top := mapreduce.TopWords(wd, gender, bucket, c.Int("n"))
	if format := c.String("format"); format != "" {
		return common.WriteOutput(c.App.Writer, format, top)
	}
	if c.Bool("compact") {
		fmt.Fprintln(c.App.Writer, strings.Join(mapreduce.FormatTopWords(top), " "))
		return nil
	}
	mapreduce.PrintTopWords(c.App.Writer, top)
	return nil
}

// StatsAction reports the share of high reviews per gender.
func StatsAction(c *cli.Context) error {
	rt := common.FromContext(c)
	path := c.Args().First()
	if path == "" {
		path = rt.Config.ReviewsFile
	}

	stats, err := ingest.ReviewStatsFile(path, rt.ReviewOptions())
	if err != nil {
		return err
	}

	women, err := stats.HighPercent(models.GenderWomen)
	if err != nil {
		return err
	}
	men, err := stats.HighPercent(models.GenderMen)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%d%% of reviews for women in the dataset are high.\n", women)
	fmt.Fprintf(c.App.Writer, "%d%% of reviews for men in the dataset are high.\n", men)
	return nil
}
