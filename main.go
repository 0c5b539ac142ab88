package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dtnitsch/bias-bars/internal/common"
	"github.com/dtnitsch/bias-bars/internal/disease"
	"github.com/dtnitsch/bias-bars/internal/reviews"
	"github.com/dtnitsch/bias-bars/models"
	"github.com/dtnitsch/bias-bars/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code := 1
		if exitErr, ok := err.(cli.ExitCoder); ok {
			code = exitErr.ExitCode()
		}
		os.Exit(code)
	}
}

// NewApp builds the CLI. Output goes to w, logs and errors to errW.
func NewApp(w, errW io.Writer) *cli.App {
	formatFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:  "format",
			Usage: "output format: yaml or json",
			Value: "yaml",
		}
	}

	return &cli.App{
		Name:      "bias-bars",
		Usage:     "Word frequencies in professor reviews by gender and rating, plus daily disease cases",
		Writer:    w,
		ErrWriter: errW,
		// main owns reporting and the exit code.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML config file",
				Value:   models.DefaultConfigFile,
				EnvVars: []string{"BIASBARS_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"BIASBARS_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "text or json",
				EnvVars: []string{"BIASBARS_LOG_FORMAT"},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
				EnvVars: []string{"BIASBARS_QUIET"},
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "write ingestion metrics to this Prometheus textfile",
				EnvVars: []string{"BIASBARS_METRICS_FILE"},
			},
			&cli.BoolFlag{
				Name:    "fold-case",
				Usage:   "lowercase review words before counting them",
				EnvVars: []string{"BIASBARS_FOLD_CASE"},
			},
			&cli.BoolFlag{
				Name:    "skip-stopwords",
				Usage:   "ignore common filler words when counting",
				EnvVars: []string{"BIASBARS_SKIP_STOPWORDS"},
			},
		},
		Before: common.Setup,
		After:  common.Finish,
		Commands: []*cli.Command{
			{
				Name:      "print",
				Usage:     "Print every word with its raw counts per gender and rating bucket",
				ArgsUsage: "[FILE...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Usage: "yaml or json instead of the plain listing"},
				},
				Action: reviews.PrintAction,
			},
			{
				Name:      "search",
				Usage:     "Print every word containing TARGET",
				ArgsUsage: "TARGET [FILE...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "ignore-case", Aliases: []string{"i"}, Usage: "compare lowercased"},
				},
				Action: reviews.SearchAction,
			},
			{
				Name:      "lookup",
				Usage:     "Print the per-million frequencies of WORD",
				ArgsUsage: "WORD [FILE...]",
				Flags:     []cli.Flag{formatFlag()},
				Action:    reviews.LookupAction,
			},
			{
				Name:      "plot",
				Usage:     "Draw the frequency bars of WORD",
				ArgsUsage: "WORD [FILE...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write an SVG chart to this path"},
					&cli.IntFlag{Name: "width", Usage: "SVG width in pixels"},
					&cli.IntFlag{Name: "height", Usage: "SVG height in pixels"},
					&cli.IntFlag{Name: "bar-width", Value: 50, Usage: "terminal bar length for the largest value"},
				},
				Action: reviews.PlotAction,
			},
			{
				Name:      "top",
				Usage:     "List the most frequent words for one gender and rating bucket",
				ArgsUsage: "[FILE...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "gender", Value: "W", Usage: "W or M"},
					&cli.StringFlag{Name: "bucket", Value: "high", Usage: "low, medium or high"},
					&cli.IntFlag{Name: "n", Value: 10, Usage: "number of words"},
					&cli.BoolFlag{Name: "frequencies", Usage: "rank per-million frequencies instead of raw counts"},
					&cli.StringFlag{Name: "format", Usage: "yaml or json instead of the numbered list"},
					&cli.BoolFlag{Name: "compact", Usage: "print word:count pairs on one line"},
				},
				Action: reviews.TopAction,
			},
			{
				Name:      "stats",
				Usage:     "Report the share of high reviews for each gender",
				ArgsUsage: "[FILE]",
				Action:    reviews.StatsAction,
			},
			{
				Name:  "disease",
				Usage: "Cumulative and daily infection counts per location",
				Subcommands: []*cli.Command{
					{
						Name:      "load",
						Usage:     "Print the cumulative series per location",
						ArgsUsage: "[FILE]",
						Flags:     []cli.Flag{formatFlag()},
						Action:    disease.LoadAction,
					},
					{
						Name:      "daily",
						Usage:     "Print the new cases per day per location",
						ArgsUsage: "[FILE]",
						Flags:     []cli.Flag{formatFlag()},
						Action:    disease.DailyAction,
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print a YAML cheat sheet",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return err
				},
			},
		},
	}
}
