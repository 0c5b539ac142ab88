package common

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/dtnitsch/bias-bars/models"
	"github.com/dtnitsch/bias-bars/pkg/ingest"
	"github.com/dtnitsch/bias-bars/pkg/logging"
	"github.com/dtnitsch/bias-bars/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const runtimeKey = "runtime"

// Runtime is the per-invocation state shared by every command.
type Runtime struct {
	Config   models.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
}

// Setup loads the config, applies flag overrides, and builds the logger and
// metrics registry. It is the app's Before hook.
func Setup(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"), c.IsSet("config"))
	if err != nil {
		return err
	}

	if c.IsSet("log-level") {
		cfg.Logging.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Logging.Format = c.String("log-format")
	}
	if c.IsSet("metrics-file") {
		cfg.MetricsFile = c.String("metrics-file")
	}
	if c.IsSet("fold-case") {
		cfg.Ingest.FoldCase = c.Bool("fold-case")
	}
	if c.IsSet("skip-stopwords") {
		cfg.Ingest.SkipStopwords = c.Bool("skip-stopwords")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	rt := &Runtime{
		Config:   cfg,
		Logger:   logging.New(cfg.Logging.Level, cfg.Logging.Format, c.Bool("quiet"), c.App.ErrWriter),
		Registry: registry,
		Metrics:  metrics.New(registry),
	}

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata[runtimeKey] = rt
	return nil
}

// Finish writes the metrics textfile if one was requested. It is the app's
// After hook.
func Finish(c *cli.Context) error {
	rt := FromContext(c)
	if rt == nil || rt.Config.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(rt.Config.MetricsFile, rt.Registry); err != nil {
		return err
	}
	rt.Logger.Debug("Wrote metrics textfile", "path", rt.Config.MetricsFile)
	return nil
}

// FromContext returns the Runtime stored by Setup.
func FromContext(c *cli.Context) *Runtime {
	rt, _ := c.App.Metadata[runtimeKey].(*Runtime)
	return rt
}

// ReviewOptions derives ingestion options from the runtime config.
func (rt *Runtime) ReviewOptions() ingest.ReviewOptions {
	return ingest.ReviewOptions{
		FoldCase:      rt.Config.Ingest.FoldCase,
		SkipStopwords: rt.Config.Ingest.SkipStopwords,
		Logger:        rt.Logger,
		Metrics:       rt.Metrics,
	}
}

func (rt *Runtime) LocationOptions() ingest.LocationOptions {
	return ingest.LocationOptions{
		Logger:  rt.Logger,
		Metrics: rt.Metrics,
	}
}

// InputFiles returns args, or fallback when no files were given.
func InputFiles(args []string, fallback string) []string {
	if len(args) == 0 {
		return []string{fallback}
	}
	return args
}

// WriteOutput encodes v as "yaml" or "json".
func WriteOutput(w io.Writer, format string, v interface{}) error {
	switch format {
	case "", "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return enc.Close()
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown output format %q (use yaml or json)", format)
	}
}
