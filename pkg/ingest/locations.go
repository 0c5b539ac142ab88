package ingest

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dtnitsch/bias-bars/models"
	"github.com/dtnitsch/bias-bars/pkg/disease"
	"github.com/dtnitsch/bias-bars/pkg/logging"
	"github.com/dtnitsch/bias-bars/pkg/metrics"
	"github.com/dtnitsch/bias-bars/pkg/parser"
	"github.com/dtnitsch/bias-bars/pkg/storage"
)

type LocationOptions struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Locations reads one cumulative series per line. There is no header.
// When a location appears more than once the last line wins.
func Locations(r io.Reader, opts LocationOptions) (disease.Data, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	m := opts.Metrics

	data := make(disease.Data)
	scanner := newScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		m.LineRead(metrics.KindLocation)

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, values, err := parser.ParseLocation(line, disease.DataPoints)
		if err != nil {
			m.RecordMalformed(metrics.KindLocation)
			return nil, &models.RecordError{Line: lineNo, Text: line, Err: err}
		}
		if _, dup := data[name]; dup {
			logger.Warn("Duplicate location, keeping the later line", "location", name, "line", lineNo)
		}
		data[name] = disease.Series(values)
		m.RecordIngested(metrics.KindLocation, 0)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read locations: %w", err)
	}

	m.SetLocations(len(data))
	return data, nil
}

// LocationFile opens path and ingests it with Locations.
func LocationFile(path string, opts LocationOptions) (disease.Data, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	logger := opts.Logger.With("component", "ingest", "file", path)
	opts.Logger = logger
	s := &storage.Storage{}

	f, err := s.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if info, err := s.GetFileStats(path); err == nil {
		logger = logger.With("bytes", info.SizeBytes)
	}

	data, err := Locations(f, opts)
	if err != nil {
		logger.Error("Failed to ingest locations", "error", err)
		return nil, fmt.Errorf("failed to ingest %s: %w", path, err)
	}

	logger.Info("Loaded disease data", "locations", len(data))
	return data, nil
}
