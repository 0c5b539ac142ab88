// Package ingest reads review and disease data files into in-memory
// aggregates. Each file is read in one pass and closed on every exit path.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dtnitsch/bias-bars/models"
	"github.com/dtnitsch/bias-bars/pkg/analytics"
	"github.com/dtnitsch/bias-bars/pkg/logging"
	"github.com/dtnitsch/bias-bars/pkg/metrics"
	"github.com/dtnitsch/bias-bars/pkg/parser"
	"github.com/dtnitsch/bias-bars/pkg/storage"
)

const maxLineBytes = 1 << 20

// ReviewOptions controls how review text becomes word keys.
type ReviewOptions struct {
	// FoldCase lowercases every token before it is stored.
	FoldCase bool
	// SkipStopwords drops tokens reported by analytics.IsStopword.
	SkipStopwords bool

	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

func (o ReviewOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return logging.Discard()
	}
	return o.Logger
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return scanner
}

// EachReview calls fn for every record after the header line. Blank lines
// are skipped. The first malformed line stops the scan with a
// *models.RecordError.
func EachReview(r io.Reader, m *metrics.Metrics, fn func(models.Review) error) error {
	scanner := newScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		m.LineRead(metrics.KindReview)
		if lineNo == 1 {
			continue
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		review, err := parser.ParseReview(line)
		if err != nil {
			m.RecordMalformed(metrics.KindReview)
			return &models.RecordError{Line: lineNo, Text: line, Err: err}
		}
		if err := fn(review); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read reviews: %w", err)
	}
	return nil
}

// Reviews builds a new WordData from a review data stream.
func Reviews(r io.Reader, opts ReviewOptions) (*analytics.WordData, error) {
	wd := analytics.NewWordData()
	err := EachReview(r, opts.Metrics, func(review models.Review) error {
		added := 0
		for _, word := range analytics.Tokenize(review.Text) {
			if opts.FoldCase {
				word = strings.ToLower(word)
			}
			if opts.SkipStopwords && analytics.IsStopword(word) {
				continue
			}
			if err := wd.Add(word, review.Gender, review.Rating); err != nil {
				return err
			}
			added++
		}
		opts.Metrics.RecordIngested(metrics.KindReview, added)
		return nil
	})
	if err != nil {
		return nil, err
	}
	opts.Metrics.SetVocabulary(wd.Len())
	return wd, nil
}

// ReviewFile opens path and ingests it with Reviews.
func ReviewFile(path string, opts ReviewOptions) (*analytics.WordData, error) {
	logger := opts.logger().With("component", "ingest", "file", path)
	s := &storage.Storage{}

	f, err := s.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if info, err := s.GetFileStats(path); err == nil {
		logger = logger.With("bytes", info.SizeBytes)
	}

	wd, err := Reviews(f, opts)
	if err != nil {
		logger.Error("Failed to ingest reviews", "error", err)
		return nil, fmt.Errorf("failed to ingest %s: %w", path, err)
	}

	logger.Info("Loaded review data", "words", wd.Len(), "fold_case", opts.FoldCase)
	return wd, nil
}

// ReviewStatsFile counts high ratings per gender in path.
func ReviewStatsFile(path string, opts ReviewOptions) (*analytics.RatingStats, error) {
	logger := opts.logger().With("component", "ingest", "file", path)
	s := &storage.Storage{}

	f, err := s.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if info, err := s.GetFileStats(path); err == nil {
		logger = logger.With("bytes", info.SizeBytes)
	}

	stats := analytics.NewRatingStats()
	err = EachReview(f, opts.Metrics, func(review models.Review) error {
		stats.Observe(review)
		opts.Metrics.RecordIngested(metrics.KindReview, 0)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ingest %s: %w", path, err)
	}

	logger.Info("Loaded rating stats", "women", stats.Total[models.GenderWomen], "men", stats.Total[models.GenderMen])
	return stats, nil
}
