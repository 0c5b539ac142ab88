package mapreduce

import (
	"fmt"

	"github.com/dtnitsch/bias-bars/pkg/analytics"
	"github.com/dtnitsch/bias-bars/pkg/ingest"
)

// Map builds the word data for a single review file.
func Map(path string, opts ingest.ReviewOptions) (*analytics.WordData, error) {
	return ingest.ReviewFile(path, opts)
}

// Reduce sums several un-normalized word data sets into a new one. The
// inputs are not modified.
func Reduce(intermediate []*analytics.WordData) (*analytics.WordData, error) {
	final := analytics.NewWordData()
	for i, wd := range intermediate {
		if err := final.Merge(wd); err != nil {
			return nil, fmt.Errorf("failed to merge word data %d: %w", i, err)
		}
	}
	return final, nil
}

// MapReduce loads every path and merges the results.
func MapReduce(paths []string, opts ingest.ReviewOptions) (*analytics.WordData, error) {
	if len(paths) == 1 {
		return Map(paths[0], opts)
	}
	intermediate := make([]*analytics.WordData, 0, len(paths))
	for _, p := range paths {
		wd, err := Map(p, opts)
		if err != nil {
			return nil, err
		}
		intermediate = append(intermediate, wd)
	}
	final, err := Reduce(intermediate)
	if err != nil {
		return nil, err
	}
	opts.Metrics.SetVocabulary(final.Len())
	return final, nil
}
