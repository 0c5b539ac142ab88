package mapreduce

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dtnitsch/bias-bars/models"
	"github.com/dtnitsch/bias-bars/pkg/analytics"
)

// WordCount is one cell of the word data selected by TopWords.
type WordCount struct {
	Word  string  `yaml:"word" json:"word"`
	Count float64 `yaml:"count" json:"count"`
}

// isValidKeyword checks if a keyword should be included in results.
// Review text is tokenized on whitespace only, so tokens like "(great" or
// "class:" survive ingestion; they are kept in the data but not ranked.
func isValidKeyword(word string) bool {
	if strings.HasSuffix(word, ":") || strings.HasSuffix(word, "=") {
		return false
	}
	if strings.Contains(word, "(") && !strings.Contains(word, ")") {
		return false
	}
	if strings.Contains(word, "[") && !strings.Contains(word, "]") {
		return false
	}
	if strings.Count(word, "\"")%2 != 0 {
		return false
	}
	return true
}

// TopWords returns the n words with the largest cell for gender and bucket.
// Ties are broken alphabetically and zero cells are never returned.
func TopWords(wd *analytics.WordData, gender models.Gender, bucket analytics.Bucket, n int) []WordCount {
	var ss []WordCount
	for _, word := range wd.Words() {
		if !isValidKeyword(word) {
			continue
		}
		stat, _ := wd.Lookup(word)
		triple := stat.For(gender)
		if triple == nil || triple[bucket] == 0 {
			continue
		}
		ss = append(ss, WordCount{Word: word, Count: triple[bucket]})
	}

	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].Count > ss[j].Count
	})

	limit := min(max(n, 0), len(ss))
	return ss[:limit]
}

// FormatTopWords formats each entry as "word:count".
func FormatTopWords(counts []WordCount) []string {
	out := make([]string, len(counts))
	for i, c := range counts {
		out[i] = fmt.Sprintf("%s:%s", c.Word, FormatCount(c.Count))
	}
	return out
}

// PrintTopWords prints entries in a numbered list format.
func PrintTopWords(w io.Writer, counts []WordCount) {
	for i, c := range counts {
		fmt.Fprintf(w, "%d. %s: %s\n", i+1, c.Word, FormatCount(c.Count))
	}
}

// FormatCount prints whole numbers without a fraction and frequencies with
// two decimals.
func FormatCount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
