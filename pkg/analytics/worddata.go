package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dtnitsch/bias-bars/models"
	"gopkg.in/yaml.v3"
)

// PerMillion is the scale Normalize rescales each gender's counts to.
const PerMillion = 1_000_000

// Triple holds one value per rating bucket. Cells are raw counts until the
// owning WordData is normalized, per-million frequencies afterwards.
type Triple [NumBuckets]float64

// Sum adds up the three cells.
func (t Triple) Sum() float64 {
	return t[Low] + t[Medium] + t[High]
}

// Max returns the largest cell.
func (t Triple) Max() float64 {
	m := t[0]
	for _, v := range t[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// MarshalYAML writes the triple in flow style, e.g. [0, 1, 1].
func (t Triple) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range t {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return node, nil
}

// WordStat is the pair of triples kept for one word.
type WordStat struct {
	W Triple `yaml:"W" json:"W"`
	M Triple `yaml:"M" json:"M"`
}

// For returns the triple for the given gender, or nil for an unknown tag.
func (s *WordStat) For(g models.Gender) *Triple {
	switch g {
	case models.GenderWomen:
		return &s.W
	case models.GenderMen:
		return &s.M
	}
	return nil
}

// Max returns the largest cell across both genders.
func (s WordStat) Max() float64 {
	return max(s.W.Max(), s.M.Max())
}

// WordData is the accumulator built from one or more review files.
//
// Keys are stored exactly as passed to Add. WordData never folds case, so a
// caller that wants case-insensitive lookups must lowercase words before
// adding them and lowercase queries before looking them up.
type WordData struct {
	words      map[string]*WordStat
	normalized bool
}

// NewWordData returns an empty accumulator.
func NewWordData() *WordData {
	return &WordData{words: make(map[string]*WordStat)}
}

// Add logs one occurrence of word in a review of the given rating about a
// professor of the given gender.
func (wd *WordData) Add(word string, gender models.Gender, rating float64) error {
	if wd.normalized {
		return models.ErrAlreadyNormalized
	}
	if gender != models.GenderWomen && gender != models.GenderMen {
		return fmt.Errorf("%w: %q", models.ErrUnknownGender, gender)
	}

	stat, ok := wd.words[word]
	if !ok {
		stat = &WordStat{}
		wd.words[word] = stat
	}
	stat.For(gender)[BucketForRating(rating)]++
	return nil
}

// Lookup returns a copy of the stat for word.
func (wd *WordData) Lookup(word string) (WordStat, bool) {
	stat, ok := wd.words[word]
	if !ok {
		return WordStat{}, false
	}
	return *stat, true
}

// Len returns the vocabulary size.
func (wd *WordData) Len() int {
	return len(wd.words)
}

// Normalized reports whether Normalize has been applied.
func (wd *WordData) Normalized() bool {
	return wd.normalized
}

// Words returns every key in alphabetical order.
func (wd *WordData) Words() []string {
	words := make([]string, 0, len(wd.words))
	for w := range wd.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Search returns every word containing target. The comparison is case
// sensitive. Results are sorted but should be treated as a set.
func (wd *WordData) Search(target string) []string {
	var matches []string
	for w := range wd.words {
		if strings.Contains(w, target) {
			matches = append(matches, w)
		}
	}
	sort.Strings(matches)
	return matches
}

// SearchFold is Search with both sides lowercased.
func (wd *WordData) SearchFold(target string) []string {
	target = strings.ToLower(target)
	var matches []string
	for w := range wd.words {
		if strings.Contains(strings.ToLower(w), target) {
			matches = append(matches, w)
		}
	}
	sort.Strings(matches)
	return matches
}

// Totals sums every cell per gender.
func (wd *WordData) Totals() map[models.Gender]float64 {
	totals := make(map[models.Gender]float64, len(models.Genders))
	for _, g := range models.Genders {
		totals[g] = 0
	}
	for _, stat := range wd.words {
		totals[models.GenderWomen] += stat.W.Sum()
		totals[models.GenderMen] += stat.M.Sum()
	}
	return totals
}

// Normalize rescales every cell to occurrences per million words of that
// gender so that genders with different review volumes are comparable.
// It must run exactly once, after ingestion. The data is left untouched
// when an error is returned.
func (wd *WordData) Normalize() error {
	if wd.normalized {
		return models.ErrAlreadyNormalized
	}

	totals := wd.Totals()
	for _, g := range models.Genders {
		if totals[g] == 0 {
			return fmt.Errorf("%w: no words for gender %s", models.ErrDivisionByZero, g)
		}
	}

	scaleW := PerMillion / totals[models.GenderWomen]
	scaleM := PerMillion / totals[models.GenderMen]
	for _, stat := range wd.words {
		for i := range NumBuckets {
			stat.W[i] *= scaleW
			stat.M[i] *= scaleM
		}
	}
	wd.normalized = true
	return nil
}

// Merge adds every count in other into wd. Both must be un-normalized.
func (wd *WordData) Merge(other *WordData) error {
	if wd.normalized || other.normalized {
		return models.ErrAlreadyNormalized
	}
	for word, src := range other.words {
		dst, ok := wd.words[word]
		if !ok {
			dst = &WordStat{}
			wd.words[word] = dst
		}
		for i := range NumBuckets {
			dst.W[i] += src.W[i]
			dst.M[i] += src.M[i]
		}
	}
	return nil
}

// Snapshot copies the accumulator into a plain map, for encoding.
func (wd *WordData) Snapshot() map[string]WordStat {
	out := make(map[string]WordStat, len(wd.words))
	for w, stat := range wd.words {
		out[w] = *stat
	}
	return out
}
