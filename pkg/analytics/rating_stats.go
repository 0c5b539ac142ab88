package analytics

import (
	"fmt"
	"math"

	"github.com/dtnitsch/bias-bars/models"
)

// HighRatingThreshold is the rating a review must exceed to count as high
// in RatingStats. Unlike the High bucket, a rating of exactly 2.5 is not
// high here.
const HighRatingThreshold = 3.5

// RatingStats counts how many reviews per gender are rated high.
type RatingStats struct {
	Total map[models.Gender]int
	High  map[models.Gender]int
}

func NewRatingStats() *RatingStats {
	return &RatingStats{
		Total: make(map[models.Gender]int),
		High:  make(map[models.Gender]int),
	}
}

// Observe records one review.
func (rs *RatingStats) Observe(r models.Review) {
	rs.Total[r.Gender]++
	if r.Rating > HighRatingThreshold {
		rs.High[r.Gender]++
	}
}

// HighPercent returns the share of high reviews for gender, rounded half to
// even.
func (rs *RatingStats) HighPercent(g models.Gender) (int, error) {
	total := rs.Total[g]
	if total == 0 {
		return 0, fmt.Errorf("%w: no reviews for gender %s", models.ErrDivisionByZero, g)
	}
	pct := float64(rs.High[g]) / float64(total) * 100
	return int(math.RoundToEven(pct)), nil
}
