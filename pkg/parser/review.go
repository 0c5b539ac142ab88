// Package parser turns single lines of the review and disease data files
// into typed records.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnitsch/bias-bars/models"
)

// ParseReview parses a line of the form "<rating>,<gender>,<review text>".
// The text is everything after the second comma, so it may contain commas
// itself, but the rating and gender fields may not.
func ParseReview(line string) (models.Review, error) {
	fields := strings.SplitN(line, ",", 3)
	if len(fields) < 3 {
		return models.Review{}, fmt.Errorf("%w: expected rating,gender,text", models.ErrMalformedRecord)
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: rating %q is not a number", models.ErrMalformedRecord, fields[0])
	}

	code := strings.TrimSpace(fields[1])
	if len(code) != 1 {
		return models.Review{}, fmt.Errorf("%w: gender %q is not a single character", models.ErrMalformedRecord, fields[1])
	}
	gender, err := models.ParseGender(code)
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: %w %q", models.ErrMalformedRecord, err, code)
	}

	return models.Review{
		Rating: rating,
		Gender: gender,
		Text:   fields[2],
	}, nil
}
