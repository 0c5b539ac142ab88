// Package models defines the records, configuration, and errors shared by
// the review and disease pipelines.
package models

import "strings"

// Gender tags the professor a review is about.
type Gender string

const (
	GenderWomen Gender = "W"
	GenderMen   Gender = "M"
)

// Genders lists every gender tag in output order.
var Genders = []Gender{GenderWomen, GenderMen}

// ParseGender accepts a one-letter gender code in either case.
func ParseGender(code string) (Gender, error) {
	switch Gender(strings.ToUpper(strings.TrimSpace(code))) {
	case GenderWomen:
		return GenderWomen, nil
	case GenderMen:
		return GenderMen, nil
	}
	return "", ErrUnknownGender
}

// Review is a single parsed line of a review data file.
type Review struct {
	Rating float64
	Gender Gender
	Text   string
}
