package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dtnitsch/bias-bars/models"
)

// ParseLocation parses "<name>,<n1>,...,<nK>" where K is points. The name is
// trimmed. Each number may carry stray non-digit characters, which are
// dropped before conversion.
func ParseLocation(line string, points int) (string, []int, error) {
	fields := strings.Split(line, ",")
	if len(fields) != points+1 {
		return "", nil, fmt.Errorf("%w: expected location and %d values, got %d fields",
			models.ErrMalformedRecord, points, len(fields))
	}

	name := strings.TrimSpace(fields[0])
	if name == "" {
		return "", nil, fmt.Errorf("%w: empty location name", models.ErrMalformedRecord)
	}

	values := make([]int, 0, points)
	for _, field := range fields[1:] {
		n, err := digitsOnly(field)
		if err != nil {
			return "", nil, err
		}
		values = append(values, n)
	}
	return name, values, nil
}

func digitsOnly(field string) (int, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, field)
	if digits == "" {
		return 0, fmt.Errorf("%w: %q has no digits", models.ErrMalformedRecord, strings.TrimFunc(field, unicode.IsSpace))
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", models.ErrMalformedRecord, field, err)
	}
	return n, nil
}
