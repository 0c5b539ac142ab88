// Package disease turns cumulative infection counts per location into daily
// new-case counts.
package disease

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// DataPoints is the number of days recorded per location in a data file.
const DataPoints = 7

// Series is one value per day for a single location.
type Series []int

// MarshalYAML keeps a series on one line.
func (s Series) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range s {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)})
	}
	return node, nil
}

// Data maps a location name to its series.
type Data map[string]Series

// Daily returns the day-over-day differences of a cumulative series. The
// first day has no baseline, so its cumulative count is its daily count.
func (s Series) Daily() Series {
	out := make(Series, len(s))
	for i, v := range s {
		if i == 0 {
			out[i] = v
			continue
		}
		out[i] = v - s[i-1]
	}
	return out
}

// Cumulative is the inverse of Daily.
func (s Series) Cumulative() Series {
	out := make(Series, len(s))
	running := 0
	for i, v := range s {
		running += v
		out[i] = running
	}
	return out
}

// DailyCases computes the daily series for every location.
func DailyCases(cumulative Data) Data {
	out := make(Data, len(cumulative))
	for loc, s := range cumulative {
		out[loc] = s.Daily()
	}
	return out
}

// CumulativeSum rebuilds cumulative series from daily ones.
func CumulativeSum(daily Data) Data {
	out := make(Data, len(daily))
	for loc, s := range daily {
		out[loc] = s.Cumulative()
	}
	return out
}
