package disease

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDaily(t *testing.T) {
	tests := []struct {
		name       string
		cumulative Series
		want       Series
	}{
		{"constant", Series{1, 1, 1, 1, 1, 1, 1}, Series{1, 0, 0, 0, 0, 0, 0}},
		{"linear", Series{1, 2, 3, 4, 5, 6, 7}, Series{1, 1, 1, 1, 1, 1, 1}},
		{"fibonacci", Series{1, 1, 2, 3, 5, 8, 13}, Series{1, 0, 1, 1, 2, 3, 5}},
		{"single day", Series{4}, Series{4}},
		{"empty", Series{}, Series{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cumulative.Daily())
		})
	}
}

func TestDailyDoesNotModifyInput(t *testing.T) {
	s := Series{1, 3, 6}
	s.Daily()
	assert.Equal(t, Series{1, 3, 6}, s)
}

func TestCumulativeInvertsDaily(t *testing.T) {
	for _, s := range []Series{
		{1, 1, 1, 1, 1, 1, 1},
		{0, 4, 4, 9, 20, 20, 31},
		{7, 3, 10, 2},
	} {
		assert.Equal(t, s, s.Daily().Cumulative())
	}
}

func TestDailyNonNegativeForMonotonicSeries(t *testing.T) {
	s := Series{2, 2, 5, 9, 9, 14, 30}
	for _, v := range s.Daily() {
		assert.GreaterOrEqual(t, v, 0)
	}
}

func TestDailyCases(t *testing.T) {
	data := Data{
		"Evermore":      {1, 1, 1, 1, 1, 1, 1},
		"Vanguard City": {1, 2, 3, 4, 5, 6, 7},
	}

	daily := DailyCases(data)
	assert.Equal(t, Data{
		"Evermore":      {1, 0, 0, 0, 0, 0, 0},
		"Vanguard City": {1, 1, 1, 1, 1, 1, 1},
	}, daily)
	assert.Equal(t, data, CumulativeSum(daily))
	assert.Empty(t, DailyCases(Data{}))
}

func TestSeriesYAML(t *testing.T) {
	out, err := yaml.Marshal(Data{"Excelsior": {1, 1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "Excelsior: [1, 1, 2]\n", string(out))
}
