// Package chart lays out the frequency bars for one word and renders them.
// It only needs the word's two triples; it knows nothing about how they were
// computed.
package chart

import (
	"errors"
	"math"

	"github.com/dtnitsch/bias-bars/models"
	"github.com/dtnitsch/bias-bars/pkg/analytics"
)

const (
	VerticalMargin       = 30
	LeftMargin           = 60
	RightMargin          = 30
	LabelOffset          = 10
	BarWidth             = 75
	LineWidth            = 2
	TextDX               = 10
	TextDY               = 10
	NumVerticalDivisions = 7
	TickWidth            = 15
)

// BucketLabels names the x-axis positions.
var BucketLabels = [analytics.NumBuckets]string{"Low Reviews", "Medium Reviews", "High Reviews"}

var ErrEmptyStat = errors.New("word has no occurrences to plot")

// Layout is the canvas size in pixels.
type Layout struct {
	Width  int
	Height int
}

type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Bar is one filled rectangle. Rect.Y0 is the top edge.
type Bar struct {
	Gender models.Gender
	Bucket analytics.Bucket
	Value  float64
	Rect   Rect
}

// Tick is a y-axis mark with its integer label.
type Tick struct {
	Y     float64
	Label int
}

// Label is an x-axis caption anchored at its top center.
type Label struct {
	X, Y float64
	Text string
}

// Plot is everything needed to draw one word.
type Plot struct {
	Layout
	Word   string
	Frame  Rect
	Labels []Label
	Ticks  []Tick
	Bars   []Bar
}

// CenteredX returns the x coordinate the bars and label for bucket idx are
// centered on. The plotting area is split into sixths and the three buckets
// sit at one, three, and five sixths.
func CenteredX(width int, idx int) float64 {
	fraction := float64(width-(LeftMargin+RightMargin)) / 6
	switch idx {
	case 0:
		return LeftMargin + fraction
	case 1:
		return LeftMargin + 3*fraction
	default:
		return LeftMargin + 5*fraction
	}
}

// AxisLabels returns the y-axis labels, stepping by floor(max/divisions)
// from zero.
func AxisLabels(maxFrequency float64) []int {
	step := int(math.Floor(maxFrequency / NumVerticalDivisions))
	labels := make([]int, NumVerticalDivisions)
	for i := range labels {
		labels[i] = i * step
	}
	return labels
}

// Frame is the plotting rectangle inside the margins.
func (l Layout) Frame() Rect {
	return Rect{
		X0: LeftMargin,
		Y0: VerticalMargin,
		X1: float64(l.Width - RightMargin),
		Y1: float64(l.Height - VerticalMargin),
	}
}

// Plot lays out the bars for stat. Women's bars sit left of each bucket's
// center line and men's bars right of it.
func (l Layout) Plot(word string, stat analytics.WordStat) (Plot, error) {
	maxFrequency := stat.Max()
	if maxFrequency <= 0 {
		return Plot{}, ErrEmptyStat
	}

	frame := l.Frame()
	start := frame.Y1
	plotHeight := float64(l.Height - 2*VerticalMargin)
	increment := plotHeight / NumVerticalDivisions
	toPixels := plotHeight / maxFrequency

	p := Plot{Layout: l, Word: word, Frame: frame}

	for i, text := range BucketLabels {
		p.Labels = append(p.Labels, Label{
			X:    CenteredX(l.Width, i),
			Y:    start + LabelOffset,
			Text: text,
		})
	}

	for i, label := range AxisLabels(maxFrequency) {
		p.Ticks = append(p.Ticks, Tick{Y: start - float64(i)*increment, Label: label})
	}
	p.Ticks = append(p.Ticks, Tick{Y: VerticalMargin, Label: int(maxFrequency)})

	for i := range analytics.NumBuckets {
		x := CenteredX(l.Width, i)
		w, m := stat.W[i], stat.M[i]
		p.Bars = append(p.Bars,
			Bar{
				Gender: models.GenderWomen,
				Bucket: analytics.Bucket(i),
				Value:  w,
				Rect:   Rect{X0: x - BarWidth, Y0: start - w*toPixels, X1: x, Y1: start},
			},
			Bar{
				Gender: models.GenderMen,
				Bucket: analytics.Bucket(i),
				Value:  m,
				Rect:   Rect{X0: x, Y0: start - m*toPixels, X1: x + BarWidth, Y1: start},
			},
		)
	}
	return p, nil
}
