package chart

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"
	"strings"

	"github.com/dtnitsch/bias-bars/models"
	"github.com/dtnitsch/bias-bars/pkg/analytics"
)

var barColors = map[models.Gender]string{
	models.GenderWomen: "dodgerblue",
	models.GenderMen:   "orange",
}

// RenderSVG writes p as a standalone SVG document.
func RenderSVG(w io.Writer, p Plot) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" font-family="sans-serif" font-size="12">`+"\n",
		p.Width, p.Height)
	fmt.Fprintf(bw, "  <title>%s</title>\n", html.EscapeString(p.Word))
	fmt.Fprintf(bw, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="black" stroke-width="%d"/>`+"\n",
		p.Frame.X0, p.Frame.Y0, p.Frame.X1-p.Frame.X0, p.Frame.Y1-p.Frame.Y0, LineWidth)

	for _, l := range p.Labels {
		fmt.Fprintf(bw, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="hanging">%s</text>`+"\n",
			l.X, l.Y, html.EscapeString(l.Text))
	}

	half := float64(TickWidth) / 2
	for _, t := range p.Ticks {
		fmt.Fprintf(bw, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black" stroke-width="%d"/>`+"\n",
			LeftMargin-half, t.Y, LeftMargin+half, t.Y, LineWidth)
		fmt.Fprintf(bw, `  <text x="%d" y="%.1f" text-anchor="end" dominant-baseline="middle">%d</text>`+"\n",
			LeftMargin-LabelOffset, t.Y, t.Label)
	}

	for _, b := range p.Bars {
		r := b.Rect
		fmt.Fprintf(bw, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="black"/>`+"\n",
			r.X0, r.Y0, r.X1-r.X0, r.Y1-r.Y0, barColors[b.Gender])
		if b.Value > 0 {
			fmt.Fprintf(bw, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
				r.X0+TextDX, r.Y0+TextDY, b.Gender)
		}
	}

	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

// RenderText draws horizontal bars for stat, scaled so the largest cell
// spans width characters.
func RenderText(w io.Writer, word string, stat analytics.WordStat, width int) error {
	maxFrequency := stat.Max()
	if maxFrequency <= 0 {
		return ErrEmptyStat
	}
	if width <= 0 {
		width = 50
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", word)
	for i := range analytics.NumBuckets {
		fmt.Fprintf(bw, "%s\n", BucketLabels[i])
		for _, g := range models.Genders {
			v := stat.For(g)[i]
			n := int(math.Round(v / maxFrequency * float64(width)))
			fmt.Fprintf(bw, "  %s |%-*s %.2f\n", g, width, strings.Repeat("#", n), v)
		}
	}
	return bw.Flush()
}
