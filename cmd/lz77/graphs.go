package main

import (
	"os"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
)

// renderOccupancy renders staging occupancy per tick as an SVG scatter plot.
func renderOccupancy(path string, samples map[int]int) error {
	// Create sorted tick list
	ticks := make([]int, 0, len(samples))
	for tick := range samples {
		ticks = append(ticks, tick)
	}
	sort.Ints(ticks)

	// Convert map to 2 arrays
	xvals := make([]float64, 0, len(ticks))
	yvals := make([]float64, 0, len(ticks))
	for _, tick := range ticks {
		xvals = append(xvals, float64(tick))
		yvals = append(yvals, float64(samples[tick]))
	}

	graph := chart.Chart{
		XAxis: chart.XAxis{Name: "tick"},
		YAxis: chart.YAxis{Name: "staging occupancy"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					DotWidth: 3,
				},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	return graph.Render(chart.SVG, fh)
}
