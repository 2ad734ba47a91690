// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package cistercian

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const maxticks = 40
const digitsPerGlyph = 4

// GraphPoint is one round trip measurement: how many of a number's
// four digits survived being rendered and recognized again.
type GraphPoint struct {
	Number, Digits float64
}

// createLine creates a horizontal line with a particular y value for
// a graph
func createLine(xvalues []float64, y float64, c drawing.Color) chart.ContinuousSeries {
	var yvalues []float64
	for range xvalues {
		yvalues = append(yvalues, y)
	}
	return chart.ContinuousSeries{
		XValues: xvalues,
		YValues: yvalues,
		Style: chart.Style{
			StrokeColor: c,
		},
	}
}

// Graph creates a graph of round trip accuracy over a range of
// numbers, with a guideline at full recovery and annotations on the
// numbers that recovered worst.
func Graph(points []GraphPoint, title string, w io.Writer) error {
	if len(points) < 2 {
		return errors.New("Not enough points to graph")
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Number < points[j].Number })

	var xvalues, yvalues []float64
	var ticks []chart.Tick
	tickevery := len(points) / maxticks
	if tickevery < 1 {
		tickevery = 1
	}
	for i, p := range points {
		xvalues = append(xvalues, p.Number)
		yvalues = append(yvalues, p.Digits)
		if i%tickevery == 0 {
			ticks = append(ticks, chart.Tick{Value: p.Number, Label: fmt.Sprintf("%.0f", p.Number)})
		}
	}
	// Make last tick the final number
	final := points[len(points)-1]
	ticks[len(ticks)-1] = chart.Tick{Value: final.Number, Label: fmt.Sprintf("%.0f", final.Number)}

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	perfectSeries := createLine(xvalues, digitsPerGlyph, chart.ColorAlternateGreen)

	// Annotate the numbers that recovered fewest digits
	worst := digitsPerGlyph + 1.0
	for _, p := range points {
		if p.Digits < worst {
			worst = p.Digits
		}
	}
	var annotations []chart.Value2
	for _, p := range points {
		if p.Digits == worst && worst < digitsPerGlyph {
			annotations = append(annotations, chart.Value2{Label: fmt.Sprintf("%.0f", p.Number), XValue: p.Number, YValue: p.Digits})
		}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  3840,
		Height: 2160,
		XAxis: chart.XAxis{
			Name: "Number",
			Range: &chart.ContinuousRange{
				Min: points[0].Number,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Digits recovered",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: digitsPerGlyph,
			},
		},
		Series: []chart.Series{
			mainSeries,
			perfectSeries,
			chart.AnnotationSeries{
				Annotations: annotations,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
