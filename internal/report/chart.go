package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Series is one search's retained node count per ply.
type Series struct {
	Name   string
	Counts []int
}

// RenderNodesPerPly writes an HTML page with one bar series per search.
func RenderNodesPerPly(w io.Writer, title string, series ...Series) error {
	var plies = 0
	for _, s := range series {
		if len(s.Counts) > plies {
			plies = len(s.Counts)
		}
	}

	var bar = charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	var xAxis []string
	for i := 0; i < plies; i++ {
		xAxis = append(xAxis, fmt.Sprintf("%d", i))
	}
	bar.SetXAxis(xAxis)

	for _, s := range series {
		var items = make([]opts.BarData, 0, plies)
		for i := 0; i < plies; i++ {
			var value = 0
			if i < len(s.Counts) {
				value = s.Counts[i]
			}
			items = append(items, opts.BarData{Value: value})
		}
		bar.AddSeries(s.Name, items)
	}

	var page = components.NewPage()
	page.AddCharts(bar)
	return page.Render(w)
}
