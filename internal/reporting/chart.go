package reporting

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"solana-signal-lab/internal/domain"
)

var roleColors = map[domain.Role]string{
	domain.RoleHistoricalAverage: "#f5a623",
	domain.RoleActive:            "#2ecc71",
	domain.RoleBaseline:          "#888888",
	domain.RoleMinReference:      "#e74c3c",
	domain.RoleMaxReference:      "#3498db",
}

func isReference(role domain.Role) bool {
	return role == domain.RoleBaseline || role == domain.RoleMinReference || role == domain.RoleMaxReference
}

// RenderChart writes an HTML line chart of the bundle to w. The x axis is
// the candle index since the anchor and the y axis percent change.
// Reference lines are dashed and span the whole axis.
func RenderChart(w io.Writer, r *Report) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: r.Title, Subtitle: r.GeneratedAt.Format("2006-01-02 15:04 MST")}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "%", Scale: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "candle"}),
	)

	n := r.Bundle.MaxLength
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	line.SetXAxis(xs)

	for _, c := range r.Bundle.All() {
		style := opts.LineStyle{Width: 2}
		if color, ok := roleColors[c.Role]; ok {
			style.Color = color
		}
		if isReference(c.Role) {
			style.Type = "dashed"
			style.Width = 1
		}
		line.AddSeries(r.Label(c), lineData(c, n), charts.WithLineStyleOpts(style))
	}

	return line.Render(w)
}

// lineData places points on the shared axis. Reference lines are flat, so
// they are expanded from their two end points to every index.
func lineData(c domain.Curve, n int) []opts.LineData {
	if isReference(c.Role) && len(c.Points) > 0 {
		out := make([]opts.LineData, n)
		for i := range out {
			out[i] = opts.LineData{Value: c.Points[0].Value}
		}
		return out
	}
	out := make([]opts.LineData, 0, len(c.Points))
	for _, p := range c.Points {
		if p.Index >= n {
			break
		}
		out = append(out, opts.LineData{Value: p.Value})
	}
	return out
}
