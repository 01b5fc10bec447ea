package reporting

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable renders the curve summary as a terminal table.
func RenderTable(r *Report) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(r.Title)
	t.AppendHeader(table.Row{"Curve", "Role", "Final %", "Peak %", "Trough %"})

	for _, row := range r.Rows() {
		t.AppendRow(table.Row{
			row.Label,
			string(row.Role),
			fmt.Sprintf("%.2f", row.Final),
			fmt.Sprintf("%.2f", row.Peak),
			fmt.Sprintf("%.2f", row.Trough),
		})
	}

	if r.Stats.Count > 0 {
		t.AppendFooter(table.Row{
			"Win rate",
			fmt.Sprintf("%d/%d", r.Stats.Wins, r.Stats.Count),
			fmt.Sprintf("%.2f", r.Stats.Mean),
			fmt.Sprintf("%.2f", r.Stats.Max),
			fmt.Sprintf("%.2f", r.Stats.Min),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return t.Render()
}
