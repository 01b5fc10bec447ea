package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString(fmt.Sprintf("# %s\n\n", r.Title))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	if r.Bundle.IsEmpty() {
		sb.WriteString("No data available for this selection.\n\n")
		writeFailed(&sb, r)
		return sb.String()
	}

	// Curves
	sb.WriteString("## Curves\n\n")
	sb.WriteString("| Curve | Role | Points | Final % | Peak % | Trough % |\n")
	sb.WriteString("|-------|------|--------|---------|--------|----------|\n")
	for _, row := range r.Rows() {
		points := 0
		for _, c := range r.Bundle.All() {
			if c.ID == row.ID {
				points = c.Len()
				break
			}
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %d | %.2f | %.2f | %.2f |\n",
			row.Label, row.Role, points, row.Final, row.Peak, row.Trough))
	}
	sb.WriteString("\n")

	// Range
	sb.WriteString("## Range\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Global Min %% | %.2f |\n", r.Bundle.GlobalMin))
	sb.WriteString(fmt.Sprintf("| Global Max %% | %.2f |\n", r.Bundle.GlobalMax))
	sb.WriteString(fmt.Sprintf("| Max Length | %d |\n", r.Bundle.MaxLength))
	sb.WriteString(fmt.Sprintf("| Omitted | %d |\n", r.Bundle.Omitted))
	sb.WriteString("\n")

	// Outcomes
	sb.WriteString("## Outcomes\n\n")
	if r.Stats.Count > 0 {
		sb.WriteString("| Count | WinRate | Mean | Median | P10 | P90 | MaxDD | MaxLoss |\n")
		sb.WriteString("|-------|---------|------|--------|-----|-----|-------|---------|\n")
		sb.WriteString(fmt.Sprintf("| %d | %.4f | %.2f | %.2f | %.2f | %.2f | %.2f | %d |\n",
			r.Stats.Count, r.Stats.WinRate, r.Stats.Mean, r.Stats.Median,
			r.Stats.P10, r.Stats.P90, r.Stats.MaxDrawdown, r.Stats.MaxConsecutiveLosses))
	} else {
		sb.WriteString("No completed curves.\n")
	}
	sb.WriteString("\n")

	writeFailed(&sb, r)
	return sb.String()
}

func writeFailed(sb *strings.Builder, r *Report) {
	if len(r.Failed) == 0 {
		return
	}
	sb.WriteString("## Unavailable\n\n")
	for _, name := range r.failedLabels() {
		sb.WriteString(fmt.Sprintf("- %s\n", name))
	}
	sb.WriteString("\n")
}
