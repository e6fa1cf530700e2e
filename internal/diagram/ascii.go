// Package diagram renders sampled bending-moment diagrams for the
// terminal and for image export. It is a consumer of the statics core:
// everything here works off the (x, M) series and a few labeled key
// points, never off the raw load data.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/statics"
)

// KeyPoint is a labeled value marked on an exported diagram, e.g. an end
// moment or the located sagging extremum.
type KeyPoint struct {
	X     float64
	M     float64
	Label string
}

// RenderMomentDiagram draws the sampled field as a terminal chart.
// Sagging (positive) moments plot upward, matching the sign convention of
// the statics package.
func RenderMomentDiagram(field statics.MomentField, height int) string {
	if len(field) == 0 {
		return ""
	}
	values := make([]float64, len(field))
	for i, s := range field {
		values[i] = s.M
	}

	caption := fmt.Sprintf("Bending moment (kN-m) over x = 0 .. %.2f m", field[len(field)-1].X)
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(64),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
}

// DrawSummaryBox frames a title and result lines in a box for terminal
// reports.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
