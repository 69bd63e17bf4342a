package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/planner"
	"github.com/katalvlaran/covpath/trajectory"
)

var (
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	obstacleStyle = cellStyle.Foreground(lipgloss.Color("240"))
	markStyle     = cellStyle.Foreground(lipgloss.Color("10"))
	idleStyle     = cellStyle.Foreground(lipgloss.Color("9"))
)

// renderPolicy draws the policy map of res over g as a bordered table.
// Cells never left by a move show as "." and unvisited free cells as "?".
func renderPolicy(g *grid.Grid, res planner.Result) string {
	policy := trajectory.PolicyMap(g, res.Trajectory, res.Annotations)
	for r := range policy {
		for c, cell := range policy[r] {
			if cell != "" {
				continue
			}
			if res.Coverage != nil && !res.Coverage.Visited(grid.Position{Row: r, Col: c}) {
				policy[r][c] = "?"
			} else {
				policy[r][c] = "."
			}
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(policy) || col >= len(policy[row]) {
				return cellStyle
			}
			switch cell := policy[row][col]; {
			case cell == trajectory.ObstacleMark:
				return obstacleStyle
			case cell == "?":
				return idleStyle
			case strings.Contains(cell, "@"):
				return markStyle
			default:
				return cellStyle
			}
		}).
		Rows(policy...)
	return t.Render()
}

// renderRanking draws the sweep rows as a ranked table.
func renderRanking(rows []planner.SweepRow) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{
			fmt.Sprint(i + 1),
			r.Heuristic.String(),
			r.Orientation.Name(),
			r.Result.State.String(),
			fmt.Sprint(r.Result.Steps),
			fmt.Sprintf("%.2f", r.Result.Cost),
			fmt.Sprint(recoveryHops(r.Result.Annotations)),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("#", "HEURISTIC", "ORIENTATION", "STATE", "STEPS", "COST", "HOPS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headStyle
			}
			return cellStyle
		}).
		Rows(data...)
	return t.Render()
}

// formatPath renders positions as (x, y) pairs, x being the column.
func formatPath(path []grid.Position) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = fmt.Sprintf("(%d, %d)", p.Col, p.Row)
	}
	return strings.Join(parts, " ")
}

// recoveryHops counts strategy switches into nearest-unvisited search.
func recoveryHops(notes []trajectory.Annotation) int {
	n := 0
	for _, a := range notes {
		if a.Tag == trajectory.TagRecovery {
			n++
		}
	}
	return n
}
