// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorCyan  = lipgloss.Color("36")  // primary
	colorGreen = lipgloss.Color("35")  // success
	colorAmber = lipgloss.Color("220") // warnings
	colorWhite = lipgloss.Color("255") // values
	colorDim   = lipgloss.Color("240") // muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorAmber)
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
)

// writeTable renders a run summary and its ranking as a bordered table.
func writeTable(w io.Writer, out runOutput) error {
	rows := make([][]string, len(out.Ranking))
	for i, ns := range out.Ranking {
		rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(ns.Node), strconv.FormatFloat(ns.Score, 'f', 6, 64)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Rank", "Node", "Score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return styleCell
		})

	status := styleSuccess.Render(iconSuccess + " converged")
	if !out.Converged {
		status = styleWarning.Render(iconWarning + " iteration limit reached")
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n",
		styleTitle.Render(fmt.Sprintf("Top %d of %d nodes", len(out.Ranking), len(out.Scores))),
		styleDim.Render(fmt.Sprintf("backend %s · %d iterations · objective %s · ",
			out.Backend, out.Iterations, strconv.FormatFloat(out.Objective, 'g', 6, 64)))+status,
		t.Render(),
	)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, styleDim.Render("run ")+styleValue.Render(out.RunID))

	return err
}
