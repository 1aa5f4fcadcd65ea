package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/advent/pkg/puzzle"
)

// listCommand creates the list command showing the registered days.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered puzzle days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.out, dayTable(c.Registry.Days(), c.Config.InputPath).Render())
			return nil
		},
	}
}

// dayTable builds a table of days with their part count and input path.
func dayTable(days []puzzle.Day, inputPath func(int) string) *table.Table {
	rows := make([][]string, len(days))
	for i, d := range days {
		rows[i] = []string{strconv.Itoa(d.Number), d.Title, strconv.Itoa(len(d.Parts)), inputPath(d.Number)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Day", "Title", "Parts", "Input").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan).Align(lipgloss.Right)
			case col == 3:
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})
}
