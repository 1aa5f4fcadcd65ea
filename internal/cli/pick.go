package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/advent/pkg/puzzle"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// DayListModel - Interactive day selection
// =============================================================================

// DayEntry is one selectable day and whether its input file exists.
type DayEntry struct {
	Day      puzzle.Day
	Input    string
	HasInput bool
}

// DayListModel is the bubbletea model for interactive day selection.
// Days without an input file are shown but cannot be selected.
type DayListModel struct {
	Days     []DayEntry
	Cursor   int
	Selected *DayEntry
	Height   int
	Offset   int
}

// NewDayListModel creates a day list model with the cursor on the last
// day that has an input.
func NewDayListModel(days []DayEntry) DayListModel {
	m := DayListModel{Days: days, Height: 15}
	for i, d := range days {
		if d.HasInput {
			m.Cursor = i
		}
	}
	if m.Cursor >= m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	return m
}

func (m DayListModel) Init() tea.Cmd {
	return nil
}

func (m DayListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Days)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Days) == 0 {
				return m, nil
			}
			d := m.Days[m.Cursor]
			if !d.HasInput {
				return m, nil
			}
			m.Selected = &d
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m DayListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Day"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ solve  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Days))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		d := m.Days[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		input := "—"
		if d.HasInput {
			input = d.Input
		}
		rows = append(rows, []string{cursor, strconv.Itoa(d.Day.Number), d.Day.Title, input})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Day", "Title", "Input").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Days) {
				return lipgloss.NewStyle()
			}
			d := m.Days[idx]
			base := lipgloss.NewStyle()
			if col == 3 {
				base = base.Foreground(colorDim)
			}
			switch {
			case idx == m.Cursor && d.HasInput:
				if col == 3 {
					return base.Foreground(colorGray).Bold(true)
				}
				return base.Foreground(colorGreen).Bold(true)
			case idx == m.Cursor:
				return base.Foreground(colorDim).Bold(true)
			case d.HasInput:
				return base
			}
			return base.Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Days))))

	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// pickCommand creates the pick command: choose a day from a list, then solve it.
func (c *CLI) pickCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a day interactively and solve it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := c.dayEntries()
			p := tea.NewProgram(NewDayListModel(entries), tea.WithOutput(c.errOut), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}

			fm, ok := final.(DayListModel)
			if !ok || fm.Selected == nil {
				printDetail(c.errOut, "No selection made")
				return nil
			}
			return c.runDays(cmd.Context(), []puzzle.Day{fm.Selected.Day}, true, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the answer cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute cached answers")

	return cmd
}

// dayEntries lists the registered days with their configured input paths.
func (c *CLI) dayEntries() []DayEntry {
	days := c.Registry.Days()
	entries := make([]DayEntry, len(days))
	for i, d := range days {
		path := c.Config.InputPath(d.Number)
		_, err := os.Stat(path)
		entries[i] = DayEntry{Day: d, Input: path, HasInput: err == nil}
	}
	return entries
}
