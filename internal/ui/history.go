package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pxshot/pxshot-go/internal/models"
)

// historyModel is the capture-history browser
type historyModel struct {
	table    table.Model
	count    int
	quitting bool
}

// RunHistoryBrowser shows an interactive table of past captures
func RunHistoryBrowser(captures []models.Capture) error {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "URL", Width: 38},
		{Title: "Saved to", Width: 38},
		{Title: "Size", Width: 10},
		{Title: "Format", Width: 6},
	}

	rows := make([]table.Row, 0, len(captures))
	for _, c := range captures {
		location := c.OutputPath
		if c.StoredURL != "" {
			location = c.StoredURL
		}
		size := ""
		if c.SizeBytes > 0 {
			size = FormatBytes(c.SizeBytes)
		}
		rows = append(rows, table.Row{
			c.CreatedAt.Local().Format("2006-01-02 15:04"),
			c.URL,
			location,
			size,
			c.Format,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(TableHeight),
	)
	ApplyTableStyles(&t)
	t.GotoTop()

	m := historyModel{table: t, count: len(captures)}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("history browser error: %w", err)
	}
	return nil
}

func (m historyModel) Init() tea.Cmd {
	return nil
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m historyModel) View() string {
	if m.quitting {
		return ""
	}
	header := TitleStyle.Render("Capture history (" + strconv.Itoa(m.count) + " captures)")
	footer := HintStyle.Render("↑/↓ scroll · q quit")
	return header + "\n" + BorderStyle.Render(m.table.View()) + "\n" + footer + "\n"
}
