package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/cardfold/pkg/gen"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// CardSelection holds the result of the interactive pickers.
type CardSelection struct {
	Occasion gen.Occasion
	Style    gen.ArtStyle
}

// pickOccasion runs the occasion and art style pickers in sequence.
// It returns nil when the user cancels either step.
func pickOccasion() (*CardSelection, error) {
	om := NewOccasionListModel(gen.Occasions())
	final, err := tea.NewProgram(om).Run()
	if err != nil {
		return nil, fmt.Errorf("occasion picker: %w", err)
	}
	occ := final.(OccasionListModel).Selected
	if occ == nil {
		return nil, nil
	}

	sm := NewStyleListModel(gen.ArtStyles())
	final, err = tea.NewProgram(sm).Run()
	if err != nil {
		return nil, fmt.Errorf("style picker: %w", err)
	}
	style := final.(StyleListModel).Selected
	if style == nil {
		return nil, nil
	}

	return &CardSelection{Occasion: *occ, Style: *style}, nil
}

// =============================================================================
// OccasionListModel - Interactive occasion selection
// =============================================================================

// OccasionListModel is the bubbletea model for occasion selection.
type OccasionListModel struct {
	Occasions []gen.Occasion
	Cursor    int
	Selected  *gen.Occasion
}

// NewOccasionListModel creates a new occasion list model.
func NewOccasionListModel(occasions []gen.Occasion) OccasionListModel {
	return OccasionListModel{Occasions: occasions}
}

func (m OccasionListModel) Init() tea.Cmd {
	return nil
}

func (m OccasionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Occasions)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Occasions[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m OccasionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Occasion"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := [][]string{}
	for i, occ := range m.Occasions {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, string(occ), occ.Mood()})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Occasion", "Mood").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				if col == 2 {
					return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
				}
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 2 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Occasions))))

	return b.String()
}

// =============================================================================
// StyleListModel - Interactive art style selection
// =============================================================================

// StyleListModel is the bubbletea model for art style selection.
type StyleListModel struct {
	Styles   []gen.ArtStyle
	Cursor   int
	Selected *gen.ArtStyle
}

// NewStyleListModel creates a new style list model.
func NewStyleListModel(styles []gen.ArtStyle) StyleListModel {
	return StyleListModel{Styles: styles}
}

func (m StyleListModel) Init() tea.Cmd {
	return nil
}

func (m StyleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Styles)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Styles[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m StyleListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Art Style"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, s := range m.Styles {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-12s  %s", cursor, string(s), listDimStyle.Render(s.Direction()))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
