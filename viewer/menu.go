package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/scottkirkwood/fractals"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// menuModel lets the user pick a fractal from the terminal.
type menuModel struct {
	kinds  []fractals.Kind
	cursor int
	chosen bool
	quit   bool
}

func newMenu() menuModel {
	return menuModel{kinds: fractals.Kinds}
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch s := keyMsg.String(); s {
	case "ctrl+c", "q", "esc":
		m.quit = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.kinds)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.chosen = true
		return m, tea.Quit
	default:
		// Digits pick an entry directly, like the numbered menu they show.
		if d, err := strconv.Atoi(s); err == nil && d >= 1 && d <= len(m.kinds) {
			m.cursor = d - 1
			m.chosen = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	if m.chosen || m.quit {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Choose a fractal to visualize:"))
	sb.WriteString("\n\n")
	for i, k := range m.kinds {
		line := fmt.Sprintf("%d. %s", i+1, k)
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("up/down to move, enter or 1-6 to pick, q to quit"))
	sb.WriteString("\n")
	return sb.String()
}

// selected returns the chosen kind, false if the user quit.
func (m menuModel) selected() (fractals.Kind, bool) {
	if !m.chosen {
		return 0, false
	}
	return m.kinds[m.cursor], true
}

// chooseKind runs the menu in the terminal.
func chooseKind() (fractals.Kind, bool, error) {
	final, err := tea.NewProgram(newMenu()).Run()
	if err != nil {
		return 0, false, err
	}
	k, ok := final.(menuModel).selected()
	return k, ok, nil
}
