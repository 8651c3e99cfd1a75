// Package components holds the interactive widgets used by the shell when a
// human is at the terminal.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DirEntry is a single selectable directory in the picker.
type DirEntry struct {
	Name    string
	Created string
}

// DirPicker is a bubbletea model that lets the user pick a subdirectory of
// the current directory. The shell runs it for a bare `cd` in interactive
// mode; the parent directory is always offered as "..".
type DirPicker struct {
	title     string
	entries   []DirEntry
	cursor    int
	chosen    int
	cancelled bool
	keyMap    pickerKeyMap
	styles    pickerStyles
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

type pickerStyles struct {
	Title      lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Created    lipgloss.Style
	Help       lipgloss.Style
}

func defaultPickerStyles() pickerStyles {
	return pickerStyles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Unselected: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Created:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginLeft(4),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// NewDirPicker creates a picker over the given directories. The ".." entry
// is prepended automatically.
func NewDirPicker(title string, dirs []DirEntry) DirPicker {
	entries := append([]DirEntry{{Name: ".."}}, dirs...)
	return DirPicker{
		title:   title,
		entries: entries,
		chosen:  -1,
		keyMap:  defaultPickerKeyMap(),
		styles:  defaultPickerStyles(),
	}
}

// Init implements tea.Model.
func (p DirPicker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p DirPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, p.keyMap.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, p.keyMap.Down):
			if p.cursor < len(p.entries)-1 {
				p.cursor++
			}
		case key.Matches(msg, p.keyMap.Select):
			p.chosen = p.cursor
			return p, tea.Quit
		case key.Matches(msg, p.keyMap.Quit):
			p.cancelled = true
			return p, tea.Quit
		}
	}
	return p, nil
}

// View implements tea.Model.
func (p DirPicker) View() string {
	var b strings.Builder

	b.WriteString(p.styles.Title.Render(p.title))
	b.WriteString("\n\n")

	for i, entry := range p.entries {
		style := p.styles.Unselected
		symbol := "○"
		if i == p.cursor {
			style = p.styles.Selected
			symbol = "●"
		}

		b.WriteString(style.Render(symbol + " " + entry.Name))
		b.WriteString("\n")

		if entry.Created != "" {
			b.WriteString(p.styles.Created.Render(entry.Created))
			b.WriteString("\n")
		}
	}

	b.WriteString(p.styles.Help.Render("\n↑/↓ navigate • enter select • q quit"))
	return b.String()
}

// Cancelled returns true if the user dismissed the picker.
func (p DirPicker) Cancelled() bool {
	return p.cancelled
}

// Choice returns the name of the chosen directory, or "" if none was chosen.
func (p DirPicker) Choice() string {
	if p.cancelled || p.chosen < 0 || p.chosen >= len(p.entries) {
		return ""
	}
	return p.entries[p.chosen].Name
}
