// Package tui provides a terminal user interface for midiwire
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/james-see/midiwire/pkg/midi"
	"github.com/james-see/midiwire/pkg/wire"
)

// Phosphor-terminal color scheme
var (
	phosphorGreen = lipgloss.Color("#33FF33")
	amber         = lipgloss.Color("#FFBF00")
	silverGray    = lipgloss.Color("#C0C0C0")
	darkGray      = lipgloss.Color("#333333")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(phosphorGreen).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	menuStyle = lipgloss.NewStyle().
			Foreground(silverGray).
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(phosphorGreen).
			Bold(true).
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(amber).
			PaddingTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(phosphorGreen).
			Padding(1, 2)
)

// State represents the current TUI state
type State int

const (
	StateMenu State = iota
	StateFilePicker
	StateDecoding
	StateResult
)

// MenuItem represents a menu option
type MenuItem struct {
	Title       string
	Description string
	Hex         bool
}

var menuItems = []MenuItem{
	{Title: "Decode raw capture", Description: "Decode a raw MIDI byte capture (.bin/.raw/.syx)", Hex: false},
	{Title: "Decode hex dump", Description: "Decode a hex text dump (.txt/.hex)", Hex: true},
	{Title: "Exit", Description: "Exit the application"},
}

// Model represents the TUI model
type Model struct {
	state        State
	menuIndex    int
	filePicker   filepicker.Model
	spinner      spinner.Model
	viewport     viewport.Model
	selectedFile string
	choice       MenuItem
	count        int
	err          error
	width        int
	height       int
}

// decodeDoneMsg signals decode completion
type decodeDoneMsg struct {
	records []wire.Record
	err     error
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick)
}

// New creates a new TUI model
func New() Model {
	// Initialize file picker
	fp := filepicker.New()
	fp.AllowedTypes = []string{".bin", ".raw", ".syx", ".txt", ".hex"}
	fp.CurrentDirectory, _ = os.Getwd()

	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(phosphorGreen)

	return Model{
		state:      StateMenu,
		menuIndex:  0,
		filePicker: fp,
		spinner:    s,
		viewport:   viewport.New(80, 20),
	}
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle file picker state first - it needs to receive all messages
	if m.state == StateFilePicker {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				m.state = StateMenu
				return m, nil
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}

		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
			m.selectedFile = path
			m.state = StateDecoding
			return m, tea.Batch(m.spinner.Tick, m.performDecode())
		}

		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filePicker.SetHeight(msg.Height - 10)
		m.viewport.Width = msg.Width - 6
		m.viewport.Height = msg.Height - 10
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateResult:
			return m.updateResult(msg)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case decodeDoneMsg:
		m.state = StateResult
		m.err = msg.err
		m.count = len(msg.records)
		m.viewport.SetContent(renderRecords(msg.records))
		m.viewport.GotoTop()
		return m, nil
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "enter":
		if m.menuIndex == len(menuItems)-1 {
			return m, tea.Quit
		}
		m.choice = menuItems[m.menuIndex]
		m.state = StateFilePicker

		if m.choice.Hex {
			m.filePicker.AllowedTypes = []string{".txt", ".hex", ".log"}
		} else {
			m.filePicker.AllowedTypes = []string{".bin", ".raw", ".syx", ".dat"}
		}

		return m, m.filePicker.Init()
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.state = StateMenu
		m.err = nil
		m.selectedFile = ""
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) performDecode() tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(m.selectedFile)
		if err != nil {
			return decodeDoneMsg{err: err}
		}

		if m.choice.Hex {
			data, err = wire.DecodeHexText(string(data))
			if err != nil {
				return decodeDoneMsg{err: err}
			}
		}

		parser := midi.NewParser()
		var records []wire.Record
		for _, b := range data {
			if msg := parser.ParseByte(b); msg != nil {
				records = append(records, wire.NewRecord(msg))
			}
		}

		return decodeDoneMsg{records: records}
	}
}

func renderRecords(records []wire.Record) string {
	if len(records) == 0 {
		return statusStyle.Render("No complete messages in this capture.")
	}

	var s strings.Builder
	for i, r := range records {
		s.WriteString(fmt.Sprintf("%4d  %-9s %-20s %s\n", i+1, r.Bytes, r.Type, r.Description))
	}
	return s.String()
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	// Header
	s.WriteString(asciiLogo())
	s.WriteString("\n")

	switch m.state {
	case StateMenu:
		s.WriteString(m.viewMenu())
	case StateFilePicker:
		s.WriteString(m.viewFilePicker())
	case StateDecoding:
		s.WriteString(m.viewDecoding())
	case StateResult:
		s.WriteString(m.viewResult())
	}

	// Footer help
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓: navigate • enter: select • q: quit"))

	return s.String()
}

func (m Model) viewMenu() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" SELECT ACTION "))
	s.WriteString("\n\n")

	for i, item := range menuItems {
		if i == m.menuIndex {
			s.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", item.Title)))
			s.WriteString("\n")
			s.WriteString(lipgloss.NewStyle().Foreground(amber).PaddingLeft(4).Render(item.Description))
		} else {
			s.WriteString(menuStyle.Render(fmt.Sprintf("  %s", item.Title)))
		}
		s.WriteString("\n")
	}

	return boxStyle.Render(s.String())
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" SELECT CAPTURE FILE "))
	s.WriteString("\n\n")
	s.WriteString(m.filePicker.View())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("esc: back to menu"))

	return s.String()
}

func (m Model) viewDecoding() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" DECODING "))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("%s Decoding %s...\n", m.spinner.View(), filepath.Base(m.selectedFile)))

	return boxStyle.Render(s.String())
}

func (m Model) viewResult() string {
	var s strings.Builder

	if m.err != nil {
		s.WriteString(titleStyle.Render(" ERROR "))
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ Decode failed: %s", m.err.Error())))
	} else {
		s.WriteString(titleStyle.Render(fmt.Sprintf(" %d MESSAGES: %s ", m.count, filepath.Base(m.selectedFile))))
		s.WriteString("\n\n")
		s.WriteString(m.viewport.View())
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("↑/↓: scroll • enter: back to menu"))

	return boxStyle.Render(s.String())
}

func asciiLogo() string {
	logo := `
   __  __ ___ ____ _____        _____ ____  _____
  |  \/  |_ _|  _ \_ _\ \      / /_ _|  _ \| ____|
  | |\/| || || | | | | \ \ /\ / / | || |_) |  _|
  | |  | || || |_| | |  \ V  V /  | ||  _ <| |___
  |_|  |_|___|____/___|  \_/\_/  |___|_| \_\_____|
`
	return lipgloss.NewStyle().Foreground(phosphorGreen).Render(logo)
}

// Run starts the TUI application
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
