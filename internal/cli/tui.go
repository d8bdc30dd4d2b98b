package cli

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Hypercubers/rocket"
	"github.com/Hypercubers/rocket/internal/config"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive search mode",
	Long: `Start an interactive TUI for running reorientation searches.

Keyboard shortcuts:
  Tab/Shift+Tab - Move between fields
  Left/Right    - Adjust the depth field
  Space         - Toggle the sticker / show-all fields
  Enter         - Run the search
  q/Esc         - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	focusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type tickMsg time.Time
type searchDoneMsg struct{ err error }

// Fields, in focus order.
const (
	fieldAlg = iota
	fieldCheap
	fieldDepth
	fieldSticker
	fieldShowAll
	fieldCount
)

// Model
type tuiModel struct {
	// Inputs
	alg     string
	cheap   string
	depth   int
	sticker bool
	showAll bool
	focus   int

	// Search state
	running bool
	buf     *outputBuffer

	// UI
	width    int
	height   int
	err      error
	quitting bool
}

func newTUIModel(cfg config.Config) *tuiModel {
	return &tuiModel{
		cheap:   cfg.CheapMoves,
		depth:   cfg.MaxDepth,
		sticker: cfg.StickerNotation,
		showAll: cfg.ShowAll,
		buf:     &outputBuffer{},
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *tuiModel) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// startSearch launches the search on its own goroutine; result lines
// land in the shared buffer as they are produced.
func (m *tuiModel) startSearch() tea.Cmd {
	alg := m.alg
	cheapSpec := m.cheap
	depth := m.depth
	sticker := m.sticker
	showAll := m.showAll
	buf := m.buf

	return func() tea.Msg {
		moves, err := rocket.ParseMoves(alg)
		if err != nil {
			return searchDoneMsg{err: err}
		}
		if len(moves) == 0 {
			return searchDoneMsg{err: rocket.ErrSequenceEmpty}
		}

		cheap, err := rocket.ParseCheapSet(cheapSpec)
		if err != nil {
			return searchDoneMsg{err: err}
		}

		result, err := rocket.Search(moves,
			rocket.WithMaxDepth(depth),
			rocket.WithCheapMoves(cheap),
			rocket.WithProgress(buf.Append),
		)
		if err != nil {
			return searchDoneMsg{err: err}
		}

		for _, line := range reportLines(result, cheap, sticker, showAll) {
			buf.Append(line)
		}
		return searchDoneMsg{}
	}
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "tab", "down":
			m.focus = (m.focus + 1) % fieldCount

		case "shift+tab", "up":
			m.focus = (m.focus + fieldCount - 1) % fieldCount

		case "enter":
			if !m.running && m.alg != "" {
				m.running = true
				m.err = nil
				m.buf.Reset()
				return m, m.startSearch()
			}

		case "left":
			if m.focus == fieldDepth && m.depth > 0 {
				m.depth--
			}

		case "right":
			if m.focus == fieldDepth && m.depth < rocket.MaxReorients {
				m.depth++
			}

		case " ":
			switch m.focus {
			case fieldSticker:
				m.sticker = !m.sticker
			case fieldShowAll:
				m.showAll = !m.showAll
			case fieldAlg:
				m.alg += " "
			case fieldCheap:
				m.cheap += " "
			}

		case "backspace":
			switch m.focus {
			case fieldAlg:
				m.alg = trimLastRune(m.alg)
			case fieldCheap:
				m.cheap = trimLastRune(m.cheap)
			}

		default:
			// "q" quits unless a text field is focused.
			if msg.String() == "q" && m.focus != fieldAlg && m.focus != fieldCheap {
				m.quitting = true
				return m, tea.Quit
			}
			if msg.Type == tea.KeyRunes {
				switch m.focus {
				case fieldAlg:
					m.alg += string(msg.Runes)
				case fieldCheap:
					m.cheap += string(msg.Runes)
				}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, m.tickCmd()

	case searchDoneMsg:
		m.running = false
		m.err = msg.err
	}

	return m, nil
}

func (m *tuiModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("rocket"))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLine(fieldAlg, "Algorithm", m.alg))
	b.WriteString(m.fieldLine(fieldCheap, "Cheap", m.cheap))
	b.WriteString(m.fieldLine(fieldDepth, "Depth", fmt.Sprintf("< %d >", m.depth)))
	b.WriteString(m.fieldLine(fieldSticker, "Sticker notation", checkbox(m.sticker)))
	b.WriteString(m.fieldLine(fieldShowAll, "Show all", checkbox(m.showAll)))
	b.WriteString("\n")

	if m.running {
		b.WriteString(focusStyle.Render("Searching..."))
		b.WriteString("\n")
	}

	for _, line := range m.buf.Lines() {
		b.WriteString(resultStyle.Render(line))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Tab=next field  Enter=search  Esc=quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *tuiModel) fieldLine(field int, label, value string) string {
	cursor := ""
	rendered := labelStyle.Render(label)
	if m.focus == field {
		rendered = focusStyle.Render(label)
		if field == fieldAlg || field == fieldCheap {
			cursor = focusStyle.Render("_")
		}
	}
	return fmt.Sprintf("%s: %s%s\n", rendered, value, cursor)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// trimLastRune removes the final rune from a text field, not the final
// byte.
func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p := tea.NewProgram(newTUIModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
