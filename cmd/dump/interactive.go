package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/wippyai/randcore/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	engineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	result   string
	engines  []string
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
	running  bool
}

type modelState int

const (
	stateSelectEngine modelState = iota
	stateInputParams
	stateShowResult
)

// Input field order for stateInputParams.
const (
	fieldOut = iota
	fieldCount
	fieldSeed
	numFields
)

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{
		engines: engine.Names(),
		state:   stateSelectEngine,
	}
}

type dumpDoneMsg struct {
	err     error
	written uint64
	stats   dumpStats
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputParams {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectEngine && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectEngine && m.selected < len(m.engines)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectEngine:
				m.prepareInputs()
				m.state = stateInputParams

			case stateInputParams:
				if m.running {
					return m, nil
				}
				m.running = true
				return m, m.startDump()

			case stateShowResult:
				m.state = stateSelectEngine
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputParams && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputParams:
				if !m.running {
					m.state = stateSelectEngine
					m.inputs = nil
				}
			case stateShowResult:
				m.state = stateSelectEngine
				m.result = ""
				m.err = nil
			}
		}

	case dumpDoneMsg:
		m.running = false
		m.err = msg.err
		if msg.err == nil {
			m.result = fmt.Sprintf("wrote %d draws (%d bytes)\nmin %#08x  max %#08x  mean %.1f",
				msg.written, msg.written*4, msg.stats.min, msg.stats.max, msg.stats.mean)
		}
		m.state = stateShowResult
	}

	if m.state == stateInputParams {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	m.inputs = make([]textinput.Model, numFields)

	out := textinput.New()
	out.Prompt = "output: "
	out.Placeholder = "draws.bin"
	out.Width = 40
	out.Focus()
	m.inputs[fieldOut] = out

	count := textinput.New()
	count.Prompt = "count:  "
	count.Placeholder = "1000000"
	count.Width = 40
	m.inputs[fieldCount] = count

	seed := textinput.New()
	seed.Prompt = "seed:   "
	seed.Placeholder = "w0,w1,... (empty = entropy)"
	seed.Width = 40
	m.inputs[fieldSeed] = seed

	m.focusIdx = fieldOut
}

func (m *interactiveModel) startDump() tea.Cmd {
	name := m.engines[m.selected]
	out := strings.TrimSpace(m.inputs[fieldOut].Value())
	countStr := strings.TrimSpace(m.inputs[fieldCount].Value())
	seedStr := strings.TrimSpace(m.inputs[fieldSeed].Value())

	return func() tea.Msg {
		if out == "" {
			return dumpDoneMsg{err: fmt.Errorf("output path is required")}
		}
		count, err := strconv.ParseUint(countStr, 10, 64)
		if err != nil || count == 0 {
			return dumpDoneMsg{err: fmt.Errorf("count must be a positive integer")}
		}
		stats, err := dump(zap.NewNop(), name, out, seedStr, count)
		if err != nil {
			return dumpDoneMsg{err: err}
		}
		return dumpDoneMsg{written: count, stats: stats}
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Draw Dumper"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectEngine:
		b.WriteString("Select an engine variant:\n\n")
		for i, name := range m.engines {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + name))
			} else {
				b.WriteString(cursor + engineStyle.Render(name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter configure • q quit"))

	case stateInputParams:
		b.WriteString(fmt.Sprintf("Dump from %s\n\n", engineStyle.Render(m.engines[m.selected])))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.running {
			b.WriteString(helpStyle.Render("writing..."))
		} else {
			b.WriteString(helpStyle.Render("tab next field • enter dump • esc back"))
		}

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Dump from %s:\n\n", engineStyle.Render(m.engines[m.selected])))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
