package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type textModel struct {
	label   string
	answer  string
	ti      textinput.Model
	help    help.Model
	done    bool
	aborted bool
}

func newTextModel(label, placeholder string) textModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = " "

	_ = ti.Focus()

	return textModel{
		label: label,
		ti:    ti,
		help:  help.New(),
	}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.aborted = true

			return m, tea.Quit
		case key.Matches(msg, keys.submit):
			m.answer = m.ti.Value()
			m.done = true

			m.ti.Blur()

			return m, tea.Quit
		default:
		}
	}

	m.ti, cmd = m.ti.Update(msg)

	return m, cmd
}

func (m textModel) View() string {
	var b strings.Builder

	b.WriteString(question(m.label))

	switch {
	case m.done:
		b.WriteString(" ")
		b.WriteString(answerStyle.Render(m.answer))
		b.WriteRune('\n')
	case m.aborted:
		b.WriteRune('\n')
	default:
		b.WriteString(m.ti.View())
		b.WriteString("\n\n")
		b.WriteString(m.help.View(textKeyMap{}))
		b.WriteRune('\n')
	}

	return b.String()
}
