package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	label   string
	help    help.Model
	answer  bool
	hint    bool
	done    bool
	aborted bool
}

func newConfirmModel(label string) confirmModel {
	return confirmModel{label: label, help: help.New()}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.aborted = true

			return m, tea.Quit
		case key.Matches(msg, keys.yes):
			m.answer, m.done = true, true

			return m, tea.Quit
		case key.Matches(msg, keys.no):
			m.answer, m.done = false, true

			return m, tea.Quit
		default:
			// There is no default answer.
			m.hint = true
		}
	}

	return m, nil
}

func (m confirmModel) View() string {
	var b strings.Builder

	b.WriteString(question(m.label))

	switch {
	case m.done && m.answer:
		b.WriteString(" ")
		b.WriteString(answerStyle.Render("Yes"))
		b.WriteRune('\n')
	case m.done:
		b.WriteString(" ")
		b.WriteString(answerStyle.Render("No"))
		b.WriteRune('\n')
	case m.aborted:
		b.WriteRune('\n')
	default:
		b.WriteString(" ")
		b.WriteString(markStyle.Render("(y/n)"))

		if m.hint {
			b.WriteString(" ")
			b.WriteString(hintStyle.Render("type y or n"))
		}

		b.WriteString("\n\n")
		b.WriteString(m.help.View(confirmKeyMap{}))
		b.WriteRune('\n')
	}

	return b.String()
}
