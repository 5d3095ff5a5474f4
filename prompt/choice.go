package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// choiceModel lets the operator pick exactly one of a fixed list of options.
type choiceModel struct {
	label   string
	answer  string
	options []string
	help    help.Model
	index   int
	done    bool
	aborted bool
}

func newChoiceModel(label string, options []string) choiceModel {
	return choiceModel{
		label:   label,
		options: options,
		help:    help.New(),
	}
}

func (m choiceModel) Init() tea.Cmd {
	return nil
}

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.aborted = true

			return m, tea.Quit
		case key.Matches(msg, keys.up):
			if m.index > 0 {
				m.index -= 1
			}
		case key.Matches(msg, keys.down):
			if m.index < len(m.options)-1 {
				m.index += 1
			}
		case key.Matches(msg, keys.help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.submit):
			m.answer = m.options[m.index]
			m.done = true

			return m, tea.Quit
		default:
		}
	}

	return m, nil
}

func (m choiceModel) View() string {
	var b strings.Builder

	b.WriteString(question(m.label))

	if m.done {
		b.WriteString(" ")
		b.WriteString(answerStyle.Render(m.answer))
		b.WriteRune('\n')

		return b.String()
	}

	b.WriteRune('\n')

	if m.aborted {
		return b.String()
	}

	for i, option := range m.options {
		if i == m.index {
			b.WriteString(highlightedStyle.Render("> " + option))
		} else {
			b.WriteString("  " + option)
		}

		b.WriteRune('\n')
	}

	b.WriteRune('\n')
	b.WriteString(m.help.View(choiceKeyMap{}))
	b.WriteRune('\n')

	return b.String()
}
