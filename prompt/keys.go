package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type (
	textKeyMap struct{}

	confirmKeyMap struct{}

	choiceKeyMap struct{}
)

var (
	keys = struct {
		up     key.Binding
		down   key.Binding
		submit key.Binding
		yes    key.Binding
		no     key.Binding
		help   key.Binding
		quit   key.Binding
	}{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
		yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		no: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "no"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}

	palette = struct {
		magenta lipgloss.Color
		grey    lipgloss.Color
		red     lipgloss.Color
	}{
		magenta: lipgloss.Color("212"),
		grey:    lipgloss.Color("245"),
		red:     lipgloss.Color("203"),
	}

	highlightedStyle = lipgloss.NewStyle().Foreground(palette.magenta)

	answerStyle = lipgloss.NewStyle().Foreground(palette.magenta).Bold(true)

	markStyle = lipgloss.NewStyle().Foreground(palette.grey)

	hintStyle = lipgloss.NewStyle().Foreground(palette.red).Italic(true)
)

func (textKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.submit, keys.quit}
}

func (textKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.submit, keys.quit},
	}
}

func (confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.yes, keys.no, keys.quit}
}

func (confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.yes, keys.no},
		{keys.quit},
	}
}

func (choiceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.submit, keys.help, keys.quit}
}

func (choiceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.up, keys.down, keys.submit},
		{keys.help, keys.quit},
	}
}

// question renders the leading "? Label" of a prompt.
func question(label string) string {
	return markStyle.Render("?") + " " + label
}
