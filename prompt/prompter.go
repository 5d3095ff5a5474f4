// Package prompt asks the operator for values on the terminal.
// Every question runs as its own short-lived bubbletea program and leaves a one-line transcript behind.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
)

type (
	Prompter struct {
		input       io.Reader
		output      io.Writer
		dump        io.Writer
		needsTTY    bool
		programOpts []tea.ProgramOption
	}

	Option func(*Prompter)

	// closingReader quits the program once its input is exhausted. bubbletea keeps waiting on a
	// closed stream otherwise.
	closingReader struct {
		io.Reader
		quit func()
		once sync.Once
	}

	// dumpModel records every message it sees before handing it to the wrapped model.
	dumpModel struct {
		tea.Model
		dump io.Writer
	}
)

var ErrPrompt = errors.New("prompt failure")

// WithTerminalCheck makes every question fail unless the input is a terminal,
// instead of waiting on a stream that will never deliver a key press.
func WithTerminalCheck() Option {
	return func(p *Prompter) {
		p.needsTTY = true
	}
}

// WithDump writes every bubbletea message to w. Meant for debugging key handling.
func WithDump(w io.Writer) Option {
	return func(p *Prompter) {
		p.dump = w
	}
}

// WithProgramOptions passes extra options to each bubbletea program.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(p *Prompter) {
		p.programOpts = append(p.programOpts, opts...)
	}
}

func New(input io.Reader, output io.Writer, opts ...Option) *Prompter {
	p := Prompter{input: input, output: output}

	for _, opt := range opts {
		opt(&p)
	}

	return &p
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *closingReader) Read(b []byte) (int, error) {
	n, err := r.Reader.Read(b)
	if errors.Is(err, io.EOF) {
		r.once.Do(r.quit)
	}

	return n, err
}

func (m dumpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	spew.Fdump(m.dump, msg)

	inner, cmd := m.Model.Update(msg)

	return dumpModel{Model: inner, dump: m.dump}, cmd
}

func (p *Prompter) run(label string, model tea.Model) (tea.Model, error) {
	if p.needsTTY && !isTerminal(p.input) {
		return nil, fmt.Errorf("%w: cannot ask for %q, input is not a terminal", ErrPrompt, label)
	}

	if p.dump != nil {
		model = dumpModel{Model: model, dump: p.dump}
	}

	input := p.input

	var closing *closingReader

	// A terminal stays open for the whole run and must reach bubbletea unwrapped to be put in raw mode.
	if !isTerminal(input) {
		closing = &closingReader{Reader: input}
		input = closing
	}

	opts := append([]tea.ProgramOption{tea.WithInput(input), tea.WithOutput(p.output)}, p.programOpts...)

	program := tea.NewProgram(model, opts...)

	if closing != nil {
		closing.quit = program.Quit
	}

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to ask for %q: %s", ErrPrompt, label, err.Error())
	}

	if d, ok := final.(dumpModel); ok {
		final = d.Model
	}

	return final, nil
}

func aborted(label string) error {
	return fmt.Errorf("%w: %q was canceled by the operator", ErrPrompt, label)
}

// Text asks for a single line and returns it as typed. Placeholder is only a visual hint.
// Input that ends before the answer is submitted fails the question.
//
// Non-nil returned error wraps [ErrPrompt].
func (p *Prompter) Text(label, placeholder string) (string, error) {
	final, err := p.run(label, newTextModel(label, placeholder))
	if err != nil {
		return "", err
	}

	m, ok := final.(textModel)
	if !ok || !m.done {
		return "", aborted(label)
	}

	return m.answer, nil
}

// Confirm asks a yes/no question.
//
// Non-nil returned error wraps [ErrPrompt].
func (p *Prompter) Confirm(label string) (bool, error) {
	final, err := p.run(label, newConfirmModel(label))
	if err != nil {
		return false, err
	}

	m, ok := final.(confirmModel)
	if !ok || !m.done {
		return false, aborted(label)
	}

	return m.answer, nil
}

// Select asks the operator to pick one of options, which are shown in the given order.
//
// Non-nil returned error wraps [ErrPrompt].
func (p *Prompter) Select(label string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("%w: nothing to choose from for %q", ErrPrompt, label)
	}

	final, err := p.run(label, newChoiceModel(label, options))
	if err != nil {
		return "", err
	}

	m, ok := final.(choiceModel)
	if !ok || !m.done {
		return "", aborted(label)
	}

	return m.answer, nil
}
