// Package repl implements an interactive expansion preview: type a
// capture-annotated closure, see the generated bindings and rewritten
// closure immediately.
package repl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DiscreteTom/clonesure/lang"
	"github.com/DiscreteTom/clonesure/log"
)

const (
	evalPrompt = "➜ "
	ctrlPrompt = " :"
)

func helpMessage() string {
	return `
: Commands (press Esc to toggle mode):

  help     Print this cruft
  pretty   Toggle multi-line expansion output
  clear    Clear screen
  quit     Exit REPL

Usage:
  Type a closure literal to expand it, e.g.  |@mut s1, @s2, x| { s1 }
  A full invocation like cc!(|@s1| s1) works too
  Press Esc to toggle between eval and command modes
  Press Tab / Shift-Tab to cycle through command completions
  Use Up/Down arrows for history navigation
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// inputMode represents the current input mode.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// Styles.
//
//nolint:gochecknoglobals
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

const defaultWidth = 80

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc  func() context.Context
	input    textinput.Model
	macro    string
	logger   log.Logger
	history  *history
	comp     completer
	pretty   bool
	width    int
	quitting bool
	mode     inputMode
	evalText string
	ctrlText string
}

// Run starts the REPL. It blocks until the user quits.
func Run(ctx context.Context, macro string, logger log.Logger) error {
	logger.TraceContext(ctx, "repl start",
		slog.String("macro", macro))

	m := newModel(ctx, macro, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()

	return err
}

func newModel(ctx context.Context, macro string, logger log.Logger) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc: func() context.Context { return ctx },
		input:   ti,
		macro:   macro,
		logger:  logger,
		history: newHistory(),
		pretty:  true,
		width:   defaultWidth,
		mode:    modeEval,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.mode == modeCtrl && len(m.comp.matches) > 0:
		b.WriteString(m.comp.bar(m.width))
		b.WriteString("\n")

	case strings.TrimSpace(m.input.Value()) == "":
		hint := "Type a closure literal or press Esc for commands"
		if m.mode == modeCtrl {
			hint = "Type: help, pretty, clear, quit (press Esc to return)"
		}

		b.WriteString(hintStyle.Render(hint))
		b.WriteString("\n")

	default:
		b.WriteString("\n")
	}

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctxFunc(), "repl keypress",
		slog.String("key", msg.String()))

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.comp.reset()
		m.history.resetCursor()

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		m.comp.reset()

		return m.executeInput()

	case tea.KeyTab:
		return m.cycleCompletion(1), nil

	case tea.KeyShiftTab:
		return m.cycleCompletion(-1), nil

	case tea.KeyUp:
		if line, ok := m.history.prev(m.mode); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}

		return m, nil

	case tea.KeyDown:
		line, ok := m.history.next(m.mode)
		if ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		} else {
			m.input.SetValue("")
		}

		return m, nil

	case tea.KeyEsc:
		return m.toggleMode(), nil
	}

	var cmd tea.Cmd

	m.history.resetCursor()
	m.input, cmd = m.input.Update(msg)

	if m.mode == modeCtrl {
		m.comp.refresh(m.input.Value())
	}

	return m, cmd
}

// cycleCompletion advances the control-mode completion selection and writes
// the selected candidate into the input.
func (m model) cycleCompletion(delta int) model {
	if m.mode != modeCtrl {
		return m
	}

	m.comp.refresh(m.input.Value())

	if candidate, ok := m.comp.cycle(delta); ok {
		m.input.SetValue(candidate)
		m.input.CursorEnd()
	}

	return m
}

// toggleMode switches between eval and command modes, preserving each mode's
// pending input text.
func (m model) toggleMode() model {
	switch m.mode {
	case modeEval:
		m.evalText = m.input.Value()
		m.mode = modeCtrl
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
		m.input.SetValue(m.ctrlText)

	case modeCtrl:
		m.ctrlText = m.input.Value()
		m.mode = modeEval
		m.input.Prompt = promptStyle.Render(evalPrompt)
		m.input.SetValue(m.evalText)
	}

	m.input.CursorEnd()
	m.comp.reset()

	return m
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.history.add(input, m.mode)
	m.input.SetValue("")

	if m.mode == modeCtrl {
		return m.executeCommand(input)
	}

	return m, m.evaluate(input)
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	echo := tea.Println(ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input))

	switch input {
	case "help":
		return m, tea.Sequence(echo, tea.Println(helpMessage()))

	case "pretty":
		m.pretty = !m.pretty

		state := "single-line"
		if m.pretty {
			state = "multi-line"
		}

		return m, tea.Sequence(echo,
			tea.Println(hintStyle.Render("expansion output: "+state)))

	case "clear":
		return m, tea.ClearScreen

	case "quit":
		m.quitting = true

		return m, tea.Quit
	}

	return m, tea.Sequence(echo,
		tea.Println(errorStyle.Render("unknown command: "+input)))
}

// evaluate expands one line of input. A line that begins with the macro name
// is treated as a full invocation; anything else is parsed as a bare closure
// literal.
func (m model) evaluate(input string) tea.Cmd {
	echo := promptStyle.Render(evalPrompt) + inputStyle.Render(input)

	out, err := m.expand(input)
	if err != nil {
		return tea.Sequence(
			tea.Println(echo),
			tea.Println(errorStyle.Render(err.Error())),
		)
	}

	return tea.Sequence(
		tea.Println(echo),
		tea.Println(resultStyle.Render(out)),
	)
}

func (m model) expand(input string) (string, error) {
	ctx := m.ctxFunc()

	if strings.HasPrefix(input, m.macro) {
		return lang.Expand(ctx, input,
			lang.WithMacroName(m.macro),
			lang.WithLogger(m.logger),
		)
	}

	spec, err := lang.ParseString(ctx, input, lang.WithLogger(m.logger))
	if err != nil {
		return "", err
	}

	var opts []lang.GenOption
	if m.pretty {
		opts = append(opts, lang.WithIndent(4))
	}

	return lang.Generate(spec, opts...), nil
}
