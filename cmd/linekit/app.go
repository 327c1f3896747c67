// ABOUTME: Root Bubble Tea model for the demo REPL wiring prompt, history, and completions.
// ABOUTME: Re-filters candidates on every buffer change and persists history on submit.

package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/linekit/linekit/internal/complete"
	"github.com/linekit/linekit/internal/history"
	"github.com/linekit/linekit/internal/keybindings"
	"github.com/linekit/linekit/internal/log"
	"github.com/linekit/linekit/pkg/lineedit"
	"github.com/linekit/linekit/pkg/lineedit/prompt"
)

// appModel hosts the prompt and echoes submitted lines above it.
type appModel struct {
	prompt  prompt.Model
	source  *complete.Source
	store   *history.Store
	entries []string
	output  []string
}

// demoCommands is the completion table the demo offers.
var demoCommands = []complete.Command{
	{Name: "help", Description: "show available commands"},
	{Name: "history", Description: "print the session history"},
	{Name: "clear", Description: "clear the screen"},
	{Name: "multiline", Description: "describe multiline editing"},
	{Name: "quit", Description: "exit linekit"},
}

// newAppModel wires the prompt with history, keybindings, and completions.
func newAppModel(opts lineedit.Options, promptGlyph, placeholder string, km *keybindings.Manager, store *history.Store) appModel {
	p := prompt.New(opts).
		SetPrompt(promptGlyph).
		SetPlaceholder(placeholder).
		SetKeymap(km)

	return appModel{
		prompt:  p,
		source:  complete.NewSource(demoCommands),
		store:   store,
		entries: opts.History,
	}
}

func (m appModel) Init() tea.Cmd {
	return m.prompt.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case prompt.ChangeMsg:
		// The engine never filters; recompute the candidate list here.
		m.prompt.Engine().SetSuggestions(m.source.Candidates(msg.Value))
		return m, nil

	case prompt.SubmitMsg:
		return m.handleSubmit(msg.Value)

	case prompt.CancelMsg:
		return m, tea.Quit
	}

	updated, cmd := m.prompt.Update(msg)
	m.prompt = updated.(prompt.Model)
	return m, cmd
}

// handleSubmit echoes the line, persists it, and runs demo commands.
func (m appModel) handleSubmit(value string) (tea.Model, tea.Cmd) {
	m.prompt.Engine().SetSuggestions(nil)

	if value == "/quit" {
		return m, tea.Quit
	}

	m.entries = m.store.Add(m.entries, value)
	m.prompt.Engine().SetHistory(m.entries)
	if err := m.store.Save(m.entries); err != nil {
		log.Warn("saving history", "err", err)
	}

	switch value {
	case "/help":
		for _, c := range demoCommands {
			m.output = append(m.output, "  /"+c.Name+"  "+c.Description)
		}
	case "/history":
		m.output = append(m.output, m.entries...)
	case "/clear":
		m.output = nil
	case "/multiline":
		m.output = append(m.output, "alt+enter inserts a soft newline; enter submits the joined lines")
	default:
		m.output = append(m.output, "> "+value)
	}
	return m, nil
}

func (m appModel) View() string {
	var b strings.Builder
	for _, line := range m.output {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(m.prompt.View())
	return b.String()
}
