// ABOUTME: CLI entry point for the linekit demo REPL.
// ABOUTME: Loads config, keybindings, and history, then runs the Bubble Tea program.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/linekit/linekit/internal/config"
	"github.com/linekit/linekit/internal/history"
	"github.com/linekit/linekit/internal/keybindings"
	"github.com/linekit/linekit/internal/log"
	"github.com/linekit/linekit/pkg/lineedit"
)

var version = "dev"

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("linekit %s\n", version)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	log.SetVerbose(args.verbose)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("linekit is interactive; stdin is not a terminal")
	}

	cfgPath := args.configPath
	if cfgPath == "" {
		cfgPath = config.Path()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	bindingsPath := args.bindingsPath
	if bindingsPath == "" {
		bindingsPath = config.KeybindingsPath()
	}
	km := keybindings.New(bindingsPath)
	for _, c := range km.Conflicts() {
		log.Warn("keybinding conflict", "key", c.Key, "actions", c.Actions)
	}

	store := history.NewStore(cfg.HistoryFile, cfg.HistoryLimit)
	entries, err := store.Load()
	if err != nil {
		return err
	}
	log.Debug("history loaded", "entries", len(entries))

	app := newAppModel(lineedit.Options{
		Multiline: cfg.Multiline,
		History:   entries,
	}, cfg.Prompt, cfg.Placeholder, km, store)

	if _, err := tea.NewProgram(app).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
