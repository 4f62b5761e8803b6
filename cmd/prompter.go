package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/DanMoss/Card-Game/game"
	"github.com/pterm/pterm"
)

// consolePrompter asks one seat for decisions through pterm. Every player
// shares the terminal, so each prompt is prefixed with the player's name.
type consolePrompter struct {
	name string
	log  *slog.Logger
}

func (p *consolePrompter) Choose(message string, options []string) (int, error) {
	selected, err := pterm.DefaultInteractiveSelect.
		WithDefaultText(message).
		WithOptions(options).
		WithMaxHeight(len(options)).
		Show()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", p.name, err)
	}
	i := slices.Index(options, selected)
	if i < 0 {
		return 0, fmt.Errorf("%s: unknown choice %q", p.name, selected)
	}
	return i, nil
}

func (p *consolePrompter) Tell(message string) {
	pterm.Info.Printfln("%s: %s", p.name, message)
}

func (p *consolePrompter) View(t game.Table) {
	if err := printTable(t); err != nil && p.log != nil {
		p.log.Warn("cannot render the table", "player", p.name, "error", err)
	}
}
