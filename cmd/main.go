package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DanMoss/Card-Game/config"
	"github.com/DanMoss/Card-Game/domain/card"
	"github.com/DanMoss/Card-Game/game"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	level, _ := cfg.Level()

	// Create a new slog handler with the PTerm logger at the configured level
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level)))
	logger := slog.New(handler)

	err = pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("A", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ces to ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("K", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ings", pterm.FgDarkGray.ToStyle()),
	).Render()
	if err != nil {
		logger.Warn("cannot render the title", "error", err)
	}

	if len(cfg.Players) == 0 {
		cfg.Players = askNames(cfg.MaxPlayers())
		if err := cfg.Validate(); err != nil {
			logger.Error("cannot seat these players", "error", err)
			os.Exit(1)
		}
	}

	g := game.New(game.Settings{
		HandSize:    cfg.HandSize,
		JokerPoints: cfg.JokerPoints,
		Rounds:      cfg.Rounds,
	}, game.WithLogger(logger))
	for _, n := range cfg.Players {
		p := g.AddPlayer(n, nil)
		p.Prompter = &consolePrompter{name: p.Name, log: logger}
	}
	logger.Info("game created", "id", g.Ledger().GameID().String(), "players", len(g.Players()))

	for round := 1; round <= cfg.Rounds; round++ {
		pterm.Info.Println(roundBanner(round))
		if err := g.PlayRound(round); err != nil {
			logger.Error("round aborted", "round", round, "error", err)
			os.Exit(1)
		}
		if err := printLeaderboard(fmt.Sprintf("Standings after round %d", round), g.Leaderboard()); err != nil {
			logger.Warn("cannot render the standings", "round", round, "error", err)
		}
	}

	final := g.Leaderboard()
	pterm.Success.Printfln("%s wins with %d points!", final[0].Name, final[0].Points)

	if err := g.Ledger().Verify(); err != nil {
		logger.Error("game journal is corrupt", "error", err)
		os.Exit(1)
	}
	if cfg.ShowLedger {
		if err := printJournal(g); err != nil {
			logger.Warn("cannot render the game journal", "error", err)
		}
	}
}

// askNames reads player names until an empty one, or until limit players
// are seated.
func askNames(limit int) []string {
	var names []string
	for len(names) < limit {
		prompt := fmt.Sprintf("Enter the name of player %d of at most %d (leave empty when done)", len(names)+1, limit)
		name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).WithDefaultValue("").Show()
		pterm.Println()
		if name == "" {
			if len(names) > 0 {
				return names
			}
			pterm.Warning.Println("At least one player is needed")
			continue
		}
		names = append(names, name)
	}
	pterm.Info.Printfln("The table is full with %d players", limit)
	return names
}

func roundBanner(round int) string {
	return fmt.Sprintf("Round %d: the %s are out of the deck", round, game.RoundRank(round).Plural())
}

// printJournal renders the ledger entries, cards in their short form.
func printJournal(g *game.Game) error {
	data := pterm.TableData{{"Round", "Player", "Action", "Cards", "Detail"}}
	for _, e := range g.Ledger().Entries() {
		data = append(data, []string{pterm.Sprint(e.Round), e.Player, string(e.Action), journalCards(e.Cards), e.Detail})
	}
	pterm.DefaultSection.Println("Game journal")
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func journalCards(codes []string) string {
	cards := make([]card.Card, 0, len(codes))
	for _, code := range codes {
		c, err := card.Parse(code)
		if err != nil {
			return strings.Join(codes, " ")
		}
		cards = append(cards, c)
	}
	return cardsString(cards)
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
