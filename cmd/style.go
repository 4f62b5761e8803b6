package main

import (
	"strings"

	"github.com/DanMoss/Card-Game/domain/card"
	"github.com/DanMoss/Card-Game/domain/meld"
	"github.com/DanMoss/Card-Game/game"
	"github.com/pterm/pterm"
)

func cardsString(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Short()
	}
	return strings.Join(parts, " ")
}

func meldLine(m meld.Meld) string {
	line := pterm.LightCyan(m.String()) + ": " + cardsString(m.Cards())
	if run, ok := m.(*meld.RunMeld); ok {
		if v, fixed := run.Ace(); fixed {
			if v == meld.AceHigh {
				line += pterm.Gray(" (ace high)")
			} else {
				line += pterm.Gray(" (ace low)")
			}
		}
	}
	return line
}

func printTable(t game.Table) error {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	discard := "empty"
	if t.HasDiscard {
		discard = t.TopDiscard.Short()
	}
	boardInfo := pterm.Sprintfln("Round %d (no %s)\nDeck: %d cards\nDiscard: %s",
		t.Round, t.Excluded.Plural(), t.DeckSize, discard)
	board := pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|TABLE|")).WithTitleTopCenter().Sprint(boardInfo)}

	melds := "No melds yet"
	if len(t.Melds) > 0 {
		lines := make([]string, len(t.Melds))
		for i, m := range t.Melds {
			lines[i] = meldLine(m)
		}
		melds = strings.Join(lines, "\n")
	}
	meldPanel := pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|MELDS|")).WithTitleTopCenter().Sprint(melds)}

	hand := pterm.Panel{Data: pbox.WithLeftPadding(10).WithRightPadding(10).WithTitle(t.Player).WithTitleTopLeft().Sprint(cardsString(t.Hand))}

	return pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{board, meldPanel},
		{hand},
	}).Render()
}

func leaderboardData(standings []game.Standing) pterm.TableData {
	data := pterm.TableData{{"Place", "Player", "Points"}}
	for _, s := range standings {
		data = append(data, []string{pterm.Sprint(s.Place), s.Name, pterm.Sprint(s.Points)})
	}
	return data
}

func printLeaderboard(title string, standings []game.Standing) error {
	pterm.DefaultSection.Println(title)
	return pterm.DefaultTable.WithHasHeader().WithData(leaderboardData(standings)).Render()
}
