package game

import (
	"fmt"
	"strings"

	"github.com/DanMoss/Card-Game/domain/card"
)

// Player is a seat at the table.
type Player struct {
	Name     string
	Hand     *card.Pile
	Points   int
	Prompter Prompter
}

// handValue is what the cards left in the hand score at the end of a round.
func (p *Player) handValue(jokerPoints int) int {
	total := 0
	for _, c := range p.Hand.Cards() {
		total += c.Points(jokerPoints)
	}
	return total
}

// namer hands out default names to players who did not give one.
type namer struct {
	count int
}

func (n *namer) name(given string) string {
	n.count++
	if s := strings.TrimSpace(given); s != "" {
		return s
	}
	return fmt.Sprintf("Player %d", n.count)
}
