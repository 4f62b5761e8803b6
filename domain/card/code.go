package card

import (
	"fmt"
	"strings"

	"github.com/paulhankin/poker"
)

// jokerPrefix starts the code of a wildcard; the suit letter follows.
const jokerPrefix = "*"

// Naturals returns the 52 natural cards sorted by suit then rank.
func Naturals() []Card {
	cards := make([]Card, 0, len(poker.Cards))
	for _, pc := range poker.Cards {
		cards = append(cards, fromPoker(pc))
	}
	return cards
}

func fromPoker(pc poker.Card) Card {
	return Card{rank: Rank(pc.Rank()), suit: Suit(pc.Suit()) + 1}
}

func (c Card) toPoker() (poker.Card, error) {
	return poker.MakeCard(poker.Suit(c.suit-1), poker.Rank(c.rank))
}

// Code returns the compact form used in the game journal: suit letter then
// rank, e.g. "H7", "ST" or "CA". Jokers are "*" followed by their suit
// letter.
func (c Card) Code() string {
	if c.IsWild() {
		return jokerPrefix + poker.Suit(c.suit-1).String()
	}
	pc, err := c.toPoker()
	if err != nil {
		return "?"
	}
	return pc.String()
}

// Parse reads a card back from its Code. Case and surrounding spaces are
// ignored.
func Parse(code string) (Card, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if letter, ok := strings.CutPrefix(code, jokerPrefix); ok {
		for _, s := range Suits() {
			if poker.Suit(s-1).String() == letter {
				return NewJoker(s), nil
			}
		}
		return Card{}, fmt.Errorf("%w: joker code %q", ErrInvalidCard, code)
	}
	pc, ok := poker.NameToCard[code]
	if !ok {
		return Card{}, fmt.Errorf("%w: code %q", ErrInvalidCard, code)
	}
	return fromPoker(pc), nil
}
