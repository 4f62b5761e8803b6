package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/DanMoss/Card-Game/domain/card"
	"go.dedis.ch/kyber/v4/suites"
)

// ErrEmpty is returned when drawing from a deck with no cards left.
var ErrEmpty = errors.New("deck is empty")

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is the Aces to Kings draw pile: a standard 52 card deck plus one
// joker per suit. Each round plays without one rank (see ForRound).
type Deck struct {
	*card.Pile
	excluded card.Rank
	stream   cipher.Stream
}

// New returns a full, unshuffled deck.
func New() *Deck {
	d := &Deck{
		Pile:   card.NewPile("deck"),
		stream: suite.RandomStream(),
	}
	d.Reset()
	return d
}

// Defining returns every card the deck can contain, ignoring any excluded
// rank: 52 naturals followed by the four jokers.
func Defining() []card.Card {
	cards := card.Naturals()
	for _, s := range card.Suits() {
		cards = append(cards, card.NewJoker(s))
	}
	return cards
}

// RoundSize is the number of cards in the deck of any round: every defining
// card minus the four of the excluded rank.
func RoundSize() int {
	return len(Defining()) - len(card.Suits())
}

// Reset refills the deck with its defining cards minus the excluded rank.
func (d *Deck) Reset() {
	d.Pile.Reset()
	for _, c := range Defining() {
		if d.excluded != 0 && c.Rank() == d.excluded {
			continue
		}
		d.Pile.Add(c)
	}
}

// ForRound resets the deck for a round played without the given rank.
func (d *Deck) ForRound(excluded card.Rank) error {
	if excluded < card.Ace || excluded > card.King {
		return fmt.Errorf("%w: cannot exclude %v", card.ErrInvalidCard, excluded)
	}
	d.excluded = excluded
	d.Reset()
	return nil
}

// Excluded returns the rank removed for the current round, or 0.
func (d *Deck) Excluded() card.Rank {
	return d.excluded
}

// Draw takes the top card of the deck.
func (d *Deck) Draw() (card.Card, error) {
	c, ok := d.Pile.Draw()
	if !ok {
		return card.Card{}, ErrEmpty
	}
	return c, nil
}

// Deal moves n cards from the top of the deck to dst.
func (d *Deck) Deal(dst card.Receiver, n int) error {
	if n > d.Len() {
		return fmt.Errorf("deal %d cards: %w (%d left)", n, ErrEmpty, d.Len())
	}
	for i := 0; i < n; i++ {
		c, _ := d.Pile.Draw()
		dst.Add(c)
	}
	return nil
}
