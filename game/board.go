package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/DanMoss/Card-Game/domain/card"
	"github.com/DanMoss/Card-Game/domain/deck"
	"github.com/DanMoss/Card-Game/domain/meld"
)

// ErrNothingToDraw is returned when both the deck and the discard pile are
// empty.
var ErrNothingToDraw = errors.New("nothing left to draw")

// Board holds everything on the table that is not in a hand.
type Board struct {
	deck    *deck.Deck
	discard *card.Pile
	melds   *meld.Manager
	log     *slog.Logger
}

// NewBoard creates a board around d. A nil logger falls back to
// slog.Default().
func NewBoard(d *deck.Deck, log *slog.Logger) *Board {
	if log == nil {
		log = slog.Default()
	}
	return &Board{
		deck:    d,
		discard: card.NewPile("discard pile"),
		melds:   meld.NewManager(),
		log:     log,
	}
}

// Melds returns the melds on the table.
func (b *Board) Melds() *meld.Manager {
	return b.melds
}

// DeckSize is the number of cards left to draw.
func (b *Board) DeckSize() int {
	return b.deck.Len()
}

// TopDiscard returns the card that can be taken from the discard pile.
func (b *Board) TopDiscard() (card.Card, bool) {
	return b.discard.Top()
}

// SetUpRound clears the table and prepares a shuffled deck without the
// excluded rank.
func (b *Board) SetUpRound(excluded card.Rank) error {
	if err := b.deck.ForRound(excluded); err != nil {
		return fmt.Errorf("set up round: %w", err)
	}
	b.deck.Shuffle()
	b.discard.Reset()
	b.melds.Reset()
	return nil
}

// Deal gives n cards to hand.
func (b *Board) Deal(hand card.Receiver, n int) error {
	return b.deck.Deal(hand, n)
}

// TurnFirstCard starts the discard pile with the top card of the deck.
func (b *Board) TurnFirstCard() error {
	c, err := b.deck.Draw()
	if err != nil {
		return fmt.Errorf("turn first card: %w", err)
	}
	b.discard.Add(c)
	return nil
}

// CanDrawFromDeck reports whether a deck draw is possible, counting the
// cards a refill from the discard pile would bring back.
func (b *Board) CanDrawFromDeck() bool {
	return b.deck.Len() > 0 || b.discard.Len() > 1
}

// DrawFromDeck draws the top card of the deck into hand. An empty deck is
// first refilled from the discard pile, keeping its top card.
func (b *Board) DrawFromDeck(hand card.Receiver) (card.Card, error) {
	if b.deck.Len() == 0 {
		n, err := b.deck.Refill(b.discard)
		if err != nil {
			return card.Card{}, fmt.Errorf("refill deck: %w", err)
		}
		b.log.Debug("deck refilled from discard pile", "cards", n)
	}
	c, err := b.deck.Draw()
	if errors.Is(err, deck.ErrEmpty) {
		return card.Card{}, ErrNothingToDraw
	}
	if err != nil {
		return card.Card{}, err
	}
	hand.Add(c)
	return c, nil
}

// DrawFromDiscard takes the top discard into hand.
func (b *Board) DrawFromDiscard(hand card.Receiver) (card.Card, error) {
	c, ok := b.discard.Top()
	if !ok {
		return card.Card{}, ErrNothingToDraw
	}
	if err := b.discard.TransferTo(hand, c); err != nil {
		return card.Card{}, err
	}
	return c, nil
}

// Discard moves c from hand to the top of the discard pile.
func (b *Board) Discard(hand card.Collection, c card.Card) error {
	if err := hand.TransferTo(b.discard, c); err != nil {
		return fmt.Errorf("discard: %w", err)
	}
	return nil
}
