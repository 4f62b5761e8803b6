package game

import (
	"errors"
	"testing"

	"github.com/DanMoss/Card-Game/domain/card"
	"github.com/DanMoss/Card-Game/domain/deck"
)

func TestDrawFromEmptyDeckRefills(t *testing.T) {
	b := NewBoard(deck.New(), nil)
	b.deck.Pile.Reset()
	a, k, q := c(card.Ace, card.Spades), c(card.King, card.Spades), c(card.Queen, card.Spades)
	b.discard.Add(a)
	b.discard.Add(k)
	b.discard.Add(q)

	if !b.CanDrawFromDeck() {
		t.Fatal("a refill should make the deck drawable")
	}
	hand := card.NewPile("hand")
	drawn, err := b.DrawFromDeck(hand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if drawn != a && drawn != k {
		t.Fatalf("expected a refilled card, got %v", drawn)
	}
	if top, _ := b.TopDiscard(); top != q || b.discard.Len() != 1 {
		t.Fatalf("top discard must stay, got %v with %d cards", top, b.discard.Len())
	}
	if b.DeckSize() != 1 || hand.Len() != 1 {
		t.Fatalf("expected 1 card in deck and hand, got %d and %d", b.DeckSize(), hand.Len())
	}
}

func TestNothingToDraw(t *testing.T) {
	b := NewBoard(deck.New(), nil)
	b.deck.Pile.Reset()
	hand := card.NewPile("hand")
	if b.CanDrawFromDeck() {
		t.Fatal("nothing should be drawable")
	}
	if _, err := b.DrawFromDeck(hand); !errors.Is(err, ErrNothingToDraw) {
		t.Fatalf("expected ErrNothingToDraw, got %v", err)
	}
	if _, err := b.DrawFromDiscard(hand); !errors.Is(err, ErrNothingToDraw) {
		t.Fatalf("expected ErrNothingToDraw, got %v", err)
	}
}

func TestSetUpRoundClearsTable(t *testing.T) {
	b := NewBoard(deck.New(), nil)
	b.discard.Add(c(card.Two, card.Clubs))
	hand := card.NewPile("hand", c(card.Two, card.Hearts), c(card.Two, card.Spades), c(card.Two, card.Diamonds))
	opts := b.Melds().FindPlayOptions(hand.Cards()...)
	if len(opts) != 1 {
		t.Fatalf("expected one option, got %d", len(opts))
	}
	if _, err := b.Melds().Play(hand, opts[0]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := b.SetUpRound(card.Queen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.discard.Len() != 0 || len(b.Melds().Melds()) != 0 {
		t.Fatal("table should be empty after set up")
	}
	if b.DeckSize() != 52 {
		t.Fatalf("expected 52 cards without queens, got %d", b.DeckSize())
	}
}

func TestDiscardNeedsTheCard(t *testing.T) {
	b := NewBoard(deck.New(), nil)
	hand := card.NewPile("hand", c(card.Two, card.Hearts))
	if err := b.Discard(hand, c(card.Three, card.Hearts)); !errors.Is(err, card.ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
	if err := b.Discard(hand, c(card.Two, card.Hearts)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top, _ := b.TopDiscard(); top != c(card.Two, card.Hearts) {
		t.Fatalf("expected the two on top, got %v", top)
	}
}
